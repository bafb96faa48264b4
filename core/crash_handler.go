package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

// resetSequence leaves the alternate screen, shows the cursor and clears attributes
const resetSequence = "\x1b[?1049l\x1b[?25h\x1b[0m"

var (
	crashMu      sync.Mutex
	crashCleanup func()
)

// SetCrashCleanup registers the hook that restores the terminal before a crash report
// Passing nil falls back to writing a raw reset sequence
func SetCrashCleanup(fn func()) {
	crashMu.Lock()
	crashCleanup = fn
	crashMu.Unlock()
}

// HandleCrash restores the terminal, prints the panic with its stack and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	cleanup := crashCleanup
	crashMu.Unlock()

	if cleanup != nil {
		cleanup()
	} else {
		fmt.Fprint(os.Stdout, resetSequence)
	}
	os.Stdout.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a new goroutine that reports panics through HandleCrash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
