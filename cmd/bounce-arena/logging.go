package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "bounce-arena.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the standard logger to logs/bounce-arena.log when debug is set
// and discards it otherwise; the terminal UI owns stdout and stderr
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateErr := rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Printf("logging started, pid %d", os.Getpid())
	if rotateErr != nil {
		log.Printf("log rotation failed: %v", rotateErr)
	}
	return f
}

// rotateLog renames an oversized log to a timestamped sibling
// A missing or small log is left alone and is not an error
func rotateLog(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}
	stamp := time.Now().Format("20060102-150405")
	rotated := filepath.Join(filepath.Dir(path), fmt.Sprintf("bounce-arena-%s.log", stamp))
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate %s: %w", path, err)
	}
	return nil
}
