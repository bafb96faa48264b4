package locale

import (
	"sync"

	"github.com/leonelquinteros/gotext"
)

// Domain is the gettext domain holding every user-facing string
const Domain = "default"

// Message ids; the English text doubles as the fallback translation
const (
	MsgRunning    = "RUNNING"
	MsgGameOver   = "GAME OVER"
	MsgStatusLine = "%s  frame %d  bounces %d  wanderers %d"
	MsgQuitHint   = "arrows/WASD move, q quits"
	MsgSummary    = "Summary"
	MsgFrames     = "frames"
	MsgBounces    = "bounces"
	MsgPhase      = "phase"
	MsgPlayer     = "player"
	MsgWanderer   = "wanderer"
	MsgGone       = "gone"
	MsgSpectators = "spectators %d"
)

var mu sync.Mutex

// Init loads translations from dir/lang/LC_MESSAGES/default.po
// Missing catalogs are not an error; lookups then return the message id
func Init(dir, lang string) {
	mu.Lock()
	defer mu.Unlock()
	gotext.Configure(dir, lang, Domain)
}

// T translates msg and formats it with vars
func T(msg string, vars ...interface{}) string {
	return gotext.Get(msg, vars...)
}

// Language returns the configured language code
func Language() string {
	return gotext.GetLanguage()
}
