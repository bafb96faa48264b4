package locale

import (
	"os"
	"path/filepath"
	"testing"
)

const germanCatalog = `msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"
"Language: de\n"

msgid "GAME OVER"
msgstr "SPIEL VORBEI"

msgid "spectators %d"
msgstr "Zuschauer %d"
`

// TestFallbackToMessageID verifies untranslated strings render as their id
func TestFallbackToMessageID(t *testing.T) {
	Init(t.TempDir(), "xx")

	if got := T(MsgRunning); got != "RUNNING" {
		t.Errorf("T(MsgRunning) = %q", got)
	}
	if got := T(MsgStatusLine, "RUNNING", 3, 1, 4); got != "RUNNING  frame 3  bounces 1  wanderers 4" {
		t.Errorf("formatted = %q", got)
	}
}

// TestCatalogTranslation verifies a po catalog on disk is used
func TestCatalogTranslation(t *testing.T) {
	dir := t.TempDir()
	msgDir := filepath.Join(dir, "de", "LC_MESSAGES")
	if err := os.MkdirAll(msgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(msgDir, Domain+".po"), []byte(germanCatalog), 0o644); err != nil {
		t.Fatal(err)
	}

	Init(dir, "de")
	defer Init(t.TempDir(), "en")

	if got := T(MsgGameOver); got != "SPIEL VORBEI" {
		t.Errorf("T(MsgGameOver) = %q, want SPIEL VORBEI", got)
	}
	if got := T(MsgSpectators, 2); got != "Zuschauer 2" {
		t.Errorf("T(MsgSpectators) = %q", got)
	}
	if got := T(MsgRunning); got != "RUNNING" {
		t.Errorf("untranslated id = %q", got)
	}
	if Language() != "de" {
		t.Errorf("Language() = %q", Language())
	}
}
