package audio

import (
	"errors"
	"testing"

	"github.com/lixenwraith/bounce-arena/event"
)

// TestSoundManagerGracefulDegradation verifies calls before Initialize are no-ops
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	sm.Play(event.EventExplosion)
	sm.PlayEvents([]event.GameEvent{{Type: event.EventFootstepA}})
	sm.Cleanup()

	if sm.Enabled() || sm.Played() != 0 {
		t.Errorf("uninitialized manager reported enabled=%v played=%d", sm.Enabled(), sm.Played())
	}
}

// TestSoundManagerDisabled verifies configuration can switch audio off
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); !errors.Is(err, ErrAudioDisabled) {
		t.Fatalf("Initialize() = %v, want ErrAudioDisabled", err)
	}
	sm.Play(event.EventFootstepB)
	if sm.Played() != 0 {
		t.Error("disabled manager played a sound")
	}
}

// TestSoundManagerInitialization exercises the speaker when a device is present
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(DefaultConfig())

	if err := sm.Initialize(); err != nil {
		t.Logf("speaker unavailable, skipping playback: %v", err)
		return
	}
	defer sm.Cleanup()

	sm.PlayEvents([]event.GameEvent{{Type: event.EventFootstepA}, {Type: event.EventExplosion}})
	if sm.Played() != 2 {
		t.Errorf("Played() = %d, want 2", sm.Played())
	}
}
