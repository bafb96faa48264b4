package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/bounce-arena/event"
	"github.com/lixenwraith/bounce-arena/parameter"
)

// SoundManager plays presentation events through the system speaker
// All methods are safe to call before Initialize or after a failed init; they do nothing
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
	played      int
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferLength)); err != nil {
		return fmt.Errorf("%w: %v", ErrSpeakerInit, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether sounds are being played
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues the sound for one event type
func (sm *SoundManager) Play(t event.EventType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := SoundFor(t, sm.cfg)
	if s == nil {
		log.Printf("audio: no sound for event %v", t)
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played++
}

// PlayEvents plays every event of a frame in order
func (sm *SoundManager) PlayEvents(evs []event.GameEvent) {
	for _, ev := range evs {
		sm.Play(ev.Type)
	}
}

// Played returns how many sounds were queued since Initialize
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// Cleanup silences all sounds and detaches from the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	sm.initialized = false
}
