package parameter

import "time"

// Audio defaults
const (
	AudioSampleRate   = 44100
	AudioBufferLength = 100 * time.Millisecond
	AudioMasterVolume = 0.5
)

// Footstep thump, variant B is pitched up a fifth
const (
	FootstepDuration = 70 * time.Millisecond
	FootstepAttack   = 3 * time.Millisecond
	FootstepRelease  = 50 * time.Millisecond
	FootstepFreqA    = 110.0
	FootstepFreqB    = 165.0
	FootstepVolume   = 0.6
)

// Explosion noise burst layered over a low rumble
const (
	ExplosionDuration = 600 * time.Millisecond
	ExplosionAttack   = 5 * time.Millisecond
	ExplosionRelease  = 500 * time.Millisecond
	ExplosionRumble   = 55.0
	ExplosionVolume   = 1.0
)
