package audio

import "errors"

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
	ErrSpeakerInit   = errors.New("speaker initialization failed")
)
