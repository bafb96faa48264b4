package audio

import (
	"strconv"

	"github.com/lixenwraith/bounce-arena/event"
	"github.com/lixenwraith/bounce-arena/parameter"
)

// Config controls the sound sink
type Config struct {
	Enabled       bool                        `json:"enabled"`
	MasterVolume  float64                     `json:"master_volume"`
	SampleRate    int                         `json:"sample_rate"`
	EffectVolumes map[event.EventType]float64 `json:"-"`
}

// DefaultConfig returns audio enabled at half volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[event.EventType]float64{
			event.EventFootstepA: parameter.FootstepVolume,
			event.EventFootstepB: parameter.FootstepVolume,
			event.EventExplosion: parameter.ExplosionVolume,
		},
	}
}

// ApplyEnv overlays ENABLED, MASTER_VOLUME (0-100) and SAMPLE_RATE read through lookup
// Unparseable values are ignored
func (c *Config) ApplyEnv(prefix string, lookup func(string) (string, bool)) {
	if v, ok := lookup(prefix + "AUDIO_ENABLED"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Enabled = b
		}
	}

	if v, ok := lookup(prefix + "MASTER_VOLUME"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.MasterVolume = float64(n) / 100.0
		}
	}

	if v, ok := lookup(prefix + "SAMPLE_RATE"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.SampleRate = n
		}
	}

	c.Sanitize()
}

// Sanitize clamps volumes into [0, 1] and restores a usable sample rate
func (c *Config) Sanitize() {
	c.MasterVolume = clampUnit(c.MasterVolume)
	if c.SampleRate <= 0 {
		c.SampleRate = parameter.AudioSampleRate
	}
	if c.EffectVolumes == nil {
		c.EffectVolumes = DefaultConfig().EffectVolumes
	}
	for k, v := range c.EffectVolumes {
		c.EffectVolumes[k] = clampUnit(v)
	}
}

// volumeFor returns the effective gain for an event type
func (c *Config) volumeFor(t event.EventType) float64 {
	v, ok := c.EffectVolumes[t]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}

func clampUnit(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
