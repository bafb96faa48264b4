package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/bounce-arena/event"
	"github.com/lixenwraith/bounce-arena/parameter"
	"github.com/lixenwraith/bounce-arena/vmath"
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a finite wave streamer
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(time.Now().UnixNano())),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Range(-1, 1)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s with a linear attack, flat sustain and linear release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: max(total-rel, att),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		} else if e.position >= e.releaseStart && e.release > 0 {
			vol = max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; zero gain is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateFootstepSound builds the short square thump for a wall bounce
func CreateFootstepSound(freq float64, rate beep.SampleRate) beep.Streamer {
	body := NewOscillator(freq, parameter.FootstepDuration, WaveSquare, rate)
	sub := NewOscillator(freq/2, parameter.FootstepDuration, WaveSine, rate)
	mixed := beep.Mix(newVolume(body, 0.4), newVolume(sub, 0.6))
	return NewEnvelope(mixed, parameter.FootstepDuration, parameter.FootstepAttack, parameter.FootstepRelease, rate)
}

// CreateExplosionSound builds a decaying noise burst over a low rumble
func CreateExplosionSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, parameter.ExplosionDuration, WaveNoise, rate)
	rumble := NewOscillator(parameter.ExplosionRumble, parameter.ExplosionDuration, WaveSine, rate)
	mixed := beep.Mix(newVolume(noise, 0.7), newVolume(rumble, 0.5))
	return NewEnvelope(mixed, parameter.ExplosionDuration, parameter.ExplosionAttack, parameter.ExplosionRelease, rate)
}

// SoundFor returns the streamer for a presentation event, nil for unknown types
func SoundFor(t event.EventType, cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch t {
	case event.EventFootstepA:
		s = CreateFootstepSound(parameter.FootstepFreqA, rate)
	case event.EventFootstepB:
		s = CreateFootstepSound(parameter.FootstepFreqB, rate)
	case event.EventExplosion:
		s = CreateExplosionSound(rate)
	default:
		return nil
	}
	return newVolume(s, cfg.volumeFor(t))
}
