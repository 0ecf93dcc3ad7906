package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/memgrid/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
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
	releaseStart int
	release      int
	total        int
}

// NewEnvelope shapes s with attack/release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	start := total - rel
	if start < att {
		start = att
	}
	return &envelope{
		streamer:     s,
		attack:       att,
		releaseStart: start,
		release:      rel,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if remaining := e.total - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= e.releaseStart {
			vol = float64(e.total-e.position) / float64(e.release)
		}
		if vol < 0 {
			vol = 0
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear volume; zero or less is silent
// math.Log2(0) is -Inf, so silence is explicit
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a shaped single-oscillator note
func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// CreateHighlightSound generates a soft blip for a lit sequence cell
func CreateHighlightSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(660.0, WaveSine, constants.HighlightSoundDuration,
		constants.HighlightSoundAttack, constants.HighlightSoundRelease, rate)
	return newVolume(s, cfg.effectVolume(SoundHighlight))
}

// CreateCorrectSound generates a bright two-partial chime
func CreateCorrectSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	fund := tone(880.0, WaveSine, constants.CorrectSoundDuration,
		constants.CorrectSoundAttack, constants.CorrectSoundRelease, rate)
	over := tone(1320.0, WaveSine, constants.CorrectSoundDuration,
		constants.CorrectSoundAttack, constants.CorrectSoundRelease, rate)

	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	return newVolume(beep.Take(rate.N(constants.CorrectSoundDuration), mixed), cfg.effectVolume(SoundCorrect))
}

// CreateWrongSound generates a low harsh buzz
func CreateWrongSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(110.0, WaveSaw, constants.WrongSoundDuration,
		constants.WrongSoundAttack, constants.WrongSoundRelease, rate)
	return newVolume(s, cfg.effectVolume(SoundWrong))
}

// CreateCompleteSound generates a rising C-E-G arpeggio
func CreateCompleteSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	notes := []float64{523.25, 659.25, 783.99}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		parts = append(parts, tone(freq, WaveSquare, constants.CompleteNoteDuration,
			constants.CompleteNoteAttack, constants.CompleteNoteRelease, rate))
	}
	return newVolume(beep.Seq(parts...), cfg.effectVolume(SoundComplete)*0.5)
}

// CreateSound dispatches to the generator for st
func CreateSound(st SoundType, cfg *AudioConfig) beep.Streamer {
	switch st {
	case SoundHighlight:
		return CreateHighlightSound(cfg)
	case SoundCorrect:
		return CreateCorrectSound(cfg)
	case SoundWrong:
		return CreateWrongSound(cfg)
	case SoundComplete:
		return CreateCompleteSound(cfg)
	default:
		return nil
	}
}
