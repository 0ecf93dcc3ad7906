package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 0.5, cfg.MasterVolume)
	assert.Equal(t, 44100, cfg.SampleRate)

	expectedVolumes := map[SoundType]float64{
		SoundHighlight: 0.6,
		SoundCorrect:   0.7,
		SoundWrong:     0.5,
		SoundComplete:  0.8,
	}
	for st, expected := range expectedVolumes {
		assert.Equal(t, expected, cfg.EffectVolumes[st], "volume for %s", st)
	}
}

func TestEffectVolume(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0.5

	assert.InDelta(t, 0.4, cfg.effectVolume(SoundComplete), 1e-9)
	assert.Zero(t, cfg.effectVolume(soundTypeCount))
	assert.Zero(t, cfg.effectVolume(-1))
}

func TestSoundTypeString(t *testing.T) {
	names := map[SoundType]string{
		SoundHighlight: "highlight",
		SoundCorrect:   "correct",
		SoundWrong:     "wrong",
		SoundComplete:  "complete",
		soundTypeCount: "unknown",
	}
	for st, want := range names {
		assert.Equal(t, want, st.String())
	}
}
