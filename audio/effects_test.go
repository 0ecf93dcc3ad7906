package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain streams s to exhaustion and returns total samples and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			peak = math.Max(peak, math.Max(math.Abs(buf[j][0]), math.Abs(buf[j][1])))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	require.FailNow(t, "stream did not terminate")
	return 0, 0
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 50 * time.Millisecond

	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw} {
		osc := NewOscillator(440, duration, wave, rate)
		total, peak := drain(t, osc)

		assert.Equal(t, rate.N(duration), total, "wave %d length", wave)
		assert.LessOrEqual(t, peak, 1.0, "wave %d range", wave)
		assert.NoError(t, osc.Err())
	}
}

func TestOscillatorSquareValues(t *testing.T) {
	osc := NewOscillator(220, 20*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	samples := make([][2]float64, 100)
	n, _ := osc.Stream(samples)

	for i := 0; i < n; i++ {
		v := samples[i][0]
		assert.True(t, v == -1.0 || v == 1.0, "sample %d = %f", i, v)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	src := NewOscillator(0, time.Second, WaveSquare, rate) // phase 0 gives constant 1.0
	env := NewEnvelope(src, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	samples := make([][2]float64, 2000)
	n, _ := env.Stream(samples)
	require.Equal(t, 1000, n, "envelope caps at its duration")

	assert.Zero(t, samples[0][0], "silent first sample")
	assert.Equal(t, 1.0, samples[500][0], "full volume mid-sustain")
	assert.LessOrEqual(t, samples[999][0], 0.02, "near-silent tail")

	m, ok := env.Stream(samples)
	assert.Zero(t, m)
	assert.False(t, ok)
}

func TestCreateSoundTerminates(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)
	limit := rate.N(2 * time.Second)

	for st := SoundHighlight; st < soundTypeCount; st++ {
		s := CreateSound(st, cfg)
		require.NotNil(t, s, "streamer for %s", st)

		total, peak := drain(t, s)
		assert.Positive(t, total, "%s length", st)
		assert.LessOrEqual(t, total, limit, "%s length", st)
		assert.LessOrEqual(t, peak, 1.0, "%s peak", st)
	}

	assert.Nil(t, CreateSound(soundTypeCount, cfg))
}

func TestMutedVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	_, peak := drain(t, CreateWrongSound(cfg))
	assert.Zero(t, peak)
}
