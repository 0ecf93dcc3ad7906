package audio

import "github.com/lixenwraith/memgrid/constants"

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns enabled audio at the default master volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: float64(constants.DefaultMasterVolume) / 100.0,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: [soundTypeCount]float64{
			SoundHighlight: 0.6,
			SoundCorrect:   0.7,
			SoundWrong:     0.5,
			SoundComplete:  0.8,
		},
	}
}

// effectVolume returns the final linear volume for st
func (c *AudioConfig) effectVolume(st SoundType) float64 {
	if st < 0 || st >= soundTypeCount {
		return 0
	}
	return c.EffectVolumes[st] * c.MasterVolume
}
