package constants

import "time"

// Audio Device
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultMasterVolume is the master volume in percent
	DefaultMasterVolume = 50
)

// Highlight Tone Timing
const (
	HighlightSoundDuration = 180 * time.Millisecond
	HighlightSoundAttack   = 5 * time.Millisecond
	HighlightSoundRelease  = 120 * time.Millisecond
)

// Correct Chime Timing
const (
	CorrectSoundDuration = 220 * time.Millisecond
	CorrectSoundAttack   = 5 * time.Millisecond
	CorrectSoundRelease  = 180 * time.Millisecond
)

// Wrong Buzz Timing
const (
	WrongSoundDuration = 300 * time.Millisecond
	WrongSoundAttack   = 5 * time.Millisecond
	WrongSoundRelease  = 60 * time.Millisecond
)

// Round Complete Arpeggio Timing
const (
	CompleteNoteDuration = 120 * time.Millisecond
	CompleteNoteAttack   = 5 * time.Millisecond
	CompleteNoteRelease  = 80 * time.Millisecond
)
