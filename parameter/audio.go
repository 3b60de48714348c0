package parameter

import "time"

// Audio cue shaping
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// HitToneFreq is the pitch of the strike cue in Hz
	HitToneFreq = 880.0

	// HitToneDuration is the length of the strike cue
	HitToneDuration = 50 * time.Millisecond

	// DeathToneFreq is the pitch of the removal cue in Hz
	DeathToneFreq = 220.0

	// DeathToneDuration is the length of the removal cue
	DeathToneDuration = 180 * time.Millisecond

	// CueAttack and CueRelease shape the envelope of every cue
	CueAttack  = 5 * time.Millisecond
	CueRelease = 20 * time.Millisecond

	// CueVolume is the gain applied to cues (beep effects.Volume, base 2)
	CueVolume = -2.0

	// MaxCuesPerTick bounds simultaneous cues so mass combat does not clip
	MaxCuesPerTick = 4
)
