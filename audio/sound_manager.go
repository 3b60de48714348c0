package audio

import (
	"log/slog"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/text-rts/event"
	"github.com/lixenwraith/text-rts/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager plays short combat cues through a shared mixer
// All methods are safe to call before Initialize or after a failed init; they do nothing audible
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	// Cues already started in the current tick
	tick   uint64
	played int

	log *slog.Logger
}

// NewSoundManager creates a new sound manager; a nil logger discards
func NewSoundManager(logger *slog.Logger) *SoundManager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SoundManager{
		mixer: &beep.Mixer{},
		log:   logger,
	}
}

// Initialize opens the speaker
// Failure is returned for the caller to log; the game continues without audio
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "speaker init")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Debug("speaker ready", "rate", int(sampleRate))
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetMuted toggles silent playback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports whether cues are silenced
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// HandleEvent plays the cue for ev, at most MaxCuesPerTick per tick
// Returns true when a cue was started or would have been with audio available
func (sm *SoundManager) HandleEvent(ev event.GameEvent) bool {
	kind := CueFor(ev)
	if kind == CueNone {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if ev.Tick != sm.tick {
		sm.tick = ev.Tick
		sm.played = 0
	}
	if sm.played >= parameter.MaxCuesPerTick {
		return false
	}
	sm.played++

	if !sm.initialized {
		return true
	}

	cue := newVolume(NewCue(kind, sampleRate), parameter.CueVolume, sm.muted)
	speaker.Lock()
	sm.mixer.Add(cue)
	speaker.Unlock()
	return true
}
