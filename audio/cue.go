package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/text-rts/event"
	"github.com/lixenwraith/text-rts/parameter"
)

// CueKind identifies a combat sound
type CueKind int

const (
	CueNone CueKind = iota
	CueHit
	CueDeath
)

// cueShape is the synthesis recipe of a cue
type cueShape struct {
	freq     float64
	duration time.Duration
	wave     WaveType
}

var cueShapes = map[CueKind]cueShape{
	CueHit:   {parameter.HitToneFreq, parameter.HitToneDuration, WaveSquare},
	CueDeath: {parameter.DeathToneFreq, parameter.DeathToneDuration, WaveNoise},
}

// CueFor maps a game event to its cue
func CueFor(ev event.GameEvent) CueKind {
	switch ev.Type {
	case event.EventUnitDamaged:
		return CueHit
	case event.EventUnitDestroyed:
		return CueDeath
	}
	return CueNone
}

// NewCue builds the streamer for kind at rate, nil for CueNone
func NewCue(kind CueKind, rate beep.SampleRate) beep.Streamer {
	shape, ok := cueShapes[kind]
	if !ok {
		return nil
	}
	osc := NewOscillator(shape.freq, shape.duration, shape.wave, rate)
	return NewEnvelope(osc, shape.duration, parameter.CueAttack, parameter.CueRelease, rate)
}
