package trafficlight

import (
	"context"
	"time"

	"periph.io/x/conn/v3/physic"
)

// Lamp is a three-channel indicator lamp.
type Lamp interface {
	SetColor(c Color)
}

// Glyphs renders the countdown digit and the status cue.
type Glyphs interface {
	RenderDigit(value int, c Color)
	RenderText(cue string, c Color)
}

// Tone emits audible tones. Emit may block for up to d, and returns early
// if ctx is done.
type Tone interface {
	Emit(ctx context.Context, d time.Duration, pitch physic.Frequency)
}

// Resetter restarts the system. Reset does not wait for the outcome.
type Resetter interface {
	Reset()
}

// ResetFunc adapts a function to Resetter.
type ResetFunc func()

// Reset calls f.
func (f ResetFunc) Reset() { f() }
