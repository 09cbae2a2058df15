package trafficlight

import (
	"context"
	"time"
)

// DisplayPeriod is how often the screen is refreshed.
const DisplayPeriod = time.Second

// Status cues shown in Day mode.
const (
	CueGo      = "go"
	CueCaution = "caution"
	CueStop    = "stop"
)

// Frame is what the screen shows for one snapshot.
type Frame struct {
	Digit      int
	DigitColor Color
	Cue        string // empty clears the status line
	CueColor   Color
}

// DisplayFrame maps s to a screen frame. Night mode shows a yellow zero and
// no cue.
func DisplayFrame(s Snapshot) Frame {
	if s.Mode == Night {
		return Frame{Digit: 0, DigitColor: ColorAmber, CueColor: ColorOff}
	}
	f := Frame{Digit: s.Remaining, DigitColor: s.Color, CueColor: s.Color}
	switch s.Phase {
	case Green:
		f.Cue = CueGo
	case Yellow:
		f.Cue = CueCaution
	case Red:
		f.Cue = CueStop
	}
	return f
}

// DisplayPresenter draws the countdown digit and status cue.
type DisplayPresenter struct {
	Clock  *PhaseClock
	Glyphs Glyphs
	Period time.Duration // defaults to DisplayPeriod
}

// Render draws one snapshot.
func (p *DisplayPresenter) Render() {
	f := DisplayFrame(p.Clock.Snapshot())
	p.Glyphs.RenderDigit(f.Digit, f.DigitColor)
	p.Glyphs.RenderText(f.Cue, f.CueColor)
}

// Run renders every period until ctx is done.
func (p *DisplayPresenter) Run(ctx context.Context) error {
	t := time.NewTicker(orDefault(p.Period, DisplayPeriod))
	defer t.Stop()
	for {
		p.Render()
		select {
		case <-t.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
