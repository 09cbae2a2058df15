package lcd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/DrJosh9000/trafficlight"
)

// Panel is the signal's screen: a 7-segment countdown and a character
// status display. Both are monochrome, so colours are ignored. Either part
// may be nil.
type Panel struct {
	Countdown *RS257543
	Status    *QP5515

	Log *zap.Logger // optional
}

// statusLine is where cues go; the first line holds the title.
const statusLine = 1

// Init clears both displays and writes the title, which stays for the life
// of the panel. The status cursor is left at home.
func (p *Panel) Init(title string) error {
	if p.Countdown != nil {
		if err := p.Countdown.Clear(); err != nil {
			return fmt.Errorf("countdown display: %w", err)
		}
	}
	if p.Status != nil {
		if err := p.Status.Init(); err != nil {
			return fmt.Errorf("status display: %w", err)
		}
		if err := p.Status.WriteLine(0, title); err != nil {
			return fmt.Errorf("status display: %w", err)
		}
		if err := p.Status.ReturnHome(); err != nil {
			return fmt.Errorf("status display: %w", err)
		}
	}
	return nil
}

// RenderDigit shows the countdown value.
func (p *Panel) RenderDigit(value int, _ trafficlight.Color) {
	if p.Countdown == nil {
		return
	}
	if err := p.Countdown.Number(value); err != nil {
		p.logger().Error("countdown:render", zap.Int("value", value), zap.Error(err))
	}
}

// RenderText shows cue on the status line. An empty cue blanks it.
func (p *Panel) RenderText(cue string, _ trafficlight.Color) {
	if p.Status == nil {
		return
	}
	if err := p.Status.WriteLine(statusLine, cue); err != nil {
		p.logger().Error("status:render", zap.String("cue", cue), zap.Error(err))
	}
}

func (p *Panel) logger() *zap.Logger {
	if p.Log == nil {
		return zap.NewNop()
	}
	return p.Log
}

var _ trafficlight.Glyphs = (*Panel)(nil)
