package trafficlight

import (
	"context"
	"time"

	"periph.io/x/conn/v3/physic"
)

// TonePitch is the pitch of every cue tone.
const TonePitch = 300 * physic.Hertz

// Beat is one tone followed by silence.
type Beat struct {
	Length time.Duration
	Pitch  physic.Frequency
	Pause  time.Duration
}

// Period is the time from the start of one beat to the start of the next.
func (b Beat) Period() time.Duration { return b.Length + b.Pause }

// Rhythm returns the beat for s. Night mode has a slow heartbeat no matter
// what phase the clock was frozen in.
func Rhythm(s Snapshot) Beat {
	if s.Mode == Night {
		return Beat{Length: 500 * time.Millisecond, Pitch: TonePitch, Pause: 2 * time.Second}
	}
	switch s.Phase {
	case Yellow:
		return Beat{Length: 251 * time.Millisecond, Pitch: TonePitch}
	case Red:
		return Beat{Length: 500 * time.Millisecond, Pitch: TonePitch, Pause: 1500 * time.Millisecond}
	}
	return Beat{Length: 251 * time.Millisecond, Pitch: TonePitch, Pause: 749 * time.Millisecond}
}

// TonePresenter plays the rhythm of the current phase.
type TonePresenter struct {
	Clock *PhaseClock
	Tone  Tone

	// Scale divides every beat duration; tests use it to run faster.
	Scale int
}

// Run plays one beat at a time until ctx is done. Each beat takes a fresh
// snapshot, so a phase or mode change is heard from the next beat on.
func (p *TonePresenter) Run(ctx context.Context) error {
	for {
		start := time.Now()
		b := p.beat()
		p.Tone.Emit(ctx, b.Length, b.Pitch)
		if err := sleepUntil(ctx, start.Add(b.Period())); err != nil {
			return err
		}
	}
}

func (p *TonePresenter) beat() Beat {
	b := Rhythm(p.Clock.Snapshot())
	if p.Scale > 1 {
		b.Length /= time.Duration(p.Scale)
		b.Pause /= time.Duration(p.Scale)
	}
	return b
}
