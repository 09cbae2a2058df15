package trafficlight

import "sync"

// Snapshot is a consistent copy of the clock state.
type Snapshot struct {
	Phase     Phase
	Remaining int // seconds left in Phase
	Mode      Mode
	Color     Color // render colour of Phase
}

// PhaseClock is the shared traffic phase state. All methods are safe for
// concurrent use, and each one is a single critical section over the whole
// record, so readers never see a phase paired with another phase's countdown.
type PhaseClock struct {
	mu sync.Mutex

	phase     Phase
	remaining int
	mode      Mode

	// timedOut is set once Tick has reported the current phase's timeout.
	timedOut bool
}

// NewPhaseClock returns a clock in the boot state: Day, Green, 9 seconds.
func NewPhaseClock() *PhaseClock {
	return &PhaseClock{
		phase:     Green,
		remaining: Green.Duration(),
		mode:      Day,
	}
}

// Advance moves to the next phase and resets the countdown to its duration.
func (c *PhaseClock) Advance() (Phase, Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.advance()
	return c.phase, c.phase.Color()
}

// Tick counts down one second and reports whether the countdown reached
// zero. The timeout is reported once: further calls at zero do not
// decrement and return false until the phase is advanced.
func (c *PhaseClock) Tick() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tick()
}

// Step performs one countdown period: in Day mode it ticks and, on timeout,
// advances. In Night mode it leaves the clock untouched. It reports whether
// the phase changed.
func (c *PhaseClock) Step() (Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != Day {
		return c.snapshot(), false
	}
	if !c.tick() {
		return c.snapshot(), false
	}
	c.advance()
	return c.snapshot(), true
}

// Snapshot returns the current state.
func (c *PhaseClock) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Mode returns the current mode.
func (c *PhaseClock) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// SetMode installs m. Going from Night to Day restarts the cycle at Green;
// going from Day to Night freezes the phase and countdown. Setting the
// current mode again changes nothing.
func (c *PhaseClock) SetMode(m Mode) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setMode(m)
	return c.snapshot()
}

// Toggle flips the mode with the same rules as SetMode and returns the
// resulting state.
func (c *PhaseClock) Toggle() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode == Night {
		c.setMode(Day)
	} else {
		c.setMode(Night)
	}
	return c.snapshot()
}

func (c *PhaseClock) setMode(m Mode) {
	if m == c.mode {
		return
	}
	if c.mode == Night && m == Day {
		c.phase = Green
		c.remaining = Green.Duration()
		c.timedOut = false
	}
	c.mode = m
}

func (c *PhaseClock) tick() bool {
	if c.remaining > 0 {
		c.remaining--
		if c.remaining > 0 {
			return false
		}
	}
	if c.timedOut {
		return false
	}
	c.timedOut = true
	return true
}

func (c *PhaseClock) advance() {
	c.phase = c.phase.Next()
	c.remaining = c.phase.Duration()
	c.timedOut = false
}

func (c *PhaseClock) snapshot() Snapshot {
	return Snapshot{
		Phase:     c.phase,
		Remaining: c.remaining,
		Mode:      c.mode,
		Color:     c.phase.Color(),
	}
}
