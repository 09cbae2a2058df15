package trafficlight

// Phase is one step of the day cycle.
type Phase uint8

const (
	Green Phase = iota
	Yellow
	Red
)

// Phase durations in seconds.
const (
	GreenDuration  = 9
	YellowDuration = 3
	RedDuration    = 6
)

// Duration returns the number of seconds the phase lasts.
func (p Phase) Duration() int {
	switch p {
	case Green:
		return GreenDuration
	case Yellow:
		return YellowDuration
	case Red:
		return RedDuration
	}
	return 0
}

// Next returns the phase that follows p in the cycle.
func (p Phase) Next() Phase {
	switch p {
	case Green:
		return Yellow
	case Yellow:
		return Red
	}
	return Green
}

// Color returns the colour the phase is rendered in.
func (p Phase) Color() Color {
	switch p {
	case Green:
		return ColorGreen
	case Yellow:
		return ColorYellow
	case Red:
		return ColorRed
	}
	return ColorOff
}

func (p Phase) String() string {
	switch p {
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	}
	return "unknown"
}

// Mode is the operating regime.
type Mode uint8

const (
	Day   Mode = iota // full timed cycle
	Night             // caution regime, no countdown
)

func (m Mode) String() string {
	switch m {
	case Day:
		return "day"
	case Night:
		return "night"
	}
	return "unknown"
}

// Color is a lamp or glyph colour.
type Color uint8

const (
	ColorOff Color = iota
	ColorRed
	ColorGreen
	ColorYellow
)

// ColorAmber is the night caution colour. A three-channel lamp has no
// separate amber, so it is yellow.
const ColorAmber = ColorYellow

func (c Color) String() string {
	switch c {
	case ColorOff:
		return "off"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	}
	return "unknown"
}
