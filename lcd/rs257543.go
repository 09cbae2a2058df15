// Package lcd drives the LCD modules of the signal's screen via GPIO pins
// (using periph.io).
package lcd // import "github.com/DrJosh9000/trafficlight/lcd"

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Provides a basic translation from hex digits into segments.
var defaultRuneMap = map[rune]uint8{
	//     GFABCDE.
	' ': 0b00000000,
	'-': 0b10000000,
	'_': 0b00000100,
	'0': 0b01111110,
	'1': 0b00011000,
	'2': 0b10110110,
	'3': 0b10111100,
	'4': 0b11011000,
	'5': 0b11101100,
	'6': 0b11101110,
	'7': 0b00111000,
	'8': 0b11111110,
	'9': 0b11111100,
	'A': 0b11111010,
	'B': 0b11001110,
	'C': 0b01100110,
	'D': 0b10011110,
	'E': 0b11100110,
	'F': 0b11100010,
}

// Digits is the number of digits on an RS 257-543.
const Digits = 4

// RS257543 drives the RS 257-543 module (a discontinued 4-digit LCD module
// based on the Hughes 0438A chip), used as the countdown display. DEG, COL,
// and CUR are optional, and if provided, are assumed to each be connected via
// an XOR gate with BP as described in the data sheet. RuneMap is also optional
// and if provided, is used by Display to translate each rune into 8 segments.
type RS257543 struct {
	LD, CLK, DIN  gpio.PinOut // required, as described in the data sheet
	DEG, COL, CUR gpio.PinOut // optional

	RuneMap map[rune]uint8 // optional, uses a default map if nil
}

// Clear resets all segments on the display.
func (r *RS257543) Clear() error {
	if err := r.RawDisplay(0); err != nil {
		return err
	}
	// Reset colon, cursor, degree symbols
	for _, p := range []gpio.PinOut{r.CUR, r.COL, r.DEG} {
		if p == nil {
			continue
		}
		if err := p.Out(gpio.Low); err != nil {
			return fmt.Errorf("rs257543: clearing %s: %w", p, err)
		}
	}
	return nil
}

// Number shows n right-aligned. Values that do not fit show dashes.
func (r *RS257543) Number(n int) error {
	s := fmt.Sprintf("%*d", Digits, n)
	if len(s) > Digits {
		s = "----"
	}
	return r.Display(s)
}

// Display displays a string on the module. Each rune in the string is
// translated to a digit, except for '.', which is translated into the DP
// ("decimal point") segment of the following digit (the DP segment is to the
// left of each digit).
func (r *RS257543) Display(s string) error {
	return r.RawDisplay(r.toBits(s))
}

func (r *RS257543) toBits(s string) uint32 {
	runes := r.RuneMap
	if runes == nil {
		runes = defaultRuneMap
	}
	var x uint32
	dp := false
	for _, c := range s {
		if c == '.' {
			dp = true
			continue
		}
		x <<= 8
		x += uint32(runes[c])
		if dp {
			x++
			dp = false
		}
	}
	return x
}

// RawDisplay loads bits into the display directly.
func (r *RS257543) RawDisplay(bits uint32) error {
	// Load bits into the shift register:
	// - bit is read on falling edge of CLK
	// - maximum clock frequency is 1.5 MHz - this ticker causes CLK to run at
	//   0.5MHz.
	t := time.NewTicker(time.Microsecond)
	defer t.Stop()
	for i := 0; i < 32; i++ {
		if err := r.DIN.Out(bits&1 == 1); err != nil {
			return fmt.Errorf("rs257543: DIN: %w", err)
		}
		bits >>= 1

		if err := r.CLK.Out(gpio.High); err != nil {
			return fmt.Errorf("rs257543: CLK: %w", err)
		}
		<-t.C
		if err := r.CLK.Out(gpio.Low); err != nil {
			return fmt.Errorf("rs257543: CLK: %w", err)
		}
		<-t.C
	}
	// Then load from shift register into latches.
	if err := r.LD.Out(gpio.High); err != nil {
		return fmt.Errorf("rs257543: LD: %w", err)
	}
	<-t.C
	if err := r.LD.Out(gpio.Low); err != nil {
		return fmt.Errorf("rs257543: LD: %w", err)
	}
	return nil
}
