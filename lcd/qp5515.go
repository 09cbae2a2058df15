package lcd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// ErrBusyTimeout is returned when the controller keeps its busy flag set for
// longer than the QP5515 BusyTimeout.
var ErrBusyTimeout = errors.New("qp5515: busy flag timeout")

// Geometry of a 16x2 module.
const (
	Columns = 16
	Lines   = 2
)

// DefaultBusyTimeout bounds how long BusyWait polls the busy flag.
const DefaultBusyTimeout = 10 * time.Millisecond

// Execution times from the data sheet, used when RW is not wired.
const (
	execTime      = 40 * time.Microsecond
	clearExecTime = 1600 * time.Microsecond
)

var lineAddress = [Lines]uint8{0x00, 0x40}

// QP5515 implements a driver for a QP-5515 or QP-5516 module, used as the
// status screen. It assumes 8-bit mode (all 8 data pins are connected). The
// contrast adjust (pin 3 on mine) should be connected to the centre of a 10k
// trimpot between 0 and 5v.
//
// RW may be nil if the module's R/W pin is tied to ground. The busy flag
// cannot be read then, so each instruction waits out its data-sheet
// execution time instead.
type QP5515 struct {
	RS, RW, E gpio.PinOut   // register select, read/write, enable signal
	DB        [8]gpio.PinIO // data bits 0 - 7

	BusyTimeout time.Duration // defaults to DefaultBusyTimeout
}

// Init puts the module into 8-bit, 2-line mode with the display on, no
// cursor, and an incrementing address, then clears it.
func (q *QP5515) Init() error {
	steps := []func() error{
		func() error { return q.SetFunction(true, true, false) }, // 8-bit, 2-line, small font
		func() error { return q.SetDisplayMode(true, false, false) },
		func() error { return q.SetEntryMode(true, false) },
		q.Clear,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return fmt.Errorf("qp5515: init: %w", err)
		}
	}
	return nil
}

// WriteLine replaces the contents of a line with s, padded or cut to the
// display width.
func (q *QP5515) WriteLine(line int, s string) error {
	if line < 0 || line >= Lines {
		return fmt.Errorf("qp5515: line %d out of range", line)
	}
	if len(s) > Columns {
		s = s[:Columns]
	}
	if err := q.SetDDAddress(lineAddress[line]); err != nil {
		return err
	}
	return q.Display(s + strings.Repeat(" ", Columns-len(s)))
}

// Display writes data to the display.
func (q *QP5515) Display(s string) error {
	for _, r := range s {
		if err := q.WriteData(uint8(r)); err != nil {
			return err
		}
	}
	return nil
}

// ReadBFAC reads the busy flag and address counter.
func (q *QP5515) ReadBFAC() (uint8, error) {
	if q.RW == nil {
		return 0, errors.New("qp5515: RW not wired, cannot read")
	}
	if err := q.RS.Out(gpio.Low); err != nil {
		return 0, err
	}
	return q.rawReadData()
}

// BusyWait waits until the busy flag is cleared, or BusyTimeout passes. It
// returns immediately when RW is not wired.
func (q *QP5515) BusyWait() error {
	if q.RW == nil {
		return nil
	}
	timeout := q.BusyTimeout
	if timeout <= 0 {
		timeout = DefaultBusyTimeout
	}
	deadline := time.Now().Add(timeout)
	// check every 40µs
	t := time.NewTicker(40 * time.Microsecond)
	defer t.Stop()
	for {
		bfac, err := q.ReadBFAC()
		if err != nil {
			return err
		}
		if bfac&0b10000000 == 0 {
			return nil
		}
		if time.Now().After(deadline) {
			return ErrBusyTimeout
		}
		<-t.C
	}
}

// ReadData reads a value from CG RAM or DD RAM.
func (q *QP5515) ReadData() (uint8, error) {
	if q.RW == nil {
		return 0, errors.New("qp5515: RW not wired, cannot read")
	}
	if err := q.BusyWait(); err != nil {
		return 0, err
	}
	if err := q.RS.Out(gpio.High); err != nil {
		return 0, err
	}
	return q.rawReadData()
}

// RawFunction performs a function or sets an address for the next write.
func (q *QP5515) RawFunction(a uint8) error {
	if err := q.BusyWait(); err != nil {
		return err
	}
	if err := q.RS.Out(gpio.Low); err != nil {
		return err
	}
	if err := q.rawWriteData(a); err != nil {
		return err
	}
	if a <= 0b00000011 {
		// clear and return home are the slow ones
		q.settle(clearExecTime)
	} else {
		q.settle(execTime)
	}
	return nil
}

// Clear clears the display and returns the cursor to the home position.
func (q *QP5515) Clear() error {
	return q.RawFunction(0b00000001)
}

// ReturnHome returns the cursor to the home position and resets the display
// shift.
func (q *QP5515) ReturnHome() error {
	return q.RawFunction(0b00000010)
}

// SetEntryMode sets the data entry direction and whether to also shift.
func (q *QP5515) SetEntryMode(increment, shift bool) error {
	return q.RawFunction(0b00000100 | flag(increment, 0b10) | flag(shift, 0b01))
}

// SetDisplayMode turns on/off the whole display, cursor, or cursor-blinking.
func (q *QP5515) SetDisplayMode(display, cursor, blink bool) error {
	return q.RawFunction(0b00001000 | flag(display, 0b100) | flag(cursor, 0b10) | flag(blink, 0b01))
}

// SetFunction sets the interface data length, number of display lines, and
// character font.
// eightbit = false means switch to 4-bit operation.
// twolines = false means use 1 display line.
// largefont = false means use 5x7 font instead of 5x10 font.
func (q *QP5515) SetFunction(eightbit, twolines, largefont bool) error {
	return q.RawFunction(0b00100000 | flag(eightbit, 0b10000) | flag(twolines, 0b1000) | flag(largefont, 0b100))
}

// SetDDAddress sets the DD RAM address (0 <= a < 128).
func (q *QP5515) SetDDAddress(a uint8) error {
	return q.RawFunction(0b10000000 | a&0b01111111)
}

// WriteData writes a value to CG RAM or DD RAM.
func (q *QP5515) WriteData(b uint8) error {
	if err := q.BusyWait(); err != nil {
		return err
	}
	if err := q.RS.Out(gpio.High); err != nil {
		return err
	}
	if err := q.rawWriteData(b); err != nil {
		return err
	}
	q.settle(execTime)
	return nil
}

func flag(set bool, bit uint8) uint8 {
	if set {
		return bit
	}
	return 0
}

// settle waits out an instruction when the busy flag can't be polled.
func (q *QP5515) settle(d time.Duration) {
	if q.RW == nil {
		time.Sleep(d)
	}
}

func (q *QP5515) rawReadData() (uint8, error) {
	// Ensure the data pins are inputs
	for i := range q.DB {
		if err := q.DB[i].In(gpio.PullNoChange, gpio.NoEdge); err != nil {
			return 0, fmt.Errorf("qp5515: DB%d: %w", i, err)
		}
	}

	if err := q.RW.Out(gpio.High); err != nil {
		return 0, err
	}
	time.Sleep(250 * time.Nanosecond) // tAS > 100ns
	if err := q.E.Out(gpio.High); err != nil {
		return 0, err
	}
	time.Sleep(250 * time.Nanosecond) // tDDR < 190ns

	var b uint8
	for i := range q.DB {
		if q.DB[i].Read() {
			b |= 1 << i
		}
	}

	if err := q.E.Out(gpio.Low); err != nil {
		return 0, err
	}
	time.Sleep(500 * time.Nanosecond) // (tCYCE > 1000ns, PWEH > 450ns)

	return b, nil
}

func (q *QP5515) rawWriteData(b uint8) error {
	// Ensure the data pins are outputs
	for i := range q.DB {
		if err := q.DB[i].Out(gpio.Low); err != nil {
			return fmt.Errorf("qp5515: DB%d: %w", i, err)
		}
	}

	if q.RW != nil {
		if err := q.RW.Out(gpio.Low); err != nil {
			return err
		}
	}
	time.Sleep(250 * time.Nanosecond) // tAS > 100ns
	if err := q.E.Out(gpio.High); err != nil {
		return err
	}
	time.Sleep(250 * time.Nanosecond) // tDSW > 100ns

	for i := range q.DB {
		if err := q.DB[i].Out(b&(1<<i) != 0); err != nil {
			return fmt.Errorf("qp5515: DB%d: %w", i, err)
		}
	}

	if err := q.E.Out(gpio.Low); err != nil {
		return err
	}
	time.Sleep(500 * time.Nanosecond) // (tCYCE > 1000ns, PWEH > 450ns)
	return nil
}
