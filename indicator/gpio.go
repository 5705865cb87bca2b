// Package indicator implements rdm.IndicatorPort on top of the Linux
// GPIO character-device API, driving the identify/mute status lines an
// RDM responder needs.
package indicator

import (
	"fmt"

	gpiocdev "github.com/warthog618/go-gpiocdev"
)

// gpioLine is the subset of *gpiocdev.Line this package drives, factored
// out so tests can substitute a mock without real GPIO hardware.
type gpioLine interface {
	SetValue(v int) error
	Value() (int, error)
	Close() error
}

// requestLine is swapped out in tests; production code always goes
// through gpiocdev.RequestLine.
var requestLine = func(chip string, offset int) (gpioLine, error) {
	return gpiocdev.RequestLine(chip, offset, gpiocdev.AsOutput(0))
}

// Line drives a single GPIO line as an rdm.IndicatorPort.
type Line struct {
	chip   string
	offset int
	invert bool

	line gpioLine
}

// NewLine returns a Line for chip (e.g. "gpiochip0") at offset; the line
// itself is only requested, as an output, by ConfigureOutput. invert
// flips the sense of Set, for indicators wired active-low.
func NewLine(chip string, offset int, invert bool) *Line {
	return &Line{chip: chip, offset: offset, invert: invert}
}

// ConfigureOutput requests the line as a low output, matching the power
// -on state RDMResponder_Initialize drives in the reference firmware.
func (l *Line) ConfigureOutput() {
	line, err := requestLine(l.chip, l.offset)
	if err != nil {
		// Best-effort: an indicator that fails to configure degrades to
		// a no-op rather than taking the responder down. The responder
		// core has no notion of hardware failure for status LEDs.
		return
	}
	l.line = line
}

// Set drives the line high (level=true) or low, honoring invert.
func (l *Line) Set(level bool) {
	if l.line == nil {
		return
	}
	if l.invert {
		level = !level
	}
	v := 0
	if level {
		v = 1
	}
	_ = l.line.SetValue(v)
}

// Toggle inverts the line's last-requested level.
func (l *Line) Toggle() {
	if l.line == nil {
		return
	}
	v, err := l.line.Value()
	if err != nil {
		return
	}
	_ = l.line.SetValue(1 - v)
}

// Close releases the underlying line handle.
func (l *Line) Close() error {
	if l.line == nil {
		return nil
	}
	return l.line.Close()
}

func (l *Line) String() string {
	return fmt.Sprintf("%s:%d", l.chip, l.offset)
}
