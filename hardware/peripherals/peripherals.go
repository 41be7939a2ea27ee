// Package peripherals turn user input from a front-end into changes of the
// board's input lines.
package peripherals

import "github.com/jetsetilly/simon/hardware/pads"

// Lines is the set of input lines a peripheral can change
type Lines interface {
	SetButton(s pads.Symbol, pressed bool)
}
