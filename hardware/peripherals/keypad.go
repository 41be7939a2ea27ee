package peripherals

import (
	"fmt"

	"github.com/jetsetilly/simon/gui"
	"github.com/jetsetilly/simon/hardware/pads"
)

// Keypad is the four button pad of the board
type Keypad struct {
	lines Lines

	// the pressed state of each button as last reported by the front-end
	pressed [pads.Count]bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type
func NewKeypad(lines Lines) *Keypad {
	k := &Keypad{
		lines: lines,
	}
	k.Reset()
	return k
}

// Reset releases all buttons
func (k *Keypad) Reset() {
	for s := range pads.Symbol(pads.Count) {
		k.pressed[s] = false
		k.lines.SetButton(s, false)
	}
}

// Pressed returns true if the button for the symbol is being held
func (k *Keypad) Pressed(s pads.Symbol) bool {
	return s.Valid() && k.pressed[s]
}

// Update the button lines with user input. Input that isn't a pad action is
// ignored
func (k *Keypad) Update(inp gui.Input) error {
	s, ok := inp.Action.Symbol()
	if !ok {
		return nil
	}

	pressed, ok := inp.Data.(bool)
	if !ok {
		return fmt.Errorf("keypad: unexpected data for %s: %T", s, inp.Data)
	}

	// a repeated press or release does not change the line
	if k.pressed[s] == pressed {
		return nil
	}

	k.pressed[s] = pressed
	k.lines.SetButton(s, pressed)

	return nil
}
