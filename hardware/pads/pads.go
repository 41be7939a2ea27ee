// Package pads describes the four LED/button pairs on the board. Each pair is
// identified by a Symbol.
package pads

import "fmt"

// Symbol identifies one of the four LED/button pairs
type Symbol uint8

// The four symbols. The colour names match the colour of the LED on the
// reference board
const (
	Green Symbol = iota
	Blue
	Red
	Orange
)

// Count is the number of symbols
const Count = 4

// None is returned when no valid symbol is available
const None Symbol = 0xff

// Valid returns true if the symbol is one of the four pads
func (s Symbol) Valid() bool {
	return s < Count
}

func (s Symbol) String() string {
	switch s {
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Orange:
		return "orange"
	case None:
		return "none"
	}
	return fmt.Sprintf("invalid(%d)", uint8(s))
}

// Released is the button word when no button is being pressed. Button lines
// are active-low so bit n of a button word is clear when the button for
// symbol n is pressed
const Released uint8 = 0x0f

// First returns the first pressed button in a button word. Buttons are checked
// in symbol order so the lowest symbol wins when more than one button is
// pressed. Returns None if no button is pressed
func First(word uint8) Symbol {
	for s := range Symbol(Count) {
		if word&(1<<s) == 0 {
			return s
		}
	}
	return None
}
