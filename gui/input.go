package gui

import "github.com/jetsetilly/simon/hardware/pads"

// Action is the type of user input
type Action int

// Input from the user. For the pad actions the Data field is a bool which is
// true for a press and false for a release
type Input struct {
	Action Action
	Data   any
}

// List of valid Action values
const (
	Nothing Action = iota

	PadGreen
	PadBlue
	PadRed
	PadOrange
)

// PadAction returns the Action for the pad. Returns Nothing if the symbol is
// not valid
func PadAction(s pads.Symbol) Action {
	if !s.Valid() {
		return Nothing
	}
	return PadGreen + Action(s)
}

// Symbol returns the pad for the action. The second return value is false if
// the action is not a pad action
func (a Action) Symbol() (pads.Symbol, bool) {
	if a < PadGreen || a > PadOrange {
		return pads.None, false
	}
	return pads.Symbol(a - PadGreen), true
}

// Press returns an Input value for pressing (or releasing) a pad
func Press(s pads.Symbol, pressed bool) Input {
	return Input{Action: PadAction(s), Data: pressed}
}
