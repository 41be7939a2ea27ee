// Package gui is the interface between the board and a front-end. The board
// never draws anything itself. Instead the front-end polls the state of the
// lamps and sends user input to the board over the UserInput channel.
package gui

import (
	"io"

	"github.com/jetsetilly/simon/hardware/leds"
)

// State of the board as seen by the front-end
type State int

// List of valid State values. The board is paused when it is powered off. A
// front-end should mute the buzzer while the board is paused but continue to
// show the lamps, which hold their last value
const (
	StateRunning State = iota
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	}
	return "unknown"
}

// Lamps is a snapshot of every output line that a front-end should show
type Lamps struct {
	LEDs   leds.Channels
	Ready  bool
	Go     bool
	Alarm  bool
	Buzzer bool
}

// AudioSetup is sent by the board when it is ready to produce audio
type AudioSetup struct {
	Freq int
	Read io.Reader
}

// GUI is the set of channels and callbacks shared by the board and the
// front-end. All fields are optional except UserInput
type GUI struct {
	// user input from the front-end to the board. the front-end should never
	// block on this channel
	UserInput chan Input

	// state changes from the board to the front-end
	State chan State

	// audio setup from the board to the front-end
	AudioSetup chan AudioSetup

	// lamp state. called by the front-end once per frame
	Lamps func() Lamps

	// most recent message from the board console. called by the front-end
	// once per frame
	Caption func() string
}

// NewGUI is the preferred method of initialisation for the GUI type
func NewGUI() *GUI {
	return &GUI{
		UserInput:  make(chan Input, 16),
		State:      make(chan State, 1),
		AudioSetup: make(chan AudioSetup, 1),
	}
}

// SetState sends a state change to the front-end. If a previous state change
// has not been collected yet it is replaced
func (g *GUI) SetState(s State) {
	for {
		select {
		case g.State <- s:
			return
		default:
		}
		select {
		case <-g.State:
		default:
		}
	}
}

// CurrentLamps returns the lamp state or a zero value if no lamps have been
// connected
func (g *GUI) CurrentLamps() Lamps {
	if g.Lamps == nil {
		return Lamps{}
	}
	return g.Lamps()
}

// CurrentCaption returns the most recent console message or the empty string
func (g *GUI) CurrentCaption() string {
	if g.Caption == nil {
		return ""
	}
	return g.Caption()
}
