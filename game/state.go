package game

import (
	"fmt"

	"github.com/jetsetilly/simon/hardware/pads"
)

// State of the game engine
type State int

// List of valid State values
const (
	AwaitingStart State = iota
	CPUTurn
	PlayerTurn
	GameOver
)

func (s State) String() string {
	switch s {
	case AwaitingStart:
		return "awaiting start"
	case CPUTurn:
		return "cpu turn"
	case PlayerTurn:
		return "player turn"
	case GameOver:
		return "game over"
	}
	return fmt.Sprintf("unknown state (%d)", int(s))
}

// Snapshot is a copy of the engine state. A snapshot is sent to every observer
// whenever the engine changes state
type Snapshot struct {
	State State

	// the length of the sequence that has been successfully repeated by the
	// player. this is the score of the current game
	Score int

	// the highest score since power on
	HighScore int

	// true between a wrong press and the next game start
	GameOver bool

	// the symbol that was expected and the symbol that was pressed on game
	// over. both are pads.None if the game is not over or if the game ended
	// because the sequence reached capacity
	Expected pads.Symbol
	Pressed  pads.Symbol

	// the index of the wrong press in the sequence
	FailedAt int

	// the game ended because the sequence reached capacity
	Won bool
}

func (s Snapshot) String() string {
	return fmt.Sprintf("%s: score %d (high score %d)", s.State, s.Score, s.HighScore)
}

// Observer is called with a copy of the engine state on every state change.
// Observers are called from the engine's goroutine and should not block
type Observer func(Snapshot)
