// Package game is the Simon game engine. The engine extends a sequence of
// symbols by one on every round, plays the sequence back on the LEDs and then
// checks the player's attempt to repeat it.
//
// The engine owns all game state. Nothing is global, so tests can create as
// many engines as they need, each connected to a scripted board.
package game

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/jetsetilly/simon/hardware/leds"
	"github.com/jetsetilly/simon/hardware/pads"
	"github.com/jetsetilly/simon/hardware/timer"
	"github.com/jetsetilly/simon/logger"
)

// Board is the hardware used by the engine
type Board interface {
	// Read blocks until a button has been pressed and released
	Read(echo bool) (pads.Symbol, error)

	// Light the pattern for duration ticks
	Light(p leds.Pattern, duration uint16) error

	// Wait blocks for duration ticks
	Wait(duration uint16)

	// the indicator lamps used at the start of a game
	Ready(on bool)
	Go(on bool)
}

// Presenter shows the light and sound patterns for the start and the end of a
// game. Each function returns when the pattern has finished
type Presenter interface {
	StartPattern() error
	GameOver(expected pads.Symbol) error
	Win() error
}

// Random is the source of new symbols
type Random interface {
	IntN(n int) int
}

// NewRandom returns a Random implementation seeded with the value. The same
// seed always produces the same sequence of symbols
func NewRandom(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// ErrGameOver is returned by CPUTurn() and PlayerTurn() if they are called
// after the game has ended and before the next game start
var ErrGameOver = errors.New("game is over")

// Engine is the game state machine
type Engine struct {
	board Board
	show  Presenter
	rnd   Random

	state State

	seq    Sequence
	length int

	gameOver bool
	expected pads.Symbol
	pressed  pads.Symbol
	failedAt int
	won      bool

	highScore int

	observers []Observer
}

// NewEngine is the preferred method of initialisation for the Engine type. If
// rnd is nil the engine is given its own randomly seeded source
func NewEngine(board Board, show Presenter, rnd Random) *Engine {
	if rnd == nil {
		rnd = NewRandom(rand.Uint64())
	}
	e := &Engine{
		board:    board,
		show:     show,
		rnd:      rnd,
		expected: pads.None,
		pressed:  pads.None,
	}
	return e
}

// AddObserver adds a function to be called on every state change
func (e *Engine) AddObserver(o Observer) {
	e.observers = append(e.observers, o)
}

// Snapshot returns a copy of the current engine state
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		State:     e.state,
		Score:     e.length,
		HighScore: e.highScore,
		GameOver:  e.gameOver,
		Expected:  e.expected,
		Pressed:   e.pressed,
		FailedAt:  e.failedAt,
		Won:       e.won,
	}
}

// State returns the current state of the engine
func (e *Engine) State() State {
	return e.state
}

// Score returns the length of the sequence successfully repeated by the
// player in the current game
func (e *Engine) Score() int {
	return e.length
}

// HighScore returns the highest score since the engine was created
func (e *Engine) HighScore() int {
	return e.highScore
}

// Sequence returns a copy of the symbols in the current sequence
func (e *Engine) Sequence() []pads.Symbol {
	return e.seq.Symbols()
}

func (e *Engine) setState(s State) {
	e.state = s
	snap := e.Snapshot()
	logger.Log(logger.Allow, "engine", snap)
	for _, o := range e.observers {
		o(snap)
	}
}

// Reset prepares the engine for a new game without waiting for the player.
// The high score is not changed. Calling Reset() more than once has the same
// effect as calling it once
func (e *Engine) Reset() {
	e.gameOver = false
	e.expected = pads.None
	e.pressed = pads.None
	e.failedAt = 0
	e.won = false
	e.length = 0
	e.seq.Clear()
}

// GameStart waits for the player to press any button and then starts a new
// game. The ready lamp is lit while waiting and the go lamp is flashed when
// the button is pressed
func (e *Engine) GameStart() error {
	if e.state != AwaitingStart {
		e.setState(AwaitingStart)
	}

	e.board.Ready(true)
	_, err := e.board.Read(false)
	e.board.Ready(false)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	e.board.Go(true)
	e.board.Wait(timer.TenthSecond)
	e.board.Go(false)

	e.Reset()

	if err := e.show.StartPattern(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	e.setState(CPUTurn)
	return nil
}

// CPUTurn adds a random symbol to the sequence and then plays back the whole
// sequence
func (e *Engine) CPUTurn() error {
	if e.gameOver {
		return ErrGameOver
	}

	if e.state != CPUTurn {
		e.setState(CPUTurn)
	}

	// the new symbol is added before playback so that it is included in it
	err := e.seq.Append(pads.Symbol(e.rnd.IntN(pads.Count)))
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	for i := 0; i <= e.length; i++ {
		e.board.Wait(timer.FifthSecond)
		err := e.board.Light(leds.SymbolPattern(e.seq.At(i)), timer.HalfSecond)
		if err != nil {
			return fmt.Errorf("engine: %w", err)
		}
	}

	e.setState(PlayerTurn)
	return nil
}

// PlayerTurn reads the player's attempt at repeating the sequence. The turn
// ends on the first wrong press, or when the whole sequence has been
// repeated. The score is only increased if the whole sequence was repeated
func (e *Engine) PlayerTurn() error {
	if e.gameOver {
		return ErrGameOver
	}

	for i := 0; i <= e.length && !e.gameOver; i++ {
		s, err := e.board.Read(true)
		if err != nil {
			return fmt.Errorf("engine: %w", err)
		}

		if s != e.seq.At(i) {
			e.gameOver = true
			e.expected = e.seq.At(i)
			e.pressed = s
			e.failedAt = i
		}
	}

	if e.gameOver {
		e.setState(GameOver)
		return nil
	}

	e.length++

	// there is no room for another symbol so the game is won
	if e.length >= Capacity {
		e.gameOver = true
		e.won = true
		e.setState(GameOver)
		return nil
	}

	e.setState(CPUTurn)
	return nil
}

// GameOver updates the high score and shows the game over pattern. For a
// game ended by a wrong press the pattern shows the expected symbol
func (e *Engine) GameOver() error {
	if e.length > e.highScore {
		e.highScore = e.length
	}

	var err error
	if e.won {
		err = e.show.Win()
	} else {
		err = e.show.GameOver(e.expected)
	}
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	e.setState(AwaitingStart)
	return nil
}

// Step runs the function for the current state
func (e *Engine) Step() error {
	switch e.state {
	case AwaitingStart:
		return e.GameStart()
	case CPUTurn:
		return e.CPUTurn()
	case PlayerTurn:
		return e.PlayerTurn()
	case GameOver:
		return e.GameOver()
	}
	return fmt.Errorf("engine: %v", e.state)
}

// Run the engine until the stop channel is closed or an error occurs. The
// stop channel is only checked between states, so a Run() blocked waiting for
// the player will not return until the player presses a button
func (e *Engine) Run(stop chan bool) error {
	for {
		select {
		case <-stop:
			return nil
		default:
		}

		err := e.Step()
		if err != nil {
			return err
		}
	}
}
