// Package diagnostics contains the self-tests of the board. The self-tests are
// an alternative to the game and never touch any game state. The alarm lamp is
// lit for as long as the diagnostics are active.
package diagnostics

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/jetsetilly/simon/hardware/leds"
	"github.com/jetsetilly/simon/hardware/pads"
	"github.com/jetsetilly/simon/hardware/timer"
)

// Board is the hardware exercised by the self-tests
type Board interface {
	Read(echo bool) (pads.Symbol, error)
	Light(p leds.Pattern, duration uint16) error
	Set(p leds.Pattern) error
	Clear(p leds.Pattern) error
	Wait(duration uint16)
	Alarm(on bool)
	Buzz(on bool)
	Status() string
}

// Sweeper implementations light the LEDs one at a time from the first to the
// last and back again
type Sweeper interface {
	NightRider(steps int, duration uint16) error
}

// Random is the source of symbols for the Sequence() test
type Random interface {
	IntN(n int) int
}

// Diagnostics runs self-tests on a board
type Diagnostics struct {
	board Board
	sweep Sweeper
	rnd   Random
}

// NewDiagnostics is the preferred method of initialisation for the Diagnostics
// type. If rnd is nil a randomly seeded source is used
func NewDiagnostics(board Board, sweep Sweeper, rnd Random) *Diagnostics {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Diagnostics{
		board: board,
		sweep: sweep,
		rnd:   rnd,
	}
}

// Begin lights the alarm lamp and turns off all game LEDs
func (d *Diagnostics) Begin() error {
	d.board.Alarm(true)
	return d.board.Clear(leds.PatternAll)
}

// End turns off the alarm lamp, the buzzer and all game LEDs
func (d *Diagnostics) End() error {
	d.board.Buzz(false)
	d.board.Alarm(false)
	return d.board.Clear(leds.PatternAll)
}

// NightRider sweeps the LEDs for the number of steps
func (d *Diagnostics) NightRider(steps int) error {
	if steps < 0 {
		return fmt.Errorf("night rider: steps must be positive: %d", steps)
	}
	return d.sweep.NightRider(steps, timer.FifthSecond)
}

// Solder lights all LEDs and leaves them lit until a button is pressed
func (d *Diagnostics) Solder() error {
	if err := d.board.Set(leds.PatternAll); err != nil {
		return err
	}
	_, err := d.board.Read(false)
	if err != nil {
		return err
	}
	return d.board.Clear(leds.PatternAll)
}

// Buzzer sounds the buzzer for the number of ticks
func (d *Diagnostics) Buzzer(duration uint16) {
	d.board.Buzz(true)
	d.board.Wait(duration)
	d.board.Buzz(false)
}

// Sequence creates a random sequence of symbols and plays it back. The
// sequence is returned so that it can be compared with what was seen
func (d *Diagnostics) Sequence(n int) ([]pads.Symbol, error) {
	if n < 0 {
		return nil, fmt.Errorf("sequence: length must be positive: %d", n)
	}

	seq := make([]pads.Symbol, n)
	for i := range seq {
		seq[i] = pads.Symbol(d.rnd.IntN(pads.Count))
	}

	for _, s := range seq {
		d.board.Wait(timer.TenthSecond)
		if err := d.board.Light(leds.SymbolPattern(s), timer.HalfSecond); err != nil {
			return seq, err
		}
	}

	return seq, nil
}

// Delay blinks all LEDs on and off, one second each way, for the number of
// blinks. This shows that the tick source has the correct period
func (d *Diagnostics) Delay(blinks int) error {
	for range blinks {
		if err := d.board.Light(leds.PatternAll, timer.OneSecond); err != nil {
			return err
		}
		d.board.Wait(timer.OneSecond)
	}
	return nil
}

// Pattern lights any pattern for the number of ticks. An invalid pattern
// causes the LED encoder to fault
func (d *Diagnostics) Pattern(p leds.Pattern, duration uint16) error {
	return d.board.Light(p, duration)
}

// Status returns the board status
func (d *Diagnostics) Status() string {
	return d.board.Status()
}

// FormatSequence returns a sequence as a space separated list of symbol names
func FormatSequence(seq []pads.Symbol) string {
	s := make([]string, len(seq))
	for i := range seq {
		s[i] = seq[i].String()
	}
	return strings.Join(s, " ")
}
