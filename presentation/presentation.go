// Package presentation contains the light and sound patterns shown at the
// start and the end of a game.
package presentation

import (
	"github.com/jetsetilly/simon/hardware/leds"
	"github.com/jetsetilly/simon/hardware/pads"
	"github.com/jetsetilly/simon/hardware/timer"
)

// Board is the hardware used by the presentation patterns
type Board interface {
	Light(p leds.Pattern, duration uint16) error
	Set(p leds.Pattern) error
	Clear(p leds.Pattern) error
	Wait(duration uint16)
	Alarm(on bool)
	Buzz(on bool)
}

// Presenter plays the patterns on a board
type Presenter struct {
	board Board
}

// NewPresenter is the preferred method of initialisation for the Presenter
// type
func NewPresenter(board Board) *Presenter {
	return &Presenter{
		board: board,
	}
}

// lightAll lights each pattern in turn for the same duration
func (p *Presenter) lightAll(duration uint16, patterns ...leds.Pattern) error {
	for _, pat := range patterns {
		if err := p.board.Light(pat, duration); err != nil {
			return err
		}
	}
	return nil
}

// NightRider sweeps a single LED from the first symbol to the last and back
// again for the number of steps. Each step lasts for duration ticks
func (p *Presenter) NightRider(steps int, duration uint16) error {
	var s pads.Symbol
	incr := true

	for range steps {
		if err := p.board.Light(leds.SymbolPattern(s), duration); err != nil {
			return err
		}
		if incr {
			s++
			if s == pads.Count-1 {
				incr = false
			}
		} else {
			s--
			if s == 0 {
				incr = true
			}
		}
	}

	return nil
}

// StartPattern is played when a new game starts
func (p *Presenter) StartPattern() error {
	// the LEDs fill up one at a time
	err := p.lightAll(timer.FifthSecond, 0, leds.PatternGreenBlue, leds.PatternNotOrange, leds.PatternAll)
	if err != nil {
		return err
	}
	p.board.Wait(timer.FifthSecond)

	err = p.NightRider(13, timer.FifthSecond)
	if err != nil {
		return err
	}
	p.board.Wait(timer.FifthSecond)

	err = p.lightAll(timer.FifthSecond,
		leds.PatternGreenRed, leds.PatternBlueOrange,
		leds.PatternGreenRed, leds.PatternBlueOrange,
	)
	if err != nil {
		return err
	}

	err = p.lightAll(timer.FifthSecond,
		leds.PatternGreenBlue, leds.PatternRedOrange,
		leds.PatternGreenBlue, leds.PatternRedOrange,
	)
	if err != nil {
		return err
	}

	for range 2 {
		p.board.Wait(timer.TenthSecond)
		if err := p.board.Light(leds.PatternAll, timer.FifthSecond); err != nil {
			return err
		}
	}

	p.board.Wait(timer.OneAndHalfSecond)

	return nil
}

// GameOver is played when the player presses the wrong button. The LED for the
// expected symbol is lit while the buzzer sounds
func (p *Presenter) GameOver(expected pads.Symbol) error {
	p.board.Buzz(true)
	p.board.Alarm(true)

	pat := leds.SymbolPattern(expected)
	if expected.Valid() {
		if err := p.board.Set(pat); err != nil {
			p.board.Buzz(false)
			return err
		}
	}

	p.board.Wait(timer.OneSecond)

	if expected.Valid() {
		if err := p.board.Clear(pat); err != nil {
			p.board.Buzz(false)
			return err
		}
	}
	p.board.Buzz(false)
	p.board.Alarm(false)

	return p.board.Light(leds.PatternAll, timer.TenthSecond)
}

// Win is played when the sequence reaches its maximum length
func (p *Presenter) Win() error {
	for i := range 3 {
		if i > 0 {
			p.board.Wait(timer.FifthSecond)
		}
		if err := p.board.Light(leds.PatternAll, timer.FifthSecond); err != nil {
			return err
		}
	}
	return nil
}
