// Package hardware is the Simon board. The Board type brings together the
// ports, the time base, the LED encoder, the button reader and the buzzer.
package hardware

import (
	"fmt"
	"time"

	"github.com/jetsetilly/simon/gui"
	"github.com/jetsetilly/simon/hardware/buttons"
	"github.com/jetsetilly/simon/hardware/buzzer"
	"github.com/jetsetilly/simon/hardware/leds"
	"github.com/jetsetilly/simon/hardware/pads"
	"github.com/jetsetilly/simon/hardware/peripherals"
	"github.com/jetsetilly/simon/hardware/ports"
	"github.com/jetsetilly/simon/hardware/timer"
	"github.com/jetsetilly/simon/logger"
)

// Board is the emulated controller board
type Board struct {
	g *gui.GUI

	Lines  *ports.Lines
	Timer  *timer.Timer
	Source *timer.Source
	LEDs   *leds.Encoder
	Input  *buttons.Reader
	Buzzer *buzzer.Buzzer

	keypad *peripherals.Keypad

	// input servicing goroutine
	stop chan bool
	done chan bool
}

// Create a new board. The GUI argument can be nil if the board is not
// connected to a front-end. A period of zero means the default tick period
func Create(g *gui.GUI, period time.Duration) *Board {
	b := &Board{
		g:     g,
		Lines: ports.NewLines(),
		Timer: timer.NewTimer(),
	}

	b.Source = timer.NewSource(b.Timer, period)
	b.LEDs = leds.NewEncoder(b.Lines, b.Timer)
	b.Input = buttons.NewReader(b.Lines, b.LEDs)
	b.Buzzer = buzzer.NewBuzzer(b.Lines)
	b.keypad = peripherals.NewKeypad(b.Lines)

	if g != nil {
		g.Lamps = b.Lamps
	}

	return b
}

// PowerOn starts the tick source and, if the board is connected to a
// front-end, the servicing of user input
func (b *Board) PowerOn() {
	if b.Source.Running() {
		return
	}

	b.Lines.Reset()
	b.Source.Start()

	if b.g != nil {
		b.stop = make(chan bool)
		b.done = make(chan bool)
		go b.serviceInput()

		if b.g.AudioSetup != nil {
			select {
			case b.g.AudioSetup <- gui.AudioSetup{Freq: buzzer.SampleFreq, Read: b.Buzzer}:
			default:
				logger.Log(logger.Allow, "board", "audio setup already pending")
			}
		}
		b.g.SetState(gui.StateRunning)
	}

	logger.Logf(logger.Allow, "board", "power on (tick period %v)", b.Source.Period())
}

// PowerOff stops the tick source and the servicing of user input. A connected
// front-end is paused. The output lines are not changed so the lamps continue
// to show their last value.
//
// Any call to Wait() made after PowerOff() will block forever
func (b *Board) PowerOff() {
	if !b.Source.Running() {
		return
	}
	b.Source.Stop()
	if b.stop != nil {
		close(b.stop)
		<-b.done
		b.stop = nil
		b.g.SetState(gui.StatePaused)
	}
	logger.Log(logger.Allow, "board", "power off")
}

// Powered returns true if the board is switched on
func (b *Board) Powered() bool {
	return b.Source.Running()
}

func (b *Board) serviceInput() {
	defer close(b.done)
	for {
		select {
		case <-b.stop:
			return
		case inp := <-b.g.UserInput:
			b.handleInput(inp)
		}
	}
}

func (b *Board) handleInput(inp gui.Input) {
	// drain any other input that is already waiting
	var drained bool
	for !drained {
		err := b.keypad.Update(inp)
		if err != nil {
			logger.Log(logger.Allow, "board", err)
		}

		select {
		default:
			drained = true
		case inp = <-b.g.UserInput:
		}
	}
}

// Read blocks until the player presses and releases a button. The pressed
// button is echoed on its LED if echo is true
func (b *Board) Read(echo bool) (pads.Symbol, error) {
	s, err := b.Input.Read(echo)
	if err != nil {
		return s, fmt.Errorf("board: %w", err)
	}
	return s, nil
}

// Light the pattern for duration ticks
func (b *Board) Light(p leds.Pattern, duration uint16) error {
	if err := b.LEDs.Light(p, duration); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	return nil
}

// Set turns on the LEDs for the pattern and leaves them on
func (b *Board) Set(p leds.Pattern) error {
	if err := b.LEDs.Set(p); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	return nil
}

// Clear turns off the LEDs for the pattern
func (b *Board) Clear(p leds.Pattern) error {
	if err := b.LEDs.Clear(p); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	return nil
}

// Wait blocks for duration ticks
func (b *Board) Wait(duration uint16) {
	b.Timer.Wait(duration)
}

// Ready changes the ready lamp
func (b *Board) Ready(on bool) {
	b.Lines.Ready(on)
}

// Go changes the go lamp
func (b *Board) Go(on bool) {
	b.Lines.Go(on)
}

// Alarm changes the alarm lamp
func (b *Board) Alarm(on bool) {
	b.Lines.Alarm(on)
}

// Buzz changes the buzzer line
func (b *Board) Buzz(on bool) {
	b.Lines.Buzz(on)
}

// Fault returns the error that caused the LED encoder to fault, or nil
func (b *Board) Fault() error {
	return b.LEDs.Fault()
}

// Lamps returns the current state of all output lines
func (b *Board) Lamps() gui.Lamps {
	return gui.Lamps{
		LEDs:   b.Lines.LEDs(),
		Ready:  b.Lines.IsReady(),
		Go:     b.Lines.IsGo(),
		Alarm:  b.Lines.IsAlarm(),
		Buzzer: b.Lines.Buzzing(),
	}
}

// Status returns a one line summary of the board
func (b *Board) Status() string {
	return fmt.Sprintf("%s  ticks: %d", b.Lines.Status(), b.Timer.Elapsed())
}
