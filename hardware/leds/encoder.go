// Package leds drives the four game LEDs. Any combination of the LEDs can be
// lit at the same time by choosing the correct Pattern.
package leds

import (
	"errors"

	"github.com/jetsetilly/simon/logger"
)

// Output is the set of output lines driven by the Encoder
type Output interface {
	// Assert turns on the LEDs in the channel set. LEDs not in the set are
	// not affected
	Assert(ch Channels)

	// Deassert turns off the LEDs in the channel set. LEDs not in the set
	// are not affected
	Deassert(ch Channels)

	// Fault turns on the fault indicator
	Fault()
}

// Waiter is the blocking wait of the time base
type Waiter interface {
	Wait(duration uint16)
}

// ErrFaulted is returned by the Encoder after a fatal fault. The fault
// indicator remains lit and the LEDs are no longer driven
var ErrFaulted = errors.New("LED encoder has faulted")

// Encoder turns Pattern values into output line changes
type Encoder struct {
	out   Output
	timer Waiter

	// the first fatal error
	fault error
}

// NewEncoder is the preferred method of initialisation for the Encoder type
func NewEncoder(out Output, timer Waiter) *Encoder {
	return &Encoder{
		out:   out,
		timer: timer,
	}
}

// Fault returns the error that caused the encoder to fault or nil
func (enc *Encoder) Fault() error {
	return enc.fault
}

func (enc *Encoder) channels(p Pattern) (Channels, error) {
	if enc.fault != nil {
		return 0, errors.Join(ErrFaulted, enc.fault)
	}

	ch, err := p.Channels()
	if err != nil {
		// freeze the fault indicator. there is no recovery from this
		enc.fault = err
		enc.out.Fault()
		logger.Log(logger.Allow, "leds", err)
		return 0, err
	}

	return ch, nil
}

// Set turns on the LEDs for the pattern and leaves them on
func (enc *Encoder) Set(p Pattern) error {
	ch, err := enc.channels(p)
	if err != nil {
		return err
	}
	enc.out.Assert(ch)
	return nil
}

// Clear turns off the LEDs for the pattern
func (enc *Encoder) Clear(p Pattern) error {
	ch, err := enc.channels(p)
	if err != nil {
		return err
	}
	enc.out.Deassert(ch)
	return nil
}

// Light turns on the LEDs for the pattern, waits for duration ticks, and then
// turns them off again
func (enc *Encoder) Light(p Pattern, duration uint16) error {
	ch, err := enc.channels(p)
	if err != nil {
		return err
	}
	enc.out.Assert(ch)
	enc.timer.Wait(duration)
	enc.out.Deassert(ch)
	return nil
}
