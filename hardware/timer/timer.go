// Package timer is the time base of the board. The tick counter is advanced
// by a periodic tick event, nominally every tenth of a second, and is the only
// value shared between the tick source and the rest of the board.
package timer

import (
	"math"
	"sync/atomic"
)

// Durations are measured in ticks. A tick is a tenth of a second with the
// default tick source period
const (
	TenthSecond      uint16 = 1
	FifthSecond      uint16 = 2
	HalfSecond       uint16 = 5
	OneSecond        uint16 = 10
	OneAndHalfSecond uint16 = 15
	TwoSeconds       uint16 = 20
)

// Max is the largest value the tick counter can hold. The counter clamps at
// this value rather than wrapping
const Max = math.MaxUint16

// Timer counts ticks since the most recent reset
type Timer struct {
	ticks atomic.Uint32

	// ticks are ignored when the timer is masked. the timer starts masked and
	// is only unmasked for the duration of a Wait()
	unmasked atomic.Bool

	// nudge wakes a caller blocked in Wait(). only one caller is expected to
	// wait at any one time so a buffer of one is enough to not lose a wake up
	nudge chan bool
}

// NewTimer is the preferred method of initialisation for the Timer type
func NewTimer() *Timer {
	return &Timer{
		nudge: make(chan bool, 1),
	}
}

// Reset the tick counter to zero
func (t *Timer) Reset() {
	t.ticks.Store(0)
}

// Elapsed returns the number of ticks since the last reset
func (t *Timer) Elapsed() uint16 {
	return uint16(t.ticks.Load())
}

// Mask stops ticks from being counted
func (t *Timer) Mask() {
	t.unmasked.Store(false)
}

// Unmask allows ticks to be counted
func (t *Timer) Unmask() {
	t.unmasked.Store(true)
}

// Masked returns true if ticks are not being counted
func (t *Timer) Masked() bool {
	return !t.unmasked.Load()
}

// Tick is the tick event handler. It must be called by the tick source exactly
// once per period. It never blocks
func (t *Timer) Tick() {
	if !t.unmasked.Load() {
		return
	}

	for {
		v := t.ticks.Load()
		if v >= Max {
			break
		}
		if t.ticks.CompareAndSwap(v, v+1) {
			break
		}
	}

	select {
	case t.nudge <- true:
	default:
	}
}

// Wait blocks until duration ticks have elapsed. The tick counter is reset at
// the start of the wait and ticks are masked again once it is over.
//
// The tick source must be running or Wait() will never return. There is no
// way of cancelling a Wait()
func (t *Timer) Wait(duration uint16) {
	if duration == 0 {
		return
	}

	t.Unmask()
	defer t.Mask()

	// drain any stale nudge from a previous wait
	select {
	case <-t.nudge:
	default:
	}

	t.Reset()
	for t.Elapsed() < duration {
		<-t.nudge
	}
}
