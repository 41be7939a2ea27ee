package timer

import (
	"time"
)

// DefaultPeriod is the period of the tick source on the reference board
const DefaultPeriod = 100 * time.Millisecond

// Source is the periodic event source that drives the Timer
type Source struct {
	timer  *Timer
	period time.Duration

	stop chan bool
	done chan bool
}

// NewSource is the preferred method of initialisation for the Source type. The
// source is not started until Start() is called
func NewSource(timer *Timer, period time.Duration) *Source {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Source{
		timer:  timer,
		period: period,
	}
}

// Period returns the time between ticks
func (src *Source) Period() time.Duration {
	return src.period
}

// Running returns true if the source has been started and not stopped
func (src *Source) Running() bool {
	return src.stop != nil
}

// Start the tick source. Starting a running source has no effect
func (src *Source) Start() {
	if src.stop != nil {
		return
	}

	src.stop = make(chan bool)
	src.done = make(chan bool)

	go func(stop chan bool, done chan bool) {
		defer close(done)

		tick := time.NewTicker(src.period)
		defer tick.Stop()

		for {
			select {
			case <-stop:
				return
			case <-tick.C:
				src.timer.Tick()
			}
		}
	}(src.stop, src.done)
}

// Stop the tick source and wait for it to finish. Stopping a source that is
// not running has no effect
func (src *Source) Stop() {
	if src.stop == nil {
		return
	}
	close(src.stop)
	<-src.done
	src.stop = nil
	src.done = nil
}
