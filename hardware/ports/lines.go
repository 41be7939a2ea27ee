package ports

import (
	"strings"

	"github.com/jetsetilly/simon/hardware/leds"
	"github.com/jetsetilly/simon/hardware/pads"
)

// wiring of the reference board. the four game LEDs are on the even bits of
// P6. three of the four buttons are on odd bits of P6, the fourth button is on
// P7 because of onboard connections
const (
	ledGreen  = 0x01
	ledBlue   = 0x04
	ledRed    = 0x10
	ledOrange = 0x40

	buttonP6Green  = 0x02
	buttonP7Blue   = 0x10
	buttonP6Red    = 0x20
	buttonP6Orange = 0x80

	lampReady  = 0x02 // P2
	lampGo     = 0x04 // P2
	lampAlarm  = 0x02 // P5
	lineBuzzer = 0x20 // P3
)

var ledBits = [pads.Count]uint8{ledGreen, ledBlue, ledRed, ledOrange}

// Lines is the set of ports used by the board
type Lines struct {
	P2 Port
	P3 Port
	P5 Port
	P6 Port
	P7 Port

	// changed is nudged whenever an input line is written to
	changed chan bool
}

// NewLines is the preferred method of initialisation for the Lines type
func NewLines() *Lines {
	l := &Lines{
		P2:      Port{label: "P2"},
		P3:      Port{label: "P3"},
		P5:      Port{label: "P5"},
		P6:      Port{label: "P6"},
		P7:      Port{label: "P7"},
		changed: make(chan bool, 1),
	}
	l.Reset()
	return l
}

// Reset all output lines to off and all input lines to their unpressed state
func (l *Lines) Reset() {
	l.P2.Write(0x00, 0x00)
	l.P3.Write(0x00, 0x00)
	l.P5.Write(0x00, 0x00)

	// button lines are pulled high
	l.P6.Write(buttonP6Green|buttonP6Red|buttonP6Orange, 0x00)
	l.P7.Write(buttonP7Blue, 0x00)
	l.nudge()
}

// Status returns a summary of all ports
func (l *Lines) Status() string {
	return strings.Join([]string{
		l.P2.Status(), l.P3.Status(), l.P5.Status(), l.P6.Status(), l.P7.Status(),
	}, "  ")
}

func (l *Lines) nudge() {
	select {
	case l.changed <- true:
	default:
	}
}

// Buttons returns the state of the four button lines as a button word. Bit n
// is the line level for symbol n. Lines are active-low
func (l *Lines) Buttons() uint8 {
	p6 := l.P6.Read()
	p7 := l.P7.Read()

	var w uint8
	if p6&buttonP6Green != 0 {
		w |= 0x01
	}
	if p7&buttonP7Blue != 0 {
		w |= 0x02
	}
	if p6&buttonP6Red != 0 {
		w |= 0x04
	}
	if p6&buttonP6Orange != 0 {
		w |= 0x08
	}
	return w
}

// SetButton changes the line level for the symbol's button. A pressed button
// pulls the line low
func (l *Lines) SetButton(s pads.Symbol, pressed bool) {
	var p *Port
	var bit uint8

	switch s {
	case pads.Green:
		p, bit = &l.P6, buttonP6Green
	case pads.Blue:
		p, bit = &l.P7, buttonP7Blue
	case pads.Red:
		p, bit = &l.P6, buttonP6Red
	case pads.Orange:
		p, bit = &l.P6, buttonP6Orange
	default:
		return
	}

	if pressed {
		p.Write(0x00, ^bit)
	} else {
		p.Write(bit, ^bit)
	}
	l.nudge()
}

// Await blocks until an input line may have changed
func (l *Lines) Await() {
	<-l.changed
}

func ledMask(ch leds.Channels) uint8 {
	var m uint8
	for _, s := range ch.Symbols() {
		m |= ledBits[s]
	}
	return m
}

// Assert implements the leds.Output interface
func (l *Lines) Assert(ch leds.Channels) {
	m := ledMask(ch)
	l.P6.Write(m, ^m)
}

// Deassert implements the leds.Output interface
func (l *Lines) Deassert(ch leds.Channels) {
	m := ledMask(ch)
	l.P6.Write(0x00, ^m)
}

// Fault implements the leds.Output interface. The fault indicator is the
// alarm lamp
func (l *Lines) Fault() {
	l.Alarm(true)
}

// LEDs returns the set of lit game LEDs
func (l *Lines) LEDs() leds.Channels {
	p6 := l.P6.Read()

	var ch leds.Channels
	for s := range pads.Symbol(pads.Count) {
		if p6&ledBits[s] != 0 {
			ch |= leds.Channel(s)
		}
	}
	return ch
}

func set(p *Port, bit uint8, on bool) {
	if on {
		p.Write(bit, ^bit)
	} else {
		p.Write(0x00, ^bit)
	}
}

// Ready changes the ready lamp. The lamp is lit while the board is waiting
// for a new game to start
func (l *Lines) Ready(on bool) {
	set(&l.P2, lampReady, on)
}

// Go changes the go lamp. The lamp is flashed when a new game is started
func (l *Lines) Go(on bool) {
	set(&l.P2, lampGo, on)
}

// Alarm changes the alarm lamp. The lamp is lit on game over and is frozen on
// after a fatal fault
func (l *Lines) Alarm(on bool) {
	set(&l.P5, lampAlarm, on)
}

// Buzz changes the buzzer line
func (l *Lines) Buzz(on bool) {
	set(&l.P3, lineBuzzer, on)
}

// IsReady returns the state of the ready lamp
func (l *Lines) IsReady() bool {
	return l.P2.Read()&lampReady != 0
}

// IsGo returns the state of the go lamp
func (l *Lines) IsGo() bool {
	return l.P2.Read()&lampGo != 0
}

// IsAlarm returns the state of the alarm lamp
func (l *Lines) IsAlarm() bool {
	return l.P5.Read()&lampAlarm != 0
}

// Buzzing returns the state of the buzzer line
func (l *Lines) Buzzing() bool {
	return l.P3.Read()&lineBuzzer != 0
}
