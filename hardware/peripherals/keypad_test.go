package peripherals_test

import (
	"testing"

	"github.com/jetsetilly/simon/gui"
	"github.com/jetsetilly/simon/hardware/pads"
	"github.com/jetsetilly/simon/hardware/peripherals"
	"github.com/jetsetilly/simon/hardware/ports"
	"github.com/jetsetilly/simon/test"
)

type change struct {
	sym     pads.Symbol
	pressed bool
}

type recordedLines struct {
	changes []change
}

func (l *recordedLines) SetButton(s pads.Symbol, pressed bool) {
	l.changes = append(l.changes, change{sym: s, pressed: pressed})
}

func TestKeypad(t *testing.T) {
	l := ports.NewLines()
	k := peripherals.NewKeypad(l)

	test.ExpectSuccess(t, k.Update(gui.Press(pads.Red, true)))
	test.ExpectSuccess(t, k.Pressed(pads.Red))
	test.ExpectEquality(t, pads.First(l.Buttons()), pads.Red)

	test.ExpectSuccess(t, k.Update(gui.Press(pads.Red, false)))
	test.ExpectFailure(t, k.Pressed(pads.Red))
	test.ExpectEquality(t, l.Buttons(), pads.Released)
}

func TestKeypadRepeats(t *testing.T) {
	l := &recordedLines{}
	k := peripherals.NewKeypad(l)

	// reset releases every button
	test.DemandEquality(t, len(l.changes), pads.Count)
	l.changes = l.changes[:0]

	// key repeat from a front-end produces more than one press
	test.ExpectSuccess(t, k.Update(gui.Press(pads.Blue, true)))
	test.ExpectSuccess(t, k.Update(gui.Press(pads.Blue, true)))
	test.ExpectSuccess(t, k.Update(gui.Press(pads.Blue, false)))
	test.ExpectSuccess(t, k.Update(gui.Press(pads.Blue, false)))

	test.DemandEquality(t, len(l.changes), 2)
	test.ExpectEquality(t, l.changes[0], change{sym: pads.Blue, pressed: true})
	test.ExpectEquality(t, l.changes[1], change{sym: pads.Blue, pressed: false})
}

func TestKeypadBadInput(t *testing.T) {
	l := &recordedLines{}
	k := peripherals.NewKeypad(l)
	l.changes = l.changes[:0]

	test.ExpectSuccess(t, k.Update(gui.Input{Action: gui.Nothing}))
	test.ExpectFailure(t, k.Update(gui.Input{Action: gui.PadGreen, Data: 1}))
	test.ExpectEquality(t, len(l.changes), 0)
}
