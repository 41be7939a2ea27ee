package pads_test

import (
	"testing"

	"github.com/jetsetilly/simon/hardware/pads"
	"github.com/jetsetilly/simon/test"
)

func TestFirst(t *testing.T) {
	test.ExpectEquality(t, pads.First(pads.Released), pads.None)
	test.ExpectEquality(t, pads.First(0x0e), pads.Green)
	test.ExpectEquality(t, pads.First(0x0d), pads.Blue)
	test.ExpectEquality(t, pads.First(0x0b), pads.Red)
	test.ExpectEquality(t, pads.First(0x07), pads.Orange)

	// lowest symbol wins
	test.ExpectEquality(t, pads.First(0x00), pads.Green)
	test.ExpectEquality(t, pads.First(0x09), pads.Blue)
	test.ExpectEquality(t, pads.First(0x03), pads.Red)

	// bits above the four button lines are ignored
	test.ExpectEquality(t, pads.First(0xff), pads.None)
	test.ExpectEquality(t, pads.First(0xf7), pads.Orange)
}

func TestValid(t *testing.T) {
	for s := range pads.Symbol(pads.Count) {
		test.ExpectSuccess(t, s.Valid(), s)
	}
	test.ExpectFailure(t, pads.None.Valid())
	test.ExpectFailure(t, pads.Symbol(4).Valid())
}
