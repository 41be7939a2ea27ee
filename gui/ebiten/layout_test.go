package ebiten

import (
	"testing"

	"github.com/jetsetilly/simon/gui"
	"github.com/jetsetilly/simon/hardware/pads"
	"github.com/jetsetilly/simon/test"
)

func TestPadAt(t *testing.T) {
	for s := range pads.Symbol(pads.Count) {
		x, y := padOrigin(s)
		test.ExpectEquality(t, padAt(x, y), s)
		test.ExpectEquality(t, padAt(x+padSize-1, y+padSize-1), s)
	}

	// gaps between the pads and the lamp row belong to no pad
	test.ExpectEquality(t, padAt(0, 0), pads.None)
	test.ExpectEquality(t, padAt(padMargin+padSize, padMargin), pads.None)
	test.ExpectEquality(t, padAt(padMargin, lampRow), pads.None)
}

func TestPadsFitScreen(t *testing.T) {
	x, y := padOrigin(pads.Orange)
	test.ExpectSuccess(t, x+padSize+padMargin <= screenWidth)
	test.ExpectSuccess(t, y+padSize < lampRow)
	// room for a two line caption and the paused reminder
	test.ExpectSuccess(t, captionRow+3*lineHeight <= screenHeight)
}

func TestStatusText(t *testing.T) {
	test.ExpectEquality(t, statusText("Your score is: 3", gui.StateRunning), "Your score is: 3")
	test.ExpectEquality(t, statusText("", gui.StateRunning), "")
	test.ExpectEquality(t, statusText("engine: invalid LED pattern: 15", gui.StatePaused), "engine: invalid LED pattern: 15\nboard is off")
	test.ExpectEquality(t, statusText("", gui.StatePaused), "board is off")
}

func TestParseGeometry(t *testing.T) {
	geom, err := parseGeometry("10 20 512 688")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, geom, windowGeometry{x: 10, y: 20, w: 512, h: 688})

	_, err = parseGeometry("10 20")
	test.ExpectFailure(t, err)

	_, err = parseGeometry("10 20 0 688")
	test.ExpectFailure(t, err)
}
