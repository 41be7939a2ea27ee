// Package buttons reads player input from the four button lines.
package buttons

import (
	"github.com/jetsetilly/simon/hardware/leds"
	"github.com/jetsetilly/simon/hardware/pads"
	"github.com/jetsetilly/simon/hardware/timer"
)

// Lines is the source of button line levels
type Lines interface {
	// Buttons returns the button word. Bit n is the line level for symbol n
	// and a clear bit means the button is pressed
	Buttons() uint8

	// Await blocks until the input lines may have changed
	Await()
}

// Lighter is used to echo a button press on the matching LED
type Lighter interface {
	Light(p leds.Pattern, duration uint16) error
}

// Reader captures exactly one button press at a time
type Reader struct {
	lines Lines
	echo  Lighter
}

// NewReader is the preferred method of initialisation for the Reader type
func NewReader(lines Lines, echo Lighter) *Reader {
	return &Reader{
		lines: lines,
		echo:  echo,
	}
}

// Read blocks until a button is pressed and then until all buttons have been
// released. If more than one button is pressed at the same time the lowest
// symbol is returned.
//
// If echo is true the LED for the pressed button is lit for a fifth of a
// second as soon as the press is seen. An error is only returned if the echo
// failed.
//
// There is no timeout. The function will block forever if the buttons are
// never pressed.
func (r *Reader) Read(echo bool) (pads.Symbol, error) {
	sym := pads.First(r.lines.Buttons())
	for sym == pads.None {
		r.lines.Await()
		sym = pads.First(r.lines.Buttons())
	}

	if echo && r.echo != nil {
		err := r.echo.Light(leds.SymbolPattern(sym), timer.FifthSecond)
		if err != nil {
			return sym, err
		}
	}

	// a held button must not be read again
	for r.lines.Buttons()&pads.Released != pads.Released {
		r.lines.Await()
	}

	return sym, nil
}
