package leds

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jetsetilly/simon/hardware/pads"
)

// Channels is a set of LED channels. Bit n is set if the LED for symbol n is
// in the set
type Channels uint8

// All is the set of all four channels
const All Channels = 0x0f

// Channel returns the channel set containing only the LED for the symbol
func Channel(s pads.Symbol) Channels {
	if !s.Valid() {
		return 0
	}
	return 1 << s
}

// Contains returns true if the LED for the symbol is in the set
func (ch Channels) Contains(s pads.Symbol) bool {
	return s.Valid() && ch&Channel(s) != 0
}

// Symbols returns the symbols in the set in symbol order
func (ch Channels) Symbols() []pads.Symbol {
	var s []pads.Symbol
	for sym := range pads.Symbol(pads.Count) {
		if ch.Contains(sym) {
			s = append(s, sym)
		}
	}
	return s
}

func (ch Channels) String() string {
	s := ch.Symbols()
	if len(s) == 0 {
		return "none"
	}
	n := make([]string, len(s))
	for i := range s {
		n[i] = s[i].String()
	}
	return strings.Join(n, "+")
}

// Pattern is an index into the table of LED combinations. Patterns 0 to 3
// address a single LED and are the same as the pads.Symbol values. Patterns 4
// to 9 are pairs, 10 to 13 are triples and pattern 14 is all four LEDs
type Pattern uint8

// Some patterns have names because they are used frequently
const (
	PatternGreenBlue   Pattern = 4
	PatternGreenRed    Pattern = 5
	PatternGreenOrange Pattern = 6
	PatternBlueRed     Pattern = 7
	PatternBlueOrange  Pattern = 8
	PatternRedOrange   Pattern = 9
	PatternNotOrange   Pattern = 10
	PatternAll         Pattern = 14
)

// NumPatterns is the number of entries in the combination table
const NumPatterns = 15

// the combination table. the index is the Pattern value
var combinations = [NumPatterns]Channels{
	0x01, // green
	0x02, // blue
	0x04, // red
	0x08, // orange
	0x03, // green + blue
	0x05, // green + red
	0x09, // green + orange
	0x06, // blue + red
	0x0a, // blue + orange
	0x0c, // red + orange
	0x07, // green + blue + red
	0x0b, // green + blue + orange
	0x0d, // green + red + orange
	0x0e, // blue + red + orange
	0x0f, // all
}

// ErrInvalidPattern is returned when a pattern value is outside of the
// combination table. It is a fatal error
var ErrInvalidPattern = errors.New("invalid LED pattern")

// Channels returns the channel set for the pattern
func (p Pattern) Channels() (Channels, error) {
	if int(p) >= NumPatterns {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPattern, p)
	}
	return combinations[p], nil
}

// SymbolPattern returns the pattern that lights the LED for a single symbol
func SymbolPattern(s pads.Symbol) Pattern {
	return Pattern(s)
}
