package game

import (
	"errors"

	"github.com/jetsetilly/simon/hardware/pads"
)

// Capacity is the maximum length of a sequence
const Capacity = 100

// ErrSequenceFull is returned by Sequence.Append() when the sequence has
// reached Capacity
var ErrSequenceFull = errors.New("sequence is full")

// Sequence is an append-only list of symbols
type Sequence struct {
	symbols [Capacity]pads.Symbol
	len     int
}

// Append a symbol to the end of the sequence
func (seq *Sequence) Append(s pads.Symbol) error {
	if seq.len >= Capacity {
		return ErrSequenceFull
	}
	seq.symbols[seq.len] = s
	seq.len++
	return nil
}

// At returns the symbol at index i. Returns pads.None if the index is out of
// range
func (seq *Sequence) At(i int) pads.Symbol {
	if i < 0 || i >= seq.len {
		return pads.None
	}
	return seq.symbols[i]
}

// Len returns the number of symbols in the sequence
func (seq *Sequence) Len() int {
	return seq.len
}

// Full returns true if no more symbols can be appended
func (seq *Sequence) Full() bool {
	return seq.len >= Capacity
}

// Clear the sequence
func (seq *Sequence) Clear() {
	clear(seq.symbols[:])
	seq.len = 0
}

// Symbols returns a copy of the symbols in the sequence
func (seq *Sequence) Symbols() []pads.Symbol {
	s := make([]pads.Symbol, seq.len)
	copy(s, seq.symbols[:seq.len])
	return s
}
