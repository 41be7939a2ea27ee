// Package ports contains the digital I/O ports of the board. Ports are
// accessed atomically because the input lines are changed by the front-end
// goroutine while the board is reading them.
package ports

import (
	"fmt"
	"sync/atomic"
)

// Port is an eight bit I/O register
type Port struct {
	label string
	value atomic.Uint32
}

// Label returns the name of the port
func (p *Port) Label() string {
	return p.label
}

// Status returns a one line summary of the port
func (p *Port) Status() string {
	return fmt.Sprintf("%s: %08b", p.label, p.Read())
}

// Read returns the current value of the port
func (p *Port) Read() uint8 {
	return uint8(p.value.Load())
}

// Write changes the bits of the port that are not set in the mask. Bits set in
// the mask keep their current value
func (p *Port) Write(data uint8, mask uint8) {
	for {
		v := p.value.Load()
		n := uint32(uint8(v)&mask | data&^mask)
		if p.value.CompareAndSwap(v, n) {
			return
		}
	}
}
