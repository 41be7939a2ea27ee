// Package buzzer turns the level of the buzzer line into audio samples. The
// buzzer on the reference board is driven with a square wave at a ten percent
// duty cycle whenever the buzzer line is high.
//
// Samples are generated on demand. The Buzzer type implements io.Reader for
// players that want signed 16bit little-endian stereo data, and the Stream()
// and Err() pair for players that want float samples.
package buzzer

import (
	"encoding/binary"
	"sync"
)

// SampleFreq is the number of sample frames generated per second
const SampleFreq = 44100

// Frequency of the buzzer tone in Hz
const Frequency = 880

// DutyCycle is the fraction of each period the buzzer is driven
const DutyCycle = 0.1

// Amplitude of the tone as a fraction of full scale
const Amplitude = 0.25

// Line is the buzzer line of the board
type Line interface {
	Buzzing() bool
}

// Recorder receives a copy of every frame generated by the buzzer
type Recorder interface {
	Record(left int16, right int16)
}

// Buzzer generates samples for the buzzer line
type Buzzer struct {
	line Line

	// samples are generated from the audio goroutine
	crit sync.Mutex

	// position within the current period, measured in sample frames
	phase  int
	period int
	high   int

	rec Recorder
}

// NewBuzzer is the preferred method of initialisation for the Buzzer type
func NewBuzzer(line Line) *Buzzer {
	b := &Buzzer{
		line:   line,
		period: SampleFreq / Frequency,
	}
	b.high = int(float64(b.period) * DutyCycle)
	if b.high < 1 {
		b.high = 1
	}
	return b
}

// SetRecorder adds a recorder to the buzzer. A value of nil removes the
// current recorder
func (b *Buzzer) SetRecorder(rec Recorder) {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.rec = rec
}

// next returns the next sample value in the range -1.0 to 1.0
func (b *Buzzer) next() float64 {
	if !b.line.Buzzing() {
		b.phase = 0
		return 0
	}

	var v float64
	if b.phase < b.high {
		v = Amplitude
	} else {
		v = -Amplitude * DutyCycle
	}

	b.phase++
	if b.phase >= b.period {
		b.phase = 0
	}

	return v
}

func (b *Buzzer) nextFrame() int16 {
	s := int16(b.next() * 32767)
	if b.rec != nil {
		b.rec.Record(s, s)
	}
	return s
}

// Read implements the io.Reader interface. Data is signed 16bit little-endian
// with two channels. Only whole frames are written to buf
func (b *Buzzer) Read(buf []uint8) (int, error) {
	b.crit.Lock()
	defer b.crit.Unlock()

	const frame = 4

	n := len(buf) / frame * frame
	for i := 0; i < n; i += frame {
		s := uint16(b.nextFrame())
		binary.LittleEndian.PutUint16(buf[i:], s)
		binary.LittleEndian.PutUint16(buf[i+2:], s)
	}

	return n, nil
}

// Stream fills samples with stereo frames in the range -1.0 to 1.0. The buzzer
// never runs out of samples so the function always returns true
func (b *Buzzer) Stream(samples [][2]float64) (int, bool) {
	b.crit.Lock()
	defer b.crit.Unlock()

	for i := range samples {
		s := float64(b.nextFrame()) / 32767
		samples[i][0] = s
		samples[i][1] = s
	}

	return len(samples), true
}

// Err always returns nil. The buzzer never fails
func (b *Buzzer) Err() error {
	return nil
}
