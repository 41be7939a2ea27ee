package buzzer_test

import (
	"encoding/binary"
	"testing"

	"github.com/gopxl/beep"
	"github.com/jetsetilly/simon/hardware/buzzer"
	"github.com/jetsetilly/simon/test"
)

type line bool

func (l *line) Buzzing() bool {
	return bool(*l)
}

type recorder struct {
	frames int
	high   int
}

func (r *recorder) Record(left int16, right int16) {
	r.frames++
	if left > 0 {
		r.high++
	}
}

// the buzzer must be usable by beep
var _ beep.Streamer = (*buzzer.Buzzer)(nil)

func TestSilence(t *testing.T) {
	var l line
	b := buzzer.NewBuzzer(&l)

	buf := make([]uint8, 1024)
	n, err := b.Read(buf)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 1024)

	for i := range buf {
		test.DemandEquality(t, buf[i], 0x00, i)
	}
}

func TestWholeFrames(t *testing.T) {
	var l line
	b := buzzer.NewBuzzer(&l)

	buf := make([]uint8, 1023)
	n, err := b.Read(buf)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 1020)
}

func TestDutyCycle(t *testing.T) {
	l := line(true)
	b := buzzer.NewBuzzer(&l)

	rec := &recorder{}
	b.SetRecorder(rec)

	period := buzzer.SampleFreq / buzzer.Frequency

	// read exactly ten periods
	buf := make([]uint8, period*4*10)
	_, err := b.Read(buf)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, rec.frames, period*10)
	test.ExpectEquality(t, rec.high, int(float64(period)*buzzer.DutyCycle)*10)

	// both channels carry the same value
	for i := 0; i < len(buf); i += 4 {
		left := binary.LittleEndian.Uint16(buf[i:])
		right := binary.LittleEndian.Uint16(buf[i+2:])
		test.DemandEquality(t, left, right, i)
	}
}

func TestStream(t *testing.T) {
	l := line(true)
	b := buzzer.NewBuzzer(&l)

	samples := make([][2]float64, 512)
	n, ok := b.Stream(samples)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, 512)
	test.ExpectSuccess(t, b.Err())

	var high bool
	for _, s := range samples {
		test.DemandSuccess(t, s[0] <= 1.0 && s[0] >= -1.0)
		if s[0] > 0 {
			high = true
		}
	}
	test.ExpectSuccess(t, high)

	// the tone stops as soon as the line goes low
	l = false
	n, ok = b.Stream(samples)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, 512)
	for _, s := range samples {
		test.DemandEquality(t, s[0], 0.0)
	}
}
