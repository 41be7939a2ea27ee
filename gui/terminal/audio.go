package terminal

import (
	"encoding/binary"
	"io"
)

// frameSize is the size in bytes of one stereo frame of signed 16bit samples
const frameSize = 4

// pcmStreamer turns a reader of signed 16bit little-endian stereo frames into
// a beep.Streamer
type pcmStreamer struct {
	r   io.Reader
	buf []uint8
	err error
}

func newPCMStreamer(r io.Reader) *pcmStreamer {
	return &pcmStreamer{r: r}
}

func (s *pcmStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.err != nil {
		return 0, false
	}

	sz := len(samples) * frameSize
	if cap(s.buf) < sz {
		s.buf = make([]uint8, sz)
	}
	s.buf = s.buf[:sz]

	n, err := io.ReadFull(s.r, s.buf)
	if err != nil && err != io.ErrUnexpectedEOF {
		s.err = err
	}

	frames := n / frameSize
	for i := range frames {
		l := int16(binary.LittleEndian.Uint16(s.buf[i*frameSize:]))
		r := int16(binary.LittleEndian.Uint16(s.buf[i*frameSize+2:]))
		samples[i][0] = float64(l) / 32768
		samples[i][1] = float64(r) / 32768
	}

	if frames == 0 {
		return 0, s.err == nil
	}
	return frames, true
}

func (s *pcmStreamer) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}
