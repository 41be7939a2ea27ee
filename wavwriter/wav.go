// Package wavwriter records the buzzer output to a WAV file. Audio data is
// buffered in memory in its entirety and written to disk when Close() is
// called, so it is only suitable for short sessions.
package wavwriter

import (
	"fmt"
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/simon/logger"
)

const (
	numChannels = 2
	bitDepth    = 16

	// PCM format code in the WAV header
	formatPCM = 1
)

// WavWriter implements the buzzer.Recorder interface
type WavWriter struct {
	filename   string
	sampleFreq int

	crit   sync.Mutex
	buffer []int
}

// New is the preferred method of initialisation for the WavWriter type
func New(filename string, sampleFreq int) (*WavWriter, error) {
	if filename == "" {
		return nil, fmt.Errorf("wavwriter: no filename")
	}
	if sampleFreq <= 0 {
		return nil, fmt.Errorf("wavwriter: sample frequency must be positive: %d", sampleFreq)
	}
	return &WavWriter{
		filename:   filename,
		sampleFreq: sampleFreq,
	}, nil
}

// Record implements the buzzer.Recorder interface
func (aw *WavWriter) Record(left int16, right int16) {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	aw.buffer = append(aw.buffer, int(left), int(right))
}

// Frames returns the number of sample frames recorded so far
func (aw *WavWriter) Frames() int {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	return len(aw.buffer) / numChannels
}

// Close writes the recorded audio to disk
func (aw *WavWriter) Close() (rerr error) {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleFreq, bitDepth, numChannels, formatPCM)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  aw.sampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d frames to %s", len(aw.buffer)/numChannels, aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}
