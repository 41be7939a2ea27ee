package ebiten

import (
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/simon/gui"
)

type audioPlayer struct {
	p *oto.Player
	r io.Reader

	// the state field is accessed by the Read() function via the audio
	// engine, and by the GUI which is in another goroutine. access to the state
	// field therefore, is proctected by a mutex
	crit  sync.Mutex
	state gui.State
}

func (a *audioPlayer) setState(state gui.State) {
	a.crit.Lock()
	defer a.crit.Unlock()
	a.state = state
	if a.p != nil {
		if state == gui.StatePaused {
			a.p.Pause()
		} else {
			a.p.Play()
		}
	}
}

func (a *audioPlayer) Read(buf []uint8) (int, error) {
	a.crit.Lock()
	defer a.crit.Unlock()
	if a.state != gui.StateRunning || a.r == nil {
		clear(buf)
		return len(buf), nil
	}
	return a.r.Read(buf)
}

func (a *audioPlayer) close() error {
	a.crit.Lock()
	defer a.crit.Unlock()
	if a.p == nil {
		return nil
	}
	err := a.p.Close()
	a.p = nil
	return err
}
