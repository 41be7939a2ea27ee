// Package terminal is the text front-end. It draws the board with tcell and
// plays the buzzer with beep.
//
// Terminals do not report key releases so a key press is held for a short
// fixed time. Holding a key down extends the press for as long as the
// terminal repeats the key.
package terminal

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/jetsetilly/simon/gui"
	"github.com/jetsetilly/simon/hardware/pads"
	"github.com/jetsetilly/simon/logger"
	"github.com/jetsetilly/simon/version"
)

// HoldTime is how long a key press is held before it is released
const HoldTime = 150 * time.Millisecond

// frame period of the screen update
const framePeriod = 33 * time.Millisecond

var (
	padLit = [pads.Count]tcell.Color{
		tcell.ColorLime, tcell.ColorBlue, tcell.ColorRed, tcell.ColorOrange,
	}
	padDim = [pads.Count]tcell.Color{
		tcell.ColorDarkGreen, tcell.ColorNavy, tcell.ColorMaroon, tcell.ColorSaddleBrown,
	}
)

type guiTerminal struct {
	g      *gui.GUI
	screen tcell.Screen

	state gui.State

	// release deadlines for keys held on the keyboard
	held  holds
	mouse pads.Symbol

	audio *beep.Ctrl
}

// holds is the release deadline for every pad pressed from the keyboard. A
// zero time means the pad is not held
type holds [pads.Count]time.Time

// press returns true if the pad was not already held. The release deadline is
// extended in either case
func (h *holds) press(s pads.Symbol, now time.Time) bool {
	fresh := h[s].IsZero()
	h[s] = now.Add(HoldTime)
	return fresh
}

// expire returns the pads whose deadline has passed and forgets them
func (h *holds) expire(now time.Time) []pads.Symbol {
	var exp []pads.Symbol
	for s := range pads.Symbol(pads.Count) {
		if !h[s].IsZero() && !now.Before(h[s]) {
			h[s] = time.Time{}
			exp = append(exp, s)
		}
	}
	return exp
}

// send input to the board. input is dropped if the queue is full
func (gt *guiTerminal) send(inp gui.Input) {
	select {
	case gt.g.UserInput <- inp:
	default:
	}
}

// returns false if the front-end should quit
func (gt *guiTerminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			s := keyPad(ev.Rune())
			if s.Valid() && gt.held.press(s, ev.When()) {
				gt.send(gui.Press(s, true))
			}
		}

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			if !gt.mouse.Valid() {
				s := padAt(ev.Position())
				if s.Valid() {
					gt.mouse = s
					gt.send(gui.Press(s, true))
				}
			}
		} else if gt.mouse.Valid() {
			gt.send(gui.Press(gt.mouse, false))
			gt.mouse = pads.None
		}

	case *tcell.EventResize:
		gt.screen.Sync()
	}

	return true
}

func (gt *guiTerminal) releaseHeld(now time.Time) {
	for _, s := range gt.held.expire(now) {
		gt.send(gui.Press(s, false))
	}
}

func (gt *guiTerminal) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		gt.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (gt *guiTerminal) draw() {
	lamps := gt.g.CurrentLamps()

	gt.screen.Clear()

	for s := range pads.Symbol(pads.Count) {
		c := padDim[s]
		if lamps.LEDs.Contains(s) {
			c = padLit[s]
		}
		style := tcell.StyleDefault.Foreground(c)
		x, y := padOrigin(s)
		for j := range padHeight {
			for i := range padWidth {
				gt.screen.SetContent(x+i, y+j, '█', nil, style)
			}
		}
		label := fmt.Sprintf("%c", "QWAS"[s])
		gt.drawText(x+padWidth/2, y+padHeight/2, label, tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(c))
	}

	lampList := []struct {
		label string
		on    bool
		c     tcell.Color
	}{
		{label: "RDY", on: lamps.Ready, c: tcell.ColorOrange},
		{label: "GO", on: lamps.Go, c: tcell.ColorLime},
		{label: "ERR", on: lamps.Alarm, c: tcell.ColorRed},
		{label: "BZ", on: lamps.Buzzer, c: tcell.ColorYellow},
	}
	for i, l := range lampList {
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		if l.on {
			style = tcell.StyleDefault.Foreground(l.c).Bold(true)
		}
		x := originX + i*8
		gt.screen.SetContent(x, lampRow, '●', nil, style)
		gt.drawText(x+2, lampRow, l.label, tcell.StyleDefault)
	}

	lines := statusLines(gt.g.CurrentCaption(), gt.state)
	for i, l := range lines {
		gt.drawText(originX, captionRow+i, l, tcell.StyleDefault)
	}
	gt.drawText(originX, captionRow+len(lines)+1, fmt.Sprintf("%s  ESC to quit", version.Title()), tcell.StyleDefault.Dim(true))

	gt.screen.Show()
}

// statusLines returns the lines shown under the lamps. The caption is followed
// by a reminder that the board is off if the board is paused
func statusLines(caption string, state gui.State) []string {
	var lines []string
	if caption != "" {
		lines = strings.Split(caption, "\n")
	}
	if state == gui.StatePaused {
		lines = append(lines, "board is off")
	}
	return lines
}

func (gt *guiTerminal) setState(state gui.State) {
	gt.state = state
	if gt.audio != nil {
		speaker.Lock()
		gt.audio.Paused = state == gui.StatePaused
		speaker.Unlock()
	}
}

func (gt *guiTerminal) setupAudio(s gui.AudioSetup) error {
	if s.Read == nil || gt.audio != nil {
		return nil
	}
	sr := beep.SampleRate(s.Freq)
	err := speaker.Init(sr, sr.N(time.Millisecond*100))
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	gt.audio = &beep.Ctrl{Streamer: newPCMStreamer(s.Read), Paused: gt.state == gui.StatePaused}
	speaker.Play(gt.audio)
	return nil
}

// Launch the front-end. The function does not return until the user quits or
// endGui receives a value
func Launch(endGui chan bool, g *gui.GUI) error {
	gt := &guiTerminal{
		g:     g,
		state: gui.StateRunning,
		mouse: pads.None,
	}

	// wait for the first state change and a possible quit request
	select {
	case gt.state = <-g.State:
	case <-endGui:
		return nil
	}

	var err error
	gt.screen, err = tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	err = gt.screen.Init()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer gt.screen.Fini()

	gt.screen.EnableMouse()
	gt.screen.HideCursor()

	defer func() {
		if gt.audio != nil {
			speaker.Clear()
			speaker.Close()
		}
	}()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := gt.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(framePeriod)
	defer ticker.Stop()

	for {
		select {
		case <-endGui:
			return nil

		case ev := <-events:
			if !gt.handleEvent(ev) {
				return nil
			}

		case state := <-g.State:
			gt.setState(state)

		case s := <-g.AudioSetup:
			err := gt.setupAudio(s)
			if err != nil {
				logger.Log(logger.Allow, "gui", err.Error())
			}

		case now := <-ticker.C:
			gt.releaseHeld(now)
			gt.draw()
		}
	}
}
