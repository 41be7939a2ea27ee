// Package ebiten is the windowed front-end. It draws the four pads and the
// indicator lamps, turns keyboard, gamepad and mouse input into button presses
// and plays the buzzer through the system audio device.
package ebiten

import (
	"fmt"
	"image/color"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jetsetilly/simon/gui"
	"github.com/jetsetilly/simon/hardware/pads"
	"github.com/jetsetilly/simon/logger"
	"github.com/jetsetilly/simon/version"
	input "github.com/quasilyte/ebitengine-input"
)

// dimensions of the logical screen
const (
	screenWidth  = 256
	screenHeight = 344

	padSize   = 110
	padMargin = 12

	lampRow    = 2*padSize + 3*padMargin + 8
	lampRadius = 6
	captionRow = lampRow + 24

	// height of a line of debug text
	lineHeight = 16
)

// statusText returns the text shown under the lamps. The caption is followed
// by a reminder that the board is off if the board is paused
func statusText(caption string, state gui.State) string {
	if state != gui.StatePaused {
		return caption
	}
	if caption == "" {
		return "board is off"
	}
	return caption + "\nboard is off"
}

var (
	padLit = [pads.Count]color.RGBA{
		{R: 0x30, G: 0xe0, B: 0x40, A: 0xff},
		{R: 0x30, G: 0x70, B: 0xff, A: 0xff},
		{R: 0xff, G: 0x30, B: 0x30, A: 0xff},
		{R: 0xff, G: 0xa0, B: 0x20, A: 0xff},
	}
	padDim = [pads.Count]color.RGBA{
		{R: 0x10, G: 0x40, B: 0x14, A: 0xff},
		{R: 0x10, G: 0x20, B: 0x50, A: 0xff},
		{R: 0x50, G: 0x10, B: 0x10, A: 0xff},
		{R: 0x50, G: 0x30, B: 0x08, A: 0xff},
	}
	lampOff    = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	background = color.RGBA{R: 0x18, G: 0x18, B: 0x18, A: 0xff}
)

// padOrigin returns the top left corner of the pad on the logical screen
func padOrigin(s pads.Symbol) (int, int) {
	col := int(s) % 2
	row := int(s) / 2
	return padMargin + col*(padSize+padMargin), padMargin + row*(padSize+padMargin)
}

// padAt returns the pad under the logical screen coordinates. Returns None if
// there is no pad at that position
func padAt(x, y int) pads.Symbol {
	for s := range pads.Symbol(pads.Count) {
		px, py := padOrigin(s)
		if x >= px && x < px+padSize && y >= py && y < py+padSize {
			return s
		}
	}
	return pads.None
}

type windowGeometry struct {
	x, y int
	w, h int
}

func (g windowGeometry) valid() bool {
	return g.x >= 0 && g.y >= 0 && g.w > 0 && g.h > 0
}

type guiEbiten struct {
	g    *gui.GUI
	geom windowGeometry

	endGui chan bool

	state gui.State

	// the audio player can be stopped and recreated as required
	audio audioPlayer

	inputHandler *input.Handler
	inputSystem  input.System

	// the pad currently held down with the mouse
	mousePad pads.Symbol

	// lamp state collected during Update() and drawn in Draw()
	lamps   gui.Lamps
	caption string
}

func (eg *guiEbiten) Update() error {
	// deal with quit condition
	select {
	case <-eg.endGui:
		return ebiten.Termination
	default:
	}

	// handle user input
	err := eg.inputKeyboard()
	if err != nil {
		return err
	}
	eg.inputMouse()

	// change state if necessary
	select {
	case eg.state = <-eg.g.State:
		eg.audio.setState(eg.state)
	default:
	}

	// create audio if necessary
	if eg.g.AudioSetup != nil {
		select {
		case s := <-eg.g.AudioSetup:
			if s.Read != nil {
				err := eg.audio.close()
				if err != nil {
					return fmt.Errorf("ebiten: %w", err)
				}

				ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
					SampleRate:   s.Freq,
					ChannelCount: 2,
					Format:       oto.FormatSignedInt16LE,
				})
				if err != nil {
					return fmt.Errorf("ebiten: %w", err)
				}

				select {
				case <-ready:
					eg.audio.r = s.Read
					eg.audio.p = ctx.NewPlayer(&eg.audio)
					eg.audio.p.Play()
				case <-eg.endGui:
					return ebiten.Termination
				}
			}
		default:
		}
	}

	eg.lamps = eg.g.CurrentLamps()
	eg.caption = eg.g.CurrentCaption()

	return nil
}

func (eg *guiEbiten) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	for s := range pads.Symbol(pads.Count) {
		x, y := padOrigin(s)
		c := padDim[s]
		if eg.lamps.LEDs.Contains(s) {
			c = padLit[s]
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), padSize, padSize, c, false)
	}

	lamps := []struct {
		label string
		on    bool
		c     color.RGBA
	}{
		{label: "RDY", on: eg.lamps.Ready, c: padLit[pads.Orange]},
		{label: "GO", on: eg.lamps.Go, c: padLit[pads.Green]},
		{label: "ERR", on: eg.lamps.Alarm, c: padLit[pads.Red]},
		{label: "BZ", on: eg.lamps.Buzzer, c: color.RGBA{R: 0xff, G: 0xff, B: 0x60, A: 0xff}},
	}
	for i, l := range lamps {
		x := padMargin + i*60
		c := lampOff
		if l.on {
			c = l.c
		}
		vector.DrawFilledCircle(screen, float32(x+lampRadius), float32(lampRow+lampRadius), lampRadius, c, true)
		ebitenutil.DebugPrintAt(screen, l.label, x+2*lampRadius+4, lampRow-2)
	}

	ebitenutil.DebugPrintAt(screen, statusText(eg.caption, eg.state), padMargin, captionRow)

	eg.geom.x, eg.geom.y = ebiten.WindowPosition()
	eg.geom.w, eg.geom.h = ebiten.WindowSize()
}

func (eg *guiEbiten) Layout(width, height int) (int, int) {
	return screenWidth, screenHeight
}

// Launch the front-end. Must be called from the main goroutine. The function
// does not return until the window is closed or endGui receives a value
func Launch(endGui chan bool, g *gui.GUI) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	eg := &guiEbiten{
		endGui:   endGui,
		g:        g,
		state:    gui.StateRunning,
		mousePad: pads.None,
		audio: audioPlayer{
			state: gui.StateRunning,
		},
	}
	eg.initInput()

	// wait for the first state change and a possible quit request
	select {
	case eg.state = <-g.State:
		eg.audio.setState(eg.state)
	case <-endGui:
		return nil
	}

	var err error

	eg.geom, err = onWindowOpen()
	if err != nil {
		logger.Log(logger.Allow, "gui", err.Error())
	}

	defer func() {
		err := eg.audio.close()
		if err != nil {
			logger.Log(logger.Allow, "gui", err.Error())
		}
		err = onWindowClose(eg.geom)
		if err != nil {
			logger.Log(logger.Allow, "gui", err.Error())
		}
	}()

	return ebiten.RunGame(eg)
}
