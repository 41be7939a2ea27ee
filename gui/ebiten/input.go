package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jetsetilly/simon/gui"
	"github.com/jetsetilly/simon/hardware/pads"
	input "github.com/quasilyte/ebitengine-input"
)

const (
	ActionPadGreen  = input.Action(gui.PadGreen)
	ActionPadBlue   = input.Action(gui.PadBlue)
	ActionPadRed    = input.Action(gui.PadRed)
	ActionPadOrange = input.Action(gui.PadOrange)
)

// the keyboard layout follows the layout of the pads on screen
func keymap() input.Keymap {
	return input.Keymap{
		ActionPadGreen:  {input.KeyQ, input.KeyUp, input.KeyGamepadY},
		ActionPadBlue:   {input.KeyW, input.KeyRight, input.KeyGamepadB},
		ActionPadRed:    {input.KeyA, input.KeyLeft, input.KeyGamepadX},
		ActionPadOrange: {input.KeyS, input.KeyDown, input.KeyGamepadA},
	}
}

func (eg *guiEbiten) initInput() {
	eg.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})
	eg.inputHandler = eg.inputSystem.NewHandler(uint8(0), keymap())
}

// send input to the board. input is dropped if the queue is full
func (eg *guiEbiten) send(inp gui.Input) {
	select {
	case eg.g.UserInput <- inp:
	default:
	}
}

func (eg *guiEbiten) inputKeyboard() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	eg.inputSystem.Update()

	for s := range pads.Symbol(pads.Count) {
		act := input.Action(gui.PadAction(s))
		if eg.inputHandler.ActionIsJustPressed(act) {
			eg.send(gui.Press(s, true))
		}
		if eg.inputHandler.ActionIsJustReleased(act) {
			eg.send(gui.Press(s, false))
		}
	}

	return nil
}

// a pad held with the mouse is released when the mouse button is released,
// even if the cursor has moved off the pad
func (eg *guiEbiten) inputMouse() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s := padAt(x, y)
		if s.Valid() {
			eg.mousePad = s
			eg.send(gui.Press(s, true))
		}
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if eg.mousePad.Valid() {
			eg.send(gui.Press(eg.mousePad, false))
			eg.mousePad = pads.None
		}
	}
}
