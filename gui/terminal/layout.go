package terminal

import "github.com/jetsetilly/simon/hardware/pads"

// dimensions of the board in character cells
const (
	padWidth  = 14
	padHeight = 5
	padGapX   = 2
	padGapY   = 1
	originX   = 2
	originY   = 1

	lampRow    = originY + 2*padHeight + padGapY + 1
	captionRow = lampRow + 2
)

// padOrigin returns the top left cell of the pad
func padOrigin(s pads.Symbol) (int, int) {
	col := int(s) % 2
	row := int(s) / 2
	return originX + col*(padWidth+padGapX), originY + row*(padHeight+padGapY)
}

// padAt returns the pad under the cell. Returns None if there is no pad at
// that position
func padAt(x, y int) pads.Symbol {
	for s := range pads.Symbol(pads.Count) {
		px, py := padOrigin(s)
		if x >= px && x < px+padWidth && y >= py && y < py+padHeight {
			return s
		}
	}
	return pads.None
}

// keyPad returns the pad for a key rune. The layout of the keys matches the
// layout of the pads. Returns None for any other rune
func keyPad(r rune) pads.Symbol {
	switch r {
	case 'q', 'Q', '7':
		return pads.Green
	case 'w', 'W', '9':
		return pads.Blue
	case 'a', 'A', '1':
		return pads.Red
	case 's', 'S', '3':
		return pads.Orange
	}
	return pads.None
}
