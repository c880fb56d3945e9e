package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes s at (x, y) honoring wide runes and returns the column after the last rune
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	w, _ := screen.Size()
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > w {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x += rw
	}
	return x
}

// drawCentered writes s centred on row y
func drawCentered(screen tcell.Screen, y int, s string, style tcell.Style) {
	w, _ := screen.Size()
	x := max((w-runewidth.StringWidth(s))/2, 0)
	drawText(screen, x, y, s, style)
}

// fillRow clears row y with style
func fillRow(screen tcell.Screen, y int, style tcell.Style) {
	w, _ := screen.Size()
	for x := 0; x < w; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}
