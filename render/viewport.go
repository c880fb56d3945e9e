package render

import (
	"github.com/lixenwraith/galactic-wrench/parameter"
	"github.com/lixenwraith/galactic-wrench/vmath"
)

// Terminal rows reserved around the play field
const (
	hudRows    = 1
	footerRows = 1
)

// Viewport maps the logical field onto terminal cells
// The field is stretched to fill the area between the HUD and the weapon bar
type Viewport struct {
	Cols, Rows int // Field area size in cells
	Top        int // First field row on screen
}

// NewViewport sizes the field area for a screen of w×h cells
func NewViewport(w, h int) Viewport {
	return Viewport{
		Cols: max(w, 1),
		Rows: max(h-hudRows-footerRows, 1),
		Top:  hudRows,
	}
}

// ToCell converts a field position to a screen cell; ok is false when off-field
func (v Viewport) ToCell(p vmath.Vec2) (x, y int, ok bool) {
	if p.X < 0 || p.Y < 0 || p.X >= parameter.FieldWidth || p.Y >= parameter.FieldHeight {
		return 0, 0, false
	}
	x = int(p.X / parameter.FieldWidth * float64(v.Cols))
	y = int(p.Y/parameter.FieldHeight*float64(v.Rows)) + v.Top
	return x, y, true
}

// ToField converts a screen cell to the field position of its centre, clamped to the field
func (v Viewport) ToField(x, y int) vmath.Vec2 {
	fx := (float64(x) + 0.5) / float64(v.Cols) * parameter.FieldWidth
	fy := (float64(y-v.Top) + 0.5) / float64(v.Rows) * parameter.FieldHeight
	return vmath.Vec2{
		X: vmath.Clamp(fx, 0, parameter.FieldWidth),
		Y: vmath.Clamp(fy, 0, parameter.FieldHeight),
	}
}

// CellSize returns the field units covered by one cell on each axis
func (v Viewport) CellSize() (w, h float64) {
	return parameter.FieldWidth / float64(v.Cols), parameter.FieldHeight / float64(v.Rows)
}
