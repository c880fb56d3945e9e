package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Fixed UI colors
const (
	colorPlayer    = "#00ccff"
	colorBolt      = "#ffd700"
	colorExplosion = "#ffaa00"
	colorHUD       = "#e0e0e0"
	colorDim       = "#606060"
	colorDanger    = "#ff3030"
	colorTitle     = "#ff6600"
	colorField     = "#000000"
)

// Palette parses catalog hex colors once and blends them for fades
type Palette struct {
	mu    sync.Mutex
	cache map[string]colorful.Color
}

func NewPalette() *Palette {
	return &Palette{cache: make(map[string]colorful.Color)}
}

// Parse returns the color for a "#rrggbb" string, white when malformed
func (p *Palette) Parse(hex string) colorful.Color {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.cache[hex]; ok {
		return c
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		c = colorful.Color{R: 1, G: 1, B: 1}
	}
	p.cache[hex] = c
	return c
}

// Color returns the tcell color for hex
func (p *Palette) Color(hex string) tcell.Color {
	return toTcell(p.Parse(hex))
}

// Fade blends hex toward the field background, t=1 fully visible, t=0 background
func (p *Palette) Fade(hex string, t float64) tcell.Color {
	t = max(0, min(1, t))
	bg := p.Parse(colorField)
	return toTcell(bg.BlendRgb(p.Parse(hex), t))
}

// Blend mixes two hex colors, t=0 gives a
func (p *Palette) Blend(a, b string, t float64) tcell.Color {
	t = max(0, min(1, t))
	return toTcell(p.Parse(a).BlendRgb(p.Parse(b), t))
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
