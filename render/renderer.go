package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/galactic-wrench/core"
	"github.com/lixenwraith/galactic-wrench/engine"
	"github.com/lixenwraith/galactic-wrench/parameter"
	"github.com/lixenwraith/galactic-wrench/vmath"
)

// Glyphs
const (
	glyphBullet    = '•'
	glyphParticle  = '·'
	glyphSpark     = '*'
	glyphBolt      = '◆'
	glyphExplosion = '✶'
	glyphDrone     = '◉'
	glyphTank      = '■'
	glyphSwarm     = '▴'
)

// playerGlyphs are indexed by facing octant, starting east and turning clockwise (screen y down)
var playerGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Renderer draws snapshots onto a tcell screen
// It only reads snapshots; all simulation state stays with the scheduler
type Renderer struct {
	screen   tcell.Screen
	palette  *Palette
	viewport Viewport
}

// NewRenderer creates a renderer sized to the current screen
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen:   screen,
		palette:  NewPalette(),
		viewport: NewViewport(w, h),
	}
}

// Resize recomputes the viewport after a terminal resize
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.viewport = NewViewport(w, h)
	r.screen.Sync()
}

// Viewport returns the current field mapping
func (r *Renderer) Viewport() Viewport {
	return r.viewport
}

// Draw renders one frame for the given phase and shows it
func (r *Renderer) Draw(snap *engine.Snapshot) {
	bg := tcell.StyleDefault.Background(r.palette.Color(colorField))
	r.screen.SetStyle(bg)
	r.screen.Clear()

	switch snap.Phase {
	case core.PhaseMenu:
		r.drawMenu(snap)
	case core.PhasePlaying:
		r.drawField(snap)
		r.drawHUD(snap)
		r.drawWeaponBar(snap)
	case core.PhaseGameOver:
		r.drawField(snap)
		r.drawHUD(snap)
		r.drawGameOver(snap)
	}

	r.screen.Show()
}

// drawField renders entities back to front, offset by the current shake
func (r *Renderer) drawField(snap *engine.Snapshot) {
	shake := snap.Shake.Offset

	for _, p := range snap.Pickups {
		r.plot(p.Pos.Add(shake), glyphBolt, r.palette.Color(colorBolt))
	}

	for _, p := range snap.Particles {
		glyph := glyphParticle
		if p.Size > (parameter.ParticleMinSize+parameter.ParticleMaxSize)/2 {
			glyph = glyphSpark
		}
		fade := float64(p.Life) / float64(parameter.ParticleMaxLife)
		r.plot(p.Pos.Add(shake), glyph, r.palette.Fade(p.Color, fade))
	}

	for _, e := range snap.Explosions {
		r.drawExplosion(e.Pos.Add(shake), e.Frame)
	}

	for _, e := range snap.Enemies {
		arch := e.Archetype()
		// Tint toward white as the enemy loses health relative to its base
		damage := 1 - float64(e.Health)/float64(arch.Health+snap.Wave*parameter.HealthPerWave)
		r.plot(e.Pos.Add(shake), enemyGlyph(arch.Type), r.palette.Blend(arch.Color, "#ffffff", damage*0.6))
	}

	for _, b := range snap.Bullets {
		w := parameter.WeaponAt(b.Weapon)
		r.plot(b.Pos.Add(shake), glyphBullet, r.palette.Color(w.Color))
	}

	r.plot(snap.Player.Pos.Add(shake), playerGlyph(snap.Player.Angle), r.palette.Color(colorPlayer))
}

// drawExplosion plots an expanding ring that fades over its lifetime
func (r *Renderer) drawExplosion(center vmath.Vec2, frame int) {
	progress := float64(frame) / float64(parameter.ExplosionFrames)
	cw, _ := r.viewport.CellSize()
	radius := cw * (1 + progress*2)
	color := r.palette.Blend(colorExplosion, colorDanger, progress)
	for i := 0; i < 8; i++ {
		p := center.Add(vmath.FromAngle(float64(i)*math.Pi/4, radius))
		r.plot(p, glyphExplosion, color)
	}
	r.plot(center, glyphSpark, color)
}

// plot draws one glyph at a field position; off-field positions are skipped
func (r *Renderer) plot(p vmath.Vec2, glyph rune, fg tcell.Color) {
	x, y, ok := r.viewport.ToCell(p)
	if !ok {
		return
	}
	style := tcell.StyleDefault.Foreground(fg).Background(r.palette.Color(colorField))
	r.screen.SetContent(x, y, glyph, nil, style)
}

func enemyGlyph(t parameter.EnemyType) rune {
	switch t {
	case parameter.EnemyTank:
		return glyphTank
	case parameter.EnemySwarm:
		return glyphSwarm
	default:
		return glyphDrone
	}
}

// playerGlyph picks the arrow closest to angle
func playerGlyph(angle float64) rune {
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return playerGlyphs[octant]
}
