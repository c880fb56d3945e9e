package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/galactic-wrench/engine"
	"github.com/lixenwraith/galactic-wrench/parameter"
)

// drawHUD writes the session scalars on the top row
func (r *Renderer) drawHUD(snap *engine.Snapshot) {
	base := tcell.StyleDefault.Background(r.palette.Color("#202020"))
	fillRow(r.screen, 0, base)

	healthColor := colorHUD
	if snap.Health <= parameter.PlayerMaxHealth/4 {
		healthColor = colorDanger
	}
	w := parameter.WeaponAt(snap.Weapon)

	x := drawText(r.screen, 1, 0, fmt.Sprintf("HP %3d", snap.Health), base.Foreground(r.palette.Color(healthColor)).Bold(true))
	x = drawText(r.screen, x, 0, "  ", base)
	x = drawText(r.screen, x, 0, fmt.Sprintf("Bolts %d", snap.Bolts), base.Foreground(r.palette.Color(colorBolt)))
	x = drawText(r.screen, x, 0, "  ", base)
	x = drawText(r.screen, x, 0, fmt.Sprintf("Score %d  Wave %d  Kills %d", snap.Score, snap.Wave, snap.Kills), base.Foreground(r.palette.Color(colorHUD)))
	x = drawText(r.screen, x, 0, "  ", base)
	drawText(r.screen, x, 0, fmt.Sprintf("%s %s DMG %d", w.Icon, w.Name, w.Damage), base.Foreground(r.palette.Color(w.Color)))
}

// drawWeaponBar lists the weapons on the bottom row with the selection highlighted
func (r *Renderer) drawWeaponBar(snap *engine.Snapshot) {
	_, h := r.screen.Size()
	y := h - 1
	base := tcell.StyleDefault.Background(r.palette.Color("#202020"))
	fillRow(r.screen, y, base)

	x := 1
	for i, w := range parameter.Weapons {
		style := base.Foreground(r.palette.Color(colorDim))
		if i == snap.Weapon {
			style = base.Foreground(r.palette.Color(w.Color)).Bold(true).Reverse(true)
		}
		x = drawText(r.screen, x, y, fmt.Sprintf(" %d %s %s ", i+1, w.Icon, w.Name), style)
		x++
	}
}

// drawMenu renders the title screen with controls and the last result
func (r *Renderer) drawMenu(snap *engine.Snapshot) {
	_, h := r.screen.Size()
	top := max(h/2-6, 0)
	title := tcell.StyleDefault.Foreground(r.palette.Color(colorTitle)).Bold(true)
	text := tcell.StyleDefault.Foreground(r.palette.Color(colorHUD))
	dim := tcell.StyleDefault.Foreground(r.palette.Color(colorDim))

	drawCentered(r.screen, top, "G A L A C T I C   W R E N C H", title)
	drawCentered(r.screen, top+2, "Enter: start   Q: quit", text)
	drawCentered(r.screen, top+4, "WASD / arrows: move   mouse: aim", dim)
	drawCentered(r.screen, top+5, "Space / left button: fire   1-4: weapon", dim)
	drawCentered(r.screen, top+6, "Esc: back to menu after game over", dim)

	if snap.Score > 0 || snap.Kills > 0 {
		drawCentered(r.screen, top+8, fmt.Sprintf("Last run: score %d  bolts %d  wave %d", snap.Score, snap.Bolts, snap.Wave), text)
	}
}

// drawGameOver overlays the final result on the frozen field
func (r *Renderer) drawGameOver(snap *engine.Snapshot) {
	_, h := r.screen.Size()
	mid := h / 2
	bg := r.palette.Color(colorField)
	danger := tcell.StyleDefault.Background(bg).Foreground(r.palette.Color(colorDanger)).Bold(true)
	text := tcell.StyleDefault.Background(bg).Foreground(r.palette.Color(colorHUD))

	drawCentered(r.screen, mid-2, "  GAME OVER  ", danger)
	drawCentered(r.screen, mid, fmt.Sprintf("  Score %d   Bolts %d   Wave %d  ", snap.Score, snap.Bolts, snap.Wave), text)
	drawCentered(r.screen, mid+2, "  Enter: play again   Esc: menu  ", text)
}
