package arena

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/brawler/internal/application/state"
	"github.com/younwookim/brawler/internal/application/system"
	"github.com/younwookim/brawler/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorFloor      = color.RGBA{40, 40, 60, 255}
	colorWall       = color.RGBA{80, 80, 100, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorSpin       = color.RGBA{120, 220, 255, 255}
	colorCombo      = color.RGBA{255, 200, 100, 255}
	colorFacing     = color.RGBA{255, 255, 255, 255}
	colorHitbox     = color.RGBA{255, 80, 80, 128}
	colorTarget     = color.RGBA{200, 100, 100, 255}
	colorFlash      = color.RGBA{255, 255, 255, 255}
	colorCooldownBG = color.RGBA{60, 60, 60, 255}
	colorCooldownFG = color.RGBA{100, 160, 255, 255}
	colorPip        = color.RGBA{255, 215, 0, 255}
)

const wallThickness = 4.0

// Draw renders the arena (implements scene.Scene)
func (a *Arena) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	snap := a.world.Snapshot()

	// Apply screen shake
	ox := a.shake * (2*a.rng.Float64() - 1)
	oy := a.shake * (2*a.rng.Float64() - 1)
	v := a.viewport(ox, oy)

	a.drawFloor(screen, v, snap)
	a.drawTargets(screen, v, snap)
	a.drawCharacter(screen, v, snap)
	a.drawUI(screen, snap)

	if snap.Paused {
		a.drawPauseOverlay(screen)
	}
}

// viewport maps arena meters onto screen pixels with +Z pointing up
type viewport struct {
	cx, cy float64
	ppu    float64
}

func (a *Arena) viewport(ox, oy float64) viewport {
	return viewport{
		cx:  float64(a.display.ScreenWidth)/2 + ox,
		cy:  float64(a.display.ScreenHeight)/2 + oy,
		ppu: a.display.PixelsPerUnit,
	}
}

func (v viewport) point(x, z float64) (float64, float64) {
	return v.cx + x*v.ppu, v.cy - z*v.ppu
}

func (a *Arena) drawFloor(screen *ebiten.Image, v viewport, snap system.Snapshot) {
	left, top := v.point(-snap.HalfWidth, snap.HalfDepth)
	w := 2 * snap.HalfWidth * v.ppu
	h := 2 * snap.HalfDepth * v.ppu

	ebitenutil.DrawRect(screen, left, top, w, h, colorFloor)
	ebitenutil.DrawRect(screen, left-wallThickness, top-wallThickness, w+2*wallThickness, wallThickness, colorWall)
	ebitenutil.DrawRect(screen, left-wallThickness, top+h, w+2*wallThickness, wallThickness, colorWall)
	ebitenutil.DrawRect(screen, left-wallThickness, top, wallThickness, h, colorWall)
	ebitenutil.DrawRect(screen, left+w, top, wallThickness, h, colorWall)
}

func (a *Arena) drawTargets(screen *ebiten.Image, v viewport, snap system.Snapshot) {
	for _, t := range snap.Targets {
		x, y := v.point(t.X, t.Z)

		// Flash on hit
		c := colorTarget
		if t.Flashed {
			c = colorFlash
		}
		ebitenutil.DrawCircle(screen, x, y, t.Radius*v.ppu, c)
	}
}

func (a *Arena) drawCharacter(screen *ebiten.Image, v viewport, snap system.Snapshot) {
	x, y := v.point(snap.X, snap.Z)

	c := colorPlayer
	switch snap.State {
	case state.Spin:
		c = colorSpin
	case state.Combo:
		c = colorCombo
	}

	// Airborne characters are drawn slightly larger
	r := 0.4*v.ppu + snap.Y*4
	ebitenutil.DrawCircle(screen, x, y, r, c)

	fx, fz := entity.HeadingVector(snap.Heading)
	ebitenutil.DrawLine(screen, x, y, x+fx*r*1.5, y-fz*r*1.5, colorFacing)

	if snap.HitboxActive {
		hx, hy := v.point(snap.HitboxX, snap.HitboxZ)
		ebitenutil.DrawCircle(screen, hx, hy, snap.HitboxRadius*v.ppu, colorHitbox)
	}
}

func (a *Arena) drawUI(screen *ebiten.Image, snap system.Snapshot) {
	screenH := a.display.ScreenHeight

	// Combo pips
	for i := 0; i < state.MaxComboHits; i++ {
		c := colorCooldownBG
		if i < snap.ComboHit {
			c = colorPip
		}
		ebitenutil.DrawRect(screen, 10+float64(i)*14, float64(screenH-38), 10, 10, c)
	}

	// Spin cooldown bar, full when ready
	barX := 10.0
	barY := float64(screenH - 20)
	barW := 100.0
	barH := 10.0
	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorCooldownBG)
	ebitenutil.DrawRect(screen, barX, barY, barW*(1-math.Min(1, snap.Cooldown)), barH, colorCooldownFG)

	ebitenutil.DebugPrintAt(screen, a.status(snap), 130, screenH-24)

	// Controls
	ebitenutil.DebugPrint(screen, "WASD: Move | Shift: Walk | Space: Jump | J: Attack | K: Spin | ESC: Pause")
}

func (a *Arena) drawPauseOverlay(screen *ebiten.Image) {
	// Semi-transparent overlay
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(a.display.ScreenWidth), float64(a.display.ScreenHeight), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, a.display.ScreenWidth/2-50, a.display.ScreenHeight/2-20)
}
