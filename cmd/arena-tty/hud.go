package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/younwookim/brawler/internal/application/state"
	"github.com/younwookim/brawler/internal/application/system"
)

var (
	styleDefault = tcell.StyleDefault
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTarget  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleFlash   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHitbox  = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
	stylePip     = tcell.StyleDefault.Foreground(tcell.ColorGold)
	styleBar     = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue)
)

var stateStyles = map[state.ID]tcell.Style{
	state.Locomotion: tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
	state.Spin:       tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
	state.Combo:      tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
}

// hudRows is the space kept under the arena for the status lines
const hudRows = 2

const cooldownCells = 10

// field maps arena meters onto the cells inside the border
type field struct {
	w, h                 int
	halfWidth, halfDepth float64
}

// cell returns the column and row of a world position, +Z pointing up
func (f field) cell(x, z float64) (int, int) {
	col := 1 + int(math.Floor((x+f.halfWidth)/(2*f.halfWidth)*float64(f.w-2)))
	row := 1 + int(math.Floor((f.halfDepth-z)/(2*f.halfDepth)*float64(f.h-2)))
	return clamp(col, 1, f.w-2), clamp(row, 1, f.h-2)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// render draws snap onto s. The caller shows the screen.
func render(s tcell.Screen, snap system.Snapshot, hits int) {
	s.Clear()
	w, h := s.Size()
	if w < 20 || h < 6+hudRows {
		drawText(s, 0, 0, "terminal too small", styleDefault)
		return
	}

	f := field{w: w, h: h - hudRows, halfWidth: snap.HalfWidth, halfDepth: snap.HalfDepth}
	drawBorder(s, f.w, f.h)

	for _, t := range snap.Targets {
		col, row := f.cell(t.X, t.Z)
		if t.Flashed {
			s.SetContent(col, row, '*', nil, styleFlash)
		} else {
			s.SetContent(col, row, 'O', nil, styleTarget)
		}
	}

	if snap.HitboxActive {
		col, row := f.cell(snap.HitboxX, snap.HitboxZ)
		s.SetContent(col, row, '+', nil, styleHitbox)
	}

	col, row := f.cell(snap.X, snap.Z)
	s.SetContent(col, row, headingGlyph(snap.Heading, snap.Y > 0.05), nil, stateStyles[snap.State])

	drawStatus(s, f.h, snap, hits)
}

// headingGlyph points the character the way it faces, capitalized mid-air
func headingGlyph(heading float64, airborne bool) rune {
	glyphs := [4]rune{'^', '>', 'v', '<'}
	if airborne {
		glyphs = [4]rune{'A', 'D', 'V', 'Q'}
	}
	h := math.Mod(heading+45, 360)
	if h < 0 {
		h += 360
	}
	return glyphs[int(h/90)%4]
}

func drawBorder(s tcell.Screen, w, h int) {
	for x := 1; x < w-1; x++ {
		s.SetContent(x, 0, '─', nil, styleWall)
		s.SetContent(x, h-1, '─', nil, styleWall)
	}
	for y := 1; y < h-1; y++ {
		s.SetContent(0, y, '│', nil, styleWall)
		s.SetContent(w-1, y, '│', nil, styleWall)
	}
	s.SetContent(0, 0, '┌', nil, styleWall)
	s.SetContent(w-1, 0, '┐', nil, styleWall)
	s.SetContent(0, h-1, '└', nil, styleWall)
	s.SetContent(w-1, h-1, '┘', nil, styleWall)
}

func drawStatus(s tcell.Screen, y int, snap system.Snapshot, hits int) {
	x := drawText(s, 0, y, fmt.Sprintf("%-10s ", snap.State), stateStyles[snap.State])

	for i := 0; i < state.MaxComboHits; i++ {
		r := '·'
		if i < snap.ComboHit {
			r = '●'
		}
		s.SetContent(x, y, r, nil, stylePip)
		x++
	}

	x = drawText(s, x, y, " spin ", styleDefault)
	x = drawText(s, x, y, cooldownBar(snap.Cooldown), styleBar)
	drawText(s, x, y, fmt.Sprintf(" hits %d", hits), styleDefault)

	help := "wasd move  WASD walk  space jump  j attack  k spin  p pause  q quit"
	if snap.Paused {
		help = "PAUSED  press p to resume"
	}
	drawText(s, 0, y+1, help, styleDefault)
}

// cooldownBar fills as the spin comes back
func cooldownBar(remaining float64) string {
	ready := 1 - math.Max(0, math.Min(1, remaining))
	n := int(math.Round(ready * cooldownCells))
	return "[" + strings.Repeat("#", n) + strings.Repeat("-", cooldownCells-n) + "]"
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
