package blocks

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

const (
	cellWidth = 2 // Terminal columns per grid cell
	hudHeight = 2 // Title row + status row
	sideGap   = 3 // Space between the well and the side panel
)

var controls = []string{
	"←/→   move",
	"↓     soft drop",
	"a     rotate ccw",
	"d     rotate cw",
	"p     pause",
	"q     quit",
}

// minScreenSize returns the smallest screen that fits the well and HUD.
func (g *Game) minScreenSize() (int, int) {
	return g.cfg.Board.Width*cellWidth + 2, g.cfg.Board.Height + 2 + hudHeight
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	wellW := g.cfg.Board.Width*cellWidth + 2 // +2 for borders
	wellH := g.cfg.Board.Height + 2

	// Center the well; the side panel goes to its right when there is room
	area := core.NewRect(0, hudHeight, g.screenW, g.screenH-hudHeight)
	well := core.CenterIn(area, wellW, wellH)

	g.renderHUD(dst, well)
	dst.DrawBox(well)
	g.renderCells(dst, well)
	g.renderSidePanel(dst, well)
	g.renderOverlays(dst, well)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minScreenSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minW, minH))
}

// renderHUD draws the title and the falling piece's letter above the well.
func (g *Game) renderHUD(dst *core.Screen, well core.Rect) {
	title := g.title
	dst.DrawText(well.X+(well.W-len(title))/2, well.Y-hudHeight, title)

	if piece, ok := g.engine.Active(); ok {
		kind := "Piece: " + piece.Kind.String()
		dst.DrawText(well.Right()-len(kind), well.Y-1, kind)
	}
}

// renderCells draws the mirrored grid inside the well.
func (g *Game) renderCells(dst *core.Screen, well core.Rect) {
	for y, row := range g.cells {
		for x, s := range row {
			px := well.X + 1 + x*cellWidth
			py := well.Y + 1 + y
			if s.Filled {
				dst.SetCell(px, py, '█', s.Color)
				dst.SetCell(px+1, py, '█', s.Color)
			} else {
				dst.SetCell(px, py, ' ', core.ColorDefault)
				dst.SetCell(px+1, py, '·', core.ColorGray)
			}
		}
	}
}

// renderSidePanel lists the controls when the screen is wide enough.
func (g *Game) renderSidePanel(dst *core.Screen, well core.Rect) {
	x := well.Right() + sideGap
	if x+len("d     rotate cw") > g.screenW {
		return
	}
	for i, line := range controls {
		dst.DrawText(x, well.Y+1+i, line)
	}
}

// renderOverlays draws pause and game-over messages over the well.
func (g *Game) renderOverlays(dst *core.Screen, well core.Rect) {
	midY := well.Y + well.H/2

	center := func(y int, text string, c core.Color) {
		x := well.X + (well.W-len([]rune(text)))/2
		dst.DrawColorText(x, y, text, c)
	}

	switch {
	case g.engine.Phase() == PhaseGameOver:
		center(midY-1, " GAME OVER ", core.ColorRed)
		center(midY+1, " R restart ", core.ColorWhite)
	case g.paused:
		center(midY, " PAUSED ", core.ColorYellow)
	}
}
