package blocks

import (
	"github.com/vovakirdan/tui-blocks/internal/core"
)

// CellChange reports the new visible content of one cell.
// Filled is false when the cell became empty.
type CellChange struct {
	Point  Point
	Color  core.Color
	Filled bool
}

// Listener receives the cells changed by one engine operation, in row-major order
// for board-wide changes.
type Listener func(changes []CellChange)

// pieceDelta lists the cells that change when a piece moves from one cell set to
// another. Cells vacated by the piece become empty; board and piece never overlap.
func pieceDelta(from, to []Point, color core.Color) []CellChange {
	inFrom := make(map[Point]bool, len(from))
	for _, p := range from {
		inFrom[p] = true
	}
	inTo := make(map[Point]bool, len(to))
	for _, p := range to {
		inTo[p] = true
	}

	var changes []CellChange
	for _, p := range from {
		if !inTo[p] {
			changes = append(changes, CellChange{Point: p})
		}
	}
	for _, p := range to {
		if !inFrom[p] {
			changes = append(changes, CellChange{Point: p, Color: color, Filled: true})
		}
	}
	return changes
}

// boardDelta compares a previous visible grid (board plus an overlaid piece)
// against the current board and lists every cell whose content differs.
func boardDelta(prev *Board, overlay []Point, overlayColor core.Color, cur *Board) []CellChange {
	before := prev.Clone()
	for _, p := range overlay {
		before.Fill(p, overlayColor)
	}

	var changes []CellChange
	for y := range cur.Height() {
		for x := range cur.Width() {
			p := Point{Col: x, Row: y}
			if before.At(p) != cur.At(p) {
				s := cur.At(p)
				changes = append(changes, CellChange{Point: p, Color: s.Color, Filled: s.Filled})
			}
		}
	}
	return changes
}
