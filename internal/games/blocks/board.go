package blocks

import (
	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Slot is one grid position: either empty or a locked cell with a color.
type Slot struct {
	Color  core.Color
	Filled bool
}

// Board is the dense H x W grid of locked cells.
// It holds only permanently locked cells, never the falling piece.
type Board struct {
	width    int
	height   int
	spawnCol int
	rows     [][]Slot
}

// NewBoard creates an empty board. The spawn anchor is the top-center cell.
func NewBoard(width, height int) *Board {
	b := &Board{
		width:    width,
		height:   height,
		spawnCol: width / 2,
		rows:     make([][]Slot, height),
	}
	for y := range b.rows {
		b.rows[y] = make([]Slot, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// SetSpawnColumn moves the spawn anchor to another column of the top row.
func (b *Board) SetSpawnColumn(col int) {
	b.spawnCol = col
}

// SpawnAnchor returns the fixed cell new pieces are placed at.
func (b *Board) SpawnAnchor() Point {
	return Point{Col: b.spawnCol, Row: 0}
}

// InBounds reports whether p lies on the grid.
func (b *Board) InBounds(p Point) bool {
	return p.Col >= 0 && p.Col < b.width && p.Row >= 0 && p.Row < b.height
}

// At returns the slot at p. Out-of-bounds points read as empty.
func (b *Board) At(p Point) Slot {
	if !b.InBounds(p) {
		return Slot{}
	}
	return b.rows[p.Row][p.Col]
}

// IsOccupied reports whether p is blocked: off the grid or locked.
func (b *Board) IsOccupied(p Point) bool {
	if !b.InBounds(p) {
		return true
	}
	return b.rows[p.Row][p.Col].Filled
}

// CanPlace reports whether every cell of a shape at anchor is free.
// All movement, rotation and gravity checks go through here.
func (b *Board) CanPlace(anchor Point, offsets []Offset) bool {
	for _, o := range offsets {
		if b.IsOccupied(anchor.Add(o)) {
			return false
		}
	}
	return true
}

// Lock writes a shape into the grid with the given color.
// No validation is done: the caller must already know the piece has landed.
func (b *Board) Lock(anchor Point, offsets []Offset, color core.Color) {
	for _, o := range offsets {
		p := anchor.Add(o)
		b.rows[p.Row][p.Col] = Slot{Color: color, Filled: true}
	}
}

// Fill locks a single cell. Out-of-bounds points are ignored.
func (b *Board) Fill(p Point, color core.Color) {
	if !b.InBounds(p) {
		return
	}
	b.rows[p.Row][p.Col] = Slot{Color: color, Filled: true}
}

// IsRowFull reports whether every column of row y is locked.
func (b *Board) IsRowFull(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	for _, s := range b.rows[y] {
		if !s.Filled {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all full rows, top to bottom.
func (b *Board) FullRows() []int {
	var full []int
	for y := range b.height {
		if b.IsRowFull(y) {
			full = append(full, y)
		}
	}
	return full
}

// ClearFullRows removes every full row and collapses the rows above it.
// Surviving rows keep their top-to-bottom order and are packed against the
// floor; the vacated top rows become empty. Returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	kept := make([][]Slot, 0, b.height)
	for y := range b.height {
		if !b.IsRowFull(y) {
			kept = append(kept, b.rows[y])
		}
	}

	cleared := b.height - len(kept)
	if cleared == 0 {
		return 0
	}

	rows := make([][]Slot, 0, b.height)
	for range cleared {
		rows = append(rows, make([]Slot, b.width))
	}
	b.rows = append(rows, kept...)
	return cleared
}

// FilledCount returns the number of locked cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, row := range b.rows {
		for _, s := range row {
			if s.Filled {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	c := &Board{
		width:    b.width,
		height:   b.height,
		spawnCol: b.spawnCol,
		rows:     make([][]Slot, b.height),
	}
	for y, row := range b.rows {
		c.rows[y] = append([]Slot(nil), row...)
	}
	return c
}
