package blocks

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Point is a cell coordinate on the grid. Row 0 is the top spawn row.
type Point struct {
	Col int
	Row int
}

// Add returns the point displaced by an offset.
func (p Point) Add(o Offset) Point {
	return Point{Col: p.Col + o.DCol, Row: p.Row + o.DRow}
}

// Offset is a cell position relative to a piece anchor.
type Offset struct {
	DRow int
	DCol int
}

// Rotation is a 90 degree turn direction.
type Rotation int

const (
	Clockwise Rotation = iota
	CounterClockwise
)

// String returns "cw" or "ccw".
func (r Rotation) String() string {
	if r == CounterClockwise {
		return "ccw"
	}
	return "cw"
}

// Rotate turns the offset 90 degrees about the anchor.
// Clockwise maps (r, c) to (c, -r); counter-clockwise maps (r, c) to (-c, r).
func (o Offset) Rotate(dir Rotation) Offset {
	if dir == CounterClockwise {
		return Offset{DRow: -o.DCol, DCol: o.DRow}
	}
	return Offset{DRow: o.DCol, DCol: -o.DRow}
}

// RotateOffsets returns a new rotated offset set. The input is not modified.
func RotateOffsets(offsets []Offset, dir Rotation) []Offset {
	out := make([]Offset, len(offsets))
	for i, o := range offsets {
		out[i] = o.Rotate(dir)
	}
	return out
}

// PieceKind is one of the seven tetromino variants.
type PieceKind int

const (
	KindI PieceKind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of piece variants.
const KindCount = 7

type kindInfo struct {
	letter string
	color  core.Color
	shape  []Offset
}

// kinds holds the immutable base shapes. Every shape keeps DRow >= 0 so it
// fits on the spawn row, and spans columns anchor-1 .. anchor+2 at most.
var kinds = [KindCount]kindInfo{
	KindI: {"i", core.ColorBrown, []Offset{{0, 0}, {0, -1}, {0, 1}, {0, 2}}},
	KindO: {"o", core.ColorRed, []Offset{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	KindT: {"t", core.ColorPurple, []Offset{{0, 0}, {0, -1}, {0, 1}, {1, 0}}},
	KindS: {"s", core.ColorViolet, []Offset{{0, 0}, {0, 1}, {1, -1}, {1, 0}}},
	KindZ: {"z", core.ColorGreen, []Offset{{0, 0}, {0, -1}, {1, 0}, {1, 1}}},
	KindJ: {"j", core.ColorBlue, []Offset{{0, 0}, {0, -1}, {0, 1}, {1, 1}}},
	KindL: {"l", core.ColorYellow, []Offset{{0, 0}, {0, -1}, {0, 1}, {1, -1}}},
}

// AllKinds returns the seven variants in declaration order.
func AllKinds() []PieceKind {
	out := make([]PieceKind, KindCount)
	for i := range out {
		out[i] = PieceKind(i)
	}
	return out
}

// Valid reports whether k names a real variant.
func (k PieceKind) Valid() bool {
	return k >= 0 && int(k) < KindCount
}

// Letter returns the lowercase letter of the variant ("i", "o", ...).
func (k PieceKind) Letter() string {
	if !k.Valid() {
		return "?"
	}
	return kinds[k].letter
}

// String returns the uppercase letter of the variant.
func (k PieceKind) String() string {
	return strings.ToUpper(k.Letter())
}

// Color returns the built-in display color of the variant.
func (k PieceKind) Color() core.Color {
	if !k.Valid() {
		return core.ColorDefault
	}
	return kinds[k].color
}

// BaseShape returns a copy of the variant's spawn orientation.
func (k PieceKind) BaseShape() []Offset {
	if !k.Valid() {
		return nil
	}
	return append([]Offset(nil), kinds[k].shape...)
}

// ParseKind resolves a piece letter, case-insensitively.
func ParseKind(s string) (PieceKind, error) {
	for i, info := range kinds {
		if strings.EqualFold(info.letter, s) {
			return PieceKind(i), nil
		}
	}
	return 0, fmt.Errorf("blocks: unknown piece %q", s)
}

// Piece is the currently falling piece.
type Piece struct {
	Kind    PieceKind
	Anchor  Point
	Offsets []Offset
}

// NewPiece places a variant in its base orientation at anchor.
func NewPiece(kind PieceKind, anchor Point) Piece {
	return Piece{Kind: kind, Anchor: anchor, Offsets: kind.BaseShape()}
}

// Cells returns the absolute cells covered by the piece.
func (p Piece) Cells() []Point {
	cells := make([]Point, len(p.Offsets))
	for i, o := range p.Offsets {
		cells[i] = p.Anchor.Add(o)
	}
	return cells
}

// Clone returns a copy that shares no offset storage with p.
func (p Piece) Clone() Piece {
	p.Offsets = append([]Offset(nil), p.Offsets...)
	return p
}
