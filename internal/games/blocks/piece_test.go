package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

func TestOffsetRotate(t *testing.T) {
	tests := []struct {
		name string
		in   Offset
		dir  Rotation
		want Offset
	}{
		{"right turns down (cw)", Offset{0, 1}, Clockwise, Offset{1, 0}},
		{"down turns left (cw)", Offset{1, 0}, Clockwise, Offset{0, -1}},
		{"right turns up (ccw)", Offset{0, 1}, CounterClockwise, Offset{-1, 0}},
		{"up turns left (ccw)", Offset{-1, 0}, CounterClockwise, Offset{0, -1}},
		{"anchor is fixed", Offset{0, 0}, Clockwise, Offset{0, 0}},
		{"diagonal (cw)", Offset{1, 1}, Clockwise, Offset{1, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Rotate(tt.dir))
		})
	}
}

func TestRotationHasOrderFour(t *testing.T) {
	for _, kind := range AllKinds() {
		for _, dir := range []Rotation{Clockwise, CounterClockwise} {
			t.Run(kind.String()+"/"+dir.String(), func(t *testing.T) {
				base := kind.BaseShape()
				offsets := base
				for i := 0; i < 4; i++ {
					offsets = RotateOffsets(offsets, dir)
					if i < 3 && kind != KindO {
						assert.NotEqual(t, base, offsets, "rotation %d should differ from base", i+1)
					}
				}
				assert.Equal(t, base, offsets)
			})
		}
	}
}

func TestRotateThenReverseIsIdentity(t *testing.T) {
	for _, kind := range AllKinds() {
		base := kind.BaseShape()
		assert.Equal(t, base, RotateOffsets(RotateOffsets(base, Clockwise), CounterClockwise), kind.String())
	}
}

func TestRotateOffsetsDoesNotMutateInput(t *testing.T) {
	in := KindT.BaseShape()
	snapshot := append([]Offset(nil), in...)
	RotateOffsets(in, Clockwise)
	assert.Equal(t, snapshot, in)
}

func TestBaseShapes(t *testing.T) {
	colors := make(map[core.Color]bool)
	for _, kind := range AllKinds() {
		shape := kind.BaseShape()
		require.Len(t, shape, 4, kind.String())
		assert.Equal(t, Offset{0, 0}, shape[0], "%s: anchor cell first", kind)

		seen := make(map[Offset]bool)
		for _, o := range shape {
			assert.False(t, seen[o], "%s: duplicate offset %v", kind, o)
			seen[o] = true
			assert.GreaterOrEqual(t, o.DRow, 0, "%s must fit on the spawn row", kind)
			assert.GreaterOrEqual(t, o.DCol, -1, kind.String())
			assert.LessOrEqual(t, o.DCol, 2, kind.String())
		}

		assert.False(t, colors[kind.Color()], "%s: colors should be distinct", kind)
		colors[kind.Color()] = true
	}

	// I spawns horizontal, four wide
	for _, o := range KindI.BaseShape() {
		assert.Equal(t, 0, o.DRow)
	}
}

func TestBaseShapeIsCopy(t *testing.T) {
	shape := KindL.BaseShape()
	shape[0] = Offset{9, 9}
	assert.Equal(t, Offset{0, 0}, KindL.BaseShape()[0])
}

func TestPieceColors(t *testing.T) {
	assert.Equal(t, core.ColorBlue, KindJ.Color())
	assert.Equal(t, core.ColorRed, KindO.Color())
	assert.Equal(t, core.ColorGreen, KindZ.Color())
	assert.Equal(t, core.ColorYellow, KindL.Color())
	assert.Equal(t, core.ColorBrown, KindI.Color())
	assert.Equal(t, core.ColorViolet, KindS.Color())
	assert.Equal(t, core.ColorPurple, KindT.Color())
}

func TestParseKind(t *testing.T) {
	for _, kind := range AllKinds() {
		got, err := ParseKind(kind.Letter())
		require.NoError(t, err)
		assert.Equal(t, kind, got)

		got, err = ParseKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}

	_, err := ParseKind("x")
	assert.Error(t, err)
	assert.False(t, PieceKind(KindCount).Valid())
	assert.Equal(t, "?", PieceKind(-1).Letter())
}

func TestPieceCells(t *testing.T) {
	p := NewPiece(KindI, Point{Col: 5, Row: 0})
	assert.ElementsMatch(t, []Point{{4, 0}, {5, 0}, {6, 0}, {7, 0}}, p.Cells())

	c := p.Clone()
	c.Offsets[0] = Offset{3, 3}
	assert.Equal(t, Offset{0, 0}, p.Offsets[0], "clone must not share offsets")
}
