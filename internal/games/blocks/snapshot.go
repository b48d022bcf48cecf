package blocks

// Snapshot captures the complete engine state for determinism testing and
// for hosts that poll instead of subscribing to cell changes.
type Snapshot struct {
	Tick    uint64
	Phase   Phase
	Width   int
	Height  int
	Lines   int // Rows cleared so far
	Pieces  int // Pieces spawned so far
	Locked  int // Locked cells on the board
	Active  *Piece
	Visible [][]Slot // Locked cells with the falling piece drawn on top
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	visible := e.board.Clone()
	var active *Piece
	if e.active != nil {
		p := e.active.Clone()
		active = &p
		color := e.ColorOf(p.Kind)
		for _, c := range p.Cells() {
			visible.Fill(c, color)
		}
	}

	return Snapshot{
		Tick:    e.ticks,
		Phase:   e.phase,
		Width:   e.board.Width(),
		Height:  e.board.Height(),
		Lines:   e.lines,
		Pieces:  e.pieces,
		Locked:  e.board.FilledCount(),
		Active:  active,
		Visible: visible.rows,
	}
}

// At returns the visible slot at p.
func (s Snapshot) At(p Point) Slot {
	if p.Row < 0 || p.Row >= len(s.Visible) || p.Col < 0 || p.Col >= len(s.Visible[p.Row]) {
		return Slot{}
	}
	return s.Visible[p.Row][p.Col]
}
