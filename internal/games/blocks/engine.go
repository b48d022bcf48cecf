// Package blocks implements the falling-block puzzle engine: the locked-cell
// grid, the falling piece, gravity, locking and row clearing, plus the
// registry.Game adapter that lets the platform host it.
package blocks

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// DefaultTickInterval is the fixed gravity cadence.
const DefaultTickInterval = 800 * time.Millisecond

// CenterSpawn selects the top-center spawn column.
const CenterSpawn = -1

// Phase is the engine state.
type Phase int

const (
	PhaseIdle     Phase = iota // Created, no piece spawned yet
	PhaseFalling               // A piece is live and controllable
	PhaseLocking               // Transient: committing a landed piece
	PhaseGameOver              // No new piece could be placed
)

// String returns the snake_case phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Config holds the engine parameters.
type Config struct {
	Width        int
	Height       int
	SpawnColumn  int // CenterSpawn for width / 2
	TickInterval time.Duration
	Palette      map[PieceKind]core.Color // Missing kinds use PieceKind.Color
}

// DefaultConfig returns the 10 x 16 board with 800 ms gravity.
func DefaultConfig() Config {
	return Config{
		Width:        10,
		Height:       16,
		SpawnColumn:  CenterSpawn,
		TickInterval: DefaultTickInterval,
	}
}

// TickResult describes what one gravity step did and whether the host should
// schedule another.
type TickResult struct {
	Moved    bool          // The piece fell one row
	Locked   bool          // The piece was committed to the board
	Cleared  int           // Rows removed by the lock
	Phase    Phase         // Phase after the step
	Interval time.Duration // Delay before the next tick
	Rearm    bool          // false once the game is over
}

// Engine owns the board and the falling piece. It is not safe for concurrent
// use; the host delivers one event at a time.
type Engine struct {
	cfg       Config
	rng       *rand.Rand
	board     *Board
	active    *Piece
	phase     Phase
	listeners []Listener

	ticks  uint64
	lines  int
	pieces int
}

// NewEngine creates an idle engine with an empty board.
// rng drives piece selection; pass a seeded source for reproducible games.
func NewEngine(cfg Config, rng *rand.Rand) *Engine {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	board := NewBoard(cfg.Width, cfg.Height)
	if cfg.SpawnColumn != CenterSpawn {
		board.SetSpawnColumn(cfg.SpawnColumn)
	}
	return &Engine{
		cfg:   cfg,
		rng:   rng,
		board: board,
		phase: PhaseIdle,
	}
}

// Subscribe registers a listener for cell changes.
func (e *Engine) Subscribe(fn Listener) {
	e.listeners = append(e.listeners, fn)
}

func (e *Engine) emit(changes []CellChange) {
	if len(changes) == 0 {
		return
	}
	for _, fn := range e.listeners {
		fn(changes)
	}
}

// Phase returns the current state.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Board returns a copy of the locked-cell grid.
func (e *Engine) Board() *Board {
	return e.board.Clone()
}

// Active returns a copy of the falling piece, if any.
func (e *Engine) Active() (Piece, bool) {
	if e.active == nil {
		return Piece{}, false
	}
	return e.active.Clone(), true
}

// ColorOf returns the display color for a variant.
func (e *Engine) ColorOf(kind PieceKind) core.Color {
	if c, ok := e.cfg.Palette[kind]; ok {
		return c
	}
	return kind.Color()
}

// Interval returns the fixed gravity interval.
func (e *Engine) Interval() time.Duration {
	return e.cfg.TickInterval
}

// ShouldRearm reports whether the host should keep scheduling ticks.
func (e *Engine) ShouldRearm() bool {
	return e.phase == PhaseFalling
}

// Lines returns the total number of rows cleared.
func (e *Engine) Lines() int {
	return e.lines
}

// Start spawns the first piece. Returns false if the engine was already
// started or the piece does not fit.
func (e *Engine) Start() bool {
	if e.phase != PhaseIdle {
		return false
	}
	return e.spawn(e.randomKind())
}

// Spawn places a specific variant at the spawn anchor. Only valid while no
// piece is live. A shape that does not fit ends the game without touching
// the board.
func (e *Engine) Spawn(kind PieceKind) bool {
	if e.phase != PhaseIdle || !kind.Valid() {
		return false
	}
	return e.spawn(kind)
}

func (e *Engine) randomKind() PieceKind {
	return PieceKind(e.rng.Intn(KindCount))
}

func (e *Engine) spawn(kind PieceKind) bool {
	anchor := e.board.SpawnAnchor()
	piece := NewPiece(kind, anchor)
	if !e.board.CanPlace(anchor, piece.Offsets) {
		e.active = nil
		e.phase = PhaseGameOver
		return false
	}

	e.active = &piece
	e.phase = PhaseFalling
	e.pieces++
	e.emit(pieceDelta(nil, piece.Cells(), e.ColorOf(kind)))
	return true
}

// Move shifts the piece by dx columns and dy rows if the target is free.
// Rejections are silent: the piece stays where it was.
func (e *Engine) Move(dx, dy int) bool {
	if e.phase != PhaseFalling {
		return false
	}
	next := Point{Col: e.active.Anchor.Col + dx, Row: e.active.Anchor.Row + dy}
	if !e.board.CanPlace(next, e.active.Offsets) {
		return false
	}

	before := e.active.Cells()
	e.active.Anchor = next
	e.emit(pieceDelta(before, e.active.Cells(), e.ColorOf(e.active.Kind)))
	return true
}

// MoveLeft shifts the piece one column left.
func (e *Engine) MoveLeft() bool { return e.Move(-1, 0) }

// MoveRight shifts the piece one column right.
func (e *Engine) MoveRight() bool { return e.Move(1, 0) }

// SoftDrop moves the piece one row down. It never locks; only Tick does.
func (e *Engine) SoftDrop() bool { return e.Move(0, 1) }

// Rotate turns the piece 90 degrees about its anchor. There is no wall kick:
// if the rotated shape does not fit in place, nothing happens.
func (e *Engine) Rotate(dir Rotation) bool {
	if e.phase != PhaseFalling {
		return false
	}
	rotated := RotateOffsets(e.active.Offsets, dir)
	if !e.board.CanPlace(e.active.Anchor, rotated) {
		return false
	}

	before := e.active.Cells()
	e.active.Offsets = rotated
	e.emit(pieceDelta(before, e.active.Cells(), e.ColorOf(e.active.Kind)))
	return true
}

// RotateCW rotates clockwise.
func (e *Engine) RotateCW() bool { return e.Rotate(Clockwise) }

// RotateCCW rotates counter-clockwise.
func (e *Engine) RotateCCW() bool { return e.Rotate(CounterClockwise) }

// Tick advances gravity by one row. A piece that cannot fall is locked, full
// rows are cleared and the next random piece is spawned. A piece that cannot
// fall while still on the spawn row ends the game, as does a spawn that does
// not fit.
func (e *Engine) Tick() TickResult {
	if e.phase != PhaseFalling {
		return e.result(TickResult{})
	}
	e.ticks++

	if e.Move(0, 1) {
		return e.result(TickResult{Moved: true})
	}

	if e.active.Anchor.Row == e.board.SpawnAnchor().Row {
		// Wedged at spawn: nothing below it can ever move again.
		e.phase = PhaseGameOver
		return e.result(TickResult{})
	}

	e.phase = PhaseLocking
	cleared := e.lockActive()
	e.spawn(e.randomKind())
	return e.result(TickResult{Locked: true, Cleared: cleared})
}

// lockActive commits the falling piece, clears full rows and emits the
// resulting visible changes.
func (e *Engine) lockActive() int {
	piece := e.active
	color := e.ColorOf(piece.Kind)
	before := e.board.Clone()

	e.board.Lock(piece.Anchor, piece.Offsets, color)
	cleared := e.board.ClearFullRows()
	e.lines += cleared
	e.active = nil

	e.emit(boardDelta(before, piece.Cells(), color, e.board))
	return cleared
}

func (e *Engine) result(r TickResult) TickResult {
	r.Phase = e.phase
	r.Interval = e.cfg.TickInterval
	r.Rearm = e.ShouldRearm()
	return r
}
