package blocks

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// tallHeight is the board height of the "blocks_tall" variant.
const tallHeight = 20

// Package-level variables for config
var (
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger used for config loading problems.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game adapts the engine to the platform's registry.Game contract.
type Game struct {
	id    string
	title string
	tall  bool
	fixed *config.BlocksConfig // Bypasses config loading when set

	cfg    config.BlocksConfig
	engine *Engine

	// cells mirrors the visible grid, kept current from engine notifications
	cells [][]Slot

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates the classic 10 x 16 game (or whatever the config file says).
func New() *Game {
	return &Game{id: "blocks", title: "Blocks"}
}

// NewTall creates the 20-row variant.
func NewTall() *Game {
	return &Game{id: "blocks_tall", title: "Blocks (Tall)", tall: true}
}

// NewWithConfig creates a game that uses cfg instead of loading a config file.
func NewWithConfig(cfg config.BlocksConfig) *Game {
	g := New()
	g.fixed = &cfg
	return g
}

func init() {
	registry.Register("blocks", func() registry.Game {
		return New()
	})
	registry.Register("blocks_tall", func() registry.Game {
		return NewTall()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = g.loadConfig()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false

	g.engine = NewEngine(EngineConfig(g.cfg), rand.New(rand.NewSource(cfg.Seed)))
	g.cells = make([][]Slot, g.cfg.Board.Height)
	for y := range g.cells {
		g.cells[y] = make([]Slot, g.cfg.Board.Width)
	}
	g.engine.Subscribe(g.applyChanges)
	g.engine.Start()

	g.checkScreenSize()
}

func (g *Game) loadConfig() config.BlocksConfig {
	var cfg config.BlocksConfig
	if g.fixed != nil {
		cfg = *g.fixed
	} else {
		loaded, err := config.LoadBlocks(configPath)
		if err != nil {
			logger.Warn("using default config", "path", configPath, "error", err)
			loaded = config.DefaultBlocksConfig()
		}
		cfg = loaded
	}
	if g.tall {
		cfg.Board.Height = tallHeight
	}
	return cfg
}

// EngineConfig converts the YAML configuration into engine parameters.
func EngineConfig(cfg config.BlocksConfig) Config {
	palette := make(map[PieceKind]core.Color, KindCount)
	for _, k := range AllKinds() {
		if c := cfg.PieceColor(k.Letter()); c != core.ColorDefault {
			palette[k] = c
		}
	}
	return Config{
		Width:        cfg.Board.Width,
		Height:       cfg.Board.Height,
		SpawnColumn:  cfg.SpawnColumn(),
		TickInterval: cfg.TickInterval(),
		Palette:      palette,
	}
}

// applyChanges keeps the render mirror in sync with the engine.
func (g *Game) applyChanges(changes []CellChange) {
	for _, c := range changes {
		g.cells[c.Point.Row][c.Point.Col] = Slot{Color: c.Color, Filled: c.Filled}
	}
}

// Resize updates the screen dimensions without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	minW, minH := g.minScreenSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Input applies key-driven actions. Moves and rotations are silent no-ops
// when blocked, paused, or after game over.
func (g *Game) Input(in core.InputFrame) core.StepResult {
	if in.Empty() {
		return g.result(false, 0)
	}
	over := g.engine.Phase() == PhaseGameOver

	if in.Has(core.ActionPause) && !over {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || over {
		return g.result(false, 0)
	}

	if in.Has(core.ActionRotateCCW) {
		g.engine.RotateCCW()
	}
	if in.Has(core.ActionRotateCW) {
		g.engine.RotateCW()
	}
	if in.Has(core.ActionMoveLeft) {
		g.engine.MoveLeft()
	}
	if in.Has(core.ActionMoveRight) {
		g.engine.MoveRight()
	}
	if in.Has(core.ActionSoftDrop) {
		g.engine.SoftDrop()
	}

	return g.result(false, 0)
}

// Tick runs one gravity step unless the game is paused.
func (g *Game) Tick() core.StepResult {
	if g.paused || g.tooSmall {
		return g.result(false, 0)
	}
	r := g.engine.Tick()
	return g.result(r.Locked, r.Cleared)
}

// Schedule reports the fixed interval, and stops re-arming after game over.
// A paused game keeps ticking so it can resume on schedule.
func (g *Game) Schedule() core.Schedule {
	return core.Schedule{
		Interval: g.engine.Interval(),
		Rearm:    g.engine.Phase() != PhaseGameOver,
	}
}

func (g *Game) result(locked bool, cleared int) core.StepResult {
	return core.StepResult{
		State:    g.State(),
		Schedule: g.Schedule(),
		Locked:   locked,
		Cleared:  cleared,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Lines:    g.engine.Lines(),
		GameOver: g.engine.Phase() == PhaseGameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Engine exposes the underlying engine for snapshots and tests.
func (g *Game) Engine() *Engine {
	return g.engine
}
