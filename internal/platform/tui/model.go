package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// Model is the Bubble Tea model hosting one game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	newSeed   func() int64
	gen       uint64 // Bumped on restart; older ticks are ignored
	gameState core.GameState
	quitting  bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger for game events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithSeedSource sets the seed generator used for restarts and for an
// unseeded first game.
func WithSeedSource(fn func() int64) Option {
	return func(m *Model) {
		if fn != nil {
			m.newSeed = fn
		}
	}
}

// NewModel creates a model and starts the game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ...Option) Model {
	m := Model{
		game:    game,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  log.New(io.Discard),
		newSeed: func() int64 { return time.Now().UnixNano() },
		gen:     1,
	}
	for _, opt := range opts {
		opt(&m)
	}

	if cfg.Seed == 0 {
		cfg.Seed = m.newSeed()
	}
	m.config = cfg
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())

	m.game.Reset(m.gameConfig())
	m.gameState = m.game.State()
	m.logger.Info("game started", "game", game.ID(), "seed", cfg.Seed)

	return m
}

// Init arms the first tick.
func (m Model) Init() tea.Cmd {
	return m.armTick(m.game.Schedule())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.resizeGame()
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey applies key-driven actions immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.resizeGame()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
		return m, m.restart()
	default:
		m.observe(m.game.Input(core.FrameOf(action)))
		return m, nil
	}
}

// handleTick runs one gravity step and re-arms the timer if the game asks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}

	res := m.game.Tick()
	m.observe(res)
	return m, m.armTick(res.Schedule)
}

// armTick schedules the next tick for the current generation.
// Nothing is armed once the game no longer wants ticks.
func (m Model) armTick(s core.Schedule) tea.Cmd {
	if !s.Rearm {
		return nil
	}
	return tickCmd(s.Interval, m.gen)
}

// restart starts a fresh game with a new seed.
func (m *Model) restart() tea.Cmd {
	m.gen++
	m.config.Seed = m.newSeed()
	m.game.Reset(m.gameConfig())
	m.gameState = m.game.State()
	m.logger.Info("game restarted", "game", m.game.ID(), "seed", m.config.Seed)
	return m.armTick(m.game.Schedule())
}

// observe records a step result and logs what happened.
func (m *Model) observe(res core.StepResult) {
	if res.Locked {
		m.logger.Debug("piece locked", "cleared", res.Cleared)
	}
	if res.Cleared > 0 {
		m.logger.Debug("rows cleared", "rows", res.Cleared, "lines", res.State.Lines)
	}
	if res.State.GameOver && !m.gameState.GameOver {
		m.logger.Info("game over", "game", m.game.ID(), "lines", res.State.Lines)
	}
	if res.State.Paused != m.gameState.Paused {
		m.logger.Debug("pause toggled", "paused", res.State.Paused)
	}
	m.gameState = res.State
}

// footer returns the help line(s) shown under the game.
func (m Model) footer() string {
	return m.help.View(m.keys)
}

// gameHeight is the screen height left for the game above the footer.
func (m Model) gameHeight() int {
	return core.Max(0, m.config.ScreenH-lipgloss.Height(m.footer()))
}

// gameConfig returns the runtime config with the game's share of the screen.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.gameHeight()
	return cfg
}

// resizeGame fits the screen buffer and the game to the current window.
func (m *Model) resizeGame() {
	h := m.gameHeight()
	m.screen.Resize(m.config.ScreenW, h)
	m.game.Resize(m.config.ScreenW, h)
	m.gameState = m.game.State()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), m.footer())
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
