package tui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// fakeGame records host calls and ends after a set number of ticks.
type fakeGame struct {
	resets  []core.RuntimeConfig
	inputs  []core.InputFrame
	ticks   int
	endAt   int // Tick count that ends the game; 0 never ends
	over    bool
	paused  bool
	lastW   int
	lastH   int
	cleared int // Rows reported cleared on every tick
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
	g.ticks = 0
	g.over = false
	g.paused = false
	g.lastW, g.lastH = cfg.ScreenW, cfg.ScreenH
}

func (g *fakeGame) Resize(w, h int) { g.lastW, g.lastH = w, h }

func (g *fakeGame) Input(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in)
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	return core.StepResult{State: g.State(), Schedule: g.Schedule()}
}

func (g *fakeGame) Tick() core.StepResult {
	g.ticks++
	if g.endAt > 0 && g.ticks >= g.endAt {
		g.over = true
	}
	return core.StepResult{
		State:    g.State(),
		Schedule: g.Schedule(),
		Locked:   g.cleared > 0,
		Cleared:  g.cleared,
	}
}

func (g *fakeGame) Schedule() core.Schedule {
	return core.Schedule{Interval: 800 * time.Millisecond, Rearm: !g.over}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake game")
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{GameOver: g.over, Paused: g.paused}
}

func newTestModel(t *testing.T, g *fakeGame, opts ...Option) Model {
	t.Helper()
	return NewModel(g, core.RuntimeConfig{ScreenW: 100, ScreenH: 24, Seed: 5}, opts...)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestNewModelResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g)

	require.Len(t, g.resets, 1)
	assert.Equal(t, int64(5), g.resets[0].Seed)
	assert.Equal(t, 100, g.resets[0].ScreenW)
	assert.Less(t, g.resets[0].ScreenH, 24, "footer takes screen rows")
	assert.NotNil(t, m.Init(), "first tick is armed")
}

func TestNewModelSeedsWhenUnset(t *testing.T) {
	g := &fakeGame{}
	NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, WithSeedSource(func() int64 { return 1234 }))
	assert.Equal(t, int64(1234), g.resets[0].Seed)
}

func TestTickRearms(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g)

	m, cmd := update(t, m, TickMsg{Gen: m.gen})
	assert.Equal(t, 1, g.ticks)
	assert.NotNil(t, cmd)

	_, cmd = update(t, m, TickMsg{Gen: m.gen})
	assert.Equal(t, 2, g.ticks)
	assert.NotNil(t, cmd)
}

func TestNoTickAfterGameOver(t *testing.T) {
	g := &fakeGame{endAt: 2}
	m := newTestModel(t, g)

	m, cmd := update(t, m, TickMsg{Gen: m.gen})
	require.NotNil(t, cmd)

	m, cmd = update(t, m, TickMsg{Gen: m.gen})
	assert.Nil(t, cmd, "a finished game is not re-armed")
	assert.True(t, m.gameState.GameOver)
	assert.Nil(t, m.Init())
}

func TestStaleTickIgnored(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g)

	_, cmd := update(t, m, TickMsg{Gen: m.gen + 1})
	assert.Nil(t, cmd)
	assert.Zero(t, g.ticks)
}

func TestRestartAfterGameOver(t *testing.T) {
	g := &fakeGame{endAt: 1}
	m := newTestModel(t, g, WithSeedSource(func() int64 { return 99 }))
	oldGen := m.gen

	m, _ = update(t, m, TickMsg{Gen: m.gen})
	require.True(t, m.gameState.GameOver)

	m, cmd := update(t, m, runeKey('r'))
	require.NotNil(t, cmd)
	require.Len(t, g.resets, 2)
	assert.Equal(t, int64(99), g.resets[1].Seed)
	assert.False(t, m.gameState.GameOver)
	assert.Greater(t, m.gen, oldGen)

	// A tick armed before the restart must not drive the new game.
	_, cmd = update(t, m, TickMsg{Gen: oldGen})
	assert.Nil(t, cmd)
	assert.Zero(t, g.ticks)
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g)

	_, cmd := update(t, m, runeKey('r'))
	assert.Nil(t, cmd)
	assert.Len(t, g.resets, 1)
}

func TestKeysReachGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, runeKey('d'))
	m, _ = update(t, m, runeKey('p'))
	_, _ = update(t, m, runeKey('x'))

	require.Len(t, g.inputs, 3)
	assert.True(t, g.inputs[0].Has(core.ActionMoveLeft))
	assert.True(t, g.inputs[1].Has(core.ActionRotateCW))
	assert.True(t, g.inputs[2].Has(core.ActionPause))
}

func TestPausedGameKeepsTicking(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g)

	m, _ = update(t, m, runeKey('p'))
	assert.True(t, m.gameState.Paused)

	_, cmd := update(t, m, TickMsg{Gen: m.gen})
	assert.NotNil(t, cmd)
}

func TestQuit(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g)

	m, cmd := update(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestHelpToggleResizesGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g)
	short := g.lastH

	m, _ = update(t, m, runeKey('?'))
	assert.True(t, m.help.ShowAll)
	assert.Less(t, g.lastH, short, "full help takes more rows")

	_, _ = update(t, m, runeKey('?'))
	assert.Equal(t, short, g.lastH)
}

func TestWindowResize(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, g.lastW)
	assert.Equal(t, 120, m.screen.Width())
	assert.Equal(t, g.lastH, m.screen.Height())
	assert.Len(t, g.resets, 1, "resize does not restart the game")
}

func TestViewShowsGameAndHelp(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g)

	out := m.View()
	assert.Contains(t, out, "fake game")
	assert.Contains(t, out, "quit")
}

func TestModelLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	g := &fakeGame{endAt: 2, cleared: 1}
	m := newTestModel(t, g, WithLogger(logger), WithSeedSource(func() int64 { return 3 }))
	assert.Contains(t, buf.String(), "game started")

	m, _ = update(t, m, TickMsg{Gen: m.gen})
	assert.Contains(t, buf.String(), "rows cleared")

	m, _ = update(t, m, TickMsg{Gen: m.gen})
	assert.Contains(t, buf.String(), "game over")

	_, _ = update(t, m, runeKey('r'))
	assert.Contains(t, buf.String(), "game restarted")
}
