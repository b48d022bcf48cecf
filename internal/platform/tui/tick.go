// Package tui provides the Bubble Tea host for the blocks engine.
// It owns the tick scheduler, maps keys to game actions and renders the
// game's screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent when a scheduled gravity tick fires.
// Gen identifies the game run that armed it; ticks armed before a restart
// carry an older generation and are dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd arms a single tick after interval.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
