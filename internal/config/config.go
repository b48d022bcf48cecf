// Package config provides YAML-based game configuration loading and
// validation for the blocks game.
package config

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Limits for the board geometry. The I piece spans four columns around the
// spawn column, so narrower boards can never spawn it.
const (
	MinBoardWidth  = 5
	MinBoardHeight = 4
	MaxBoardWidth  = 40
	MaxBoardHeight = 40
)

// PieceLetters lists the piece letters accepted in the colors section.
var PieceLetters = []string{"i", "o", "t", "s", "z", "j", "l"}

// BlocksConfig contains all configuration for the blocks game.
type BlocksConfig struct {
	Board  BoardConfig       `yaml:"board"`
	Timing TimingConfig      `yaml:"timing"`
	Colors map[string]string `yaml:"colors"`
}

// BoardConfig defines the grid geometry.
type BoardConfig struct {
	Width       int  `yaml:"width"`
	Height      int  `yaml:"height"`
	SpawnColumn *int `yaml:"spawn_column,omitempty"` // nil means width / 2
}

// TimingConfig defines the gravity cadence.
type TimingConfig struct {
	TickIntervalMS int `yaml:"tick_interval_ms"`
}

// TickInterval returns the gravity interval as a duration.
func (c BlocksConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickIntervalMS) * time.Millisecond
}

// SpawnColumn returns the configured spawn column, or width / 2 when unset.
func (c BlocksConfig) SpawnColumn() int {
	if c.Board.SpawnColumn != nil {
		return *c.Board.SpawnColumn
	}
	return c.Board.Width / 2
}

// PieceColor returns the color configured for a piece letter.
// Unknown letters and names resolve to the default color; Validate reports them.
func (c BlocksConfig) PieceColor(letter string) core.Color {
	name, ok := c.Colors[letter]
	if !ok {
		return core.ColorDefault
	}
	color, err := core.ParseColor(name)
	if err != nil {
		return core.ColorDefault
	}
	return color
}

// Validate checks that the configuration describes a playable board.
// All problems are reported together, each wrapping ErrInvalid.
func (c BlocksConfig) Validate() error {
	var errs []error

	if c.Board.Width < MinBoardWidth || c.Board.Width > MaxBoardWidth {
		errs = append(errs, fmt.Errorf("%w: board.width %d outside [%d, %d]",
			ErrInvalid, c.Board.Width, MinBoardWidth, MaxBoardWidth))
	}
	if c.Board.Height < MinBoardHeight || c.Board.Height > MaxBoardHeight {
		errs = append(errs, fmt.Errorf("%w: board.height %d outside [%d, %d]",
			ErrInvalid, c.Board.Height, MinBoardHeight, MaxBoardHeight))
	}

	// Every base shape reaches one column left and two columns right of the anchor.
	if col := c.SpawnColumn(); col < 1 || col > c.Board.Width-3 {
		errs = append(errs, fmt.Errorf("%w: board.spawn_column %d outside [1, %d]",
			ErrInvalid, col, c.Board.Width-3))
	}

	if c.Timing.TickIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("%w: timing.tick_interval_ms must be positive, got %d",
			ErrInvalid, c.Timing.TickIntervalMS))
	}

	letters := make([]string, 0, len(c.Colors))
	for letter := range c.Colors {
		letters = append(letters, letter)
	}
	sort.Strings(letters)
	for _, letter := range letters {
		if !isPieceLetter(letter) {
			errs = append(errs, fmt.Errorf("%w: colors: unknown piece %q", ErrInvalid, letter))
			continue
		}
		if _, err := core.ParseColor(c.Colors[letter]); err != nil {
			errs = append(errs, fmt.Errorf("%w: colors.%s: %v", ErrInvalid, letter, err))
		}
	}
	for _, letter := range PieceLetters {
		if _, ok := c.Colors[letter]; !ok {
			errs = append(errs, fmt.Errorf("%w: colors: missing piece %q", ErrInvalid, letter))
		}
	}

	return errors.Join(errs...)
}

func isPieceLetter(s string) bool {
	for _, l := range PieceLetters {
		if l == s {
			return true
		}
	}
	return false
}
