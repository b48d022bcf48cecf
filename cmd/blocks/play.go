package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing. The variant defaults to "blocks".

Controls:
  Left/Right - Move
  Down       - Soft drop
  A / D      - Rotate counter-clockwise / clockwise
  P          - Pause
  R          - Restart (after game over)
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Examples:
  blocks play
  blocks play blocks_tall
  blocks play --config ./my-blocks.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "blocks"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'blocks list' to see variants)", gameID)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	// Fail before taking over the terminal if an explicit config is broken.
	_, source, err := config.LoadBlocksWithSource(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Info("config loaded", "source", source)

	blocks.SetConfigPath(flagConfig)
	blocks.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	if err := tui.Run(game, cfg, tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("run %s: %w", gameID, err)
	}
	return nil
}
