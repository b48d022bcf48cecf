// blocks is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blocks list              - List available variants
//	blocks play [variant]    - Play a variant (default: blocks)
//	blocks config            - Print the effective configuration
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for a reproducible piece sequence
//	--log-file <path>   - Write logs to a file
//	--debug             - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/tui-blocks/internal/games/blocks"
)

var (
	// Global flags
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Blocks - a falling-block puzzle in your terminal",
	Long: `Blocks drops pieces into a well one row at a time. Steer and rotate
them, fill rows to clear them, and keep the stack below the top.

Available commands:
  list     - Show all variants
  play     - Play a variant
  config   - Print the effective configuration

Examples:
  blocks play
  blocks play blocks_tall --seed 42
  blocks play --config ./my-blocks.yaml --log-file blocks.log --debug`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger from the global flags. The terminal belongs to
// the game, so without --log-file everything is discarded.
func newLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "blocks",
		Level:           level,
	})
	return logger, func() { _ = f.Close() }, nil
}
