package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a game would use, as YAML, with the file it
came from. Search order: --config, ~/.blocks/configs/blocks.yaml,
./configs/blocks.yaml, then the built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, source, err := config.LoadBlocksWithSource(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
