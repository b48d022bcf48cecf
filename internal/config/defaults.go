package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default configuration: the 10 x 16 grid,
// fixed 800 ms gravity and the classic piece colors.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 16,
		},
		Timing: TimingConfig{
			TickIntervalMS: 800,
		},
		Colors: map[string]string{
			"i": "brown",
			"o": "red",
			"t": "purple",
			"s": "violet",
			"z": "green",
			"j": "blue",
			"l": "yellow",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBlocksYAML
}
