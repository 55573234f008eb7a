package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the built-in default configuration:
// a 10x20 board with the classic speed curve and score table.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Gameplay: GameplayConfig{
			BaseFallInterval:    1.0,
			SpeedIncreaseFactor: 0.1,
			MinFallInterval:     0.1,
			LinesPerLevel:       10,
			PreviewCount:        3,
		},
		Scoring: ScoringConfig{
			Single: 100,
			Double: 300,
			Triple: 500,
			Tetris: 800,
		},
	}
}
