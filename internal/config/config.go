// Package config provides YAML-based game configuration loading for
// the blockfall platform.
package config

import "fmt"

// BlockfallConfig contains all configuration for the blockfall game.
type BlockfallConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Scoring  ScoringConfig  `yaml:"scoring"`
}

// BoardConfig defines the playing field dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GameplayConfig defines the fall-speed schedule and leveling.
type GameplayConfig struct {
	BaseFallInterval    float64 `yaml:"base_fall_interval"`    // Seconds per row at level 0
	SpeedIncreaseFactor float64 `yaml:"speed_increase_factor"` // Seconds shaved per level
	MinFallInterval     float64 `yaml:"min_fall_interval"`     // Fastest allowed interval
	LinesPerLevel       int     `yaml:"lines_per_level"`       // Rows cleared per level-up
	PreviewCount        int     `yaml:"preview_count"`         // Upcoming kinds shown in the HUD
}

// ScoringConfig defines the award for clearing N rows with one lock.
type ScoringConfig struct {
	Single int `yaml:"single"`
	Double int `yaml:"double"`
	Triple int `yaml:"triple"`
	Tetris int `yaml:"tetris"`
}

// Validate checks the configuration for values the game cannot run
// with. It is called once at startup; the game core never re-validates.
func (c BlockfallConfig) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("config: board dimensions must be positive, got %dx%d", c.Board.Width, c.Board.Height)
	}
	// The widest piece silhouette spans 4 columns.
	if c.Board.Width < 4 {
		return fmt.Errorf("config: board width must be at least 4, got %d", c.Board.Width)
	}
	if c.Gameplay.BaseFallInterval <= 0 {
		return fmt.Errorf("config: base_fall_interval must be positive, got %v", c.Gameplay.BaseFallInterval)
	}
	if c.Gameplay.MinFallInterval <= 0 {
		return fmt.Errorf("config: min_fall_interval must be positive, got %v", c.Gameplay.MinFallInterval)
	}
	if c.Gameplay.MinFallInterval > c.Gameplay.BaseFallInterval {
		return fmt.Errorf("config: min_fall_interval %v exceeds base_fall_interval %v",
			c.Gameplay.MinFallInterval, c.Gameplay.BaseFallInterval)
	}
	if c.Gameplay.SpeedIncreaseFactor < 0 {
		return fmt.Errorf("config: speed_increase_factor must not be negative, got %v", c.Gameplay.SpeedIncreaseFactor)
	}
	if c.Gameplay.LinesPerLevel <= 0 {
		return fmt.Errorf("config: lines_per_level must be positive, got %d", c.Gameplay.LinesPerLevel)
	}
	if c.Gameplay.PreviewCount < 0 {
		return fmt.Errorf("config: preview_count must not be negative, got %d", c.Gameplay.PreviewCount)
	}
	if c.Scoring.Single < 0 || c.Scoring.Double < 0 || c.Scoring.Triple < 0 || c.Scoring.Tetris < 0 {
		return fmt.Errorf("config: score awards must not be negative")
	}
	return nil
}
