package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/blockfall/blockfall/internal/config"
	"github.com/blockfall/blockfall/internal/core"
	"github.com/blockfall/blockfall/internal/games/blockfall"
	"github.com/blockfall/blockfall/internal/platform/tui"
	"github.com/blockfall/blockfall/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. With no argument the default game is blockfall.

Controls:
  Left/Right, H/L  - Move piece
  Up/X, Z          - Rotate CW / CCW
  Down/J           - Soft drop
  Space            - Hard drop
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Examples:
  blockfall play
  blockfall play --seed 42
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "blockfall"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		log.Error("unknown game", "game", gameID)
		log.Print("Run 'blockfall list' to see available games.")
		os.Exit(1)
	}

	// Surface config problems before the alternate screen takes over.
	gameCfg, err := config.LoadBlockfall(flagConfig)
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}
	if err := gameCfg.Validate(); err != nil {
		log.Fatal("invalid config", "err", err)
	}
	blockfall.SetConfigPath(flagConfig)

	// Start from the platform defaults, then apply the real terminal
	// size and the flag overrides.
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	game, err := registry.Create(gameID)
	if err != nil {
		log.Fatal("failed to create game", "err", err)
	}

	if err := tui.Run(game, cfg); err != nil {
		log.Fatal("game exited with error", "err", err)
	}
}
