// blockfall is a terminal falling-block puzzle game.
//
// Usage:
//
//	blockfall play           - Play the game
//	blockfall list           - List available games
//	blockfall controls       - Show the key bindings
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/blockfall/blockfall/internal/games/blockfall"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - falling-block puzzle in your terminal",
	Long: `Blockfall is a terminal falling-block puzzle game: stack the seven
tetrominoes, complete rows to clear them, and keep the well from
filling up as the fall speed climbs.

Examples:
  blockfall play
  blockfall play --seed 12345
  blockfall play --config ./my-blockfall.yaml
  blockfall controls`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(controlsCmd)
}
