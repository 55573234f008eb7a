package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "Show the key bindings",
	Run:   runControls,
}

func runControls(cmd *cobra.Command, args []string) {
	fmt.Print(`Gameplay:
  Left/Right, H/L  Move piece
  Up/X             Rotate clockwise
  Z                Rotate counterclockwise
  Down/J           Soft drop (one row)
  Space            Hard drop (to the floor)
  P, Esc           Pause / unpause
  R                Restart (after game over)
  Q, Ctrl+C        Quit
  Ctrl+S           Save a screenshot
  ?                Toggle full help bar

Debug (press D to enable):
  N                Single gravity step (works while paused)
  T                Cycle the active piece kind
  [ / ]            Move the row cursor up / down
  C                Clear the selected row
  Mouse click      Clear the locked piece under the cursor
`)
}
