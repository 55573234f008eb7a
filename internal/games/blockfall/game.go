// Package blockfall implements the falling-block puzzle game: shape
// geometry, board collision and line clearing, 7-bag piece supply, and
// the tick-driven session state machine, behind the platform's Game
// interface.
package blockfall

import (
	"math/rand"

	"github.com/blockfall/blockfall/internal/config"
	"github.com/blockfall/blockfall/internal/core"
	"github.com/blockfall/blockfall/internal/registry"
)

// Package-level config path, set by the CLI before game creation.
var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a Session to the platform Game interface: it maps input
// actions to session intents, converts ticks to elapsed seconds, and
// renders the session to the screen buffer.
type Game struct {
	session *Session
	cfg     config.BlockfallConfig
	rng     *rand.Rand
	tick    uint64

	tickRate int
	screenW  int
	screenH  int
	tooSmall bool

	// Screen position of the playfield's inner top-left cell,
	// maintained by layout() and used to map clicks to board cells.
	fieldX int
	fieldY int
}

// New creates a new blockfall game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("blockfall", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "blockfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blockfall"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadBlockfall(configPath)
	if err != nil || cfg.Validate() != nil {
		// The CLI validates configs before play; this path covers games
		// created directly (tests, future embedding).
		cfg = config.DefaultBlockfallConfig()
	}
	g.cfg = cfg

	g.tick = 0
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.session = NewSession(cfg.Board.Width, cfg.Board.Height, rulesFrom(cfg), g.rng)

	g.layout()
}

// rulesFrom converts the loaded configuration into session rules.
func rulesFrom(cfg config.BlockfallConfig) Rules {
	return Rules{
		BaseFallInterval:    cfg.Gameplay.BaseFallInterval,
		SpeedIncreaseFactor: cfg.Gameplay.SpeedIncreaseFactor,
		MinFallInterval:     cfg.Gameplay.MinFallInterval,
		LinesPerLevel:       cfg.Gameplay.LinesPerLevel,
		ScoreSingle:         cfg.Scoring.Single,
		ScoreDouble:         cfg.Scoring.Double,
		ScoreTriple:         cfg.Scoring.Triple,
		ScoreTetris:         cfg.Scoring.Tetris,
	}
}

// layout computes the playfield position and whether the screen fits.
// Each board cell is drawn two characters wide.
func (g *Game) layout() {
	fieldW := g.cfg.Board.Width*2 + 2 // cells plus border
	fieldH := g.cfg.Board.Height + 2
	required := fieldW + sidePanelWidth

	g.tooSmall = g.screenW < required || g.screenH < fieldH+hudHeight

	g.fieldX = (g.screenW-required)/2 + 1
	g.fieldY = hudHeight + 1
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Restart replays from a fresh seed drawn from the session RNG, so
	// a replayed input script still produces a deterministic sequence.
	if in.Has(core.ActionRestart) && g.session.GameOver() {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
			Seed:     g.rng.Int63(),
		})
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.session.TogglePause()
	}

	g.handleDebug(in)

	if in.Has(core.ActionLeft) {
		g.session.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		g.session.MoveRight()
	}
	if in.Has(core.ActionRotateCW) {
		g.session.RotateCW()
	}
	if in.Has(core.ActionRotateCCW) {
		g.session.RotateCCW()
	}
	if in.Has(core.ActionSoftDrop) {
		g.session.SoftDrop()
	}
	if in.Has(core.ActionHardDrop) {
		g.session.HardDrop()
	}

	g.session.Advance(1.0 / float64(g.tickRate))

	return core.StepResult{State: g.State()}
}

// handleDebug routes the debug intents.
func (g *Game) handleDebug(in core.InputFrame) {
	if in.Has(core.ActionDebugToggle) {
		g.session.ToggleDebug()
	}
	if !g.session.DebugMode() {
		return
	}

	if in.Has(core.ActionDebugStep) {
		g.session.StepOnce()
	}
	if in.Has(core.ActionDebugCycle) {
		g.session.CycleActivePiece()
	}
	if in.Has(core.ActionDebugRowUp) {
		g.session.MoveRowCursor(-1)
	}
	if in.Has(core.ActionDebugRowDown) {
		g.session.MoveRowCursor(1)
	}
	if in.Has(core.ActionDebugClearRow) {
		g.session.ClearSelectedRow()
	}
	if in.Click != nil {
		if col, row, ok := g.screenToBoard(in.Click.X, in.Click.Y); ok {
			g.session.ClearPieceAt(col, row)
		}
	}
}

// screenToBoard maps a screen position to a board cell. Integer
// division rounds toward zero, so positions left of the field must be
// rejected before dividing.
func (g *Game) screenToBoard(x, y int) (col, row int, ok bool) {
	if x < g.fieldX {
		return 0, 0, false
	}
	col = (x - g.fieldX) / 2
	row = y - g.fieldY
	if col < 0 || col >= g.cfg.Board.Width || row < 0 || row >= g.cfg.Board.Height {
		return 0, 0, false
	}
	return col, row, true
}

// State returns the current platform-visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		Lines:    g.session.Lines(),
		GameOver: g.session.GameOver(),
		Paused:   g.session.Paused() || g.tooSmall,
	}
}
