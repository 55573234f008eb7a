package blockfall

import (
	"math/rand"

	"github.com/blockfall/blockfall/internal/core"
)

// Rules are the tunable gameplay parameters of a session. They come
// from the configuration layer, which validates them before a session
// is constructed; the session never re-checks them per tick.
type Rules struct {
	BaseFallInterval    float64 // Seconds between gravity steps at level 0
	SpeedIncreaseFactor float64 // Interval reduction per level, seconds
	MinFallInterval     float64 // Floor for the fall interval, seconds
	LinesPerLevel       int     // Rows cleared per level advance

	// Awards for clearing 1..4 rows with a single lock.
	ScoreSingle int
	ScoreDouble int
	ScoreTriple int
	ScoreTetris int
}

// Session is the game state machine. It owns the board, the active
// piece, and the piece source, and is driven externally by discrete
// intents plus Advance ticks. Every candidate transformation is
// validated against the board before commit; invalid candidates are
// silently discarded. The only terminal condition is a blocked spawn.
type Session struct {
	board *Board
	bag   *Bag
	rng   *rand.Rand
	rules Rules

	active Piece

	score int
	level int
	lines int

	fallInterval float64
	fallElapsed  float64

	paused   bool
	gameOver bool

	debugMode   bool
	selectedRow int // debug row cursor, -1 when nothing selected
}

// NewSession creates a session over an empty board and spawns the
// first piece. The RNG drives all randomness, so equal seeds replay
// identical games.
func NewSession(width, height int, rules Rules, rng *rand.Rand) *Session {
	s := &Session{
		board:       NewBoard(width, height),
		bag:         NewBag(rng),
		rng:         rng,
		rules:       rules,
		selectedRow: -1,
	}
	s.fallInterval = s.intervalForLevel(0)
	s.spawn()
	return s
}

// spawnAnchor is the configured spawn position: top-center, row 0.
func (s *Session) spawnAnchor() Coord {
	return Coord{Col: s.board.Width() / 2, Row: 0}
}

// spawn draws the next kind and places it at the spawn anchor. A spawn
// that collides with existing content ends the game.
func (s *Session) spawn() {
	anchor := s.spawnAnchor()
	s.active = NewPiece(s.bag.Next(), anchor.Col, anchor.Row)
	if !s.board.IsValidPosition(s.active.Cells()) {
		s.gameOver = true
	}
}

// Advance accumulates elapsed time and performs gravity steps whenever
// the accumulator crosses the fall interval. Locking, line clearing,
// scoring, and the next spawn all complete within this call, so
// between ticks the session is always falling, paused, or over.
func (s *Session) Advance(dt float64) {
	if s.gameOver || s.paused {
		return
	}
	if dt > 0 {
		s.fallElapsed += dt
	}
	for s.fallElapsed >= s.fallInterval && !s.gameOver {
		s.fallElapsed -= s.fallInterval
		s.gravityStep()
	}
}

// gravityStep tries to move the active piece one row down; a blocked
// step locks the piece and resolves the consequences.
func (s *Session) gravityStep() {
	candidate := s.active.Moved(0, 1)
	if s.board.IsValidPosition(candidate.Cells()) {
		s.active = candidate
		return
	}
	s.lockAndResolve()
}

// lockAndResolve commits the active piece to the board, clears and
// scores completed rows, and spawns the next piece.
func (s *Session) lockAndResolve() {
	s.board.Lock(s.active)

	if rows := s.board.CompletedRows(); len(rows) > 0 {
		s.applyLineClears(len(rows))
		s.board.ClearRows(rows)
	}

	s.spawn()
}

// applyLineClears updates score, line count, level, and fall speed for
// n simultaneously cleared rows.
func (s *Session) applyLineClears(n int) {
	s.score += s.awardFor(n)
	s.lines += n
	s.level = s.lines / s.rules.LinesPerLevel
	s.fallInterval = s.intervalForLevel(s.level)
}

// awardFor maps a simultaneous clear count to its score award.
func (s *Session) awardFor(n int) int {
	switch n {
	case 1:
		return s.rules.ScoreSingle
	case 2:
		return s.rules.ScoreDouble
	case 3:
		return s.rules.ScoreTriple
	case 4:
		return s.rules.ScoreTetris
	default:
		return 0
	}
}

// intervalForLevel computes the fall interval for a level, floored at
// the configured minimum.
func (s *Session) intervalForLevel(level int) float64 {
	interval := s.rules.BaseFallInterval - float64(level)*s.rules.SpeedIncreaseFactor
	if interval < s.rules.MinFallInterval {
		return s.rules.MinFallInterval
	}
	return interval
}

// tryCommit validates a candidate piece and commits it if legal.
func (s *Session) tryCommit(candidate Piece) bool {
	if s.gameOver || s.paused {
		return false
	}
	if !s.board.IsValidPosition(candidate.Cells()) {
		return false
	}
	s.active = candidate
	return true
}

// MoveLeft shifts the active piece one column left if the target
// position is free.
func (s *Session) MoveLeft() bool {
	return s.tryCommit(s.active.Moved(-1, 0))
}

// MoveRight shifts the active piece one column right if the target
// position is free.
func (s *Session) MoveRight() bool {
	return s.tryCommit(s.active.Moved(1, 0))
}

// RotateCW rotates the active piece clockwise if the rotated position
// is free. A blocked rotation leaves rotation index and anchor
// untouched.
func (s *Session) RotateCW() bool {
	return s.tryCommit(s.active.RotatedCW())
}

// RotateCCW rotates the active piece counterclockwise if the rotated
// position is free.
func (s *Session) RotateCCW() bool {
	return s.tryCommit(s.active.RotatedCCW())
}

// SoftDrop performs one accelerated gravity step: a legal step moves
// the piece down and resets the fall accumulator, a blocked step locks
// the piece just like a blocked timer step.
func (s *Session) SoftDrop() {
	if s.gameOver || s.paused {
		return
	}
	s.gravityStep()
	s.fallElapsed = 0
}

// HardDrop moves the active piece down as far as it can go and locks
// it immediately, skipping the remaining fall-timer wait.
func (s *Session) HardDrop() {
	if s.gameOver || s.paused {
		return
	}
	for {
		candidate := s.active.Moved(0, 1)
		if !s.board.IsValidPosition(candidate.Cells()) {
			break
		}
		s.active = candidate
	}
	s.lockAndResolve()
	s.fallElapsed = 0
}

// TogglePause flips the paused flag. While paused the fall timer does
// not accumulate and move intents are rejected; debug stepping stays
// available. Pausing after game over has no effect.
func (s *Session) TogglePause() {
	if s.gameOver {
		return
	}
	s.paused = !s.paused
}

// Reset restores the session to its initial state: empty board, zeroed
// counters, default speed, fresh bag, new first piece.
func (s *Session) Reset() {
	s.board.ClearAll()
	s.bag = NewBag(s.rng)
	s.score = 0
	s.level = 0
	s.lines = 0
	s.fallInterval = s.intervalForLevel(0)
	s.fallElapsed = 0
	s.paused = false
	s.gameOver = false
	s.selectedRow = -1
	s.spawn()
}

// ToggleDebug flips the debug overlay flag.
func (s *Session) ToggleDebug() {
	if s.gameOver {
		return
	}
	s.debugMode = !s.debugMode
}

// StepOnce performs a single gravity step regardless of pause state.
// Debug entry point for inspecting transitions frame by frame.
func (s *Session) StepOnce() bool {
	if s.gameOver {
		return false
	}
	s.gravityStep()
	return true
}

// CycleActivePiece replaces the active piece with the next kind in
// canonical order, at the spawn anchor and rotation 0. The switch only
// happens if the candidate fits there, so cycling can never cause an
// unintended game over. Debug entry point.
func (s *Session) CycleActivePiece() bool {
	if s.gameOver {
		return false
	}
	anchor := s.spawnAnchor()
	next := Kind((int(s.active.Kind) + 1) % KindCount)
	candidate := NewPiece(next, anchor.Col, anchor.Row)
	if !s.board.IsValidPosition(candidate.Cells()) {
		return false
	}
	s.active = candidate
	return true
}

// MoveRowCursor adjusts the debug row selection by delta, clamped to
// the board, and returns the resulting row. The first use starts the
// cursor at row 0.
func (s *Session) MoveRowCursor(delta int) int {
	if s.gameOver {
		return -1
	}
	if s.selectedRow < 0 {
		s.selectedRow = 0
	}
	s.selectedRow = core.Clamp(s.selectedRow+delta, 0, s.board.Height()-1)
	return s.selectedRow
}

// ClearSelectedRow empties the row under the debug cursor without
// scoring or cascade. No-op until a row has been selected.
func (s *Session) ClearSelectedRow() bool {
	if s.gameOver || s.selectedRow < 0 {
		return false
	}
	return s.board.ClearRow(s.selectedRow)
}

// ClearPieceAt empties the contiguous locked region at the given board
// cell, bypassing scoring. Out-of-range or empty targets are a no-op.
func (s *Session) ClearPieceAt(col, row int) bool {
	if s.gameOver {
		return false
	}
	return s.board.ClearConnectedAt(col, row) > 0
}

// Board exposes the playing field for rendering and debug targeting.
func (s *Session) Board() *Board {
	return s.board
}

// ActivePiece returns the current live piece.
func (s *Session) ActivePiece() Piece {
	return s.active
}

// Preview returns the next n upcoming kinds without consuming them.
func (s *Session) Preview(n int) []Kind {
	return s.bag.Peek(n)
}

// Score returns the accumulated score.
func (s *Session) Score() int {
	return s.score
}

// Level returns the current level, starting at 0.
func (s *Session) Level() int {
	return s.level
}

// Lines returns the total number of cleared rows.
func (s *Session) Lines() int {
	return s.lines
}

// FallInterval returns the current seconds-per-row gravity interval.
func (s *Session) FallInterval() float64 {
	return s.fallInterval
}

// Paused reports whether the session is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// GameOver reports whether the session has reached its terminal state.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// DebugMode reports whether the debug overlay is active.
func (s *Session) DebugMode() bool {
	return s.debugMode
}

// SelectedRow returns the debug row cursor, or -1 when unset.
func (s *Session) SelectedRow() int {
	return s.selectedRow
}
