package blockfall

import (
	"math/rand"
	"testing"
)

func testRules() Rules {
	return Rules{
		BaseFallInterval:    1.0,
		SpeedIncreaseFactor: 0.1,
		MinFallInterval:     0.1,
		LinesPerLevel:       10,
		ScoreSingle:         100,
		ScoreDouble:         300,
		ScoreTriple:         500,
		ScoreTetris:         800,
	}
}

func newTestSession(seed int64) *Session {
	return NewSession(10, 20, testRules(), rand.New(rand.NewSource(seed)))
}

func TestSessionInitialState(t *testing.T) {
	s := newTestSession(1)

	if s.GameOver() || s.Paused() {
		t.Fatal("fresh session should be falling")
	}
	if s.Score() != 0 || s.Level() != 0 || s.Lines() != 0 {
		t.Errorf("counters = %d/%d/%d, want zeros", s.Score(), s.Level(), s.Lines())
	}
	if s.FallInterval() != 1.0 {
		t.Errorf("fall interval = %v, want 1.0", s.FallInterval())
	}
	p := s.ActivePiece()
	if p.Col != 5 || p.Row != 0 || p.Rot != 0 {
		t.Errorf("spawn pose = %+v, want anchor (5,0) rot 0", p)
	}
	if s.SelectedRow() != -1 {
		t.Errorf("row cursor = %d, want -1", s.SelectedRow())
	}
}

func TestSessionAdvanceTiming(t *testing.T) {
	s := newTestSession(1)
	start := s.ActivePiece()

	s.Advance(0.5)
	if s.ActivePiece().Row != start.Row {
		t.Fatal("piece moved before the interval elapsed")
	}
	s.Advance(0.5)
	if s.ActivePiece().Row != start.Row+1 {
		t.Fatalf("row = %d after 1.0s, want %d", s.ActivePiece().Row, start.Row+1)
	}

	// One big delta performs multiple gravity steps.
	s.Advance(3.0)
	if s.ActivePiece().Row != start.Row+4 {
		t.Fatalf("row = %d after 4.0s total, want %d", s.ActivePiece().Row, start.Row+4)
	}
}

func TestSessionMoveAgainstWall(t *testing.T) {
	s := newTestSession(1)

	// Push to the left wall; extra moves must be rejected without
	// changing the piece.
	for s.MoveLeft() {
	}
	before := s.ActivePiece()
	if s.MoveLeft() {
		t.Fatal("move into the wall accepted")
	}
	if s.ActivePiece() != before {
		t.Errorf("rejected move mutated piece: %+v -> %+v", before, s.ActivePiece())
	}
}

func TestSessionRotationBlocked(t *testing.T) {
	s := newTestSession(1)
	s.active = NewPiece(KindI, 3, 5) // horizontal, rot 0

	// Wall the vertical silhouette in.
	for dr := 0; dr < 4; dr++ {
		if dr != 0 {
			s.board.SetCell(3, 5+dr, Cell{Kind: KindO, Occupied: true})
		}
	}

	before := s.active
	if s.RotateCW() {
		t.Fatal("blocked rotation accepted")
	}
	if s.active != before {
		t.Errorf("rejected rotation mutated piece: %+v -> %+v", before, s.active)
	}
}

func TestSessionSoftDrop(t *testing.T) {
	s := newTestSession(1)
	start := s.ActivePiece()

	s.Advance(0.9)
	s.SoftDrop()
	if s.ActivePiece().Row != start.Row+1 {
		t.Fatalf("row = %d after soft drop, want %d", s.ActivePiece().Row, start.Row+1)
	}

	// The accumulator was reset, so the pending 0.9s is gone.
	s.Advance(0.9)
	if s.ActivePiece().Row != start.Row+1 {
		t.Fatal("soft drop did not reset the fall accumulator")
	}
	s.Advance(0.1)
	if s.ActivePiece().Row != start.Row+2 {
		t.Fatal("gravity did not resume after soft drop")
	}
}

func TestSessionSoftDropLocksWhenBlocked(t *testing.T) {
	s := newTestSession(1)
	s.active = NewPiece(KindO, 0, 18) // resting on the floor

	s.SoftDrop()

	if !s.board.CellAt(0, 19).Occupied || !s.board.CellAt(1, 18).Occupied {
		t.Fatal("blocked soft drop did not lock the piece")
	}
	if s.ActivePiece().Row != 0 {
		t.Errorf("next piece row = %d, want fresh spawn", s.ActivePiece().Row)
	}
}

func TestSessionHardDrop(t *testing.T) {
	s := newTestSession(1)
	s.active = NewPiece(KindO, 0, 0)

	s.HardDrop()

	// O lands on the floor: rows 18 and 19, columns 0 and 1.
	for _, c := range []Coord{{0, 18}, {1, 18}, {0, 19}, {1, 19}} {
		if !s.board.CellAt(c.Col, c.Row).Occupied {
			t.Errorf("cell (%d,%d) empty after hard drop", c.Col, c.Row)
		}
	}
	// One past the landing position is invalid, so the resting spot was
	// the lowest legal one.
	if s.board.CellAt(0, 17).Occupied {
		t.Error("piece locked above its landing position")
	}
	if s.GameOver() {
		t.Fatal("unexpected game over")
	}
}

func TestSessionScoringTable(t *testing.T) {
	cases := []struct {
		rows  int
		score int
	}{
		{1, 100},
		{2, 300},
		{3, 500},
		{4, 800},
	}
	s := newTestSession(1)
	for _, tc := range cases {
		if got := s.awardFor(tc.rows); got != tc.score {
			t.Errorf("award for %d rows = %d, want %d", tc.rows, got, tc.score)
		}
	}
	if s.awardFor(0) != 0 || s.awardFor(5) != 0 {
		t.Error("award outside 1..4 rows should be 0")
	}
}

func TestSessionLineClearEndToEnd(t *testing.T) {
	s := newTestSession(1)
	// Two bottom rows complete except columns 0-1; an O drop finishes
	// both at once.
	fillRow(s.board, 18, KindI, 0, 1)
	fillRow(s.board, 19, KindI, 0, 1)
	s.active = NewPiece(KindO, 0, 0)

	s.HardDrop()

	if s.Score() != 300 {
		t.Errorf("score = %d, want 300 for a double", s.Score())
	}
	if s.Lines() != 2 {
		t.Errorf("lines = %d, want 2", s.Lines())
	}
	for col := 0; col < s.board.Width(); col++ {
		if s.board.CellAt(col, 19).Occupied {
			t.Fatalf("cell (%d,19) still occupied after double clear", col)
		}
	}
}

func TestSessionLevelAndSpeedSchedule(t *testing.T) {
	s := newTestSession(1)

	cases := []struct {
		totalLines int
		level      int
		interval   float64
	}{
		{0, 0, 1.0},
		{9, 0, 1.0},
		{10, 1, 0.9},
		{25, 2, 0.8},
		{90, 9, 0.1},
		{200, 20, 0.1}, // clamped at the minimum
	}
	for _, tc := range cases {
		s.lines = 0
		s.applyLineClears(tc.totalLines)
		if s.Level() != tc.level {
			t.Errorf("lines %d: level = %d, want %d", tc.totalLines, s.Level(), tc.level)
		}
		got := s.FallInterval()
		if got < tc.interval-1e-9 || got > tc.interval+1e-9 {
			t.Errorf("lines %d: interval = %v, want %v", tc.totalLines, got, tc.interval)
		}
	}
}

func TestSessionPause(t *testing.T) {
	s := newTestSession(1)
	start := s.ActivePiece()

	s.TogglePause()
	if !s.Paused() {
		t.Fatal("not paused after toggle")
	}

	s.Advance(5.0)
	if s.ActivePiece() != start {
		t.Error("gravity ran while paused")
	}
	if s.MoveLeft() || s.RotateCW() {
		t.Error("move intents accepted while paused")
	}
	s.SoftDrop()
	s.HardDrop()
	if s.ActivePiece() != start {
		t.Error("drops ran while paused")
	}

	// Debug stepping still works.
	if !s.StepOnce() {
		t.Fatal("StepOnce failed while paused")
	}
	if s.ActivePiece().Row != start.Row+1 {
		t.Error("StepOnce did not advance the piece")
	}

	s.TogglePause()
	if s.Paused() {
		t.Fatal("still paused after second toggle")
	}
}

func TestSessionTopOut(t *testing.T) {
	s := newTestSession(1)
	// Block the spawn region, then force a lock far away from it.
	for row := 0; row < 3; row++ {
		for col := 2; col < s.board.Width(); col++ {
			s.board.SetCell(col, row, Cell{Kind: KindI, Occupied: true})
		}
	}
	s.active = NewPiece(KindO, 0, 18)
	s.HardDrop()

	if !s.GameOver() {
		t.Fatal("blocked spawn did not end the game")
	}

	// Terminal state rejects everything.
	if s.MoveLeft() || s.MoveRight() || s.RotateCW() || s.RotateCCW() {
		t.Error("move intents accepted after game over")
	}
	if s.StepOnce() || s.CycleActivePiece() {
		t.Error("debug step intents accepted after game over")
	}
	if s.MoveRowCursor(1) != -1 {
		t.Error("row cursor moved after game over")
	}
	s.TogglePause()
	if s.Paused() {
		t.Error("pause accepted after game over")
	}

	s.Reset()
	if s.GameOver() || s.Score() != 0 {
		t.Error("reset did not restore a playable session")
	}
	for row := 0; row < s.board.Height(); row++ {
		for col := 0; col < s.board.Width(); col++ {
			if s.board.CellAt(col, row).Occupied && !contains(s.active.Cells(), Coord{col, row}) {
				t.Fatalf("board not empty after reset at (%d,%d)", col, row)
			}
		}
	}
}

func TestSessionDebugRowCursor(t *testing.T) {
	s := newTestSession(1)

	if got := s.MoveRowCursor(0); got != 0 {
		t.Fatalf("first cursor use = %d, want 0", got)
	}
	if got := s.MoveRowCursor(-5); got != 0 {
		t.Errorf("cursor above top = %d, want clamp to 0", got)
	}
	if got := s.MoveRowCursor(100); got != 19 {
		t.Errorf("cursor below bottom = %d, want clamp to 19", got)
	}

	fillRow(s.board, 19, KindT)
	if !s.ClearSelectedRow() {
		t.Fatal("ClearSelectedRow failed on selected row")
	}
	for col := 0; col < s.board.Width(); col++ {
		if s.board.CellAt(col, 19).Occupied {
			t.Fatalf("cell (%d,19) survived debug clear", col)
		}
	}
}

func TestSessionClearSelectedRowUnset(t *testing.T) {
	s := newTestSession(1)
	if s.ClearSelectedRow() {
		t.Error("ClearSelectedRow succeeded with no selection")
	}
}

func TestSessionCycleActivePiece(t *testing.T) {
	s := newTestSession(1)
	start := s.ActivePiece().Kind

	if !s.CycleActivePiece() {
		t.Fatal("cycle failed on an empty board")
	}
	want := Kind((int(start) + 1) % KindCount)
	got := s.ActivePiece()
	if got.Kind != want {
		t.Errorf("cycled kind = %s, want %s", got.Kind, want)
	}
	if got.Rot != 0 || got.Col != 5 || got.Row != 0 {
		t.Errorf("cycled pose = %+v, want spawn anchor rot 0", got)
	}

	// Cycling through all seven kinds returns to the start.
	for i := 0; i < KindCount-1; i++ {
		s.CycleActivePiece()
	}
	if s.ActivePiece().Kind != start {
		t.Errorf("full cycle ended on %s, want %s", s.ActivePiece().Kind, start)
	}
}

func TestSessionClearPieceAt(t *testing.T) {
	s := newTestSession(1)
	s.board.Lock(NewPiece(KindT, 3, 17))

	if !s.ClearPieceAt(3, 18) {
		t.Fatal("ClearPieceAt missed a locked region")
	}
	if s.ClearPieceAt(3, 18) {
		t.Error("second clear at the same cell should find nothing")
	}
	if s.ClearPieceAt(0, 0) {
		t.Error("clear on an empty cell should report false")
	}
}

func contains(cells []Coord, c Coord) bool {
	for _, x := range cells {
		if x == c {
			return true
		}
	}
	return false
}
