package blockfall

// GameStateType describes the coarse phase of a running game.
type GameStateType string

const (
	StatePlaying           GameStateType = "playing"
	StatePaused            GameStateType = "paused"
	StateGameOver          GameStateType = "game_over"
	StatePausedSmallWindow GameStateType = "paused_small_window"
)

// PieceSnapshot captures the active piece's pose.
type PieceSnapshot struct {
	Kind Kind `json:"kind"`
	Rot  int  `json:"rot"`
	Col  int  `json:"col"`
	Row  int  `json:"row"`
}

// Snapshot is a serializable view of the full game state, used by the
// determinism tests.
type Snapshot struct {
	Tick         int           `json:"tick"`
	Score        int           `json:"score"`
	Level        int           `json:"level"`
	Lines        int           `json:"lines"`
	FallInterval float64       `json:"fall_interval"`
	Board        []string      `json:"board"`
	Active       PieceSnapshot `json:"active"`
	Next         []Kind        `json:"next"`
	State        GameStateType `json:"state"`
	SelectedRow  int           `json:"selected_row"`
	Debug        bool          `json:"debug"`
}

// Snapshot returns the current state of the game. Board rows are
// rendered top to bottom, '.' for empty cells and the kind letter for
// occupied ones.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	board := s.Board()

	rows := make([]string, board.Height())
	for row := 0; row < board.Height(); row++ {
		line := make([]byte, board.Width())
		for col := 0; col < board.Width(); col++ {
			cell := board.CellAt(col, row)
			if cell.Occupied {
				line[col] = cell.Kind.String()[0]
			} else {
				line[col] = '.'
			}
		}
		rows[row] = string(line)
	}

	p := s.ActivePiece()

	state := StatePlaying
	switch {
	case s.GameOver():
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmallWindow
	case s.Paused():
		state = StatePaused
	}

	return Snapshot{
		Tick:         int(g.tick),
		Score:        s.Score(),
		Level:        s.Level(),
		Lines:        s.Lines(),
		FallInterval: s.FallInterval(),
		Board:        rows,
		Active:       PieceSnapshot{Kind: p.Kind, Rot: p.Rot, Col: p.Col, Row: p.Row},
		Next:         s.Preview(3),
		State:        state,
		SelectedRow:  s.SelectedRow(),
		Debug:        s.DebugMode(),
	}
}
