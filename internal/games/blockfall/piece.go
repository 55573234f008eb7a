package blockfall

// Coord is an absolute board cell position.
type Coord struct {
	Col, Row int
}

// Piece is a live tetromino instance: a kind plus an anchor position
// and rotation state. Piece is a value type; Moved and Rotated return
// transformed candidates without touching the original, so a candidate
// can be validated against the board and discarded with no rollback.
// Piece never consults the board itself.
type Piece struct {
	Kind Kind
	Rot  int
	Col  int
	Row  int
}

// NewPiece creates a piece of the given kind at rotation 0.
func NewPiece(kind Kind, col, row int) Piece {
	return Piece{Kind: kind, Col: col, Row: row}
}

// Cells returns the absolute board cells the piece occupies: the anchor
// plus the kind's offsets at the current rotation. Always 4 cells.
func (p Piece) Cells() []Coord {
	offsets := OccupiedOffsets(p.Kind, p.Rot)
	cells := make([]Coord, len(offsets))
	for i, o := range offsets {
		cells[i] = Coord{Col: p.Col + o.DCol, Row: p.Row + o.DRow}
	}
	return cells
}

// Moved returns a candidate piece shifted by the given deltas.
func (p Piece) Moved(dCol, dRow int) Piece {
	p.Col += dCol
	p.Row += dRow
	return p
}

// RotatedCW returns a candidate piece rotated a quarter turn clockwise.
// The anchor is unchanged; there is no wall-kick search, a colliding
// candidate is simply rejected by the caller.
func (p Piece) RotatedCW() Piece {
	p.Rot = (p.Rot + 1) % RotationCount
	return p
}

// RotatedCCW returns a candidate piece rotated a quarter turn
// counterclockwise.
func (p Piece) RotatedCCW() Piece {
	p.Rot = (p.Rot + RotationCount - 1) % RotationCount
	return p
}
