package blockfall

// Cell is one board location: empty, or occupied by a locked piece of
// some kind.
type Cell struct {
	Kind     Kind
	Occupied bool
}

// Board is the fixed-size playing field. It tracks only locked cells;
// the active piece lives in the session and is never written to the
// board until it locks. The board is mutated by locking, row clearing,
// and the debug cell operations, nothing else.
type Board struct {
	width  int
	height int
	cells  [][]Cell // indexed [row][col]
}

// NewBoard creates an empty board of the given dimensions.
// Dimensions are validated by the configuration layer at startup.
func NewBoard(width, height int) *Board {
	b := &Board{
		width:  width,
		height: height,
	}
	b.ClearAll()
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// InBounds returns true if (col, row) is inside the board.
func (b *Board) InBounds(col, row int) bool {
	return col >= 0 && col < b.width && row >= 0 && row < b.height
}

// CellAt returns the cell at (col, row), or an empty cell out of bounds.
func (b *Board) CellAt(col, row int) Cell {
	if !b.InBounds(col, row) {
		return Cell{}
	}
	return b.cells[row][col]
}

// IsValidPosition reports whether every given cell is inside the board
// and currently empty. Used for movement, rotation, and spawn checks.
func (b *Board) IsValidPosition(cells []Coord) bool {
	for _, c := range cells {
		if !b.InBounds(c.Col, c.Row) {
			return false
		}
		if b.cells[c.Row][c.Col].Occupied {
			return false
		}
	}
	return true
}

// Lock writes the piece's kind into every cell it occupies. The caller
// must have validated the position first.
func (b *Board) Lock(p Piece) {
	for _, c := range p.Cells() {
		if b.InBounds(c.Col, c.Row) {
			b.cells[c.Row][c.Col] = Cell{Kind: p.Kind, Occupied: true}
		}
	}
}

// CompletedRows returns the indices of fully occupied rows, ascending.
func (b *Board) CompletedRows() []int {
	var rows []int
	for row := 0; row < b.height; row++ {
		full := true
		for col := 0; col < b.width; col++ {
			if !b.cells[row][col].Occupied {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, row)
		}
	}
	return rows
}

// ClearRows removes the given rows and cascades every remaining row
// down by the number of cleared rows below it, refilling the top with
// empty rows. Handles multiple, possibly non-adjacent rows in one pass.
func (b *Board) ClearRows(rows []int) {
	if len(rows) == 0 {
		return
	}

	cleared := make(map[int]bool, len(rows))
	for _, row := range rows {
		if row >= 0 && row < b.height {
			cleared[row] = true
		}
	}

	// Compact surviving rows toward the bottom, then refill the top.
	dst := b.height - 1
	for src := b.height - 1; src >= 0; src-- {
		if cleared[src] {
			continue
		}
		b.cells[dst] = b.cells[src]
		dst--
	}
	for ; dst >= 0; dst-- {
		b.cells[dst] = make([]Cell, b.width)
	}
}

// ClearAll empties every cell.
func (b *Board) ClearAll() {
	b.cells = make([][]Cell, b.height)
	for row := range b.cells {
		b.cells[row] = make([]Cell, b.width)
	}
}

// SetCell writes a cell directly. Out-of-bounds coordinates are a
// no-op; this is a debug entry point, not part of normal play.
func (b *Board) SetCell(col, row int, cell Cell) {
	if b.InBounds(col, row) {
		b.cells[row][col] = cell
	}
}

// ClearRow unconditionally empties one row without cascade or scoring.
// Out-of-range rows are a no-op. Debug entry point.
func (b *Board) ClearRow(row int) bool {
	if row < 0 || row >= b.height {
		return false
	}
	for col := 0; col < b.width; col++ {
		b.cells[row][col] = Cell{}
	}
	return true
}

// ClearConnectedAt empties the 4-connected region of same-kind occupied
// cells containing (col, row) and returns how many cells it cleared.
// Bypasses line-clear scoring entirely. Empty or out-of-range targets
// clear nothing. Debug entry point.
func (b *Board) ClearConnectedAt(col, row int) int {
	if !b.InBounds(col, row) {
		return 0
	}
	seed := b.cells[row][col]
	if !seed.Occupied {
		return 0
	}

	cleared := 0
	stack := []Coord{{Col: col, Row: row}}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !b.InBounds(c.Col, c.Row) {
			continue
		}
		cell := b.cells[c.Row][c.Col]
		if !cell.Occupied || cell.Kind != seed.Kind {
			continue
		}

		b.cells[c.Row][c.Col] = Cell{}
		cleared++

		stack = append(stack,
			Coord{Col: c.Col - 1, Row: c.Row},
			Coord{Col: c.Col + 1, Row: c.Row},
			Coord{Col: c.Col, Row: c.Row - 1},
			Coord{Col: c.Col, Row: c.Row + 1},
		)
	}
	return cleared
}
