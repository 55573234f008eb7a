package blockfall

import (
	"fmt"

	"github.com/blockfall/blockfall/internal/core"
)

const (
	hudHeight      = 2  // HUD lines above the playfield
	sidePanelWidth = 16 // preview and stats column right of the field
	cellGlyph      = '█'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		fieldW := g.cfg.Board.Width*2 + 2
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("Need %dx%d", fieldW+sidePanelWidth, g.cfg.Board.Height+2+hudHeight))
		return
	}

	g.renderHUD(dst)
	g.renderField(dst)
	g.renderSidePanel(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the score line and separator above the playfield.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session
	hud := fmt.Sprintf("Blockfall  Score: %d  Level: %d  Lines: %d", s.Score(), s.Level(), s.Lines())
	dst.DrawText(1, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderField draws the bordered board, locked cells, the active
// piece, and the debug row cursor.
func (g *Game) renderField(dst *core.Screen) {
	board := g.session.Board()
	fieldW := board.Width()*2 + 2
	fieldH := board.Height() + 2

	dst.DrawBox(core.NewRect(g.fieldX-1, g.fieldY-1, fieldW, fieldH))

	// Locked cells
	for row := 0; row < board.Height(); row++ {
		for col := 0; col < board.Width(); col++ {
			cell := board.CellAt(col, row)
			if cell.Occupied {
				g.drawCell(dst, col, row, cell.Kind.Color())
			}
		}
	}

	// Active piece, drawn over the board but never committed to it
	if !g.session.GameOver() {
		piece := g.session.ActivePiece()
		color := piece.Kind.Color()
		for _, c := range piece.Cells() {
			g.drawCell(dst, c.Col, c.Row, color)
		}
	}

	// Debug row cursor
	if g.session.DebugMode() && g.session.SelectedRow() >= 0 {
		dst.SetColored(g.fieldX-1, g.fieldY+g.session.SelectedRow(), '▶', core.ColorBrightYellow)
	}
}

// drawCell fills one board cell (two characters wide) with a colored
// block.
func (g *Game) drawCell(dst *core.Screen, col, row int, color core.Color) {
	x := g.fieldX + col*2
	y := g.fieldY + row
	dst.SetColored(x, y, cellGlyph, color)
	dst.SetColored(x+1, y, cellGlyph, color)
}

// renderSidePanel draws the next-piece preview and stats to the right
// of the field.
func (g *Game) renderSidePanel(dst *core.Screen) {
	fieldH := g.session.Board().Height() + 2
	panelX := g.fieldX + g.session.Board().Width()*2 + 3
	y := g.fieldY - 1

	dst.DrawVLine(panelX-2, y, fieldH, '│')
	dst.DrawText(panelX, y, "Next")
	y += 2

	n := g.cfg.Gameplay.PreviewCount
	if n <= 0 {
		n = 1
	}
	for _, kind := range g.session.Preview(n) {
		g.drawPreview(dst, panelX, y, kind)
		y += 4
	}

	dst.DrawText(panelX, y+1, fmt.Sprintf("Speed %.2fs", g.session.FallInterval()))

	if s := g.session; s.DebugMode() {
		p := s.ActivePiece()
		dst.DrawTextColored(panelX, y+3, "DEBUG", core.ColorGray)
		dst.DrawTextColored(panelX, y+4,
			fmt.Sprintf("%s r%d (%d,%d)", p.Kind, p.Rot, p.Col, p.Row), core.ColorGray)
		dst.DrawTextColored(panelX, y+5,
			fmt.Sprintf("row %d", s.SelectedRow()), core.ColorGray)
	}
}

// drawPreview draws one kind at rotation 0 in miniature.
func (g *Game) drawPreview(dst *core.Screen, x, y int, kind Kind) {
	color := kind.Color()
	for _, o := range OccupiedOffsets(kind, 0) {
		dst.SetColored(x+o.DCol*2, y+o.DRow, cellGlyph, color)
		dst.SetColored(x+o.DCol*2+1, y+o.DRow, cellGlyph, color)
	}
}

// renderOverlay draws the pause and game-over banners across the field.
func (g *Game) renderOverlay(dst *core.Screen) {
	midY := g.fieldY + g.session.Board().Height()/2

	switch {
	case g.session.GameOver():
		dst.DrawTextCentered(midY-1, "GAME OVER")
		dst.DrawTextCentered(midY+1, "Press R to restart, Q to quit")
	case g.session.Paused():
		dst.DrawTextCentered(midY, "PAUSED")
	}
}
