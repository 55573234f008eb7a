package blockfall

import (
	"fmt"

	"github.com/blockfall/blockfall/internal/core"
)

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of distinct piece kinds.
const KindCount = 7

// RotationCount is the number of rotation states every kind cycles
// through. Kinds with fewer distinct silhouettes (O, I, S, Z) repeat
// states so the rotation index always advances uniformly modulo 4.
const RotationCount = 4

// Kinds returns all piece kinds in canonical order.
func Kinds() []Kind {
	return []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// Color returns the display color of the kind, following the standard
// palette.
func (k Kind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorCyan
	case KindO:
		return core.ColorYellow
	case KindT:
		return core.ColorMagenta
	case KindS:
		return core.ColorGreen
	case KindZ:
		return core.ColorRed
	case KindJ:
		return core.ColorBlue
	case KindL:
		return core.ColorOrange
	default:
		return core.ColorWhite
	}
}

// Offset is a cell position relative to a piece's anchor. DCol grows
// rightward, DRow downward, matching board coordinates.
type Offset struct {
	DCol, DRow int
}

// shapeLayouts encodes each kind's rotation states as small grids, one
// string per row, 'X' marking occupied cells. Kinds with a rotation
// cycle shorter than four states list only the distinct ones; the table
// builder repeats them to fill all four indices.
var shapeLayouts = map[Kind][][]string{
	KindI: {
		{"XXXX"},
		{"X", "X", "X", "X"},
	},
	KindO: {
		{"XX", "XX"},
	},
	KindT: {
		{".X.", "XXX"},
		{"X.", "XX", "X."},
		{"XXX", ".X."},
		{".X", "XX", ".X"},
	},
	KindS: {
		{"XX.", ".XX"},
		{".X", "XX", "X."},
	},
	KindZ: {
		{".XX", "XX."},
		{"X.", "XX", ".X"},
	},
	KindJ: {
		{".X", ".X", "XX"},
		{"X..", "XXX"},
		{"XX", "X.", "X."},
		{"XXX", "..X"},
	},
	KindL: {
		{"X.", "X.", "XX"},
		{"XXX", "X.."},
		{"XX", ".X", ".X"},
		{"..X", "XXX"},
	},
}

// shapeTable holds the parsed offsets for every (kind, rotation) pair.
var shapeTable [KindCount][RotationCount][]Offset

func init() {
	for _, kind := range Kinds() {
		layouts := shapeLayouts[kind]
		for rot := 0; rot < RotationCount; rot++ {
			offsets := parseLayout(layouts[rot%len(layouts)])
			if len(offsets) != 4 {
				panic(fmt.Sprintf("blockfall: kind %s rotation %d has %d cells, want 4", kind, rot, len(offsets)))
			}
			shapeTable[kind][rot] = offsets
		}
	}
}

// parseLayout converts a layout grid into relative cell offsets.
func parseLayout(rows []string) []Offset {
	var offsets []Offset
	for dy, row := range rows {
		for dx, ch := range row {
			if ch == 'X' {
				offsets = append(offsets, Offset{DCol: dx, DRow: dy})
			}
		}
	}
	return offsets
}

// OccupiedOffsets returns the relative occupied cells of a kind at the
// given rotation. The rotation index wraps modulo 4, so the function is
// total for any integer input. The returned slice is shared and must
// not be modified.
func OccupiedOffsets(kind Kind, rot int) []Offset {
	wrapped := ((rot % RotationCount) + RotationCount) % RotationCount
	return shapeTable[kind][wrapped]
}
