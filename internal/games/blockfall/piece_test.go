package blockfall

import "testing"

func TestPieceCells(t *testing.T) {
	p := NewPiece(KindO, 4, 2)
	want := []Coord{{4, 2}, {5, 2}, {4, 3}, {5, 3}}
	got := p.Cells()
	if len(got) != 4 {
		t.Fatalf("got %d cells, want 4", len(got))
	}
	set := make(map[Coord]bool)
	for _, c := range got {
		set[c] = true
	}
	for _, c := range want {
		if !set[c] {
			t.Errorf("missing cell %+v in %v", c, got)
		}
	}
}

func TestPieceMovedIsPure(t *testing.T) {
	p := NewPiece(KindT, 3, 5)
	q := p.Moved(-1, 2)

	if q.Col != 2 || q.Row != 7 {
		t.Errorf("moved anchor = (%d,%d), want (2,7)", q.Col, q.Row)
	}
	if p.Col != 3 || p.Row != 5 {
		t.Errorf("original mutated: (%d,%d)", p.Col, p.Row)
	}
	if q.Kind != p.Kind || q.Rot != p.Rot {
		t.Errorf("move changed kind or rotation: %+v", q)
	}
}

func TestPieceRotationCycle(t *testing.T) {
	p := NewPiece(KindJ, 0, 0)
	q := p
	for i := 0; i < 4; i++ {
		q = q.RotatedCW()
	}
	if q != p {
		t.Errorf("four CW rotations = %+v, want %+v", q, p)
	}

	if r := p.RotatedCW().RotatedCCW(); r != p {
		t.Errorf("CW then CCW = %+v, want %+v", r, p)
	}
	if r := p.RotatedCCW(); r.Rot != 3 {
		t.Errorf("CCW from rot 0 = %d, want 3", r.Rot)
	}
}
