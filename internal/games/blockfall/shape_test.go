package blockfall

import "testing"

func TestShapeTableComplete(t *testing.T) {
	for _, kind := range Kinds() {
		for rot := 0; rot < RotationCount; rot++ {
			offsets := OccupiedOffsets(kind, rot)
			if len(offsets) != 4 {
				t.Errorf("kind %s rot %d: got %d cells, want 4", kind, rot, len(offsets))
			}
			seen := make(map[Offset]bool)
			for _, o := range offsets {
				if o.DCol < 0 || o.DRow < 0 {
					t.Errorf("kind %s rot %d: negative offset %+v", kind, rot, o)
				}
				if seen[o] {
					t.Errorf("kind %s rot %d: duplicate offset %+v", kind, rot, o)
				}
				seen[o] = true
			}
		}
	}
}

func TestShapeShortCyclesRepeat(t *testing.T) {
	// O has one distinct silhouette, I/S/Z have two; the remaining
	// rotation indices must alias the distinct ones.
	cases := []struct {
		kind   Kind
		period int
	}{
		{KindO, 1},
		{KindI, 2},
		{KindS, 2},
		{KindZ, 2},
	}
	for _, tc := range cases {
		for rot := 0; rot < RotationCount; rot++ {
			got := OccupiedOffsets(tc.kind, rot)
			want := OccupiedOffsets(tc.kind, rot%tc.period)
			if !sameOffsets(got, want) {
				t.Errorf("kind %s: rot %d differs from rot %d", tc.kind, rot, rot%tc.period)
			}
		}
	}
}

func TestOccupiedOffsetsWraps(t *testing.T) {
	for _, kind := range Kinds() {
		for _, rot := range []int{-4, -1, 4, 5, 7, 100} {
			got := OccupiedOffsets(kind, rot)
			want := OccupiedOffsets(kind, ((rot%4)+4)%4)
			if !sameOffsets(got, want) {
				t.Errorf("kind %s: rot %d did not wrap", kind, rot)
			}
		}
	}
}

func TestKindStringsAndColorsDistinct(t *testing.T) {
	names := make(map[string]bool)
	for _, kind := range Kinds() {
		name := kind.String()
		if len(name) != 1 || name == "?" {
			t.Errorf("kind %d: bad name %q", kind, name)
		}
		if names[name] {
			t.Errorf("duplicate kind name %q", name)
		}
		names[name] = true
	}
	if Kind(99).String() != "?" {
		t.Errorf("unknown kind name = %q, want ?", Kind(99).String())
	}
}

func sameOffsets(a, b []Offset) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[Offset]bool, len(a))
	for _, o := range a {
		set[o] = true
	}
	for _, o := range b {
		if !set[o] {
			return false
		}
	}
	return true
}
