package quilt

import "testing"

func TestRect_Edges(t *testing.T) {
	r := NewRect(3, 4, 10, 20)
	if r.Left() != 3 || r.Right() != 12 {
		t.Errorf("Left/Right = %d/%d, want 3/12", r.Left(), r.Right())
	}
	if r.Top() != 4 || r.Bottom() != 23 {
		t.Errorf("Top/Bottom = %d/%d, want 4/23", r.Top(), r.Bottom())
	}
	if r.Area() != 200 {
		t.Errorf("Area = %d, want 200", r.Area())
	}
}

func TestRect_Contains(t *testing.T) {
	outer := NewRect(0, 0, 100, 100)
	cases := []struct {
		name  string
		inner Rect
		want  bool
	}{
		{"fullyInside", NewRect(10, 10, 20, 20), true},
		{"equal", NewRect(0, 0, 100, 100), true},
		{"touchingRightEdge", NewRect(90, 0, 10, 10), true},
		{"pastRightEdge", NewRect(91, 0, 10, 10), false},
		{"touchingBottomEdge", NewRect(0, 90, 10, 10), true},
		{"pastBottomEdge", NewRect(0, 91, 10, 10), false},
		{"negativeOrigin", NewRect(-1, 0, 10, 10), false},
	}
	for _, tc := range cases {
		if got := outer.Contains(tc.inner); got != tc.want {
			t.Errorf("%s: Contains(%+v) = %v, want %v", tc.name, tc.inner, got, tc.want)
		}
	}
}

func TestRect_ContainsPoint(t *testing.T) {
	r := NewRect(5, 5, 10, 10)
	if !r.ContainsPoint(5, 5) || !r.ContainsPoint(14, 14) {
		t.Error("corner points should be inside")
	}
	if r.ContainsPoint(15, 5) || r.ContainsPoint(5, 15) || r.ContainsPoint(4, 5) {
		t.Error("points past the edges should be outside")
	}
}

func TestRect_Intersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	if !a.Intersects(NewRect(9, 9, 10, 10)) {
		t.Error("overlapping corner should intersect")
	}
	if a.Intersects(NewRect(10, 0, 10, 10)) {
		t.Error("rect starting past the right edge should not intersect")
	}
}
