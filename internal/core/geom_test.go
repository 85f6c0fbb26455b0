package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectGrid(t *testing.T) {
	cells := NewRect(0, 0, 21, 10).Grid(2, 2, 1)
	if len(cells) != 4 {
		t.Fatalf("Grid() returned %d cells, expected 4", len(cells))
	}

	expected := []Rect{
		NewRect(0, 0, 10, 4),
		NewRect(11, 0, 10, 4),
		NewRect(0, 5, 10, 4),
		NewRect(11, 5, 10, 4),
	}
	// 10 rows: cellH = (10-1)/2 = 4, used = 9, so offset y = 0.
	for i, want := range expected {
		if cells[i] != want {
			t.Errorf("cell %d = %+v, expected %+v", i, cells[i], want)
		}
	}
}

func TestRectGridCentersLeftover(t *testing.T) {
	cells := NewRect(0, 0, 12, 5).Grid(1, 3, 0)
	if len(cells) != 3 {
		t.Fatalf("Grid() returned %d cells, expected 3", len(cells))
	}
	if cells[0] != NewRect(0, 0, 4, 5) || cells[2] != NewRect(8, 0, 4, 5) {
		t.Errorf("unexpected cells: %+v", cells)
	}

	odd := NewRect(0, 0, 13, 5).Grid(1, 3, 0)
	if odd[0].X != 0 {
		t.Errorf("odd leftover should stay left-biased, got X=%d", odd[0].X)
	}
}

func TestRectGridTooSmall(t *testing.T) {
	if cells := NewRect(0, 0, 2, 2).Grid(3, 3, 1); cells != nil {
		t.Errorf("Grid() on a tiny rect = %v, expected nil", cells)
	}
	if cells := NewRect(0, 0, 20, 20).Grid(0, 3, 1); cells != nil {
		t.Errorf("Grid() with zero rows = %v, expected nil", cells)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestPadColorWraps(t *testing.T) {
	rest0, lit0 := PadColor(0)
	rest8, lit8 := PadColor(8)
	if rest0 != rest8 || lit0 != lit8 {
		t.Errorf("PadColor(8) = (%d, %d), expected wrap to PadColor(0) = (%d, %d)", rest8, lit8, rest0, lit0)
	}
	if rest0 == lit0 {
		t.Error("resting and lit colors should differ")
	}
}
