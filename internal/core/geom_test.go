package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", Box{0, 0, 30, 30}, Box{20, 20, 30, 30}, true},
		{"apart horizontally", Box{0, 0, 30, 30}, Box{40, 0, 30, 30}, false},
		{"apart vertically", Box{0, 0, 30, 30}, Box{0, 40, 30, 30}, false},
		{"touching edge", Box{0, 0, 30, 30}, Box{30, 0, 30, 30}, false},
		{"touching floor", Box{0, 370, 30, 30}, Box{0, 400, 30, 30}, false},
		{"contained", Box{0, 0, 100, 100}, Box{10, 10, 5, 5}, true},
		{"sub-pixel overlap", Box{0, 0, 30, 30}, Box{29.5, 29.5, 30, 30}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() is not symmetric")
			}
		})
	}
}

func TestBoxInset(t *testing.T) {
	b := Box{X: 100, Y: 370, W: 30, H: 30}.Inset(6)

	if b.X != 106 || b.Y != 376 || b.W != 18 || b.H != 18 {
		t.Errorf("unexpected inset box %+v", b)
	}
	if b.Right() != 124 || b.Bottom() != 394 {
		t.Errorf("edges = (%v, %v), expected (124, 394)", b.Right(), b.Bottom())
	}
}

func TestBoxInsetAvoidsGrazes(t *testing.T) {
	player := Box{X: 100, Y: 370, W: 30, H: 30}
	block := Box{X: 126, Y: 360, W: 40, H: 40}

	if !player.Overlaps(block) {
		t.Fatal("raw boxes should overlap")
	}
	if player.Inset(6).Overlaps(block.Inset(6)) {
		t.Error("a 4px graze should be forgiven by a 6px margin")
	}
}

func TestRect(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if r.Right() != 6 {
		t.Errorf("Right() = %d, expected 6", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}
	if r.Empty() {
		t.Error("4x5 rect should not be empty")
	}
	if !NewRect(0, 0, 0, 3).Empty() || !NewRect(0, 0, 3, -1).Empty() {
		t.Error("zero or negative size should be empty")
	}
}
