package types

import "testing"

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: double opposite is not identity", d)
		}
	}
}

func TestDirectionTurns(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		if d.TurnLeft().TurnRight() != d {
			t.Errorf("%v: left then right should be identity", d)
		}
		if d.TurnLeft().TurnLeft() != d.Opposite() {
			t.Errorf("%v: two left turns should reverse", d)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		d      Direction
		dr, dc int
	}{
		{Up, -1, 0},
		{Down, 1, 0},
		{Left, 0, -1},
		{Right, 0, 1},
	}
	for _, tt := range tests {
		dr, dc := tt.d.Delta()
		if dr != tt.dr || dc != tt.dc {
			t.Errorf("%v.Delta() = (%d,%d), want (%d,%d)", tt.d, dr, dc, tt.dr, tt.dc)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		got, err := ParseDirection(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, err)
		}
	}
	if _, err := ParseDirection("north"); err == nil {
		t.Error("expected error for unknown direction")
	}
	if Direction(7).Valid() {
		t.Error("Direction(7) should not be valid")
	}
}

func TestParseEdgePolicy(t *testing.T) {
	tests := map[string]EdgePolicy{"": EdgeBounded, "bounded": EdgeBounded, "wrap": EdgeWrap}
	for in, want := range tests {
		got, err := ParseEdgePolicy(in)
		if err != nil || got != want {
			t.Errorf("ParseEdgePolicy(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseEdgePolicy("torus"); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestDistance(t *testing.T) {
	a := Position{Row: 0, Col: 0}
	b := Position{Row: 4, Col: 9}
	if got := Distance(a, b, 10, 5, false); got != 13 {
		t.Errorf("bounded distance = %d, want 13", got)
	}
	if got := Distance(a, b, 10, 5, true); got != 2 {
		t.Errorf("wrapped distance = %d, want 2", got)
	}
}
