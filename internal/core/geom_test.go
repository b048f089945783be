package core

import "testing"

func TestNormalizeOrZero(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"zero stays zero", V(0, 0), V(0, 0)},
		{"axis aligned", V(0, 10), V(0, 1)},
		{"negative axis", V(-3, 0), V(-1, 0)},
		{"diagonal", V(3, 4), V(0.6, 0.8)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeOrZero(tc.in)
			if !got.ApproxEqual(tc.want) {
				t.Errorf("NormalizeOrZero(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		in     Vec2
		wx, wy int
	}{
		{"positive", V(5.5, 6.99), 5, 6},
		{"exact", V(3, 4), 3, 4},
		{"negative rounds toward zero", V(-0.4, -1.5), 0, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := Truncate(tc.in)
			if x != tc.wx || y != tc.wy {
				t.Errorf("Truncate(%v) = (%d, %d), expected (%d, %d)", tc.in, x, y, tc.wx, tc.wy)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, want float32
	}{
		{-0.5, 0},
		{0.25, 0.25},
		{1.5, 1},
	}
	for _, tc := range tests {
		if got := ClampF(tc.val, 0, 1); got != tc.want {
			t.Errorf("ClampF(%v, 0, 1) = %v, expected %v", tc.val, got, tc.want)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 5, 20, 3)
	if r.Right() != 30 || r.Bottom() != 8 {
		t.Errorf("Right/Bottom = %d/%d, expected 30/8", r.Right(), r.Bottom())
	}
}

func TestInputFrameEdgesAndLevels(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.Hold(ActionRight)

	if !f.Has(ActionJump) || !f.IsDown(ActionJump) {
		t.Error("Set should mark an action both pressed and held")
	}
	if f.Has(ActionRight) {
		t.Error("Hold should not mark a rising edge")
	}
	if got := f.DPad(); got != V(1, 0) {
		t.Errorf("DPad() = %v, expected (1, 0)", got)
	}

	f.Clear()
	if f.Has(ActionJump) || f.IsDown(ActionRight) {
		t.Error("Clear should reset all actions")
	}
}

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor(" Bright_Blue "); !ok || c != ColorBrightBlue {
		t.Errorf("ParseColor(bright_blue) = %v, %v", c, ok)
	}
	if _, ok := ParseColor("chartreuse"); ok {
		t.Error("unknown color names should not parse")
	}
}
