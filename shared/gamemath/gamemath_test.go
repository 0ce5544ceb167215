package gamemath

import (
	"math"
	"testing"
)

func TestSmoothDampConvergesWithoutOvershoot(t *testing.T) {
	cases := []struct {
		name    string
		current float64
		target  float64
	}{
		{"accelerate_right", 0, 5},
		{"accelerate_left", 0, -5},
		{"slow_down", 5, 1},
		{"reverse", 3, -3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var ref float64
			v := c.current
			for i := 0; i < 120; i++ {
				next := SmoothDamp(v, c.target, &ref, 0.1, 1.0/60)
				if c.target > c.current && next > c.target {
					t.Fatalf("step %d overshot: %v > %v", i, next, c.target)
				}
				if c.target < c.current && next < c.target {
					t.Fatalf("step %d overshot: %v < %v", i, next, c.target)
				}
				v = next
			}
			if math.Abs(v-c.target) > 1e-3 {
				t.Fatalf("expected convergence to %v, got %v", c.target, v)
			}
		})
	}
}

func TestSmoothDampMovesMonotonically(t *testing.T) {
	var ref float64
	v := 0.0
	for i := 0; i < 30; i++ {
		next := SmoothDamp(v, 10, &ref, 0.2, 1.0/60)
		if next < v {
			t.Fatalf("step %d moved away from target: %v -> %v", i, v, next)
		}
		v = next
	}
	if v <= 0 || v >= 10 {
		t.Fatalf("expected partial progress after 30 steps, got %v", v)
	}
}

func TestSmoothDampZeroDelta(t *testing.T) {
	var ref float64
	if got := SmoothDamp(2, 8, &ref, 0.1, 0); got != 2 {
		t.Fatalf("expected unchanged value for dt=0, got %v", got)
	}
}

func TestSmoothDampAtTarget(t *testing.T) {
	ref := 0.0
	if got := SmoothDamp(4, 4, &ref, 0.1, 1.0/60); got != 4 {
		t.Fatalf("expected 4, got %v", got)
	}
	if ref != 0 {
		t.Fatalf("expected ref velocity 0, got %v", ref)
	}
}

func TestCircleOverlapsRect(t *testing.T) {
	cases := []struct {
		name       string
		cx, cy, r  float64
		x, y, w, h float64
		want       bool
	}{
		{"centre_inside", 5, 5, 1, 0, 0, 10, 10, true},
		{"touching_top_edge", 5, -2, 2, 0, 0, 10, 10, true},
		{"above_top_edge", 5, -2.5, 2, 0, 0, 10, 10, false},
		{"near_corner_outside", -2, -2, 2, 0, 0, 10, 10, false},
		{"near_corner_inside", -1, -1, 2, 0, 0, 10, 10, true},
		{"right_side", 11, 5, 1.5, 0, 0, 10, 10, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CircleOverlapsRect(c.cx, c.cy, c.r, c.x, c.y, c.w, c.h); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestApplyFriction(t *testing.T) {
	if got := ApplyFriction(2, 0.5); got != 1.5 {
		t.Errorf("expected 1.5, got %v", got)
	}
	if got := ApplyFriction(-2, 0.5); got != -1.5 {
		t.Errorf("expected -1.5, got %v", got)
	}
	if got := ApplyFriction(0.3, 0.5); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestImpulse(t *testing.T) {
	if got := Impulse(9, 3); got != 3 {
		t.Errorf("expected 3, got %v", got)
	}
	if got := Impulse(9, 0); got != 9 {
		t.Errorf("expected mass fallback to 1, got %v", got)
	}
}
