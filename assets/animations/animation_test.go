package animations

import "testing"

func TestAnimationCycles(t *testing.T) {
	a := NewAnimation(0, 2, 2)

	want := []int{0, 1, 1, 2, 2, 0}
	for i, w := range want {
		a.Update()
		if got := a.Frame(); got != w {
			t.Fatalf("update %d: expected frame %d, got %d", i, w, got)
		}
	}
	if !a.Looped {
		t.Fatal("expected Looped after wrapping")
	}
}

func TestAnimationHold(t *testing.T) {
	a := NewAnimation(0, 1, 1)
	a.Hold = true
	for i := 0; i < 5; i++ {
		a.Update()
	}
	if a.Frame() != 1 {
		t.Fatalf("expected to hold last frame, got %d", a.Frame())
	}
}

func TestAnimationRestart(t *testing.T) {
	a := NewAnimation(1, 3, 1)
	a.Update()
	a.Update()
	a.Restart()
	if a.Frame() != 1 {
		t.Fatalf("expected restart at first frame, got %d", a.Frame())
	}
}
