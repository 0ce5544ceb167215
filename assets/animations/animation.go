// Package animations advances sprite-sheet frame indices on a fixed tick.
package animations

// Animation cycles frame indices [First, Last] advancing every TicksPerFrame
// updates. Looped is set once the clip has wrapped at least once.
type Animation struct {
	First         int
	Last          int
	TicksPerFrame int
	Looped        bool
	Hold          bool // stay on Last instead of wrapping

	ticks int
	frame int
}

func (a *Animation) Update() {
	a.ticks++
	if a.ticks < a.TicksPerFrame {
		return
	}
	a.ticks = 0
	a.frame++
	if a.frame <= a.Last {
		return
	}
	a.Looped = true
	if a.Hold {
		a.frame = a.Last
		return
	}
	a.frame = a.First
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.ticks = 0
}

func NewAnimation(first, last, ticksPerFrame int) *Animation {
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}
	return &Animation{
		First:         first,
		Last:          last,
		TicksPerFrame: ticksPerFrame,
		frame:         first,
	}
}
