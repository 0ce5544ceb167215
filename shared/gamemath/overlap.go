package gamemath

// CircleOverlapsRect reports whether a circle centred at (cx, cy) touches the
// axis-aligned rectangle at (x, y) with size (w, h). Touching edges count.
func CircleOverlapsRect(cx, cy, radius, x, y, w, h float64) bool {
	nearestX := Clamp(cx, x, x+w)
	nearestY := Clamp(cy, y, y+h)
	dx := cx - nearestX
	dy := cy - nearestY
	return dx*dx+dy*dy <= radius*radius
}
