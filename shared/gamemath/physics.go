// Package gamemath holds the engine-free arithmetic used by the controller and
// physics systems, so it can be unit tested without a world or a window.
package gamemath

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// Clamp constrains a value to the range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Impulse returns the velocity change produced by an instantaneous impulse on a
// body of the given mass. A non-positive mass is treated as 1.
func Impulse(impulse, mass float64) float64 {
	if mass <= 0 {
		mass = 1
	}
	return impulse / mass
}
