package gamemath

import "math"

const minSmoothTime = 0.0001

// SmoothDamp moves current toward target using a critically damped spring with
// the given smoothing time constant. refVelocity carries the spring's velocity
// between calls and must be kept by the caller. The result never overshoots
// target.
func SmoothDamp(current, target float64, refVelocity *float64, smoothTime, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(minSmoothTime, smoothTime)

	omega := 2 / smoothTime
	x := omega * dt
	decay := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	temp := (*refVelocity + omega*change) * dt
	*refVelocity = (*refVelocity - omega*temp) * decay
	output := target + (change+temp)*decay

	if (target-current > 0) == (output > target) {
		output = target
		*refVelocity = (output - target) / dt
	}
	return output
}

// Vec is a 2D vector in screen space (+Y down).
type Vec struct {
	X, Y float64
}
