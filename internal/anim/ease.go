package anim

import "math"

// Lerp is a(1-t) + bt.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// EaseOutCubic is 1 - (1-t)^3.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// LerpAngle interpolates from a to b along the shortest arc. The difference
// is wrapped into (-π, π] before scaling by t.
func LerpAngle(a, b, t float64) float64 {
	return a + wrapAngle(b-a)*t
}

func wrapAngle(d float64) float64 {
	d = math.Mod(d+math.Pi, 2*math.Pi)
	if d <= 0 {
		d += 2 * math.Pi
	}
	return d - math.Pi
}
