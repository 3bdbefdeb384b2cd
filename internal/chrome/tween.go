package chrome

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const settleEpsilon = 0.05

// Tween eases the displayed chrome hue toward a target with a critically
// damped spring, along the shortest way around the hue circle.
type Tween struct {
	spring harmonica.Spring
	hue    float64
	vel    float64
	target float64
	active bool // false when showing the default palette
}

// NewTween creates a Tween stepped at fps frames per second.
func NewTween(fps int) *Tween {
	return &Tween{spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0)}
}

// SetTarget points the tween at hue. Coming from the default palette it jumps
// straight there.
func (t *Tween) SetTarget(hue float64) {
	hue = normalizeHue(hue)
	if !t.active {
		t.hue, t.vel, t.target, t.active = hue, 0, hue, true
		return
	}
	// unwrap the target next to the current hue
	d := math.Mod(hue-t.hue+540, 360) - 180
	t.target = t.hue + d
}

// Reset returns to the default palette.
func (t *Tween) Reset() {
	t.hue, t.vel, t.target, t.active = 0, 0, 0, false
}

// Step advances the spring one frame and reports whether it is still moving.
func (t *Tween) Step() bool {
	if !t.active {
		return false
	}
	t.hue, t.vel = t.spring.Update(t.hue, t.vel, t.target)
	if math.Abs(t.hue-t.target) < settleEpsilon && math.Abs(t.vel) < settleEpsilon {
		t.hue, t.vel = t.target, 0
		return false
	}
	return true
}

// Settled reports whether the tween has reached its target.
func (t *Tween) Settled() bool {
	return !t.active || (t.hue == t.target && t.vel == 0)
}

// Hue returns the displayed hue in [0, 360).
func (t *Tween) Hue() float64 { return normalizeHue(t.hue) }

// Palette returns the palette for the displayed hue.
func (t *Tween) Palette() Palette {
	if !t.active {
		return Default()
	}
	return FromHue(t.Hue())
}
