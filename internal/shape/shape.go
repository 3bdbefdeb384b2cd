// Package shape derives polygon descriptors from text.
package shape

import (
	"math"

	"github.com/olivier-w/polytone/internal/seed"
)

// Bounds is the size of the drawing surface in surface units.
type Bounds struct {
	Width  float64
	Height float64
}

// Center returns the midpoint of the surface.
func (b Bounds) Center() (float64, float64) {
	return b.Width / 2, b.Height / 2
}

// Descriptor is the full parameter set needed to render one polygon.
// The zero Descriptor (Sides == 0) is the idle shape.
type Descriptor struct {
	Hue          float64
	Radius       float64
	Sides        int
	Irregularity float64
	Rotation     float64
	// Factors holds one value in [0,1) per vertex 0..Sides inclusive.
	Factors []float64
}

// Idle reports whether d is the empty, undrawn shape.
func (d Descriptor) Idle() bool { return d.Sides == 0 }

// Factor returns the jitter factor for vertex i, wrapping around Factors.
func (d Descriptor) Factor(i int) float64 {
	if len(d.Factors) == 0 {
		return 0.5
	}
	return d.Factors[i%len(d.Factors)]
}

// Clone returns a copy that does not share Factors with d.
func (d Descriptor) Clone() Descriptor {
	if d.Factors != nil {
		d.Factors = append([]float64(nil), d.Factors...)
	}
	return d
}

// Hue maps a hash to a hue class in [0, 360): abs(hash mod 360), with
// truncated modulo. All variants share this convention.
func Hue(hash int32) float64 {
	h := int64(hash) % 360
	if h < 0 {
		h = -h
	}
	return float64(h)
}

// draws pulls the ordered shape fields out of g. The order is part of the
// output: sides, irregularity, rotation, then one factor per vertex.
func draws(g *seed.Generator, sideRange int, irregularityScale float64) Descriptor {
	var d Descriptor
	d.Sides = 3 + int(math.Floor(g.Next()*float64(sideRange)))
	d.Irregularity = g.Next() * irregularityScale
	d.Rotation = g.Next() * 2 * math.Pi
	d.Factors = make([]float64, d.Sides+1)
	for i := range d.Factors {
		d.Factors[i] = g.Next()
	}
	return d
}
