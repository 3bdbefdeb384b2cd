package render

import (
	"math"

	"github.com/olivier-w/polytone/internal/shape"
)

const (
	// MaxSurface caps the drawing surface side in surface units.
	MaxSurface = 700
	// viewportShare is the fraction of the viewport width the surface uses.
	viewportShare = 0.9
	minSurface    = 16
)

// SurfaceSize sizes a square braille surface for a terminal viewport of
// cols x rows cells: 90% of the viewport width capped at MaxSurface, and
// never taller than rows.
func SurfaceSize(cols, rows int) shape.Bounds {
	side := math.Min(viewportShare*float64(cols*2), MaxSurface)
	side = math.Min(side, float64(rows*4))
	side = math.Floor(math.Max(side, minSurface))
	return shape.Bounds{Width: side, Height: side}
}
