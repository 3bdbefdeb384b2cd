// Package render draws shape descriptors onto 2-D surfaces.
package render

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/olivier-w/polytone/internal/shape"
)

// Canvas is the path-drawing subset shared by the braille surface and
// *gg.Context.
type Canvas interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	ClearPath()
	SetColor(c color.Color)
	SetLineWidth(w float64)
	FillPreserve()
	Stroke()
}

// Resolved is a shape placed on the surface and ready to draw.
type Resolved struct {
	X, Y         float64
	Radius       float64
	Sides        int
	Rotation     float64
	Irregularity float64
	Factors      []float64
	Hue          float64
	// Opacity in [0,1] scales the fill. StrokeWidth 0 disables the outline.
	Opacity     float64
	StrokeWidth float64
}

// Place resolves d at (x, y) at full opacity with no outline.
func Place(d shape.Descriptor, x, y float64) Resolved {
	return Resolved{
		X:            x,
		Y:            y,
		Radius:       d.Radius,
		Sides:        d.Sides,
		Rotation:     d.Rotation,
		Irregularity: d.Irregularity,
		Factors:      d.Factors,
		Hue:          d.Hue,
		Opacity:      1,
	}
}

// Point is a vertex position.
type Point struct{ X, Y float64 }

// Vertices returns the sides+1 vertices of r. The last vertex sits at the
// same angle as the first, rotation + 2π.
func Vertices(r Resolved) []Point {
	if r.Sides < 3 {
		return nil
	}
	pts := make([]Point, r.Sides+1)
	step := 2 * math.Pi / float64(r.Sides)
	for i := range pts {
		angle := r.Rotation + float64(i)*step
		factor := 0.5
		if len(r.Factors) > 0 {
			factor = r.Factors[i%len(r.Factors)]
		}
		variation := r.Radius * r.Irregularity * (factor - 0.5) * 2
		rad := r.Radius + variation
		pts[i] = Point{X: r.X + rad*math.Cos(angle), Y: r.Y + rad*math.Sin(angle)}
	}
	return pts
}

// Draw fills r, and outlines it when StrokeWidth > 0. Shapes with a radius
// under 1 are skipped; Draw reports whether anything was drawn.
func Draw(c Canvas, r Resolved) bool {
	if r.Radius < 1 || r.Sides < 3 || r.Opacity <= 0 {
		return false
	}
	pts := Vertices(r)

	c.ClearPath()
	c.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()

	c.SetColor(FillColor(r.Hue, r.Opacity))
	c.FillPreserve()
	if r.StrokeWidth > 0 {
		c.SetLineWidth(r.StrokeWidth)
		c.SetColor(StrokeColor(r.Hue, r.Opacity))
		c.Stroke()
	} else {
		c.ClearPath()
	}
	return true
}

// FillColor is hsl(hue, 75%, 55%) at the given opacity.
func FillColor(hue, opacity float64) color.Color {
	return withAlpha(colorful.Hsl(hue, 0.75, 0.55), opacity)
}

// StrokeColor is a darker shade of the fill.
func StrokeColor(hue, opacity float64) color.Color {
	return withAlpha(colorful.Hsl(hue, 0.75, 0.35), opacity)
}

func withAlpha(c colorful.Color, opacity float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(opacity) * 255))}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
