package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/olivier-w/polytone/internal/shape"
)

type recordingCanvas struct {
	moves, lines, closes, fills, strokes int
	colors                               []color.Color
	width                                float64
}

func (r *recordingCanvas) MoveTo(x, y float64)    { r.moves++ }
func (r *recordingCanvas) LineTo(x, y float64)    { r.lines++ }
func (r *recordingCanvas) ClosePath()             { r.closes++ }
func (r *recordingCanvas) ClearPath()             {}
func (r *recordingCanvas) SetColor(c color.Color) { r.colors = append(r.colors, c) }
func (r *recordingCanvas) SetLineWidth(w float64) { r.width = w }
func (r *recordingCanvas) FillPreserve()          { r.fills++ }
func (r *recordingCanvas) Stroke()                { r.strokes++ }

func testShape(sides int) Resolved {
	f := make([]float64, sides+1)
	for i := range f {
		f[i] = float64(i) / float64(len(f))
	}
	return Resolved{X: 50, Y: 50, Radius: 20, Sides: sides, Rotation: 0.3, Irregularity: 0.5, Factors: f, Hue: 97, Opacity: 1}
}

func TestDrawEmitsSidesPlusOneSegments(t *testing.T) {
	for _, sides := range []int{3, 7, 12} {
		rc := &recordingCanvas{}
		if !Draw(rc, testShape(sides)) {
			t.Fatalf("sides %d: expected draw", sides)
		}
		segments := rc.lines + rc.closes
		if rc.moves != 1 || segments != sides+1 {
			t.Fatalf("sides %d: expected 1 move and %d segments, got %d and %d", sides, sides+1, rc.moves, segments)
		}
		if rc.fills != 1 || rc.strokes != 0 {
			t.Fatalf("sides %d: expected fill only, got fills=%d strokes=%d", sides, rc.fills, rc.strokes)
		}
	}
}

func TestDrawStrokesWhenWidthSet(t *testing.T) {
	rc := &recordingCanvas{}
	s := testShape(5)
	s.StrokeWidth = 2
	Draw(rc, s)
	if rc.strokes != 1 || rc.width != 2 {
		t.Fatalf("expected one stroke of width 2, got %d/%v", rc.strokes, rc.width)
	}
	if len(rc.colors) != 2 || rc.colors[0] == rc.colors[1] {
		t.Fatal("expected a distinct darker stroke color")
	}
}

func TestDrawSkipsDegenerateShapes(t *testing.T) {
	s := testShape(4)
	s.Radius = 0.9
	if Draw(&recordingCanvas{}, s) {
		t.Fatal("expected radius < 1 to be skipped")
	}
	if Draw(&recordingCanvas{}, Resolved{Radius: 10}) {
		t.Fatal("expected idle shape to be skipped")
	}
}

func TestVerticesCloseAtSameAngle(t *testing.T) {
	s := testShape(6)
	s.Irregularity = 0
	pts := Vertices(s)
	if len(pts) != 7 {
		t.Fatalf("expected 7 vertices, got %d", len(pts))
	}
	first, last := pts[0], pts[len(pts)-1]
	if math.Abs(first.X-last.X) > 1e-9 || math.Abs(first.Y-last.Y) > 1e-9 {
		t.Fatalf("expected first and last vertex to coincide, got %v and %v", first, last)
	}
	for i, p := range pts {
		if d := math.Hypot(p.X-50, p.Y-50); math.Abs(d-20) > 1e-9 {
			t.Fatalf("vertex %d: expected radius 20, got %v", i, d)
		}
	}
}

func TestVerticesJitterRange(t *testing.T) {
	s := testShape(8)
	s.Irregularity = 0.8
	s.Factors = []float64{0, 0.999999}
	for i, p := range Vertices(s) {
		d := math.Hypot(p.X-50, p.Y-50)
		if d < 20*(1-0.8)-1e-9 || d >= 20*(1+0.8) {
			t.Fatalf("vertex %d: radius %v outside jitter range", i, d)
		}
	}
	if d := math.Hypot(Vertices(s)[0].X-50, Vertices(s)[0].Y-50); math.Abs(d-4) > 1e-9 {
		t.Fatalf("expected factor 0 to shrink radius to 4, got %v", d)
	}
}

func TestPlaceCopiesDescriptor(t *testing.T) {
	d, _ := shape.Synthesize("a", shape.Bounds{Width: 700, Height: 700})
	r := Place(d, 350, 350)
	if r.Sides != d.Sides || r.Radius != d.Radius || r.Hue != 97 || r.Opacity != 1 {
		t.Fatalf("unexpected placement %+v", r)
	}
}

func TestFillColorOpacity(t *testing.T) {
	c := FillColor(0, 0.5).(color.NRGBA)
	if c.A != 128 {
		t.Fatalf("expected alpha 128, got %d", c.A)
	}
	if c.R <= c.G || c.R <= c.B {
		t.Fatalf("expected red-dominant fill for hue 0, got %+v", c)
	}
}
