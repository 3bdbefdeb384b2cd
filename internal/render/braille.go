package render

import (
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/olivier-w/polytone/internal/shape"
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// BrailleCanvas is a terminal drawing surface. Each cell is a 2x4 dot grid
// and one surface unit is one dot. Fills use the even-odd rule.
type BrailleCanvas struct {
	cols, rows int
	dotW, dotH int

	cells  []uint8
	colors []rgb

	background rgb
	paint      color.NRGBA
	lineWidth  float64

	subpaths [][]Point
	profile  ColorProfile
}

// NewBrailleCanvas sizes a canvas to cover b.
func NewBrailleCanvas(b shape.Bounds) *BrailleCanvas {
	cols := int(math.Ceil(b.Width / 2))
	rows := int(math.Ceil(b.Height / 4))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &BrailleCanvas{
		cols:      cols,
		rows:      rows,
		dotW:      cols * 2,
		dotH:      rows * 4,
		cells:     make([]uint8, cols*rows),
		colors:    make([]rgb, cols*rows),
		lineWidth: 1,
		profile:   DetectColorProfile(),
	}
}

// Cols returns the canvas width in terminal cells.
func (c *BrailleCanvas) Cols() int { return c.cols }

// Rows returns the canvas height in terminal cells.
func (c *BrailleCanvas) Rows() int { return c.rows }

// SetProfile overrides the detected terminal color profile.
func (c *BrailleCanvas) SetProfile(p ColorProfile) { c.profile = p }

// SetBackground sets the color translucent fills blend against.
func (c *BrailleCanvas) SetBackground(col color.Color) {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	c.background = rgb{R: n.R, G: n.G, B: n.B}
}

// Clear erases every dot and the current path.
func (c *BrailleCanvas) Clear() {
	clear(c.cells)
	clear(c.colors)
	c.subpaths = nil
}

func (c *BrailleCanvas) MoveTo(x, y float64) {
	c.subpaths = append(c.subpaths, []Point{{X: x, Y: y}})
}

func (c *BrailleCanvas) LineTo(x, y float64) {
	if len(c.subpaths) == 0 {
		c.MoveTo(x, y)
		return
	}
	last := len(c.subpaths) - 1
	c.subpaths[last] = append(c.subpaths[last], Point{X: x, Y: y})
}

func (c *BrailleCanvas) ClosePath() {
	if len(c.subpaths) == 0 {
		return
	}
	last := len(c.subpaths) - 1
	sp := c.subpaths[last]
	if len(sp) > 1 && sp[0] != sp[len(sp)-1] {
		c.subpaths[last] = append(sp, sp[0])
	}
}

func (c *BrailleCanvas) ClearPath() { c.subpaths = nil }

func (c *BrailleCanvas) SetColor(col color.Color) {
	c.paint = color.NRGBAModel.Convert(col).(color.NRGBA)
}

func (c *BrailleCanvas) SetLineWidth(w float64) { c.lineWidth = w }

// FillPreserve fills the current path, sampling each dot at its center.
// Open subpaths are filled as if closed.
func (c *BrailleCanvas) FillPreserve() {
	col, ok := c.paintColor()
	if !ok {
		return
	}
	var xs []float64
	for dy := 0; dy < c.dotH; dy++ {
		sy := float64(dy) + 0.5
		xs = xs[:0]
		for _, sp := range c.subpaths {
			for i := range sp {
				a, b := sp[i], sp[(i+1)%len(sp)]
				if (a.Y <= sy) == (b.Y <= sy) {
					continue
				}
				xs = append(xs, a.X+(sy-a.Y)*(b.X-a.X)/(b.Y-a.Y))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(math.Ceil(xs[i] - 0.5))
			x1 := int(math.Ceil(xs[i+1]-0.5)) - 1
			for dx := x0; dx <= x1; dx++ {
				c.setDot(dx, dy, col)
			}
		}
	}
}

// Stroke outlines the current path and then clears it.
func (c *BrailleCanvas) Stroke() {
	col, ok := c.paintColor()
	if ok {
		half := int(math.Max(0, math.Round(c.lineWidth/2)-1))
		for _, sp := range c.subpaths {
			for i := 0; i+1 < len(sp); i++ {
				c.line(sp[i], sp[i+1], half, col)
			}
		}
	}
	c.ClearPath()
}

// Dot reports whether the dot at (x, y) is set.
func (c *BrailleCanvas) Dot(x, y int) bool {
	if x < 0 || y < 0 || x >= c.dotW || y >= c.dotH {
		return false
	}
	cell := (y/4)*c.cols + x/2
	return c.cells[cell]&(1<<brailleBits[x%2][y%4]) != 0
}

// View renders the canvas as rows of braille runes with foreground colors.
func (c *BrailleCanvas) View() string {
	var out strings.Builder
	ansi := newANSIState(c.profile)
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			out.WriteByte('\n')
		}
		for col := 0; col < c.cols; col++ {
			idx := row*c.cols + col
			pattern := c.cells[idx]
			if pattern == 0 {
				out.WriteByte(' ')
				continue
			}
			ansi.set(&out, c.colors[idx])
			out.WriteRune(rune(0x2800 + uint(pattern)))
		}
		ansi.reset(&out)
	}
	return out.String()
}

func (c *BrailleCanvas) paintColor() (rgb, bool) {
	if c.paint.A == 0 {
		return rgb{}, false
	}
	src := rgb{R: c.paint.R, G: c.paint.G, B: c.paint.B}
	return blend(c.background, src, float64(c.paint.A)/255), true
}

func (c *BrailleCanvas) setDot(x, y int, col rgb) {
	if x < 0 || y < 0 || x >= c.dotW || y >= c.dotH {
		return
	}
	cell := (y/4)*c.cols + x/2
	c.cells[cell] |= 1 << brailleBits[x%2][y%4]
	c.colors[cell] = col
}

// line plots a Bresenham segment, thickened to a square of the given half
// width around each plotted dot.
func (c *BrailleCanvas) line(a, b Point, half int, col rgb) {
	x0, y0 := int(math.Floor(a.X)), int(math.Floor(a.Y))
	x1, y1 := int(math.Floor(b.X)), int(math.Floor(b.Y))
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		for oy := -half; oy <= half; oy++ {
			for ox := -half; ox <= half; ox++ {
				c.setDot(x0+ox, y0+oy, col)
			}
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
