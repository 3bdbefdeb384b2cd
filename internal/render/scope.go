package render

import (
	"image/color"
	"math"
	"strings"
)

const (
	markTrace uint8 = 1
	markAxis  uint8 = 2
)

// Scope draws samples as a single trace over a dotted center axis, width
// columns by height rows. Samples are averaged per column and normalized to
// the loudest column.
func Scope(samples []float64, width, height int, col color.Color, profile ColorProfile) string {
	if len(samples) < 2 || width < 2 || height < 1 {
		return ""
	}

	cols := make([]float64, width)
	spc := float64(len(samples)) / float64(width)
	peak := 0.0
	for c := range cols {
		lo := int(float64(c) * spc)
		hi := int(float64(c+1) * spc)
		if hi > len(samples) {
			hi = len(samples)
		}
		if hi <= lo {
			hi = lo + 1
		}
		sum := 0.0
		for _, s := range samples[lo:hi] {
			sum += s
		}
		cols[c] = sum / float64(hi-lo)
		peak = math.Max(peak, math.Abs(cols[c]))
	}
	if peak > 0 {
		for c := range cols {
			cols[c] /= peak
		}
	}

	mask := make([][]uint8, height)
	for r := range mask {
		mask[r] = make([]uint8, width)
	}
	for c := 0; c < width; c++ {
		mask[height/2][c] = markAxis
	}
	prev := ampToRow(cols[0], height)
	for c := 1; c < width; c++ {
		y := ampToRow(cols[c], height)
		plotMask(mask, c-1, prev, c, y)
		prev = y
	}

	var out strings.Builder
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	trace := rgb{R: n.R, G: n.G, B: n.B}
	dim := blend(rgb{}, trace, 0.4)
	ansi := newANSIState(profile)
	for r := 0; r < height; r++ {
		if r > 0 {
			out.WriteByte('\n')
		}
		for c := 0; c < width; c++ {
			switch mask[r][c] {
			case markTrace:
				ansi.set(&out, trace)
				out.WriteRune('●')
			case markAxis:
				ansi.set(&out, dim)
				out.WriteRune('·')
			default:
				out.WriteByte(' ')
			}
		}
		ansi.reset(&out)
	}
	return out.String()
}

func ampToRow(amp float64, height int) int {
	if height <= 1 {
		return 0
	}
	amp = clamp01((amp + 1) / 2)
	row := int(math.Round((1 - amp) * float64(height-1)))
	return max(0, min(height-1, row))
}

func plotMask(mask [][]uint8, x0, y0, x1, y1 int) {
	maxY, maxX := len(mask), len(mask[0])
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		if y0 >= 0 && y0 < maxY && x0 >= 0 && x0 < maxX {
			mask[y0][x0] = markTrace
		}
		if x0 == x1 && y0 == y1 {
			break
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
