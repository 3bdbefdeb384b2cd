// Package chrome colors the surrounding page from the text hue.
package chrome

import (
	"image/color"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the set of page colors derived from one hue.
type Palette struct {
	Background lipgloss.Color
	Text       lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
}

// Default is the palette shown for empty text.
func Default() Palette {
	return Palette{
		Background: lipgloss.Color("#1A1A1A"),
		Text:       lipgloss.Color("#DDDDDD"),
		Accent:     lipgloss.Color("#888888"),
		Muted:      lipgloss.Color("#666666"),
	}
}

// FromHue derives a dark page palette tinted by hue (degrees).
func FromHue(hue float64) Palette {
	hue = normalizeHue(hue)
	return Palette{
		Background: hex(colorful.Hsl(hue, 0.35, 0.10)),
		Text:       hex(colorful.Hsl(hue, 0.30, 0.88)),
		Accent:     hex(colorful.Hsl(hue, 0.75, 0.60)),
		Muted:      hex(colorful.Hsl(hue, 0.20, 0.50)),
	}
}

func hex(c colorful.Color) lipgloss.Color {
	return lipgloss.Color(c.Clamped().Hex())
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// BackgroundColor returns Background as an image color.
func (p Palette) BackgroundColor() color.Color { return toColor(p.Background) }

// TextColor returns Text as an image color.
func (p Palette) TextColor() color.Color { return toColor(p.Text) }

// MutedColor returns Muted as an image color.
func (p Palette) MutedColor() color.Color { return toColor(p.Muted) }

// AccentColor returns Accent as an image color.
func (p Palette) AccentColor() color.Color { return toColor(p.Accent) }

func toColor(c lipgloss.Color) color.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return color.Black
	}
	return col
}
