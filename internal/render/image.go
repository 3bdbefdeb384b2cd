package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// ImageCanvas is a raster surface for PNG export. The embedded gg.Context
// satisfies Canvas.
type ImageCanvas struct {
	*gg.Context
}

// NewImageCanvas creates a square raster canvas of the given side in pixels.
func NewImageCanvas(side int) *ImageCanvas {
	if side < 1 {
		side = 1
	}
	dc := gg.NewContext(side, side)
	dc.SetFontFace(basicfont.Face7x13)
	return &ImageCanvas{Context: dc}
}

// Paint fills the whole canvas with bg.
func (c *ImageCanvas) Paint(bg color.Color) {
	c.SetColor(bg)
	c.Clear()
}

// DrawPrompt writes msg centered on the canvas, for the empty-text state.
func (c *ImageCanvas) DrawPrompt(msg string, fg color.Color) {
	c.SetColor(fg)
	c.DrawStringAnchored(msg, float64(c.Width())/2, float64(c.Height())/2, 0.5, 0.5)
}

// WritePNG encodes the canvas as PNG.
func (c *ImageCanvas) WritePNG(w io.Writer) error {
	if err := c.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
