package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
)

func TestImageCanvasDrawsFilledPolygon(t *testing.T) {
	c := NewImageCanvas(100)
	c.Paint(color.White)
	s := testShape(6)
	s.Irregularity = 0
	Draw(c, s)

	got := color.NRGBAModel.Convert(c.Image().At(50, 50)).(color.NRGBA)
	want := FillColor(97, 1).(color.NRGBA)
	if got != want {
		t.Fatalf("expected fill %+v at center, got %+v", want, got)
	}
	corner := color.NRGBAModel.Convert(c.Image().At(1, 1)).(color.NRGBA)
	if corner != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("expected white corner, got %+v", corner)
	}
}

func TestImageCanvasWritePNG(t *testing.T) {
	c := NewImageCanvas(32)
	c.Paint(color.Black)
	c.DrawPrompt("hi", color.White)

	var buf bytes.Buffer
	if err := c.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 32 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
}
