package shape

import (
	"math"
	"unicode/utf8"

	"github.com/olivier-w/polytone/internal/seed"
)

const (
	// single global shape
	globalSideRange    = 10
	globalIrregularity = 0.8
	globalBaseRadius   = 30.0
	globalRadiusStep   = 10.0
	globalMargin       = 30.0

	// one shape per character
	glyphSideRange    = 7
	glyphIrregularity = 0.7
	glyphBaseRadius   = 12.0
	glyphRadiusStep   = 3.0
	glyphRadiusDiv    = 8.0
)

// Synthesize derives the single global shape for text. It returns the idle
// descriptor and false when text is empty.
func Synthesize(text string, b Bounds) (Descriptor, bool) {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return Descriptor{}, false
	}
	h := seed.Hash(text)
	d := draws(seed.New(int64(h)), globalSideRange, globalIrregularity)
	d.Hue = Hue(h)
	d.Radius = GlobalRadius(n, b)
	return d, true
}

// GlobalRadius is min(maxRadius, 30 + 10*n) where maxRadius keeps a 30 unit
// margin from the surface half-width.
func GlobalRadius(n int, b Bounds) float64 {
	maxRadius := math.Max(0, b.Width/2-globalMargin)
	return math.Min(maxRadius, globalBaseRadius+globalRadiusStep*float64(n))
}

// SynthesizeGlyph derives the shape owned by character index, given the hash
// of the text prefix ending at that character.
func SynthesizeGlyph(prefixHash int32, index int, b Bounds) Descriptor {
	d := draws(seed.New(int64(prefixHash)), glyphSideRange, glyphIrregularity)
	d.Hue = Hue(prefixHash)
	d.Radius = GlyphRadius(index, b)
	return d
}

// GlyphRadius grows with the character position and is capped at an eighth
// of the shorter surface side.
func GlyphRadius(index int, b Bounds) float64 {
	maxRadius := math.Min(b.Width, b.Height) / glyphRadiusDiv
	return math.Min(maxRadius, glyphBaseRadius+glyphRadiusStep*float64(index+1))
}
