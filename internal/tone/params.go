// Package tone derives and synthesizes the one-shot tone for a text.
package tone

import (
	"math"
	"unicode/utf8"

	"github.com/olivier-w/polytone/internal/seed"
)

// Waveform is the oscillator shape.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Sawtooth
	Triangle
)

func (w Waveform) String() string {
	switch w {
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	case Triangle:
		return "triangle"
	default:
		return "sine"
	}
}

// Scale selects how the last character maps to a frequency.
type Scale int

const (
	// Continuous maps the last code point onto 200..799 Hz.
	Continuous Scale = iota
	// Major picks one of eight C-major notes.
	Major
)

// Next cycles to the other scale.
func (s Scale) Next() Scale {
	if s == Continuous {
		return Major
	}
	return Continuous
}

func (s Scale) String() string {
	if s == Major {
		return "major"
	}
	return "continuous"
}

// majorScale is C4 through C5.
var majorScale = [8]float64{261.63, 293.66, 329.63, 349.23, 392.00, 440.00, 493.88, 523.25}

// Params fully describes one tone.
type Params struct {
	Frequency float64 // Hz
	Waveform  Waveform
	Decay     float64 // seconds
}

// Derive computes the tone for text. Draws come from a generator seeded with
// the text hash: waveform first, then decay. Empty text yields no tone.
func Derive(text string, scale Scale) (Params, bool) {
	last, size := utf8.DecodeLastRuneInString(text)
	if size == 0 {
		return Params{}, false
	}
	g := seed.New(int64(seed.Hash(text)))

	var p Params
	p.Waveform = Waveform(int(math.Floor(g.Next() * 4)))
	switch scale {
	case Major:
		p.Frequency = majorScale[int(last)%len(majorScale)]
		p.Decay = 0.3 + g.Next()*0.5
	default:
		p.Frequency = 200 + float64(int(last)%600)
		p.Decay = 0.1 + g.Next()*0.3
	}
	return p, true
}
