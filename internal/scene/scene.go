// Package scene turns animation state into drawable shapes.
package scene

import (
	"github.com/olivier-w/polytone/internal/anim"
	"github.com/olivier-w/polytone/internal/render"
	"github.com/olivier-w/polytone/internal/shape"
)

// Global places the single global shape at the surface center.
func Global(d shape.Descriptor, b shape.Bounds) []render.Resolved {
	if d.Idle() {
		return nil
	}
	cx, cy := b.Center()
	return []render.Resolved{render.Place(d, cx, cy)}
}

// Instances resolves per-character instances. Opacity and outline width
// follow each instance's spawn progress.
func Instances(ins []*anim.Instance) []render.Resolved {
	out := make([]render.Resolved, 0, len(ins))
	for _, in := range ins {
		p := in.Progress()
		r := render.Place(in.Descriptor, in.X, in.Y)
		r.Radius = in.CurrentRadius
		r.Opacity = p
		r.StrokeWidth = 1 + 2*p
		out = append(out, r)
	}
	return out
}

// Settled resolves the final, non-animated scene for text.
func Settled(text string, mode Mode, b shape.Bounds) []render.Resolved {
	if !mode.PerCharacter() {
		d, _ := shape.Synthesize(text, b)
		return Global(d, b)
	}
	c := anim.NewCascade(anim.NewManualScheduler(), anim.Settle)
	c.Rebuild(text, b)
	return Instances(c.Instances())
}

// Paint draws shapes in order and returns how many were drawn.
func Paint(c render.Canvas, shapes []render.Resolved) int {
	n := 0
	for _, s := range shapes {
		if render.Draw(c, s) {
			n++
		}
	}
	return n
}
