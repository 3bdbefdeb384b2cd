package anim

import (
	"time"

	"github.com/olivier-w/polytone/internal/shape"
)

// MorphDuration is the wall-clock length of one cross-fade.
const MorphDuration = 500 * time.Millisecond

// Morph cross-fades a single global shape toward its latest target. Hue,
// radius and irregularity are lerped, rotation takes the shortest arc, and
// sides and factors snap to the target immediately.
type Morph struct {
	sched    Scheduler
	duration time.Duration

	from    shape.Descriptor
	current shape.Descriptor
	target  shape.Descriptor
	start   time.Time
	t       float64

	handle FrameHandle
}

// NewMorph creates an idle Morph driven by s.
func NewMorph(s Scheduler) *Morph {
	return &Morph{sched: s, duration: MorphDuration, t: 1}
}

// SetTarget restarts the cross-fade from the current, possibly mid-flight,
// descriptor toward d. Any pending frame is canceled first.
func (m *Morph) SetTarget(d shape.Descriptor, now time.Time) {
	m.cancel()
	if d.Idle() {
		m.Clear()
		return
	}

	m.from = m.current.Clone()
	if m.from.Idle() {
		// grow in from nothing
		m.from = d.Clone()
		m.from.Radius = 0
	}
	m.target = d.Clone()
	m.current = m.from.Clone()
	m.current.Sides = m.target.Sides
	m.current.Factors = m.target.Factors
	m.start = now
	m.t = 0
	m.handle = m.sched.RequestFrame(m.frame)
}

// Snap jumps straight to d without animating.
func (m *Morph) Snap(d shape.Descriptor) {
	m.cancel()
	m.from = d.Clone()
	m.target = d.Clone()
	m.current = d.Clone()
	m.t = 1
}

// Clear cancels any animation and returns to the idle shape.
func (m *Morph) Clear() {
	m.cancel()
	m.from = shape.Descriptor{}
	m.current = shape.Descriptor{}
	m.target = shape.Descriptor{}
	m.t = 1
}

// Current returns the shape to draw this frame.
func (m *Morph) Current() shape.Descriptor { return m.current }

// Target returns the descriptor the morph is heading to.
func (m *Morph) Target() shape.Descriptor { return m.target }

// Progress returns the lerp parameter of the running cross-fade, 1 when idle.
func (m *Morph) Progress() float64 { return m.t }

// Running reports whether a frame is outstanding.
func (m *Morph) Running() bool { return m.handle != 0 }

func (m *Morph) cancel() {
	if m.handle != 0 {
		m.sched.CancelFrame(m.handle)
		m.handle = 0
	}
}

func (m *Morph) frame(now time.Time) {
	m.handle = 0

	t := 1.0
	if m.duration > 0 {
		t = float64(now.Sub(m.start)) / float64(m.duration)
	}
	if t < 0 {
		t = 0
	}
	if t >= 1 {
		m.t = 1
		m.current = m.target.Clone()
		return
	}

	m.t = t
	m.current = shape.Descriptor{
		Hue:          Lerp(m.from.Hue, m.target.Hue, t),
		Radius:       Lerp(m.from.Radius, m.target.Radius, t),
		Irregularity: Lerp(m.from.Irregularity, m.target.Irregularity, t),
		Rotation:     LerpAngle(m.from.Rotation, m.target.Rotation, t),
		Sides:        m.target.Sides,
		Factors:      m.target.Factors,
	}
	m.handle = m.sched.RequestFrame(m.frame)
}
