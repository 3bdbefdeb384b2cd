package anim

import (
	"math"
	"time"

	"github.com/olivier-w/polytone/internal/seed"
	"github.com/olivier-w/polytone/internal/shape"
)

// CascadeMode selects what settled instances do.
type CascadeMode int

const (
	// Settle leaves instances at their target once spawned.
	Settle CascadeMode = iota
	// Bounce sets settled instances moving with elastic wall reflection.
	Bounce
)

const (
	minLifespan   = 30
	lifespanRange = 30
	minSpeed      = 0.5
	speedRange    = 1.5
)

// Instance is one per-character shape with its spawn and motion state.
type Instance struct {
	shape.Descriptor

	PrefixHash int32

	X, Y             float64
	SpawnX, SpawnY   float64
	TargetX, TargetY float64
	VX, VY           float64
	CurrentRadius    float64

	Age      int
	Lifespan int
}

// Progress is the spawn fraction in [0, 1].
func (in *Instance) Progress() float64 {
	if in.Lifespan <= 0 || in.Age >= in.Lifespan {
		return 1
	}
	return float64(in.Age) / float64(in.Lifespan)
}

// Spawning reports whether the instance is still easing toward its target.
func (in *Instance) Spawning() bool { return in.Age < in.Lifespan }

// Cascade owns one Instance per rune of the input. Each new instance spawns
// from the previous instance's target, chaining spawn origins.
type Cascade struct {
	sched     Scheduler
	mode      CascadeMode
	bounds    shape.Bounds
	instances []*Instance
	handle    FrameHandle
}

// NewCascade creates an empty Cascade driven by s.
func NewCascade(s Scheduler, mode CascadeMode) *Cascade {
	return &Cascade{sched: s, mode: mode}
}

// Mode returns the current cascade mode.
func (c *Cascade) Mode() CascadeMode { return c.mode }

// SetMode switches between settle and bounce, starting the frame loop when
// bouncing instances need it.
func (c *Cascade) SetMode(mode CascadeMode) {
	c.mode = mode
	if mode == Settle {
		for _, in := range c.instances {
			if !in.Spawning() {
				in.X, in.Y = in.TargetX, in.TargetY
			}
		}
	}
	c.restart()
}

// Instances returns the live instances in character order.
func (c *Cascade) Instances() []*Instance { return c.instances }

// Running reports whether a frame is outstanding.
func (c *Cascade) Running() bool { return c.handle != 0 }

// SetText reconciles the instances with text. Instances past the first
// changed prefix are destroyed from the end; new ones are appended and start
// spawning. It reports whether the instance set changed.
func (c *Cascade) SetText(text string, b shape.Bounds) bool {
	c.bounds = b
	prefixes := seed.PrefixHashes(text)

	keep := 0
	for keep < len(c.instances) && keep < len(prefixes) && c.instances[keep].PrefixHash == prefixes[keep] {
		keep++
	}
	changed := keep != len(c.instances) || keep != len(prefixes)

	for i := keep; i < len(c.instances); i++ {
		c.instances[i] = nil
	}
	c.instances = c.instances[:keep]
	for i := keep; i < len(prefixes); i++ {
		c.instances = append(c.instances, c.spawn(i, prefixes[i]))
	}

	if changed {
		c.restart()
	}
	return changed
}

// Rebuild regenerates every instance for text at its settled state. Used
// when the surface is resized.
func (c *Cascade) Rebuild(text string, b shape.Bounds) {
	c.bounds = b
	c.instances = c.instances[:0]
	for i, h := range seed.PrefixHashes(text) {
		in := c.spawn(i, h)
		in.Age = in.Lifespan
		in.X, in.Y = in.TargetX, in.TargetY
		in.CurrentRadius = in.Radius
		c.instances = append(c.instances, in)
	}
	c.restart()
}

// Clear destroys all instances and cancels the frame loop.
func (c *Cascade) Clear() {
	c.cancel()
	c.instances = nil
}

// Step advances every instance by one frame and reports whether another
// frame is needed.
func (c *Cascade) Step() bool {
	active := false
	for _, in := range c.instances {
		if in.Spawning() {
			in.Age++
			e := EaseOutCubic(float64(in.Age) / float64(in.Lifespan))
			in.X = Lerp(in.SpawnX, in.TargetX, e)
			in.Y = Lerp(in.SpawnY, in.TargetY, e)
			in.CurrentRadius = Lerp(0, in.Radius, e)
			if in.Spawning() {
				active = true
			}
			continue
		}
		if c.mode == Bounce {
			in.X += in.VX
			in.Y += in.VY
			c.reflect(in)
		}
	}
	return active || (c.mode == Bounce && len(c.instances) > 0)
}

// reflect inverts the velocity component of any crossed wall and clamps the
// instance back onto it.
func (c *Cascade) reflect(in *Instance) {
	r := in.CurrentRadius
	w, h := c.bounds.Width, c.bounds.Height
	if in.X-r < 0 {
		in.X = r
		in.VX = -in.VX
	} else if in.X+r > w {
		in.X = w - r
		in.VX = -in.VX
	}
	if in.Y-r < 0 {
		in.Y = r
		in.VY = -in.VY
	} else if in.Y+r > h {
		in.Y = h - r
		in.VY = -in.VY
	}
}

// spawn builds instance i. Shape fields come from the prefix hash; the
// target offset, lifespan and velocity come from a stream seeded with
// prefixHash+index.
func (c *Cascade) spawn(i int, prefixHash int32) *Instance {
	d := shape.SynthesizeGlyph(prefixHash, i, c.bounds)

	sx, sy := c.bounds.Center()
	if i > 0 {
		prev := c.instances[i-1]
		sx, sy = prev.TargetX, prev.TargetY
	}

	g := seed.New(int64(prefixHash) + int64(i))
	angle := g.Next() * 2 * math.Pi
	dist := d.Radius * (1.5 + g.Next())
	lifespan := minLifespan + int(math.Floor(g.Next()*lifespanRange))
	heading := g.Next() * 2 * math.Pi
	speed := minSpeed + g.Next()*speedRange

	tx := clampRange(sx+dist*math.Cos(angle), d.Radius, c.bounds.Width-d.Radius)
	ty := clampRange(sy+dist*math.Sin(angle), d.Radius, c.bounds.Height-d.Radius)

	return &Instance{
		Descriptor: d,
		PrefixHash: prefixHash,
		X:          sx,
		Y:          sy,
		SpawnX:     sx,
		SpawnY:     sy,
		TargetX:    tx,
		TargetY:    ty,
		VX:         speed * math.Cos(heading),
		VY:         speed * math.Sin(heading),
		Lifespan:   lifespan,
	}
}

func (c *Cascade) restart() {
	c.cancel()
	if len(c.instances) == 0 {
		return
	}
	c.handle = c.sched.RequestFrame(c.frame)
}

func (c *Cascade) cancel() {
	if c.handle != 0 {
		c.sched.CancelFrame(c.handle)
		c.handle = 0
	}
}

func (c *Cascade) frame(time.Time) {
	c.handle = 0
	if c.Step() {
		c.handle = c.sched.RequestFrame(c.frame)
	}
}

func clampRange(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}
