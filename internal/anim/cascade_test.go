package anim

import (
	"math"
	"testing"
	"time"

	"github.com/olivier-w/polytone/internal/shape"
)

var cascadeBounds = shape.Bounds{Width: 400, Height: 300}

func TestCascadeAppendsOneInstancePerRune(t *testing.T) {
	s := NewManualScheduler()
	c := NewCascade(s, Settle)

	if !c.SetText("héy", cascadeBounds) {
		t.Fatal("expected instance set to change")
	}
	if len(c.Instances()) != 3 {
		t.Fatalf("expected 3 instances, got %d", len(c.Instances()))
	}
	if s.Pending() != 1 {
		t.Fatalf("expected one pending frame, got %d", s.Pending())
	}
}

func TestCascadeFirstSpawnsAtCenterThenChains(t *testing.T) {
	s := NewManualScheduler()
	c := NewCascade(s, Settle)
	c.SetText("abc", cascadeBounds)

	in := c.Instances()
	if in[0].SpawnX != 200 || in[0].SpawnY != 150 {
		t.Fatalf("expected first spawn at center, got (%v, %v)", in[0].SpawnX, in[0].SpawnY)
	}
	for i := 1; i < len(in); i++ {
		if in[i].SpawnX != in[i-1].TargetX || in[i].SpawnY != in[i-1].TargetY {
			t.Fatalf("instance %d does not spawn from previous target", i)
		}
	}
}

func TestCascadePrefixDeterminism(t *testing.T) {
	s := NewManualScheduler()
	c := NewCascade(s, Settle)
	c.SetText("a", cascadeBounds)
	first := *c.Instances()[0]

	c.SetText("ab", cascadeBounds)
	again := c.Instances()[0]
	if again.Sides != first.Sides || again.Rotation != first.Rotation || again.TargetX != first.TargetX {
		t.Fatal("expected shape 0 to be unaffected by appending text")
	}

	fresh := NewCascade(NewManualScheduler(), Settle)
	fresh.SetText("ab", cascadeBounds)
	if fresh.Instances()[0].TargetX != first.TargetX || fresh.Instances()[1].Sides != c.Instances()[1].Sides {
		t.Fatal("expected identical instances from identical text")
	}
}

func TestCascadeTruncatesOnShrink(t *testing.T) {
	s := NewManualScheduler()
	c := NewCascade(s, Settle)
	c.SetText("abcd", cascadeBounds)
	kept := c.Instances()[1]

	c.SetText("ab", cascadeBounds)
	if len(c.Instances()) != 2 {
		t.Fatalf("expected 2 instances, got %d", len(c.Instances()))
	}
	if c.Instances()[1] != kept {
		t.Fatal("expected surviving instance to be kept, not rebuilt")
	}
}

func TestCascadeReplacesFromFirstChangedRune(t *testing.T) {
	s := NewManualScheduler()
	c := NewCascade(s, Settle)
	c.SetText("abc", cascadeBounds)
	first := c.Instances()[0]
	second := c.Instances()[1]

	c.SetText("axc", cascadeBounds)
	if c.Instances()[0] != first {
		t.Fatal("expected unchanged prefix to keep its instance")
	}
	if c.Instances()[1] == second {
		t.Fatal("expected changed rune to respawn its instance")
	}
}

func TestCascadeUnchangedTextIsNoop(t *testing.T) {
	s := NewManualScheduler()
	c := NewCascade(s, Settle)
	c.SetText("ab", cascadeBounds)
	s.Run(epoch, time.Second/60, 200)

	if c.SetText("ab", cascadeBounds) {
		t.Fatal("expected no change for identical text")
	}
	if s.Pending() != 0 {
		t.Fatal("expected no frame scheduled for identical text")
	}
}

func TestCascadeSpawnEasesToTarget(t *testing.T) {
	s := NewManualScheduler()
	c := NewCascade(s, Settle)
	c.SetText("q", cascadeBounds)
	in := c.Instances()[0]

	c.Step()
	e := EaseOutCubic(1 / float64(in.Lifespan))
	if want := Lerp(in.SpawnX, in.TargetX, e); math.Abs(in.X-want) > 1e-9 {
		t.Fatalf("expected eased x %v, got %v", want, in.X)
	}
	if want := in.Radius * e; math.Abs(in.CurrentRadius-want) > 1e-9 {
		t.Fatalf("expected eased radius %v, got %v", want, in.CurrentRadius)
	}

	frames := s.Run(epoch, time.Second/60, 1000)
	if frames > in.Lifespan {
		t.Fatalf("expected settle within lifespan, ran %d frames", frames)
	}
	if in.X != in.TargetX || in.Y != in.TargetY || in.CurrentRadius != in.Radius {
		t.Fatalf("expected settled instance at target, got %+v", in)
	}
	if in.Progress() != 1 || in.Spawning() {
		t.Fatal("expected spawn to be complete")
	}
	if c.Running() {
		t.Fatal("expected settle loop to halt")
	}
}

func TestCascadeLifespanRange(t *testing.T) {
	c := NewCascade(NewManualScheduler(), Settle)
	c.SetText("The quick brown fox jumps over the lazy dog", cascadeBounds)
	for i, in := range c.Instances() {
		if in.Lifespan < minLifespan || in.Lifespan >= minLifespan+lifespanRange {
			t.Fatalf("instance %d lifespan %d out of range", i, in.Lifespan)
		}
		if in.TargetX-in.Radius < 0 || in.TargetX+in.Radius > cascadeBounds.Width {
			t.Fatalf("instance %d target x %v outside bounds", i, in.TargetX)
		}
		if in.TargetY-in.Radius < 0 || in.TargetY+in.Radius > cascadeBounds.Height {
			t.Fatalf("instance %d target y %v outside bounds", i, in.TargetY)
		}
	}
}

func TestCascadeBounceStaysInBounds(t *testing.T) {
	s := NewManualScheduler()
	c := NewCascade(s, Bounce)
	c.Rebuild("bouncing shapes", cascadeBounds)

	for frame := 0; frame < 2000; frame++ {
		if !c.Step() {
			t.Fatal("expected bounce mode to keep running")
		}
		for i, in := range c.Instances() {
			r := in.CurrentRadius
			if in.X-r < -1e-9 || in.X+r > cascadeBounds.Width+1e-9 ||
				in.Y-r < -1e-9 || in.Y+r > cascadeBounds.Height+1e-9 {
				t.Fatalf("frame %d instance %d escaped: (%v, %v) r=%v", frame, i, in.X, in.Y, r)
			}
		}
	}
}

func TestCascadeReflectInvertsAndClamps(t *testing.T) {
	c := NewCascade(NewManualScheduler(), Bounce)
	c.bounds = shape.Bounds{Width: 100, Height: 100}
	in := &Instance{X: 95, Y: 3, VX: 2, VY: -1, CurrentRadius: 10, Age: 1, Lifespan: 1}
	c.instances = []*Instance{in}

	c.Step()
	if in.X != 90 || in.VX != -2 {
		t.Fatalf("expected right wall reflection, got x=%v vx=%v", in.X, in.VX)
	}
	if in.Y != 10 || in.VY != 1 {
		t.Fatalf("expected top wall reflection, got y=%v vy=%v", in.Y, in.VY)
	}

	speed := math.Hypot(in.VX, in.VY)
	c.Step()
	if math.Hypot(in.VX, in.VY) != speed {
		t.Fatal("expected lossless reflection")
	}
}

func TestCascadeSetModeSettleStopsBouncing(t *testing.T) {
	s := NewManualScheduler()
	c := NewCascade(s, Bounce)
	c.Rebuild("ab", cascadeBounds)
	for i := 0; i < 10; i++ {
		c.Step()
	}

	c.SetMode(Settle)
	for _, in := range c.Instances() {
		if in.X != in.TargetX || in.Y != in.TargetY {
			t.Fatal("expected settled instances back at their targets")
		}
	}
	s.Run(epoch, time.Second/60, 10)
	if c.Running() {
		t.Fatal("expected settle mode loop to halt")
	}
}

func TestCascadeClear(t *testing.T) {
	s := NewManualScheduler()
	c := NewCascade(s, Bounce)
	c.SetText("abc", cascadeBounds)
	c.Clear()
	if len(c.Instances()) != 0 || s.Pending() != 0 {
		t.Fatal("expected clear to drop instances and cancel the frame")
	}
	if c.SetText("", cascadeBounds) {
		t.Fatal("expected empty to empty to be unchanged")
	}
}
