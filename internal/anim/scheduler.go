// Package anim steps shape descriptors frame by frame.
package anim

import (
	"sort"
	"time"
)

// FrameFunc runs once on the next display frame.
type FrameFunc func(now time.Time)

// FrameHandle identifies a requested frame. The zero handle is never issued.
type FrameHandle uint64

// Scheduler hands out display frames. A controller keeps at most one
// outstanding handle and cancels it before requesting another.
type Scheduler interface {
	RequestFrame(fn FrameFunc) FrameHandle
	CancelFrame(h FrameHandle)
}

// ManualScheduler runs frames only when Step is called.
type ManualScheduler struct {
	next    FrameHandle
	pending map[FrameHandle]FrameFunc
}

// NewManualScheduler creates an empty ManualScheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{pending: make(map[FrameHandle]FrameFunc)}
}

func (s *ManualScheduler) RequestFrame(fn FrameFunc) FrameHandle {
	s.next++
	s.pending[s.next] = fn
	return s.next
}

func (s *ManualScheduler) CancelFrame(h FrameHandle) {
	delete(s.pending, h)
}

// Pending returns the number of outstanding frame requests.
func (s *ManualScheduler) Pending() int { return len(s.pending) }

// Step runs every callback that was pending when Step was called, oldest
// first. Frames requested from inside a callback wait for the next Step.
func (s *ManualScheduler) Step(now time.Time) int {
	handles := make([]FrameHandle, 0, len(s.pending))
	for h := range s.pending {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	ran := 0
	for _, h := range handles {
		fn, ok := s.pending[h]
		if !ok {
			continue
		}
		delete(s.pending, h)
		fn(now)
		ran++
	}
	return ran
}

// Run steps frames at the given interval until nothing is pending or max
// frames have run, and returns the number of frames stepped.
func (s *ManualScheduler) Run(start time.Time, interval time.Duration, max int) int {
	now := start
	frames := 0
	for frames < max && s.Pending() > 0 {
		now = now.Add(interval)
		s.Step(now)
		frames++
	}
	return frames
}
