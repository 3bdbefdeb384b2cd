package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/polytone/internal/anim"
)

// FPS is the display refresh rate frames are scheduled at.
const FPS = 60

const frameInterval = time.Second / FPS

// frameScheduler backs anim.Scheduler with tea.Tick. Canceled requests are
// dropped from the pending set, so a tick already in flight finds nothing to
// run for them. At most one tick is in flight.
type frameScheduler struct {
	*anim.ManualScheduler
	ticking bool
}

func newFrameScheduler() *frameScheduler {
	return &frameScheduler{ManualScheduler: anim.NewManualScheduler()}
}

// cmd returns the tick for pending frames, or nil if none are pending or a
// tick is already on its way.
func (s *frameScheduler) cmd() tea.Cmd {
	if s.ticking || s.Pending() == 0 {
		return nil
	}
	s.ticking = true
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// fire runs the frames pending when the tick arrived.
func (s *frameScheduler) fire(now time.Time) {
	s.ticking = false
	s.Step(now)
}
