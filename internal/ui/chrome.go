package ui

import (
	"time"

	"github.com/olivier-w/polytone/internal/anim"
	"github.com/olivier-w/polytone/internal/chrome"
)

// chromeLoop steps the chrome hue tween on the shared frame scheduler.
type chromeLoop struct {
	sched  anim.Scheduler
	tween  *chrome.Tween
	handle anim.FrameHandle
}

func newChromeLoop(s anim.Scheduler) *chromeLoop {
	return &chromeLoop{sched: s, tween: chrome.NewTween(FPS)}
}

func (l *chromeLoop) setHue(hue float64) {
	l.tween.SetTarget(hue)
	l.kick()
}

func (l *chromeLoop) reset() {
	l.stop()
	l.tween.Reset()
}

func (l *chromeLoop) kick() {
	l.stop()
	if l.tween.Settled() {
		return
	}
	l.handle = l.sched.RequestFrame(l.frame)
}

func (l *chromeLoop) stop() {
	if l.handle != 0 {
		l.sched.CancelFrame(l.handle)
		l.handle = 0
	}
}

func (l *chromeLoop) frame(time.Time) {
	l.handle = 0
	if l.tween.Step() {
		l.handle = l.sched.RequestFrame(l.frame)
	}
}

func (l *chromeLoop) palette() chrome.Palette { return l.tween.Palette() }
