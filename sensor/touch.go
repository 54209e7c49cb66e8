// SPDX-License-Identifier: Unlicense OR MIT

package sensor

import (
	"sync"
	"time"

	"dragui.org/f32"
	"dragui.org/io/input"
)

// Long-press defaults.
const (
	touchDelay     = 500 * time.Millisecond
	touchTolerance = 10
)

// Touch recognizes touch drags with a long-press activation
// constraint: the finger must hold for Delay without straying more
// than Tolerance from the press position. Movement beyond the
// tolerance before the delay elapses abandons the recognition so
// scrolling is not mistaken for dragging.
//
// The hold timer fires on its own goroutine, so Touch serializes its
// state with a mutex.
type Touch struct {
	// Delay is the required hold duration. Zero means the default.
	Delay time.Duration
	// Tolerance is the allowed movement while holding. Zero means
	// the default.
	Tolerance float32

	mu       sync.Mutex
	h        Handlers
	armed    bool
	dragging bool
	target   string
	start    f32.Point
	last     f32.Point
	timer    *time.Timer
}

func (t *Touch) Bind(h Handlers) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.h = h
}

func (t *Touch) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dragging
}

func (t *Touch) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.reset()
}

func (t *Touch) reset() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.armed = false
	t.dragging = false
	t.target = ""
}

func (t *Touch) Feed(e input.Event) {
	if e.Source != input.Touch {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	switch e.Kind {
	case input.Press:
		if t.armed || t.dragging || e.Target == "" {
			break
		}
		t.armed = true
		t.target = e.Target
		t.start = e.Position
		t.last = e.Position
		delay := t.Delay
		if delay <= 0 {
			delay = touchDelay
		}
		t.timer = time.AfterFunc(delay, t.holdElapsed)
	case input.Move:
		t.last = e.Position
		if t.dragging {
			t.h.Move(e.Position.Sub(t.start))
			break
		}
		if !t.armed {
			break
		}
		tol := t.Tolerance
		if tol <= 0 {
			tol = touchTolerance
		}
		if f32.Dist(e.Position, t.start) > tol {
			t.reset()
		}
	case input.Release:
		if t.dragging {
			t.h.End()
		}
		t.reset()
	case input.Cancel:
		if t.dragging {
			t.h.Cancel()
		}
		t.reset()
	}
}

func (t *Touch) holdElapsed() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.armed || t.dragging {
		return
	}
	if !t.h.Start(input.Touch, t.target, t.start) {
		t.reset()
		return
	}
	t.dragging = true
	t.h.Move(t.last.Sub(t.start))
}
