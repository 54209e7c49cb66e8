// SPDX-License-Identifier: Unlicense OR MIT

/*
Package anim drives the settlement phase of a drag: drop animations
into a target, return-to-origin animations after a cancel, and FLIP
animations for siblings that reflow after a drop.

The engine computes what to animate; the host applies the visual
styling through a Styler and reports completion with TransitionEnd.
Every settlement also arms a fallback timer slightly longer than the
declared duration, so the completion channel always closes even when
the host's transition signal is suppressed, for example because the
element was removed mid-flight.
*/
package anim

import (
	"sync"
	"time"

	"dragui.org/ease"
	"dragui.org/f32"
)

// fallbackSlack is added to a transition's duration before the
// fallback timer fires.
const fallbackSlack = 50 * time.Millisecond

// A Transition describes a timed, eased transform animation.
type Transition struct {
	Duration time.Duration
	// Easing defaults to ease.Default when nil.
	Easing ease.Func
}

// A Styler applies transient drag styling on the host's elements.
// All offsets are relative to the element's natural position.
type Styler interface {
	// SetTransform instantly places id at offset.
	SetTransform(id string, offset f32.Point)
	// Animate transitions id's transform from its current offset to
	// offset over t. The host reports completion by calling
	// Engine.TransitionEnd(id).
	Animate(id string, offset f32.Point, t Transition)
	// Clear removes any transform or transition left on id.
	Clear(id string)
}

// Engine plays settlement animations. The zero value is not usable;
// construct with NewEngine.
type Engine struct {
	styler Styler

	mu      sync.Mutex
	pending map[string]*settlement
}

type settlement struct {
	done  chan struct{}
	timer *time.Timer
}

// NewEngine returns an Engine applying styles through styler. A nil
// styler is allowed and resolves every settlement immediately, which
// is how headless hosts request zero-duration settlement.
func NewEngine(styler Styler) *Engine {
	return &Engine{
		styler:  styler,
		pending: make(map[string]*settlement),
	}
}

// Drop animates id from the released offset back to its natural
// transform inside the target it settled in. The returned channel
// closes when the transition ends or the fallback timer fires.
func (e *Engine) Drop(id string, from f32.Point, t Transition) <-chan struct{} {
	return e.play(id, from, t)
}

// Return animates id from the released offset back to its origin
// after a cancel or a drop over no target. The contract is the same
// as Drop's.
func (e *Engine) Return(id string, from f32.Point, t Transition) <-chan struct{} {
	return e.play(id, from, t)
}

// FLIP plays a First-Last-Invert-Play animation for an element whose
// rectangle changed from before to after: the element is placed at
// the inverse offset and animated to identity. Identical rectangles
// short-circuit: the channel is closed immediately and no styles are
// touched.
func (e *Engine) FLIP(id string, before, after f32.Rectangle, t Transition) <-chan struct{} {
	delta := before.Min.Sub(after.Min)
	if delta == (f32.Point{}) {
		return closedChan
	}
	return e.play(id, delta, t)
}

// TransitionEnd reports that the host finished the transition for
// id. Unknown ids are ignored, so late signals after a fallback
// resolution are harmless.
func (e *Engine) TransitionEnd(id string) {
	e.mu.Lock()
	s, ok := e.pending[id]
	if ok {
		delete(e.pending, id)
	}
	e.mu.Unlock()
	if ok {
		e.finish(id, s)
	}
}

func (e *Engine) play(id string, from f32.Point, t Transition) <-chan struct{} {
	if e.styler == nil || t.Duration <= 0 {
		return closedChan
	}
	if t.Easing == nil {
		t.Easing = ease.Default
	}

	e.mu.Lock()
	// A settlement already in flight for the same id resolves now;
	// the element cannot play two transitions at once.
	prev, interrupted := e.pending[id]
	if interrupted {
		delete(e.pending, id)
	}
	s := &settlement{done: make(chan struct{})}
	s.timer = time.AfterFunc(t.Duration+fallbackSlack, func() {
		e.TransitionEnd(id)
	})
	e.pending[id] = s
	e.mu.Unlock()

	if interrupted {
		e.finish(id, prev)
	}
	e.styler.SetTransform(id, from)
	e.styler.Animate(id, f32.Point{}, t)
	return s.done
}

func (e *Engine) finish(id string, s *settlement) {
	s.timer.Stop()
	e.styler.Clear(id)
	close(s.done)
}

var closedChan = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()
