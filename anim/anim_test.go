// SPDX-License-Identifier: Unlicense OR MIT

package anim

import (
	"sync"
	"testing"
	"time"

	"dragui.org/f32"
)

// stubStyler records the style operations applied by the engine.
type stubStyler struct {
	mu         sync.Mutex
	transforms []f32.Point
	animates   []f32.Point
	cleared    []string
}

func (s *stubStyler) SetTransform(id string, offset f32.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transforms = append(s.transforms, offset)
}

func (s *stubStyler) Animate(id string, offset f32.Point, t Transition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.animates = append(s.animates, offset)
}

func (s *stubStyler) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleared = append(s.cleared, id)
}

func (s *stubStyler) touched() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transforms)+len(s.animates)+len(s.cleared) > 0
}

func await(t *testing.T, ch <-chan struct{}, within time.Duration) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(within):
		t.Fatal("settlement did not resolve in time")
	}
}

func TestFLIPZeroDeltaShortCircuit(t *testing.T) {
	styler := &stubStyler{}
	e := NewEngine(styler)
	r := f32.Rect(10, 10, 50, 50)
	ch := e.FLIP("item", r, r, Transition{Duration: time.Second})
	select {
	case <-ch:
	default:
		t.Fatal("zero-delta FLIP did not resolve immediately")
	}
	if styler.touched() {
		t.Fatal("zero-delta FLIP mutated styles")
	}
}

func TestFLIPInverseTransform(t *testing.T) {
	styler := &stubStyler{}
	e := NewEngine(styler)
	before := f32.Rect(0, 0, 40, 40)
	after := f32.Rect(0, 100, 40, 140)
	ch := e.FLIP("item", before, after, Transition{Duration: 10 * time.Millisecond})

	styler.mu.Lock()
	if len(styler.transforms) != 1 || styler.transforms[0] != f32.Pt(0, -100) {
		t.Fatalf("inverse transform = %v, want [(0,-100)]", styler.transforms)
	}
	if len(styler.animates) != 1 || styler.animates[0] != (f32.Point{}) {
		t.Fatalf("animate target = %v, want identity", styler.animates)
	}
	styler.mu.Unlock()

	await(t, ch, time.Second)
}

func TestTransitionEndResolves(t *testing.T) {
	styler := &stubStyler{}
	e := NewEngine(styler)
	ch := e.Drop("item", f32.Pt(10, 10), Transition{Duration: time.Hour})
	select {
	case <-ch:
		t.Fatal("settlement resolved before the transition ended")
	default:
	}
	e.TransitionEnd("item")
	await(t, ch, time.Second)

	styler.mu.Lock()
	defer styler.mu.Unlock()
	if len(styler.cleared) != 1 || styler.cleared[0] != "item" {
		t.Fatalf("cleared = %v, want [item]", styler.cleared)
	}
}

func TestFallbackTimerResolves(t *testing.T) {
	styler := &stubStyler{}
	e := NewEngine(styler)
	// The host never reports TransitionEnd; the fallback must fire.
	ch := e.Return("item", f32.Pt(10, 10), Transition{Duration: 10 * time.Millisecond})
	await(t, ch, time.Second)
}

func TestZeroDurationSkipsAnimation(t *testing.T) {
	styler := &stubStyler{}
	e := NewEngine(styler)
	ch := e.Return("item", f32.Pt(10, 10), Transition{})
	select {
	case <-ch:
	default:
		t.Fatal("zero-duration settlement did not resolve immediately")
	}
	if styler.touched() {
		t.Fatal("zero-duration settlement mutated styles")
	}
}

func TestNilStylerResolvesImmediately(t *testing.T) {
	e := NewEngine(nil)
	ch := e.Drop("item", f32.Pt(1, 1), Transition{Duration: time.Second})
	select {
	case <-ch:
	default:
		t.Fatal("nil-styler settlement did not resolve immediately")
	}
}

func TestLateTransitionEndIgnored(t *testing.T) {
	styler := &stubStyler{}
	e := NewEngine(styler)
	ch := e.Drop("item", f32.Pt(1, 1), Transition{Duration: 5 * time.Millisecond})
	await(t, ch, time.Second)
	// A transition-end signal arriving after the fallback resolved
	// must be a no-op.
	e.TransitionEnd("item")
}

func TestInterruptedSettlementResolvesPrevious(t *testing.T) {
	styler := &stubStyler{}
	e := NewEngine(styler)
	first := e.Drop("item", f32.Pt(10, 10), Transition{Duration: time.Hour})
	second := e.Return("item", f32.Pt(20, 20), Transition{Duration: 10 * time.Millisecond})
	await(t, first, time.Second)
	await(t, second, time.Second)
}
