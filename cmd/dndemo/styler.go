// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"sync"
	"time"

	"dragui.org/anim"
	"dragui.org/ease"
	"dragui.org/f32"
)

// cellStyler implements anim.Styler over per-id offset animations that
// the render loop samples every frame. The manager calls it from the
// commit and cancel paths; the render goroutine reads it, so every
// method locks.
type cellStyler struct {
	mu    sync.Mutex
	anims map[string]*cellAnim
}

type cellAnim struct {
	from, to  f32.Point
	start     time.Time
	tr        anim.Transition
	animated  bool
	signalled bool
}

func newCellStyler() *cellStyler {
	return &cellStyler{anims: make(map[string]*cellAnim)}
}

func (s *cellStyler) SetTransform(id string, offset f32.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.anims[id] = &cellAnim{from: offset, to: offset}
}

func (s *cellStyler) Animate(id string, offset f32.Point, tr anim.Transition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	from := f32.Point{}
	if a, ok := s.anims[id]; ok {
		from = a.at(time.Now())
	}
	s.anims[id] = &cellAnim{from: from, to: offset, start: time.Now(), tr: tr, animated: true}
}

func (s *cellStyler) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.anims, id)
}

// offset reports the current animated offset for id, if any.
func (s *cellStyler) offset(id string, now time.Time) (f32.Point, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.anims[id]
	if !ok {
		return f32.Point{}, false
	}
	return a.at(now), true
}

// finished reports the ids whose animations have run to completion
// since the last call. The caller forwards them to the manager as
// transition-end signals.
func (s *cellStyler) finished(now time.Time) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var done []string
	for id, a := range s.anims {
		if a.animated && !a.signalled && a.done(now) {
			a.signalled = true
			done = append(done, id)
		}
	}
	return done
}

func (a *cellAnim) done(now time.Time) bool {
	return now.Sub(a.start) >= a.tr.Duration
}

func (a *cellAnim) at(now time.Time) f32.Point {
	if !a.animated || a.tr.Duration <= 0 {
		return a.to
	}
	t := float32(now.Sub(a.start)) / float32(a.tr.Duration)
	fn := a.tr.Easing
	if fn == nil {
		fn = ease.Default
	}
	k := fn(t)
	return f32.Pt(
		a.from.X+(a.to.X-a.from.X)*k,
		a.from.Y+(a.to.Y-a.from.Y)*k,
	)
}
