// SPDX-License-Identifier: Unlicense OR MIT

package sensor

import (
	"dragui.org/f32"
	"dragui.org/io/input"
)

// pointerSlop is the default activation distance, in the host's
// coordinate units.
const pointerSlop = 3

// Pointer recognizes mouse drags. A press arms the sensor; the drag
// activates once the pointer travels at least Distance away from the
// press position, so plain clicks never start a drag.
type Pointer struct {
	// Distance is the minimum travel before activation. Zero means
	// the default slop.
	Distance float32

	h        Handlers
	armed    bool
	dragging bool
	target   string
	start    f32.Point
}

func (p *Pointer) Bind(h Handlers) { p.h = h }

func (p *Pointer) Active() bool { return p.dragging }

func (p *Pointer) Reset() {
	p.armed = false
	p.dragging = false
	p.target = ""
}

func (p *Pointer) Feed(e input.Event) {
	if e.Source != input.Mouse {
		return
	}
	switch e.Kind {
	case input.Press:
		if p.armed || p.dragging || e.Target == "" {
			break
		}
		p.armed = true
		p.target = e.Target
		p.start = e.Position
	case input.Move:
		if p.dragging {
			p.h.Move(e.Position.Sub(p.start))
			break
		}
		if !p.armed {
			break
		}
		slop := p.Distance
		if slop <= 0 {
			slop = pointerSlop
		}
		if f32.Dist(e.Position, p.start) < slop {
			break
		}
		if !p.h.Start(input.Mouse, p.target, p.start) {
			p.Reset()
			break
		}
		p.dragging = true
		p.h.Move(e.Position.Sub(p.start))
	case input.Release:
		if p.dragging {
			p.h.End()
		}
		p.Reset()
	case input.Cancel:
		if p.dragging {
			p.h.Cancel()
		}
		p.Reset()
	}
}
