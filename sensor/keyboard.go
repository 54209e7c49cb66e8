// SPDX-License-Identifier: Unlicense OR MIT

package sensor

import (
	"dragui.org/f32"
	"dragui.org/io/input"
)

// keyboardStep is the default translation per arrow key press.
const keyboardStep = 25

// Keyboard recognizes keyboard-driven drags: the activation key picks
// up the focused draggable immediately, arrow keys move it in fixed
// steps, the activation key drops it and escape cancels. Step deltas
// flow through the same modifier and collision pipeline as pointer
// deltas.
type Keyboard struct {
	// Step is the translation applied per arrow key press. Zero
	// means the default.
	Step float32

	h        Handlers
	dragging bool
	delta    f32.Point
}

func (k *Keyboard) Bind(h Handlers) { k.h = h }

func (k *Keyboard) Active() bool { return k.dragging }

func (k *Keyboard) Reset() {
	k.dragging = false
	k.delta = f32.Point{}
}

func (k *Keyboard) Feed(e input.Event) {
	if e.Source != input.Keyboard || e.Kind != input.KeyDown {
		return
	}
	if !k.dragging {
		if e.Target == "" || !activationKey(e.Name) {
			return
		}
		if !k.h.Start(input.Keyboard, e.Target, e.Position) {
			return
		}
		k.dragging = true
		k.delta = f32.Point{}
		return
	}
	step := k.Step
	if step <= 0 {
		step = keyboardStep
	}
	switch e.Name {
	case input.NameUpArrow:
		k.delta.Y -= step
	case input.NameDownArrow:
		k.delta.Y += step
	case input.NameLeftArrow:
		k.delta.X -= step
	case input.NameRightArrow:
		k.delta.X += step
	case input.NameEscape:
		k.h.Cancel()
		k.Reset()
		return
	default:
		if activationKey(e.Name) {
			k.h.End()
			k.Reset()
		}
		return
	}
	k.h.Move(k.delta)
}

func activationKey(n input.Name) bool {
	return n == input.NameSpace || n == input.NameReturn
}
