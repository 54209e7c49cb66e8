// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input defines the raw event model consumed by drag sensors.

The host platform layer translates its native pointer, touch and
keyboard events into Events; sensors reduce them to drag lifecycle
intents. Events carry the id of the registered draggable they target,
resolved by the host's own hit testing, because the engine never
measures layout itself.
*/
package input

import (
	"strings"
	"time"

	"dragui.org/f32"
)

// Event is a raw input event.
type Event struct {
	Kind   Kind
	Source Source
	// Target is the id of the registered draggable the event is
	// directed at: the element under the pointer for Press, the
	// focused element for key events. Empty when the event targets
	// no draggable.
	Target string
	// Position is the pointer position in the host's coordinate
	// space. Unused for key events.
	Position f32.Point
	// Time is when the event was received. The timestamp is
	// relative to an undefined base.
	Time time.Duration
	// Name is the key name for KeyDown and KeyUp events.
	Name Name
}

// Kind of an Event.
type Kind uint

// Source of an Event.
type Source uint8

// Name identifies a key. Printable keys are their rune; control keys
// use the symbolic names below.
type Name string

const (
	// Cancel is generated when the current gesture is interrupted
	// by the system, for example when the window loses focus.
	Cancel Kind = 1 << iota
	// Press of a pointer or touch point.
	Press
	// Release of a pointer or touch point.
	Release
	// Move of a pointer or touch point.
	Move
	// KeyDown of a keyboard key.
	KeyDown
	// KeyUp of a keyboard key.
	KeyUp
)

const (
	// Mouse generated event.
	Mouse Source = iota
	// Touch generated event.
	Touch
	// Keyboard generated event.
	Keyboard
)

const (
	NameSpace      Name = "Space"
	NameReturn     Name = "⏎"
	NameEscape     Name = "⎋"
	NameUpArrow    Name = "↑"
	NameDownArrow  Name = "↓"
	NameLeftArrow  Name = "←"
	NameRightArrow Name = "→"
)

func (k Kind) String() string {
	if k == Cancel {
		return "Cancel"
	}
	var buf strings.Builder
	for kk := Kind(1); kk > 0 && kk <= k; kk <<= 1 {
		if k&kk > 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString((k & kk).string())
		}
	}
	return buf.String()
}

func (k Kind) string() string {
	switch k {
	case Cancel:
		return "Cancel"
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	case KeyDown:
		return "KeyDown"
	case KeyUp:
		return "KeyUp"
	default:
		panic("unknown Kind")
	}
}

func (s Source) String() string {
	switch s {
	case Mouse:
		return "Mouse"
	case Touch:
		return "Touch"
	case Keyboard:
		return "Keyboard"
	default:
		panic("unknown Source")
	}
}
