// SPDX-License-Identifier: Unlicense OR MIT

/*
Package announce is the accessibility channel of the drag engine.

The drag manager narrates session transitions through an Announcer so
assistive technology can follow pointer-driven interactions. Message
templates are host-overridable; the zero Messages value uses the
defaults below.
*/
package announce

import "fmt"

// An Announcer receives screen-reader announcements. Implementations
// typically forward to an ARIA live region or the platform
// accessibility API.
type Announcer interface {
	Announce(msg string)
}

// Instructions is the static usage text surfaced to assistive
// technology when a draggable item receives focus.
const Instructions = "To pick up a draggable item, press space or enter. " +
	"While dragging, use the arrow keys to move the item. " +
	"Press space or enter again to drop the item in its new position, " +
	"or press escape to cancel."

// Messages produces the announcement for each session transition.
// Nil fields fall back to the default templates.
type Messages struct {
	// PickedUp announces drag start.
	PickedUp func(activeID string) string
	// DraggedOver announces the over-target change. overID is empty
	// when the item moved off every target.
	DraggedOver func(activeID, overID string) string
	// Dropped announces commit. overID is empty when the item was
	// released over no target.
	Dropped func(activeID, overID string) string
	// Cancelled announces drag cancellation.
	Cancelled func(activeID string) string
}

// WithDefaults returns m with nil fields replaced by the default
// templates.
func (m Messages) WithDefaults() Messages {
	if m.PickedUp == nil {
		m.PickedUp = func(activeID string) string {
			return fmt.Sprintf("Picked up draggable item %s.", activeID)
		}
	}
	if m.DraggedOver == nil {
		m.DraggedOver = func(activeID, overID string) string {
			if overID == "" {
				return fmt.Sprintf("Draggable item %s is no longer over a droppable area.", activeID)
			}
			return fmt.Sprintf("Draggable item %s was moved over droppable area %s.", activeID, overID)
		}
	}
	if m.Dropped == nil {
		m.Dropped = func(activeID, overID string) string {
			if overID == "" {
				return fmt.Sprintf("Draggable item %s was dropped.", activeID)
			}
			return fmt.Sprintf("Draggable item %s was dropped over droppable area %s.", activeID, overID)
		}
	}
	if m.Cancelled == nil {
		m.Cancelled = func(activeID string) string {
			return fmt.Sprintf("Dragging was cancelled. Draggable item %s was dropped.", activeID)
		}
	}
	return m
}

// Func adapts a function to the Announcer interface.
type Func func(msg string)

func (f Func) Announce(msg string) { f(msg) }
