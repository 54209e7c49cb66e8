// SPDX-License-Identifier: Unlicense OR MIT

package drag

import "dragui.org/f32"

// Event is the marker interface for drag lifecycle events.
type Event interface {
	ImplementsEvent()
}

// StartEvent reports a new drag session.
type StartEvent struct {
	Active Item
	// Position is where the activating input began.
	Position f32.Point
}

// MoveEvent reports a processed move tick.
type MoveEvent struct {
	Active Item
	// Delta is the corrected translation after the modifier
	// pipeline.
	Delta f32.Point
	// OverID is the current over target, empty when none.
	OverID string
}

// OverEvent reports that the resolved over target changed. Over is
// nil when the item moved off every target.
type OverEvent struct {
	Active Item
	Over   *Target
}

// EndEvent reports a committed drag with the final (active, over)
// pair. Over is nil when the item was released over no target.
type EndEvent struct {
	Active Item
	Over   *Target
	Delta  f32.Point
}

// CancelEvent reports an abandoned drag.
type CancelEvent struct {
	Active Item
}

func (StartEvent) ImplementsEvent()  {}
func (MoveEvent) ImplementsEvent()   {}
func (OverEvent) ImplementsEvent()   {}
func (EndEvent) ImplementsEvent()    {}
func (CancelEvent) ImplementsEvent() {}

// Session is a snapshot of the manager's drag state, broadcast to
// hosts for styling hooks decoupled from the event callbacks.
type Session struct {
	Dragging bool
	// Active is the dragged item, nil when idle.
	Active *Item
	// OverID is the resolved over target, empty when none.
	OverID string
	// Initial is where the activating input began.
	Initial f32.Point
	// Current is Initial displaced by Delta.
	Current f32.Point
	// Delta is the corrected cumulative translation.
	Delta f32.Point
}
