// SPDX-License-Identifier: Unlicense OR MIT

/*
Package sensor implements the input adapters that recognize drag
gestures from raw input events.

Sensors accept low level Events from the host and detect drag
lifecycle intents once their activation constraint is satisfied: a
minimum travel distance for mouse pointers, a hold delay with a
movement tolerance for touch, and an immediate key toggle for
keyboards. A sensor drives at most one drag at a time, and the drag
manager refuses a Start while another sensor owns the session.
*/
package sensor

import (
	"dragui.org/f32"
	"dragui.org/io/input"
)

// Handlers are the drag lifecycle intents a sensor reports to the
// drag manager.
type Handlers struct {
	// Start requests a session for the draggable identified by
	// target. It reports whether the session was granted; a refused
	// sensor must reset itself without retrying.
	Start func(src input.Source, target string, pos f32.Point) bool
	// Move reports the cumulative translation since activation.
	Move func(delta f32.Point)
	// End commits the drag.
	End func()
	// Cancel abandons the drag.
	Cancel func()
}

// A Sensor reduces raw input events to drag intents.
type Sensor interface {
	// Bind attaches the manager's handlers. It must be called
	// before Feed.
	Bind(h Handlers)
	// Feed processes a raw event. Events from sources the sensor
	// does not recognize are ignored.
	Feed(e input.Event)
	// Active reports whether the sensor currently drives a drag.
	Active() bool
	// Reset detaches the sensor from any in-progress recognition
	// without reporting further intents.
	Reset()
}
