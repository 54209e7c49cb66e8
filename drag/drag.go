// SPDX-License-Identifier: Unlicense OR MIT

/*
Package drag implements the manager that owns a drag session: it
coordinates sensors, runs the modifier pipeline and the collision
detector on every move tick, emits lifecycle events and
accessibility announcements, and hands committed or cancelled
sessions to the settlement engine.

A Manager is an explicitly constructed, explicitly scoped object;
hosts that want ambient access keep their own accessor. Exactly one
session is active at a time: activation attempts while a session is
in progress are refused, not queued.
*/
package drag

import (
	"errors"
	"sync"

	"golang.org/x/exp/slices"

	"dragui.org/anim"
	"dragui.org/collision"
	"dragui.org/f32"
	"dragui.org/io/announce"
	"dragui.org/io/input"
	"dragui.org/modifier"
	"dragui.org/sensor"
)

var (
	// ErrNoID reports registration with an empty id.
	ErrNoID = errors.New("drag: empty id")
	// ErrSelfTarget reports an id registered as both a draggable
	// and a droppable, which would let an item be dropped onto
	// itself.
	ErrSelfTarget = errors.New("drag: id registered as both draggable and droppable")
)

// Item is a registered draggable.
type Item struct {
	ID string
	// Type is an optional tag consulted by type-filtering
	// detectors and modifiers.
	Type string
	// Data is an arbitrary host payload carried through events.
	Data any
	// Disabled items never start a drag.
	Disabled bool
}

// Target is a registered droppable region.
type Target struct {
	ID   string
	Type string
	Data any
	// Disabled targets are excluded from collision candidacy.
	Disabled bool
}

// A MeasureFunc returns the current rectangle for a registered id,
// typically the element's on-screen bounding box. It reports false
// when the id cannot be measured. The engine never measures layout
// itself.
type MeasureFunc func(id string) (f32.Rectangle, bool)

// State of the manager's session machine.
type State uint8

const (
	Idle State = iota
	Dragging
	Committing
	Cancelling
)

// Config parametrizes a Manager. Measure is required; everything
// else has usable zero-value defaults.
type Config struct {
	// Detector resolves the over target each tick. Nil means
	// collision.RectIntersection.
	Detector collision.Detector
	// Modifiers correct the raw translation, applied in order.
	Modifiers []modifier.Modifier
	// Measure supplies rectangles for registered ids.
	Measure MeasureFunc
	// Container supplies the reference rectangle for bounds
	// modifiers, typically the window. May be nil.
	Container func() (f32.Rectangle, bool)
	// Sensors recognize drags from raw input. The manager binds
	// itself to each sensor at construction.
	Sensors []sensor.Sensor

	// Styler applies settlement styling; nil skips animations.
	Styler anim.Styler
	// Drop is the transition played when settling into a target.
	Drop anim.Transition
	// Return is the transition played back to the origin on cancel
	// or on release over no target.
	Return anim.Transition

	// Announcer receives accessibility announcements. May be nil.
	Announcer announce.Announcer
	// Messages overrides the announcement templates.
	Messages announce.Messages

	OnStart  func(StartEvent)
	OnMove   func(MoveEvent)
	OnOver   func(OverEvent)
	OnEnd    func(EndEvent)
	OnCancel func(CancelEvent)
	// OnChange broadcasts the session snapshot after every state
	// change and move tick.
	OnChange func(Session)
}

// Manager owns the current drag session.
type Manager struct {
	cfg    Config
	msgs   announce.Messages
	engine *anim.Engine

	mu         sync.Mutex
	draggables map[string]Item
	droppables map[string]Target
	order      []string

	state      State
	owner      sensor.Sensor
	active     Item
	activeRect f32.Rectangle
	hasRect    bool
	initial    f32.Point
	delta      f32.Point
	prev       f32.Point
	hasPrev    bool
	overID     string
}

// NewManager returns a Manager configured by cfg and binds it to
// cfg.Sensors.
func NewManager(cfg Config) *Manager {
	if cfg.Detector == nil {
		cfg.Detector = collision.RectIntersection
	}
	m := &Manager{
		cfg:        cfg,
		msgs:       cfg.Messages.WithDefaults(),
		engine:     anim.NewEngine(cfg.Styler),
		draggables: make(map[string]Item),
		droppables: make(map[string]Target),
	}
	for _, s := range cfg.Sensors {
		s.Bind(m.handlers(s))
	}
	return m
}

// RegisterDraggable registers or re-registers it. An id already
// registered as a droppable is rejected.
func (m *Manager) RegisterDraggable(it Item) error {
	if it.ID == "" {
		return ErrNoID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.droppables[it.ID]; ok {
		return ErrSelfTarget
	}
	m.draggables[it.ID] = it
	return nil
}

// UnregisterDraggable removes id. Removing the item of an active
// session invalidates the session, which cancels it.
func (m *Manager) UnregisterDraggable(id string) {
	m.mu.Lock()
	if _, ok := m.draggables[id]; !ok {
		m.mu.Unlock()
		return
	}
	delete(m.draggables, id)
	if m.state == Dragging && m.active.ID == id {
		m.cancelLocked()
		return // cancelLocked unlocks
	}
	m.mu.Unlock()
}

// RegisterDroppable registers or re-registers tg. An id already
// registered as a draggable is rejected.
func (m *Manager) RegisterDroppable(tg Target) error {
	if tg.ID == "" {
		return ErrNoID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.draggables[tg.ID]; ok {
		return ErrSelfTarget
	}
	if _, ok := m.droppables[tg.ID]; !ok {
		m.order = append(m.order, tg.ID)
	}
	m.droppables[tg.ID] = tg
	return nil
}

// UnregisterDroppable removes id. The change takes effect on the
// next move tick.
func (m *Manager) UnregisterDroppable(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.droppables[id]; !ok {
		return
	}
	delete(m.droppables, id)
	m.order = slices.DeleteFunc(m.order, func(s string) bool { return s == id })
}

// Feed routes a raw input event: to the sensor owning the active
// session, or to every sensor watching for activation when idle.
func (m *Manager) Feed(e input.Event) {
	m.mu.Lock()
	owner := m.owner
	m.mu.Unlock()
	if owner != nil {
		owner.Feed(e)
		return
	}
	for _, s := range m.cfg.Sensors {
		s.Feed(e)
	}
}

// Session returns a snapshot of the current session.
func (m *Manager) Session() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessionLocked()
}

// State reports the session machine state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// TransitionEnd reports that the host finished the settlement
// transition for id.
func (m *Manager) TransitionEnd(id string) {
	m.engine.TransitionEnd(id)
}

func (m *Manager) sessionLocked() Session {
	s := Session{
		Dragging: m.state == Dragging,
		OverID:   m.overID,
		Initial:  m.initial,
		Current:  m.initial.Add(m.delta),
		Delta:    m.delta,
	}
	if m.state != Idle {
		it := m.active
		s.Active = &it
	}
	return s
}

func (m *Manager) handlers(s sensor.Sensor) sensor.Handlers {
	return sensor.Handlers{
		Start: func(src input.Source, target string, pos f32.Point) bool {
			return m.start(s, target, pos)
		},
		Move:   m.move,
		End:    m.commit,
		Cancel: m.cancel,
	}
}

func (m *Manager) start(s sensor.Sensor, target string, pos f32.Point) bool {
	m.mu.Lock()
	if m.state != Idle {
		m.mu.Unlock()
		return false
	}
	it, ok := m.draggables[target]
	if !ok || it.Disabled {
		m.mu.Unlock()
		return false
	}
	m.state = Dragging
	m.owner = s
	m.active = it
	m.initial = pos
	m.delta = f32.Point{}
	m.hasPrev = false
	m.overID = ""
	m.activeRect, m.hasRect = f32.Rectangle{}, false
	if r, ok := m.measure(target); ok {
		m.activeRect, m.hasRect = r, true
	}
	session := m.sessionLocked()
	m.mu.Unlock()

	m.say(m.msgs.PickedUp(it.ID))
	if f := m.cfg.OnStart; f != nil {
		f(StartEvent{Active: it, Position: pos})
	}
	m.broadcast(session)
	return true
}

func (m *Manager) move(d f32.Point) {
	m.mu.Lock()
	if m.state != Dragging {
		m.mu.Unlock()
		return
	}
	ctx := modifier.Context{
		ActiveID:   m.active.ID,
		ActiveType: m.active.Type,
		Active:     m.activeRect,
		HasActive:  m.hasRect,
		Prev:       m.prev,
		HasPrev:    m.hasPrev,
	}
	if m.cfg.Container != nil {
		if r, ok := m.cfg.Container(); ok && r.Valid() {
			ctx.Container, ctx.HasContainer = r, true
		}
	}
	for _, mod := range m.cfg.Modifiers {
		d = mod(d, ctx)
	}
	m.prev, m.hasPrev = d, true
	m.delta = d

	over := ""
	if m.hasRect {
		if id, ok := m.cfg.Detector(m.active.ID, m.activeRect.Add(d), m.candidatesLocked()); ok {
			over = id
		}
	}
	overChanged := over != m.overID
	m.overID = over
	var overTarget *Target
	if overChanged && over != "" {
		tg := m.droppables[over]
		overTarget = &tg
	}
	it := m.active
	session := m.sessionLocked()
	m.mu.Unlock()

	// The over transition fires synchronously within the same tick
	// as the collision result change.
	if overChanged {
		m.say(m.msgs.DraggedOver(it.ID, over))
		if f := m.cfg.OnOver; f != nil {
			f(OverEvent{Active: it, Over: overTarget})
		}
	}
	if f := m.cfg.OnMove; f != nil {
		f(MoveEvent{Active: it, Delta: d, OverID: over})
	}
	m.broadcast(session)
}

// candidatesLocked measures the registered droppables in
// registration order. Disabled targets and degenerate measurements
// are excluded for this tick.
func (m *Manager) candidatesLocked() []collision.Candidate {
	cands := make([]collision.Candidate, 0, len(m.order))
	for _, id := range m.order {
		tg := m.droppables[id]
		if tg.Disabled {
			continue
		}
		r, ok := m.measure(id)
		if !ok {
			continue
		}
		cands = append(cands, collision.Candidate{ID: tg.ID, Type: tg.Type, Rect: r})
	}
	return cands
}

func (m *Manager) measure(id string) (f32.Rectangle, bool) {
	if m.cfg.Measure == nil {
		return f32.Rectangle{}, false
	}
	r, ok := m.cfg.Measure(id)
	if !ok || !r.Valid() || r.Empty() {
		return f32.Rectangle{}, false
	}
	return r, true
}

func (m *Manager) commit() {
	m.mu.Lock()
	if m.state != Dragging {
		m.mu.Unlock()
		return
	}
	m.state = Committing
	it := m.active
	delta := m.delta
	over := m.overID
	var overTarget *Target
	if over != "" {
		tg := m.droppables[over]
		overTarget = &tg
	}
	session := m.sessionLocked()
	m.mu.Unlock()

	m.say(m.msgs.Dropped(it.ID, over))
	if f := m.cfg.OnEnd; f != nil {
		f(EndEvent{Active: it, Over: overTarget, Delta: delta})
	}
	m.broadcast(session)

	var done <-chan struct{}
	if overTarget != nil {
		done = m.engine.Drop(it.ID, delta, m.cfg.Drop)
	} else {
		done = m.engine.Return(it.ID, delta, m.cfg.Return)
	}
	go func() {
		<-done
		m.finish()
	}()
}

func (m *Manager) cancel() {
	m.mu.Lock()
	if m.state != Dragging {
		m.mu.Unlock()
		return
	}
	m.cancelLocked()
}

// cancelLocked transitions out of Dragging and always plays the
// return-to-origin animation, never a settle-into-target one. It
// unlocks m.mu.
func (m *Manager) cancelLocked() {
	m.state = Cancelling
	m.hasPrev = false
	it := m.active
	delta := m.delta
	session := m.sessionLocked()
	m.mu.Unlock()

	m.say(m.msgs.Cancelled(it.ID))
	if f := m.cfg.OnCancel; f != nil {
		f(CancelEvent{Active: it})
	}
	m.broadcast(session)

	done := m.engine.Return(it.ID, delta, m.cfg.Return)
	go func() {
		<-done
		m.finish()
	}()
}

// finish returns the manager to Idle once settlement resolves.
func (m *Manager) finish() {
	m.mu.Lock()
	if m.state != Committing && m.state != Cancelling {
		m.mu.Unlock()
		return
	}
	m.state = Idle
	m.owner = nil
	m.active = Item{}
	m.activeRect, m.hasRect = f32.Rectangle{}, false
	m.initial = f32.Point{}
	m.delta = f32.Point{}
	m.prev, m.hasPrev = f32.Point{}, false
	m.overID = ""
	session := m.sessionLocked()
	m.mu.Unlock()

	m.broadcast(session)
}

func (m *Manager) say(msg string) {
	if m.cfg.Announcer != nil {
		m.cfg.Announcer.Announce(msg)
	}
}

func (m *Manager) broadcast(s Session) {
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(s)
	}
}

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Dragging:
		return "Dragging"
	case Committing:
		return "Committing"
	case Cancelling:
		return "Cancelling"
	default:
		panic("invalid State")
	}
}
