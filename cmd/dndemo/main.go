// SPDX-License-Identifier: Unlicense OR MIT

// Command dndemo is a terminal host for the drag engine: draggable
// tokens, droppable zones, mouse and keyboard sensors, live
// accessibility announcements in the status line.
//
// Drag tokens with the mouse, or focus one with Tab and use
// space/arrows/escape. Press q to quit.
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"dragui.org/anim"
	"dragui.org/collision"
	"dragui.org/drag"
	"dragui.org/ease"
	"dragui.org/f32"
	"dragui.org/io/announce"
	"dragui.org/io/input"
	"dragui.org/modifier"
	"dragui.org/sensor"
)

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dndemo: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "dndemo: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	a := newApp(screen)
	a.run()
}

const (
	tokenW, tokenH = 9, 3
	zoneW, zoneH   = 20, 8
)

type app struct {
	screen tcell.Screen
	mgr    *drag.Manager
	styler *cellStyler

	tokens    map[string]f32.Rectangle // home rectangles
	order     []string
	zones     map[string]f32.Rectangle
	zoneOrder []string

	// mu guards session and status: OnChange also fires from the
	// settlement goroutine when a transition resolves.
	mu      sync.Mutex
	session drag.Session
	status  string

	focus     int
	mouseDown bool
	start     time.Time
}

func newApp(screen tcell.Screen) *app {
	a := &app{
		screen:    screen,
		styler:    newCellStyler(),
		tokens:    make(map[string]f32.Rectangle),
		zones:     make(map[string]f32.Rectangle),
		order:     []string{"alpha", "beta"},
		zoneOrder: []string{"backlog", "doing", "done"},
		status:    announce.Instructions,
		start:     time.Now(),
	}
	a.layout()

	a.mgr = drag.NewManager(drag.Config{
		Detector: collision.First(collision.PointerWithin, collision.RectIntersection),
		Modifiers: []modifier.Modifier{
			modifier.Restrict,
		},
		Measure: func(id string) (f32.Rectangle, bool) {
			if r, ok := a.tokens[id]; ok {
				return r, true
			}
			r, ok := a.zones[id]
			return r, ok
		},
		Container: func() (f32.Rectangle, bool) {
			w, h := a.screen.Size()
			return f32.Rect(0, 1, float32(w), float32(h)-1), true
		},
		Sensors: []sensor.Sensor{
			&sensor.Pointer{Distance: 1},
			&sensor.Keyboard{Step: 2},
		},
		Styler: a.styler,
		Drop:   anim.Transition{Duration: 150 * time.Millisecond, Easing: ease.Out},
		Return: anim.Transition{Duration: 250 * time.Millisecond, Easing: ease.Default},
		Announcer: announce.Func(func(msg string) {
			a.mu.Lock()
			a.status = msg
			a.mu.Unlock()
		}),
		OnEnd: func(e drag.EndEvent) {
			if e.Over != nil {
				a.dock(e.Active.ID, e.Over.ID)
			}
		},
		OnChange: func(s drag.Session) {
			a.mu.Lock()
			a.session = s
			a.mu.Unlock()
		},
	})
	for _, id := range a.order {
		if err := a.mgr.RegisterDraggable(drag.Item{ID: id, Type: "token"}); err != nil {
			panic(err)
		}
	}
	for _, id := range a.zoneOrder {
		if err := a.mgr.RegisterDroppable(drag.Target{ID: id, Type: "zone"}); err != nil {
			panic(err)
		}
	}
	return a
}

// layout recomputes zone and undocked token rectangles for the
// current screen size.
func (a *app) layout() {
	w, _ := a.screen.Size()
	gap := (float32(w) - 3*zoneW) / 4
	if gap < 1 {
		gap = 1
	}
	for i, id := range a.zoneOrder {
		x := gap + float32(i)*(zoneW+gap)
		a.zones[id] = f32.Rect(x, 3, x+zoneW, 3+zoneH)
	}
	for i, id := range a.order {
		if _, docked := a.tokens[id]; docked {
			continue
		}
		x := gap + float32(i)*(tokenW+2)
		a.tokens[id] = f32.Rect(x, 13, x+tokenW, 13+tokenH)
	}
}

// dock moves a dropped token's home into the receiving zone.
func (a *app) dock(tokenID, zoneID string) {
	zone := a.zones[zoneID]
	c := zone.Center()
	a.tokens[tokenID] = f32.Rect(
		c.X-tokenW/2, c.Y-tokenH/2,
		c.X+tokenW/2, c.Y+tokenH/2,
	)
}

func (a *app) run() {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			events <- a.screen.PollEvent()
		}
	}()
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !a.handle(ev) {
				return
			}
		case <-ticker.C:
			for _, id := range a.styler.finished(time.Now()) {
				a.mgr.TransitionEnd(id)
			}
			a.draw()
		}
	}
}

func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.layout()
		a.screen.Sync()
	case *tcell.EventMouse:
		x, y := ev.Position()
		pos := f32.Pt(float32(x), float32(y))
		pressed := ev.Buttons()&tcell.Button1 != 0
		switch {
		case pressed && !a.mouseDown:
			a.mouseDown = true
			a.feed(input.Event{Kind: input.Press, Source: input.Mouse, Target: a.tokenAt(pos), Position: pos})
		case pressed:
			a.feed(input.Event{Kind: input.Move, Source: input.Mouse, Position: pos})
		case a.mouseDown:
			a.mouseDown = false
			a.feed(input.Event{Kind: input.Release, Source: input.Mouse, Position: pos})
		}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return false
		case tcell.KeyTab:
			a.focus = (a.focus + 1) % len(a.order)
		case tcell.KeyEscape:
			a.key(input.NameEscape)
		case tcell.KeyEnter:
			a.key(input.NameReturn)
		case tcell.KeyUp:
			a.key(input.NameUpArrow)
		case tcell.KeyDown:
			a.key(input.NameDownArrow)
		case tcell.KeyLeft:
			a.key(input.NameLeftArrow)
		case tcell.KeyRight:
			a.key(input.NameRightArrow)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				a.key(input.NameSpace)
			}
		}
	}
	return true
}

func (a *app) key(name input.Name) {
	a.feed(input.Event{
		Kind:   input.KeyDown,
		Source: input.Keyboard,
		Target: a.order[a.focus],
		Name:   name,
	})
}

func (a *app) feed(e input.Event) {
	e.Time = time.Since(a.start)
	a.mgr.Feed(e)
}

func (a *app) tokenAt(p f32.Point) string {
	for _, id := range a.order {
		if a.tokens[id].Contains(p) {
			return id
		}
	}
	return ""
}

func (a *app) draw() {
	a.mu.Lock()
	session, status := a.session, a.status
	a.mu.Unlock()

	a.screen.Clear()
	w, h := a.screen.Size()

	title := "dndemo — drag with the mouse, or Tab + space/arrows/escape. q quits."
	puts(a.screen, 1, 0, title, tcell.StyleDefault.Bold(true))

	zoneStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	hotStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	for _, id := range a.zoneOrder {
		st := zoneStyle
		if session.OverID == id {
			st = hotStyle
		}
		drawBox(a.screen, a.zones[id], st)
		r := a.zones[id]
		puts(a.screen, int(r.Min.X)+2, int(r.Min.Y), " "+id+" ", st)
	}

	now := time.Now()
	for i, id := range a.order {
		r := a.tokens[id]
		st := tcell.StyleDefault.Foreground(tcell.ColorTeal)
		if i == a.focus {
			st = st.Underline(true)
		}
		if session.Active != nil && session.Active.ID == id {
			r = r.Add(session.Delta)
			st = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
		}
		if off, ok := a.styler.offset(id, now); ok {
			r = r.Add(off)
		}
		drawBox(a.screen, r, st)
		puts(a.screen, int(r.Min.X)+1, int(r.Center().Y), id, st)
	}

	puts(a.screen, 1, h-1, clip(status, w-2), tcell.StyleDefault.Dim(true))
	a.screen.Show()
}

func drawBox(s tcell.Screen, r f32.Rectangle, st tcell.Style) {
	x0, y0 := int(r.Min.X), int(r.Min.Y)
	x1, y1 := int(r.Max.X)-1, int(r.Max.Y)-1
	for x := x0; x <= x1; x++ {
		s.SetContent(x, y0, tcell.RuneHLine, nil, st)
		s.SetContent(x, y1, tcell.RuneHLine, nil, st)
	}
	for y := y0; y <= y1; y++ {
		s.SetContent(x0, y, tcell.RuneVLine, nil, st)
		s.SetContent(x1, y, tcell.RuneVLine, nil, st)
	}
	s.SetContent(x0, y0, tcell.RuneULCorner, nil, st)
	s.SetContent(x1, y0, tcell.RuneURCorner, nil, st)
	s.SetContent(x0, y1, tcell.RuneLLCorner, nil, st)
	s.SetContent(x1, y1, tcell.RuneLRCorner, nil, st)
}

func puts(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, st)
	}
}

func clip(s string, max int) string {
	if max < 0 {
		return ""
	}
	if len(s) > max {
		return s[:max]
	}
	return s
}
