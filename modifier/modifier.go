// SPDX-License-Identifier: Unlicense OR MIT

/*
Package modifier implements composable corrections applied to a drag
translation before collision detection: axis locks, bounds clamping,
grid snapping, momentum and magnitude easing.

Modifiers are pure functions of the proposed translation and the
geometry in Context. A modifier whose reference geometry is missing
passes the translation through unchanged rather than failing; per-tick
state such as the momentum history is threaded through Context by the
drag manager instead of being captured in shared closures.
*/
package modifier

import (
	"math"

	"golang.org/x/exp/slices"

	"dragui.org/ease"
	"dragui.org/f32"
)

// Context carries the geometry a modifier may consult. The zero
// value is valid: absent rectangles simply disable the modifiers
// that need them.
type Context struct {
	// ActiveID and ActiveType identify the dragged item.
	ActiveID   string
	ActiveType string
	// Active is the dragged item's rectangle as measured at drag
	// start, before any translation.
	Active    f32.Rectangle
	HasActive bool
	// Container is the reference rectangle for bounds restriction,
	// typically the window or the scroll parent.
	Container    f32.Rectangle
	HasContainer bool
	// Prev is the corrected translation produced by the previous
	// move tick of the same session. It is maintained by the drag
	// manager and reset between sessions.
	Prev    f32.Point
	HasPrev bool
}

// A Modifier maps a proposed translation to a corrected one.
type Modifier func(t f32.Point, ctx Context) f32.Point

// Axis selects the permitted movement direction for RestrictAxis.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Compose applies modifiers left to right, each consuming the
// previous one's output.
func Compose(mods ...Modifier) Modifier {
	return func(t f32.Point, ctx Context) f32.Point {
		for _, m := range mods {
			t = m(t, ctx)
		}
		return t
	}
}

// RestrictAxis zeroes the translation component perpendicular to
// axis.
func RestrictAxis(axis Axis) Modifier {
	return func(t f32.Point, ctx Context) f32.Point {
		if axis == Vertical {
			return f32.Point{Y: t.Y}
		}
		return f32.Point{X: t.X}
	}
}

// Restrict clamps the translation so the active rectangle stays
// inside ctx.Container. Without a measured container or active
// rectangle it is the identity.
func Restrict(t f32.Point, ctx Context) f32.Point {
	if !ctx.HasContainer || !ctx.HasActive {
		return t
	}
	return clampTo(t, ctx.Active, ctx.Container)
}

// RestrictWithin clamps the translation so the active rectangle stays
// inside bounds, regardless of ctx.Container.
func RestrictWithin(bounds f32.Rectangle) Modifier {
	return func(t f32.Point, ctx Context) f32.Point {
		if !ctx.HasActive || !bounds.Valid() {
			return t
		}
		return clampTo(t, ctx.Active, bounds)
	}
}

// clampTo limits each axis of t so active.Add(t) lies within ref.
// When active is larger than ref the translation pins active to
// ref's near edge.
func clampTo(t f32.Point, active, ref f32.Rectangle) f32.Point {
	minX := ref.Min.X - active.Min.X
	maxX := ref.Max.X - active.Max.X
	minY := ref.Min.Y - active.Min.Y
	maxY := ref.Max.Y - active.Max.Y
	return f32.Point{
		X: clamp(t.X, minX, maxX),
		Y: clamp(t.Y, minY, maxY),
	}
}

func clamp(v, lo, hi float32) float32 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SnapGrid rounds each translation axis to the nearest multiple of
// the grid size. A non-positive size leaves that axis untouched.
func SnapGrid(size f32.Point) Modifier {
	return func(t f32.Point, ctx Context) f32.Point {
		if size.X > 0 {
			t.X = float32(math.Round(float64(t.X/size.X))) * size.X
		}
		if size.Y > 0 {
			t.Y = float32(math.Round(float64(t.Y/size.Y))) * size.Y
		}
		return t
	}
}

// SnapCenter aligns the active rectangle's projected center with the
// nearest of the supplied centers when it comes within threshold
// distance; otherwise the translation passes through unchanged.
func SnapCenter(threshold float32, centers func() []f32.Point) Modifier {
	return func(t f32.Point, ctx Context) f32.Point {
		if !ctx.HasActive || centers == nil {
			return t
		}
		projected := ctx.Active.Center().Add(t)
		var (
			best  f32.Point
			bestD float32
			found bool
		)
		for _, c := range centers() {
			d := f32.Dist(projected, c)
			if d > threshold {
				continue
			}
			if !found || d < bestD {
				best, bestD, found = c, d, true
			}
		}
		if !found {
			return t
		}
		return t.Add(best.Sub(projected))
	}
}

// Scale multiplies both translation axes by s.
func Scale(s float32) Modifier {
	return func(t f32.Point, ctx Context) f32.Point {
		return t.Mul(s)
	}
}

// Invert negates both translation axes.
var Invert = Scale(-1)

// Momentum adds a fraction of the frame-to-frame translation delta,
// simulating inertia. The previous translation is read from
// ctx.Prev, so the modifier itself is stateless and safe to share
// between managers.
func Momentum(strength float32) Modifier {
	return func(t f32.Point, ctx Context) f32.Point {
		if !ctx.HasPrev {
			return t
		}
		return t.Add(t.Sub(ctx.Prev).Mul(strength))
	}
}

// EaseMagnitude rescales the translation's magnitude through fn
// evaluated at distance/maxDist, preserving direction. Displacements
// beyond maxDist are pinned to fn(1)*maxDist.
func EaseMagnitude(maxDist float32, fn ease.Func) Modifier {
	return func(t f32.Point, ctx Context) f32.Point {
		if maxDist <= 0 || fn == nil {
			return t
		}
		mag := f32.Dist(f32.Point{}, t)
		if mag == 0 {
			return t
		}
		norm := mag / maxDist
		if norm > 1 {
			norm = 1
		}
		eased := fn(norm) * maxDist
		return t.Mul(eased / mag)
	}
}

// When skips m unless pred holds for the incoming translation.
func When(pred func(t f32.Point, ctx Context) bool, m Modifier) Modifier {
	return func(t f32.Point, ctx Context) f32.Point {
		if pred == nil || !pred(t, ctx) {
			return t
		}
		return m(t, ctx)
	}
}

// ForTypes skips m unless the active item's type tag is in allow.
func ForTypes(m Modifier, allow ...string) Modifier {
	return func(t f32.Point, ctx Context) f32.Point {
		if !slices.Contains(allow, ctx.ActiveType) {
			return t
		}
		return m(t, ctx)
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("invalid Axis")
	}
}
