// SPDX-License-Identifier: Unlicense OR MIT

// Package ease provides the timing curves used by drop and layout
// animations and by magnitude-easing modifiers. The named curves
// match the CSS transition-timing-function keywords.
package ease

// A Func maps normalized time in [0, 1] to normalized progress.
// Implementations must satisfy f(0) == 0 and f(1) == 1.
type Func func(t float32) float32

// Linear is the identity curve.
func Linear(t float32) float32 { return t }

// Default is the CSS "ease" curve.
var Default = CubicBezier(0.25, 0.1, 0.25, 1)

// In is the CSS "ease-in" curve.
var In = CubicBezier(0.42, 0, 1, 1)

// Out is the CSS "ease-out" curve.
var Out = CubicBezier(0, 0, 0.58, 1)

// InOut is the CSS "ease-in-out" curve.
var InOut = CubicBezier(0.42, 0, 0.58, 1)

// CubicBezier returns the curve through (0,0), (x1,y1), (x2,y2),
// (1,1), evaluated by solving the parametric x polynomial for t with
// Newton-Raphson and a bisection fallback.
func CubicBezier(x1, y1, x2, y2 float32) Func {
	cx := float64(3 * x1)
	bx := float64(3*(x2-x1)) - cx
	ax := 1 - cx - bx
	cy := float64(3 * y1)
	by := float64(3*(y2-y1)) - cy
	ay := 1 - cy - by

	sampleX := func(t float64) float64 {
		return ((ax*t+bx)*t + cx) * t
	}
	sampleY := func(t float64) float64 {
		return ((ay*t+by)*t + cy) * t
	}
	derivX := func(t float64) float64 {
		return (3*ax*t+2*bx)*t + cx
	}
	solve := func(x float64) float64 {
		t := x
		for i := 0; i < 8; i++ {
			dx := sampleX(t) - x
			if dx < 1e-6 && dx > -1e-6 {
				return t
			}
			d := derivX(t)
			if d < 1e-6 && d > -1e-6 {
				break
			}
			t -= dx / d
		}
		// Newton failed to converge; bisect.
		lo, hi := 0.0, 1.0
		t = x
		for hi-lo > 1e-6 {
			if sampleX(t) < x {
				lo = t
			} else {
				hi = t
			}
			t = (lo + hi) / 2
		}
		return t
	}
	return func(t float32) float32 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return float32(sampleY(solve(float64(t))))
	}
}
