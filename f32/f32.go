// SPDX-License-Identifier: Unlicense OR MIT

/*
Package f32 is a float32 implementation of package image's
Point and Rectangle, extended with the measurements used by
collision detection: centers, areas, corner sets and clamped
intersection areas.

The coordinate space has the origin in the top left
corner with the axes extending right and down.
*/
package f32

import "math"

// A Point is a two dimensional point.
type Point struct {
	X, Y float32
}

// A Rectangle contains the points (X, Y) where Min.X <= X < Max.X,
// Min.Y <= Y < Max.Y.
type Rectangle struct {
	Min, Max Point
}

// Pt returns the point (x, y).
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Rect returns the rectangle with corners (minx, miny) and (maxx, maxy).
func Rect(minx, miny, maxx, maxy float32) Rectangle {
	return Rectangle{Min: Point{X: minx, Y: miny}, Max: Point{X: maxx, Y: maxy}}
}

// Add return the point p+p2.
func (p Point) Add(p2 Point) Point {
	return Point{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Sub returns the vector p-p2.
func (p Point) Sub(p2 Point) Point {
	return Point{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dist returns the Euclidean distance between p and p2.
func Dist(p, p2 Point) float32 {
	dx := float64(p.X - p2.X)
	dy := float64(p.Y - p2.Y)
	return float32(math.Hypot(dx, dy))
}

// Size returns r's width and height.
func (r Rectangle) Size() Point {
	return Point{X: r.Dx(), Y: r.Dy()}
}

// Dx returns r's width.
func (r Rectangle) Dx() float32 {
	return r.Max.X - r.Min.X
}

// Dy returns r's Height.
func (r Rectangle) Dy() float32 {
	return r.Max.Y - r.Min.Y
}

// Center returns the midpoint of r.
func (r Rectangle) Center() Point {
	return Point{
		X: r.Min.X + r.Dx()/2,
		Y: r.Min.Y + r.Dy()/2,
	}
}

// Area returns r's area. The empty rectangle has area zero.
func (r Rectangle) Area() float32 {
	if r.Empty() {
		return 0
	}
	return r.Dx() * r.Dy()
}

// Corners returns r's four corners in top-left, top-right,
// bottom-left, bottom-right order.
func (r Rectangle) Corners() [4]Point {
	return [4]Point{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Min.X, Y: r.Max.Y},
		{X: r.Max.X, Y: r.Max.Y},
	}
}

// Contains reports whether r contains p. Points on the maximum
// edges are included, matching hit testing of measured boxes.
func (r Rectangle) Contains(p Point) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// Intersect returns the intersection of r and s.
func (r Rectangle) Intersect(s Rectangle) Rectangle {
	if r.Min.X < s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y < s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X > s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y > s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r
}

// Intersects reports whether r and s share a region of positive area.
func (r Rectangle) Intersects(s Rectangle) bool {
	return IntersectionArea(r, s) > 0
}

// IntersectionArea returns the area shared by r and s. Each axis is
// clamped at zero independently, so disjoint or degenerate rectangles
// yield zero rather than a negative area.
func IntersectionArea(r, s Rectangle) float32 {
	w := min32(r.Max.X, s.Max.X) - max32(r.Min.X, s.Min.X)
	if w <= 0 {
		return 0
	}
	h := min32(r.Max.Y, s.Max.Y) - max32(r.Min.Y, s.Min.Y)
	if h <= 0 {
		return 0
	}
	return w * h
}

// Union returns the union of r and s.
func (r Rectangle) Union(s Rectangle) Rectangle {
	if r.Min.X > s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y > s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X < s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y < s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r
}

// Canon returns the canonical version of r, where Min is to
// the upper left of Max.
func (r Rectangle) Canon() Rectangle {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Empty reports whether r represents the empty area.
func (r Rectangle) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Valid reports whether r is a usable measurement: non-negative
// extents and no NaN coordinates. Stale or failed measurements report
// invalid rather than producing spurious geometry.
func (r Rectangle) Valid() bool {
	if !(r.Dx() >= 0 && r.Dy() >= 0) {
		return false
	}
	for _, v := range [4]float32{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y} {
		if v != v {
			return false
		}
	}
	return true
}

// Add offsets r with the vector p.
func (r Rectangle) Add(p Point) Rectangle {
	return Rectangle{
		Point{r.Min.X + p.X, r.Min.Y + p.Y},
		Point{r.Max.X + p.X, r.Max.Y + p.Y},
	}
}

// Sub offsets r with the vector -p.
func (r Rectangle) Sub(p Point) Rectangle {
	return Rectangle{
		Point{r.Min.X - p.X, r.Min.Y - p.Y},
		Point{r.Max.X - p.X, r.Max.Y - p.Y},
	}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
