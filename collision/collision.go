// SPDX-License-Identifier: Unlicense OR MIT

/*
Package collision implements the strategies that resolve which drop
target, if any, a dragged rectangle is over.

Detectors are pure functions: given the same active rectangle and the
same candidate slice they return the same result, and ties are broken
by the first candidate encountered in slice order. A candidate whose
id equals the active id, or whose rectangle is not a valid
measurement, is never matched.
*/
package collision

import (
	"golang.org/x/exp/slices"

	"dragui.org/f32"
)

// A Candidate is a measured drop target considered for collision.
type Candidate struct {
	ID string
	// Type is an optional tag consulted by Filtered detectors.
	Type string
	Rect f32.Rectangle
}

// A Detector resolves the candidate the active rectangle is over.
// It returns false when no candidate satisfies its matching rule.
type Detector func(activeID string, active f32.Rectangle, candidates []Candidate) (string, bool)

// Axis selects the dominant direction for list-sorting detection.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// eligible reports whether c may be matched at all.
func eligible(activeID string, c Candidate) bool {
	return c.ID != activeID && c.Rect.Valid() && !c.Rect.Empty()
}

// RectIntersection matches the candidate sharing the largest
// intersection area with the active rectangle. Candidates with zero
// intersection are excluded.
func RectIntersection(activeID string, active f32.Rectangle, candidates []Candidate) (string, bool) {
	var (
		best     string
		bestArea float32
		found    bool
	)
	for _, c := range candidates {
		if !eligible(activeID, c) {
			continue
		}
		a := f32.IntersectionArea(active, c.Rect)
		if a <= 0 {
			continue
		}
		if !found || a > bestArea {
			best, bestArea, found = c.ID, a, true
		}
	}
	return best, found
}

// PointerWithin matches the first candidate whose rectangle contains
// the active rectangle's center.
func PointerWithin(activeID string, active f32.Rectangle, candidates []Candidate) (string, bool) {
	center := active.Center()
	for _, c := range candidates {
		if !eligible(activeID, c) {
			continue
		}
		if c.Rect.Contains(center) {
			return c.ID, true
		}
	}
	return "", false
}

// ClosestCenter matches the candidate whose center is nearest the
// active rectangle's center.
func ClosestCenter(activeID string, active f32.Rectangle, candidates []Candidate) (string, bool) {
	var (
		best     string
		bestDist float32
		found    bool
	)
	center := active.Center()
	for _, c := range candidates {
		if !eligible(activeID, c) {
			continue
		}
		d := f32.Dist(center, c.Rect.Center())
		if !found || d < bestDist {
			best, bestDist, found = c.ID, d, true
		}
	}
	return best, found
}

// ClosestCorners matches the candidate minimizing the distance
// between any corner of the active rectangle and any corner of the
// candidate, 16 pairs per candidate.
func ClosestCorners(activeID string, active f32.Rectangle, candidates []Candidate) (string, bool) {
	var (
		best     string
		bestDist float32
		found    bool
	)
	corners := active.Corners()
	for _, c := range candidates {
		if !eligible(activeID, c) {
			continue
		}
		cc := c.Rect.Corners()
		var d float32
		first := true
		for _, p := range corners {
			for _, q := range cc {
				pd := f32.Dist(p, q)
				if first || pd < d {
					d, first = pd, false
				}
			}
		}
		if !found || d < bestDist {
			best, bestDist, found = c.ID, d, true
		}
	}
	return best, found
}

// PercentageOverlap matches the candidate maximizing the fraction of
// the active rectangle's area covered by the candidate. Candidates
// with no overlap are excluded.
func PercentageOverlap(activeID string, active f32.Rectangle, candidates []Candidate) (string, bool) {
	var (
		best      string
		bestRatio float32
		found     bool
	)
	area := active.Area()
	if area <= 0 {
		return "", false
	}
	for _, c := range candidates {
		if !eligible(activeID, c) {
			continue
		}
		ratio := f32.IntersectionArea(active, c.Rect) / area
		if ratio <= 0 {
			continue
		}
		if !found || ratio > bestRatio {
			best, bestRatio, found = c.ID, ratio, true
		}
	}
	return best, found
}

// ClosestAxis returns a detector matching the candidate whose center
// is nearest the active center along the single dominant axis: y for
// vertical lists, x for horizontal ones.
func ClosestAxis(axis Axis) Detector {
	return func(activeID string, active f32.Rectangle, candidates []Candidate) (string, bool) {
		var (
			best     string
			bestDist float32
			found    bool
		)
		center := active.Center()
		for _, c := range candidates {
			if !eligible(activeID, c) {
				continue
			}
			var d float32
			if axis == Vertical {
				d = center.Y - c.Rect.Center().Y
			} else {
				d = center.X - c.Rect.Center().X
			}
			if d < 0 {
				d = -d
			}
			if !found || d < bestDist {
				best, bestDist, found = c.ID, d, true
			}
		}
		return best, found
	}
}

// Filtered wraps d, removing candidates whose Type is not in allow
// before delegating.
func Filtered(d Detector, allow ...string) Detector {
	return func(activeID string, active f32.Rectangle, candidates []Candidate) (string, bool) {
		kept := make([]Candidate, 0, len(candidates))
		for _, c := range candidates {
			if slices.Contains(allow, c.Type) {
				kept = append(kept, c)
			}
		}
		return d(activeID, active, kept)
	}
}

// First tries each detector in order and returns the first match,
// enabling fallback chains such as pointer containment with a
// closest-center fallback.
func First(detectors ...Detector) Detector {
	return func(activeID string, active f32.Rectangle, candidates []Candidate) (string, bool) {
		for _, d := range detectors {
			if id, ok := d(activeID, active, candidates); ok {
				return id, true
			}
		}
		return "", false
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
