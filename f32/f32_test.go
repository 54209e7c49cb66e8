// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"math"
	"testing"
)

func TestIntersectionArea(t *testing.T) {
	tests := []struct {
		name string
		r, s Rectangle
		want float32
	}{
		{"overlap", Rect(0, 0, 10, 10), Rect(5, 5, 15, 15), 25},
		{"disjoint", Rect(0, 0, 10, 10), Rect(20, 20, 30, 30), 0},
		{"touching edge", Rect(0, 0, 10, 10), Rect(10, 0, 20, 10), 0},
		{"contained", Rect(0, 0, 10, 10), Rect(2, 2, 4, 4), 4},
		{"identical", Rect(0, 0, 10, 10), Rect(0, 0, 10, 10), 100},
		{"x overlap only", Rect(0, 0, 10, 10), Rect(5, 20, 15, 30), 0},
	}
	for _, tc := range tests {
		if got := IntersectionArea(tc.r, tc.s); got != tc.want {
			t.Errorf("%s: IntersectionArea = %v, want %v", tc.name, got, tc.want)
		}
		// Intersection area is symmetric.
		if got := IntersectionArea(tc.s, tc.r); got != tc.want {
			t.Errorf("%s: reversed IntersectionArea = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIntersectionAreaNeverNegative(t *testing.T) {
	r := Rect(0, 0, 1, 1)
	s := Rect(100, 100, 101, 101)
	if got := IntersectionArea(r, s); got < 0 {
		t.Fatalf("IntersectionArea = %v, want >= 0", got)
	}
}

func TestCenter(t *testing.T) {
	r := Rect(10, 20, 30, 60)
	if got, want := r.Center(), Pt(20, 40); got != want {
		t.Errorf("Center = %v, want %v", got, want)
	}
}

func TestArea(t *testing.T) {
	if got, want := Rect(0, 0, 10, 10).Area(), float32(100); got != want {
		t.Errorf("Area = %v, want %v", got, want)
	}
	if got := (Rectangle{}).Area(); got != 0 {
		t.Errorf("empty Area = %v, want 0", got)
	}
}

func TestDist(t *testing.T) {
	if got, want := Dist(Pt(0, 0), Pt(3, 4)), float32(5); got != want {
		t.Errorf("Dist = %v, want %v", got, want)
	}
	if got := Dist(Pt(7, 7), Pt(7, 7)); got != 0 {
		t.Errorf("Dist of identical points = %v, want 0", got)
	}
}

func TestCorners(t *testing.T) {
	got := Rect(1, 2, 3, 4).Corners()
	want := [4]Point{{1, 2}, {3, 2}, {1, 4}, {3, 4}}
	if got != want {
		t.Errorf("Corners = %v, want %v", got, want)
	}
}

func TestContains(t *testing.T) {
	r := Rect(0, 0, 10, 10)
	for _, p := range []Point{{0, 0}, {10, 10}, {5, 5}, {10, 0}} {
		if !r.Contains(p) {
			t.Errorf("Contains(%v) = false, want true", p)
		}
	}
	for _, p := range []Point{{-1, 5}, {5, 11}, {10.5, 10}} {
		if r.Contains(p) {
			t.Errorf("Contains(%v) = true, want false", p)
		}
	}
}

func TestValid(t *testing.T) {
	nan := float32(math.NaN())
	tests := []struct {
		name string
		r    Rectangle
		want bool
	}{
		{"well formed", Rect(0, 0, 10, 10), true},
		{"point", Rect(5, 5, 5, 5), true},
		{"negative width", Rect(10, 0, 0, 10), false},
		{"nan", Rect(nan, 0, 10, 10), false},
	}
	for _, tc := range tests {
		if got := tc.r.Valid(); got != tc.want {
			t.Errorf("%s: Valid = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIntersects(t *testing.T) {
	a := Rect(0, 0, 10, 10)
	if !a.Intersects(Rect(5, 5, 15, 15)) {
		t.Error("overlapping rectangles do not intersect")
	}
	if a.Intersects(Rect(10, 0, 20, 10)) {
		t.Error("edge-touching rectangles intersect")
	}
}
