// SPDX-License-Identifier: Unlicense OR MIT

package ease

import (
	"math"
	"testing"
)

func TestEndpoints(t *testing.T) {
	curves := map[string]Func{
		"Linear":  Linear,
		"Default": Default,
		"In":      In,
		"Out":     Out,
		"InOut":   InOut,
	}
	for name, f := range curves {
		if got := f(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := f(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestClampOutsideRange(t *testing.T) {
	if got := In(-0.5); got != 0 {
		t.Errorf("In(-0.5) = %v, want 0", got)
	}
	if got := In(1.5); got != 1 {
		t.Errorf("In(1.5) = %v, want 1", got)
	}
}

func TestLinearBezierIsIdentity(t *testing.T) {
	f := CubicBezier(1.0/3, 1.0/3, 2.0/3, 2.0/3)
	for _, x := range []float32{0.1, 0.25, 0.5, 0.75, 0.9} {
		if got := f(x); math.Abs(float64(got-x)) > 1e-3 {
			t.Errorf("identity bezier(%v) = %v", x, got)
		}
	}
}

func TestMonotonic(t *testing.T) {
	for name, f := range map[string]Func{"In": In, "Out": Out, "InOut": InOut, "Default": Default} {
		prev := float32(0)
		for i := 1; i <= 100; i++ {
			v := f(float32(i) / 100)
			if v < prev {
				t.Fatalf("%s not monotonic at %d: %v < %v", name, i, v, prev)
			}
			prev = v
		}
	}
}
