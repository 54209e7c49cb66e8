// SPDX-License-Identifier: Unlicense OR MIT

package collision

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"dragui.org/f32"
)

func TestDetectorProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1234)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	coord := gen.Float32Range(-500, 500)
	size := gen.Float32Range(1, 200)

	genRect := gopter.CombineGens(coord, coord, size, size).Map(func(vs []interface{}) f32.Rectangle {
		x := vs[0].(float32)
		y := vs[1].(float32)
		w := vs[2].(float32)
		h := vs[3].(float32)
		return f32.Rect(x, y, x+w, y+h)
	})
	genCands := gen.SliceOf(genRect).Map(func(rs []f32.Rectangle) []Candidate {
		cs := make([]Candidate, len(rs))
		for i, r := range rs {
			cs[i] = Candidate{ID: string(rune('a' + i%26)), Rect: r}
		}
		return cs
	})

	detectors := map[string]Detector{
		"RectIntersection":  RectIntersection,
		"PointerWithin":     PointerWithin,
		"ClosestCenter":     ClosestCenter,
		"ClosestCorners":    ClosestCorners,
		"PercentageOverlap": PercentageOverlap,
		"ClosestAxis":       ClosestAxis(Vertical),
	}

	for name, d := range detectors {
		d := d
		properties.Property(name+" is deterministic", prop.ForAll(
			func(active f32.Rectangle, cands []Candidate) bool {
				id1, ok1 := d("active", active, cands)
				id2, ok2 := d("active", active, cands)
				return id1 == id2 && ok1 == ok2
			},
			genRect, genCands,
		))
		properties.Property(name+" never matches the active id", prop.ForAll(
			func(active f32.Rectangle, cands []Candidate) bool {
				if len(cands) == 0 {
					return true
				}
				// Force one candidate to share the active id.
				cands[0].ID = "active"
				id, ok := d("active", active, cands)
				return !ok || id != "active"
			},
			genRect, genCands,
		))
	}

	properties.TestingRun(t)
}
