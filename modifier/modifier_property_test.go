// SPDX-License-Identifier: Unlicense OR MIT

package modifier

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"dragui.org/f32"
)

func TestModifierProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(4321)
	parameters.MinSuccessfulTests = 300

	properties := gopter.NewProperties(parameters)

	coord := gen.Float32Range(-1000, 1000)
	genPoint := gopter.CombineGens(coord, coord).Map(func(vs []interface{}) f32.Point {
		return f32.Pt(vs[0].(float32), vs[1].(float32))
	})

	properties.Property("grid snap is idempotent", prop.ForAll(
		func(p f32.Point) bool {
			m := SnapGrid(f32.Pt(20, 20))
			once := m(p, Context{})
			return m(once, Context{}) == once
		},
		genPoint,
	))

	properties.Property("restrict keeps the active rectangle inside the container", prop.ForAll(
		func(p f32.Point) bool {
			ctx := Context{
				Active:       f32.Rect(100, 100, 150, 150),
				HasActive:    true,
				Container:    f32.Rect(0, 0, 800, 600),
				HasContainer: true,
			}
			moved := ctx.Active.Add(Restrict(p, ctx))
			return moved.Min.X >= 0 && moved.Min.Y >= 0 &&
				moved.Max.X <= 800 && moved.Max.Y <= 600
		},
		genPoint,
	))

	properties.Property("axis restriction zeroes exactly one axis", prop.ForAll(
		func(p f32.Point) bool {
			v := RestrictAxis(Vertical)(p, Context{})
			h := RestrictAxis(Horizontal)(p, Context{})
			return v.X == 0 && v.Y == p.Y && h.Y == 0 && h.X == p.X
		},
		genPoint,
	))

	properties.TestingRun(t)
}
