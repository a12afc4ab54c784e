package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewPatternsScene creates a room showing off every pattern type: a
// checkerboard floor, a striped back wall and a sphere for each of ring,
// gradient and stripes
func NewPatternsScene(width, height int) (*Scene, error) {
	b := newSceneBuilder("patterns")

	b.light(core.NewPoint(-10, 10, -10), core.White)

	floor := phong(core.White, func(m *material.Phong) { m.Specular = 0 })
	floor.Pattern = b.pattern(material.PatternCheckerboard,
		core.NewColor(0.35, 0.35, 0.35), core.NewColor(0.65, 0.65, 0.65))
	b.plane(floor)

	wall := phong(core.White, func(m *material.Phong) { m.Specular = 0 })
	wall.Pattern = b.pattern(material.PatternStriped,
		core.NewColor(0.45, 0.45, 0.8), core.NewColor(0.7, 0.7, 0.9),
		core.Scaling(0.5, 0.5, 0.5), core.RotationY(math.Pi/4))
	b.plane(wall, core.RotationX(math.Pi/2), core.Translation(0, 0, 10))

	ring := phong(core.White, func(m *material.Phong) {
		m.Diffuse = 0.7
		m.Specular = 0.3
	})
	ring.Pattern = b.pattern(material.PatternRing, core.Yellow, core.Blue,
		core.Scaling(0.15, 0.15, 0.15), core.RotationX(math.Pi/2))
	b.sphere(ring, core.Translation(-0.5, 1, 0.5))

	gradient := phong(core.White)
	gradient.Pattern = b.pattern(material.PatternGradient, core.Red, core.Green,
		core.Translation(1, 0, 0), core.Scaling(0.5, 1, 1))
	b.sphere(gradient, core.Scaling(0.5, 0.5, 0.5), core.Translation(1.5, 0.5, -0.5))

	stripes := phong(core.White)
	stripes.Pattern = b.pattern(material.PatternStriped, core.White, core.NewColor(0.9, 0.2, 0.2),
		core.Scaling(0.2, 0.2, 0.2), core.RotationZ(math.Pi/3))
	b.sphere(stripes, core.Scaling(0.33, 0.33, 0.33), core.Translation(-1.5, 0.33, -0.75))

	b.camera("main", width, height, math.Pi/3,
		core.NewPoint(0, 1.5, -5), core.NewPoint(0, 1, 0), core.NewVector(0, 1, 0))

	return b.build()
}
