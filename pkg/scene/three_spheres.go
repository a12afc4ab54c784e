package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewThreeSpheresScene creates three spheres of different sizes resting on a floor plane.
// lift raises all spheres by the given amount, which the CLI animates.
func NewThreeSpheresScene(width, height int, lift float64) (*Scene, error) {
	b := newSceneBuilder("three-spheres")

	b.light(core.NewPoint(-10, 10, -10), core.White)

	b.plane(phong(core.NewColor(0.5, 0.45, 0.45), func(m *material.Phong) {
		m.Specular = 0
	}))

	// Small purple sphere on the left
	b.sphere(phong(core.NewColor(0.78, 0.28, 0.96)),
		core.Scaling(0.33, 0.33, 0.33), core.Translation(-1.5, 0.33+lift, -0.75))

	// Large orange sphere in the middle
	b.sphere(phong(core.NewColor(1.0, 0.49, 0.0), func(m *material.Phong) {
		m.Diffuse = 0.7
		m.Specular = 0.1
		m.Shininess = 50
	}), core.Translation(-0.5, 1.0+lift, 0.5))

	// Medium green sphere on the right
	b.sphere(phong(core.NewColor(0.51, 0.75, 0.06)),
		core.Scaling(0.5, 0.5, 0.5), core.Translation(1.5, 0.5+lift, -0.5))

	b.camera("main", width, height, math.Pi/3,
		core.NewPoint(0, 2.3, -8), core.NewPoint(0, 1, 0), core.NewVector(0, 1, 0))

	return b.build()
}
