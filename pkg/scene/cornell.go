package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewCornellScene creates a Cornell-style room from five planes: red left
// wall, green right wall, white floor, ceiling and back wall, with a mirror
// sphere and a matte sphere inside
func NewCornellScene(width, height int) (*Scene, error) {
	b := newSceneBuilder("cornell-box")

	// Point light just below the ceiling
	b.light(core.NewPoint(0, 1.9, -0.5), core.NewColor(0.9, 0.9, 0.85))

	wall := func(color core.Color) *material.Phong {
		return phong(color, func(m *material.Phong) {
			m.Ambient = 0.15
			m.Specular = 0
		})
	}
	white := core.NewColor(0.73, 0.73, 0.73)

	// floor, ceiling and back wall
	b.plane(wall(white))
	b.plane(wall(white), core.Translation(0, 2, 0))
	b.plane(wall(white), core.RotationX(math.Pi/2), core.Translation(0, 0, 1))

	// left and right walls
	b.plane(wall(core.NewColor(0.65, 0.05, 0.05)), core.RotationZ(math.Pi/2), core.Translation(-1, 0, 0))
	b.plane(wall(core.NewColor(0.12, 0.45, 0.15)), core.RotationZ(math.Pi/2), core.Translation(1, 0, 0))

	b.sphere(phong(core.NewColor(0.05, 0.05, 0.05), func(m *material.Phong) {
		m.Specular = 1
		m.Shininess = 300
		m.Reflective = 0.9
	}), core.Scaling(0.4, 0.4, 0.4), core.Translation(-0.4, 0.4, 0.3))

	b.sphere(phong(white, func(m *material.Phong) {
		m.Specular = 0.3
	}), core.Scaling(0.3, 0.3, 0.3), core.Translation(0.45, 0.3, -0.3))

	b.camera("main", width, height, math.Pi/3,
		core.NewPoint(0, 1, -2.7), core.NewPoint(0, 1, 0), core.NewVector(0, 1, 0))

	return b.build()
}
