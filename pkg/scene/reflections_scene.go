package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewReflectionsScene creates a reflective checkered floor with a mirror
// sphere and two colored spheres, seen from two cameras
func NewReflectionsScene(width, height int) (*Scene, error) {
	b := newSceneBuilder("reflections")

	b.light(core.NewPoint(-10, 10, -10), core.White)

	floor := phong(core.White, func(m *material.Phong) {
		m.Specular = 0
		m.Reflective = 0.4
	})
	floor.Pattern = b.pattern(material.PatternCheckerboard, core.Black, core.White)
	b.plane(floor)

	// Mirror sphere; almost all of its color comes from what it reflects
	b.sphere(phong(core.NewColor(0.1, 0.1, 0.1), func(m *material.Phong) {
		m.Diffuse = 0.2
		m.Specular = 1
		m.Shininess = 300
		m.Reflective = 0.9
	}), core.Translation(0, 1, 0))

	b.sphere(phong(core.NewColor(0.8, 0.1, 0.1), func(m *material.Phong) {
		m.Reflective = 0.1
	}), core.Scaling(0.5, 0.5, 0.5), core.Translation(-1.8, 0.5, -0.8))

	b.sphere(phong(core.NewColor(0.1, 0.3, 0.9), func(m *material.Phong) {
		m.Reflective = 0.1
	}), core.Scaling(0.6, 0.6, 0.6), core.Translation(1.7, 0.6, 0.4))

	up := core.NewVector(0, 1, 0)
	b.camera("front", width, height, math.Pi/3, core.NewPoint(0, 1.8, -6), core.NewPoint(0, 0.8, 0), up)
	b.camera("top", width, height, math.Pi/3, core.NewPoint(-4, 6, -4), core.NewPoint(0, 0.5, 0), up)

	return b.build()
}
