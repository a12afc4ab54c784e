package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewDefaultWorld creates the canonical two-sphere world: a green-tinted unit
// sphere around a half-size white sphere, lit from the upper left.
func NewDefaultWorld() *World {
	light := lights.PointLight{Position: core.NewPoint(-10, 10, -10), Intensity: core.White}

	outer := geometry.NewUnitSphere(phong(core.NewColor(0.8, 1.0, 0.6), func(m *material.Phong) {
		m.Diffuse = 0.7
		m.Specular = 0.2
	}))
	// uniform scaling is always invertible
	inner, _ := geometry.NewSphere(core.Scaling(0.5, 0.5, 0.5), nil)

	return NewWorld([]geometry.Body{outer, inner}, []lights.PointLight{light})
}

// NewDefaultScene creates the default world with a single camera looking at it
func NewDefaultScene(width, height int) (*Scene, error) {
	s := NewScene()
	s.World = NewDefaultWorld()

	b := &sceneBuilder{name: "default", scene: s}
	b.camera("main", width, height, math.Pi/3,
		core.NewPoint(0, 1.5, -5), core.NewPoint(0, 0, 0), core.NewVector(0, 1, 0))

	return b.build()
}
