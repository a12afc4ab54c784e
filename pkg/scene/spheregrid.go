package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewColor(r, g, blue).Clamp(0, 1)
}

// sphereGridSize is the number of spheres along each side of the grid
const sphereGridSize = 6

// NewSphereGridScene creates a grid of rainbow-colored spheres on a plane.
// Shininess grows along x and reflectiveness grows along z, so the grid
// doubles as a swatch of the Phong parameters.
func NewSphereGridScene(width, height int) (*Scene, error) {
	b := newSceneBuilder("sphere-grid")

	b.light(core.NewPoint(-10, 12, -10), core.NewColor(0.9, 0.9, 0.9))
	b.light(core.NewPoint(12, 8, -6), core.NewColor(0.3, 0.3, 0.35))

	b.plane(phong(core.NewColor(0.5, 0.5, 0.5), func(m *material.Phong) {
		m.Specular = 0
		m.Reflective = 0.15
	}))

	const spacing = 1.0
	const radius = 0.35
	for i := 0; i < sphereGridSize; i++ {
		for j := 0; j < sphereGridSize; j++ {
			hue := float64(i*sphereGridSize+j) / float64(sphereGridSize*sphereGridSize) * 360
			color := oklchToRGB(0.7, 0.15, hue)

			shininess := 10 * math.Pow(2, float64(i))
			reflective := float64(j) / float64(sphereGridSize-1) * 0.6

			x := (float64(i) - float64(sphereGridSize-1)/2) * spacing
			z := (float64(j) - float64(sphereGridSize-1)/2) * spacing

			b.sphere(phong(color, func(m *material.Phong) {
				m.Shininess = shininess
				m.Reflective = reflective
			}), core.Scaling(radius, radius, radius), core.Translation(x, radius, z))
		}
	}

	b.camera("main", width, height, math.Pi/4,
		core.NewPoint(0, 6, -9), core.NewPoint(0, 0.3, 0), core.NewVector(0, 1, 0))

	return b.build()
}
