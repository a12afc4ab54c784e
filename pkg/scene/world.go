package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// DefaultReflectionLimit bounds how many mirror bounces a primary ray may take
const DefaultReflectionLimit = 5

// World is the collection of bodies and lights a ray is traced against.
// It is read-only once rendering starts and is safe for concurrent use.
type World struct {
	Bodies          []geometry.Body
	Lights          []lights.PointLight
	ReflectionLimit int
}

// NewWorld creates a world with the default reflection limit
func NewWorld(bodies []geometry.Body, pointLights []lights.PointLight) *World {
	return &World{
		Bodies:          bodies,
		Lights:          pointLights,
		ReflectionLimit: DefaultReflectionLimit,
	}
}

// Intersect returns the intersections of ray with every body, sorted by t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	groups := make([]geometry.Intersections, 0, len(w.Bodies))
	for _, body := range w.Bodies {
		groups = append(groups, body.Intersect(ray))
	}
	return geometry.Merge(groups...)
}

// IsShadowed reports whether some body lies between point and light
func (w *World) IsShadowed(light lights.PointLight, point core.Tuple) bool {
	direction, distance := light.DirectionFrom(point)
	shadowRay := core.Ray{Origin: point, Direction: direction}

	hit, ok := w.Intersect(shadowRay).Hit()
	return ok && hit.T < distance
}

// ShadeHit returns the color at a prepared hit: the surface lit by every light,
// each with its own shadow test, plus the reflected contribution.
func (w *World) ShadeHit(comps geometry.Computations, remaining int) core.Color {
	mat := comps.Body.Material()

	surface := core.Black
	for _, light := range w.Lights {
		inShadow := w.IsShadowed(light, comps.OverPoint)
		surface = surface.Add(mat.Lighting(comps.Body, light, comps.OverPoint, comps.Eyev, comps.Normalv, inShadow))
	}

	return surface.Add(w.ReflectedColor(comps, remaining))
}

// ReflectedColor returns the color seen in the mirror direction at a hit,
// scaled by the material's reflectiveness. It is black for matte surfaces and
// once remaining reaches zero.
func (w *World) ReflectedColor(comps geometry.Computations, remaining int) core.Color {
	reflective := comps.Body.Material().Reflectiveness()
	if reflective == 0 || remaining <= 0 {
		return core.Black
	}

	reflectRay := core.Ray{Origin: comps.OverPoint, Direction: comps.Reflectv}
	return w.colorAt(reflectRay, remaining-1).Multiply(reflective)
}

// ColorAt returns the color seen along ray, black if it hits nothing.
// The result is unclamped.
func (w *World) ColorAt(ray core.Ray) core.Color {
	return w.colorAt(ray, w.ReflectionLimit)
}

func (w *World) colorAt(ray core.Ray, remaining int) core.Color {
	hit, ok := w.Intersect(ray).Hit()
	if !ok {
		return core.Black
	}
	return w.ShadeHit(hit.PrepareComputations(), remaining)
}
