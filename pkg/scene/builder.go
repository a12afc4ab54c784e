package scene

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// sceneBuilder assembles a built-in scene. Construction errors are sticky:
// after the first one every further call is a no-op and build reports it.
type sceneBuilder struct {
	name  string
	scene *Scene
	err   error
}

func newSceneBuilder(name string) *sceneBuilder {
	return &sceneBuilder{name: name, scene: NewScene()}
}

func (b *sceneBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *sceneBuilder) sphere(mat material.Material, transforms ...core.Matrix) {
	if b.err != nil {
		return
	}
	s, err := geometry.NewSphere(core.Compose(transforms...), mat)
	if err != nil {
		b.fail(err)
		return
	}
	b.scene.AddBody(s)
}

func (b *sceneBuilder) plane(mat material.Material, transforms ...core.Matrix) {
	if b.err != nil {
		return
	}
	p, err := geometry.NewPlane(core.Compose(transforms...), mat)
	if err != nil {
		b.fail(err)
		return
	}
	b.scene.AddBody(p)
}

func (b *sceneBuilder) light(position core.Tuple, intensity core.Color) {
	if b.err != nil {
		return
	}
	l, err := lights.NewPointLight(position, intensity)
	if err != nil {
		b.fail(err)
		return
	}
	b.scene.AddLight(l)
}

func (b *sceneBuilder) camera(name string, width, height int, fov float64, from, to, up core.Tuple) {
	if b.err != nil {
		return
	}
	c, err := renderer.NewCamera(width, height, fov).WithView(from, to, up)
	if err != nil {
		b.fail(err)
		return
	}
	if err := b.scene.AddCamera(name, c); err != nil {
		b.fail(err)
	}
}

// pattern returns nil once an error has been recorded; a nil pattern leaves
// the material's plain color in place.
func (b *sceneBuilder) pattern(kind material.PatternKind, a, c core.Color, transforms ...core.Matrix) material.Pattern {
	if b.err != nil {
		return nil
	}
	p, err := material.NewPattern(kind, a, c, core.Compose(transforms...))
	if err != nil {
		b.fail(err)
		return nil
	}
	return p
}

func (b *sceneBuilder) build() (*Scene, error) {
	if b.err != nil {
		return nil, fmt.Errorf("building %s scene: %w", b.name, b.err)
	}
	return b.scene, nil
}

// phong returns a default Phong material with the given color, adjusted by opts
func phong(color core.Color, opts ...func(*material.Phong)) *material.Phong {
	m := material.NewColoredPhong(color)
	for _, opt := range opts {
		opt(m)
	}
	return m
}
