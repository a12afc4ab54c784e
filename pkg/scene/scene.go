package scene

import (
	"fmt"
	"slices"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering: the world and the
// named cameras looking into it
type Scene struct {
	World   *World
	Cameras map[string]*renderer.Camera
}

// NewScene creates an empty scene with the default reflection limit
func NewScene() *Scene {
	return &Scene{
		World:   NewWorld(nil, nil),
		Cameras: make(map[string]*renderer.Camera),
	}
}

// AddBody adds a body to the world
func (s *Scene) AddBody(body geometry.Body) {
	s.World.Bodies = append(s.World.Bodies, body)
}

// AddLight adds a point light to the world
func (s *Scene) AddLight(light lights.PointLight) {
	s.World.Lights = append(s.World.Lights, light)
}

// AddCamera registers a camera under name. Names must be unique.
func (s *Scene) AddCamera(name string, camera *renderer.Camera) error {
	if _, exists := s.Cameras[name]; exists {
		return fmt.Errorf("duplicate camera name %q", name)
	}
	s.Cameras[name] = camera
	return nil
}

// CameraNames returns the camera names in sorted order
func (s *Scene) CameraNames() []string {
	names := make([]string, 0, len(s.Cameras))
	for name := range s.Cameras {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Camera looks up a camera by name
func (s *Scene) Camera(name string) (*renderer.Camera, error) {
	camera, ok := s.Cameras[name]
	if !ok {
		return nil, fmt.Errorf("no camera named %q (have %v)", name, s.CameraNames())
	}
	return camera, nil
}

// ColorAt returns the color seen along ray in the scene's world
func (s *Scene) ColorAt(ray core.Ray) core.Color {
	return s.World.ColorAt(ray)
}

// GetPrimitiveCount returns the number of bodies in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.World.Bodies)
}
