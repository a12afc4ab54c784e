package scene

import (
	"fmt"
)

// BuiltinScene describes a scene constructed in code
type BuiltinScene struct {
	ID          string
	Name        string
	Description string
	New         func(width, height int) (*Scene, error)
}

var builtinScenes = []BuiltinScene{
	{
		ID:          "default",
		Name:        "Default Scene",
		Description: "Canonical two-sphere world",
		New:         NewDefaultScene,
	},
	{
		ID:          "three-spheres",
		Name:        "Three Spheres",
		Description: "Three spheres resting on a floor plane",
		New: func(width, height int) (*Scene, error) {
			return NewThreeSpheresScene(width, height, 0)
		},
	},
	{
		ID:          "patterns",
		Name:        "Patterns",
		Description: "Checkerboard floor, striped wall and patterned spheres",
		New:         NewPatternsScene,
	},
	{
		ID:          "reflections",
		Name:        "Reflections",
		Description: "Reflective floor with a mirror sphere, two cameras",
		New:         NewReflectionsScene,
	},
	{
		ID:          "sphere-grid",
		Name:        "Sphere Grid",
		Description: "Grid of spheres sweeping shininess and reflectiveness",
		New:         NewSphereGridScene,
	},
	{
		ID:          "cornell-box",
		Name:        "Cornell Box",
		Description: "Cornell box built from planes with a mirror sphere",
		New:         NewCornellScene,
	},
}

// BuiltinScenes returns every built-in scene in display order
func BuiltinScenes() []BuiltinScene {
	return append([]BuiltinScene(nil), builtinScenes...)
}

// BuiltinNames returns the IDs of every built-in scene
func BuiltinNames() []string {
	names := make([]string, len(builtinScenes))
	for i, s := range builtinScenes {
		names[i] = s.ID
	}
	return names
}

// NewBuiltinScene constructs the built-in scene with the given ID
func NewBuiltinScene(id string, width, height int) (*Scene, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	for _, s := range builtinScenes {
		if s.ID == id {
			return s.New(width, height)
		}
	}
	return nil, fmt.Errorf("unknown scene %q (available: %v)", id, BuiltinNames())
}
