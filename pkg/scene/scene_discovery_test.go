package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-empty", "Cornell Empty"},
		{"three_spheres", "Three Spheres"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func writeSceneFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}
	return path
}

func TestParseYAMLMetadata(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected SceneInfo
	}{
		{
			name: "complete_metadata.yaml",
			content: `# Scene: Mirror Hall
# Variant: Two Lights
# Description: Reflective spheres between two mirrors
# Group: Reflections
---
- light:
    type: point_light
    at: [-10, 10, -10]
    intensity: [1, 1, 1]
`,
			expected: SceneInfo{
				ID:          "yaml:complete_metadata",
				Name:        "Mirror Hall",
				DisplayName: "Mirror Hall - Two Lights",
				Description: "Reflective spheres between two mirrors",
				Group:       "Reflections",
				Type:        "yaml",
				Variant:     "Two Lights",
			},
		},
		{
			name: "partial_metadata.yml",
			content: `---
# Scene: Single Sphere
# Description: One sphere, one light
- body:
    type: sphere
`,
			expected: SceneInfo{
				ID:          "yaml:partial_metadata",
				Name:        "Single Sphere",
				DisplayName: "Single Sphere",
				Description: "One sphere, one light",
				Group:       "YAML Scenes",
				Type:        "yaml",
			},
		},
		{
			name:    "no_metadata.yaml",
			content: "- body:\n    type: plane\n",
			expected: SceneInfo{
				ID:          "yaml:no_metadata",
				Name:        "No Metadata",
				DisplayName: "No Metadata",
				Group:       "YAML Scenes",
				Type:        "yaml",
			},
		},
	}

	dir := t.TempDir()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSceneFile(t, dir, tc.name, tc.content)

			result, err := ParseYAMLMetadata(path)
			if err != nil {
				t.Fatalf("ParseYAMLMetadata() error: %v", err)
			}
			tc.expected.FilePath = path

			if result != tc.expected {
				t.Errorf("ParseYAMLMetadata() = %+v, want %+v", result, tc.expected)
			}
		})
	}
}

func TestParseYAMLMetadata_MissingFile(t *testing.T) {
	result, err := ParseYAMLMetadata("nonexistent.yaml")
	if err != nil {
		t.Errorf("ParseYAMLMetadata() should handle missing files gracefully: %v", err)
	}
	if result.DisplayName != "Nonexistent" {
		t.Errorf("Expected fallback display name, got %q", result.DisplayName)
	}
}

func TestListYAMLScenes(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "b-scene.yaml", "# Scene: Beta\n- body:\n    type: sphere\n")
	writeSceneFile(t, dir, "a-scene.yml", "# Scene: Alpha\n- body:\n    type: sphere\n")
	writeSceneFile(t, dir, "notes.txt", "# Scene: Ignored\n")

	scenes, err := ListYAMLScenes(dir)
	if err != nil {
		t.Fatalf("ListYAMLScenes() error: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scenes, got %d", len(scenes))
	}
	if scenes[0].DisplayName != "Alpha" || scenes[1].DisplayName != "Beta" {
		t.Errorf("Expected scenes sorted by display name, got %q, %q", scenes[0].DisplayName, scenes[1].DisplayName)
	}
}

func TestListYAMLScenes_MissingDirectory(t *testing.T) {
	scenes, err := ListYAMLScenes(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Errorf("ListYAMLScenes() error: %v", err)
	}
	if scenes == nil || len(scenes) != 0 {
		t.Errorf("Expected empty, non-nil slice, got %v", scenes)
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "custom.yaml", "# Scene: Custom\n# Group: Mine\n- body:\n    type: sphere\n")

	response, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}
	if len(response.Groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(response.Groups))
	}

	builtIn := response.Groups[0]
	if builtIn.Name != "Built-in Scenes" {
		t.Errorf("Expected built-in group first, got %q", builtIn.Name)
	}
	sceneIDs := make(map[string]bool)
	for _, s := range builtIn.Scenes {
		sceneIDs[s.ID] = true
		if s.Type != "builtin" {
			t.Errorf("Built-in scene %s has type %q", s.ID, s.Type)
		}
	}
	for _, id := range BuiltinNames() {
		if !sceneIDs[id] {
			t.Errorf("Missing expected built-in scene: %s", id)
		}
	}

	custom := response.Groups[1]
	if custom.Name != "Mine" || len(custom.Scenes) != 1 {
		t.Fatalf("Expected group Mine with one scene, got %+v", custom)
	}
	if !strings.HasPrefix(custom.Scenes[0].ID, "yaml:") || custom.Scenes[0].FilePath == "" {
		t.Errorf("YAML scene missing ID prefix or path: %+v", custom.Scenes[0])
	}
}
