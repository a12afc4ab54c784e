package loaders

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
	"gopkg.in/yaml.v3"
)

// YAMLError reports a problem at a specific place in a YAML scene description
type YAMLError struct {
	Document int    // Zero-based index of the YAML document in the stream
	Path     string // Location within the document, e.g. root[2].body.material
	Line     int    // Source line, 0 if unknown
	Msg      string
}

func (e *YAMLError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("document %d, %s (line %d): %s", e.Document, e.Path, e.Line, e.Msg)
	}
	return fmt.Sprintf("document %d, %s: %s", e.Document, e.Path, e.Msg)
}

// yamlParser accumulates a scene from a stream of YAML documents
type yamlParser struct {
	scene    *scene.Scene
	document int
}

// ParseYAML parses a YAML scene description from an io.Reader. The input is a
// stream of documents, each a sequence of items keyed by light, body, camera
// or world. Items from all documents are merged into one scene.
func ParseYAML(reader io.Reader) (*scene.Scene, error) {
	p := &yamlParser{scene: scene.NewScene()}

	decoder := yaml.NewDecoder(reader)
	for ; ; p.document++ {
		var doc yaml.Node
		err := decoder.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse YAML document %d: %w", p.document, err)
		}
		if err := p.visitDocument(&doc); err != nil {
			return nil, err
		}
	}

	return p.scene, nil
}

// LoadYAML loads and parses a YAML scene file
func LoadYAML(filename string) (*scene.Scene, error) {
	if err := ValidateScenePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open YAML file: %w", err)
	}
	defer file.Close()

	s, err := ParseYAML(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// ValidateScenePath rejects file names that cannot be YAML scene files
func ValidateScenePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	// Check for null bytes (could indicate path manipulation)
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}

	cleanPath := filepath.Clean(filename)
	if len(cleanPath) > 512 {
		return fmt.Errorf("file path too long: maximum 512 characters allowed")
	}

	switch strings.ToLower(filepath.Ext(cleanPath)) {
	case ".yaml", ".yml":
		return nil
	default:
		return fmt.Errorf("invalid file type: only .yaml and .yml files are allowed")
	}
}

func (p *yamlParser) errorf(node *yaml.Node, path, format string, args ...interface{}) error {
	line := 0
	if node != nil {
		line = node.Line
	}
	return &YAMLError{Document: p.document, Path: path, Line: line, Msg: fmt.Sprintf(format, args...)}
}

func (p *yamlParser) visitDocument(doc *yaml.Node) error {
	// A document holding only comments has no content
	if len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return nil
	}
	if root.Kind != yaml.SequenceNode {
		return p.errorf(root, "root", "expected a sequence of items")
	}

	for i, item := range root.Content {
		if err := p.visitItem(item, fmt.Sprintf("root[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func (p *yamlParser) visitItem(item *yaml.Node, path string) error {
	if item.Kind != yaml.MappingNode || len(item.Content) != 2 {
		return p.errorf(item, path, "expected a mapping with a single key (light, body, camera or world)")
	}

	key, value := item.Content[0].Value, item.Content[1]
	path += "." + key

	switch key {
	case "light":
		light, err := p.visitLight(value, path)
		if err != nil {
			return err
		}
		p.scene.AddLight(light)
	case "body":
		body, err := p.visitBody(value, path)
		if err != nil {
			return err
		}
		p.scene.AddBody(body)
	case "camera":
		name, camera, err := p.visitCamera(value, path)
		if err != nil {
			return err
		}
		if err := p.scene.AddCamera(name, camera); err != nil {
			return p.errorf(value, path, "%v", err)
		}
	case "world":
		return p.visitWorld(value, path)
	default:
		return p.errorf(item, path, "unknown item %q", key)
	}
	return nil
}

func (p *yamlParser) visitLight(node *yaml.Node, path string) (lights.PointLight, error) {
	fields, err := p.mapping(node, path, "type", "at", "intensity")
	if err != nil {
		return lights.PointLight{}, err
	}

	lightType, err := p.requiredString(node, fields, path, "type")
	if err != nil {
		return lights.PointLight{}, err
	}
	if lightType != "point_light" {
		return lights.PointLight{}, p.errorf(fields["type"], path+".type", "unknown light type %q", lightType)
	}

	at, err := p.requiredPoint(node, fields, path, "at")
	if err != nil {
		return lights.PointLight{}, err
	}
	intensity, err := p.requiredColor(node, fields, path, "intensity")
	if err != nil {
		return lights.PointLight{}, err
	}

	light, err := lights.NewPointLight(at, intensity)
	if err != nil {
		return lights.PointLight{}, p.errorf(node, path, "%v", err)
	}
	return light, nil
}

func (p *yamlParser) visitBody(node *yaml.Node, path string) (geometry.Body, error) {
	fields, err := p.mapping(node, path, "type", "material", "transforms")
	if err != nil {
		return nil, err
	}

	bodyType, err := p.requiredString(node, fields, path, "type")
	if err != nil {
		return nil, err
	}

	var mat material.Material
	if value, ok := fields["material"]; ok {
		if mat, err = p.visitMaterial(value, path+".material"); err != nil {
			return nil, err
		}
	}

	transform := core.Identity()
	if value, ok := fields["transforms"]; ok {
		if transform, err = p.visitTransforms(value, path+".transforms"); err != nil {
			return nil, err
		}
	}

	var body geometry.Body
	switch bodyType {
	case "sphere":
		body, err = geometry.NewSphere(transform, mat)
	case "plane":
		body, err = geometry.NewPlane(transform, mat)
	default:
		return nil, p.errorf(fields["type"], path+".type", "unknown body type %q", bodyType)
	}
	if err != nil {
		return nil, p.errorf(fields["transforms"], path+".transforms", "%v", err)
	}
	return body, nil
}

func (p *yamlParser) visitMaterial(node *yaml.Node, path string) (material.Material, error) {
	fields, err := p.mapping(node, path,
		"type", "color", "ambient", "diffuse", "specular", "shininess", "reflective", "pattern")
	if err != nil {
		return nil, err
	}

	materialType, err := p.requiredString(node, fields, path, "type")
	if err != nil {
		return nil, err
	}
	if materialType != "phong" {
		return nil, p.errorf(fields["type"], path+".type", "unknown material type %q", materialType)
	}

	phong := material.NewPhong()
	if value, ok := fields["color"]; ok {
		if phong.Color, err = p.color(value, path+".color"); err != nil {
			return nil, err
		}
	}

	for _, f := range []struct {
		key    string
		target *float64
	}{
		{"ambient", &phong.Ambient},
		{"diffuse", &phong.Diffuse},
		{"specular", &phong.Specular},
		{"shininess", &phong.Shininess},
		{"reflective", &phong.Reflective},
	} {
		value, ok := fields[f.key]
		if !ok {
			continue
		}
		if *f.target, err = p.number(value, path+"."+f.key); err != nil {
			return nil, err
		}
	}

	if value, ok := fields["pattern"]; ok {
		if phong.Pattern, err = p.visitPattern(value, path+".pattern"); err != nil {
			return nil, err
		}
	}

	return phong, nil
}

func (p *yamlParser) visitPattern(node *yaml.Node, path string) (material.Pattern, error) {
	fields, err := p.mapping(node, path, "type", "colors", "transforms", "third_dimension")
	if err != nil {
		return nil, err
	}

	patternType, err := p.requiredString(node, fields, path, "type")
	if err != nil {
		return nil, err
	}
	kind := material.PatternKind(patternType)
	a, b, err := material.DefaultPatternColors(kind)
	if err != nil {
		return nil, p.errorf(fields["type"], path+".type", "unknown pattern type %q", patternType)
	}

	if value, ok := fields["colors"]; ok {
		colorsPath := path + ".colors"
		if value.Kind != yaml.SequenceNode || len(value.Content) != 2 {
			return nil, p.errorf(value, colorsPath, "expected a list of two colors")
		}
		if a, err = p.color(value.Content[0], colorsPath+"[0]"); err != nil {
			return nil, err
		}
		if b, err = p.color(value.Content[1], colorsPath+"[1]"); err != nil {
			return nil, err
		}
	}

	transform := core.Identity()
	if value, ok := fields["transforms"]; ok {
		if transform, err = p.visitTransforms(value, path+".transforms"); err != nil {
			return nil, err
		}
	}

	var pattern material.Pattern
	if value, ok := fields["third_dimension"]; ok {
		if kind != material.PatternCheckerboard {
			return nil, p.errorf(value, path+".third_dimension", "only checkerboard patterns have a third dimension")
		}
		var thirdDimension bool
		if thirdDimension, err = p.boolean(value, path+".third_dimension"); err != nil {
			return nil, err
		}
		pattern, err = material.NewCheckerPattern(a, b, thirdDimension, transform)
	} else {
		pattern, err = material.NewPattern(kind, a, b, transform)
	}
	if err != nil {
		return nil, p.errorf(fields["transforms"], path+".transforms", "%v", err)
	}
	return pattern, nil
}

// visitTransforms combines a list of transforms. The first listed transform
// is applied first.
func (p *yamlParser) visitTransforms(node *yaml.Node, path string) (core.Matrix, error) {
	if node.Kind != yaml.SequenceNode {
		return core.Matrix{}, p.errorf(node, path, "expected a list of transforms")
	}

	transforms := make([]core.Matrix, 0, len(node.Content))
	for i, item := range node.Content {
		t, err := p.visitTransform(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return core.Matrix{}, err
		}
		transforms = append(transforms, t)
	}
	return core.Compose(transforms...), nil
}

func (p *yamlParser) visitTransform(node *yaml.Node, path string) (core.Matrix, error) {
	fields, err := p.mapping(node, path, "type", "to", "radians", "xy", "xz", "yx", "yz", "zx", "zy")
	if err != nil {
		return core.Matrix{}, err
	}

	transformType, err := p.requiredString(node, fields, path, "type")
	if err != nil {
		return core.Matrix{}, err
	}

	switch transformType {
	case "translate", "scale":
		v, err := p.requiredVector(node, fields, path, "to")
		if err != nil {
			return core.Matrix{}, err
		}
		if transformType == "translate" {
			return core.Translation(v.X, v.Y, v.Z), nil
		}
		return core.Scaling(v.X, v.Y, v.Z), nil
	case "rotate_x", "rotate_y", "rotate_z":
		radians, err := p.requiredFloat(node, fields, path, "radians")
		if err != nil {
			return core.Matrix{}, err
		}
		switch transformType {
		case "rotate_x":
			return core.RotationX(radians), nil
		case "rotate_y":
			return core.RotationY(radians), nil
		default:
			return core.RotationZ(radians), nil
		}
	case "shear":
		var amounts [6]float64
		for i, key := range []string{"xy", "xz", "yx", "yz", "zx", "zy"} {
			value, ok := fields[key]
			if !ok {
				continue
			}
			if amounts[i], err = p.number(value, path+"."+key); err != nil {
				return core.Matrix{}, err
			}
		}
		return core.Shearing(amounts[0], amounts[1], amounts[2], amounts[3], amounts[4], amounts[5]), nil
	default:
		return core.Matrix{}, p.errorf(fields["type"], path+".type", "unknown transform type %q", transformType)
	}
}

func (p *yamlParser) visitCamera(node *yaml.Node, path string) (string, *renderer.Camera, error) {
	fields, err := p.mapping(node, path, "name", "width", "height", "field_of_view", "from", "to", "up")
	if err != nil {
		return "", nil, err
	}

	name, err := p.requiredString(node, fields, path, "name")
	if err != nil {
		return "", nil, err
	}
	width, err := p.requiredPositiveInt(node, fields, path, "width")
	if err != nil {
		return "", nil, err
	}
	height, err := p.requiredPositiveInt(node, fields, path, "height")
	if err != nil {
		return "", nil, err
	}
	fov, err := p.requiredFloat(node, fields, path, "field_of_view")
	if err != nil {
		return "", nil, err
	}
	from, err := p.requiredPoint(node, fields, path, "from")
	if err != nil {
		return "", nil, err
	}
	to, err := p.requiredPoint(node, fields, path, "to")
	if err != nil {
		return "", nil, err
	}
	up, err := p.requiredVector(node, fields, path, "up")
	if err != nil {
		return "", nil, err
	}

	camera, err := renderer.NewCamera(width, height, fov).WithView(from, to, up)
	if err != nil {
		return "", nil, p.errorf(node, path, "%v", err)
	}
	return name, camera, nil
}

func (p *yamlParser) visitWorld(node *yaml.Node, path string) error {
	fields, err := p.mapping(node, path, "reflection_limit")
	if err != nil {
		return err
	}
	if value, ok := fields["reflection_limit"]; ok {
		limit, err := p.integer(value, path+".reflection_limit")
		if err != nil {
			return err
		}
		if limit < 0 {
			return p.errorf(value, path+".reflection_limit", "reflection limit must not be negative, got %d", limit)
		}
		p.scene.World.ReflectionLimit = limit
	}
	return nil
}

// mapping indexes a mapping node by key, rejecting keys not in allowed
func (p *yamlParser) mapping(node *yaml.Node, path string, allowed ...string) (map[string]*yaml.Node, error) {
	if node.Kind != yaml.MappingNode {
		return nil, p.errorf(node, path, "expected a mapping")
	}

	fields := make(map[string]*yaml.Node, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		known := false
		for _, a := range allowed {
			if key.Value == a {
				known = true
				break
			}
		}
		if !known {
			return nil, p.errorf(key, path, "unknown key %q", key.Value)
		}
		if _, dup := fields[key.Value]; dup {
			return nil, p.errorf(key, path, "duplicate key %q", key.Value)
		}
		fields[key.Value] = node.Content[i+1]
	}
	return fields, nil
}

func (p *yamlParser) required(node *yaml.Node, fields map[string]*yaml.Node, path, key string) (*yaml.Node, error) {
	value, ok := fields[key]
	if !ok {
		return nil, p.errorf(node, path, "missing required key %q", key)
	}
	return value, nil
}

func (p *yamlParser) str(node *yaml.Node, path string) (string, error) {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
		return "", p.errorf(node, path, "expected a string, found %q", node.Value)
	}
	return node.Value, nil
}

func (p *yamlParser) number(node *yaml.Node, path string) (float64, error) {
	if node.Kind != yaml.ScalarNode || (node.ShortTag() != "!!int" && node.ShortTag() != "!!float") {
		return 0, p.errorf(node, path, "expected a number, found %q", node.Value)
	}
	var v float64
	if err := node.Decode(&v); err != nil {
		return 0, p.errorf(node, path, "invalid number %q", node.Value)
	}
	return v, nil
}

func (p *yamlParser) integer(node *yaml.Node, path string) (int, error) {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!int" {
		return 0, p.errorf(node, path, "expected an integer, found %q", node.Value)
	}
	var v int
	if err := node.Decode(&v); err != nil {
		return 0, p.errorf(node, path, "invalid integer %q", node.Value)
	}
	return v, nil
}

func (p *yamlParser) boolean(node *yaml.Node, path string) (bool, error) {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!bool" {
		return false, p.errorf(node, path, "expected true or false, found %q", node.Value)
	}
	var v bool
	if err := node.Decode(&v); err != nil {
		return false, p.errorf(node, path, "invalid boolean %q", node.Value)
	}
	return v, nil
}

// triple reads a list of exactly three numbers
func (p *yamlParser) triple(node *yaml.Node, path string) ([3]float64, error) {
	var v [3]float64
	if node.Kind != yaml.SequenceNode || len(node.Content) != 3 {
		return v, p.errorf(node, path, "expected a list of three numbers")
	}
	for i, item := range node.Content {
		f, err := p.number(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	return v, nil
}

func (p *yamlParser) color(node *yaml.Node, path string) (core.Color, error) {
	v, err := p.triple(node, path)
	if err != nil {
		return core.Color{}, err
	}
	return core.NewColor(v[0], v[1], v[2]), nil
}

func (p *yamlParser) requiredString(node *yaml.Node, fields map[string]*yaml.Node, path, key string) (string, error) {
	value, err := p.required(node, fields, path, key)
	if err != nil {
		return "", err
	}
	return p.str(value, path+"."+key)
}

func (p *yamlParser) requiredFloat(node *yaml.Node, fields map[string]*yaml.Node, path, key string) (float64, error) {
	value, err := p.required(node, fields, path, key)
	if err != nil {
		return 0, err
	}
	return p.number(value, path+"."+key)
}

func (p *yamlParser) requiredPositiveInt(node *yaml.Node, fields map[string]*yaml.Node, path, key string) (int, error) {
	value, err := p.required(node, fields, path, key)
	if err != nil {
		return 0, err
	}
	v, err := p.integer(value, path+"."+key)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, p.errorf(value, path+"."+key, "must be positive, got %d", v)
	}
	return v, nil
}

func (p *yamlParser) requiredPoint(node *yaml.Node, fields map[string]*yaml.Node, path, key string) (core.Tuple, error) {
	value, err := p.required(node, fields, path, key)
	if err != nil {
		return core.Tuple{}, err
	}
	v, err := p.triple(value, path+"."+key)
	if err != nil {
		return core.Tuple{}, err
	}
	return core.NewPoint(v[0], v[1], v[2]), nil
}

func (p *yamlParser) requiredVector(node *yaml.Node, fields map[string]*yaml.Node, path, key string) (core.Tuple, error) {
	value, err := p.required(node, fields, path, key)
	if err != nil {
		return core.Tuple{}, err
	}
	v, err := p.triple(value, path+"."+key)
	if err != nil {
		return core.Tuple{}, err
	}
	return core.NewVector(v[0], v[1], v[2]), nil
}

func (p *yamlParser) requiredColor(node *yaml.Node, fields map[string]*yaml.Node, path, key string) (core.Color, error) {
	value, err := p.required(node, fields, path, key)
	if err != nil {
		return core.Color{}, err
	}
	return p.color(value, path+"."+key)
}
