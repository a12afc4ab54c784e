package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// InspectResponse describes what the primary ray through a pixel hits
type InspectResponse struct {
	Hit       bool                   `json:"hit"`
	T         float64                `json:"t,omitempty"`
	Point     [3]float64             `json:"point,omitempty"`
	Normal    [3]float64             `json:"normal,omitempty"`
	Inside    bool                   `json:"inside,omitempty"`
	BodyType  string                 `json:"bodyType,omitempty"`
	Material  map[string]interface{} `json:"material,omitempty"`
	Shadowed  []bool                 `json:"shadowed,omitempty"` // Per light, in world order
	Color     string                 `json:"color"`              // Final pixel color
	RayOrigin [3]float64             `json:"rayOrigin"`
	RayDir    [3]float64             `json:"rayDirection"`
}

// InspectResult is the raw result of tracing one pixel
type InspectResult struct {
	Ray   core.Ray
	Hit   bool
	Comps geometry.Computations
	Color core.Color
}

// inspectPixel casts the camera ray through a pixel and returns the first body hit
func inspectPixel(sceneObj *scene.Scene, camera *renderer.Camera, pixelX, pixelY int) InspectResult {
	ray := camera.RayForPixel(pixelX, pixelY)
	result := InspectResult{Ray: ray, Color: sceneObj.ColorAt(ray)}

	hit, ok := sceneObj.World.Intersect(ray).Hit()
	if !ok {
		return result
	}
	result.Hit = true
	result.Comps = hit.PrepareComputations()
	return result
}

// handleInspect reports the body, material and shading inputs behind a pixel
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	sceneObj, camera, err := s.setupCamera(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	query := r.URL.Query()
	x, err := parseIntParam(query, "x", -1, 0, camera.HSize-1)
	if err == nil && x < 0 {
		err = fmt.Errorf("missing x")
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	y, err := parseIntParam(query, "y", -1, 0, camera.VSize-1)
	if err == nil && y < 0 {
		err = fmt.Errorf("missing y")
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	result := inspectPixel(sceneObj, camera, x, y)
	response := InspectResponse{
		Hit:       result.Hit,
		Color:     colorHex(result.Color),
		RayOrigin: tupleArray(result.Ray.Origin),
		RayDir:    tupleArray(result.Ray.Direction),
	}
	if result.Hit {
		comps := result.Comps
		response.T = comps.T
		response.Point = tupleArray(comps.Point)
		response.Normal = tupleArray(comps.Normalv)
		response.Inside = comps.Inside
		response.BodyType = bodyType(comps.Body)
		response.Material = materialInfo(comps.Body.Material())
		for _, light := range sceneObj.World.Lights {
			response.Shadowed = append(response.Shadowed, sceneObj.World.IsShadowed(light, comps.OverPoint))
		}
	}
	writeJSON(w, http.StatusOK, response)
}

func bodyType(body geometry.Body) string {
	switch body.(type) {
	case *geometry.Sphere:
		return "sphere"
	case *geometry.Plane:
		return "plane"
	default:
		return "unknown"
	}
}

// materialInfo extracts the parameters of a material for display
func materialInfo(mat material.Material) map[string]interface{} {
	properties := make(map[string]interface{})

	p, ok := mat.(*material.Phong)
	if !ok {
		properties["type"] = "unknown"
		return properties
	}
	properties["type"] = "phong"
	properties["color"] = colorHex(p.Color)
	properties["ambient"] = p.Ambient
	properties["diffuse"] = p.Diffuse
	properties["specular"] = p.Specular
	properties["shininess"] = p.Shininess
	properties["reflective"] = p.Reflective
	if p.Pattern != nil {
		properties["pattern"] = patternInfo(p.Pattern)
	}
	return properties
}

func patternInfo(pattern material.Pattern) map[string]interface{} {
	switch pt := pattern.(type) {
	case *material.StripePattern:
		return map[string]interface{}{"type": string(material.PatternStriped), "a": colorHex(pt.A), "b": colorHex(pt.B)}
	case *material.GradientPattern:
		return map[string]interface{}{"type": string(material.PatternGradient), "a": colorHex(pt.A), "b": colorHex(pt.B)}
	case *material.RingPattern:
		return map[string]interface{}{"type": string(material.PatternRing), "a": colorHex(pt.A), "b": colorHex(pt.B)}
	case *material.CheckerPattern:
		return map[string]interface{}{
			"type":            string(material.PatternCheckerboard),
			"a":               colorHex(pt.A),
			"b":               colorHex(pt.B),
			"third_dimension": pt.ThirdDimension,
		}
	default:
		return map[string]interface{}{"type": "unknown"}
	}
}

func tupleArray(t core.Tuple) [3]float64 {
	return [3]float64{t.X, t.Y, t.Z}
}
