package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

const (
	defaultWidth  = 400
	defaultHeight = 300
	maxDimension  = 2000
)

// Server handles web requests for the raytracer
type Server struct {
	port      int
	scenesDir string
}

// NewServer creates a new web server that serves YAML scenes from scenesDir
func NewServer(port int, scenesDir string) *Server {
	return &Server{port: port, scenesDir: scenesDir}
}

// Handler returns the routes served by the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/image", s.handleImage)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes and the YAML scenes in the scenes directory
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene  string `json:"scene"`  // Built-in scene id or yaml:<name>
	Camera string `json:"camera"` // Camera name, empty for the scene's first camera
	Width  int    `json:"width"`  // Zero keeps the camera's own size
	Height int    `json:"height"`
}

// parseRenderRequest parses the query parameters shared by the render endpoints
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{
		Scene:  query.Get("scene"),
		Camera: query.Get("camera"),
	}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, 1, maxDimension); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, 1, maxDimension); err != nil {
		return nil, err
	}
	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// loadScene builds a built-in scene or loads yaml:<name> from the scenes directory
func (s *Server) loadScene(id string, width, height int) (*scene.Scene, error) {
	if name, ok := strings.CutPrefix(id, "yaml:"); ok {
		if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
			return nil, fmt.Errorf("invalid scene name: %q", name)
		}
		return loaders.LoadYAML(filepath.Join(s.scenesDir, name+".yaml"))
	}

	if width == 0 {
		width = defaultWidth
	}
	if height == 0 {
		height = defaultHeight
	}
	return scene.NewBuiltinScene(id, width, height)
}

// setupCamera loads the requested scene and picks the camera to render,
// resized when the request names a size
func (s *Server) setupCamera(req *RenderRequest) (*scene.Scene, *renderer.Camera, error) {
	sceneObj, err := s.loadScene(req.Scene, req.Width, req.Height)
	if err != nil {
		return nil, nil, err
	}

	name := req.Camera
	if name == "" {
		names := sceneObj.CameraNames()
		if len(names) == 0 {
			return nil, nil, fmt.Errorf("scene %q has no cameras", req.Scene)
		}
		name = names[0]
	}
	camera, err := sceneObj.Camera(name)
	if err != nil {
		return nil, nil, err
	}

	width, height := camera.HSize, camera.VSize
	if req.Width > 0 {
		width = req.Width
	}
	if req.Height > 0 {
		height = req.Height
	}
	if width != camera.HSize || height != camera.VSize {
		camera = camera.Resized(width, height)
	}
	return sceneObj, camera, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
