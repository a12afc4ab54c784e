package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/animation"
	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Config holds the command line options
type Config struct {
	SceneType   string
	CameraName  string // Empty renders every camera
	OutputDir   string // Empty uses output/<scene>
	Format      string
	Width       int // Image size for built-in scenes
	Height      int
	NumWorkers  int
	TileSize    int
	Supersample int
	Frames      int
}

func main() {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "default", "Built-in scene name, scene name in scenes/, or path to a .yaml file")
	flag.StringVar(&config.CameraName, "camera", "", "Render only this camera (default: every camera)")
	flag.StringVar(&config.OutputDir, "output", "", "Output directory (default: output/<scene>)")
	flag.StringVar(&config.Format, "format", "png", "Image format: png, ppm, bmp or tiff")
	flag.IntVar(&config.Width, "width", 400, "Image width for built-in scenes")
	flag.IntVar(&config.Height, "height", 300, "Image height for built-in scenes")
	flag.IntVar(&config.NumWorkers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.IntVar(&config.TileSize, "tile", renderer.DefaultRenderConfig().TileSize, "Tile size in pixels")
	flag.IntVar(&config.Supersample, "supersample", 1, "Render at N times the size and downscale for anti-aliasing")
	flag.IntVar(&config.Frames, "frames", 0, "Render N frames orbiting each camera around the y axis (0 = still image)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("Phong Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, s := range scene.BuiltinScenes() {
		fmt.Printf("  %-14s - %s\n", s.ID, s.Description)
	}
	if yamlScenes, err := scene.ListYAMLScenes("scenes"); err == nil {
		for _, s := range yamlScenes {
			fmt.Printf("  %-14s - %s\n", strings.TrimPrefix(s.ID, "yaml:"), s.Description)
		}
	}
	fmt.Println()
	fmt.Println("Each camera is saved to output/<scene>/<camera>.<format>")
}

func run(ctx context.Context, config Config) error {
	format, err := canvas.ParseFormat(config.Format)
	if err != nil {
		return err
	}
	if config.Supersample < 1 {
		return fmt.Errorf("supersample factor must be at least 1, got %d", config.Supersample)
	}

	fmt.Println("Starting Phong Raytracer...")

	s, err := createScene(config.SceneType, config.Width, config.Height)
	if err != nil {
		return err
	}

	cameraNames := s.CameraNames()
	if config.CameraName != "" {
		if _, err := s.Camera(config.CameraName); err != nil {
			return err
		}
		cameraNames = []string{config.CameraName}
	}
	if len(cameraNames) == 0 {
		return fmt.Errorf("scene %q has no cameras", config.SceneType)
	}

	outputDir := config.OutputDir
	if outputDir == "" {
		outputDir = createOutputDir(config.SceneType)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	fmt.Printf("Rendering %d camera(s) for a world with %d lights and %d bodies\n",
		len(cameraNames), len(s.World.Lights), s.GetPrimitiveCount())

	for _, name := range cameraNames {
		camera, err := s.Camera(name)
		if err != nil {
			return err
		}

		if config.Frames <= 0 {
			path := filepath.Join(outputDir, name+format.Extension())
			if err := renderToFile(ctx, s, camera, config, format, path); err != nil {
				return fmt.Errorf("camera %s: %w", name, err)
			}
			continue
		}

		animator := animation.NewAnimator(config.Frames)
		err = animator.Animate(ctx, func(frame animation.Frame) error {
			orbiting, err := orbitCamera(camera, frame)
			if err != nil {
				return err
			}
			path := frame.Filename(outputDir, name+"_", format.Extension())
			return renderToFile(ctx, s, orbiting, config, format, path)
		})
		if err != nil {
			return fmt.Errorf("camera %s: %w", name, err)
		}
	}

	fmt.Println("Everything done.")
	return nil
}

// createScene builds a built-in scene or loads a YAML scene, either by path
// or by name from the scenes/ directory
func createScene(sceneType string, width, height int) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("scene name cannot be empty")
	}

	if s := tryLoadYAMLScene(sceneType); s != nil {
		return s, nil
	}

	if isYAMLPath(sceneType) {
		// Report the loader error for explicit file paths
		return loaders.LoadYAML(sceneType)
	}

	return scene.NewBuiltinScene(sceneType, width, height)
}

// tryLoadYAMLScene returns the scene if sceneType names a loadable YAML scene, nil otherwise
func tryLoadYAMLScene(sceneType string) *scene.Scene {
	path := sceneType
	if !isYAMLPath(path) {
		path = filepath.Join("scenes", sceneType+".yaml")
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	s, err := loaders.LoadYAML(path)
	if err != nil {
		fmt.Printf("Warning: failed to load %s: %v\n", path, err)
		return nil
	}
	fmt.Printf("Loaded YAML scene %s\n", path)
	return s
}

func isYAMLPath(sceneType string) bool {
	ext := strings.ToLower(filepath.Ext(sceneType))
	return ext == ".yaml" || ext == ".yml"
}

// createOutputDir returns output/<scene base name>
func createOutputDir(sceneType string) string {
	base := filepath.Base(sceneType)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "scene"
	}
	return filepath.Join("output", base)
}

// orbitCamera turns the camera around the world's y axis by the frame's share of a full circle
func orbitCamera(camera *renderer.Camera, frame animation.Frame) (*renderer.Camera, error) {
	angles, err := frame.LinearScale(0, 2*math.Pi)
	if err != nil {
		return nil, err
	}
	angle := angles.Scale(float64(frame.Current))
	return camera.WithTransform(camera.Transform().Multiply(core.RotationY(angle)))
}

func renderToFile(ctx context.Context, s *scene.Scene, camera *renderer.Camera, config Config, format canvas.Format, path string) error {
	target := camera
	if config.Supersample > 1 {
		target = camera.Resized(camera.HSize*config.Supersample, camera.VSize*config.Supersample)
	}

	raytracer := renderer.NewRaytracer(s, target, renderer.RenderConfig{
		TileSize:   config.TileSize,
		NumWorkers: config.NumWorkers,
	}, renderer.NewDefaultLogger())

	startTime := time.Now()
	c, stats, err := raytracer.Render(ctx, nil)
	if err != nil {
		return err
	}

	if config.Supersample > 1 {
		img, err := canvas.Downsample(c, config.Supersample)
		if err != nil {
			return err
		}
		c = canvas.FromImage(img)
	}

	fmt.Printf("Rendered %d pixels in %v (%d tiles, %d workers, average luminance %.3f)\n",
		stats.TotalPixels, time.Since(startTime).Round(time.Millisecond), stats.TotalTiles,
		stats.NumWorkers, renderer.CalculateAverageLuminance(c.ToImage()))

	if err := c.WriteFile(path, format); err != nil {
		return err
	}
	fmt.Printf("Render saved as %s\n", path)
	return nil
}
