package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// RenderConfig contains configuration for parallel rendering
type RenderConfig struct {
	TileSize   int // Size of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// TileCompletion describes a finished tile for progress callbacks
type TileCompletion struct {
	TileX     int // Tile coordinates (not pixel coordinates)
	TileY     int
	Bounds    image.Rectangle
	TileImage *image.RGBA // Image data for just this tile

	// Progress information
	TileNumber int // Tiles completed so far, including this one (1-based)
	TotalTiles int
}

// Raytracer renders a scene through a camera onto a canvas
type Raytracer struct {
	scene  Scene
	camera *Camera
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(scene Scene, camera *Camera, config RenderConfig, logger core.Logger) *Raytracer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}
	if logger == nil {
		logger = NewSilentLogger()
	}
	return &Raytracer{
		scene:  scene,
		camera: camera,
		config: config,
		logger: logger,
	}
}

// Render shades every pixel of the camera's canvas in parallel. Each pixel is
// colored by tracing the camera ray through it into the scene. onTile, if not
// nil, is invoked sequentially as tiles complete.
func (rt *Raytracer) Render(ctx context.Context, onTile func(TileCompletion)) (*canvas.Canvas, RenderStats, error) {
	width, height := rt.camera.HSize, rt.camera.VSize
	if width <= 0 || height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}

	target := canvas.New(width, height)
	tiles := NewTileGrid(width, height, rt.config.TileSize)
	pool := NewWorkerPool(NewTileRenderer(rt.scene, rt.camera, target), rt.config.NumWorkers)

	rt.logger.Printf("Rendering %dx%d in %d tiles (using %d workers)...\n",
		width, height, len(tiles), pool.NumWorkers())

	startTime := time.Now()
	completed := 0
	pixels := 0

	err := pool.Run(ctx, tiles, func(result TileResult) {
		completed++
		pixels += result.Pixels
		if onTile == nil {
			return
		}
		onTile(TileCompletion{
			TileX:      result.Tile.Column,
			TileY:      result.Tile.Row,
			Bounds:     result.Tile.Bounds,
			TileImage:  target.SubImage(result.Tile.Bounds),
			TileNumber: completed,
			TotalTiles: len(tiles),
		})
	})

	stats := RenderStats{
		TotalPixels: pixels,
		TotalTiles:  len(tiles),
		NumWorkers:  pool.NumWorkers(),
		Duration:    time.Since(startTime),
	}

	if err != nil {
		rt.logger.Printf("Rendering cancelled after %d of %d tiles\n", completed, len(tiles))
		return nil, stats, err
	}

	rt.logger.Printf("Render completed in %v (%.0f pixels/s)\n", stats.Duration, stats.PixelsPerSecond())
	return target, stats, nil
}
