package renderer

import (
	"context"
	"errors"
	"math"
	"runtime"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
)

func TestNewWorkerPool_DefaultWorkers(t *testing.T) {
	tr := NewTileRenderer(&MockScene{}, NewCamera(4, 4, math.Pi/2), canvas.New(4, 4))

	if got := NewWorkerPool(tr, 0).NumWorkers(); got != runtime.NumCPU() {
		t.Errorf("Expected %d workers, got %d", runtime.NumCPU(), got)
	}
	if got := NewWorkerPool(tr, 3).NumWorkers(); got != 3 {
		t.Errorf("Expected 3 workers, got %d", got)
	}
}

func TestWorkerPool_Run(t *testing.T) {
	scene := &MockScene{}
	tr := NewTileRenderer(scene, NewCamera(50, 30, math.Pi/2), canvas.New(50, 30))
	pool := NewWorkerPool(tr, 4)
	tiles := NewTileGrid(50, 30, 10)

	taskIDs := make(map[int]bool)
	pixels := 0
	err := pool.Run(context.Background(), tiles, func(result TileResult) {
		if taskIDs[result.TaskID] {
			t.Errorf("Task %d reported twice", result.TaskID)
		}
		taskIDs[result.TaskID] = true
		if result.WorkerID < 0 || result.WorkerID >= 4 {
			t.Errorf("Unexpected worker ID %d", result.WorkerID)
		}
		pixels += result.Pixels
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if len(taskIDs) != len(tiles) {
		t.Errorf("Expected %d results, got %d", len(tiles), len(taskIDs))
	}
	if pixels != 50*30 {
		t.Errorf("Expected %d pixels, got %d", 50*30, pixels)
	}
	if scene.calls.Load() != 50*30 {
		t.Errorf("Expected each pixel shaded once, got %d calls", scene.calls.Load())
	}
}

func TestWorkerPool_CancelledBeforeStart(t *testing.T) {
	scene := &MockScene{}
	tr := NewTileRenderer(scene, NewCamera(50, 30, math.Pi/2), canvas.New(50, 30))
	pool := NewWorkerPool(tr, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pool.Run(ctx, NewTileGrid(50, 30, 10), nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if scene.calls.Load() != 0 {
		t.Errorf("Expected no pixels shaded, got %d", scene.calls.Load())
	}
}

func TestWorkerPool_NoTiles(t *testing.T) {
	tr := NewTileRenderer(&MockScene{}, NewCamera(1, 1, math.Pi/2), canvas.New(1, 1))
	if err := NewWorkerPool(tr, 2).Run(context.Background(), nil, nil); err != nil {
		t.Errorf("Expected no error for an empty tile list, got %v", err)
	}
}
