package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int // Position in the submitted tile list
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID   int
	Tile     *Tile
	WorkerID int
	Pixels   int // Number of pixels written
}

// WorkerPool renders tiles in parallel with a fixed number of workers
type WorkerPool struct {
	renderer   *TileRenderer
	numWorkers int
}

// NewWorkerPool creates a worker pool. A non-positive numWorkers uses one
// worker per CPU.
func NewWorkerPool(renderer *TileRenderer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		renderer:   renderer,
		numWorkers: numWorkers,
	}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Run renders every tile and blocks until all are done, the context is
// cancelled, or a worker fails. onTile, if not nil, is called from the
// calling goroutine once per completed tile, so it needs no locking.
func (wp *WorkerPool) Run(ctx context.Context, tiles []*Tile, onTile func(TileResult)) error {
	g, ctx := errgroup.WithContext(ctx)

	tasks := make(chan TileTask)
	results := make(chan TileResult, len(tiles))

	// Producer: stops scheduling as soon as the context is done
	g.Go(func() error {
		defer close(tasks)
		for i, tile := range tiles {
			select {
			case tasks <- TileTask{Tile: tile, TaskID: i}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for id := 0; id < wp.numWorkers; id++ {
		id := id
		g.Go(func() error {
			for task := range tasks {
				if err := ctx.Err(); err != nil {
					return err
				}
				pixels := wp.renderer.RenderTileBounds(task.Tile.Bounds)
				results <- TileResult{
					TaskID:   task.TaskID,
					Tile:     task.Tile,
					WorkerID: id,
					Pixels:   pixels,
				}
			}
			return nil
		})
	}

	errc := make(chan error, 1)
	go func() {
		errc <- g.Wait()
		close(results)
	}()

	for result := range results {
		if onTile != nil {
			onTile(result)
		}
	}

	return <-errc
}
