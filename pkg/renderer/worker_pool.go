package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int // For deterministic ordering
}

// TileFunc renders a single tile
type TileFunc func(ctx context.Context, task TileTask) error

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// A non-positive count uses one worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run feeds every tile to the workers and waits for them to finish.
// The first error, or cancellation of ctx, stops workers from taking further tiles.
func (wp *WorkerPool) Run(ctx context.Context, tiles []*Tile, render TileFunc) error {
	g, ctx := errgroup.WithContext(ctx)

	taskQueue := make(chan TileTask)

	// Producer: submit all tiles as tasks
	g.Go(func() error {
		defer close(taskQueue)
		for i, tile := range tiles {
			select {
			case taskQueue <- TileTask{Tile: tile, TaskID: i}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < wp.numWorkers; i++ {
		g.Go(func() error {
			for task := range taskQueue {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := render(ctx, task); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}
