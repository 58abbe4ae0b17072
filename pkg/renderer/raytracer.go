package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const DefaultTileSize = 32

// RenderConfig contains configuration for parallel rendering
type RenderConfig struct {
	TileSize   int // Size of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
	MaxDepth   int // Maximum reflection/refraction depth (0 = primary rays only, negative = integrator default)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   DefaultTileSize,
		NumWorkers: 0, // Auto-detect CPU count
		MaxDepth:   integrator.DefaultMaxDepth,
	}
}

// Raytracer renders a world through a camera using a pool of tile workers
type Raytracer struct {
	camera     *Camera
	world      *scene.World
	integrator integrator.Integrator
	config     RenderConfig
	logger     core.Logger
}

// NewRaytracer creates a new parallel raytracer using the Whitted integrator.
// A nil logger discards output.
func NewRaytracer(camera *Camera, world *scene.World, config RenderConfig, logger core.Logger) *Raytracer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultTileSize
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Raytracer{
		camera:     camera,
		world:      world,
		integrator: integrator.NewWhitted(config.MaxDepth),
		config:     config,
		logger:     logger,
	}
}

// SetIntegrator replaces the integrator used for each pixel
func (rt *Raytracer) SetIntegrator(integ integrator.Integrator) {
	rt.integrator = integ
}

// Render traces the full image. Pixels match a serial Camera.RenderWith using the same integrator.
func (rt *Raytracer) Render(ctx context.Context) (*Canvas, RenderStats, error) {
	startTime := time.Now()

	width, height := rt.camera.HSize, rt.camera.VSize
	canvas := NewCanvas(width, height)
	tiles := NewTileGrid(width, height, rt.config.TileSize)
	pool := NewWorkerPool(rt.config.NumWorkers)
	tileRenderer := NewTileRenderer(rt.camera, rt.world, rt.integrator)

	rt.logger.Printf("Rendering %dx%d image: %d tiles on %d workers...\n",
		width, height, len(tiles), pool.GetNumWorkers())

	err := pool.Run(ctx, tiles, func(ctx context.Context, task TileTask) error {
		tileRenderer.RenderTileBounds(task.Tile.Bounds, canvas)
		return nil
	})
	if err != nil {
		rt.logger.Printf("Rendering cancelled: %v\n", err)
		return nil, RenderStats{}, fmt.Errorf("render: %w", err)
	}

	stats := RenderStats{
		TotalPixels: width * height,
		TotalTiles:  len(tiles),
		Workers:     pool.GetNumWorkers(),
		Duration:    time.Since(startTime),
	}
	rt.logger.Printf("Render completed in %v (%.0f pixels/sec)\n", stats.Duration, stats.PixelsPerSecond())

	return canvas, stats, nil
}
