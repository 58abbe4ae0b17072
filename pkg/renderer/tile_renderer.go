package renderer

import (
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	camera     *Camera
	world      *scene.World
	integrator integrator.Integrator
}

// NewTileRenderer creates a new tile renderer with the given camera, world and integrator
func NewTileRenderer(camera *Camera, world *scene.World, integ integrator.Integrator) *TileRenderer {
	return &TileRenderer{
		camera:     camera,
		world:      world,
		integrator: integ,
	}
}

// RenderTileBounds renders pixels within bounds into canvas and returns the pixel count.
// Each pixel is written once, so tiles with disjoint bounds can render concurrently.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, canvas *Canvas) int {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray := tr.camera.RayForPixel(x, y)
			canvas.WritePixel(x, y, tr.integrator.RayColor(ray, tr.world))
		}
	}
	return bounds.Dx() * bounds.Dy()
}
