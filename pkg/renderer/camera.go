package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var ErrInvalidCamera = errors.New("invalid camera")

// Camera maps canvas pixels to world-space rays.
// The camera sits at its origin looking down -z at a view plane one unit away;
// its transform orients that setup in the world.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64

	transform  core.Matrix
	inverse    core.Matrix
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera with the identity view transform
func NewCamera(hsize, vsize int, fieldOfView float64) (*Camera, error) {
	if hsize <= 0 || vsize <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidCamera, hsize, vsize)
	}
	if fieldOfView <= 0 || fieldOfView >= math.Pi {
		return nil, fmt.Errorf("%w: field of view %f", ErrInvalidCamera, fieldOfView)
	}

	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   core.Identity(),
		inverse:     core.Identity(),
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)

	return c, nil
}

// NewCameraFromConfig creates a camera placed by a scene's camera configuration
func NewCameraFromConfig(hsize, vsize int, cfg scene.CameraConfig) (*Camera, error) {
	c, err := NewCamera(hsize, vsize, cfg.FieldOfView)
	if err != nil {
		return nil, err
	}
	view, err := core.ViewTransform(cfg.From, cfg.To, cfg.Up)
	if err != nil {
		return nil, fmt.Errorf("camera view: %w", err)
	}
	if err := c.SetTransform(view); err != nil {
		return nil, err
	}
	return c, nil
}

// SetTransform sets the world-to-camera transform
func (c *Camera) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("camera transform: %w", err)
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// Transform returns the world-to-camera transform
func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// PixelSize returns the world-space width of one pixel on the view plane
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the world-space ray through the center of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// The camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.Point(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.Point(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}

// Render traces every pixel serially with the default Whitted integrator
func (c *Camera) Render(world *scene.World) *Canvas {
	return c.RenderWith(world, integrator.NewWhitted(integrator.DefaultMaxDepth))
}

// RenderWith traces every pixel serially with the given integrator
func (c *Camera) RenderWith(world *scene.World, integ integrator.Integrator) *Canvas {
	canvas := NewCanvas(c.HSize, c.VSize)
	for y := 0; y < c.VSize; y++ {
		for x := 0; x < c.HSize; x++ {
			canvas.WritePixel(x, y, integ.RayColor(c.RayForPixel(x, y), world))
		}
	}
	return canvas
}
