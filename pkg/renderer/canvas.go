package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Canvas is a row-major buffer of linear RGB pixels with (0,0) at the top-left
type Canvas struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewCanvas creates a black canvas
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// PixelAt returns the color at (x, y); coordinates outside the canvas read as black
func (c *Canvas) PixelAt(x, y int) core.Color {
	if !c.inBounds(x, y) {
		return core.Black
	}
	return c.Pixels[y*c.Width+x]
}

// WritePixel sets the color at (x, y); coordinates outside the canvas are ignored
func (c *Canvas) WritePixel(x, y int, color core.Color) {
	if !c.inBounds(x, y) {
		return
	}
	c.Pixels[y*c.Width+x] = color
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}
