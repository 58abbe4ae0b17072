package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Refractive indices of common media
const (
	Vacuum  = 1.0
	Air     = 1.00029
	Water   = 1.333
	Glass   = 1.5
	Diamond = 2.417
)

// ObjectSpace maps world-space points into an object's own space
type ObjectSpace interface {
	WorldToObject(point core.Tuple) core.Tuple
}

// Material holds the Phong surface parameters of a shape
type Material struct {
	Color           core.Color
	Pattern         Pattern // overrides Color when set
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// Default returns the neutral white material
func Default() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: Vacuum,
	}
}

// NewGlass returns a clear glass-like material
func NewGlass() Material {
	m := Default()
	m.Transparency = 1.0
	m.RefractiveIndex = Glass
	return m
}

// ColorAt resolves the surface color at a world-space point on object.
// Patterned materials are sampled in object space, then in the pattern's own space.
func (m Material) ColorAt(object ObjectSpace, worldPoint core.Tuple) core.Color {
	if m.Pattern == nil {
		return m.Color
	}
	return Sample(m.Pattern, object.WorldToObject(worldPoint))
}
