package lights

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

type LightType string

const (
	LightTypePoint LightType = "point"
)

// PointLight is a light source with no size radiating equally in every direction
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Tuple, intensity core.Color) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

// Type returns the light type
func (l *PointLight) Type() LightType {
	return LightTypePoint
}
