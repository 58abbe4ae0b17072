package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Scene pairs a world with the camera placement it is meant to be viewed from
type Scene struct {
	Name         string
	World        *World
	CameraConfig CameraConfig
}

// CameraConfig describes where the camera sits and what it looks at
type CameraConfig struct {
	From        core.Tuple
	To          core.Tuple
	Up          core.Tuple
	FieldOfView float64 // horizontal or vertical, whichever image side is longer (radians)
}

// MergeCameraConfig returns base with any non-zero fields of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.From != (core.Tuple{}) {
		result.From = override.From
	}
	if override.To != (core.Tuple{}) {
		result.To = override.To
	}
	if override.Up != (core.Tuple{}) {
		result.Up = override.Up
	}
	if override.FieldOfView != 0 {
		result.FieldOfView = override.FieldOfView
	}
	return result
}

// newScene applies optional camera overrides to a builder's default camera
func newScene(name string, world *World, defaults CameraConfig, overrides []CameraConfig) *Scene {
	cfg := defaults
	if len(overrides) > 0 {
		cfg = MergeCameraConfig(defaults, overrides[0])
	}
	return &Scene{Name: name, World: world, CameraConfig: cfg}
}
