package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewConeTestScene creates single and double cones, capped and open, over a gradient floor
func NewConeTestScene(cameraOverrides ...CameraConfig) *Scene {
	defaultCameraConfig := CameraConfig{
		From:        core.Point(0, 3, -7),
		To:          core.Point(0, 1, 0),
		Up:          core.Vector(0, 1, 0),
		FieldOfView: math.Pi / 3,
	}

	floorMat := material.Default()
	gradient := material.NewGradient(
		material.NewSolid(core.NewColor(0.9, 0.8, 0.6)),
		material.NewSolid(core.NewColor(0.4, 0.5, 0.7)),
	)
	if err := gradient.SetTransform(core.Scaling(4, 1, 1)); err != nil {
		panic(err)
	}
	floorMat.Pattern = gradient
	floorMat.Specular = 0
	floor := mustPlace(geometry.NewPlane(), core.Identity(), floorMat)
	floor.Name = "floor"

	// Left: upright capped cone, apex at the top
	coneMat := material.Default()
	coneMat.Color = core.NewColor(0.9, 0.3, 0.2)
	upright := mustPlace(geometry.NewCone(-1, 0, true), core.Identity().Translate(-2, 1.5, 0).Scale(0.7, 1.5, 0.7), coneMat)
	upright.Name = "upright"

	// Center: open double cone (hourglass), checkered
	hourMat := material.Default()
	checks := material.NewCheckers(
		material.NewSolid(core.NewColor(0.2, 0.7, 0.3)),
		material.NewSolid(core.NewColor(0.95, 0.95, 0.95)),
	)
	if err := checks.SetTransform(core.Scaling(0.25, 0.25, 0.25)); err != nil {
		panic(err)
	}
	hourMat.Pattern = checks
	hourglass := mustPlace(geometry.NewCone(-1, 1, false), core.Translation(0, 1, 0.5), hourMat)
	hourglass.Name = "hourglass"

	// Right: mirrored cone lying on its side
	mirrorMat := material.Default()
	mirrorMat.Color = core.NewColor(0.2, 0.2, 0.2)
	mirrorMat.Reflective = 0.8
	mirrorMat.Shininess = 300
	mirror := mustPlace(geometry.NewCone(0, 1, true),
		core.Identity().Translate(2, 0.6, 0).RotateZ(math.Pi/2).Scale(0.6, 1, 0.6), mirrorMat)
	mirror.Name = "mirror"

	light := lights.NewPointLight(core.Point(-5, 8, -8), core.White)
	world, _ := NewWorld(light, floor, upright, hourglass, mirror)

	return newScene("cones", world, defaultCameraConfig, cameraOverrides)
}
