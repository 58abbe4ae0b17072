package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewNestedGlassScene creates a hollow glass sphere (glass shell around an air bubble) next to a
// water-filled glass cylinder, in front of a checkered wall that makes the refraction visible
func NewNestedGlassScene(cameraOverrides ...CameraConfig) *Scene {
	defaultCameraConfig := CameraConfig{
		From:        core.Point(0, 1.5, -5),
		To:          core.Point(0, 1, 0),
		Up:          core.Vector(0, 1, 0),
		FieldOfView: math.Pi / 3,
	}

	floorMat := material.Default()
	floorMat.Color = core.NewColor(0.7, 0.7, 0.65)
	floorMat.Specular = 0
	floor := mustPlace(geometry.NewPlane(), core.Identity(), floorMat)
	floor.Name = "floor"

	wallMat := material.Default()
	wallMat.Pattern = material.NewCheckers(
		material.NewSolid(core.NewColor(0.9, 0.2, 0.2)),
		material.NewSolid(core.NewColor(0.95, 0.95, 0.95)),
	)
	wallMat.Specular = 0
	wallMat.Ambient = 0.3
	wall := mustPlace(geometry.NewPlane(), core.Identity().Translate(0, 0, 4).RotateX(math.Pi/2), wallMat)
	wall.Name = "wall"

	shellMat := material.NewGlass()
	shellMat.Color = core.Black
	shellMat.Diffuse = 0.1
	shellMat.Ambient = 0
	shellMat.Specular = 1
	shellMat.Shininess = 300
	shell := mustPlace(geometry.NewSphere(), core.Identity().Translate(-1, 1, 0), shellMat)
	shell.Name = "shell"

	bubbleMat := shellMat
	bubbleMat.RefractiveIndex = material.Air
	bubble := mustPlace(geometry.NewSphere(), core.Identity().Translate(-1, 1, 0).Scale(0.9, 0.9, 0.9), bubbleMat)
	bubble.Name = "bubble"

	jarMat := shellMat
	jar := mustPlace(geometry.NewCylinder(0, 2, true), core.Identity().Translate(1.2, 0, 0).Scale(0.6, 1, 0.6), jarMat)
	jar.Name = "jar"

	waterMat := shellMat
	waterMat.RefractiveIndex = material.Water
	water := mustPlace(geometry.NewCylinder(0.05, 1.4, true), core.Identity().Translate(1.2, 0, 0).Scale(0.55, 1, 0.55), waterMat)
	water.Name = "water"

	light := lights.NewPointLight(core.Point(-6, 8, -8), core.White)
	world, _ := NewWorld(light, floor, wall, shell, bubble, jar, water)

	return newScene("nested-glass", world, defaultCameraConfig, cameraOverrides)
}
