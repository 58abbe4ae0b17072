package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates a checkered floor with a mirror wall, a glass sphere and two matte spheres
func NewDefaultScene(cameraOverrides ...CameraConfig) *Scene {
	defaultCameraConfig := CameraConfig{
		From:        core.Point(0, 1.5, -5),
		To:          core.Point(0, 1, 0),
		Up:          core.Vector(0, 1, 0),
		FieldOfView: math.Pi / 3,
	}

	// Floor: checkers with a hint of reflection
	floorMat := material.Default()
	floorMat.Pattern = material.NewCheckers(
		material.NewSolid(core.NewColor(0.9, 0.9, 0.9)),
		material.NewSolid(core.NewColor(0.15, 0.15, 0.15)),
	)
	floorMat.Specular = 0
	floorMat.Reflective = 0.15
	floor := mustPlace(geometry.NewPlane(), core.Identity(), floorMat)
	floor.Name = "floor"

	// Back wall: striped, far enough to frame the spheres
	wallMat := material.Default()
	stripes := material.NewStripe(
		material.NewSolid(core.NewColor(0.45, 0.55, 0.75)),
		material.NewSolid(core.NewColor(0.35, 0.45, 0.65)),
	)
	if err := stripes.SetTransform(core.Identity().RotateY(math.Pi/2).Scale(0.5, 0.5, 0.5)); err != nil {
		panic(err)
	}
	wallMat.Pattern = stripes
	wallMat.Specular = 0
	wall := mustPlace(geometry.NewPlane(), core.Identity().Translate(0, 0, 10).RotateX(math.Pi/2), wallMat)
	wall.Name = "wall"

	middleMat := material.Default()
	middleMat.Color = core.NewColor(0.1, 1, 0.5)
	middleMat.Diffuse = 0.7
	middleMat.Specular = 0.3
	middle := mustPlace(geometry.NewSphere(), core.Translation(-0.5, 1, 0.5), middleMat)
	middle.Name = "middle"

	rightMat := material.Default()
	rightMat.Color = core.NewColor(0.5, 1, 0.1)
	rightMat.Diffuse = 0.7
	rightMat.Specular = 0.3
	rightMat.Reflective = 0.2
	right := mustPlace(geometry.NewSphere(), core.Identity().Translate(1.5, 0.5, -0.5).Scale(0.5, 0.5, 0.5), rightMat)
	right.Name = "right"

	glassMat := material.NewGlass()
	glassMat.Color = core.NewColor(0.1, 0.1, 0.1)
	glassMat.Diffuse = 0.1
	glassMat.Specular = 1
	glassMat.Shininess = 300
	glass := mustPlace(geometry.NewSphere(), core.Identity().Translate(-1.5, 0.33, -0.75).Scale(0.33, 0.33, 0.33), glassMat)
	glass.Name = "glass"

	light := lights.NewPointLight(core.Point(-10, 10, -10), core.White)
	world, _ := NewWorld(light, floor, wall, middle, right, glass)

	return newScene("default", world, defaultCameraConfig, cameraOverrides)
}
