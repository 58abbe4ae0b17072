package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewCylinderTestScene creates a mix of open and capped cylinders on a ring-patterned floor
func NewCylinderTestScene(cameraOverrides ...CameraConfig) *Scene {
	defaultCameraConfig := CameraConfig{
		From:        core.Point(0, 2.5, -6),
		To:          core.Point(0, 0.75, 0),
		Up:          core.Vector(0, 1, 0),
		FieldOfView: math.Pi / 3,
	}

	floorMat := material.Default()
	floorMat.Pattern = material.NewRing(
		material.NewSolid(core.NewColor(0.6, 0.6, 0.6)),
		material.NewSolid(core.NewColor(0.4, 0.4, 0.4)),
	)
	floorMat.Specular = 0
	floor := mustPlace(geometry.NewPlane(), core.Identity(), floorMat)
	floor.Name = "floor"

	// Right: tall capped red cylinder
	redMat := material.Default()
	redMat.Color = core.NewColor(0.8, 0.2, 0.2)
	red := mustPlace(geometry.NewCylinder(0, 2, true), core.Identity().Translate(1.8, 0, 0).Scale(0.5, 1, 0.5), redMat)
	red.Name = "red"

	// Left: capped blue cylinder lying along x
	blueMat := material.Default()
	blueMat.Color = core.NewColor(0.2, 0.2, 0.8)
	blue := mustPlace(geometry.NewCylinder(-0.5, 0.5, true),
		core.Identity().Translate(-2, 0.3, 0).RotateZ(math.Pi/2).Scale(0.3, 1, 0.3), blueMat)
	blue.Name = "blue"

	// Center: open gold tube tilted toward the camera
	goldMat := material.Default()
	goldMat.Color = core.NewColor(0.8, 0.6, 0.2)
	goldMat.Reflective = 0.4
	goldMat.Shininess = 50
	gold := mustPlace(geometry.NewCylinder(-1, 1, false),
		core.Identity().Translate(0, 1, 0).RotateX(math.Pi/3).Scale(0.35, 1, 0.35), goldMat)
	gold.Name = "gold"

	// Front: short glass cylinder
	glassMat := material.NewGlass()
	glassMat.Color = core.NewColor(0.05, 0.05, 0.05)
	glassMat.Specular = 1
	glassMat.Shininess = 300
	glass := mustPlace(geometry.NewCylinder(0, 0.6, true), core.Identity().Translate(0.5, 0, -1.5).Scale(0.2, 1, 0.2), glassMat)
	glass.Name = "glass"

	light := lights.NewPointLight(core.Point(-4, 6, -6), core.White)
	world, _ := NewWorld(light, floor, red, blue, gold, glass)

	return newScene("cylinders", world, defaultCameraConfig, cameraOverrides)
}
