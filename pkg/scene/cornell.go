package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewCornellScene creates a Cornell-style box: a room built from one cube seen from the inside,
// with colored side walls, a mirror block and a glass sphere
func NewCornellScene(cameraOverrides ...CameraConfig) *Scene {
	defaultCameraConfig := CameraConfig{
		From:        core.Point(0, 2.5, -4.8),
		To:          core.Point(0, 2.5, 0),
		Up:          core.Vector(0, 1, 0),
		FieldOfView: math.Pi / 2.5,
	}

	// The room is a 5×5×10 cube; rays from the camera start inside it
	roomMat := material.Default()
	roomMat.Color = core.NewColor(0.73, 0.73, 0.73)
	roomMat.Specular = 0
	room := mustPlace(geometry.NewCube(), core.Identity().Translate(0, 2.5, 0).Scale(2.5, 2.5, 5), roomMat)
	room.Name = "room"

	// Thin slabs just inside the room recolor the side walls
	redMat := material.Default()
	redMat.Color = core.NewColor(0.65, 0.05, 0.05)
	redMat.Specular = 0
	leftWall := mustPlace(geometry.NewCube(), core.Identity().Translate(-2.49, 2.5, 0).Scale(0.005, 2.5, 5), redMat)
	leftWall.Name = "left wall"

	greenMat := material.Default()
	greenMat.Color = core.NewColor(0.12, 0.45, 0.15)
	greenMat.Specular = 0
	rightWall := mustPlace(geometry.NewCube(), core.Identity().Translate(2.49, 2.5, 0).Scale(0.005, 2.5, 5), greenMat)
	rightWall.Name = "right wall"

	mirrorMat := material.Default()
	mirrorMat.Color = core.NewColor(0.1, 0.1, 0.1)
	mirrorMat.Reflective = 0.9
	mirrorMat.Shininess = 300
	block := mustPlace(geometry.NewCube(),
		core.Identity().Translate(-0.9, 1.5, 1.5).RotateY(math.Pi/8).Scale(0.75, 1.5, 0.75), mirrorMat)
	block.Name = "mirror block"

	glassMat := material.NewGlass()
	glassMat.Color = core.NewColor(0.05, 0.05, 0.05)
	glassMat.Specular = 1
	glassMat.Shininess = 300
	glass := mustPlace(geometry.NewSphere(), core.Identity().Translate(1, 0.8, 0).Scale(0.8, 0.8, 0.8), glassMat)
	glass.Name = "glass"

	light := lights.NewPointLight(core.Point(0, 4.5, -2), core.NewColor(0.9, 0.9, 0.9))
	world, _ := NewWorld(light, room, leftWall, rightWall, block, glass)

	return newScene("cornell", world, defaultCameraConfig, cameraOverrides)
}
