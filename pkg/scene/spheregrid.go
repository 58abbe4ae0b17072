package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewSphereGridScene creates a grid of spheres that sweeps reflectivity along one axis and
// transparency along the other
func NewSphereGridScene(gridSize int, cameraOverrides ...CameraConfig) *Scene {
	if gridSize < 1 {
		gridSize = 1
	}

	spacing := 1.2
	extent := float64(gridSize-1) * spacing

	defaultCameraConfig := CameraConfig{
		From:        core.Point(0, extent*0.8+2, -extent-4),
		To:          core.Point(0, 0.5, 0),
		Up:          core.Vector(0, 1, 0),
		FieldOfView: math.Pi / 3,
	}

	floorMat := material.Default()
	floorMat.Pattern = material.NewCheckers(
		material.NewSolid(core.NewColor(0.8, 0.8, 0.8)),
		material.NewSolid(core.NewColor(0.3, 0.3, 0.3)),
	)
	floorMat.Specular = 0
	floor := mustPlace(geometry.NewPlane(), core.Identity(), floorMat)
	floor.Name = "floor"

	objects := []*geometry.Shape{floor}
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - extent/2
			z := float64(j)*spacing - extent/2

			m := material.Default()
			m.Color = sphereGridColor(i, j, gridSize)
			if gridSize > 1 {
				m.Reflective = float64(i) / float64(gridSize-1) * 0.9
				m.Transparency = float64(j) / float64(gridSize-1) * 0.9
			}
			if m.Transparency > 0 {
				m.RefractiveIndex = material.Glass
			}

			s := mustPlace(geometry.NewSphere(), core.Identity().Translate(x, 0.5, z).Scale(0.5, 0.5, 0.5), m)
			s.Name = fmt.Sprintf("sphere %d,%d", i, j)
			objects = append(objects, s)
		}
	}

	light := lights.NewPointLight(core.Point(-10, 12, -10), core.White)
	world, _ := NewWorld(light, objects...)

	return newScene("spheregrid", world, defaultCameraConfig, cameraOverrides)
}

// sphereGridColor spreads hues across the grid
func sphereGridColor(i, j, n int) core.Color {
	if n == 1 {
		return core.NewColor(0.8, 0.3, 0.3)
	}
	u := float64(i) / float64(n-1)
	v := float64(j) / float64(n-1)
	return core.NewColor(0.2+0.7*u, 0.3+0.4*v, 0.9-0.7*u)
}
