package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cube is the axis-aligned box spanning [-1, 1] on every axis in object space
type Cube struct{}

// NewCube creates a cube shape
func NewCube() *Shape {
	return NewShape(Cube{})
}

// LocalIntersect runs the slab test on all three axes
func (Cube) LocalIntersect(ray core.Ray) []float64 {
	xmin, xmax := checkAxis(ray.Origin.X, ray.Direction.X)
	ymin, ymax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	zmin, zmax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tmin := math.Max(xmin, math.Max(ymin, zmin))
	tmax := math.Min(xmax, math.Min(ymax, zmax))
	if tmin > tmax {
		return nil
	}
	return []float64{tmin, tmax}
}

// checkAxis returns where the ray enters and leaves the slab [-1, 1] on one axis
func checkAxis(origin, direction float64) (tmin, tmax float64) {
	if math.Abs(direction) < core.Epsilon {
		// Parallel: either always inside the slab or never
		if origin >= -1 && origin <= 1 {
			return math.Inf(-1), math.Inf(1)
		}
		return math.Inf(1), math.Inf(-1)
	}

	tmin = (-1 - origin) / direction
	tmax = (1 - origin) / direction
	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

// LocalNormalAt picks the face whose axis has the largest absolute component
func (Cube) LocalNormalAt(point core.Tuple) core.Tuple {
	absX, absY, absZ := math.Abs(point.X), math.Abs(point.Y), math.Abs(point.Z)
	maxc := math.Max(absX, math.Max(absY, absZ))

	switch maxc {
	case absX:
		return core.Vector(point.X, 0, 0)
	case absY:
		return core.Vector(0, point.Y, 0)
	default:
		return core.Vector(0, 0, point.Z)
	}
}
