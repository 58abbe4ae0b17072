package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane is the infinite xz plane (y = 0) in object space
type Plane struct{}

// NewPlane creates a plane shape
func NewPlane() *Shape {
	return NewShape(Plane{})
}

// LocalIntersect returns the single crossing of y = 0, or nothing for parallel rays
func (Plane) LocalIntersect(ray core.Ray) []float64 {
	// coplanar rays are treated as parallel; the plane is infinitely thin
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

// LocalNormalAt is constant across the plane
func (Plane) LocalNormalAt(point core.Tuple) core.Tuple {
	return core.Vector(0, 1, 0)
}
