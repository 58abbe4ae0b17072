package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cylinder is a radius-1 cylinder around the object-space y axis,
// truncated to Minimum <= y < Maximum and optionally closed with caps
type Cylinder struct {
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates a truncated cylinder shape
func NewCylinder(minimum, maximum float64, closed bool) *Shape {
	return NewShape(&Cylinder{Minimum: minimum, Maximum: maximum, Closed: closed})
}

// NewInfiniteCylinder creates a cylinder that extends forever along y
func NewInfiniteCylinder() *Shape {
	return NewCylinder(math.Inf(-1), math.Inf(1), false)
}

// LocalIntersect tests the curved wall and then the caps
func (c *Cylinder) LocalIntersect(ray core.Ray) []float64 {
	var ts []float64

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z

	// Parallel to the axis the wall can't be hit; only the caps can
	if math.Abs(a) >= core.Epsilon {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		discriminant := b*b - 4*a*cc
		if discriminant < 0 {
			return nil
		}

		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		ts = appendWithinBounds(ts, ray, c.Minimum, c.Maximum, t0, t1)
	}

	if c.Closed {
		ts = appendCaps(ts, ray, c.Minimum, 1, c.Maximum, 1)
	}
	return ts
}

// LocalNormalAt distinguishes the caps from the wall by radius and height
func (c *Cylinder) LocalNormalAt(point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < 1 && point.Y >= c.Maximum-core.Epsilon {
		return core.Vector(0, 1, 0)
	}
	if dist < 1 && point.Y <= c.Minimum+core.Epsilon {
		return core.Vector(0, -1, 0)
	}
	return core.Vector(point.X, 0, point.Z)
}

// appendWithinBounds keeps the roots whose y lies in [minimum, maximum)
func appendWithinBounds(ts []float64, ray core.Ray, minimum, maximum float64, roots ...float64) []float64 {
	for _, t := range roots {
		y := ray.Origin.Y + t*ray.Direction.Y
		if minimum <= y && y < maximum {
			ts = append(ts, t)
		}
	}
	return ts
}

// appendCaps intersects the planes y=minimum and y=maximum, keeping hits inside each cap's radius.
// An unbounded end has no cap.
func appendCaps(ts []float64, ray core.Ray, minimum, minRadius, maximum, maxRadius float64) []float64 {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return ts
	}

	if !math.IsInf(minimum, 0) {
		t := (minimum - ray.Origin.Y) / ray.Direction.Y
		if withinCap(ray, t, minRadius) {
			ts = append(ts, t)
		}
	}

	if !math.IsInf(maximum, 0) {
		t := (maximum - ray.Origin.Y) / ray.Direction.Y
		if withinCap(ray, t, maxRadius) {
			ts = append(ts, t)
		}
	}
	return ts
}

// withinCap reports whether the ray at t lies within radius of the y axis
func withinCap(ray core.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius
}
