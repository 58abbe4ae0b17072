package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cone is a double-napped cone with its apex at the object-space origin.
// Its radius at height y is |y|; it is truncated to Minimum <= y < Maximum.
type Cone struct {
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates a truncated cone shape
func NewCone(minimum, maximum float64, closed bool) *Shape {
	return NewShape(&Cone{Minimum: minimum, Maximum: maximum, Closed: closed})
}

// NewInfiniteCone creates a cone that extends forever along y
func NewInfiniteCone() *Shape {
	return NewCone(math.Inf(-1), math.Inf(1), false)
}

// LocalIntersect tests both nappes and then the caps
func (c *Cone) LocalIntersect(ray core.Ray) []float64 {
	var ts []float64

	o, d := ray.Origin, ray.Direction

	// Quadratic equation coefficients, substituting x² - y² + z²
	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	cc := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	switch {
	case math.Abs(a) < core.Epsilon && math.Abs(b) < core.Epsilon:
		// parallel to a nappe and through the apex: no body hit
	case math.Abs(a) < core.Epsilon:
		// parallel to one nappe: the equation is linear
		ts = appendWithinBounds(ts, ray, c.Minimum, c.Maximum, -cc/b)
	default:
		discriminant := b*b - 4*a*cc
		if discriminant < 0 && discriminant > -core.Epsilon {
			// grazing rays along the surface round to a tiny negative value
			discriminant = 0
		}
		if discriminant >= 0 {
			sqrtD := math.Sqrt(discriminant)
			t0 := (-b - sqrtD) / (2 * a)
			t1 := (-b + sqrtD) / (2 * a)
			ts = appendWithinBounds(ts, ray, c.Minimum, c.Maximum, t0, t1)
		}
	}

	if c.Closed {
		ts = appendCaps(ts, ray, c.Minimum, math.Abs(c.Minimum), c.Maximum, math.Abs(c.Maximum))
	}
	return ts
}

// LocalNormalAt returns the cap normal on a cap, otherwise the slanted wall normal
func (c *Cone) LocalNormalAt(point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < c.Maximum*c.Maximum && point.Y >= c.Maximum-core.Epsilon {
		return core.Vector(0, 1, 0)
	}
	if dist < c.Minimum*c.Minimum && point.Y <= c.Minimum+core.Epsilon {
		return core.Vector(0, -1, 0)
	}

	y := math.Sqrt(dist)
	if point.Y > 0 {
		y = -y
	}
	return core.Vector(point.X, y, point.Z)
}
