package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Primitive is the object-space half of a shape
type Primitive interface {
	// LocalIntersect returns every t where the object-space ray meets the surface, in any order
	LocalIntersect(ray core.Ray) []float64
	// LocalNormalAt returns the (not necessarily unit) normal at an object-space surface point
	LocalNormalAt(point core.Tuple) core.Tuple
}
