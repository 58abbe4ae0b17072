package geometry

import (
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Intersection records where along a ray an object was hit
type Intersection struct {
	T      float64
	Object *Shape
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object *Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// Equal reports whether two intersections are on the same object at the same distance
func (i Intersection) Equal(other Intersection) bool {
	return i.Object == other.Object && core.FloatEqual(i.T, other.T)
}

// Intersections is a list of intersections ordered by ascending t
type Intersections []Intersection

// NewIntersections returns the given intersections sorted by t.
// Ties keep their argument order.
func NewIntersections(xs ...Intersection) Intersections {
	result := make(Intersections, len(xs))
	copy(result, xs)
	sort.SliceStable(result, func(a, b int) bool {
		return result[a].T < result[b].T
	})
	return result
}

// Merge combines several sorted lists into one sorted list
func Merge(lists ...Intersections) Intersections {
	var all []Intersection
	for _, xs := range lists {
		all = append(all, xs...)
	}
	return NewIntersections(all...)
}

// Hit returns the intersection with the smallest non-negative t
func (xs Intersections) Hit() (Intersection, bool) {
	var hit Intersection
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < hit.T {
			hit = x
			found = true
		}
	}
	return hit, found
}
