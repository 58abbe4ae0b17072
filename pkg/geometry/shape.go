package geometry

import (
	"fmt"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape places a Primitive in the world with a transform and a material.
// The primitive only ever sees object-space rays and points.
type Shape struct {
	Primitive
	Name     string
	Material material.Material

	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
}

// NewShape wraps a primitive with the identity transform and the default material
func NewShape(p Primitive) *Shape {
	return &Shape{
		Primitive:        p,
		Material:         material.Default(),
		transform:        core.Identity(),
		inverse:          core.Identity(),
		inverseTranspose: core.Identity(),
	}
}

// SetTransform sets the object-to-world transform; singular matrices are rejected
func (s *Shape) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("shape %q transform: %w", s.Name, err)
	}
	s.transform = m
	s.inverse = inv
	s.inverseTranspose = inv.Transpose()
	return nil
}

// Transform returns the object-to-world transform
func (s *Shape) Transform() core.Matrix {
	return s.transform
}

// WorldToObject maps a world-space point into object space
func (s *Shape) WorldToObject(point core.Tuple) core.Tuple {
	return s.inverse.MultiplyTuple(point)
}

// Intersect returns the sorted intersections of a world-space ray with the shape
func (s *Shape) Intersect(ray core.Ray) Intersections {
	ts := s.LocalIntersect(ray.Transform(s.inverse))
	if len(ts) == 0 {
		return nil
	}
	sort.Float64s(ts)

	xs := make(Intersections, len(ts))
	for i, t := range ts {
		xs[i] = Intersection{T: t, Object: s}
	}
	return xs
}

// NormalAt returns the unit world-space normal at a world-space point
func (s *Shape) NormalAt(worldPoint core.Tuple) core.Tuple {
	objectNormal := s.LocalNormalAt(s.WorldToObject(worldPoint))
	worldNormal := s.inverseTranspose.MultiplyTuple(objectNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}
