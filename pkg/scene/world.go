package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

var (
	ErrMissingLight  = errors.New("world has no light")
	ErrMissingObject = errors.New("world has no objects")
)

// World holds the objects in a scene and the light that illuminates them
type World struct {
	Light      *lights.PointLight
	Objects    []*geometry.Shape
	Background core.Color // color returned when a ray escapes the scene
}

// NewWorld creates a world lit by light containing objects.
// A world without a light or without any objects cannot be rendered.
func NewWorld(light *lights.PointLight, objects ...*geometry.Shape) (*World, error) {
	if light == nil {
		return nil, ErrMissingLight
	}
	if !light.Position.IsPoint() {
		return nil, fmt.Errorf("light position %v is not a point: %w", light.Position, core.ErrInvalidTuple)
	}
	if len(objects) == 0 {
		return nil, ErrMissingObject
	}
	for i, obj := range objects {
		if obj == nil {
			return nil, fmt.Errorf("object %d: %w", i, ErrMissingObject)
		}
	}
	return &World{
		Light:      light,
		Objects:    objects,
		Background: core.Black,
	}, nil
}

// AddObject appends an object to the world
func (w *World) AddObject(s *geometry.Shape) {
	w.Objects = append(w.Objects, s)
}

// Intersect returns every intersection of ray with the world's objects, sorted by t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	lists := make([]geometry.Intersections, 0, len(w.Objects))
	for _, obj := range w.Objects {
		if xs := obj.Intersect(ray); len(xs) > 0 {
			lists = append(lists, xs)
		}
	}
	return geometry.Merge(lists...)
}

// IsShadowed reports whether an object lies between point and the light.
// Transparent objects cast full shadows.
func (w *World) IsShadowed(point core.Tuple) bool {
	v := w.Light.Position.Subtract(point)
	distance := v.Magnitude()
	ray := core.NewRay(point, v.Normalize())

	hit, ok := w.Intersect(ray).Hit()
	return ok && hit.T < distance
}

// DefaultWorld creates the two concentric sphere world used to check shading
func DefaultWorld() *World {
	light := lights.NewPointLight(core.Point(-10, 10, -10), core.White)

	outer := geometry.NewSphere()
	outer.Name = "outer"
	outer.Material.Color = core.NewColor(0.8, 1.0, 0.6)
	outer.Material.Diffuse = 0.7
	outer.Material.Specular = 0.2

	inner := mustPlace(geometry.NewSphere(), core.Scaling(0.5, 0.5, 0.5), material.Default())
	inner.Name = "inner"

	w, _ := NewWorld(light, outer, inner)
	return w
}

// mustPlace sets a shape's transform and material.
// It panics on a singular transform and is only used with constant transforms.
func mustPlace(s *geometry.Shape, transform core.Matrix, m material.Material) *geometry.Shape {
	if err := s.SetTransform(transform); err != nil {
		panic(err)
	}
	s.Material = m
	return s
}
