package geometry

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCube_Intersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		t1, t2    float64
	}{
		{"+x", core.Point(5, 0.5, 0), core.Vector(-1, 0, 0), 4, 6},
		{"-x", core.Point(-5, 0.5, 0), core.Vector(1, 0, 0), 4, 6},
		{"+y", core.Point(0.5, 5, 0), core.Vector(0, -1, 0), 4, 6},
		{"-y", core.Point(0.5, -5, 0), core.Vector(0, 1, 0), 4, 6},
		{"+z", core.Point(0.5, 0, 5), core.Vector(0, 0, -1), 4, 6},
		{"-z", core.Point(0.5, 0, -5), core.Vector(0, 0, 1), 4, 6},
		{"inside", core.Point(0, 0.5, 0), core.Vector(0, 0, 1), -1, 1},
	}

	c := Cube{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := c.LocalIntersect(core.NewRay(tt.origin, tt.direction))
			if len(ts) != 2 {
				t.Fatalf("Expected 2 intersections, got %v", ts)
			}
			if !core.FloatEqual(ts[0], tt.t1) || !core.FloatEqual(ts[1], tt.t2) {
				t.Errorf("Expected (%f, %f), got %v", tt.t1, tt.t2, ts)
			}
		})
	}
}

func TestCube_Miss(t *testing.T) {
	tests := []struct {
		origin    core.Tuple
		direction core.Tuple
	}{
		{core.Point(-2, 0, 0), core.Vector(0.2673, 0.5345, 0.8018)},
		{core.Point(0, -2, 0), core.Vector(0.8018, 0.2673, 0.5345)},
		{core.Point(0, 0, -2), core.Vector(0.5345, 0.8018, 0.2673)},
		{core.Point(2, 0, 2), core.Vector(0, 0, -1)},
		{core.Point(0, 2, 2), core.Vector(0, -1, 0)},
		{core.Point(2, 2, 0), core.Vector(-1, 0, 0)},
	}

	c := Cube{}
	for _, tt := range tests {
		if ts := c.LocalIntersect(core.NewRay(tt.origin, tt.direction)); len(ts) != 0 {
			t.Errorf("Ray from %v along %v: expected miss, got %v", tt.origin, tt.direction, ts)
		}
	}
}

func TestCube_Normal(t *testing.T) {
	tests := []struct {
		point    core.Tuple
		expected core.Tuple
	}{
		{core.Point(1, 0.5, -0.8), core.Vector(1, 0, 0)},
		{core.Point(-1, -0.2, 0.9), core.Vector(-1, 0, 0)},
		{core.Point(-0.4, 1, -0.1), core.Vector(0, 1, 0)},
		{core.Point(0.3, -1, -0.7), core.Vector(0, -1, 0)},
		{core.Point(-0.6, 0.3, 1), core.Vector(0, 0, 1)},
		{core.Point(0.4, 0.4, -1), core.Vector(0, 0, -1)},
		{core.Point(1, 1, 1), core.Vector(1, 0, 0)},
		{core.Point(-1, -1, -1), core.Vector(-1, 0, 0)},
	}

	c := Cube{}
	for _, tt := range tests {
		if got := c.LocalNormalAt(tt.point); !got.Equal(tt.expected) {
			t.Errorf("LocalNormalAt(%v): expected %v, got %v", tt.point, tt.expected, got)
		}
	}
}

func TestCube_Transformed(t *testing.T) {
	s := NewCube()
	mustTransform(t, s, core.Translation(0, 0, 3).Multiply(core.Scaling(2, 2, 2)))
	assertTs(t, s.Intersect(core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))), 6, 10)

	if got := s.NormalAt(core.Point(0, 0, 1)); !got.Equal(core.Vector(0, 0, -1)) {
		t.Errorf("Expected front face normal, got %v", got)
	}
}
