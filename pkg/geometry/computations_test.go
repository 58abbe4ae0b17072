package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPrepareComputations_Outside(t *testing.T) {
	r := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
	s := NewSphere()
	i := NewIntersection(4, s)

	comps := PrepareComputations(i, r, NewIntersections(i))
	if comps.T != i.T || comps.Object != s {
		t.Errorf("Computations should carry the intersection, got t=%f", comps.T)
	}
	if !comps.Point.Equal(core.Point(0, 0, -1)) {
		t.Errorf("Point: got %v", comps.Point)
	}
	if !comps.EyeV.Equal(core.Vector(0, 0, -1)) {
		t.Errorf("EyeV: got %v", comps.EyeV)
	}
	if !comps.NormalV.Equal(core.Vector(0, 0, -1)) {
		t.Errorf("NormalV: got %v", comps.NormalV)
	}
	if comps.Inside {
		t.Error("Expected hit from outside")
	}
}

func TestPrepareComputations_Inside(t *testing.T) {
	r := core.NewRay(core.Point(0, 0, 0), core.Vector(0, 0, 1))
	i := NewIntersection(1, NewSphere())

	comps := PrepareComputations(i, r, NewIntersections(i))
	if !comps.Point.Equal(core.Point(0, 0, 1)) {
		t.Errorf("Point: got %v", comps.Point)
	}
	if !comps.EyeV.Equal(core.Vector(0, 0, -1)) {
		t.Errorf("EyeV: got %v", comps.EyeV)
	}
	if !comps.Inside {
		t.Error("Expected hit from inside")
	}
	// normal is flipped to face the eye
	if !comps.NormalV.Equal(core.Vector(0, 0, -1)) {
		t.Errorf("NormalV: got %v", comps.NormalV)
	}
}

func TestPrepareComputations_ReflectV(t *testing.T) {
	h := math.Sqrt2 / 2
	r := core.NewRay(core.Point(0, 1, -1), core.Vector(0, -h, h))
	i := NewIntersection(math.Sqrt2, NewPlane())

	comps := PrepareComputations(i, r, NewIntersections(i))
	if !comps.ReflectV.Equal(core.Vector(0, h, h)) {
		t.Errorf("ReflectV: got %v", comps.ReflectV)
	}
}

func TestPrepareComputations_OverAndUnderPoint(t *testing.T) {
	r := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))

	s := NewSphere()
	mustTransform(t, s, core.Translation(0, 0, 1))
	i := NewIntersection(5, s)
	comps := PrepareComputations(i, r, NewIntersections(i))
	if comps.OverPoint.Z >= -core.Epsilon/2 {
		t.Errorf("OverPoint should sit above the surface, got %v", comps.OverPoint)
	}
	if comps.Point.Z <= comps.OverPoint.Z {
		t.Errorf("Point %v should be below OverPoint %v", comps.Point, comps.OverPoint)
	}

	glass := NewGlassSphere()
	mustTransform(t, glass, core.Translation(0, 0, 1))
	i = NewIntersection(5, glass)
	comps = PrepareComputations(i, r, NewIntersections(i))
	if comps.UnderPoint.Z <= core.Epsilon/2 {
		t.Errorf("UnderPoint should sit below the surface, got %v", comps.UnderPoint)
	}
	if comps.Point.Z >= comps.UnderPoint.Z {
		t.Errorf("Point %v should be above UnderPoint %v", comps.Point, comps.UnderPoint)
	}
}

func TestPrepareComputations_RefractiveIndices(t *testing.T) {
	a := NewGlassSphere()
	mustTransform(t, a, core.Scaling(2, 2, 2))
	a.Material.RefractiveIndex = 1.5

	b := NewGlassSphere()
	mustTransform(t, b, core.Translation(0, 0, -0.25))
	b.Material.RefractiveIndex = 2.0

	c := NewGlassSphere()
	mustTransform(t, c, core.Translation(0, 0, 0.25))
	c.Material.RefractiveIndex = 2.5

	r := core.NewRay(core.Point(0, 0, -4), core.Vector(0, 0, 1))
	xs := NewIntersections(
		NewIntersection(2, a),
		NewIntersection(2.75, b),
		NewIntersection(3.25, c),
		NewIntersection(4.75, b),
		NewIntersection(5.25, c),
		NewIntersection(6, a),
	)

	expected := []struct{ n1, n2 float64 }{
		{1.0, 1.5},
		{1.5, 2.0},
		{2.0, 2.5},
		{2.5, 2.5},
		{2.5, 1.5},
		{1.5, 1.0},
	}
	for index, want := range expected {
		comps := PrepareComputations(xs[index], r, xs)
		if comps.N1 != want.n1 || comps.N2 != want.n2 {
			t.Errorf("xs[%d]: expected n1=%.1f n2=%.1f, got n1=%.1f n2=%.1f",
				index, want.n1, want.n2, comps.N1, comps.N2)
		}
	}
}

func TestSchlick(t *testing.T) {
	h := math.Sqrt2 / 2
	tests := []struct {
		name     string
		ray      core.Ray
		ts       []float64
		hitIndex int
		expected float64
	}{
		{"total internal reflection", core.NewRay(core.Point(0, 0, h), core.Vector(0, 1, 0)), []float64{-h, h}, 1, 1.0},
		{"perpendicular view", core.NewRay(core.Point(0, 0, 0), core.Vector(0, 1, 0)), []float64{-1, 1}, 1, 0.04},
		{"small angle, n2 > n1", core.NewRay(core.Point(0, 0.99, -2), core.Vector(0, 0, 1)), []float64{1.8589}, 0, 0.48873},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewGlassSphere()
			var list []Intersection
			for _, v := range tt.ts {
				list = append(list, NewIntersection(v, s))
			}
			xs := NewIntersections(list...)

			comps := PrepareComputations(xs[tt.hitIndex], tt.ray, xs)
			if got := comps.Schlick(); !core.FloatEqual(got, tt.expected) {
				t.Errorf("Expected reflectance %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestSchlick_TotalInternalReflectionIsExact(t *testing.T) {
	h := math.Sqrt2 / 2
	s := NewGlassSphere()
	xs := NewIntersections(NewIntersection(-h, s), NewIntersection(h, s))
	comps := PrepareComputations(xs[1], core.NewRay(core.Point(0, 0, h), core.Vector(0, 1, 0)), xs)
	if comps.Schlick() != 1.0 {
		t.Errorf("Expected exactly 1.0, got %v", comps.Schlick())
	}
}
