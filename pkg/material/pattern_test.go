package material

import (
	"errors"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// fakeObject places a pattern inside an object with the given transform
type fakeObject struct {
	inverse core.Matrix
}

func newFakeObject(t *testing.T, m core.Matrix) fakeObject {
	t.Helper()
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return fakeObject{inverse: inv}
}

func (f fakeObject) WorldToObject(point core.Tuple) core.Tuple {
	return f.inverse.MultiplyTuple(point)
}

var (
	white = NewSolid(core.White)
	black = NewSolid(core.Black)
)

func TestStripe_Alternates(t *testing.T) {
	p := NewStripe(white, black)

	tests := []struct {
		name     string
		point    core.Tuple
		expected core.Color
	}{
		{"constant in y", core.Point(0, 1, 0), core.White},
		{"constant in y (2)", core.Point(0, 2, 0), core.White},
		{"constant in z", core.Point(0, 0, 1), core.White},
		{"constant in z (2)", core.Point(0, 0, 2), core.White},
		{"x=0", core.Point(0, 0, 0), core.White},
		{"x=0.9", core.Point(0.9, 0, 0), core.White},
		{"x=1", core.Point(1, 0, 0), core.Black},
		{"x=-0.1", core.Point(-0.1, 0, 0), core.Black},
		{"x=-1", core.Point(-1, 0, 0), core.Black},
		{"x=-1.1", core.Point(-1.1, 0, 0), core.White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.PatternAt(tt.point); !got.Equal(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestGradient_Interpolates(t *testing.T) {
	p := NewGradient(white, black)
	tests := []struct {
		x        float64
		expected core.Color
	}{
		{0, core.White},
		{0.25, core.NewColor(0.75, 0.75, 0.75)},
		{0.5, core.NewColor(0.5, 0.5, 0.5)},
		{0.75, core.NewColor(0.25, 0.25, 0.25)},
		{1.25, core.NewColor(0.75, 0.75, 0.75)},
	}
	for _, tt := range tests {
		if got := p.PatternAt(core.Point(tt.x, 0, 0)); !got.Equal(tt.expected) {
			t.Errorf("x=%f: expected %v, got %v", tt.x, tt.expected, got)
		}
	}
}

func TestRing_ExtendsInXAndZ(t *testing.T) {
	p := NewRing(white, black)
	tests := []struct {
		point    core.Tuple
		expected core.Color
	}{
		{core.Point(0, 0, 0), core.White},
		{core.Point(1, 0, 0), core.Black},
		{core.Point(0, 0, 1), core.Black},
		{core.Point(0.708, 0, 0.708), core.Black},
	}
	for _, tt := range tests {
		if got := p.PatternAt(tt.point); !got.Equal(tt.expected) {
			t.Errorf("%v: expected %v, got %v", tt.point, tt.expected, got)
		}
	}
}

func TestCheckers_RepeatsInEveryAxis(t *testing.T) {
	p := NewCheckers(white, black)
	tests := []struct {
		name     string
		point    core.Tuple
		expected core.Color
	}{
		{"origin", core.Point(0, 0, 0), core.White},
		{"x 0.99", core.Point(0.99, 0, 0), core.White},
		{"x 1.01", core.Point(1.01, 0, 0), core.Black},
		{"y 0.99", core.Point(0, 0.99, 0), core.White},
		{"y 1.01", core.Point(0, 1.01, 0), core.Black},
		{"z 0.99", core.Point(0, 0, 0.99), core.White},
		{"z 1.01", core.Point(0, 0, 1.01), core.Black},
		{"two steps", core.Point(1.5, 1.5, 0), core.White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.PatternAt(tt.point); !got.Equal(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPattern_DefaultTransformIsIdentity(t *testing.T) {
	p := NewDebug()
	if !p.Transform().Equal(core.Identity()) {
		t.Errorf("Expected identity transform, got\n%v", p.Transform())
	}
	if err := p.SetTransform(core.Translation(1, 2, 3)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !p.Transform().Equal(core.Translation(1, 2, 3)) {
		t.Errorf("Transform was not stored")
	}
	if err := p.SetTransform(core.Scaling(0, 1, 1)); !errors.Is(err, core.ErrNotInvertible) {
		t.Errorf("Expected ErrNotInvertible, got %v", err)
	}
}

func TestMaterial_ColorAtTransforms(t *testing.T) {
	tests := []struct {
		name       string
		object     core.Matrix
		pattern    core.Matrix
		worldPoint core.Tuple
		expected   core.Color
	}{
		{"object transform", core.Scaling(2, 2, 2), core.Identity(), core.Point(2, 3, 4), core.NewColor(1, 1.5, 2)},
		{"pattern transform", core.Identity(), core.Scaling(2, 2, 2), core.Point(2, 3, 4), core.NewColor(1, 1.5, 2)},
		{"both", core.Scaling(2, 2, 2), core.Translation(0.5, 1, 1.5), core.Point(2.5, 3, 3.5), core.NewColor(0.75, 0.5, 0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewDebug()
			if err := p.SetTransform(tt.pattern); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			m := Default()
			m.Pattern = p
			if got := m.ColorAt(newFakeObject(t, tt.object), tt.worldPoint); !got.Equal(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMaterial_StripesWithTransforms(t *testing.T) {
	stripes := NewStripe(white, black)
	m := Default()
	m.Pattern = stripes

	if got := m.ColorAt(newFakeObject(t, core.Scaling(2, 2, 2)), core.Point(1.5, 0, 0)); !got.Equal(core.White) {
		t.Errorf("Object scaling: expected white, got %v", got)
	}

	if err := stripes.SetTransform(core.Translation(0.5, 0, 0)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := m.ColorAt(newFakeObject(t, core.Scaling(2, 2, 2)), core.Point(2.5, 0, 0)); !got.Equal(core.White) {
		t.Errorf("Object and pattern transform: expected white, got %v", got)
	}
}

func TestMaterial_FlatColorWithoutPattern(t *testing.T) {
	m := Default()
	m.Color = core.NewColor(0.2, 0.4, 0.6)
	if got := m.ColorAt(newFakeObject(t, core.Translation(5, 5, 5)), core.Point(1, 2, 3)); !got.Equal(m.Color) {
		t.Errorf("Expected flat color %v, got %v", m.Color, got)
	}
}

func TestPattern_Nested(t *testing.T) {
	red := NewSolid(core.NewColor(1, 0, 0))
	blue := NewSolid(core.NewColor(0, 0, 1))

	// inner stripes are rotated onto z and scaled down by half
	inner := NewStripe(red, blue)
	if err := inner.SetTransform(core.Identity().RotateY(1.5707963267948966).Scale(0.5, 0.5, 0.5)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	outer := NewCheckers(inner, white)

	tests := []struct {
		name     string
		point    core.Tuple
		expected core.Color
	}{
		{"even cell, odd inner stripe", core.Point(0.25, 0, 0.25), core.NewColor(0, 0, 1)},
		{"even cell, even inner stripe", core.Point(0.25, 0, 0.75), core.NewColor(1, 0, 0)},
		{"odd cell", core.Point(1.25, 0, 0.25), core.White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sample(outer, tt.point); !got.Equal(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestBlend_Averages(t *testing.T) {
	p := NewBlend(NewStripe(white, black), NewSolid(core.NewColor(0, 0, 1)))
	if got := p.PatternAt(core.Point(0.5, 0, 0)); !got.Equal(core.NewColor(0.5, 0.5, 1)) {
		t.Errorf("Expected (0.5, 0.5, 1), got %v", got)
	}
	if got := p.PatternAt(core.Point(1.5, 0, 0)); !got.Equal(core.NewColor(0, 0, 0.5)) {
		t.Errorf("Expected (0, 0, 0.5), got %v", got)
	}
}
