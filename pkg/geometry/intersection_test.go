package geometry

import (
	"testing"
)

func TestIntersections_SortedOnConstruction(t *testing.T) {
	s := NewSphere()
	xs := NewIntersections(
		NewIntersection(5, s),
		NewIntersection(7, s),
		NewIntersection(-3, s),
		NewIntersection(2, s),
	)
	expected := []float64{-3, 2, 5, 7}
	for i, want := range expected {
		if xs[i].T != want {
			t.Errorf("xs[%d]: expected t=%f, got %f", i, want, xs[i].T)
		}
	}
}

func TestIntersections_Hit(t *testing.T) {
	s := NewSphere()
	tests := []struct {
		name     string
		ts       []float64
		expected float64
		found    bool
	}{
		{"all positive", []float64{1, 2}, 1, true},
		{"some negative", []float64{-1, 1}, 1, true},
		{"all negative", []float64{-2, -1}, 0, false},
		{"lowest non-negative", []float64{5, 7, -3, 2}, 2, true},
		{"insertion order is irrelevant", []float64{2, -3, 7, 5}, 2, true},
		{"zero counts as a hit", []float64{-1, 0, 3}, 0, true},
		{"empty", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list []Intersection
			for _, v := range tt.ts {
				list = append(list, NewIntersection(v, s))
			}

			// Hit must not depend on the list being sorted
			for _, xs := range []Intersections{Intersections(list), NewIntersections(list...)} {
				hit, ok := xs.Hit()
				if ok != tt.found {
					t.Fatalf("Expected found=%t, got %t", tt.found, ok)
				}
				if ok && (hit.T != tt.expected || hit.Object != s) {
					t.Errorf("Expected hit at t=%f, got %+v", tt.expected, hit)
				}
			}
		})
	}
}

func TestIntersections_Merge(t *testing.T) {
	a, b := NewSphere(), NewSphere()
	merged := Merge(
		NewIntersections(NewIntersection(4, a), NewIntersection(6, a)),
		NewIntersections(NewIntersection(4.5, b), NewIntersection(5.5, b)),
		nil,
	)
	if len(merged) != 4 {
		t.Fatalf("Expected 4 intersections, got %d", len(merged))
	}
	expected := []struct {
		t      float64
		object *Shape
	}{{4, a}, {4.5, b}, {5.5, b}, {6, a}}
	for i, want := range expected {
		if merged[i].T != want.t || merged[i].Object != want.object {
			t.Errorf("merged[%d]: expected %v, got %+v", i, want, merged[i])
		}
	}
}

func TestIntersection_Equal(t *testing.T) {
	a, b := NewSphere(), NewSphere()
	if !NewIntersection(1, a).Equal(NewIntersection(1.000001, a)) {
		t.Error("Expected intersections within epsilon to be equal")
	}
	if NewIntersection(1, a).Equal(NewIntersection(1, b)) {
		t.Error("Expected intersections on different objects to differ")
	}
}
