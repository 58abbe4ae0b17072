package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Computations is the shading state derived from a single intersection
type Computations struct {
	T          float64
	Object     *Shape
	Point      core.Tuple
	OverPoint  core.Tuple // nudged outward, origin for shadow and reflection rays
	UnderPoint core.Tuple // nudged inward, origin for refraction rays
	EyeV       core.Tuple
	NormalV    core.Tuple
	ReflectV   core.Tuple
	Inside     bool
	N1         float64 // refractive index of the medium being exited
	N2         float64 // refractive index of the medium being entered
}

// PrepareComputations derives shading state for hit along ray.
// xs is the full sorted intersection list that produced hit; it is only used for refractive indices.
func PrepareComputations(hit Intersection, ray core.Ray, xs Intersections) Computations {
	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
	}

	comps.Point = ray.Position(comps.T)
	comps.EyeV = ray.Direction.Negate()
	comps.NormalV = comps.Object.NormalAt(comps.Point)

	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}

	comps.ReflectV = ray.Direction.Reflect(comps.NormalV)
	offset := comps.NormalV.Multiply(core.Epsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.Subtract(offset)

	comps.N1, comps.N2 = refractiveIndices(hit, xs)
	return comps
}

// refractiveIndices walks xs tracking which objects the ray is inside of.
// An object is pushed when entered and removed (wherever it sits) when exited.
func refractiveIndices(hit Intersection, xs Intersections) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0
	var containers []*Shape

	for _, x := range xs {
		isHit := x.Equal(hit)
		if isHit && len(containers) > 0 {
			n1 = containers[len(containers)-1].Material.RefractiveIndex
		}

		if idx := indexOf(containers, x.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if isHit {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].Material.RefractiveIndex
			}
			break
		}
	}
	return n1, n2
}

func indexOf(shapes []*Shape, s *Shape) int {
	for i, candidate := range shapes {
		if candidate == s {
			return i
		}
	}
	return -1
}

// Schlick approximates the Fresnel reflectance at the hit
func (c Computations) Schlick() float64 {
	cos := c.EyeV.Dot(c.NormalV)

	// total internal reflection can only happen when leaving the denser medium
	if c.N1 > c.N2 {
		n := c.N1 / c.N2
		sin2t := n * n * (1 - cos*cos)
		if sin2t > 1 {
			return 1.0
		}
		cos = math.Sqrt(1 - sin2t)
	}

	r0 := (c.N1 - c.N2) / (c.N1 + c.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
