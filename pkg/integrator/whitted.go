package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// DefaultMaxDepth bounds the number of reflection/refraction bounces per primary ray
const DefaultMaxDepth = 5

// Whitted implements recursive ray tracing: Phong direct lighting with hard shadows from a
// single point light, plus perfect mirror reflection and Snell refraction
type Whitted struct {
	MaxDepth int
}

// NewWhitted creates a Whitted integrator. A depth of 0 traces primary rays only;
// a negative depth uses DefaultMaxDepth.
func NewWhitted(maxDepth int) *Whitted {
	if maxDepth < 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Whitted{MaxDepth: maxDepth}
}

// RayColor computes the color for a primary ray
func (w *Whitted) RayColor(ray core.Ray, world *scene.World) core.Color {
	return w.ColorAt(world, ray, w.MaxDepth)
}

// ColorAt traces ray into world with remaining secondary bounces allowed
func (w *Whitted) ColorAt(world *scene.World, ray core.Ray, remaining int) core.Color {
	xs := world.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return world.Background
	}

	comps := geometry.PrepareComputations(hit, ray, xs)
	return w.ShadeHit(world, comps, remaining)
}

// ShadeHit combines direct lighting with reflected and refracted contributions
func (w *Whitted) ShadeHit(world *scene.World, comps geometry.Computations, remaining int) core.Color {
	m := comps.Object.Material
	shadowed := world.IsShadowed(comps.OverPoint)

	surface := lights.Lighting(m, comps.Object, world.Light, comps.OverPoint, comps.EyeV, comps.NormalV, shadowed)
	reflected := w.ReflectedColor(world, comps, remaining)
	refracted := w.RefractedColor(world, comps, remaining)

	// Surfaces that both reflect and transmit split energy by the Fresnel term
	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}

	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor traces the mirror bounce from the hit
func (w *Whitted) ReflectedColor(world *scene.World, comps geometry.Computations, remaining int) core.Color {
	reflective := comps.Object.Material.Reflective
	if remaining <= 0 || reflective < core.Epsilon {
		return core.Black
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	return w.ColorAt(world, reflectRay, remaining-1).Multiply(reflective)
}

// RefractedColor traces the transmitted ray through the hit using Snell's law.
// Total internal reflection contributes nothing here; the reflected term carries it.
func (w *Whitted) RefractedColor(world *scene.World, comps geometry.Computations, remaining int) core.Color {
	transparency := comps.Object.Material.Transparency
	if remaining <= 0 || transparency < core.Epsilon {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).Subtract(comps.EyeV.Multiply(nRatio))
	refractRay := core.NewRay(comps.UnderPoint, direction)

	return w.ColorAt(world, refractRay, remaining-1).Multiply(transparency)
}
