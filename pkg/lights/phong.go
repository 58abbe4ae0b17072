package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Lighting shades a surface point with the Phong reflection model.
// The result is not clamped; values above 1 are left for image output to handle.
func Lighting(m material.Material, object material.ObjectSpace, light *PointLight, point, eyeV, normalV core.Tuple, inShadow bool) core.Color {
	// Combine surface color with the light's color/intensity
	effectiveColor := m.ColorAt(object, point).MultiplyColor(light.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)

	if inShadow {
		return ambient
	}

	lightV := light.Position.Subtract(point).Normalize()

	// A negative cosine means the light is on the other side of the surface
	lightDotNormal := lightV.Dot(normalV)
	if lightDotNormal < 0 {
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectV := lightV.Negate().Reflect(normalV)
	reflectDotEye := reflectV.Dot(eyeV)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
