package material

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Pattern provides spatially-varying colors for materials
type Pattern interface {
	// PatternAt returns the color at a point already expressed in the pattern's space
	PatternAt(point core.Tuple) core.Color
	Transform() core.Matrix
	InverseTransform() core.Matrix
	SetTransform(m core.Matrix) error
}

// Sample maps a point from the enclosing space into p's space and evaluates it.
// Composite patterns call Sample on their children, so each level applies its own transform.
func Sample(p Pattern, point core.Tuple) core.Color {
	return p.PatternAt(p.InverseTransform().MultiplyTuple(point))
}

// transform is embedded by every pattern; the zero value is the identity
type transform struct {
	matrix  core.Matrix
	inverse core.Matrix
	set     bool
}

func (t *transform) Transform() core.Matrix {
	if !t.set {
		return core.Identity()
	}
	return t.matrix
}

func (t *transform) InverseTransform() core.Matrix {
	if !t.set {
		return core.Identity()
	}
	return t.inverse
}

func (t *transform) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("pattern transform: %w", err)
	}
	t.matrix, t.inverse, t.set = m, inv, true
	return nil
}

// Solid provides a uniform color
type Solid struct {
	transform
	Color core.Color
}

// NewSolid creates a new solid color pattern
func NewSolid(color core.Color) *Solid {
	return &Solid{Color: color}
}

// PatternAt returns the solid color regardless of position
func (s *Solid) PatternAt(point core.Tuple) core.Color {
	return s.Color
}

// Stripe alternates between A and B on each unit step of x
type Stripe struct {
	transform
	A, B Pattern
}

// NewStripe creates a new stripe pattern
func NewStripe(a, b Pattern) *Stripe {
	return &Stripe{A: a, B: b}
}

func (s *Stripe) PatternAt(point core.Tuple) core.Color {
	if isEven(math.Floor(point.X)) {
		return Sample(s.A, point)
	}
	return Sample(s.B, point)
}

// Ring alternates between A and B in concentric rings around the y axis
type Ring struct {
	transform
	A, B Pattern
}

// NewRing creates a new ring pattern
func NewRing(a, b Pattern) *Ring {
	return &Ring{A: a, B: b}
}

func (r *Ring) PatternAt(point core.Tuple) core.Color {
	if isEven(math.Floor(math.Sqrt(point.X*point.X + point.Z*point.Z))) {
		return Sample(r.A, point)
	}
	return Sample(r.B, point)
}

// Gradient blends linearly from A to B across each unit of x
type Gradient struct {
	transform
	A, B Pattern
}

// NewGradient creates a new gradient pattern
func NewGradient(a, b Pattern) *Gradient {
	return &Gradient{A: a, B: b}
}

func (g *Gradient) PatternAt(point core.Tuple) core.Color {
	from := Sample(g.A, point)
	to := Sample(g.B, point)
	fraction := point.X - math.Floor(point.X)
	return from.Add(to.Subtract(from).Multiply(fraction))
}

// Checkers alternates between A and B in unit cubes
type Checkers struct {
	transform
	A, B Pattern
}

// NewCheckers creates a new 3D checker pattern
func NewCheckers(a, b Pattern) *Checkers {
	return &Checkers{A: a, B: b}
}

func (c *Checkers) PatternAt(point core.Tuple) core.Color {
	sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
	if isEven(sum) {
		return Sample(c.A, point)
	}
	return Sample(c.B, point)
}

// Blend averages two patterns at every point
type Blend struct {
	transform
	A, B Pattern
}

// NewBlend creates a new blended pattern
func NewBlend(a, b Pattern) *Blend {
	return &Blend{A: a, B: b}
}

func (b *Blend) PatternAt(point core.Tuple) core.Color {
	return Sample(b.A, point).Add(Sample(b.B, point)).Multiply(0.5)
}

// Debug maps pattern-space coordinates straight to RGB, useful for checking transforms
type Debug struct {
	transform
}

// NewDebug creates a pattern that returns color(x, y, z)
func NewDebug() *Debug {
	return &Debug{}
}

func (d *Debug) PatternAt(point core.Tuple) core.Color {
	return core.NewColor(point.X, point.Y, point.Z)
}

func isEven(v float64) bool {
	return math.Mod(v, 2) == 0
}
