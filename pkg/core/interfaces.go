package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Transformable is anything whose world placement is set by a 4×4 transform
type Transformable interface {
	SetTransform(m Matrix) error
	Transform() Matrix
}
