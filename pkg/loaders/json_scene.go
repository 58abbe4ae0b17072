package loaders

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var ErrInvalidScene = errors.New("invalid scene file")

// Vec3 is a JSON triple: [x, y, z] or [r, g, b]
type Vec3 [3]float64

func (v Vec3) point() core.Tuple  { return core.Point(v[0], v[1], v[2]) }
func (v Vec3) vector() core.Tuple { return core.Vector(v[0], v[1], v[2]) }
func (v Vec3) color() core.Color  { return core.NewColor(v[0], v[1], v[2]) }

// SceneCfg is the top-level JSON scene description
type SceneCfg struct {
	Name       string      `json:"name,omitempty"`
	Width      int         `json:"width,omitempty"`
	Height     int         `json:"height,omitempty"`
	MaxDepth   *int        `json:"maxDepth,omitempty"` // defaults to integrator.DefaultMaxDepth
	Background *Vec3       `json:"background,omitempty"`
	Camera     CameraCfg   `json:"camera"`
	Light      *LightCfg   `json:"light"`
	Objects    []ObjectCfg `json:"objects"`
}

// CameraCfg places the camera; the field of view is in degrees
type CameraCfg struct {
	From   Vec3    `json:"from"`
	To     Vec3    `json:"to"`
	Up     *Vec3   `json:"up,omitempty"` // defaults to +y
	FovDeg float64 `json:"fovDeg"`
}

type LightCfg struct {
	Position  Vec3 `json:"position"`
	Intensity Vec3 `json:"intensity"`
}

// TransformCfg is one builder step. Steps compose like the fluent matrix builders:
// the last step listed is the first applied to the object.
type TransformCfg struct {
	Op   string    `json:"op"` // translate, scale, rotateX, rotateY, rotateZ (degrees), shear
	Args []float64 `json:"args"`
}

type ObjectCfg struct {
	Type      string         `json:"type"` // sphere, glassSphere, plane, cube, cylinder, cone
	Name      string         `json:"name,omitempty"`
	Minimum   *float64       `json:"minimum,omitempty"` // cylinder and cone only
	Maximum   *float64       `json:"maximum,omitempty"`
	Closed    bool           `json:"closed,omitempty"`
	Transform []TransformCfg `json:"transform,omitempty"`
	Material  *MaterialCfg   `json:"material,omitempty"`
}

// MaterialCfg overrides fields of the default material; omitted fields keep their defaults
type MaterialCfg struct {
	Color           *Vec3       `json:"color,omitempty"`
	Pattern         *PatternCfg `json:"pattern,omitempty"`
	Ambient         *float64    `json:"ambient,omitempty"`
	Diffuse         *float64    `json:"diffuse,omitempty"`
	Specular        *float64    `json:"specular,omitempty"`
	Shininess       *float64    `json:"shininess,omitempty"`
	Reflective      *float64    `json:"reflective,omitempty"`
	Transparency    *float64    `json:"transparency,omitempty"`
	RefractiveIndex *float64    `json:"refractiveIndex,omitempty"`
	Medium          string      `json:"medium,omitempty"` // vacuum, air, water, glass, diamond
}

type PatternCfg struct {
	Type      string         `json:"type"` // solid, stripe, ring, gradient, checkers, blend
	Color     *Vec3          `json:"color,omitempty"`
	A         *PatternCfg    `json:"a,omitempty"`
	B         *PatternCfg    `json:"b,omitempty"`
	Transform []TransformCfg `json:"transform,omitempty"`
}

// SceneFile is a loaded scene together with its render settings
type SceneFile struct {
	Scene    *scene.Scene
	Width    int
	Height   int
	MaxDepth int
}

// Camera creates the camera described by the file at its configured resolution
func (f *SceneFile) Camera() (*renderer.Camera, error) {
	return renderer.NewCameraFromConfig(f.Width, f.Height, f.Scene.CameraConfig)
}

var media = map[string]float64{
	"vacuum":  material.Vacuum,
	"air":     material.Air,
	"water":   material.Water,
	"glass":   material.Glass,
	"diamond": material.Diamond,
}

// LoadScene loads and builds a JSON scene file
func LoadScene(filename string) (*SceneFile, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	sf, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(filename), err)
	}
	if sf.Scene.Name == "" {
		sf.Scene.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return sf, nil
}

// ParseScene decodes and builds a JSON scene description
func ParseScene(r io.Reader) (*SceneFile, error) {
	var cfg SceneCfg
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return cfg.Build()
}

// Build validates the description and constructs the world and camera placement
func (c SceneCfg) Build() (*SceneFile, error) {
	if c.Light == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, scene.ErrMissingLight)
	}

	objects := make([]*geometry.Shape, 0, len(c.Objects))
	for i, oc := range c.Objects {
		s, err := oc.Build()
		if err != nil {
			return nil, fmt.Errorf("%w: object %d (%s): %w", ErrInvalidScene, i, oc.Type, err)
		}
		objects = append(objects, s)
	}

	light := lights.NewPointLight(c.Light.Position.point(), c.Light.Intensity.color())
	world, err := scene.NewWorld(light, objects...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	if c.Background != nil {
		world.Background = c.Background.color()
	}

	up := core.Vector(0, 1, 0)
	if c.Camera.Up != nil {
		up = c.Camera.Up.vector()
	}
	if c.Camera.FovDeg <= 0 || c.Camera.FovDeg >= 180 {
		return nil, fmt.Errorf("%w: camera fovDeg must be in (0, 180), got %g", ErrInvalidScene, c.Camera.FovDeg)
	}

	sf := &SceneFile{
		Scene: &scene.Scene{
			Name:  c.Name,
			World: world,
			CameraConfig: scene.CameraConfig{
				From:        c.Camera.From.point(),
				To:          c.Camera.To.point(),
				Up:          up,
				FieldOfView: c.Camera.FovDeg * math.Pi / 180,
			},
		},
		Width:    c.Width,
		Height:   c.Height,
		MaxDepth: integrator.DefaultMaxDepth,
	}
	if c.MaxDepth != nil {
		if *c.MaxDepth < 0 {
			return nil, fmt.Errorf("%w: maxDepth must be >= 0, got %d", ErrInvalidScene, *c.MaxDepth)
		}
		sf.MaxDepth = *c.MaxDepth
	}
	if sf.Width <= 0 {
		sf.Width = 400
	}
	if sf.Height <= 0 {
		sf.Height = sf.Width / 2
	}
	return sf, nil
}

// Build constructs the shape
func (oc ObjectCfg) Build() (*geometry.Shape, error) {
	var s *geometry.Shape
	switch oc.Type {
	case "sphere":
		s = geometry.NewSphere()
	case "glassSphere":
		s = geometry.NewGlassSphere()
	case "plane":
		s = geometry.NewPlane()
	case "cube":
		s = geometry.NewCube()
	case "cylinder", "cone":
		minimum, maximum := math.Inf(-1), math.Inf(1)
		if oc.Minimum != nil {
			minimum = *oc.Minimum
		}
		if oc.Maximum != nil {
			maximum = *oc.Maximum
		}
		if minimum > maximum {
			return nil, fmt.Errorf("minimum %g exceeds maximum %g", minimum, maximum)
		}
		if oc.Closed && (oc.Minimum == nil || oc.Maximum == nil) {
			return nil, fmt.Errorf("closed %s needs both minimum and maximum", oc.Type)
		}
		if oc.Type == "cylinder" {
			s = geometry.NewCylinder(minimum, maximum, oc.Closed)
		} else {
			s = geometry.NewCone(minimum, maximum, oc.Closed)
		}
	default:
		return nil, fmt.Errorf("unknown object type %q", oc.Type)
	}
	s.Name = oc.Name

	if err := applyTransform(s, oc.Transform); err != nil {
		return nil, err
	}

	if oc.Material != nil {
		mat, err := oc.Material.Build(s.Material)
		if err != nil {
			return nil, err
		}
		s.Material = mat
	}
	return s, nil
}

// Build applies the configured fields on top of base
func (mc MaterialCfg) Build(base material.Material) (material.Material, error) {
	m := base
	if mc.Color != nil {
		m.Color = mc.Color.color()
	}
	if mc.Pattern != nil {
		p, err := mc.Pattern.Build()
		if err != nil {
			return m, err
		}
		m.Pattern = p
	}

	fields := []struct {
		value *float64
		dst   *float64
	}{
		{mc.Ambient, &m.Ambient},
		{mc.Diffuse, &m.Diffuse},
		{mc.Specular, &m.Specular},
		{mc.Shininess, &m.Shininess},
		{mc.Reflective, &m.Reflective},
		{mc.Transparency, &m.Transparency},
		{mc.RefractiveIndex, &m.RefractiveIndex},
	}
	for _, f := range fields {
		if f.value != nil {
			*f.dst = *f.value
		}
	}

	if mc.Medium != "" {
		n, ok := media[strings.ToLower(mc.Medium)]
		if !ok {
			return m, fmt.Errorf("unknown medium %q", mc.Medium)
		}
		m.RefractiveIndex = n
	}
	if m.RefractiveIndex <= 0 {
		return m, fmt.Errorf("refractive index must be > 0, got %g", m.RefractiveIndex)
	}
	return m, nil
}

// Build constructs the pattern tree
func (pc PatternCfg) Build() (material.Pattern, error) {
	var p material.Pattern
	switch pc.Type {
	case "solid":
		if pc.Color == nil {
			return nil, fmt.Errorf("solid pattern needs a color")
		}
		p = material.NewSolid(pc.Color.color())
	case "stripe", "ring", "gradient", "checkers", "blend":
		if pc.A == nil || pc.B == nil {
			return nil, fmt.Errorf("%s pattern needs both a and b", pc.Type)
		}
		a, err := pc.A.Build()
		if err != nil {
			return nil, err
		}
		b, err := pc.B.Build()
		if err != nil {
			return nil, err
		}
		switch pc.Type {
		case "stripe":
			p = material.NewStripe(a, b)
		case "ring":
			p = material.NewRing(a, b)
		case "gradient":
			p = material.NewGradient(a, b)
		case "checkers":
			p = material.NewCheckers(a, b)
		default:
			p = material.NewBlend(a, b)
		}
	default:
		return nil, fmt.Errorf("unknown pattern type %q", pc.Type)
	}

	if err := applyTransform(p, pc.Transform); err != nil {
		return nil, err
	}
	return p, nil
}

var transformArgs = map[string]int{
	"translate": 3,
	"scale":     3,
	"rotateX":   1,
	"rotateY":   1,
	"rotateZ":   1,
	"shear":     6,
}

// applyTransform places a shape or pattern with the configured steps
func applyTransform(target core.Transformable, steps []TransformCfg) error {
	m, err := buildTransform(steps)
	if err != nil {
		return err
	}
	return target.SetTransform(m)
}

// buildTransform composes the steps with the fluent matrix builders
func buildTransform(steps []TransformCfg) (core.Matrix, error) {
	m := core.Identity()
	for _, step := range steps {
		want, ok := transformArgs[step.Op]
		if !ok {
			return m, fmt.Errorf("unknown transform %q", step.Op)
		}
		if len(step.Args) != want {
			return m, fmt.Errorf("transform %q takes %d args, got %d", step.Op, want, len(step.Args))
		}

		a := step.Args
		switch step.Op {
		case "translate":
			m = m.Translate(a[0], a[1], a[2])
		case "scale":
			m = m.Scale(a[0], a[1], a[2])
		case "rotateX":
			m = m.RotateX(a[0] * math.Pi / 180)
		case "rotateY":
			m = m.RotateY(a[0] * math.Pi / 180)
		case "rotateZ":
			m = m.RotateZ(a[0] * math.Pi / 180)
		case "shear":
			m = m.Shear(a[0], a[1], a[2], a[3], a[4], a[5])
		}
	}
	return m, nil
}

// validateFilePath rejects paths that cannot be scene files
func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".json") {
		return fmt.Errorf("invalid file type: only .json scene files are allowed")
	}
	return nil
}
