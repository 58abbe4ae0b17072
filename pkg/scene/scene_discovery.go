package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a scene that can be rendered by name or from a file
type SceneInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Type        string `json:"type"`     // "builtin" or "json"
	FilePath    string `json:"filePath"` // json type only
}

type builtinScene struct {
	info  SceneInfo
	build func(overrides ...CameraConfig) *Scene
}

var builtinScenes = []builtinScene{
	{
		info:  SceneInfo{ID: "default", DisplayName: "Default Scene", Description: "Checkered floor, striped wall, matte, mirror and glass spheres"},
		build: NewDefaultScene,
	},
	{
		info:  SceneInfo{ID: "cornell", DisplayName: "Cornell Box", Description: "Cube room with colored walls, a mirror block and a glass sphere"},
		build: NewCornellScene,
	},
	{
		info:  SceneInfo{ID: "cylinders", DisplayName: "Cylinders", Description: "Open and capped cylinders on a ring floor"},
		build: NewCylinderTestScene,
	},
	{
		info:  SceneInfo{ID: "cones", DisplayName: "Cones", Description: "Single, double and mirrored cones"},
		build: NewConeTestScene,
	},
	{
		info:  SceneInfo{ID: "nested-glass", DisplayName: "Nested Glass", Description: "Hollow glass sphere and a water-filled jar"},
		build: NewNestedGlassScene,
	},
	{
		info: SceneInfo{ID: "spheregrid", DisplayName: "Sphere Grid", Description: "5x5 grid sweeping reflectivity and transparency"},
		build: func(overrides ...CameraConfig) *Scene {
			return NewSphereGridScene(5, overrides...)
		},
	},
}

// ListBuiltinScenes returns the scenes compiled into the renderer
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	for i, b := range builtinScenes {
		scenes[i] = b.info
		scenes[i].Type = "builtin"
	}
	return scenes
}

// NewBuiltinScene builds the built-in scene with the given ID
func NewBuiltinScene(id string, cameraOverrides ...CameraConfig) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == id {
			return b.build(cameraOverrides...), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// ListJSONScenes scans dir for JSON scene descriptions.
// A missing directory yields an empty list.
func ListJSONScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		name := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		scenes = append(scenes, SceneInfo{
			ID:          "json:" + name,
			DisplayName: titleCase(name),
			Type:        "json",
			FilePath:    filePath,
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes, nil
}

// titleCase converts a filename-style string to title case
// e.g., "nested-glass" -> "Nested Glass"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
