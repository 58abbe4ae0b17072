package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestBuiltinScenes_Build(t *testing.T) {
	infos := ListBuiltinScenes()
	if len(infos) == 0 {
		t.Fatal("Expected built-in scenes")
	}

	for _, info := range infos {
		t.Run(info.ID, func(t *testing.T) {
			if info.Type != "builtin" {
				t.Errorf("Expected builtin type, got %q", info.Type)
			}
			s, err := NewBuiltinScene(info.ID)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s.World == nil || s.World.Light == nil || len(s.World.Objects) == 0 {
				t.Fatalf("Scene %q has an incomplete world", info.ID)
			}
			if _, err := core.ViewTransform(s.CameraConfig.From, s.CameraConfig.To, s.CameraConfig.Up); err != nil {
				t.Errorf("Scene %q has a degenerate camera: %v", info.ID, err)
			}
			if s.CameraConfig.FieldOfView <= 0 {
				t.Errorf("Scene %q has no field of view", info.ID)
			}
		})
	}
}

func TestNewBuiltinScene_Unknown(t *testing.T) {
	if _, err := NewBuiltinScene("no-such-scene"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestNewBuiltinScene_CameraOverride(t *testing.T) {
	s, err := NewBuiltinScene("default", CameraConfig{From: core.Point(0, 5, -10)})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !s.CameraConfig.From.Equal(core.Point(0, 5, -10)) {
		t.Errorf("Expected overridden camera position, got %v", s.CameraConfig.From)
	}
	if !s.CameraConfig.To.Equal(core.Point(0, 1, 0)) {
		t.Errorf("Expected default look-at to be kept, got %v", s.CameraConfig.To)
	}
}

func TestSphereGridScene_Size(t *testing.T) {
	s := NewSphereGridScene(3)
	// floor plus 3x3 spheres
	if got := len(s.World.Objects); got != 10 {
		t.Errorf("Expected 10 objects, got %d", got)
	}
}

func TestListJSONScenes(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"water_glass.json", "cornell-empty.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	scenes, err := ListJSONScenes(dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 JSON scenes, got %d", len(scenes))
	}
	if scenes[0].DisplayName != "Cornell Empty" || scenes[1].DisplayName != "Water Glass" {
		t.Errorf("Unexpected scene names %q, %q", scenes[0].DisplayName, scenes[1].DisplayName)
	}
	if scenes[0].ID != "json:cornell-empty" || scenes[0].Type != "json" {
		t.Errorf("Unexpected scene info %+v", scenes[0])
	}

	missing, err := ListJSONScenes(filepath.Join(dir, "missing"))
	if err != nil || len(missing) != 0 {
		t.Errorf("Expected empty list for a missing directory, got %v (err %v)", missing, err)
	}
}
