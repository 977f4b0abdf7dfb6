package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/playcell/internal/runner"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("fps: 15\ncols: 40\nrenderer: plain\nrestore_state: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	set, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if set.FPS != 15 || set.Cols != 40 {
		t.Errorf("loaded fps/cols = %d/%d, expected 15/40", set.FPS, set.Cols)
	}
	if set.Renderer != "plain" {
		t.Errorf("loaded renderer = %q, expected plain", set.Renderer)
	}
	if !set.RestoreState {
		t.Error("restore_state should be set")
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load with a missing explicit path should fail")
	}
}

func TestLoadMalformedCustomPathFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("fps: [not an int"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load with malformed YAML should fail")
	}
}

func TestEmbeddedDefaultsParse(t *testing.T) {
	var set runner.Settings
	if err := yaml.Unmarshal(defaultConfigYAML, &set); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	// Zero keys defer to the framework defaults; only the renderer is named.
	if set.FPS != 0 {
		t.Errorf("embedded fps = %d, expected 0", set.FPS)
	}
	if set.Renderer != "text" {
		t.Errorf("embedded renderer = %q, expected text", set.Renderer)
	}
}
