package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsParse(t *testing.T) {
	for _, id := range []string{"disk", "binary", "collision", "cloud", "sphere"} {
		t.Run(id, func(t *testing.T) {
			if GetDefaultYAML(id) == nil {
				t.Fatalf("no embedded default for %q", id)
			}

			cfg, err := Load(id, "")
			if err != nil {
				t.Fatalf("Load(%q) failed: %v", id, err)
			}
			if cfg.Physics.Dt <= 0 {
				t.Errorf("dt = %v, expected positive", cfg.Physics.Dt)
			}
			if cfg.Physics.Theta <= 0 {
				t.Errorf("theta = %v, expected positive", cfg.Physics.Theta)
			}
			if cfg.Physics.Softening < 0 {
				t.Errorf("softening = %v, expected non-negative", cfg.Physics.Softening)
			}
			if cfg.Scenario.Bodies <= 0 {
				t.Errorf("bodies = %d, expected positive", cfg.Scenario.Bodies)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	content := []byte(`
physics:
  dt: 0.5
  g: 2.0
  softening: 0.1
  theta: 0.7
scenario:
  bodies: 42
  mass: 3.0
render:
  tree_overlay: true
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load("disk", path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Physics.Dt != 0.5 || cfg.Physics.G != 2.0 || cfg.Physics.Theta != 0.7 {
		t.Errorf("physics not loaded from custom file: %+v", cfg.Physics)
	}
	if cfg.Scenario.Bodies != 42 {
		t.Errorf("bodies = %d, expected 42", cfg.Scenario.Bodies)
	}
	if !cfg.Render.TreeOverlay {
		t.Error("tree_overlay not loaded from custom file")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T) string
	}{
		{
			name: "missing file",
			prepare: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nope.yaml")
			},
		},
		{
			name: "malformed yaml",
			prepare: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "bad.yaml")
				if err := os.WriteFile(path, []byte("physics: [not a map"), 0o600); err != nil {
					t.Fatalf("cannot write test file: %v", err)
				}
				return path
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load("disk", tc.prepare(t)); err == nil {
				t.Error("Load() with bad custom path should fail")
			}
		})
	}
}

func TestLoadUnknownScenarioFallsBack(t *testing.T) {
	cfg, err := Load("does-not-exist", "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultSimConfig() {
		t.Errorf("expected hardcoded default, got %+v", cfg)
	}
}
