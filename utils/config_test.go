package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %+v", err)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"mode": "bounded", "width": 10, "frame_rate": 1000000, "endless": true}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %+v", err)
	}
	if config.Mode != "bounded" || config.Width != 10 || !config.Endless {
		t.Fatalf("LoadConfig() = %+v", config)
	}
	if config.FrameRate != time.Millisecond {
		t.Fatalf("FrameRate = %v, want 1ms", config.FrameRate)
	}
	if config.Height != DefaultConfig().Height {
		t.Fatalf("Height = %d, want default %d", config.Height, DefaultConfig().Height)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := map[string]string{
		"missing file": filepath.Join(t.TempDir(), "absent.json"),
		"bad json":     writeConfig(t, `{"width": `),
		"unknown mode": writeConfig(t, `{"mode": "torus"}`),
		"zero width":   writeConfig(t, `{"width": 0}`),
		"bad density":  writeConfig(t, `{"random_density": 1.5}`),
		"negative max": writeConfig(t, `{"max_generations": -1}`),
	}

	for name, path := range tests {
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("%s: LoadConfig() error = nil", name)
		}
	}
}
