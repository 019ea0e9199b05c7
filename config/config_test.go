package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lixenwraith/gaze-browse/action"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gaze.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvConfigFile, "")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFile(t *testing.T) {
	cfg, err := Parse([]byte(`{
		"preset": "precise",
		"zoom": {
			"speed": 0.3,
			"weighting": "uniform",
			"dimming": {"enabled": false, "value": 0.5},
			"startAtGaze": true
		},
		"audio": {"enabled": false, "volume": 0.2},
		"fps": 30
	}`))
	if err != nil {
		t.Fatalf("Parse = %v", err)
	}

	want := action.PreciseZoomConfig()
	want.ZoomSpeed = 0.3
	want.Weighting = "uniform"
	want.DoDimming = false
	want.DimmingValue = 0.5
	want.StartAtGaze = true
	if diff := cmp.Diff(want, cfg.Zoom); diff != "" {
		t.Errorf("Zoom mismatch (-want +got):\n%s", diff)
	}
	if cfg.Preset != "precise" || cfg.Audio.Enabled || cfg.Audio.MasterVolume != 0.2 || cfg.FPS != 30 {
		t.Errorf("Unexpected config %+v", cfg)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"truncated", `{"zoom": {"speed": 0.3`},
		{"not an object", `[1, 2, 3]`},
		{"garbage", `zoom=fast`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); !errors.Is(err, ErrInvalidJSON) {
				t.Errorf("Parse = %v, want ErrInvalidJSON", err)
			}
		})
	}
}

func TestParseSanitizes(t *testing.T) {
	cfg, err := Parse([]byte(`{"zoom": {"speed": -1, "weighting": "bogus"}, "audio": {"volume": 4}, "fps": 0}`))
	if err != nil {
		t.Fatalf("Parse = %v", err)
	}
	def := Default()
	if cfg.Zoom.ZoomSpeed != def.Zoom.ZoomSpeed || cfg.Zoom.Weighting != def.Zoom.Weighting {
		t.Errorf("Zoom not sanitized: %+v", cfg.Zoom)
	}
	if cfg.Audio.MasterVolume != 1 || cfg.FPS != def.FPS {
		t.Errorf("Audio/FPS not sanitized: %+v", cfg)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `{"zoom": {"speed": 0.3, "centerOffset": 0.1}, "fps": 30}`)
	t.Setenv(EnvConfigFile, path)
	t.Setenv(EnvZoomSpeed, "0.5")
	t.Setenv(EnvDimming, "false")
	t.Setenv(EnvWeighting, "zoom")
	t.Setenv(EnvMasterVolume, "25")
	t.Setenv(EnvAudioEnabled, "not-a-bool")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, want %q", cfg.Source, path)
	}
	if cfg.Zoom.ZoomSpeed != 0.5 {
		t.Errorf("ZoomSpeed = %f, env should win", cfg.Zoom.ZoomSpeed)
	}
	if cfg.Zoom.CenterOffsetMultiplier != 0.1 || cfg.FPS != 30 {
		t.Errorf("File values lost: offset %f fps %d", cfg.Zoom.CenterOffsetMultiplier, cfg.FPS)
	}
	if cfg.Zoom.DoDimming || cfg.Zoom.Weighting != "zoom" {
		t.Errorf("Env flags not applied: %+v", cfg.Zoom)
	}
	if cfg.Audio.MasterVolume != 0.25 || !cfg.Audio.Enabled {
		t.Errorf("Audio = %+v", cfg.Audio)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load = %v, want wrapped ErrNotExist", err)
	}
}

func TestPresetLookup(t *testing.T) {
	if _, ok := Preset("FAST"); !ok {
		t.Error("Preset lookup should be case insensitive")
	}
	if _, ok := Preset("turbo"); ok {
		t.Error("Unknown preset should not resolve")
	}
}
