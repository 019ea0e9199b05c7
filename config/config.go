// Package config loads runtime configuration from defaults, an optional JSON file and the environment
// Later sources override earlier ones; the result is always sanitized
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/gaze-browse/action"
	"github.com/lixenwraith/gaze-browse/parameter"
	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned when the configuration file is not valid JSON
var ErrInvalidJSON = errors.New("invalid configuration json")

// Environment variables read by Load
const (
	EnvConfigFile   = "GAZE_CONFIG_FILE"
	EnvPreset       = "GAZE_PRESET"
	EnvZoomSpeed    = "GAZE_ZOOM_SPEED"
	EnvCenterOffset = "GAZE_CENTER_OFFSET"
	EnvDimming      = "GAZE_DIMMING"
	EnvWeighting    = "GAZE_WEIGHTING"
	EnvAudioEnabled = "GAZE_AUDIO_ENABLED"
	EnvMasterVolume = "GAZE_MASTER_VOLUME"
	EnvFPS          = "GAZE_FPS"
)

// AudioConfig controls feedback cues
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
}

// Config is the complete runtime configuration of a host
type Config struct {
	Preset string
	Zoom   action.ZoomConfig
	Audio  AudioConfig
	FPS    int
	Source string // File the configuration was read from, empty for none
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Preset: "default",
		Zoom:   action.DefaultZoomConfig(),
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: parameter.AudioMasterVolume,
			SampleRate:   parameter.AudioSampleRate,
		},
		FPS: parameter.FramesPerSecond,
	}
}

// Preset returns the zoom configuration registered under name
func Preset(name string) (action.ZoomConfig, bool) {
	switch strings.ToLower(name) {
	case "", "default":
		return action.DefaultZoomConfig(), true
	case "precise":
		return action.PreciseZoomConfig(), true
	case "fast":
		return action.FastZoomConfig(), true
	}
	return action.ZoomConfig{}, false
}

// Load builds the configuration; path overrides GAZE_CONFIG_FILE when non-empty
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := cfg.applyJSON(data); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		cfg.Source = path
	}

	cfg.applyEnv()
	cfg.sanitize()
	return cfg, nil
}

// Parse builds a configuration from JSON content without touching the environment
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.applyJSON(data); err != nil {
		return nil, err
	}
	cfg.sanitize()
	return cfg, nil
}

func (c *Config) setPreset(name string) {
	if z, ok := Preset(name); ok {
		c.Preset = strings.ToLower(name)
		c.Zoom = z
	}
}

func (c *Config) applyJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return fmt.Errorf("%w: top level is not an object", ErrInvalidJSON)
	}

	// Preset first so individual keys refine it
	if v := root.Get("preset"); v.Exists() {
		c.setPreset(v.String())
	}

	z := root.Get("zoom")
	floats := map[string]*float64{
		"speed":                     &c.Zoom.ZoomSpeed,
		"maxOrientationLogZoom":     &c.Zoom.MaxOrientationLogZoom,
		"maxDriftCorrectionLogZoom": &c.Zoom.MaxDriftCorrectionLogZoom,
		"moveDuration":              &c.Zoom.MoveDuration,
		"deviationSlowdown":         &c.Zoom.DeviationSlowdown,
		"sampleLifetime":            &c.Zoom.SampleLifetime,
		"deviationFadingDuration":   &c.Zoom.DeviationFadingDuration,
		"deviationDeadZone":         &c.Zoom.DeviationDeadZone,
		"centerOffset":              &c.Zoom.CenterOffsetMultiplier,
		"dimming.duration":          &c.Zoom.DimmingDuration,
		"dimming.value":             &c.Zoom.DimmingValue,
		"maxTimePerFrame":           &c.Zoom.MaxTimePerFrame,
	}
	for key, dst := range floats {
		if v := z.Get(key); v.Exists() {
			*dst = v.Float()
		}
	}
	if v := z.Get("weighting"); v.Exists() {
		c.Zoom.Weighting = v.String()
	}
	if v := z.Get("dimming.enabled"); v.Exists() {
		c.Zoom.DoDimming = v.Bool()
	}
	if v := z.Get("startAtGaze"); v.Exists() {
		c.Zoom.StartAtGaze = v.Bool()
	}

	a := root.Get("audio")
	if v := a.Get("enabled"); v.Exists() {
		c.Audio.Enabled = v.Bool()
	}
	if v := a.Get("volume"); v.Exists() {
		c.Audio.MasterVolume = v.Float()
	}
	if v := a.Get("sampleRate"); v.Exists() {
		c.Audio.SampleRate = int(v.Int())
	}
	if v := root.Get("fps"); v.Exists() {
		c.FPS = int(v.Int())
	}
	return nil
}

// applyEnv overrides values from the environment, ignoring unparsable ones
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvPreset); v != "" {
		c.setPreset(v)
	}
	if v := os.Getenv(EnvZoomSpeed); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Zoom.ZoomSpeed = f
		}
	}
	if v := os.Getenv(EnvCenterOffset); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Zoom.CenterOffsetMultiplier = f
		}
	}
	if v := os.Getenv(EnvDimming); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Zoom.DoDimming = b
		}
	}
	if v := os.Getenv(EnvWeighting); v != "" {
		c.Zoom.Weighting = v
	}
	if v := os.Getenv(EnvAudioEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		}
	}
	// Volume is given as 0-100
	if v := os.Getenv(EnvMasterVolume); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.MasterVolume = float64(n) / 100.0
		}
	}
	if v := os.Getenv(EnvFPS); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.FPS = n
		}
	}
}

func (c *Config) sanitize() {
	c.Zoom = c.Zoom.Sanitize()
	if c.Audio.MasterVolume < 0 {
		c.Audio.MasterVolume = 0
	}
	if c.Audio.MasterVolume > 1 {
		c.Audio.MasterVolume = 1
	}
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = parameter.AudioSampleRate
	}
	if c.FPS <= 0 || c.FPS > 240 {
		c.FPS = parameter.FramesPerSecond
	}
}
