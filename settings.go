package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"scene-camera/camera"
)

type CameraSettings struct {
	MaxZoom   float64 `yaml:"max_zoom"`
	Friction  float64 `yaml:"friction"`
	MaxPoints int     `yaml:"max_points"`
	MinPoints int     `yaml:"min_points"`
}

type ContentSettings struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Settings is the on-disk application configuration. Camera state (position,
// zoom) is deliberately not part of it; only tuning knobs persist.
type Settings struct {
	Camera  CameraSettings  `yaml:"camera"`
	Content ContentSettings `yaml:"content"`
	Scene   string          `yaml:"scene"`
}

func DefaultSettings() Settings {
	return Settings{
		Camera: CameraSettings{
			// The default content is 2x the window in both axes, which makes
			// the full-coverage minimum scale 2. Leave room to zoom past it.
			MaxZoom:   4.0,
			Friction:  camera.DefaultFriction,
			MaxPoints: camera.DefaultMaxPoints,
			MinPoints: camera.DefaultMinPoints,
		},
		Content: ContentSettings{
			Width:  DefaultContentWidth,
			Height: DefaultContentHeight,
		},
		Scene: "scene.star",
	}
}

// LoadSettings reads the settings file. A missing file is not an error: the
// defaults are returned so the app starts without any setup.
func LoadSettings(filename string) (Settings, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), err
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), err
	}
	return s, nil
}

func SaveSettings(s Settings, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&s); err != nil {
		return err
	}
	return enc.Close()
}
