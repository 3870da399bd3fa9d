package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the default path to the config file, relative to the process working directory.
const ConfigPath = "config/instancing.yaml"

// Prefs holds window and runtime preferences. None of it is required: with no file at all the
// demo runs with Default().
type Prefs struct {
	Title    string `yaml:"title"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	VSync    bool   `yaml:"vsync"`
	ShowFPS  bool   `yaml:"show_fps"`
	LogLevel string `yaml:"log_level"`
	// CanvasID is the DOM id of the canvas element used by the web build.
	CanvasID string `yaml:"canvas_id"`
}

// Default returns the preferences the demo was designed around: a 1024x768 vsynced window.
func Default() Prefs {
	return Prefs{
		Title:    "Me Learning OpenGL 2",
		Width:    1024,
		Height:   768,
		VSync:    true,
		ShowFPS:  false,
		LogLevel: "info",
		CanvasID: "canvas",
	}
}

// Validate reports preferences no window can be created with.
func (p Prefs) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", p.Width, p.Height)
	}
	return nil
}

// Load reads preferences from path. A missing file yields Default() and no error. Fields absent
// from the file keep their default values. A malformed or invalid file yields Default() together
// with an error describing the problem, so the caller can log it and carry on.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config: read %s: %w", path, err)
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return p, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
