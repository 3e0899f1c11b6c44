// Package editorconfig loads the editor's preferences from config/editor.json.
package editorconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"scene-editor/internal/env"
	"scene-editor/internal/logger"
	"scene-editor/internal/store"
)

// DefaultPath is the config file, relative to the process working directory.
const DefaultPath = "config/editor.json"

// Prefs holds editor-only preferences. The scene itself lives in the cache file, not here.
type Prefs struct {
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	CachePath    string `json:"cache_path"`
	AssetsDir    string `json:"assets_dir"`
	LogPath      string `json:"log_path"`
	StylePath    string `json:"style_path"`
	// FontPath is an optional TTF/OTF file for the UI; empty uses raylib's built-in font.
	FontPath string `json:"font_path,omitempty"`

	// SpinIntervalMS is the spinner tick period in milliseconds.
	SpinIntervalMS int        `json:"spin_interval_ms"`
	SpinSpeed      [3]float32 `json:"spin_speed"`

	// MoveSpeed is in world units per second, YawSpeed in radians per second.
	MoveSpeed float32 `json:"camera_move_speed"`
	YawSpeed  float32 `json:"camera_yaw_speed"`

	GridVisible  bool `json:"grid_visible"`
	ShowFPS      bool `json:"show_fps"`
	ShowMemAlloc bool `json:"show_memalloc"`
}

// Default returns the built-in preferences: 1280x720 window, grid on, no spin.
func Default() Prefs {
	return Prefs{
		WindowWidth:    1280,
		WindowHeight:   720,
		CachePath:      store.DefaultPath,
		AssetsDir:      "assets",
		LogPath:        logger.DefaultPath,
		StylePath:      "assets/ui/editor.css",
		SpinIntervalMS: 20,
		MoveSpeed:      3,
		YawSpeed:       1.5,
		GridVisible:    true,
	}
}

// Load reads preferences from path. Keys missing from the file keep their defaults. A missing file
// returns Default() and no error; an unreadable or invalid file returns Default() and the error so
// the caller can log it.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, err
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	p.fix()
	return p, nil
}

// fix replaces unusable values with defaults.
func (p *Prefs) fix() {
	d := Default()
	if p.WindowWidth <= 0 || p.WindowHeight <= 0 {
		p.WindowWidth, p.WindowHeight = d.WindowWidth, d.WindowHeight
	}
	if p.SpinIntervalMS <= 0 {
		p.SpinIntervalMS = d.SpinIntervalMS
	}
	if p.MoveSpeed <= 0 {
		p.MoveSpeed = d.MoveSpeed
	}
	if p.YawSpeed <= 0 {
		p.YawSpeed = d.YawSpeed
	}
	if p.CachePath == "" {
		p.CachePath = d.CachePath
	}
	if p.AssetsDir == "" {
		p.AssetsDir = d.AssetsDir
	}
}

// ApplyEnv overrides the cache path and assets dir from EDITOR_CACHE and EDITOR_ASSETS.
func (p *Prefs) ApplyEnv() {
	p.CachePath = env.String(env.CacheKey, p.CachePath)
	p.AssetsDir = env.String(env.AssetsKey, p.AssetsDir)
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
