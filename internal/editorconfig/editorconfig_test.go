package editorconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-editor/internal/env"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "editor.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"grid_visible": false, "spin_speed": [0, 1.5, 0], "window_width": -3}`), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.False(t, p.GridVisible)
	assert.Equal(t, [3]float32{0, 1.5, 0}, p.SpinSpeed)
	assert.Equal(t, 1280, p.WindowWidth)
	assert.Equal(t, 720, p.WindowHeight)
	assert.Equal(t, "cache", p.CachePath)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"grid_visible": `), 0644))

	p, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "editor.json")
	want := Default()
	want.ShowFPS = true
	want.SpinIntervalMS = 40
	want.CachePath = "scenes/main"
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(env.CacheKey, "/tmp/other-cache")
	t.Setenv(env.AssetsKey, "")

	p := Default()
	p.ApplyEnv()
	assert.Equal(t, "/tmp/other-cache", p.CachePath)
	assert.Equal(t, "assets", p.AssetsDir)
}
