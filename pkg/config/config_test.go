package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/stackshift/pkg/errors"
)

// isolate keeps tests away from the user's real config.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("STACKSHIFT_CONFIG", "")
	return dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestDefault(t *testing.T) {
	isolate(t)
	c := Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, 1.31, c.Engine.LiftScale)
	assert.Equal(t, 200*time.Millisecond, c.Engine.LiftDuration)
	assert.Equal(t, 300*time.Millisecond, c.Engine.DropDuration)
	assert.Equal(t, 0.2, c.Engine.AutoscrollThreshold)
	assert.Equal(t, 15.0, c.Engine.AutoscrollMaxStep)
	assert.Equal(t, time.Second/60, c.Engine.AutoscrollInterval)
	assert.Equal(t, 300*time.Millisecond, c.Gesture.MinimumPressDuration)
	assert.Equal(t, 3, c.UI.SampleLists)
	assert.Equal(t, 21, c.UI.SampleCards)

	assert.Equal(t, c.Engine.LiftScale, c.Manager().LiftScale)
	assert.Equal(t, c.Engine.AutoscrollMaxStep, c.Autoscroll().MaxStep)
	assert.Equal(t, c.Gesture.DeadZone, c.Recognizer().DeadZone)
	assert.Equal(t, time.Second/30, c.FrameInterval())
}

func TestLoadWithoutFile(t *testing.T) {
	isolate(t)
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, `
[engine]
lift_scale = 1.5
drop_duration = "150ms"

[gesture]
min_press = "1s"

[ui]
column_width = 30
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1.5, c.Engine.LiftScale)
	assert.Equal(t, 150*time.Millisecond, c.Engine.DropDuration)
	assert.Equal(t, 200*time.Millisecond, c.Engine.LiftDuration)
	assert.Equal(t, time.Second, c.Gesture.MinimumPressDuration)
	assert.Equal(t, 30, c.UI.ColumnWidth)
}

func TestLoadUserConfigDir(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "stackshift", "config.toml"), "[ui]\nframe_rate = 60\n")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 60, c.UI.FrameRate)
}

func TestEnvOverrides(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, "[engine]\nlift_scale = 1.5\n")
	t.Setenv("STACKSHIFT_CONFIG", path)
	t.Setenv("STACKSHIFT_ENGINE_LIFT_SCALE", "2")
	t.Setenv("STACKSHIFT_UI_GAP", "4")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2.0, c.Engine.LiftScale)
	assert.Equal(t, 4, c.UI.Gap)
}

func TestLoadErrors(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound), "got %v", err)

	bad := filepath.Join(dir, "bad.toml")
	writeFile(t, bad, "[engine\n")
	_, err = Load(bad)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "got %v", err)

	invalid := filepath.Join(dir, "invalid.toml")
	writeFile(t, invalid, "[engine]\nautoscroll_threshold = 2.0\n")
	_, err = Load(invalid)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "got %v", err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero lift", func(c *Config) { c.Engine.LiftScale = 0 }},
		{"negative drop", func(c *Config) { c.Engine.DropDuration = -time.Second }},
		{"zero threshold", func(c *Config) { c.Engine.AutoscrollThreshold = 0 }},
		{"zero step", func(c *Config) { c.Engine.AutoscrollMaxStep = 0 }},
		{"zero interval", func(c *Config) { c.Engine.AutoscrollInterval = 0 }},
		{"negative dead zone", func(c *Config) { c.Gesture.DeadZone = -1 }},
		{"narrow column", func(c *Config) { c.UI.ColumnWidth = 4 }},
		{"zero card height", func(c *Config) { c.UI.CardHeight = 0 }},
		{"frame rate", func(c *Config) { c.UI.FrameRate = 0 }},
		{"no lists", func(c *Config) { c.UI.SampleLists = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
		})
	}
}
