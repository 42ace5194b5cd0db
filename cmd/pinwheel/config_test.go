package main

import (
	"context"
	"image/gif"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flywave/go-pinwheel"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestDefaultConfig(t *testing.T) {
	a := assert.New(t)

	cfg := DefaultConfig()
	a.NoError(cfg.Validate())
	a.Equal(pinwheel.DefaultRange, cfg.Range())
	a.Equal(600, cfg.Canvas.Width)
	a.Equal("simplex", cfg.Animation.Noise)
}

func TestValidate(t *testing.T) {
	a := assert.New(t)

	for name, mutate := range map[string]func(c *Config){
		"zero step":      func(c *Config) { c.Sphere.By[1] = 0 },
		"negative zoom":  func(c *Config) { c.Camera.Zoom = -1 },
		"empty palette":  func(c *Config) { c.Palette = nil },
		"unknown noise":  func(c *Config) { c.Animation.Noise = "value" },
		"bad background": func(c *Config) { c.Canvas.Background = "#xyz" },
		"zero width":     func(c *Config) { c.Canvas.Width = 0 },
		"zero fps":       func(c *Config) { c.Animation.FPS = 0 },
	} {
		cfg := DefaultConfig()
		mutate(cfg)
		a.Error(cfg.Validate(), name)
	}
}

func TestLoadConfigFile(t *testing.T) {
	a := assert.New(t)

	path := filepath.Join(t.TempDir(), "pinwheel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sphere:
  radius: 40
  by: [10, 10]
animation:
  noise: perlin
  seed: 0.25
palette: ["red", "#00ff00"]
`), 0o644))

	cfg, err := LoadConfig(viper.New(), path)
	require.NoError(t, err)

	a.Equal(40.0, cfg.Sphere.Radius)
	a.Equal([2]float64{10, 10}, cfg.Sphere.By)
	a.Equal(pinwheel.DefaultRange.From, cfg.Sphere.From)
	a.Equal("perlin", cfg.Animation.Noise)
	a.Equal(0.25, cfg.Animation.Seed)
	a.Equal([]string{"red", "#00ff00"}, cfg.Palette)
	a.Equal(float64(pinwheel.DefaultFPS), cfg.Animation.FPS)
}

func TestLoadConfigEnv(t *testing.T) {
	a := assert.New(t)

	t.Setenv("PINWHEEL_CANVAS_WIDTH", "320")
	t.Setenv("PINWHEEL_LOG_LEVEL", "debug")

	cfg, err := LoadConfig(viper.New(), filepath.Join(t.TempDir(), "missing", "..", "none.yaml"))
	a.Error(err, "an explicit config file must exist")
	a.Nil(cfg)

	cfg, err = LoadConfig(viper.New(), "")
	require.NoError(t, err)
	a.Equal(320, cfg.Canvas.Width)
	a.Equal("debug", cfg.LogLevel)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sphere:\n  by: [0, 5]\n"), 0o644))

	_, err := LoadConfig(viper.New(), path)
	assert.Error(t, err)
}

func TestConfigNewScene(t *testing.T) {
	a := assert.New(t)

	cfg := DefaultConfig()
	cfg.Animation.Seed = 3
	cfg.Camera.Zoom = 0

	scene, err := cfg.NewScene(quietLogger())
	require.NoError(t, err)
	a.Len(scene.Faces(), 289)
	a.Greater(scene.Camera().Zoom(), 0.0)
	a.NotEqual(1.0, scene.Camera().Zoom())

	cfg.Palette = []string{"nope"}
	_, err = cfg.NewScene(quietLogger())
	a.Error(err)
}

func TestRunHeadless(t *testing.T) {
	for _, tc := range []struct {
		name     string
		realtime bool
		frames   int
	}{
		{"stepped", false, 3},
		{"realtime", true, 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)

			cfg := DefaultConfig()
			cfg.Canvas.Width, cfg.Canvas.Height = 64, 48
			cfg.Camera.Zoom = 0
			cfg.Animation.Seed = 0.5
			cfg.Render.Frames = tc.frames
			cfg.Render.Realtime = tc.realtime
			cfg.Render.Out = filepath.Join(t.TempDir(), "out.gif")

			require.NoError(t, RunHeadless(context.Background(), cfg, quietLogger()))

			f, err := os.Open(cfg.Render.Out)
			require.NoError(t, err)
			defer f.Close()

			anim, err := gif.DecodeAll(f)
			require.NoError(t, err)
			a.Len(anim.Image, tc.frames)
			a.Equal(64, anim.Config.Width)
			a.Equal(48, anim.Config.Height)
		})
	}
}

func TestRunHeadlessCanceled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Canvas.Width, cfg.Canvas.Height = 16, 16
	cfg.Animation.Seed = 1
	cfg.Render.Out = filepath.Join(t.TempDir(), "out.gif")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, RunHeadless(ctx, cfg, quietLogger()), context.Canceled)
}
