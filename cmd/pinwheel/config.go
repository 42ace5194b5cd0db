package main

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/flywave/go-pinwheel"
)

// Config represents the pinwheel configuration
type Config struct {
	LogLevel  string          `yaml:"log_level" mapstructure:"log_level"`
	Canvas    CanvasConfig    `yaml:"canvas" mapstructure:"canvas"`
	Camera    CameraConfig    `yaml:"camera" mapstructure:"camera"`
	Sphere    SphereConfig    `yaml:"sphere" mapstructure:"sphere"`
	Animation AnimationConfig `yaml:"animation" mapstructure:"animation"`
	Palette   []string        `yaml:"palette" mapstructure:"palette"`
	Axes      bool            `yaml:"axes" mapstructure:"axes"`
	Render    RenderConfig    `yaml:"render" mapstructure:"render"`
}

type CanvasConfig struct {
	Width      int    `yaml:"width" mapstructure:"width"`
	Height     int    `yaml:"height" mapstructure:"height"`
	Background string `yaml:"background" mapstructure:"background"`
}

// CameraConfig holds the orthographic camera. A zero zoom fits the sphere to
// the canvas.
type CameraConfig struct {
	Zoom        float64    `yaml:"zoom" mapstructure:"zoom"`
	Position    [3]float64 `yaml:"position" mapstructure:"position"`
	Direction   [3]float64 `yaml:"direction" mapstructure:"direction"`
	Up          [3]float64 `yaml:"up" mapstructure:"up"`
	DepthOrigin [3]float64 `yaml:"depth_origin" mapstructure:"depth_origin"`
}

// SphereConfig angles are in degrees.
type SphereConfig struct {
	Radius         float64    `yaml:"radius" mapstructure:"radius"`
	From           [2]float64 `yaml:"from" mapstructure:"from"`
	To             [2]float64 `yaml:"to" mapstructure:"to"`
	By             [2]float64 `yaml:"by" mapstructure:"by"`
	Tilt           float64    `yaml:"tilt" mapstructure:"tilt"`
	BackdropRadius float64    `yaml:"backdrop_radius" mapstructure:"backdrop_radius"`
}

// AnimationConfig: a zero seed picks a random one.
type AnimationConfig struct {
	FPS           float64 `yaml:"fps" mapstructure:"fps"`
	TimeStep      float64 `yaml:"time_step" mapstructure:"time_step"`
	TimeThreshold float64 `yaml:"time_threshold" mapstructure:"time_threshold"`
	Spin          float64 `yaml:"spin" mapstructure:"spin"`
	Frequency     float64 `yaml:"frequency" mapstructure:"frequency"`
	Blur          float64 `yaml:"blur" mapstructure:"blur"`
	Noise         string  `yaml:"noise" mapstructure:"noise"`
	Seed          float64 `yaml:"seed" mapstructure:"seed"`
}

type RenderConfig struct {
	Frames   int    `yaml:"frames" mapstructure:"frames"`
	Out      string `yaml:"out" mapstructure:"out"`
	Realtime bool   `yaml:"realtime" mapstructure:"realtime"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Canvas: CanvasConfig{
			Width:      pinwheel.DefaultWidth,
			Height:     pinwheel.DefaultHeight,
			Background: "black",
		},
		Camera: CameraConfig{
			Zoom:        pinwheel.DefaultZoom,
			Up:          [3]float64{0, 1, 0},
			DepthOrigin: [3]float64(pinwheel.DefaultDepthOrigin),
		},
		Sphere: SphereConfig{
			Radius:         pinwheel.DefaultRadius,
			From:           pinwheel.DefaultRange.From,
			To:             pinwheel.DefaultRange.To,
			By:             pinwheel.DefaultRange.By,
			Tilt:           pinwheel.DefaultTilt,
			BackdropRadius: pinwheel.DefaultBackdropRadius,
		},
		Animation: AnimationConfig{
			FPS:           pinwheel.DefaultFPS,
			TimeStep:      pinwheel.DefaultTimeStep,
			TimeThreshold: pinwheel.DefaultTimeThreshold,
			Spin:          pinwheel.DefaultSpin,
			Frequency:     pinwheel.DefaultFrequency,
			Blur:          pinwheel.DefaultBlur,
			Noise:         string(pinwheel.Simplex),
		},
		Palette: []string{"#264653", "#2a9d8f", "#e9c46a", "#f4a261", "#e76f51"},
		Render: RenderConfig{
			Frames: 120,
			Out:    "pinwheel.gif",
		},
	}
}

// LoadConfig layers the defaults, the config file, PINWHEEL_* environment
// variables and any flags bound on v, in that order.
func LoadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	base, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return nil, errors.Wrap(err, "encode defaults")
	}
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(base)); err != nil {
		return nil, errors.Wrap(err, "load defaults")
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".pinwheel"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}

	if err := v.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "error reading config file")
		}
	}

	v.SetEnvPrefix("PINWHEEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errors.Wrap(err, "error unmarshaling config")
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return config, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return errors.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	case c.Sphere.Radius <= 0:
		return errors.Errorf("sphere radius must be positive, got %g", c.Sphere.Radius)
	case c.Sphere.By[0] <= 0 || c.Sphere.By[1] <= 0:
		return errors.Errorf("grid step must be positive, got %v", c.Sphere.By)
	case c.Camera.Zoom < 0:
		return errors.Errorf("zoom must not be negative, got %g", c.Camera.Zoom)
	case c.Animation.FPS <= 0:
		return errors.Errorf("fps must be positive, got %g", c.Animation.FPS)
	case c.Animation.TimeThreshold <= 0:
		return errors.Errorf("time threshold must be positive, got %g", c.Animation.TimeThreshold)
	case len(c.Palette) == 0:
		return errors.New("palette is empty")
	}

	switch pinwheel.NoiseKind(c.Animation.Noise) {
	case pinwheel.Simplex, pinwheel.Perlin:
	default:
		return errors.Errorf("unknown noise %q", c.Animation.Noise)
	}

	if _, err := pinwheel.ParseColor(c.Canvas.Background); err != nil {
		return errors.Wrap(err, "canvas background")
	}
	return nil
}

func (c *Config) Range() pinwheel.Range {
	return pinwheel.Range{From: c.Sphere.From, To: c.Sphere.To, By: c.Sphere.By}
}

// NewScene builds the scene described by c.
func (c *Config) NewScene(log logrus.FieldLogger) (*pinwheel.Scene, error) {
	palette, err := pinwheel.ParsePalette(c.Palette)
	if err != nil {
		return nil, errors.Wrap(err, "palette")
	}

	seed := c.Animation.Seed
	if seed == 0 {
		seed = rand.Float64()
	}
	log.WithField("seed", seed).Info("noise seeded")

	rng := c.Range()
	width, height := float64(c.Canvas.Width), float64(c.Canvas.Height)

	zoom := c.Camera.Zoom
	if zoom == 0 {
		box, err := pinwheel.Bounds(pinwheel.Patches(c.Sphere.Radius, rng, nil, nil))
		if err != nil {
			return nil, errors.Wrap(err, "fit camera")
		}
		zoom = pinwheel.FitZoom(box, width, height, 0.05)
		log.WithField("zoom", zoom).Debug("camera fitted")
	}

	camera := pinwheel.NewCamera(pinwheel.CameraOptions{
		Position:  pinwheel.Vector(c.Camera.Position),
		Direction: pinwheel.Vector(c.Camera.Direction),
		Up:        pinwheel.Vector(c.Camera.Up),
		Width:     width,
		Height:    height,
		Zoom:      zoom,
	})

	origin := pinwheel.Vector(c.Camera.DepthOrigin)

	return pinwheel.NewScene(pinwheel.Options{
		Radius:         &c.Sphere.Radius,
		Range:          &rng,
		Frequency:      &c.Animation.Frequency,
		TimeStep:       &c.Animation.TimeStep,
		TimeThreshold:  &c.Animation.TimeThreshold,
		Spin:           &c.Animation.Spin,
		Tilt:           &c.Sphere.Tilt,
		BackdropRadius: &c.Sphere.BackdropRadius,
		Blur:           &c.Animation.Blur,
		DepthOrigin:    &origin,
		Palette:        palette,
		Field:          pinwheel.NewField(pinwheel.NoiseKind(c.Animation.Noise), pinwheel.Seed(seed)),
		Camera:         camera,
		Axes:           c.Axes,
		Logger:         log,
	}), nil
}
