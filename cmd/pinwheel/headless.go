package main

import (
	"context"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/flywave/go-pinwheel"
	"github.com/flywave/go-pinwheel/raster"
)

func newCanvas(cfg *Config) (*raster.Canvas, error) {
	bg, err := pinwheel.ParseColor(cfg.Canvas.Background)
	if err != nil {
		return nil, errors.Wrap(err, "canvas background")
	}
	c := raster.New(cfg.Canvas.Width, cfg.Canvas.Height)
	c.SetBackground(bg)
	return c, nil
}

// frameClock advances by exactly one frame period per call, so every step
// lands in a fresh rate bucket.
type frameClock struct {
	now    time.Time
	period time.Duration
}

func (c *frameClock) Now() time.Time {
	c.now = c.now.Add(c.period)
	return c.now
}

// RunHeadless renders cfg.Render.Frames frames without opening a window and
// writes them to cfg.Render.Out as an animated GIF.
func RunHeadless(ctx context.Context, cfg *Config, log logrus.FieldLogger) error {
	scene, err := cfg.NewScene(log)
	if err != nil {
		return err
	}
	canvas, err := newCanvas(cfg)
	if err != nil {
		return err
	}

	period := time.Duration(float64(time.Second) / cfg.Animation.FPS)
	if period <= 0 {
		return errors.Errorf("invalid fps: %g", cfg.Animation.FPS)
	}
	loop := pinwheel.NewLoop(scene, canvas, cfg.Animation.FPS)

	anim := &gif.GIF{}
	delay := int(100 / cfg.Animation.FPS)
	if delay < 2 {
		delay = 2
	}
	record := func() {
		img := canvas.Image()
		p := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(p, img.Bounds(), img, image.Point{})
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, delay)
	}

	start := time.Now()
	if cfg.Render.Realtime {
		err = runTicker(ctx, loop, period, cfg.Render.Frames, record)
	} else {
		err = runStepped(ctx, loop, period, cfg.Render.Frames, record)
	}
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"frames":  loop.Frames(),
		"dropped": loop.Dropped(),
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Info("frames rendered")

	return writeGIF(cfg.Render.Out, anim)
}

func runTicker(ctx context.Context, loop *pinwheel.Loop, period time.Duration, frames int, record func()) error {
	t := time.NewTicker(period)
	defer t.Stop()

	for loop.Frames() < uint64(frames) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			if loop.Step(now) {
				record()
			}
		}
	}
	return nil
}

func runStepped(ctx context.Context, loop *pinwheel.Loop, period time.Duration, frames int, record func()) error {
	clock := &frameClock{now: time.Now(), period: period}
	for loop.Frames() < uint64(frames) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if loop.Step(clock.Now()) {
			record()
		}
	}
	return nil
}

func writeGIF(path string, anim *gif.GIF) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer f.Close()

	if err := gif.EncodeAll(f, anim); err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	return f.Close()
}
