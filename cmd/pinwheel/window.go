package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/flywave/go-pinwheel"
	"github.com/flywave/go-pinwheel/raster"
)

// RunWindow animates the scene in a desktop window until it is closed.
// ebiten calls Update once per display frame; the Loop drops the calls that
// arrive faster than the configured rate.
func RunWindow(cfg *Config, log logrus.FieldLogger) error {
	g, err := newWindowGame(cfg, log)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle("pinwheel")
	ebiten.SetWindowSize(cfg.Canvas.Width, cfg.Canvas.Height)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	err = ebiten.RunGame(g)

	log.WithFields(logrus.Fields{
		"frames":  g.loop.Frames(),
		"dropped": g.loop.Dropped(),
	}).Info("window closed")
	return err
}

type windowGame struct {
	loop   *pinwheel.Loop
	canvas *raster.Canvas
	clock  pinwheel.Clock
	frame  *ebiten.Image
}

func newWindowGame(cfg *Config, log logrus.FieldLogger) (*windowGame, error) {
	scene, err := cfg.NewScene(log)
	if err != nil {
		return nil, err
	}
	canvas, err := newCanvas(cfg)
	if err != nil {
		return nil, err
	}
	return &windowGame{
		loop:   pinwheel.NewLoop(scene, canvas, cfg.Animation.FPS),
		canvas: canvas,
		clock:  pinwheel.SystemClock{},
	}, nil
}

func (g *windowGame) Update() error {
	g.loop.Step(g.clock.Now())
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	img := g.canvas.Image()
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if g.frame == nil || g.frame.Bounds().Dx() != w || g.frame.Bounds().Dy() != h {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(w, h)
	}

	g.frame.WritePixels(img.Pix)
	screen.DrawImage(g.frame, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.canvas.Image().Bounds()
	return b.Dx(), b.Dy()
}
