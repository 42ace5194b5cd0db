package pinwheel

import (
	"math"
	"time"
)

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Loop renders a Scene at most once per 1/fps bucket of wall-clock time.
// Steps that land in an already rendered bucket are dropped.
type Loop struct {
	scene    *Scene
	state    *State
	surface  Surface
	fps      float64
	prevTick int64
	frames   uint64
	dropped  uint64
}

func NewLoop(scene *Scene, surface Surface, fps float64) *Loop {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Loop{
		scene:   scene,
		state:   scene.NewState(),
		surface: surface,
		fps:     fps,
	}
}

func (l *Loop) tick(now time.Time) int64 {
	return int64(math.Round(l.fps * float64(now.UnixMilli()) / 1000))
}

// Step renders one frame if now falls in a new bucket and reports whether it
// did.
func (l *Loop) Step(now time.Time) bool {
	t := l.tick(now)
	if t == l.prevTick {
		l.dropped++
		return false
	}
	l.prevTick = t

	l.scene.Render(l.state, l.surface)
	l.frames++
	return true
}

func (l *Loop) State() *State { return l.state }

func (l *Loop) Frames() uint64 { return l.frames }

func (l *Loop) Dropped() uint64 { return l.dropped }
