package pinwheel

import (
	"image/color"
	"io"
	"sort"

	"github.com/sirupsen/logrus"
)

const (
	DefaultRadius         = 28
	DefaultBackdropRadius = 80
	DefaultFrequency      = 0.03
	DefaultTimeStep       = 0.02
	DefaultTimeThreshold  = 10000000
	DefaultBlur           = 5
	DefaultSpin           = 0.2
	DefaultTilt           = 45
	DefaultZoom           = 0.1
	DefaultWidth          = 600
	DefaultHeight         = 600
	DefaultFPS            = 60

	polygonStrokeWidth = 2
	circleStrokeWidth  = 1
)

var (
	DefaultRange = Range{
		From: [2]float64{20, -90},
		To:   [2]float64{60, 90},
		By:   [2]float64{5, 5},
	}
	DefaultDepthOrigin = Vector{0, 10, 100}
)

type Options struct {
	Radius         *float64
	Range          *Range
	Frequency      *float64
	TimeStep       *float64
	TimeThreshold  *float64
	Spin           *float64
	Tilt           *float64
	BackdropRadius *float64
	Blur           *float64
	DepthOrigin    *Vector
	Palette        Palette
	Field          Field
	Camera         *Camera
	Axes           bool
	Logger         logrus.FieldLogger
}

// Scene is the immutable part of the animation: the faces built at startup
// and the constants that drive each frame. Everything that changes between
// frames lives in State.
type Scene struct {
	faces []Face

	radius        float64
	frequency     float64
	timeStep      float64
	timeThreshold float64
	spin          float64
	tilt          float64
	blur          float64
	origin        Vector
	palette       Palette
	shadow        color.Color
	field         Field
	camera        *Camera
	axes          bool

	log logrus.FieldLogger
}

// State is the per-frame animation state threaded through Scene.Render.
// Perspective is derived from Spin on every frame.
type State struct {
	Perspective *Transform
	Faces       []Face
	Time        float64
	Spin        Rotator
	Frame       uint64
}

func floatOr(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

func NewScene(opts Options) *Scene {
	s := &Scene{
		radius:        floatOr(opts.Radius, DefaultRadius),
		frequency:     floatOr(opts.Frequency, DefaultFrequency),
		timeStep:      floatOr(opts.TimeStep, DefaultTimeStep),
		timeThreshold: floatOr(opts.TimeThreshold, DefaultTimeThreshold),
		spin:          floatOr(opts.Spin, DefaultSpin),
		tilt:          floatOr(opts.Tilt, DefaultTilt),
		blur:          floatOr(opts.Blur, DefaultBlur),
		origin:        DefaultDepthOrigin,
		palette:       opts.Palette,
		shadow:        LightGrey,
		field:         opts.Field,
		camera:        opts.Camera,
		axes:          opts.Axes,
		log:           opts.Logger,
	}

	if opts.DepthOrigin != nil {
		s.origin = *opts.DepthOrigin
	}

	if len(s.palette) == 0 {
		s.palette = DefaultPalette()
	}

	if s.field == nil {
		s.field = NewField(Simplex, 0)
	}

	if s.camera == nil {
		s.camera = NewCamera(CameraOptions{
			Up:     YAxis,
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Zoom:   DefaultZoom,
		})
	}

	if s.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.log = l
	}

	rng := DefaultRange
	if opts.Range != nil {
		rng = *opts.Range
	}

	s.faces = Patches(s.radius, rng, Black, LightGrey)
	s.faces = append(s.faces, CircleFace(
		ToCartesian(Spherical{R: s.radius}),
		floatOr(opts.BackdropRadius, DefaultBackdropRadius),
		LightGrey,
		Black,
	))

	s.log.WithFields(logrus.Fields{
		"faces":  len(s.faces),
		"radius": s.radius,
		"zoom":   s.camera.Zoom(),
	}).Info("scene built")

	return s
}

// NewState returns the state of the first frame: the perspective tilted by
// the configured angle and a private copy of the faces.
func (s *Scene) NewState() *State {
	return &State{
		Perspective: s.perspective(Rotator{}),
		Faces:       s.Faces(),
	}
}

// perspective tilts the sphere about X after spinning it about its own Z axis.
func (s *Scene) perspective(spin Rotator) *Transform {
	return Identity().RotX(DegToRad(s.tilt)).RotZ(spin.Normalized().Radians())
}

func (s *Scene) Faces() []Face {
	faces := make([]Face, len(s.faces))
	copy(faces, s.faces)
	return faces
}

func (s *Scene) Camera() *Camera {
	return s.camera
}

// Render draws one frame of st onto surface and advances st.
func (s *Scene) Render(st *State, surface Surface) {
	w, h := s.camera.Size()
	surface.Clear(w, h)

	st.Spin.Add(s.spin)
	st.Perspective = s.perspective(st.Spin)

	// ties fall back to construction order
	st.Faces = append(st.Faces[:0], s.faces...)
	sort.Stable(newDepthOrder(st.Faces, s.origin, st.Perspective))

	for i := range st.Faces {
		f := &st.Faces[i]
		switch f.Kind {
		case PolygonKind:
			s.drawPolygon(st, f, surface)
		case CircleKind:
			s.drawCircle(st, f, surface)
		}
	}

	if s.axes {
		s.drawAxis(st, surface)
	}

	st.Time += s.timeStep
	if st.Time > s.timeThreshold {
		st.Time = 0
	}
	st.Frame++

	s.log.WithFields(logrus.Fields{
		"frame": st.Frame,
		"time":  st.Time,
		"spin":  st.Spin.Normalized().Degrees,
	}).Trace("frame rendered")
}

// SpinAngle samples the field at the patch centre and returns the patch
// rotation in degrees together with its fill colour.
func (s *Scene) SpinAngle(center Vector, time float64) (float64, color.RGBA) {
	n := s.field.Noise(center.Y()*s.frequency, center.Z()*s.frequency, time)
	angle := Remap(n, [2]float64{-1, 1}, [2]float64{-360, 360})
	return angle, s.palette.Index(angle)
}

func (s *Scene) drawPolygon(st *State, f *Face, surface Surface) {
	angle, fill := s.SpinAngle(f.Center, st.Time)
	radians := DegToRad(angle)

	points := make([]Point, len(f.Vertices))
	for i, v := range f.Vertices {
		points[i] = s.camera.Project(SpinVertex(v, f.Center, radians).Transform(st.Perspective))
	}

	surface.SetShadowBlur(0)
	surface.DrawPolygon(points, f.Stroke, fill, polygonStrokeWidth)
}

func (s *Scene) drawCircle(st *State, f *Face, surface Surface) {
	center := s.camera.Project(f.Center.Transform(st.Perspective))

	surface.SetShadowBlur(s.blur)
	surface.SetShadowColor(s.shadow)
	surface.DrawCircle(center, f.Radius, f.Stroke, f.Fill, circleStrokeWidth)
}

func (s *Scene) drawAxis(st *State, surface Surface) {
	tip := ZAxis.Scale(s.radius * 1.5)
	surface.SetShadowBlur(0)
	surface.DrawLine(
		s.camera.Project(tip.Scale(-1).Transform(st.Perspective)),
		s.camera.Project(tip.Transform(st.Perspective)),
		LightGrey,
		1,
	)
}

// alignment is the rotation about Z that brings center onto the meridian
// φ = 90°, i.e. into the half plane x = 0, y > 0.
func alignment(center Vector) float64 {
	return -ToSpherical(center).Phi + DegToRad(90)
}

// SpinVertex rotates v by angle radians about the axis through center that
// is tangent to the sphere and parallel to the XY plane.
func SpinVertex(v, center Vector, angle float64) Vector {
	align := alignment(center)
	pivot := center.RotateAround(Zeroes(), ZAxis, align)
	return v.
		RotateAround(Zeroes(), ZAxis, align).
		RotateAround(pivot, XAxis, angle).
		RotateAround(Zeroes(), ZAxis, -align)
}

// SpinAxis is the direction of the axis SpinVertex rotates about.
func SpinAxis(center Vector) Vector {
	return XAxis.RotateAround(Zeroes(), ZAxis, -alignment(center))
}
