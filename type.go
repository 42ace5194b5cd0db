package pinwheel

type NoiseKind string

const (
	Simplex NoiseKind = "simplex"
	Perlin  NoiseKind = "perlin"
)

type FaceKind int

const (
	PolygonKind FaceKind = iota
	CircleKind
)

func (k FaceKind) String() string {
	switch k {
	case PolygonKind:
		return "polygon"
	case CircleKind:
		return "circle"
	default:
		return "unknown"
	}
}
