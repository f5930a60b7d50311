package fx

// Hand landmark indices in the 21-point hand model.
const (
	Wrist     = 0
	ThumbTip  = 4
	IndexMCP  = 5
	IndexTip  = 8
	MiddleMCP = 9
	MiddleTip = 12
	RingMCP   = 13
	RingTip   = 16
	PinkyMCP  = 17
	PinkyTip  = 20

	NumLandmarks = 21
)

// PalmIndices are the landmarks averaged into the tracked hand point.
var PalmIndices = [5]int{Wrist, IndexMCP, MiddleMCP, RingMCP, PinkyMCP}

// Landmark is a camera-relative point, each coordinate nominally in [0,1].
type Landmark struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Pose is the normalized hand signal recomputed on every detection tick.
// When Present is false every other field is stale and Landmarks is nil.
type Pose struct {
	X             float64    `json:"x"`
	Y             float64    `json:"y"`
	Present       bool       `json:"present"`
	Pinching      bool       `json:"pinching"`
	PinchDistance float64    `json:"pinch_distance"`
	Landmarks     []Landmark `json:"landmarks,omitempty"`
}

// Absent is the pose published when no hand is detected.
func Absent() Pose { return Pose{} }

// Pixel maps the pose position onto a w x h surface.
func (p Pose) Pixel(w, h float64) (float64, float64) {
	return p.X * w, p.Y * h
}

// HandOpen reports an open hand outside the top hover band.
func (p Pose) HandOpen(hoverBand float64) bool {
	return p.Present && !p.Pinching && p.Y >= hoverBand
}
