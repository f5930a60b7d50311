package surface

import "github.com/san-kum/gesturefx/internal/fx"

type OpKind int

const (
	OpFillCircle OpKind = iota
	OpStrokeEllipse
	OpStrokeLine
	OpStrokePath
	OpFillPath
	OpFillRadial
	OpFillLinear
)

func (k OpKind) String() string {
	switch k {
	case OpFillCircle:
		return "fill-circle"
	case OpStrokeEllipse:
		return "stroke-ellipse"
	case OpStrokeLine:
		return "stroke-line"
	case OpStrokePath:
		return "stroke-path"
	case OpFillPath:
		return "fill-path"
	case OpFillRadial:
		return "fill-radial"
	case OpFillLinear:
		return "fill-linear"
	}
	return "unknown"
}

// Op is one recorded draw call. X, Y is the anchor (centre or start) and R
// the radius, half-width or segment length depending on the kind.
type Op struct {
	Kind   OpKind
	X, Y   float64
	R      float64
	Color  fx.Color
	Alpha  float64
	Glow   bool
	Points int
}

// Recorder is an fx.Surface that logs draw calls instead of rasterizing.
type Recorder struct {
	W, H  float64
	ops   []Op
	alpha float64
	glow  bool
}

func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h, alpha: 1}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

// Resize changes the reported size, e.g. to simulate a viewport change.
func (r *Recorder) Resize(w, h float64) { r.W, r.H = w, h }

func (r *Recorder) SetAlpha(a float64) { r.alpha = fx.Clamp01(a) }

func (r *Recorder) SetGlow(blur float64, _ fx.Color) { r.glow = blur > 0 }

func (r *Recorder) add(op Op) {
	op.Alpha = r.alpha
	op.Glow = r.glow
	r.ops = append(r.ops, op)
}

func (r *Recorder) FillCircle(x, y, rad float64, c fx.Color) {
	r.add(Op{Kind: OpFillCircle, X: x, Y: y, R: rad, Color: c})
}

func (r *Recorder) StrokeEllipse(x, y, rx, ry, _ float64, c fx.Color) {
	r.add(Op{Kind: OpStrokeEllipse, X: x, Y: y, R: rx, Color: c})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, _ float64, c fx.Color) {
	r.add(Op{Kind: OpStrokeLine, X: x0, Y: y0, R: dist(x0, y0, x1, y1), Color: c, Points: 2})
}

func (r *Recorder) StrokePath(pts []fx.Point, _ float64, c fx.Color) {
	r.add(pathOp(OpStrokePath, pts, c))
}

func (r *Recorder) FillPath(pts []fx.Point, c fx.Color) {
	r.add(pathOp(OpFillPath, pts, c))
}

func (r *Recorder) FillRadial(x, y, rad float64, inner, _ fx.Color) {
	r.add(Op{Kind: OpFillRadial, X: x, Y: y, R: rad, Color: inner})
}

func (r *Recorder) FillLinear(x, y, w, h float64, top, _ fx.Color) {
	r.add(Op{Kind: OpFillLinear, X: x, Y: y, R: h, Color: top, Points: int(w)})
}

// Ops returns the recorded calls in draw order.
func (r *Recorder) Ops() []Op { return r.ops }

// Count returns how many calls of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Reset drops the log and restores alpha and glow, keeping the size.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
	r.alpha = 1
	r.glow = false
}

func pathOp(k OpKind, pts []fx.Point, c fx.Color) Op {
	op := Op{Kind: k, Color: c, Points: len(pts)}
	if len(pts) > 0 {
		op.X, op.Y = pts[0].X, pts[0].Y
	}
	return op
}
