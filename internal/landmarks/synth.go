package landmarks

import (
	"fmt"
	"strings"

	"github.com/san-kum/gesturefx/internal/fx"
)

// Shape is a synthetic hand configuration.
type Shape int

const (
	Open Shape = iota
	Pinch
	OK
	Fist
)

// DefaultSpread is the thumb to index tip gap of a synthetic open hand.
const DefaultSpread = 0.18

var shapeNames = [...]string{"open", "pinch", "ok", "fist"}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("shape(%d)", int(s))
	}
	return shapeNames[s]
}

func ParseShape(name string) (Shape, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range shapeNames {
		if s == n {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", fx.ErrUnknownShape, name)
}

func (s Shape) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Shape) UnmarshalText(b []byte) error {
	v, err := ParseShape(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// palm-relative layout, y pointing down towards the wrist
var (
	wristAt = fx.Point{X: 0, Y: 0.10}
	mcpAt   = [4]fx.Point{{X: -0.03, Y: 0}, {X: 0, Y: -0.005}, {X: 0.025, Y: 0}, {X: 0.05, Y: 0.01}}
	tipAt   = [4]fx.Point{{X: -0.03, Y: -0.16}, {X: 0, Y: -0.175}, {X: 0.025, Y: -0.16}, {X: 0.05, Y: -0.12}}
	curl    = fx.Point{X: 0, Y: 0.03}
)

// Synth builds a 21-point hand whose palm centroid maps to the pose
// position (x, y), i.e. x is already mirrored. spread sets the
// thumb-index gap of an open hand; zero selects DefaultSpread.
func Synth(shape Shape, x, y, spread float64) []fx.Landmark {
	if spread <= 0 {
		spread = DefaultSpread
	}
	var tips [4]fx.Point
	for f := range tips {
		extended := false
		switch shape {
		case Open:
			extended = true
		case OK:
			extended = f > 0
		}
		if extended {
			tips[f] = tipAt[f]
		} else {
			tips[f] = fx.Point{X: mcpAt[f].X + curl.X, Y: mcpAt[f].Y + curl.Y}
		}
	}
	// pinch and ok keep the index extended so the pinch is visible
	if shape == Pinch || shape == OK {
		tips[0] = tipAt[0]
	}

	var thumb fx.Point
	switch shape {
	case Open:
		thumb = fx.Point{X: tips[0].X - spread, Y: tips[0].Y}
	case Pinch, OK:
		thumb = fx.Point{X: tips[0].X - 0.02, Y: tips[0].Y}
	default:
		thumb = fx.Point{X: mcpAt[0].X - 0.04, Y: mcpAt[0].Y + 0.02}
	}

	pts := make([]fx.Point, fx.NumLandmarks)
	pts[fx.Wrist] = wristAt
	chain(pts[1:fx.ThumbTip+1], wristAt, thumb)
	for f := 0; f < 4; f++ {
		base := fx.IndexMCP + 4*f
		pts[base] = mcpAt[f]
		chain(pts[base+1:base+4], mcpAt[f], tips[f])
	}

	var cx, cy float64
	for _, i := range fx.PalmIndices {
		cx += pts[i].X
		cy += pts[i].Y
	}
	cx /= float64(len(fx.PalmIndices))
	cy /= float64(len(fx.PalmIndices))
	dx, dy := (1-x)-cx, y-cy

	out := make([]fx.Landmark, fx.NumLandmarks)
	for i, p := range pts {
		out[i] = fx.Landmark{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}

// chain spaces joints evenly from base (exclusive) to tip (the last joint).
func chain(joints []fx.Point, base, tip fx.Point) {
	n := float64(len(joints))
	for k := range joints {
		t := float64(k+1) / n
		joints[k] = fx.Point{X: fx.Lerp(base.X, tip.X, t), Y: fx.Lerp(base.Y, tip.Y, t)}
	}
}

// SynthFrame wraps a synthetic hand in a frame. A nil shape pointer
// produces a frame with no hand.
func SynthFrame(ts float64, shape *Shape, x, y, spread float64) Frame {
	f := Frame{Timestamp: ts}
	if shape != nil {
		f.Hands = [][]fx.Landmark{Synth(*shape, x, y, spread)}
	}
	return f
}
