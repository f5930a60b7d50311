package surface

import "github.com/san-kum/gesturefx/internal/fx"

// Null is a sized surface that draws nothing, for headless runs and
// benchmarks where only the simulation matters.
type Null struct {
	W, H float64
}

func NewNull(w, h float64) *Null { return &Null{W: w, H: h} }

func (n *Null) Size() (float64, float64) { return n.W, n.H }

func (*Null) SetAlpha(float64)                                {}
func (*Null) SetGlow(float64, fx.Color)                       {}
func (*Null) FillCircle(_, _, _ float64, _ fx.Color)          {}
func (*Null) StrokeEllipse(_, _, _, _, _ float64, _ fx.Color) {}
func (*Null) StrokeLine(_, _, _, _, _ float64, _ fx.Color)    {}
func (*Null) StrokePath([]fx.Point, float64, fx.Color)        {}
func (*Null) FillPath([]fx.Point, fx.Color)                   {}
func (*Null) FillRadial(_, _, _ float64, _, _ fx.Color)       {}
func (*Null) FillLinear(_, _, _, _ float64, _, _ fx.Color)    {}
