package surface

import (
	"strings"
	"testing"

	"github.com/san-kum/gesturefx/internal/fx"
)

var white = fx.Color{R: 1, G: 1, B: 1, A: 1}

func TestSpans_Rectangle(t *testing.T) {
	rect := []fx.Point{{X: 2, Y: 1}, {X: 8, Y: 1}, {X: 8, Y: 5}, {X: 2, Y: 5}}
	rows := map[int][2]float64{}
	Spans(rect, 10, func(y int, x0, x1 float64) {
		rows[y] = [2]float64{x0, x1}
	})
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	for y := 1; y <= 4; y++ {
		if rows[y] != [2]float64{2, 8} {
			t.Errorf("row %d: got %v", y, rows[y])
		}
	}
}

func TestSpans_Degenerate(t *testing.T) {
	called := false
	fn := func(int, float64, float64) { called = true }
	Spans([]fx.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, 10, fn)
	Spans([]fx.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}}, 0, fn)
	if called {
		t.Error("degenerate input must not produce spans")
	}
}

func TestCanvas_Set(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(0, 0)
	c.Set(3, 7)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1 at origin, got %U", c.Grid[0][0])
	}
	if c.Grid[1][1] != 0x2880 {
		t.Errorf("expected dot 8 in cell (1,1), got %U", c.Grid[1][1])
	}
	c.Set(-1, 0)
	c.Set(100, 100)
	if !c.Lit(3, 7) || c.Lit(1, 1) {
		t.Error("Lit disagrees with Set")
	}
}

func TestCanvas_Size(t *testing.T) {
	c := NewCanvas(40, 10)
	w, h := c.Size()
	if w != 80 || h != 40 {
		t.Errorf("expected 80x40 dots, got %vx%v", w, h)
	}
	c.Resize(-3, 5)
	if w, _ := c.Size(); w != 0 {
		t.Errorf("negative width should collapse to 0, got %v", w)
	}
	c.FillCircle(1, 1, 3, white)
}

func TestCanvas_AlphaThreshold(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillCircle(10, 10, 0.5, white.WithAlpha(Threshold/2))
	if c.Lit(10, 10) {
		t.Error("faint dot should not light")
	}
	c.SetAlpha(0.1)
	c.FillCircle(10, 10, 0.5, white)
	if c.Lit(10, 10) {
		t.Error("global alpha should suppress dot")
	}
	c.SetAlpha(1)
	c.FillCircle(10, 10, 0.5, white)
	if !c.Lit(10, 10) {
		t.Error("opaque dot should light")
	}
}

func TestCanvas_FillPath(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillPath([]fx.Point{{X: 0, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 20}, {X: 0, Y: 20}}, white)
	if !c.Lit(5, 15) {
		t.Error("interior dot should be lit")
	}
	if c.Lit(5, 5) {
		t.Error("exterior dot should not be lit")
	}
}

func TestCanvas_StrokeLine(t *testing.T) {
	c := NewCanvas(10, 5)
	c.StrokeLine(0, 0, 19, 0, 1, white)
	for x := 0; x < 20; x++ {
		if !c.Lit(x, 0) {
			t.Fatalf("dot %d not lit", x)
		}
	}
}

func TestCanvas_Render(t *testing.T) {
	c := NewCanvas(3, 1)
	c.FillCircle(0, 0, 0.5, fx.RGB(255, 0, 0))
	out := c.Render()
	if !strings.HasSuffix(out, "\n") {
		t.Error("render should end each row with a newline")
	}
	if !strings.ContainsRune(out, 0x2801) {
		t.Error("render should contain the lit cell")
	}
	c.Clear()
	if c.String() != strings.Repeat(string(rune(brailleBase)), 3)+"\n" {
		t.Errorf("cleared canvas = %q", c.String())
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(100, 50)
	r.FillCircle(1, 2, 3, white)
	r.SetGlow(4, white)
	r.SetAlpha(0.5)
	r.StrokeLine(0, 0, 3, 4, 1, white)
	r.FillPath([]fx.Point{{}, {X: 1}, {Y: 1}}, white)

	ops := r.Ops()
	if len(ops) != 3 {
		t.Fatalf("expected 3 ops, got %d", len(ops))
	}
	if ops[0].Glow || ops[0].Alpha != 1 {
		t.Errorf("first op state wrong: %+v", ops[0])
	}
	if !ops[1].Glow || ops[1].Alpha != 0.5 || ops[1].R != 5 {
		t.Errorf("line op wrong: %+v", ops[1])
	}
	if ops[2].Points != 3 {
		t.Errorf("path should record 3 points, got %d", ops[2].Points)
	}
	if r.Count(OpFillCircle) != 1 {
		t.Error("expected one circle")
	}

	r.Reset()
	if len(r.Ops()) != 0 {
		t.Error("reset should drop ops")
	}
	if w, h := r.Size(); w != 100 || h != 50 {
		t.Error("reset should keep size")
	}
}

func TestSVG(t *testing.T) {
	s := NewSVG(200, 100)
	s.Background = fx.RGB(0, 0, 0)
	s.SetGlow(6, white)
	s.FillCircle(10, 10, 2, white)
	s.SetGlow(6, white)
	s.SetGlow(0, white)
	s.FillRadial(50, 50, 10, white, white.WithAlpha(0))
	s.FillLinear(0, 80, 200, 20, white, white)
	s.FillPath([]fx.Point{{X: 0, Y: 100}, {X: 200, Y: 100}, {X: 100, Y: 90}}, white)
	s.StrokeEllipse(20, 20, 5, 2, 1, white)

	doc := s.String()
	for _, want := range []string{`<svg`, `filter="url(#glow6)"`, `<radialGradient id="rg1">`, `<linearGradient id="lg2"`, ` Z"`, `<ellipse`, `</svg>`} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
	if strings.Count(doc, `<filter id="glow6"`) != 1 {
		t.Error("glow filter should be defined once")
	}
}
