package mode_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gesturefx/internal/config"
	"github.com/san-kum/gesturefx/internal/effects"
	"github.com/san-kum/gesturefx/internal/fx"
	"github.com/san-kum/gesturefx/internal/mode"
)

var _ = Describe("Controller", func() {
	var c *mode.Controller

	BeforeEach(func() {
		c = mode.New(config.DefaultConfig(), fx.NewRand(1))
	})

	It("starts in jellyfish", func() {
		Expect(c.Active()).To(Equal(fx.Jellyfish))
		Expect(c.Sim().Theme()).To(Equal(fx.Jellyfish))
		Expect(c.Generation()).To(Equal(uint64(1)))
	})

	It("starts in the configured theme", func() {
		cfg := config.DefaultConfig()
		cfg.Theme = fx.Rain
		Expect(mode.New(cfg, fx.NewRand(1)).Active()).To(Equal(fx.Rain))
	})

	It("falls back to jellyfish for an unknown configured theme", func() {
		cfg := config.DefaultConfig()
		cfg.Theme = fx.Theme(9)
		c := mode.New(cfg, fx.NewRand(1))
		Expect(c.Active()).To(Equal(fx.Jellyfish))
		Expect(c.Sim()).NotTo(BeNil())
	})

	It("cycles back to jellyfish after three switches", func() {
		seen := []fx.Theme{}
		for i := 0; i < 3; i++ {
			Expect(c.Apply(fx.ModeSwitch{})).To(BeTrue())
			seen = append(seen, c.Active())
		}
		Expect(seen).To(Equal([]fx.Theme{fx.Snow, fx.Rain, fx.Jellyfish}))
		Expect(c.Generation()).To(Equal(uint64(4)))
	})

	It("ignores hover and empty gestures", func() {
		Expect(c.Apply(fx.HoverTab{Index: 2})).To(BeFalse())
		Expect(c.Apply(fx.NoGesture{})).To(BeFalse())
		Expect(c.Active()).To(Equal(fx.Jellyfish))
		Expect(c.Generation()).To(Equal(uint64(1)))
	})

	It("jumps directly on selection", func() {
		Expect(c.Select(fx.Rain)).To(Succeed())
		Expect(c.Active()).To(Equal(fx.Rain))
		Expect(c.Select(fx.Theme(7))).To(MatchError(fx.ErrUnknownTheme))
		Expect(c.Active()).To(Equal(fx.Rain))
	})

	It("discards all entities on every transition", func() {
		pose := fx.Pose{X: 0.5, Y: 0.5, Present: true, PinchDistance: 0.3}
		for i := 0; i < 20; i++ {
			c.Sim().Step(1.0/60, pose, 800, 600)
		}
		Expect(c.Sim().Counts().Total()).To(BeNumerically(">", 0))

		old := c.Sim()
		Expect(c.Select(fx.Jellyfish)).To(Succeed())
		Expect(c.Sim()).NotTo(BeIdenticalTo(old))
		Expect(c.Sim().Counts().Total()).To(BeZero())
	})

	It("resets the snow ground on entry", func() {
		Expect(c.Select(fx.Snow)).To(Succeed())
		for i := 0; i < 600; i++ {
			c.Sim().Step(1.0/60, fx.Absent(), 200, 100)
		}
		c.Next()
		c.Next()
		c.Next()
		snow := c.Sim().(*effects.Snow)
		Expect(snow.Ground()).To(BeEmpty())
		snow.Step(1.0/60, fx.Absent(), 200, 100)
		Expect(snow.Ground()).To(HaveEach(BeNumerically("==", 100)))
	})

	It("notifies listeners with the new generation", func() {
		var calls [][2]fx.Theme
		var gens []uint64
		c.OnSwitch(func(from, to fx.Theme, gen uint64) {
			calls = append(calls, [2]fx.Theme{from, to})
			gens = append(gens, gen)
		})
		c.Next()
		Expect(c.Select(fx.Jellyfish)).To(Succeed())
		Expect(calls).To(Equal([][2]fx.Theme{{fx.Jellyfish, fx.Snow}, {fx.Snow, fx.Jellyfish}}))
		Expect(gens).To(Equal([]uint64{2, 3}))
	})

	It("leaves everything untouched when selecting an unknown theme", func() {
		called := false
		c.OnSwitch(func(fx.Theme, fx.Theme, uint64) { called = true })
		old := c.Sim()
		Expect(c.Select(fx.Theme(-1))).To(MatchError(fx.ErrUnknownTheme))
		Expect(c.Active()).To(Equal(fx.Jellyfish))
		Expect(c.Sim()).To(BeIdenticalTo(old))
		Expect(c.Generation()).To(Equal(uint64(1)))
		Expect(called).To(BeFalse())
	})
})
