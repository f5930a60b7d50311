package hand_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gesturefx/internal/config"
	"github.com/san-kum/gesturefx/internal/fx"
	"github.com/san-kum/gesturefx/internal/hand"
	"github.com/san-kum/gesturefx/internal/landmarks"
)

func frame(ts float64, shape landmarks.Shape, x, y float64) landmarks.Frame {
	return landmarks.SynthFrame(ts, &shape, x, y, 0)
}

var _ = Describe("Processor", func() {
	var p *hand.Processor

	BeforeEach(func() {
		p = hand.NewProcessor(config.DefaultConfig().Gesture)
	})

	It("reports an absent hand for an empty frame", func() {
		sig, ok := p.Process(landmarks.Frame{Timestamp: 1})
		Expect(ok).To(BeTrue())
		Expect(sig.Pose.Present).To(BeFalse())
		Expect(sig.Pose.Landmarks).To(BeNil())
		Expect(sig.Gesture).To(Equal(fx.NoGesture{}))
	})

	It("skips frames with a repeated timestamp", func() {
		_, ok := p.Process(frame(10, landmarks.Open, 0.5, 0.5))
		Expect(ok).To(BeTrue())
		_, ok = p.Process(frame(10, landmarks.Pinch, 0.2, 0.2))
		Expect(ok).To(BeFalse())
		Expect(p.Pose().Pinching).To(BeFalse())
		Expect(p.Pose().X).To(BeNumerically("~", 0.5, 1e-9))
	})

	It("treats a hand with a non-finite landmark as absent", func() {
		f := frame(5, landmarks.Open, 0.5, 0.5)
		f.Hands[0][3].X = math.NaN()
		sig, ok := p.Process(f)
		Expect(ok).To(BeTrue())
		Expect(sig.Pose.Present).To(BeFalse())
	})

	It("restarts the debounce timer when the source clock goes backwards", func() {
		sig, _ := p.Process(frame(100000, landmarks.OK, 0.5, 0.5))
		Expect(sig.Gesture).To(Equal(fx.ModeSwitch{}))

		sig, ok := p.Process(frame(0, landmarks.OK, 0.5, 0.5))
		Expect(ok).To(BeTrue())
		Expect(sig.Gesture).To(Equal(fx.ModeSwitch{}))

		sig, _ = p.Process(frame(1000, landmarks.OK, 0.5, 0.5))
		Expect(sig.Gesture).To(Equal(fx.NoGesture{}))
		sig, _ = p.Process(frame(2000, landmarks.OK, 0.5, 0.5))
		Expect(sig.Gesture).To(Equal(fx.ModeSwitch{}))
	})

	It("computes the mirrored palm centroid and pinch state", func() {
		sig, _ := p.Process(frame(1, landmarks.Pinch, 0.25, 0.6))
		Expect(sig.Pose.Present).To(BeTrue())
		Expect(sig.Pose.X).To(BeNumerically("~", 0.25, 1e-9))
		Expect(sig.Pose.Y).To(BeNumerically("~", 0.6, 1e-9))
		Expect(sig.Pose.Pinching).To(BeTrue())
		Expect(sig.Pose.PinchDistance).To(BeNumerically("~", 0.02, 1e-9))
		Expect(sig.Pose.Landmarks).To(HaveLen(fx.NumLandmarks))
	})

	Describe("mode switching", func() {
		It("fires on an OK sign and debounces repeats", func() {
			sig, _ := p.Process(frame(0, landmarks.OK, 0.5, 0.5))
			Expect(sig.Gesture).To(Equal(fx.ModeSwitch{}))

			sig, _ = p.Process(frame(1000, landmarks.OK, 0.5, 0.5))
			Expect(sig.Gesture).To(Equal(fx.NoGesture{}))

			sig, _ = p.Process(frame(1499, landmarks.OK, 0.5, 0.5))
			Expect(sig.Gesture).To(Equal(fx.NoGesture{}))

			sig, _ = p.Process(frame(1500, landmarks.OK, 0.5, 0.5))
			Expect(sig.Gesture).To(Equal(fx.ModeSwitch{}))
		})

		It("does not fire for a plain pinch", func() {
			sig, _ := p.Process(frame(0, landmarks.Pinch, 0.5, 0.5))
			Expect(sig.Gesture).To(Equal(fx.NoGesture{}))
		})

		It("gives the switch priority over hover", func() {
			sig, _ := p.Process(frame(0, landmarks.OK, 0.5, 0.1))
			Expect(sig.Gesture).To(Equal(fx.ModeSwitch{}))
			idx, ok := p.Hover()
			Expect(ok).To(BeTrue())
			Expect(idx).To(Equal(1))
		})

		It("forgets the debounce timer on Reset", func() {
			p.Process(frame(0, landmarks.OK, 0.5, 0.5))
			p.Reset()
			sig, _ := p.Process(frame(100, landmarks.OK, 0.5, 0.5))
			Expect(sig.Gesture).To(Equal(fx.ModeSwitch{}))
		})
	})

	Describe("hover", func() {
		DescribeTable("selects a band in the top of the field",
			func(x float64, want int) {
				sig, _ := p.Process(frame(1, landmarks.Open, x, 0.1))
				Expect(sig.Gesture).To(Equal(fx.HoverTab{Index: want}))
				idx, ok := p.Hover()
				Expect(ok).To(BeTrue())
				Expect(idx).To(Equal(want))
			},
			Entry("left", 0.1, 0),
			Entry("middle", 0.5, 1),
			Entry("right", 0.9, 2),
		)

		It("clears when the hand leaves the band or disappears", func() {
			p.Process(frame(1, landmarks.Open, 0.5, 0.1))
			p.Process(frame(2, landmarks.Open, 0.5, 0.5))
			_, ok := p.Hover()
			Expect(ok).To(BeFalse())

			p.Process(frame(3, landmarks.Open, 0.5, 0.1))
			p.Process(landmarks.Frame{Timestamp: 4})
			_, ok = p.Hover()
			Expect(ok).To(BeFalse())
		})
	})
})
