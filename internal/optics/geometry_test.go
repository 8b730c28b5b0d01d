package optics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/waveoptics/internal/optics"
)

var _ = Describe("Geometry", func() {
	It("places source, barrier and screen at fixed fractions", func() {
		g := optics.NewGeometry(1000, 500)
		Expect(g.SourceX).To(BeNumerically("~", 110, 1e-9))
		Expect(g.SlitX).To(BeNumerically("~", 390, 1e-9))
		Expect(g.ScreenX).To(BeNumerically("~", 830, 1e-9))
		Expect(g.CenterY).To(Equal(250.0))
		Expect(g.Empty()).To(BeFalse())
	})

	DescribeTable("FitCanvas",
		func(container, viewport, width, height float64) {
			w, h := optics.FitCanvas(container, viewport)
			Expect(w).To(BeNumerically("~", width, 1e-9))
			Expect(h).To(BeNumerically("~", height, 1e-9))
		},
		Entry("wide desktop caps at 900x600", 1400.0, 1400.0, 900.0, 600.0),
		Entry("narrow desktop keeps the aspect", 832.0, 1024.0, 800.0, 536.0),
		Entry("mobile is taller than wide", 400.0, 400.0, 368.0, 441.6),
		Entry("mobile caps at 500x500", 800.0, 700.0, 500.0, 500.0),
		Entry("tiny container collapses", 10.0, 1024.0, 0.0, 0.0),
	)

	Describe("BarrierSpans", func() {
		g := optics.NewGeometry(900, 600)

		It("leaves one gap in single mode", func() {
			p := optics.DefaultParams()
			p.Mode = optics.Single
			Expect(g.BarrierSpans(p)).To(Equal([]optics.Span{
				{Top: 0, Bottom: 290},
				{Top: 310, Bottom: 600},
			}))
		})

		It("leaves two gaps in double mode", func() {
			Expect(g.BarrierSpans(optics.DefaultParams())).To(Equal([]optics.Span{
				{Top: 0, Bottom: 240},
				{Top: 260, Bottom: 340},
				{Top: 360, Bottom: 600},
			}))
		})

		It("drops the middle span when the slits touch", func() {
			p := optics.DefaultParams()
			p.SlitSeparation = 50
			p.SlitWidth = 50
			Expect(g.BarrierSpans(p)).To(HaveLen(2))
		})
	})

	It("places slits symmetrically around the centre", func() {
		g := optics.NewGeometry(900, 600)
		p := optics.DefaultParams()
		Expect(g.SlitPositions(p)).To(Equal([]float64{250, 350}))
		p.Mode = optics.Single
		Expect(g.SlitPositions(p)).To(Equal([]float64{300}))
	})

	It("samples the pattern at roughly 300 rows", func() {
		Expect(optics.NewGeometry(900, 600).PatternStep()).To(Equal(2))
		Expect(optics.NewGeometry(900, 300).PatternStep()).To(Equal(1))
		Expect(optics.NewGeometry(900, 301).PatternStep()).To(Equal(2))
		Expect(optics.NewGeometry(900, 0).PatternStep()).To(Equal(1))
	})

	It("scales sizes with a floor", func() {
		g := optics.NewGeometry(300, 200)
		Expect(g.PatternWidth()).To(Equal(20.0))
		Expect(optics.NewGeometry(900, 600).PatternWidth()).To(BeNumerically("~", 29.7, 1e-9))
	})
})
