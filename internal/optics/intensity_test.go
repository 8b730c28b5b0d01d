package optics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/waveoptics/internal/optics"
)

var _ = Describe("Intensity", func() {
	var (
		p optics.Params
		g optics.Geometry
	)

	BeforeEach(func() {
		p = optics.DefaultParams()
		g = optics.NewGeometry(900, 600)
	})

	It("stays within [0,1] for every sample and time", func() {
		for _, mode := range []optics.SlitMode{optics.Single, optics.Double} {
			p.Mode = mode
			for _, t := range []float64{0, 0.7, 13.1, 250, 1e4} {
				for _, s := range optics.Profile(p, g, t) {
					Expect(s.Intensity).To(BeNumerically(">=", 0))
					Expect(s.Intensity).To(BeNumerically("<=", 1))
					Expect(s.Brightness).To(Equal(optics.Brightness(s.Intensity)))
				}
			}
		}
	})

	It("is symmetric about the centre in single-slit mode", func() {
		p.Mode = optics.Single
		for dy := 1.0; dy < 250; dy += 7 {
			above := optics.Intensity(g.CenterY-dy, p, g, 3.3)
			below := optics.Intensity(g.CenterY+dy, p, g, 3.3)
			Expect(above).To(BeNumerically("~", below, 1e-12))
		}
	})

	It("depends only on the distance to the single slit", func() {
		p.Mode = optics.Single
		y := g.CenterY + 120
		d := math.Hypot(g.ScreenDistance(), 120)
		expected := math.Pow(math.Cos(optics.Phase(d, p.Wavelength, 9)), 2)
		Expect(optics.Intensity(y, p, g, 9)).To(BeNumerically("~", expected, 1e-12))
	})

	It("is symmetric about the centre for equidistant double slits", func() {
		for dy := 1.0; dy < 250; dy += 5 {
			above := optics.Intensity(g.CenterY-dy, p, g, 42)
			below := optics.Intensity(g.CenterY+dy, p, g, 42)
			Expect(above).To(BeNumerically("~", below, 1e-12))
		}
	})

	Context("at integer and half-integer path differences", func() {
		const (
			lambda = 50.0
			l      = 400.0
		)
		// Chosen so the first path has zero phase.
		t0 := l / lambda * 2 * math.Pi / optics.PhaseRate

		It("is fully bright when the difference is a whole number of wavelengths", func() {
			for k := 0.0; k <= 3; k++ {
				in := optics.PathIntensity([]float64{l, l + k*lambda}, lambda, t0)
				Expect(optics.Brightness(in)).To(Equal(uint8(255)))
			}
		})

		It("is dark when the difference is an odd number of half wavelengths", func() {
			for _, k := range []float64{0.5, 1.5, 2.5} {
				for _, t := range []float64{0, t0, 17} {
					in := optics.PathIntensity([]float64{l, l + k*lambda}, lambda, t)
					Expect(in).To(BeNumerically("<", 1e-20))
					Expect(optics.Brightness(in)).To(BeZero())
				}
			}
		})
	})

	It("reduces to cos² of the common phase on the axis", func() {
		p.Wavelength = 50
		p.SlitSeparation = 100
		d := math.Hypot(g.ScreenDistance(), 50)
		for _, t := range []float64{0, 1, 2.5, 10, 33} {
			expected := math.Pow(math.Cos(optics.Phase(d, 50, t)), 2)
			Expect(optics.Intensity(g.CenterY, p, g, t)).To(BeNumerically("~", expected, 1e-12))
		}
	})

	It("returns zero for a non-positive wavelength", func() {
		Expect(optics.PathIntensity([]float64{10}, 0, 1)).To(BeZero())
		Expect(optics.PathIntensity(nil, 50, 1)).To(BeZero())
	})

	Describe("Profile", func() {
		It("samples top to bottom at the pattern step", func() {
			samples := optics.Profile(p, g, 0)
			Expect(samples).To(HaveLen(300))
			Expect(samples[0].Y).To(BeZero())
			Expect(samples[1].Y).To(Equal(2.0))
			Expect(samples[len(samples)-1].Y).To(BeNumerically("<", g.Height))
		})

		It("is empty for an empty canvas", func() {
			Expect(optics.Profile(p, optics.NewGeometry(0, 0), 0)).To(BeEmpty())
		})

		It("is deterministic for identical inputs", func() {
			Expect(optics.Profile(p, g, 5.5)).To(Equal(optics.Profile(p, g, 5.5)))
		})
	})

	Describe("Brightness", func() {
		It("clamps and floors", func() {
			Expect(optics.Brightness(-1)).To(BeZero())
			Expect(optics.Brightness(math.NaN())).To(BeZero())
			Expect(optics.Brightness(2)).To(Equal(uint8(255)))
			Expect(optics.Brightness(0.5)).To(Equal(uint8(127)))
		})
	})
})
