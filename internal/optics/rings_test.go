package optics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/waveoptics/internal/optics"
)

var _ = Describe("Rings", func() {
	p := optics.DefaultParams()
	g := optics.NewGeometry(900, 600)

	It("keeps source wavefronts left of the barrier", func() {
		rings := optics.Wavefronts(p, g, 0)
		Expect(rings).To(HaveLen(9))
		for _, r := range rings {
			Expect(r.Radius).To(BeNumerically("<", g.SlitX-g.SourceX))
			Expect(r.Alpha).To(Equal(optics.WavefrontAlpha))
		}
	})

	It("moves rings outward with time", func() {
		a := optics.Wavefronts(p, g, 0)
		b := optics.Wavefronts(p, g, 1)
		Expect(b[1].Radius - a[1].Radius).To(BeNumerically("~", optics.RingSpeed, 1e-9))
	})

	It("fades slit wavelets with radius", func() {
		rings := optics.Wavelets(p, g, 12.5)
		Expect(rings).NotTo(BeEmpty())
		Expect(len(rings)).To(BeNumerically("<=", optics.WaveletCount))
		for _, r := range rings {
			Expect(r.Radius).To(BeNumerically(">", 5))
			Expect(r.Radius).To(BeNumerically("<", g.ScreenDistance()))
			Expect(r.Alpha).To(BeNumerically(">=", 0))
			Expect(r.Alpha).To(BeNumerically("<=", optics.WaveletMaxAlpha))
		}
		for i := range rings {
			for j := range rings {
				if rings[i].Radius < rings[j].Radius {
					Expect(rings[i].Alpha).To(BeNumerically(">=", rings[j].Alpha))
				}
			}
		}
	})

	It("emits nothing on an empty canvas", func() {
		e := optics.NewGeometry(0, 0)
		Expect(optics.Wavefronts(p, e, 3)).To(BeEmpty())
		Expect(optics.Wavelets(p, e, 3)).To(BeEmpty())
	})

	It("pulses the source between 0.1 and 0.5", func() {
		for t := 0.0; t < 100; t += 3.7 {
			Expect(optics.SourcePulse(t)).To(BeNumerically(">=", 0.1))
			Expect(optics.SourcePulse(t)).To(BeNumerically("<=", 0.5))
		}
	})
})
