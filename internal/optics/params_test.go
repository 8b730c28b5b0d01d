package optics_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/waveoptics/internal/optics"
)

var _ = Describe("Params", func() {
	It("defaults to the double slit at λ=50", func() {
		p := optics.DefaultParams()
		Expect(p.Mode).To(Equal(optics.Double))
		Expect(p.Wavelength).To(Equal(50.0))
		Expect(p.SlitWidth).To(Equal(20.0))
		Expect(p.SlitSeparation).To(Equal(100.0))
		Expect(p.Speed).To(Equal(0.1))
		Expect(p.Validate()).To(Succeed())
	})

	It("reports the offending field", func() {
		p := optics.DefaultParams()
		p.SlitWidth = 5
		err := p.Validate()
		Expect(errors.Is(err, optics.ErrParameterBounds)).To(BeTrue())
		var pe *optics.ParamError
		Expect(errors.As(err, &pe)).To(BeTrue())
		Expect(pe.Field).To(Equal("slit_width"))
		Expect(pe.Error()).To(ContainSubstring("slit_width=5"))
	})

	It("ignores the separation in single mode", func() {
		p := optics.DefaultParams()
		p.Mode = optics.Single
		p.SlitSeparation = 0
		Expect(p.Validate()).To(Succeed())
		p.Mode = optics.Double
		Expect(p.Validate()).To(MatchError(optics.ErrParameterBounds))
	})

	It("rejects unknown modes and NaN", func() {
		p := optics.DefaultParams()
		p.Mode = optics.SlitMode(7)
		Expect(p.Validate()).To(MatchError(optics.ErrUnknownMode))
		p = optics.DefaultParams()
		p.Wavelength = math.NaN()
		Expect(p.Validate()).To(MatchError(optics.ErrParameterBounds))
	})

	It("clamps every field into range", func() {
		p := optics.Params{Mode: optics.SlitMode(9), Wavelength: 500, SlitWidth: -3, SlitSeparation: 120.4, Speed: 0.34}
		c := p.Clamped()
		Expect(c.Mode).To(Equal(optics.Double))
		Expect(c.Wavelength).To(Equal(80.0))
		Expect(c.SlitWidth).To(Equal(10.0))
		Expect(c.SlitSeparation).To(Equal(120.0))
		Expect(c.Speed).To(Equal(0.3))
		Expect(c.Validate()).To(Succeed())
	})

	DescribeTable("ParseSlitMode",
		func(in string, want optics.SlitMode, ok bool) {
			m, err := optics.ParseSlitMode(in)
			if !ok {
				Expect(err).To(MatchError(optics.ErrUnknownMode))
				return
			}
			Expect(err).NotTo(HaveOccurred())
			Expect(m).To(Equal(want))
		},
		Entry("single", "single", optics.Single, true),
		Entry("upper case", "DOUBLE", optics.Double, true),
		Entry("digit", "1", optics.Single, true),
		Entry("padded", " 2 ", optics.Double, true),
		Entry("unknown", "triple", optics.Single, false),
	)

	It("round-trips the mode through text", func() {
		b, err := optics.Single.MarshalText()
		Expect(err).NotTo(HaveOccurred())
		var m optics.SlitMode
		Expect(m.UnmarshalText(b)).To(Succeed())
		Expect(m).To(Equal(optics.Single))
		Expect(optics.Double.Slits()).To(Equal(2))
	})

	Describe("Range", func() {
		r := optics.SpeedRange

		It("snaps to the step", func() {
			Expect(r.Clamp(1.26)).To(Equal(1.3))
			Expect(r.Clamp(0)).To(Equal(0.1))
			Expect(r.Clamp(99)).To(Equal(3.0))
			Expect(r.Clamp(math.NaN())).To(Equal(0.1))
		})

		It("maps fractions both ways", func() {
			Expect(optics.WavelengthRange.Fraction(50)).To(BeNumerically("~", 0.5, 1e-9))
			Expect(optics.WavelengthRange.At(0.5)).To(Equal(50.0))
			Expect(optics.WavelengthRange.At(2)).To(Equal(80.0))
			Expect(optics.WavelengthRange.Fraction(0)).To(BeZero())
		})
	})
})
