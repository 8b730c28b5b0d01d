// Package optics provides the numerical kernel of the slit interference demo.
//
// Everything in this package is a pure function of its inputs:
//
//   - [Params]: user-adjustable simulation parameters
//   - [Geometry]: source/slit/screen layout derived from the canvas size
//   - [Intensity]: superposed slit wavelets sampled on the screen plane
//   - [Wavefronts], [Wavelets]: cosmetic ring radii for the animation
//   - [Frame]: immutable snapshot consumed by renderers and exporters
//
// # Example
//
//	p := optics.DefaultParams()
//	g := optics.NewGeometry(900, 600)
//	for _, s := range optics.Profile(p, g, t) {
//	    fmt.Println(s.Y, s.Brightness)
//	}
//
// The wave model is a stylized Huygens cartoon: phases drift at a fixed rate
// and no wave equation is solved.
package optics
