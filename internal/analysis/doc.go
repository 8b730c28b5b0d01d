// Package analysis measures the fringe pattern on the screen.
//
// The instantaneous profile carries a fast carrier from the drifting phase.
// [AveragedProfile] integrates it away over one phase period, leaving the
// cos² envelope whose period is the fringe spacing:
//
//   - [Fringes]: dominant spatial frequency of a profile via FFT
//   - [TheoreticalSpacing]: small-angle estimate λ·L/d
//   - [Compare]: both of the above for one parameter set
//
// Typical use:
//
//	g := optics.NewGeometry(900, 600)
//	c, err := analysis.Compare(p, g, 120)
//	if err == nil {
//	    fmt.Printf("%.1f px measured, %.1f px expected\n", c.Measured, c.Theoretical)
//	}
package analysis
