package twophase

import "math"

// Single-phase internal convection correlations consumed by Knott and
// by the three-zone film-boiling model.

// LaminarEntrySeiderTate calculates the average Nusselt number of
// hydrodynamically developing laminar flow over a tube length L
// (Sieder & Tate, 1936):
//
//	Nu = 1.86 (Re·Pr·Di/L)^(1/3) (μ/μw)^0.14
//
// The viscosity correction is applied only when both the bulk viscosity
// mu and the wall viscosity muW are supplied.
func LaminarEntrySeiderTate(Re, Pr, L, Di float64, mu, muW *float64) float64 {
	Nu := 1.86 * math.Cbrt(Di/L*Re*Pr)
	if mu != nil && muW != nil {
		Nu *= math.Pow(*mu / *muW, 0.14)
	}
	return Nu
}

// TurbulentGnielinski calculates the Nusselt number of fully developed
// turbulent internal flow (Gnielinski, 1976), valid down to the
// transitional regime Re > ~2300:
//
//	Nu = (fd/8)(Re−1000)Pr / (1 + 12.7 (fd/8)^0.5 (Pr^(2/3)−1))
//
// fd is the Darcy friction factor.
func TurbulentGnielinski(Re, Pr, fd float64) float64 {
	return (fd / 8.) * (Re - 1000.) * Pr / (1. + 12.7*math.Sqrt(fd/8.)*(math.Pow(Pr, 2./3.)-1.))
}

// frictionFilonenko is the smooth-tube Darcy friction factor
// (1.82·log10(Re) − 1.64)^-2 used by the Gnielinski correlation.
func frictionFilonenko(Re float64) float64 {
	f := 1.82*math.Log10(Re) - 1.64
	return 1 / (f * f)
}
