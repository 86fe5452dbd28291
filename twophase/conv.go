// Package twophase implements published correlations for the
// convective heat-transfer coefficient of gas-liquid flow inside tubes:
// non-boiling two-phase convection and saturated flow boiling. Each
// correlation is a pure function from flow state, geometry and phase
// properties (SI units throughout) to a heat-transfer coefficient in
// W/m^2/K.
//
// The correlations evaluate their published forms verbatim; physical
// ranges are not validated, and inputs outside the fitted range of a
// correlation produce numerically valid but physically meaningless
// results. Optional arguments are pointers: nil means "not supplied",
// which is distinct from a supplied zero.
package twophase

import (
	"math"

	"github.com/hsaito-pe/twophase-ht-go/fluids"
)

// superficialVelocities returns the gas and liquid superficial
// velocities [m/s]: the velocity each phase would have if it alone
// occupied the full cross-section of a tube of diameter D.
func superficialVelocities(m, x, D, rhol, rhog float64) (Vgs, Vls float64) {
	A := math.Pi / 4 * D * D
	Vgs = m * x / (rhog * A)
	Vls = m * (1 - x) / (rhol * A)
	return Vgs, Vls
}

// DavisDavid calculates the two-phase non-boiling heat-transfer
// coefficient of a liquid and gas flowing inside a tube of any
// inclination (Davis & David, 1964):
//
//	hD/kl = 0.060 (ρl/ρg)^0.28 (D·G·x/μl)^0.87 Prl^0.4
//
// m: mass flow rate [kg/s], x: quality, D: tube diameter [m],
// rhol, rhog: phase densities [kg/m^3], Cpl: liquid heat capacity
// [J/kg/K], kl: liquid conductivity [W/m/K], mul: liquid viscosity
// [Pa*s].
//
// Developed for annular and mist-annular flow of steam-water and
// air-water, quality 0.1 to 1.
func DavisDavid(m, x, D, rhol, rhog, Cpl, kl, mul float64) float64 {
	G := m / (math.Pi / 4 * D * D)
	Prl := fluids.Prandtl(Cpl, kl, mul)
	NuTP := 0.060 * math.Pow(rhol/rhog, 0.28) * math.Pow(D*G*x/mul, 0.87) * math.Pow(Prl, 0.4)
	return NuTP * kl / D
}

// ElamvaluthiSrinivas calculates the two-phase non-boiling
// heat-transfer coefficient for vertical bubbly and slug flow
// (Elamvaluthi & Srinivas, 1984):
//
//	hD/kl = 0.5 (μg/μb)^0.25 ReM^0.7 Prl^(1/3) (μb/μw)^0.14
//	ReM   = D·Vls·ρl/μb + D·Vgs·ρg/μg
//
// muB is the liquid viscosity at bulk conditions; the wall-viscosity
// correction is applied only when muW is supplied.
func ElamvaluthiSrinivas(m, x, D, rhol, rhog, Cpl, kl, mug, muB float64, muW *float64) float64 {
	Vgs, Vls := superficialVelocities(m, x, D, rhol, rhog)
	Prl := fluids.Prandtl(Cpl, kl, muB)
	ReM := D*Vls*rhol/muB + D*Vgs*rhog/mug
	Nu := 0.5 * math.Pow(mug/muB, 0.25) * math.Pow(ReM, 0.7) * math.Cbrt(Prl)
	if muW != nil {
		Nu *= math.Pow(muB / *muW, 0.14)
	}
	return Nu * kl / D
}

// GroothuisHendal calculates the two-phase non-boiling heat-transfer
// coefficient for vertical flow (Groothuis & Hendal, 1959). Two fits
// were published; water selects the air-water system,
//
//	hD/kl = 0.029 ReM^0.87 Prl^(1/3) (μb/μw)^0.14
//
// otherwise the gas/air-oil system is used (the default),
//
//	hD/kl = 2.6 ReM^0.39 Prl^(1/3) (μb/μw)^0.14
//
// with the mixture Reynolds number ReM as in ElamvaluthiSrinivas. The
// wall-viscosity correction is applied only when muW is supplied.
func GroothuisHendal(m, x, D, rhol, rhog, Cpl, kl, mug, muB float64, muW *float64, water bool) float64 {
	Vgs, Vls := superficialVelocities(m, x, D, rhol, rhog)
	Prl := fluids.Prandtl(Cpl, kl, muB)
	ReM := D*Vls*rhol/muB + D*Vgs*rhog/mug

	var Nu float64
	if water {
		Nu = 0.029 * math.Pow(ReM, 0.87) * math.Cbrt(Prl)
	} else {
		Nu = 2.6 * math.Pow(ReM, 0.39) * math.Cbrt(Prl)
	}
	if muW != nil {
		Nu *= math.Pow(muB / *muW, 0.14)
	}
	return Nu * kl / D
}

// Hughmark calculates the two-phase non-boiling laminar heat-transfer
// coefficient for horizontal slug flow (Hughmark, 1965):
//
//	hD/kl = 1.75 (1−α)^-0.5 (ml·Cpl/((1−α)·kl·L))^(1/3) (μb/μw)^0.14
//
// alpha is the void fraction and L the tube length [m]. Based on a
// laminar entry-length form; a long tube predicts unrealistically low
// coefficients. The viscosity correction needs both muB and muW.
func Hughmark(m, x, alpha, D, L, Cpl, kl float64, muB, muW *float64) float64 {
	ml := m * (1 - x)
	RL := 1 - alpha
	Nu := 1.75 * math.Pow(RL, -0.5) * math.Cbrt(ml*Cpl/(RL*kl*L))
	if muB != nil && muW != nil {
		Nu *= math.Pow(*muB / *muW, 0.14)
	}
	return Nu * kl / D
}

// Knott calculates the two-phase non-boiling heat-transfer coefficient
// as an enhancement of a liquid-only coefficient hl (Knott et al.,
// 1959):
//
//	h/hl = (1 + Vgs/Vls)^(1/3)
//
// If hl is nil it is computed from the Seider-Tate laminar-entry
// correlation at the combined volumetric velocity of both phases,
// which requires Cpl, kl, muB and L (and applies the wall correction
// when muW is also supplied). Those pointers are dereferenced without
// checks on that path and panic when absent.
func Knott(m, x, D, rhol, rhog float64, Cpl, kl, muB, muW, L, hl *float64) float64 {
	Vgs, Vls := superficialVelocities(m, x, D, rhol, rhog)
	var h float64
	if hl == nil {
		V := Vgs + Vls // net velocity
		Re := fluids.Reynolds(V, D, rhol, *muB)
		Pr := fluids.Prandtl(*Cpl, *kl, *muB)
		Nul := LaminarEntrySeiderTate(Re, Pr, *L, D, muB, muW)
		h = Nul * *kl / D
	} else {
		h = *hl
	}
	return h * math.Cbrt(1+Vgs/Vls)
}

// KudirkaGroshMcFadden calculates the two-phase non-boiling
// heat-transfer coefficient (Kudirka, Grosh & McFadden, 1965):
//
//	hD/kl = 125 (Vgs/Vls)^0.125 (μg/μb)^0.6 Rels^0.25 Prl^(1/3) (μb/μw)^0.14
//
// Developed for air-water and air-ethylene glycol at low gas-liquid
// ratios, bubble through froth flow. The wall-viscosity correction is
// applied only when muW is supplied.
func KudirkaGroshMcFadden(m, x, D, rhol, rhog, Cpl, kl, mug, muB float64, muW *float64) float64 {
	Vgs, Vls := superficialVelocities(m, x, D, rhol, rhog)
	Prl := fluids.Prandtl(Cpl, kl, muB)
	Rels := D * Vls * rhol / muB
	Nu := 125 * math.Pow(Vgs/Vls, 0.125) * math.Pow(mug/muB, 0.6) * math.Pow(Rels, 0.25) * math.Cbrt(Prl)
	if muW != nil {
		Nu *= math.Pow(muB / *muW, 0.14)
	}
	return Nu * kl / D
}

// MartinSims calculates the two-phase non-boiling heat-transfer
// coefficient as an enhancement of a supplied liquid-only coefficient
// hl (Martin & Sims, 1971):
//
//	h/hl = 1 + 0.64 (Vgs/Vls)^0.5
//
// No procedure for hl was given in the original work.
func MartinSims(m, x, D, rhol, rhog, hl float64) float64 {
	Vgs, Vls := superficialVelocities(m, x, D, rhol, rhog)
	return hl * (1 + 0.64*math.Sqrt(Vgs/Vls))
}

// RavipudiGodbold calculates the two-phase non-boiling heat-transfer
// coefficient for froth flow in vertical pipes (Ravipudi & Godbold,
// 1978):
//
//	hD/kl = 0.56 (Vgs/Vls)^0.3 (μg/μb)^0.2 Rels^0.6 Prl^(1/3) (μb/μw)^0.14
//
// The wall-viscosity correction is applied only when muW is supplied.
func RavipudiGodbold(m, x, D, rhol, rhog, Cpl, kl, mug, muB float64, muW *float64) float64 {
	Vgs, Vls := superficialVelocities(m, x, D, rhol, rhog)
	Prl := fluids.Prandtl(Cpl, kl, muB)
	Rels := D * Vls * rhol / muB
	Nu := 0.56 * math.Pow(Vgs/Vls, 0.3) * math.Pow(mug/muB, 0.2) * math.Pow(Rels, 0.6) * math.Cbrt(Prl)
	if muW != nil {
		Nu *= math.Pow(muB / *muW, 0.14)
	}
	return Nu * kl / D
}

// Aggour calculates the two-phase non-boiling heat-transfer coefficient
// (Aggour, 1978), piecewise in the liquid Reynolds number evaluated at
// the actual liquid velocity Vl = Vls/(1−α).
//
// Laminar, Rel <= 2000:
//
//	h = 1.615 (kl/D)(Rel·Prl·D/L)^(1/3) (μb/μw)^0.14 (1−α)^(-1/3)
//
// Turbulent, Rel > 2000:
//
//	h = 0.0155 (kl/D) Rel^0.83 Prl^0.5 (1−α)^-0.83
//
// turbulent overrides the regime selection: true forces the turbulent
// branch, false the laminar branch, nil selects by Rel. The laminar
// branch requires L and panics when it is absent; the wall-viscosity
// correction applies to the laminar branch only, and only when muW is
// supplied.
func Aggour(m, x, alpha, D, rhol, Cpl, kl, muB float64, muW, L *float64, turbulent *bool) float64 {
	Vls := m * (1 - x) / (rhol * math.Pi / 4 * D * D)
	Vl := Vls / (1 - alpha)

	Prl := fluids.Prandtl(Cpl, kl, muB)
	Rel := fluids.Reynolds(Vl, D, rhol, muB)

	if (turbulent != nil && *turbulent) || (turbulent == nil && Rel > 2000) {
		hl := 0.0155 * (kl / D) * math.Pow(Rel, 0.83) * math.Pow(Prl, 0.5)
		return hl * math.Pow(1-alpha, -0.83)
	}
	hl := 1.615 * (kl / D) * math.Cbrt(Rel*Prl*D / *L)
	if muW != nil {
		hl *= math.Pow(muB / *muW, 0.14)
	}
	return hl * math.Pow(1-alpha, -1./3.)
}
