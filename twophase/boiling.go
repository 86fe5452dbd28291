package twophase

import (
	"math"

	"github.com/hsaito-pe/twophase-ht-go/fluids"
)

// The flow-boiling correlations accept the wall boundary condition as a
// BoundaryCondition value. With a heat flux the published power law is
// evaluated directly. With an excess temperature the heat flux is
// itself h·Te, so the power law is implicit in h; each correlation
// below is algebraically invertible and the closed form obtained by
// symbolic rearrangement is evaluated instead. An unset condition
// yields ErrBoundaryCondition.

// LazarekBlack calculates the heat-transfer coefficient for saturated
// flow boiling in vertical tubes, upward or downward flow
// (Lazarek & Black, 1982):
//
//	h = 30 Relo^0.857 Bg^0.714 kl/D,  Relo = G·D/μl
//
// Quality independent; requires no gas properties. Developed with R113
// data, quality 0 to 0.6, Relo 860 to 5500, mass flux 125 to 750
// kg/m^2/s.
//
// m: mass flow rate [kg/s], D: tube diameter [m], mul: liquid viscosity
// [Pa*s], kl: liquid conductivity [W/m/K], Hvap: heat of vaporization
// [J/kg].
func LazarekBlack(m, D, mul, kl, Hvap float64, bc BoundaryCondition) (float64, error) {
	G := m / (math.Pi / 4 * D * D)
	Relo := G * D / mul
	if q, ok := bc.Q(); ok {
		Bg := fluids.Boiling(G, q, Hvap)
		return 30 * math.Pow(Relo, 0.857) * math.Pow(Bg, 0.714) * kl / D, nil
	}
	if Te, ok := bc.Te(); ok {
		// Closed form of h = 30·Relo^0.857·(h·Te/(G·Hvap))^0.714·kl/D
		// solved for h.
		return 27000 * math.Pow(30, 71./143.) * math.Pow(1/(G*Hvap), 357./143.) *
			math.Pow(Relo, 857./286.) * math.Pow(Te, 357./143.) *
			math.Pow(kl, 500./143.) / math.Pow(D, 500./143.), nil
	}
	return 0, ErrBoundaryCondition
}

// LiWu calculates the heat-transfer coefficient for saturated flow
// boiling in mini/micro channels of any orientation (Li & Wu, 2010):
//
//	h = 334 Bg^0.3 (Bo·Rel^0.36)^0.4 kl/D,  Rel = G(1−x)D/μl
//
// Fitted to 18 data sets covering hydraulic diameters 0.19 to 3.1 mm
// and 12 fluids.
func LiWu(m, x, D, rhol, rhog, mul, kl, Hvap, sigma float64, bc BoundaryCondition) (float64, error) {
	G := m / (math.Pi / 4 * D * D)
	Rel := G * D * (1 - x) / mul
	Bo := fluids.Bond(rhol, rhog, sigma, D)
	if q, ok := bc.Q(); ok {
		Bg := fluids.Boiling(G, q, Hvap)
		return 334 * math.Pow(Bg, 0.3) * math.Pow(Bo*math.Pow(Rel, 0.36), 0.4) * kl / D, nil
	}
	if Te, ok := bc.Te(); ok {
		A := 334 * math.Pow(Bo*math.Pow(Rel, 0.36), 0.4) * kl / D
		return math.Pow(A, 10./7.) * math.Pow(Te, 3./7.) / math.Pow(G*Hvap, 3./7.), nil
	}
	return 0, ErrBoundaryCondition
}

// SunMishima calculates the heat-transfer coefficient for saturated
// flow boiling in mini channels of any orientation (Sun & Mishima,
// 2009):
//
//	h = 6 Relo^1.05 Bg^0.54 / (Wel^0.191 (ρl/ρg)^0.142) kl/D
//
// with the liquid-only Reynolds number Relo = G·D/μl and the Weber
// number at the all-liquid velocity. Fitted to 2501 data points,
// hydraulic diameters 0.21 to 6.05 mm, 11 fluids.
func SunMishima(m, D, rhol, rhog, mul, kl, Hvap, sigma float64, bc BoundaryCondition) (float64, error) {
	G := m / (math.Pi / 4 * D * D)
	V := G / rhol
	Relo := G * D / mul
	We := fluids.Weber(V, D, rhol, sigma)
	if q, ok := bc.Q(); ok {
		Bg := fluids.Boiling(G, q, Hvap)
		return 6 * math.Pow(Relo, 1.05) * math.Pow(Bg, 0.54) /
			(math.Pow(We, 0.191) * math.Pow(rhol/rhog, 0.142)) * kl / D, nil
	}
	if Te, ok := bc.Te(); ok {
		A := 6 * math.Pow(Relo, 1.05) / (math.Pow(We, 0.191) * math.Pow(rhol/rhog, 0.142)) * kl / D
		return math.Pow(A, 50./23.) * math.Pow(Te, 27./23.) / math.Pow(G*Hvap, 27./23.), nil
	}
	return 0, ErrBoundaryCondition
}

// YunHeoKim calculates the heat-transfer coefficient for saturated flow
// boiling of R410A in microchannels (Yun, Heo & Kim, 2006, with 2007
// erratum):
//
//	h = 136876 (Bg·Wel)^0.1993 Rel^-0.1626,  Rel = G·D(1−x)/μl
//
// Dimensional correlation; the leading constant absorbs the units.
func YunHeoKim(m, x, D, rhol, mul, Hvap, sigma float64, bc BoundaryCondition) (float64, error) {
	G := m / (math.Pi / 4 * D * D)
	V := G / rhol
	Rel := G * D * (1 - x) / mul
	We := fluids.Weber(V, D, rhol, sigma)
	if q, ok := bc.Q(); ok {
		Bg := fluids.Boiling(G, q, Hvap)
		return 136876 * math.Pow(Bg*We, 0.1993) * math.Pow(Rel, -0.1626), nil
	}
	if Te, ok := bc.Te(); ok {
		A := 136876 * math.Pow(We, 0.1993) * math.Pow(Rel, -0.1626) * math.Pow(Te/(G*Hvap), 0.1993)
		return math.Pow(A, 10000./8007.), nil
	}
	return 0, ErrBoundaryCondition
}
