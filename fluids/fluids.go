// Package fluids provides the dimensionless groups and property
// conversions shared by the two-phase correlations. Every function is a
// direct evaluation of the defining expression; inputs are not range
// checked.
package fluids

// Standard acceleration of gravity [m/s^2].
const gravity = 9.80665

// Reynolds calculates the Reynolds number ρVD/μ.
//
// V: velocity [m/s], D: characteristic length [m],
// rho: density [kg/m^3], mu: dynamic viscosity [Pa*s].
func Reynolds(V, D, rho, mu float64) float64 {
	return rho * V * D / mu
}

// Prandtl calculates the Prandtl number Cp·μ/k.
//
// Cp: heat capacity [J/kg/K], k: thermal conductivity [W/m/K],
// mu: dynamic viscosity [Pa*s].
func Prandtl(Cp, k, mu float64) float64 {
	return Cp * mu / k
}

// Weber calculates the Weber number ρV²L/σ, the ratio of inertial to
// surface-tension forces.
//
// V: velocity [m/s], L: characteristic length [m],
// rho: density [kg/m^3], sigma: surface tension [N/m].
func Weber(V, L, rho, sigma float64) float64 {
	return V * V * L * rho / sigma
}

// Bond calculates the Bond number g(ρl−ρg)L²/σ, the ratio of
// gravitational to surface-tension forces.
//
// rhol, rhog: phase densities [kg/m^3], sigma: surface tension [N/m],
// L: characteristic length [m].
func Bond(rhol, rhog, sigma, L float64) float64 {
	return gravity * (rhol - rhog) * L * L / sigma
}

// Boiling calculates the Boiling number q/(G·Hvap).
//
// G: mass flux [kg/m^2/s], q: wall heat flux [W/m^2],
// Hvap: heat of vaporization [J/kg].
func Boiling(G, q, Hvap float64) float64 {
	return q / (G * Hvap)
}

// KinematicViscosity converts a dynamic viscosity mu [Pa*s] at density
// rho [kg/m^3] to a kinematic viscosity [m^2/s].
func KinematicViscosity(rho, mu float64) float64 {
	return mu / rho
}
