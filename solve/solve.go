// Package solve provides a narrow scalar root-finding abstraction for
// correlations that are implicit in the heat flux. Keeping the solver
// behind an interface lets a caller swap the strategy (derivative-free
// minimization, bracketing bisection) without touching the physical
// model that consumes it.
package solve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// Func is a scalar residual function.
type Func func(x float64) float64

// Solver finds x near the initial guess x0 such that f(x) = 0.
type Solver interface {
	Solve(f Func, x0 float64) (float64, error)
}

// LeastSquares finds a root by minimizing f(x)² with the Nelder-Mead
// simplex from gonum/optimize. It needs no derivative and no bracket,
// only the initial guess, which makes it the default strategy for the
// piecewise-smooth residuals produced by the film-boiling model.
type LeastSquares struct {
	// Tol is the absolute residual |f(x)| accepted at the minimizer.
	// Zero means 1e-4.
	Tol float64
}

// Solve implements Solver.
func (s LeastSquares) Solve(f Func, x0 float64) (float64, error) {
	tol := s.Tol
	if tol == 0 {
		tol = 1e-4
	}
	p := optimize.Problem{
		Func: func(v []float64) float64 {
			r := f(v[0])
			return r * r
		},
	}
	res, err := optimize.Minimize(p, []float64{x0}, nil, &optimize.NelderMead{})
	if err != nil {
		return 0, fmt.Errorf("solve: minimization from x0=%g failed: %w", x0, err)
	}
	x := res.X[0]
	if r := f(x); math.Abs(r) > tol {
		return x, fmt.Errorf("solve: no convergence from x0=%g: residual %g exceeds %g", x0, r, tol)
	}
	return x, nil
}

// Bisection finds a root by expanding a geometric bracket [x0/2, 2·x0]
// around the guess until f changes sign, then halving the interval. The
// geometric expansion keeps the iterates on the same side of zero as
// the guess, which matters for residuals only defined for positive
// argument.
type Bisection struct {
	// Tol is the relative width of the final interval. Zero means 1e-12.
	Tol float64
	// MaxIter caps the bisection steps. Zero means 200.
	MaxIter int
}

// Solve implements Solver.
func (s Bisection) Solve(f Func, x0 float64) (float64, error) {
	tol := s.Tol
	if tol == 0 {
		tol = 1e-12
	}
	maxIter := s.MaxIter
	if maxIter == 0 {
		maxIter = 200
	}
	if x0 == 0 {
		return 0, fmt.Errorf("solve: bisection needs a nonzero initial guess")
	}
	a, b := x0/2, x0*2
	if a > b {
		a, b = b, a
	}
	fa, fb := f(a), f(b)
	for i := 0; i < 60 && math.Signbit(fa) == math.Signbit(fb); i++ {
		a /= 2
		b *= 2
		fa, fb = f(a), f(b)
	}
	if math.Signbit(fa) == math.Signbit(fb) {
		return 0, fmt.Errorf("solve: no sign change bracketing x0=%g", x0)
	}
	for i := 0; i < maxIter; i++ {
		mid := 0.5 * (a + b)
		fm := f(mid)
		if fm == 0 || b-a <= tol*math.Abs(mid) {
			return mid, nil
		}
		if math.Signbit(fm) == math.Signbit(fa) {
			a, fa = mid, fm
		} else {
			b = mid
		}
	}
	return 0.5 * (a + b), nil
}
