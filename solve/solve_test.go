package solve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeastSquares(t *testing.T) {
	// x^2 - 4 = 0, root at 2
	x, err := LeastSquares{}.Solve(func(x float64) float64 { return x*x - 4 }, 1)
	assert.NoError(t, err)
	assert.InDelta(t, 2.0, x, 1e-5)

	// exp(x) - 10 = 0, root at ln(10)
	x, err = LeastSquares{}.Solve(func(x float64) float64 { return math.Exp(x) - 10 }, 1)
	assert.NoError(t, err)
	assert.InDelta(t, math.Log(10), x, 1e-5)
}

func TestLeastSquaresNoRoot(t *testing.T) {
	// x^2 + 1 has no real root; the minimizer stops with a residual
	// above tolerance.
	_, err := LeastSquares{}.Solve(func(x float64) float64 { return x*x + 1 }, 3)
	assert.Error(t, err)
}

func TestBisection(t *testing.T) {
	x, err := Bisection{}.Solve(func(x float64) float64 { return x*x - 4 }, 1)
	assert.NoError(t, err)
	assert.InDelta(t, 2.0, x, 1e-9)

	// Root far from the guess; the geometric expansion must find it.
	x, err = Bisection{}.Solve(func(x float64) float64 { return x - 1e5 }, 10)
	assert.NoError(t, err)
	assert.InDelta(t, 1e5, x, 1e-4)
}

func TestBisectionFailure(t *testing.T) {
	_, err := Bisection{}.Solve(func(x float64) float64 { return x*x + 1 }, 1)
	assert.Error(t, err)

	_, err = Bisection{}.Solve(func(x float64) float64 { return x }, 0)
	assert.Error(t, err)
}
