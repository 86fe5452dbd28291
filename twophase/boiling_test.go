package twophase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazarekBlack(t *testing.T) {
	h, err := LazarekBlack(10, 0.3, 1e-3, 0.6, 2e6, ExcessTemperature(100))
	require.NoError(t, err)
	assert.InDelta(t, 9501.932636079293, h, 1e-8)

	h, err = LazarekBlack(10, 0.3, 1e-3, 0.6, 2e6, HeatFlux(1e5))
	require.NoError(t, err)
	assert.InDelta(t, 1903.9442033981418, h, 1e-8)
}

func TestLiWu(t *testing.T) {
	h, err := LiWu(1, 0.2, 0.3, 567., 18.09, 156e-6, 0.086, 9e5, 0.02, HeatFlux(1e5))
	require.NoError(t, err)
	assert.InDelta(t, 5345.409399239493, h, 1e-6)
}

func TestSunMishima(t *testing.T) {
	h, err := SunMishima(1, 0.3, 567., 18.09, 156e-6, 0.086, 9e5, 0.02, ExcessTemperature(10))
	require.NoError(t, err)
	assert.InDelta(t, 507.6709168372167, h, 1e-8)

	h, err = SunMishima(1, 0.3, 567., 18.09, 156e-6, 0.086, 9e5, 0.02, HeatFlux(1e5))
	require.NoError(t, err)
	assert.InDelta(t, 2538.4455424345983, h, 1e-6)
}

func TestYunHeoKim(t *testing.T) {
	h, err := YunHeoKim(1, 0.4, 0.3, 567., 156e-6, 9e5, 0.02, HeatFlux(1e4))
	require.NoError(t, err)
	assert.InDelta(t, 9479.313988550184, h, 1e-8)
}

// The excess-temperature forms are exact algebraic inversions: feeding
// Te = q/h(q) back through them must reproduce the heat-flux result.
func TestBoilingRoundTrip(t *testing.T) {
	const q = 1e5

	h1, err := LazarekBlack(10, 0.3, 1e-3, 0.6, 2e6, HeatFlux(q))
	require.NoError(t, err)
	h2, err := LazarekBlack(10, 0.3, 1e-3, 0.6, 2e6, ExcessTemperature(q/h1))
	require.NoError(t, err)
	assert.InEpsilon(t, h1, h2, 1e-9)

	h1, err = LiWu(1, 0.2, 0.3, 567., 18.09, 156e-6, 0.086, 9e5, 0.02, HeatFlux(q))
	require.NoError(t, err)
	h2, err = LiWu(1, 0.2, 0.3, 567., 18.09, 156e-6, 0.086, 9e5, 0.02, ExcessTemperature(q/h1))
	require.NoError(t, err)
	assert.InEpsilon(t, h1, h2, 1e-9)

	h1, err = SunMishima(1, 0.3, 567., 18.09, 156e-6, 0.086, 9e5, 0.02, HeatFlux(q))
	require.NoError(t, err)
	h2, err = SunMishima(1, 0.3, 567., 18.09, 156e-6, 0.086, 9e5, 0.02, ExcessTemperature(q/h1))
	require.NoError(t, err)
	assert.InEpsilon(t, h1, h2, 1e-9)

	h1, err = YunHeoKim(1, 0.4, 0.3, 567., 156e-6, 9e5, 0.02, HeatFlux(q))
	require.NoError(t, err)
	h2, err = YunHeoKim(1, 0.4, 0.3, 567., 156e-6, 9e5, 0.02, ExcessTemperature(q/h1))
	require.NoError(t, err)
	assert.InEpsilon(t, h1, h2, 1e-9)
}

func TestBoilingMissingBoundaryCondition(t *testing.T) {
	var none BoundaryCondition

	_, err := LazarekBlack(10, 0.3, 1e-3, 0.6, 2e6, none)
	assert.ErrorIs(t, err, ErrBoundaryCondition)

	_, err = LiWu(1, 0.2, 0.3, 567., 18.09, 156e-6, 0.086, 9e5, 0.02, none)
	assert.ErrorIs(t, err, ErrBoundaryCondition)

	_, err = SunMishima(1, 0.3, 567., 18.09, 156e-6, 0.086, 9e5, 0.02, none)
	assert.ErrorIs(t, err, ErrBoundaryCondition)

	_, err = YunHeoKim(1, 0.4, 0.3, 567., 156e-6, 9e5, 0.02, none)
	assert.ErrorIs(t, err, ErrBoundaryCondition)

	_, err = Thome(1, 0.4, 0.3, 567., 18.09, 156e-6, 1e-5, 0.086, 0.2, 2300, 1400, 9e5, 0.02, 1e5, 22e6, none)
	assert.ErrorIs(t, err, ErrBoundaryCondition)
}

// A zero heat flux is a supplied boundary condition, not a missing one.
func TestZeroHeatFluxIsPresent(t *testing.T) {
	q, ok := HeatFlux(0).Q()
	assert.True(t, ok)
	assert.Zero(t, q)

	h, err := LazarekBlack(10, 0.3, 1e-3, 0.6, 2e6, HeatFlux(0))
	require.NoError(t, err)
	assert.Zero(t, h)
}
