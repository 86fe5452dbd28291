package fluids

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReynolds(t *testing.T) {
	assert.InDelta(t, 38200.65789473684, Reynolds(2.5, 0.25, 1.1613, 1.9e-5), 1e-8)
}

func TestPrandtl(t *testing.T) {
	assert.InDelta(t, 0.754657, Prandtl(1637., 0.010, 4.61e-6), 1e-12)
}

func TestWeber(t *testing.T) {
	assert.InDelta(t, 2.916, Weber(0.18, 0.001, 900., 0.01), 1e-12)
}

func TestBond(t *testing.T) {
	assert.InDelta(t, 665187.2339558573, Bond(1000., 1.2, .0589, 2), 1e-6)
}

func TestBoiling(t *testing.T) {
	assert.InDelta(t, 1.25e-5, Boiling(300., 3000., 800000.), 1e-18)
}

func TestKinematicViscosity(t *testing.T) {
	assert.InDelta(t, 1e-6, KinematicViscosity(1000., 1e-3), 1e-18)
}
