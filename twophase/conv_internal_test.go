package twophase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLaminarEntrySeiderTate(t *testing.T) {
	assert.InDelta(t, 3.832795328821958, LaminarEntrySeiderTate(2500, 0.7, 5, 0.025, nil, nil), 1e-10)

	// Wall correction needs both viscosities.
	mu, muW := 1e-3, 1.2e-3
	assert.InDelta(t, 3.7362011872629477, LaminarEntrySeiderTate(2500, 0.7, 5, 0.025, &mu, &muW), 1e-10)
	assert.InDelta(t, 3.832795328821958, LaminarEntrySeiderTate(2500, 0.7, 5, 0.025, &mu, nil), 1e-10)
}

func TestTurbulentGnielinski(t *testing.T) {
	assert.InDelta(t, 254.62682749359632, TurbulentGnielinski(1e5, 1.2, 0.0185), 1e-8)
}
