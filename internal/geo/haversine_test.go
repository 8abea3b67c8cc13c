package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKmSamePoint(t *testing.T) {
	assert.Zero(t, DistanceKm(-23.5505, -46.6333, -23.5505, -46.6333))
}

func TestDistanceKmSymmetric(t *testing.T) {
	a := DistanceKm(-23.5505, -46.6333, -22.9068, -43.1729)
	b := DistanceKm(-22.9068, -43.1729, -23.5505, -46.6333)

	assert.InDelta(t, a, b, 1e-9)
}

func TestDistanceKmKnownPair(t *testing.T) {
	// São Paulo -> Rio de Janeiro, ~357 km em linha reta
	d := DistanceKm(-23.5505, -46.6333, -22.9068, -43.1729)

	assert.InDelta(t, 357.0, d, 5.0)
}

func TestDistanceKmShortRange(t *testing.T) {
	// ~1.11 km por 0.01 grau de latitude
	d := DistanceKm(-23.55, -46.63, -23.56, -46.63)

	assert.InDelta(t, 1.11, d, 0.02)
}
