package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lastmile/dispatch/internal/pkg/models"
	"github.com/lastmile/dispatch/services/match/pricing"
)

func TestPriceDefaultWhenInputsAbsent(t *testing.T) {
	station := &models.Station{ID: "S1", Latitude: -6.2, Longitude: 106.8}
	loc := &models.Location{Latitude: -6.21, Longitude: 106.81}

	assert.Equal(t, pricing.DefaultFare, pricing.Price(nil, loc))
	assert.Equal(t, pricing.DefaultFare, pricing.Price(station, nil))
	assert.Equal(t, pricing.DefaultFare, pricing.Price(nil, nil))
}

func TestPriceManhattanScaled(t *testing.T) {
	station := &models.Station{ID: "S1", Latitude: 0, Longitude: 0}
	loc := &models.Location{Latitude: 0.001, Longitude: 0.002}

	// (0.001 + 0.002) * 10000 = 30
	assert.Equal(t, 30, pricing.Price(station, loc))
}

func TestPriceClampedToFloor(t *testing.T) {
	station := &models.Station{ID: "S1", Latitude: 0, Longitude: 0}
	loc := &models.Location{Latitude: 0.0001, Longitude: 0.0001}

	// raw fare of 2 clamps to the floor
	assert.Equal(t, pricing.MinFare, pricing.Price(station, loc))
}

func TestPriceDeterministic(t *testing.T) {
	station := &models.Station{ID: "S1", Latitude: -6.2004, Longitude: 106.8227}
	loc := &models.Location{Latitude: -6.2100, Longitude: 106.8300, Timestamp: time.Now()}

	first := pricing.Price(station, loc)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, pricing.Price(station, loc))
	}
	assert.GreaterOrEqual(t, first, 0)
}
