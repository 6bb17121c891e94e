// Package pricing holds the placeholder fare model. The contract is
// determinism and the floor/default behavior, not geodesic accuracy.
package pricing

import (
	"math"

	"github.com/lastmile/dispatch/internal/pkg/models"
)

const (
	// DefaultFare applies when the pickup station or the driver's
	// location is unknown.
	DefaultFare = 50

	// ScaleFactor converts Manhattan distance in degrees to fare units
	ScaleFactor = 10000

	// MinFare is the floor for computed fares
	MinFare = 10
)

// Price returns the fare for picking a rider up at station given the
// driver's last known location. Manhattan distance in raw degrees,
// scaled and rounded, clamped to the floor. Same inputs always produce
// the same fare.
func Price(station *models.Station, driverLocation *models.Location) int {
	if station == nil || driverLocation == nil {
		return DefaultFare
	}

	raw := math.Abs(driverLocation.Latitude-station.Latitude) +
		math.Abs(driverLocation.Longitude-station.Longitude)
	fare := int(math.Round(raw * ScaleFactor))
	if fare < MinFare {
		return MinFare
	}
	return fare
}
