package stations

import (
	"context"

	"github.com/lastmile/dispatch/internal/pkg/models"
)

// StationUC defines the interface for station business logic
type StationUC interface {
	// UpsertStation validates and stores a station record
	UpsertStation(ctx context.Context, station *models.Station) error

	// GetStation returns a station by id
	GetStation(ctx context.Context, stationID string) (*models.Station, error)

	// NearbyStations returns stations within radiusM meters of a point,
	// nearest first.
	NearbyStations(ctx context.Context, lat, lon, radiusM float64) ([]models.NearbyStation, error)

	// StationsAlongRoute returns the ordered station ids along the
	// corridor between two stations, nearest to the origin first.
	StationsAlongRoute(ctx context.Context, originID, destinationID string) ([]string, error)
}
