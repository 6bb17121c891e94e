package stations

import (
	"context"

	"github.com/lastmile/dispatch/internal/pkg/models"
)

// StationRepo defines the interface for station data access operations
type StationRepo interface {
	// UpsertStation adds or overwrites a station by identifier
	UpsertStation(ctx context.Context, station *models.Station) error

	// GetStation returns the station with the given id, NotFound on miss
	GetStation(ctx context.Context, stationID string) (*models.Station, error)

	// FindWithinRadius returns stations within radiusM meters of the given
	// point, ascending by distance, ties broken by station id ascending.
	FindWithinRadius(ctx context.Context, lat, lon, radiusM float64) ([]models.NearbyStation, error)

	// EnsureIndexed replays the legacy flat station list into the spatial
	// index when the index is empty. Idempotent.
	EnsureIndexed(ctx context.Context) error
}
