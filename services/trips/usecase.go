package trips

import (
	"context"

	"github.com/lastmile/dispatch/internal/pkg/models"
)

// TripUC defines the interface for trip business logic
type TripUC interface {
	// CreateTrip persists a trip for an accepted match and returns the
	// stored record with its fresh trip id.
	CreateTrip(ctx context.Context, req *models.CreateTripRequest) (*models.Trip, error)

	// GetTrip returns a trip by id
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)
}
