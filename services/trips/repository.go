package trips

import (
	"context"

	"github.com/lastmile/dispatch/internal/pkg/models"
)

// TripRepo defines the interface for trip persistence
type TripRepo interface {
	// CreateTrip inserts a new trip row
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// GetTrip returns the trip with the given id, NotFound on miss
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)
}
