package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lastmile/dispatch/internal/pkg/apperrors"
	"github.com/lastmile/dispatch/internal/pkg/logger"
	"github.com/lastmile/dispatch/internal/pkg/models"
	"github.com/lastmile/dispatch/services/trips"
)

// TripUC implements the trip use case interface
type TripUC struct {
	tripRepo trips.TripRepo
}

// NewTripUC creates a new trip use case
func NewTripUC(tripRepo trips.TripRepo) *TripUC {
	return &TripUC{tripRepo: tripRepo}
}

// CreateTrip persists a trip for an accepted match. The trip references
// the match that produced it but never writes back to it.
func (uc *TripUC) CreateTrip(ctx context.Context, req *models.CreateTripRequest) (*models.Trip, error) {
	if req.DriverID == "" || req.RiderID == "" {
		return nil, apperrors.Validation("driver id and rider id are required")
	}
	if req.MatchID == "" {
		return nil, apperrors.Validation("match id is required")
	}
	if req.Fare < 0 {
		return nil, apperrors.Validation("fare must not be negative")
	}

	trip := &models.Trip{
		ID:            uuid.New().String(),
		MatchID:       req.MatchID,
		DriverID:      req.DriverID,
		RiderID:       req.RiderID,
		PickupStation: req.PickupStation,
		Destination:   req.Destination,
		Fare:          req.Fare,
		Status:        models.TripStatusOngoing,
		CreatedAt:     time.Now(),
	}

	if err := uc.tripRepo.CreateTrip(ctx, trip); err != nil {
		return nil, err
	}

	logger.Info("Trip created",
		logger.String("trip_id", trip.ID),
		logger.String("match_id", trip.MatchID),
		logger.String("driver_id", trip.DriverID))

	return trip, nil
}

// GetTrip returns a trip by id
func (uc *TripUC) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	if tripID == "" {
		return nil, apperrors.Validation("trip id is required")
	}
	return uc.tripRepo.GetTrip(ctx, tripID)
}
