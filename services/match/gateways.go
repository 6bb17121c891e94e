package match

import (
	"context"

	"github.com/lastmile/dispatch/internal/pkg/models"
)

// DriverGW is the driver registry collaborator used for eligibility scans
type DriverGW interface {
	ListEligible(ctx context.Context, pickupStation, destination, excludeDriverID string) ([]*models.DriverRoute, error)
}

// StationGW provides station coordinates for fare pricing
type StationGW interface {
	GetStation(ctx context.Context, stationID string) (*models.Station, error)
}

// TripGW is the trip collaborator invoked when a match is accepted
type TripGW interface {
	CreateTrip(ctx context.Context, req *models.CreateTripRequest) (*models.Trip, error)
}

// NotifyGW delivers match notifications. Delivery is fire-and-forget:
// callers log failures and never surface them.
type NotifyGW interface {
	SendMatchNotification(ctx context.Context, notification models.MatchNotification) error
}
