package drivers

import (
	"context"

	"github.com/lastmile/dispatch/internal/pkg/models"
)

// DriverUC defines the interface for driver registry business logic
type DriverUC interface {
	// RegisterRoute replaces the driver's route, resolving the station
	// sequence through the route-geometry provider with the request's
	// station list as fallback. A fresh route id is generated every time.
	RegisterRoute(ctx context.Context, req *models.RegisterRouteRequest) (*models.DriverRoute, error)

	// UpdateLocation records the driver's current position
	UpdateLocation(ctx context.Context, driverID string, lat, lon float64) error

	// SetPickupStatus toggles the pickup-in-progress flag
	SetPickupStatus(ctx context.Context, driverID string, pickingUp bool) error

	// GetDriver returns a driver's route document
	GetDriver(ctx context.Context, driverID string) (*models.DriverRoute, error)

	// ListDrivers returns all registered routes in registry order
	ListDrivers(ctx context.Context) ([]*models.DriverRoute, error)

	// ListEligible returns drivers whose destination matches
	// case-insensitively, with seats available, whose route contains the
	// pickup station, excluding excludeDriverID when non-empty. Registry
	// order is preserved.
	ListEligible(ctx context.Context, pickupStation, destination, excludeDriverID string) ([]*models.DriverRoute, error)
}
