package drivers

import (
	"context"

	"github.com/lastmile/dispatch/internal/pkg/models"
)

// DriverRepo defines the interface for driver registry data access
type DriverRepo interface {
	// SaveRoute stores the full route document, replacing any prior route
	// for the driver.
	SaveRoute(ctx context.Context, route *models.DriverRoute) error

	// GetRoute returns a driver's route document, NotFound on miss
	GetRoute(ctx context.Context, driverID string) (*models.DriverRoute, error)

	// UpdateLocation overwrites the driver's last known location,
	// NotFound if the driver has never registered.
	UpdateLocation(ctx context.Context, driverID string, location models.Location) error

	// SetPickupStatus overwrites the pickup-in-progress flag, NotFound if
	// the driver has never registered.
	SetPickupStatus(ctx context.Context, driverID string, pickingUp bool) error

	// ListRoutes returns all registered routes in driver id ascending
	// order. That order is the registry iteration order dispatch scans in.
	ListRoutes(ctx context.Context) ([]*models.DriverRoute, error)
}
