package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lastmile/dispatch/internal/pkg/apperrors"
	"github.com/lastmile/dispatch/internal/pkg/logger"
	"github.com/lastmile/dispatch/internal/pkg/models"
	"github.com/lastmile/dispatch/services/drivers"
)

// DriverUC implements the driver registry use case interface
type DriverUC struct {
	driverRepo drivers.DriverRepo
	resolver   *RouteResolver
}

// NewDriverUC creates a new driver use case
func NewDriverUC(driverRepo drivers.DriverRepo, stationGW drivers.StationGW) *DriverUC {
	return &DriverUC{
		driverRepo: driverRepo,
		resolver:   NewRouteResolver(stationGW),
	}
}

// RegisterRoute replaces the driver's route. The station sequence comes
// from the geometry provider when it answers, from the request's fallback
// list otherwise. The route id is fresh on every registration and the
// pickup flag resets to false.
func (uc *DriverUC) RegisterRoute(ctx context.Context, req *models.RegisterRouteRequest) (*models.DriverRoute, error) {
	if req.DriverID == "" {
		return nil, apperrors.Validation("driver id is required")
	}
	if req.OriginStation == "" || req.Destination == "" {
		return nil, apperrors.Validation("origin and destination stations are required")
	}
	if req.AvailableSeats < 0 {
		return nil, apperrors.Validation("available seats must not be negative")
	}

	stations := uc.resolver.Resolve(ctx, req.OriginStation, req.Destination, req.Stations)

	route := &models.DriverRoute{
		DriverID:       req.DriverID,
		RouteID:        uuid.New().String(),
		OriginStation:  req.OriginStation,
		Destination:    req.Destination,
		AvailableSeats: req.AvailableSeats,
		Stations:       stations,
		PickingUp:      false,
	}

	if err := uc.driverRepo.SaveRoute(ctx, route); err != nil {
		return nil, err
	}

	logger.Info("Driver route registered",
		logger.String("driver_id", route.DriverID),
		logger.String("route_id", route.RouteID),
		logger.Int("stations", len(route.Stations)))

	return route, nil
}

// UpdateLocation records the driver's current position
func (uc *DriverUC) UpdateLocation(ctx context.Context, driverID string, lat, lon float64) error {
	location := models.Location{
		Latitude:  lat,
		Longitude: lon,
		Timestamp: time.Now(),
	}
	if !location.Valid() {
		return apperrors.Validation("invalid coordinates (%f, %f)", lat, lon)
	}
	return uc.driverRepo.UpdateLocation(ctx, driverID, location)
}

// SetPickupStatus toggles the pickup-in-progress flag
func (uc *DriverUC) SetPickupStatus(ctx context.Context, driverID string, pickingUp bool) error {
	return uc.driverRepo.SetPickupStatus(ctx, driverID, pickingUp)
}

// GetDriver returns a driver's route document
func (uc *DriverUC) GetDriver(ctx context.Context, driverID string) (*models.DriverRoute, error) {
	return uc.driverRepo.GetRoute(ctx, driverID)
}

// ListDrivers returns all registered routes in registry order
func (uc *DriverUC) ListDrivers(ctx context.Context) ([]*models.DriverRoute, error) {
	return uc.driverRepo.ListRoutes(ctx)
}

// ListEligible returns drivers eligible for a pickup at the given station
// heading to the given destination, in registry order. Eligibility:
// destination equal ignoring case, seats available, pickup station on the
// route, and not the excluded driver.
func (uc *DriverUC) ListEligible(ctx context.Context, pickupStation, destination, excludeDriverID string) ([]*models.DriverRoute, error) {
	routes, err := uc.driverRepo.ListRoutes(ctx)
	if err != nil {
		return nil, err
	}

	eligible := make([]*models.DriverRoute, 0)
	for _, route := range routes {
		if excludeDriverID != "" && route.DriverID == excludeDriverID {
			continue
		}
		if !strings.EqualFold(route.Destination, destination) {
			continue
		}
		if route.AvailableSeats <= 0 {
			continue
		}
		if !route.HasStation(pickupStation) {
			continue
		}
		eligible = append(eligible, route)
	}
	return eligible, nil
}
