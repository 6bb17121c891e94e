// Package gateway holds the match service's collaborator adapters. The
// registry, station and trip services run in-process; notifications go
// out over NSQ. Every adapter wraps failures as CollaboratorUnavailable
// so the usecase's fallback policy applies uniformly.
package gateway

import (
	"context"

	"github.com/lastmile/dispatch/internal/pkg/apperrors"
	"github.com/lastmile/dispatch/internal/pkg/models"
	"github.com/lastmile/dispatch/services/drivers"
	"github.com/lastmile/dispatch/services/stations"
	"github.com/lastmile/dispatch/services/trips"
)

// DriverGateway adapts the driver registry to the dispatch scan interface
type DriverGateway struct {
	driverUC drivers.DriverUC
}

// NewDriverGateway creates a new driver gateway
func NewDriverGateway(driverUC drivers.DriverUC) *DriverGateway {
	return &DriverGateway{driverUC: driverUC}
}

// ListEligible returns eligible drivers in registry order
func (g *DriverGateway) ListEligible(ctx context.Context, pickupStation, destination, excludeDriverID string) ([]*models.DriverRoute, error) {
	routes, err := g.driverUC.ListEligible(ctx, pickupStation, destination, excludeDriverID)
	if err != nil {
		return nil, apperrors.Unavailable("driver registry scan failed", err)
	}
	return routes, nil
}

// StationGateway adapts the station index for fare pricing lookups
type StationGateway struct {
	stationUC stations.StationUC
}

// NewStationGateway creates a new station gateway
func NewStationGateway(stationUC stations.StationUC) *StationGateway {
	return &StationGateway{stationUC: stationUC}
}

// GetStation returns a station's record for pricing
func (g *StationGateway) GetStation(ctx context.Context, stationID string) (*models.Station, error) {
	station, err := g.stationUC.GetStation(ctx, stationID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, apperrors.Unavailable("station lookup failed", err)
	}
	return station, nil
}

// TripGateway adapts the trip collaborator for match acceptance
type TripGateway struct {
	tripUC trips.TripUC
}

// NewTripGateway creates a new trip gateway
func NewTripGateway(tripUC trips.TripUC) *TripGateway {
	return &TripGateway{tripUC: tripUC}
}

// CreateTrip creates the trip record backing a confirmed match
func (g *TripGateway) CreateTrip(ctx context.Context, req *models.CreateTripRequest) (*models.Trip, error) {
	trip, err := g.tripUC.CreateTrip(ctx, req)
	if err != nil {
		return nil, apperrors.Unavailable("trip collaborator failed", err)
	}
	return trip, nil
}
