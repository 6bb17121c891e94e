package gateway

import (
	"context"

	"github.com/lastmile/dispatch/internal/pkg/apperrors"
	"github.com/lastmile/dispatch/services/stations"
)

// StationGateway adapts the station service to the route-geometry
// provider interface the driver registry consumes. Every failure is
// wrapped as CollaboratorUnavailable so the resolver's fallback policy
// applies uniformly.
type StationGateway struct {
	stationUC stations.StationUC
}

// NewStationGateway creates a new station gateway
func NewStationGateway(stationUC stations.StationUC) *StationGateway {
	return &StationGateway{stationUC: stationUC}
}

// GetStationsAlongRoute returns the ordered station ids between origin
// and destination.
func (g *StationGateway) GetStationsAlongRoute(ctx context.Context, origin, destination string) ([]string, error) {
	route, err := g.stationUC.StationsAlongRoute(ctx, origin, destination)
	if err != nil {
		return nil, apperrors.Unavailable("route geometry provider failed", err)
	}
	return route, nil
}
