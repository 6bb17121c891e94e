package usecase

import (
	"context"
	"time"

	"github.com/lastmile/dispatch/internal/pkg/logger"
	"github.com/lastmile/dispatch/services/drivers"
)

const resolveTimeout = 2 * time.Second

// RouteResolver resolves the ordered station sequence between two
// stations through the route-geometry provider. Geometry is best-effort
// enrichment: registration must never fail solely because the provider is
// degraded, so a failed or empty lookup falls back to the caller-supplied
// station list when one exists.
type RouteResolver struct {
	stationGW drivers.StationGW
}

// NewRouteResolver creates a new route resolver
func NewRouteResolver(stationGW drivers.StationGW) *RouteResolver {
	return &RouteResolver{stationGW: stationGW}
}

// Resolve returns the station sequence for the route. Provider failure or
// timeout with a non-empty fallback returns the fallback unmodified; a
// successful but empty provider response likewise. Otherwise the provider
// result is returned as-is, possibly empty.
func (r *RouteResolver) Resolve(ctx context.Context, origin, destination string, fallback []string) []string {
	ctx, cancel := context.WithTimeout(ctx, resolveTimeout)
	defer cancel()

	resolved, err := r.stationGW.GetStationsAlongRoute(ctx, origin, destination)
	if err != nil {
		logger.Warn("Route geometry lookup failed",
			logger.String("origin", origin),
			logger.String("destination", destination),
			logger.Err(err))
		if len(fallback) > 0 {
			return fallback
		}
		return []string{}
	}

	if len(resolved) == 0 && len(fallback) > 0 {
		return fallback
	}
	return resolved
}
