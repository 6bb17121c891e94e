package usecase

import (
	"github.com/lastmile/dispatch/internal/pkg/observability"
	"github.com/lastmile/dispatch/services/match"
)

// MatchUC implements the dispatch and match lifecycle use case
type MatchUC struct {
	matchRepo match.MatchRepo
	driverGW  match.DriverGW
	stationGW match.StationGW
	tripGW    match.TripGW
	notifyGW  match.NotifyGW
	selector  Selector
	metrics   *observability.MatchMetrics
}

// NewMatchUC creates a new match use case. A nil selector defaults to
// first-fit.
func NewMatchUC(
	matchRepo match.MatchRepo,
	driverGW match.DriverGW,
	stationGW match.StationGW,
	tripGW match.TripGW,
	notifyGW match.NotifyGW,
	selector Selector,
	metrics *observability.MatchMetrics,
) *MatchUC {
	if selector == nil {
		selector = FirstFit
	}
	return &MatchUC{
		matchRepo: matchRepo,
		driverGW:  driverGW,
		stationGW: stationGW,
		tripGW:    tripGW,
		notifyGW:  notifyGW,
		selector:  selector,
		metrics:   metrics,
	}
}
