package match

import (
	"context"

	"github.com/lastmile/dispatch/internal/pkg/models"
)

// MatchUC defines the interface for dispatch and match lifecycle logic
type MatchUC interface {
	// MatchRiderWithDriver scans the driver registry for the first
	// eligible driver, prices the pickup and persists a MATCHED match.
	// Collaborator failures during the scan or pricing degrade to a
	// no-match outcome or the default fare, never to a hard error.
	MatchRiderWithDriver(ctx context.Context, req *models.MatchRequest) (*models.MatchOutcome, error)

	// AcceptMatch confirms a match: the acting driver must be the match's
	// current driver and the match must be MATCHED. Trip creation failure
	// leaves the match MATCHED. Returns the trip id on success.
	AcceptMatch(ctx context.Context, matchID, driverID string) (string, error)

	// DeclineMatch declines a match and attempts reassignment to another
	// eligible driver. Outcome.Found reports whether a replacement was
	// assigned; without one the match is CANCELLED, which is a successful
	// decline, not an error.
	DeclineMatch(ctx context.Context, matchID, driverID string) (*models.MatchOutcome, error)

	// GetMatchStatus returns the match's current state
	GetMatchStatus(ctx context.Context, matchID string) (*models.Match, error)
}
