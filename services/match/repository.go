package match

import (
	"context"

	"github.com/lastmile/dispatch/internal/pkg/models"
)

// MatchRepo defines the interface for match persistence
type MatchRepo interface {
	// CreateMatch stores a freshly created match document
	CreateMatch(ctx context.Context, m *models.Match) error

	// GetMatch returns the match with the given id, NotFound on miss.
	// Persisted status values outside the closed enum surface as PENDING.
	GetMatch(ctx context.Context, matchID string) (*models.Match, error)

	// UpdateMatch applies update to the match under a per-document
	// optimistic transaction and returns the stored result. An error from
	// update aborts without writing.
	UpdateMatch(ctx context.Context, matchID string, update func(*models.Match) error) (*models.Match, error)
}
