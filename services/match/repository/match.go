package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/lastmile/dispatch/internal/pkg/apperrors"
	"github.com/lastmile/dispatch/internal/pkg/constants"
	"github.com/lastmile/dispatch/internal/pkg/database"
	"github.com/lastmile/dispatch/internal/pkg/logger"
	"github.com/lastmile/dispatch/internal/pkg/models"
)

// maxTxRetries bounds the optimistic retry loop on contended updates
const maxTxRetries = 3

// MatchRepo implements match persistence as one JSON document per match,
// updated under WATCH so concurrent accept/decline on the same match
// serialize per document.
type MatchRepo struct {
	redisClient *database.RedisClient
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(redisClient *database.RedisClient) *MatchRepo {
	return &MatchRepo{redisClient: redisClient}
}

func matchKey(matchID string) string {
	return fmt.Sprintf(constants.KeyMatch, matchID)
}

// CreateMatch stores a freshly created match document
func (r *MatchRepo) CreateMatch(ctx context.Context, m *models.Match) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal match %s: %w", m.ID, err)
	}
	if err := r.redisClient.Set(ctx, matchKey(m.ID), data, 0); err != nil {
		return fmt.Errorf("failed to store match %s: %w", m.ID, err)
	}
	return nil
}

// decode unmarshals a stored match and applies the status shim: values
// outside the closed enum map to PENDING instead of erroring. Kept as a
// migration-compatibility measure for documents written by older
// deployments.
func decode(matchID, data string) (*models.Match, error) {
	var m models.Match
	if err := json.Unmarshal([]byte(data), &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match %s: %w", matchID, err)
	}

	status, ok := models.ParseMatchStatus(string(m.Status))
	if !ok {
		logger.Warn("Unrecognized persisted match status, defaulting to PENDING",
			logger.String("match_id", matchID),
			logger.String("status", string(m.Status)))
	}
	m.Status = status
	return &m, nil
}

// GetMatch returns the match with the given id
func (r *MatchRepo) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	data, err := r.redisClient.Get(ctx, matchKey(matchID))
	if err == redis.Nil {
		return nil, apperrors.NotFound("match %s not found", matchID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match %s: %w", matchID, err)
	}
	return decode(matchID, data)
}

// UpdateMatch applies update under a WATCH transaction, retrying a
// bounded number of times on write conflicts. An error returned by update
// aborts without writing and is returned unchanged.
func (r *MatchRepo) UpdateMatch(ctx context.Context, matchID string, update func(*models.Match) error) (*models.Match, error) {
	key := matchKey(matchID)
	var result *models.Match

	txn := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Result()
		if err == redis.Nil {
			return apperrors.NotFound("match %s not found", matchID)
		}
		if err != nil {
			return fmt.Errorf("failed to get match %s: %w", matchID, err)
		}

		m, err := decode(matchID, data)
		if err != nil {
			return err
		}

		if err := update(m); err != nil {
			return err
		}
		m.UpdatedAt = time.Now()

		updated, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("failed to marshal match %s: %w", matchID, err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, 0)
			return nil
		})
		if err == nil {
			result = m
		}
		return err
	}

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := r.redisClient.Client.Watch(ctx, txn, key)
		if err == redis.TxFailedErr {
			continue
		}
		if err != nil {
			return nil, err
		}
		return result, nil
	}

	return nil, fmt.Errorf("match %s update aborted after %d conflicts", matchID, maxTxRetries)
}
