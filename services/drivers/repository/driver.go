package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/lastmile/dispatch/internal/pkg/apperrors"
	"github.com/lastmile/dispatch/internal/pkg/constants"
	"github.com/lastmile/dispatch/internal/pkg/database"
	"github.com/lastmile/dispatch/internal/pkg/logger"
	"github.com/lastmile/dispatch/internal/pkg/models"
	"github.com/lastmile/dispatch/internal/utils"
)

// DriverRepo implements the driver registry over Redis. Each driver owns
// one JSON route document; a sorted set of driver ids (all scored zero, so
// lexicographic) fixes the registry iteration order, and a GEO set holds
// last known positions for operational queries.
type DriverRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(cfg *models.Config, redisClient *database.RedisClient) *DriverRepo {
	return &DriverRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}

func driverKey(driverID string) string {
	return fmt.Sprintf(constants.KeyDriverRoute, driverID)
}

func (r *DriverRepo) saveDocument(ctx context.Context, route *models.DriverRoute) error {
	data, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("failed to marshal route for driver %s: %w", route.DriverID, err)
	}
	if err := r.redisClient.Set(ctx, driverKey(route.DriverID), data, 0); err != nil {
		return fmt.Errorf("failed to store route for driver %s: %w", route.DriverID, err)
	}
	return nil
}

// SaveRoute stores the route document and registers the driver id in the
// iteration-order set.
func (r *DriverRepo) SaveRoute(ctx context.Context, route *models.DriverRoute) error {
	if err := r.saveDocument(ctx, route); err != nil {
		return err
	}
	if err := r.redisClient.ZAdd(ctx, constants.KeyDriverIDs, 0, route.DriverID); err != nil {
		return fmt.Errorf("failed to register driver id %s: %w", route.DriverID, err)
	}
	return nil
}

// GetRoute returns a driver's route document
func (r *DriverRepo) GetRoute(ctx context.Context, driverID string) (*models.DriverRoute, error) {
	data, err := r.redisClient.Get(ctx, driverKey(driverID))
	if err == redis.Nil {
		return nil, apperrors.NotFound("driver %s not found", driverID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get route for driver %s: %w", driverID, err)
	}

	var route models.DriverRoute
	if err := json.Unmarshal([]byte(data), &route); err != nil {
		return nil, fmt.Errorf("failed to unmarshal route for driver %s: %w", driverID, err)
	}
	return &route, nil
}

// UpdateLocation overwrites the driver's last known location. The GEO set
// is only re-indexed when the driver moves to a different geohash cell,
// which keeps the hot path to a single write for small movements.
func (r *DriverRepo) UpdateLocation(ctx context.Context, driverID string, location models.Location) error {
	route, err := r.GetRoute(ctx, driverID)
	if err != nil {
		return err
	}

	cell := utils.EncodeGeohash(location.Latitude, location.Longitude, r.cfg.Match.GeohashPrecision)
	cellChanged := cell != route.Geohash

	route.Location = &location
	route.Geohash = cell
	if err := r.saveDocument(ctx, route); err != nil {
		return err
	}

	if cellChanged {
		if err := r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo, location.Longitude, location.Latitude, driverID); err != nil {
			// the document is authoritative; a stale GEO entry self-heals
			// on the next cell change
			logger.Warn("Failed to update driver geo index",
				logger.String("driver_id", driverID),
				logger.Err(err))
		}
	}

	return nil
}

// SetPickupStatus overwrites the pickup-in-progress flag
func (r *DriverRepo) SetPickupStatus(ctx context.Context, driverID string, pickingUp bool) error {
	route, err := r.GetRoute(ctx, driverID)
	if err != nil {
		return err
	}

	route.PickingUp = pickingUp
	return r.saveDocument(ctx, route)
}

// ListRoutes returns all registered routes in driver id ascending order.
// Ids whose document is missing are skipped; that only happens if a
// document was deleted out of band.
func (r *DriverRepo) ListRoutes(ctx context.Context) ([]*models.DriverRoute, error) {
	ids, err := r.redisClient.ZRange(ctx, constants.KeyDriverIDs, 0, -1)
	if err != nil {
		return nil, fmt.Errorf("failed to list driver ids: %w", err)
	}

	routes := make([]*models.DriverRoute, 0, len(ids))
	for _, id := range ids {
		route, err := r.GetRoute(ctx, id)
		if err != nil {
			if apperrors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		routes = append(routes, route)
	}
	return routes, nil
}
