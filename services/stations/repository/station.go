package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-redis/redis/v8"
	"github.com/lastmile/dispatch/internal/pkg/apperrors"
	"github.com/lastmile/dispatch/internal/pkg/constants"
	"github.com/lastmile/dispatch/internal/pkg/database"
	"github.com/lastmile/dispatch/internal/pkg/logger"
	"github.com/lastmile/dispatch/internal/pkg/models"
)

// StationRepo implements the station repository over Redis: a GEO set for
// spatial queries and a hash of JSON documents as the canonical store.
type StationRepo struct {
	redisClient *database.RedisClient
}

// NewStationRepository creates a new station repository
func NewStationRepository(redisClient *database.RedisClient) *StationRepo {
	return &StationRepo{redisClient: redisClient}
}

// UpsertStation adds or overwrites a station in both the canonical hash
// and the spatial index.
func (r *StationRepo) UpsertStation(ctx context.Context, station *models.Station) error {
	data, err := json.Marshal(station)
	if err != nil {
		return fmt.Errorf("failed to marshal station %s: %w", station.ID, err)
	}

	if err := r.redisClient.HSet(ctx, constants.KeyStationData, station.ID, data); err != nil {
		return fmt.Errorf("failed to store station %s: %w", station.ID, err)
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeyStationGeo, station.Longitude, station.Latitude, station.ID); err != nil {
		return fmt.Errorf("failed to index station %s: %w", station.ID, err)
	}

	return nil
}

// GetStation returns the station with the given id
func (r *StationRepo) GetStation(ctx context.Context, stationID string) (*models.Station, error) {
	data, err := r.redisClient.HGet(ctx, constants.KeyStationData, stationID)
	if err == redis.Nil {
		return nil, apperrors.NotFound("station %s not found", stationID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get station %s: %w", stationID, err)
	}

	var station models.Station
	if err := json.Unmarshal([]byte(data), &station); err != nil {
		return nil, fmt.Errorf("failed to unmarshal station %s: %w", stationID, err)
	}

	return &station, nil
}

// FindWithinRadius returns stations within radiusM meters of the point,
// ascending by distance with ties broken by station id. Members present in
// the GEO set but missing from the hash are skipped; that only happens
// mid-migration and callers tolerate transient misses.
func (r *StationRepo) FindWithinRadius(ctx context.Context, lat, lon, radiusM float64) ([]models.NearbyStation, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyStationGeo, lon, lat, radiusM, "m")
	if err != nil {
		return nil, fmt.Errorf("failed to query station index: %w", err)
	}

	results := make([]models.NearbyStation, 0, len(locations))
	for _, loc := range locations {
		station, err := r.GetStation(ctx, loc.Name)
		if err != nil {
			if apperrors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		results = append(results, models.NearbyStation{
			Station:  *station,
			Distance: loc.Dist,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].Station.ID < results[j].Station.ID
	})

	return results, nil
}

// EnsureIndexed replays the legacy flat station list into the hash and the
// GEO set when the index is empty. Legacy records carry only a name and a
// coordinate pair; the name doubles as the station id. Safe to call
// repeatedly and concurrently with reads.
func (r *StationRepo) EnsureIndexed(ctx context.Context) error {
	indexed, err := r.redisClient.ZCard(ctx, constants.KeyStationGeo)
	if err != nil {
		return fmt.Errorf("failed to check station index: %w", err)
	}
	if indexed > 0 {
		return nil
	}

	legacyCount, err := r.redisClient.LLen(ctx, constants.KeyStationLegacy)
	if err != nil {
		return fmt.Errorf("failed to check legacy station list: %w", err)
	}
	if legacyCount == 0 {
		return nil
	}

	records, err := r.redisClient.LRange(ctx, constants.KeyStationLegacy, 0, -1)
	if err != nil {
		return fmt.Errorf("failed to read legacy station list: %w", err)
	}

	migrated := 0
	for _, record := range records {
		var legacy models.LegacyStation
		if err := json.Unmarshal([]byte(record), &legacy); err != nil {
			logger.Warn("Skipping malformed legacy station record",
				logger.String("record", record),
				logger.Err(err))
			continue
		}

		station := &models.Station{
			ID:        legacy.Name,
			Name:      legacy.Name,
			Latitude:  legacy.Location.Lat,
			Longitude: legacy.Location.Lng,
		}
		if err := r.UpsertStation(ctx, station); err != nil {
			return fmt.Errorf("failed to migrate legacy station %s: %w", legacy.Name, err)
		}
		migrated++
	}

	logger.Info("Migrated legacy station records into the spatial index",
		logger.Int("migrated", migrated),
		logger.Int("total", len(records)))

	return nil
}
