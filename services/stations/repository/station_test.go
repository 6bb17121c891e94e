package repository_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lastmile/dispatch/internal/pkg/apperrors"
	"github.com/lastmile/dispatch/internal/pkg/constants"
	"github.com/lastmile/dispatch/internal/pkg/database"
	"github.com/lastmile/dispatch/internal/pkg/models"
	"github.com/lastmile/dispatch/services/stations/repository"
)

func setupStationRepo(t *testing.T) (*repository.StationRepo, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return repository.NewStationRepository(&database.RedisClient{Client: client}), mr
}

func TestUpsertAndGetStation(t *testing.T) {
	repo, _ := setupStationRepo(t)
	ctx := context.Background()

	station := &models.Station{
		ID:        "ST-CENTRAL",
		Name:      "Central Station",
		Latitude:  -6.2004,
		Longitude: 106.8227,
	}
	require.NoError(t, repo.UpsertStation(ctx, station))

	got, err := repo.GetStation(ctx, "ST-CENTRAL")
	require.NoError(t, err)
	assert.Equal(t, station.Name, got.Name)
	assert.Equal(t, station.Latitude, got.Latitude)

	// overwrite by id is idempotent
	station.Name = "Central Station (renamed)"
	require.NoError(t, repo.UpsertStation(ctx, station))
	got, err = repo.GetStation(ctx, "ST-CENTRAL")
	require.NoError(t, err)
	assert.Equal(t, "Central Station (renamed)", got.Name)
}

func TestGetStationNotFound(t *testing.T) {
	repo, _ := setupStationRepo(t)

	_, err := repo.GetStation(context.Background(), "ST-MISSING")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestFindWithinRadiusOrdering(t *testing.T) {
	repo, _ := setupStationRepo(t)
	ctx := context.Background()

	// three stations at increasing distance east of the query point
	for _, s := range []models.Station{
		{ID: "ST-FAR", Name: "Far", Latitude: -6.2000, Longitude: 106.8400},
		{ID: "ST-NEAR", Name: "Near", Latitude: -6.2000, Longitude: 106.8210},
		{ID: "ST-MID", Name: "Mid", Latitude: -6.2000, Longitude: 106.8300},
	} {
		s := s
		require.NoError(t, repo.UpsertStation(ctx, &s))
	}

	nearby, err := repo.FindWithinRadius(ctx, -6.2000, 106.8200, 5000)
	require.NoError(t, err)
	require.Len(t, nearby, 3)
	assert.Equal(t, "ST-NEAR", nearby[0].Station.ID)
	assert.Equal(t, "ST-MID", nearby[1].Station.ID)
	assert.Equal(t, "ST-FAR", nearby[2].Station.ID)
}

func TestFindWithinRadiusTieBreakByID(t *testing.T) {
	repo, _ := setupStationRepo(t)
	ctx := context.Background()

	// two stations at the same coordinate: id ascending wins
	for _, id := range []string{"ST-B", "ST-A"} {
		require.NoError(t, repo.UpsertStation(ctx, &models.Station{
			ID:        id,
			Name:      id,
			Latitude:  -6.2100,
			Longitude: 106.8200,
		}))
	}

	nearby, err := repo.FindWithinRadius(ctx, -6.2100, 106.8200, 1000)
	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, "ST-A", nearby[0].Station.ID)
	assert.Equal(t, "ST-B", nearby[1].Station.ID)
}

func TestEnsureIndexedMigratesLegacyRecords(t *testing.T) {
	repo, mr := setupStationRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Halte Dukuh Atas", "Halte Bundaran HI"} {
		var legacy models.LegacyStation
		legacy.Name = name
		legacy.Location.Lat = -6.2004
		legacy.Location.Lng = 106.8227
		data, err := json.Marshal(legacy)
		require.NoError(t, err)
		_, err = mr.Push(constants.KeyStationLegacy, string(data))
		require.NoError(t, err)
	}

	require.NoError(t, repo.EnsureIndexed(ctx))

	got, err := repo.GetStation(ctx, "Halte Dukuh Atas")
	require.NoError(t, err)
	assert.Equal(t, -6.2004, got.Latitude)

	nearby, err := repo.FindWithinRadius(ctx, -6.2004, 106.8227, 500)
	require.NoError(t, err)
	assert.Len(t, nearby, 2)

	// second call is a no-op once the index is populated
	require.NoError(t, repo.EnsureIndexed(ctx))
	nearby, err = repo.FindWithinRadius(ctx, -6.2004, 106.8227, 500)
	require.NoError(t, err)
	assert.Len(t, nearby, 2)
}

func TestEnsureIndexedSkipsMalformedRecords(t *testing.T) {
	repo, mr := setupStationRepo(t)
	ctx := context.Background()

	var legacy models.LegacyStation
	legacy.Name = "Halte Senayan"
	legacy.Location.Lat = -6.2274
	legacy.Location.Lng = 106.8027
	data, err := json.Marshal(legacy)
	require.NoError(t, err)

	_, err = mr.Push(constants.KeyStationLegacy, "{not json", string(data))
	require.NoError(t, err)

	require.NoError(t, repo.EnsureIndexed(ctx))

	_, err = repo.GetStation(ctx, "Halte Senayan")
	assert.NoError(t, err)
}

func TestEnsureIndexedNoLegacyData(t *testing.T) {
	repo, _ := setupStationRepo(t)

	assert.NoError(t, repo.EnsureIndexed(context.Background()))
}
