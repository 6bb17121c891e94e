package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lastmile/dispatch/internal/pkg/apperrors"
	"github.com/lastmile/dispatch/internal/pkg/database"
	"github.com/lastmile/dispatch/internal/pkg/models"
	"github.com/lastmile/dispatch/services/drivers/repository"
)

func setupDriverRepo(t *testing.T) *repository.DriverRepo {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cfg := &models.Config{
		Match: models.MatchConfig{GeohashPrecision: 7},
	}
	return repository.NewDriverRepository(cfg, &database.RedisClient{Client: client})
}

func sampleRoute(driverID string) *models.DriverRoute {
	return &models.DriverRoute{
		DriverID:       driverID,
		RouteID:        "route-" + driverID,
		OriginStation:  "S1",
		Destination:    "S5",
		AvailableSeats: 2,
		Stations:       []string{"S1", "S2", "S3", "S4", "S5"},
	}
}

func TestSaveAndGetRoute(t *testing.T) {
	repo := setupDriverRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveRoute(ctx, sampleRoute("driver-1")))

	got, err := repo.GetRoute(ctx, "driver-1")
	require.NoError(t, err)
	assert.Equal(t, "route-driver-1", got.RouteID)
	assert.Equal(t, []string{"S1", "S2", "S3", "S4", "S5"}, got.Stations)
}

func TestGetRouteNotFound(t *testing.T) {
	repo := setupDriverRepo(t)

	_, err := repo.GetRoute(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSaveRouteReplacesPriorRoute(t *testing.T) {
	repo := setupDriverRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveRoute(ctx, sampleRoute("driver-1")))

	replacement := sampleRoute("driver-1")
	replacement.RouteID = "route-new"
	replacement.AvailableSeats = 4
	require.NoError(t, repo.SaveRoute(ctx, replacement))

	got, err := repo.GetRoute(ctx, "driver-1")
	require.NoError(t, err)
	assert.Equal(t, "route-new", got.RouteID)
	assert.Equal(t, 4, got.AvailableSeats)

	// re-registration must not duplicate the registry entry
	routes, err := repo.ListRoutes(ctx)
	require.NoError(t, err)
	assert.Len(t, routes, 1)
}

func TestUpdateLocationUnknownDriver(t *testing.T) {
	repo := setupDriverRepo(t)

	err := repo.UpdateLocation(context.Background(), "ghost", models.Location{
		Latitude: -6.2, Longitude: 106.8, Timestamp: time.Now(),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdateLocationOverwritesOnlyLocation(t *testing.T) {
	repo := setupDriverRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveRoute(ctx, sampleRoute("driver-1")))

	loc := models.Location{Latitude: -6.2004, Longitude: 106.8227, Timestamp: time.Now()}
	require.NoError(t, repo.UpdateLocation(ctx, "driver-1", loc))

	got, err := repo.GetRoute(ctx, "driver-1")
	require.NoError(t, err)
	require.NotNil(t, got.Location)
	assert.Equal(t, loc.Latitude, got.Location.Latitude)
	assert.NotEmpty(t, got.Geohash)
	assert.Equal(t, "route-driver-1", got.RouteID)
	assert.Equal(t, 2, got.AvailableSeats)
}

func TestSetPickupStatus(t *testing.T) {
	repo := setupDriverRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveRoute(ctx, sampleRoute("driver-1")))
	require.NoError(t, repo.SetPickupStatus(ctx, "driver-1", true))

	got, err := repo.GetRoute(ctx, "driver-1")
	require.NoError(t, err)
	assert.True(t, got.PickingUp)

	require.NoError(t, repo.SetPickupStatus(ctx, "driver-1", false))
	got, err = repo.GetRoute(ctx, "driver-1")
	require.NoError(t, err)
	assert.False(t, got.PickingUp)

	err = repo.SetPickupStatus(ctx, "ghost", true)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListRoutesDeterministicOrder(t *testing.T) {
	repo := setupDriverRepo(t)
	ctx := context.Background()

	// registered out of order, listed in driver id ascending order
	for _, id := range []string{"driver-3", "driver-1", "driver-2"} {
		require.NoError(t, repo.SaveRoute(ctx, sampleRoute(id)))
	}

	routes, err := repo.ListRoutes(ctx)
	require.NoError(t, err)
	require.Len(t, routes, 3)
	assert.Equal(t, "driver-1", routes[0].DriverID)
	assert.Equal(t, "driver-2", routes[1].DriverID)
	assert.Equal(t, "driver-3", routes[2].DriverID)
}
