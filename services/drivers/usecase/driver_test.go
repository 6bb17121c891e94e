package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lastmile/dispatch/internal/pkg/apperrors"
	"github.com/lastmile/dispatch/internal/pkg/models"
	"github.com/lastmile/dispatch/services/drivers/mocks"
	"github.com/lastmile/dispatch/services/drivers/usecase"
)

var fullRoute = []string{"S1", "S2", "S3", "S4", "S5"}

func TestResolveReturnsProviderRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockStationGW(ctrl)
	gw.EXPECT().
		GetStationsAlongRoute(gomock.Any(), "S1", "S5").
		Return([]string{"S1", "S3", "S5"}, nil)

	resolver := usecase.NewRouteResolver(gw)
	got := resolver.Resolve(context.Background(), "S1", "S5", fullRoute)
	assert.Equal(t, []string{"S1", "S3", "S5"}, got)
}

func TestResolveFallsBackOnProviderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockStationGW(ctrl)
	gw.EXPECT().
		GetStationsAlongRoute(gomock.Any(), "S1", "S5").
		Return(nil, apperrors.Unavailable("route geometry provider failed", errors.New("timeout")))

	resolver := usecase.NewRouteResolver(gw)
	got := resolver.Resolve(context.Background(), "S1", "S5", fullRoute)
	assert.Equal(t, fullRoute, got)
}

func TestResolveFallsBackOnEmptyProviderResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockStationGW(ctrl)
	gw.EXPECT().
		GetStationsAlongRoute(gomock.Any(), "S1", "S5").
		Return([]string{}, nil)

	resolver := usecase.NewRouteResolver(gw)
	got := resolver.Resolve(context.Background(), "S1", "S5", fullRoute)
	assert.Equal(t, fullRoute, got)
}

func TestResolveNoFallbackReturnsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockStationGW(ctrl)
	gw.EXPECT().
		GetStationsAlongRoute(gomock.Any(), "S1", "S5").
		Return(nil, errors.New("unavailable"))

	resolver := usecase.NewRouteResolver(gw)
	got := resolver.Resolve(context.Background(), "S1", "S5", nil)
	assert.Empty(t, got)
}

func TestRegisterRouteGeneratesFreshRouteID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockDriverRepo(ctrl)
	gw := mocks.NewMockStationGW(ctrl)
	uc := usecase.NewDriverUC(repo, gw)

	gw.EXPECT().
		GetStationsAlongRoute(gomock.Any(), "S1", "S5").
		Return(nil, errors.New("provider down")).
		Times(2)

	var routeIDs []string
	repo.EXPECT().
		SaveRoute(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, route *models.DriverRoute) {
			routeIDs = append(routeIDs, route.RouteID)
			assert.False(t, route.PickingUp)
			assert.Equal(t, fullRoute, route.Stations)
		}).
		Return(nil).
		Times(2)

	req := &models.RegisterRouteRequest{
		DriverID:       "driver-1",
		OriginStation:  "S1",
		Destination:    "S5",
		AvailableSeats: 2,
		Stations:       fullRoute,
	}

	_, err := uc.RegisterRoute(context.Background(), req)
	require.NoError(t, err)
	_, err = uc.RegisterRoute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, routeIDs, 2)
	assert.NotEqual(t, routeIDs[0], routeIDs[1])
	assert.NotEmpty(t, routeIDs[0])
}

func TestRegisterRouteValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockDriverRepo(ctrl)
	gw := mocks.NewMockStationGW(ctrl)
	uc := usecase.NewDriverUC(repo, gw)

	cases := []models.RegisterRouteRequest{
		{OriginStation: "S1", Destination: "S5", AvailableSeats: 1},
		{DriverID: "d1", Destination: "S5", AvailableSeats: 1},
		{DriverID: "d1", OriginStation: "S1", AvailableSeats: 1},
		{DriverID: "d1", OriginStation: "S1", Destination: "S5", AvailableSeats: -1},
	}
	for _, req := range cases {
		req := req
		_, err := uc.RegisterRoute(context.Background(), &req)
		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	}
}

func TestUpdateLocationInvalidCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockDriverRepo(ctrl)
	uc := usecase.NewDriverUC(repo, mocks.NewMockStationGW(ctrl))

	err := uc.UpdateLocation(context.Background(), "driver-1", 95.0, 10.0)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestUpdateLocationUnknownDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockDriverRepo(ctrl)
	uc := usecase.NewDriverUC(repo, mocks.NewMockStationGW(ctrl))

	repo.EXPECT().
		UpdateLocation(gomock.Any(), "ghost", gomock.Any()).
		Return(apperrors.NotFound("driver ghost not found"))

	err := uc.UpdateLocation(context.Background(), "ghost", -6.2, 106.8)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListEligibleFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockDriverRepo(ctrl)
	uc := usecase.NewDriverUC(repo, mocks.NewMockStationGW(ctrl))

	routes := []*models.DriverRoute{
		{DriverID: "d1", Destination: "s5", AvailableSeats: 2, Stations: fullRoute},
		{DriverID: "d2", Destination: "S5", AvailableSeats: 0, Stations: fullRoute},
		{DriverID: "d3", Destination: "S9", AvailableSeats: 2, Stations: fullRoute},
		{DriverID: "d4", Destination: "S5", AvailableSeats: 1, Stations: []string{"S1", "S2"}},
		{DriverID: "d5", Destination: "S5", AvailableSeats: 1, Stations: fullRoute},
	}
	repo.EXPECT().ListRoutes(gomock.Any()).Return(routes, nil).Times(2)

	// d1 matches case-insensitively; d2 has no seats; d3 wrong
	// destination; d4's route misses the pickup station
	eligible, err := uc.ListEligible(context.Background(), "S3", "S5", "")
	require.NoError(t, err)
	require.Len(t, eligible, 2)
	assert.Equal(t, "d1", eligible[0].DriverID)
	assert.Equal(t, "d5", eligible[1].DriverID)

	// excluding d1 leaves only d5
	eligible, err = uc.ListEligible(context.Background(), "S3", "S5", "d1")
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, "d5", eligible[0].DriverID)
}
