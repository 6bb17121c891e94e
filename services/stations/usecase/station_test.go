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
	"github.com/lastmile/dispatch/services/stations/mocks"
	"github.com/lastmile/dispatch/services/stations/usecase"
)

func matchTestConfig() *models.Config {
	return &models.Config{
		Match: models.MatchConfig{
			StationRadiusM: 1000,
			RouteSampleM:   500,
			RouteCorridorM: 750,
		},
	}
}

func TestUpsertStationValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStationRepo(ctrl)
	uc := usecase.NewStationUC(matchTestConfig(), repo)

	err := uc.UpsertStation(context.Background(), &models.Station{Name: "no id"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	err = uc.UpsertStation(context.Background(), &models.Station{
		ID: "ST-1", Latitude: 91.0, Longitude: 0,
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestUpsertStationStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStationRepo(ctrl)
	uc := usecase.NewStationUC(matchTestConfig(), repo)

	station := &models.Station{ID: "ST-1", Name: "One", Latitude: -6.2, Longitude: 106.8}
	repo.EXPECT().UpsertStation(gomock.Any(), station).Return(nil)

	assert.NoError(t, uc.UpsertStation(context.Background(), station))
}

func TestNearbyStationsDefaultRadius(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStationRepo(ctrl)
	uc := usecase.NewStationUC(matchTestConfig(), repo)

	repo.EXPECT().
		FindWithinRadius(gomock.Any(), -6.2, 106.8, 1000.0).
		Return([]models.NearbyStation{}, nil)

	_, err := uc.NearbyStations(context.Background(), -6.2, 106.8, 0)
	assert.NoError(t, err)
}

func TestNearbyStationsInvalidCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStationRepo(ctrl)
	uc := usecase.NewStationUC(matchTestConfig(), repo)

	_, err := uc.NearbyStations(context.Background(), -120, 106.8, 500)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestStationsAlongRouteOrdersAndDedupes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStationRepo(ctrl)
	uc := usecase.NewStationUC(matchTestConfig(), repo)

	origin := &models.Station{ID: "ST-A", Name: "A", Latitude: -6.2000, Longitude: 106.8200}
	dest := &models.Station{ID: "ST-C", Name: "C", Latitude: -6.2000, Longitude: 106.8230}
	mid := models.Station{ID: "ST-B", Name: "B", Latitude: -6.2000, Longitude: 106.8215}

	repo.EXPECT().GetStation(gomock.Any(), "ST-A").Return(origin, nil)
	repo.EXPECT().GetStation(gomock.Any(), "ST-C").Return(dest, nil)

	// span ~330m with 500m sampling: two sample points, each returning an
	// overlapping slice of the corridor
	repo.EXPECT().
		FindWithinRadius(gomock.Any(), gomock.Any(), gomock.Any(), 750.0).
		Return([]models.NearbyStation{
			{Station: *origin, Distance: 0},
			{Station: mid, Distance: 166},
		}, nil)
	repo.EXPECT().
		FindWithinRadius(gomock.Any(), gomock.Any(), gomock.Any(), 750.0).
		Return([]models.NearbyStation{
			{Station: *dest, Distance: 0},
			{Station: mid, Distance: 166},
		}, nil)

	route, err := uc.StationsAlongRoute(context.Background(), "ST-A", "ST-C")
	require.NoError(t, err)
	assert.Equal(t, []string{"ST-A", "ST-B", "ST-C"}, route)
}

func TestStationsAlongRouteUnknownEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStationRepo(ctrl)
	uc := usecase.NewStationUC(matchTestConfig(), repo)

	repo.EXPECT().
		GetStation(gomock.Any(), "ST-MISSING").
		Return(nil, apperrors.NotFound("station ST-MISSING not found"))

	_, err := uc.StationsAlongRoute(context.Background(), "ST-MISSING", "ST-C")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestStationsAlongRouteIndexFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockStationRepo(ctrl)
	uc := usecase.NewStationUC(matchTestConfig(), repo)

	origin := &models.Station{ID: "ST-A", Name: "A", Latitude: -6.2000, Longitude: 106.8200}
	dest := &models.Station{ID: "ST-C", Name: "C", Latitude: -6.2000, Longitude: 106.8230}

	repo.EXPECT().GetStation(gomock.Any(), "ST-A").Return(origin, nil)
	repo.EXPECT().GetStation(gomock.Any(), "ST-C").Return(dest, nil)
	repo.EXPECT().
		FindWithinRadius(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := uc.StationsAlongRoute(context.Background(), "ST-A", "ST-C")
	assert.Error(t, err)
}
