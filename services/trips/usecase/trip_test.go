package usecase_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lastmile/dispatch/internal/pkg/apperrors"
	"github.com/lastmile/dispatch/internal/pkg/models"
	"github.com/lastmile/dispatch/services/trips/mocks"
	"github.com/lastmile/dispatch/services/trips/usecase"
)

func TestCreateTripAssignsIDAndStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTripRepo(ctrl)
	uc := usecase.NewTripUC(repo)

	var stored *models.Trip
	repo.EXPECT().
		CreateTrip(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, trip *models.Trip) { stored = trip }).
		Return(nil)

	trip, err := uc.CreateTrip(context.Background(), &models.CreateTripRequest{
		MatchID:       "match-1",
		DriverID:      "d1",
		RiderID:       "rider-1",
		PickupStation: "S3",
		Destination:   "S5",
		Fare:          120,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, trip.ID)
	assert.Equal(t, models.TripStatusOngoing, trip.Status)
	assert.Equal(t, "match-1", trip.MatchID)
	assert.False(t, trip.CreatedAt.IsZero())
	assert.Equal(t, stored, trip)
}

func TestCreateTripValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := usecase.NewTripUC(mocks.NewMockTripRepo(ctrl))

	cases := []models.CreateTripRequest{
		{MatchID: "m1", RiderID: "r1", Fare: 10},
		{MatchID: "m1", DriverID: "d1", Fare: 10},
		{DriverID: "d1", RiderID: "r1", Fare: 10},
		{MatchID: "m1", DriverID: "d1", RiderID: "r1", Fare: -1},
	}
	for _, req := range cases {
		req := req
		_, err := uc.CreateTrip(context.Background(), &req)
		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	}
}

func TestGetTripRequiresID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := usecase.NewTripUC(mocks.NewMockTripRepo(ctrl))

	_, err := uc.GetTrip(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}
