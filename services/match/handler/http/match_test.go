package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lastmile/dispatch/internal/pkg/apperrors"
	"github.com/lastmile/dispatch/internal/pkg/models"
	matchhttp "github.com/lastmile/dispatch/services/match/handler/http"
	"github.com/lastmile/dispatch/services/match/mocks"
)

func performRequest(h echo.HandlerFunc, method, path, body string, params map[string]string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for name, value := range params {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	_ = h(c)
	return rec
}

func TestMatchRiderFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockMatchUC(ctrl)
	handler := matchhttp.NewMatchHandler(uc)

	uc.EXPECT().
		MatchRiderWithDriver(gomock.Any(), &models.MatchRequest{
			RiderID:       "rider-1",
			PickupStation: "S3",
			Destination:   "S5",
		}).
		Return(&models.MatchOutcome{
			Found:    true,
			MatchID:  "match-1",
			DriverID: "d1",
			Fare:     120,
		}, nil)

	body := `{"rider_id":"rider-1","pickup_station":"S3","destination":"S5"}`
	rec := performRequest(handler.MatchRider, http.MethodPost, "/matches", body, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp models.MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "match-1", resp.MatchID)
	assert.Equal(t, "d1", resp.DriverID)
	assert.Equal(t, 120, resp.Fare)
}

func TestMatchRiderNoDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockMatchUC(ctrl)
	handler := matchhttp.NewMatchHandler(uc)

	uc.EXPECT().
		MatchRiderWithDriver(gomock.Any(), gomock.Any()).
		Return(&models.MatchOutcome{Found: false}, nil)

	body := `{"rider_id":"rider-1","pickup_station":"S3","destination":"S5"}`
	rec := performRequest(handler.MatchRider, http.MethodPost, "/matches", body, nil)

	// business failure, not a transport failure
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp models.MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

func TestMatchRiderValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockMatchUC(ctrl)
	handler := matchhttp.NewMatchHandler(uc)

	uc.EXPECT().
		MatchRiderWithDriver(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Validation("rider id is required"))

	rec := performRequest(handler.MatchRider, http.MethodPost, "/matches",
		`{"pickup_station":"S3","destination":"S5"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAcceptMatchConfirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockMatchUC(ctrl)
	handler := matchhttp.NewMatchHandler(uc)

	uc.EXPECT().
		AcceptMatch(gomock.Any(), "match-1", "d1").
		Return("trip-1", nil)

	rec := performRequest(handler.AcceptMatch, http.MethodPost, "/matches/match-1/accept",
		`{"driver_id":"d1"}`, map[string]string{"matchID": "match-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp models.MatchActionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "trip-1", resp.TripID)
}

func TestAcceptMatchInvalidState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockMatchUC(ctrl)
	handler := matchhttp.NewMatchHandler(uc)

	uc.EXPECT().
		AcceptMatch(gomock.Any(), "match-1", "d2").
		Return("", apperrors.InvalidState("match match-1 is not valid for acceptance"))

	rec := performRequest(handler.AcceptMatch, http.MethodPost, "/matches/match-1/accept",
		`{"driver_id":"d2"}`, map[string]string{"matchID": "match-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp models.MatchActionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Empty(t, resp.TripID)
}

func TestAcceptMatchMissingDriverID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockMatchUC(ctrl)
	handler := matchhttp.NewMatchHandler(uc)

	rec := performRequest(handler.AcceptMatch, http.MethodPost, "/matches/match-1/accept",
		`{}`, map[string]string{"matchID": "match-1"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeclineMatchReassigned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockMatchUC(ctrl)
	handler := matchhttp.NewMatchHandler(uc)

	uc.EXPECT().
		DeclineMatch(gomock.Any(), "match-1", "d1").
		Return(&models.MatchOutcome{Found: true, MatchID: "match-1", DriverID: "d2"}, nil)

	rec := performRequest(handler.DeclineMatch, http.MethodPost, "/matches/match-1/decline",
		`{"driver_id":"d1"}`, map[string]string{"matchID": "match-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp models.MatchActionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "reassigned")
}

func TestDeclineMatchCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockMatchUC(ctrl)
	handler := matchhttp.NewMatchHandler(uc)

	uc.EXPECT().
		DeclineMatch(gomock.Any(), "match-1", "d1").
		Return(&models.MatchOutcome{Found: false, MatchID: "match-1"}, nil)

	rec := performRequest(handler.DeclineMatch, http.MethodPost, "/matches/match-1/decline",
		`{"driver_id":"d1"}`, map[string]string{"matchID": "match-1"})

	// cancellation is a successful decline
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp models.MatchActionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "cancelled")
}

func TestGetMatchStatusReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockMatchUC(ctrl)
	handler := matchhttp.NewMatchHandler(uc)

	uc.EXPECT().
		GetMatchStatus(gomock.Any(), "match-1").
		Return(&models.Match{
			ID:       "match-1",
			DriverID: "d1",
			RiderID:  "rider-1",
			Status:   models.MatchStatusCancelled,
		}, nil)

	rec := performRequest(handler.GetMatchStatus, http.MethodGet, "/matches/match-1/status",
		"", map[string]string{"matchID": "match-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp models.MatchStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, models.MatchStatusCancelled, resp.Status)
	assert.Empty(t, resp.TripID)
}

func TestGetMatchStatusNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockMatchUC(ctrl)
	handler := matchhttp.NewMatchHandler(uc)

	uc.EXPECT().
		GetMatchStatus(gomock.Any(), "ghost").
		Return(nil, apperrors.NotFound("match ghost not found"))

	rec := performRequest(handler.GetMatchStatus, http.MethodGet, "/matches/ghost/status",
		"", map[string]string{"matchID": "ghost"})

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp models.MatchStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}
