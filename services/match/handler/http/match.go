package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lastmile/dispatch/internal/pkg/apperrors"
	"github.com/lastmile/dispatch/internal/pkg/models"
	"github.com/lastmile/dispatch/internal/utils"
	"github.com/lastmile/dispatch/services/match"
)

// MatchHandler handles HTTP requests for dispatch and match lifecycle
type MatchHandler struct {
	matchUC match.MatchUC
}

// NewMatchHandler creates a new match HTTP handler
func NewMatchHandler(matchUC match.MatchUC) *MatchHandler {
	return &MatchHandler{matchUC: matchUC}
}

// MatchRider handles rider match requests
func (h *MatchHandler) MatchRider(c echo.Context) error {
	var req models.MatchRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	outcome, err := h.matchUC.MatchRiderWithDriver(c.Request().Context(), &req)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindValidation {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to process match request")
	}

	if !outcome.Found {
		return c.JSON(http.StatusOK, models.MatchResponse{
			Success: false,
			Message: "No eligible driver found",
		})
	}

	return c.JSON(http.StatusOK, models.MatchResponse{
		Success:  true,
		Message:  "Driver matched",
		MatchID:  outcome.MatchID,
		DriverID: outcome.DriverID,
		Fare:     outcome.Fare,
	})
}

// AcceptMatch handles driver acceptance of a match
func (h *MatchHandler) AcceptMatch(c echo.Context) error {
	matchID := c.Param("matchID")

	var req models.MatchActionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.DriverID == "" {
		return utils.BadRequestResponse(c, "driver_id is required")
	}

	tripID, err := h.matchUC.AcceptMatch(c.Request().Context(), matchID, req.DriverID)
	if err != nil {
		switch apperrors.KindOf(err) {
		case apperrors.KindNotFound, apperrors.KindInvalidState, apperrors.KindUnavailable:
			return c.JSON(http.StatusOK, models.MatchActionResponse{
				Success: false,
				Message: err.Error(),
			})
		default:
			return utils.InternalServerErrorResponse(c, "Failed to accept match")
		}
	}

	return c.JSON(http.StatusOK, models.MatchActionResponse{
		Success: true,
		Message: "Match confirmed",
		TripID:  tripID,
	})
}

// DeclineMatch handles driver decline and reassignment
func (h *MatchHandler) DeclineMatch(c echo.Context) error {
	matchID := c.Param("matchID")

	var req models.MatchActionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.DriverID == "" {
		return utils.BadRequestResponse(c, "driver_id is required")
	}

	outcome, err := h.matchUC.DeclineMatch(c.Request().Context(), matchID, req.DriverID)
	if err != nil {
		switch apperrors.KindOf(err) {
		case apperrors.KindNotFound, apperrors.KindInvalidState:
			return c.JSON(http.StatusOK, models.MatchActionResponse{
				Success: false,
				Message: err.Error(),
			})
		default:
			return utils.InternalServerErrorResponse(c, "Failed to decline match")
		}
	}

	message := "Match reassigned to another driver"
	if !outcome.Found {
		message = "No new driver found, match cancelled"
	}

	return c.JSON(http.StatusOK, models.MatchActionResponse{
		Success: true,
		Message: message,
	})
}

// GetMatchStatus handles match status queries
func (h *MatchHandler) GetMatchStatus(c echo.Context) error {
	matchID := c.Param("matchID")

	m, err := h.matchUC.GetMatchStatus(c.Request().Context(), matchID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return c.JSON(http.StatusOK, models.MatchStatusResponse{
				Success: false,
				Message: err.Error(),
			})
		}
		return utils.InternalServerErrorResponse(c, "Failed to get match status")
	}

	return c.JSON(http.StatusOK, models.MatchStatusResponse{
		Success:  true,
		MatchID:  m.ID,
		DriverID: m.DriverID,
		RiderID:  m.RiderID,
		Status:   m.Status,
		TripID:   m.TripID,
	})
}

// RegisterRoutes registers the match handler routes
func (h *MatchHandler) RegisterRoutes(e *echo.Echo, mw ...echo.MiddlewareFunc) {
	matchGroup := e.Group("/matches", mw...)
	matchGroup.POST("", h.MatchRider)
	matchGroup.POST("/:matchID/accept", h.AcceptMatch)
	matchGroup.POST("/:matchID/decline", h.DeclineMatch)
	matchGroup.GET("/:matchID/status", h.GetMatchStatus)
}
