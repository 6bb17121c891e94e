package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lastmile/dispatch/internal/pkg/apperrors"
	"github.com/lastmile/dispatch/internal/utils"
	"github.com/lastmile/dispatch/services/trips"
)

// TripHandler handles HTTP requests for trip lookups
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip HTTP handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{tripUC: tripUC}
}

// GetTrip handles trip lookup by id
func (h *TripHandler) GetTrip(c echo.Context) error {
	tripID := c.Param("tripID")

	trip, err := h.tripUC.GetTrip(c.Request().Context(), tripID)
	if err != nil {
		switch apperrors.KindOf(err) {
		case apperrors.KindNotFound:
			return c.JSON(http.StatusOK, utils.Response{Success: false, Message: err.Error()})
		case apperrors.KindValidation:
			return utils.BadRequestResponse(c, err.Error())
		default:
			return utils.InternalServerErrorResponse(c, "Failed to get trip")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip found", trip)
}

// RegisterRoutes registers the trip handler routes
func (h *TripHandler) RegisterRoutes(internal *echo.Group) {
	internal.GET("/trips/:tripID", h.GetTrip)
}
