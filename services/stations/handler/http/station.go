package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/lastmile/dispatch/internal/pkg/apperrors"
	"github.com/lastmile/dispatch/internal/pkg/models"
	"github.com/lastmile/dispatch/internal/utils"
	"github.com/lastmile/dispatch/services/stations"
)

// StationHandler handles HTTP requests for station operations
type StationHandler struct {
	stationUC stations.StationUC
}

// NewStationHandler creates a new station HTTP handler
func NewStationHandler(stationUC stations.StationUC) *StationHandler {
	return &StationHandler{stationUC: stationUC}
}

// UpsertStation handles the administrative station ingestion endpoint
func (h *StationHandler) UpsertStation(c echo.Context) error {
	var station models.Station
	if err := c.Bind(&station); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.stationUC.UpsertStation(c.Request().Context(), &station); err != nil {
		if apperrors.KindOf(err) == apperrors.KindValidation {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to store station")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Station stored", station)
}

// GetStation handles station lookup by id
func (h *StationHandler) GetStation(c echo.Context) error {
	stationID := c.Param("stationID")

	station, err := h.stationUC.GetStation(c.Request().Context(), stationID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return c.JSON(http.StatusOK, utils.Response{Success: false, Message: "Station not found"})
		}
		if apperrors.KindOf(err) == apperrors.KindValidation {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to get station")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Station found", station)
}

// NearbyStations handles radius queries around a coordinate
func (h *StationHandler) NearbyStations(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "latitude is required and must be a number")
	}
	lon, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "longitude is required and must be a number")
	}

	radiusM := 0.0
	if raw := c.QueryParam("radius_m"); raw != "" {
		radiusM, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "radius_m must be a number")
		}
	}

	nearby, err := h.stationUC.NearbyStations(c.Request().Context(), lat, lon, radiusM)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindValidation {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to query stations")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby stations", nearby)
}

// StationsAlongRoute handles route-geometry lookups between two stations
func (h *StationHandler) StationsAlongRoute(c echo.Context) error {
	originID := c.QueryParam("origin")
	destinationID := c.QueryParam("destination")
	if originID == "" || destinationID == "" {
		return utils.BadRequestResponse(c, "origin and destination are required")
	}

	route, err := h.stationUC.StationsAlongRoute(c.Request().Context(), originID, destinationID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return c.JSON(http.StatusOK, utils.Response{Success: false, Message: "Endpoint station not found"})
		}
		return utils.InternalServerErrorResponse(c, "Failed to resolve route")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route resolved", route)
}

// RegisterRoutes registers the station handler routes
func (h *StationHandler) RegisterRoutes(e *echo.Echo, internal *echo.Group) {
	e.GET("/stations/:stationID", h.GetStation)
	e.GET("/stations/nearby", h.NearbyStations)

	internal.PUT("/stations", h.UpsertStation)
	internal.GET("/stations/route", h.StationsAlongRoute)
}
