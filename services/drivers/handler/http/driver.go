package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lastmile/dispatch/internal/pkg/apperrors"
	"github.com/lastmile/dispatch/internal/pkg/models"
	"github.com/lastmile/dispatch/internal/utils"
	"github.com/lastmile/dispatch/services/drivers"
)

// DriverHandler handles HTTP requests for driver registry operations
type DriverHandler struct {
	driverUC drivers.DriverUC
}

// NewDriverHandler creates a new driver HTTP handler
func NewDriverHandler(driverUC drivers.DriverUC) *DriverHandler {
	return &DriverHandler{driverUC: driverUC}
}

// RegisterRoute handles driver route registration
func (h *DriverHandler) RegisterRoute(c echo.Context) error {
	var req models.RegisterRouteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	route, err := h.driverUC.RegisterRoute(c.Request().Context(), &req)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindValidation {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to register route")
	}

	return c.JSON(http.StatusOK, models.RegisterRouteResponse{
		Success: true,
		Message: "Route registered",
		RouteID: route.RouteID,
	})
}

// UpdateLocation handles driver position reports
func (h *DriverHandler) UpdateLocation(c echo.Context) error {
	driverID := c.Param("driverID")

	var req models.UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	err := h.driverUC.UpdateLocation(c.Request().Context(), driverID, req.Latitude, req.Longitude)
	if err != nil {
		switch apperrors.KindOf(err) {
		case apperrors.KindValidation:
			return utils.BadRequestResponse(c, err.Error())
		case apperrors.KindNotFound:
			return c.JSON(http.StatusOK, utils.Response{Success: false, Message: err.Error()})
		default:
			return utils.InternalServerErrorResponse(c, "Failed to update location")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", nil)
}

// UpdatePickupStatus handles the pickup-in-progress flag
func (h *DriverHandler) UpdatePickupStatus(c echo.Context) error {
	driverID := c.Param("driverID")

	var req models.UpdatePickupStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	err := h.driverUC.SetPickupStatus(c.Request().Context(), driverID, req.IsPickingUp)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return c.JSON(http.StatusOK, utils.Response{Success: false, Message: err.Error()})
		}
		return utils.InternalServerErrorResponse(c, "Failed to update pickup status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pickup status updated", nil)
}

// GetDriver handles driver info lookups
func (h *DriverHandler) GetDriver(c echo.Context) error {
	driverID := c.Param("driverID")

	route, err := h.driverUC.GetDriver(c.Request().Context(), driverID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return c.JSON(http.StatusOK, utils.Response{Success: false, Message: err.Error()})
		}
		return utils.InternalServerErrorResponse(c, "Failed to get driver")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver found", route)
}

// ListDrivers returns all registered drivers
func (h *DriverHandler) ListDrivers(c echo.Context) error {
	routes, err := h.driverUC.ListDrivers(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list drivers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Registered drivers", routes)
}

// RegisterRoutes registers the driver handler routes
func (h *DriverHandler) RegisterRoutes(e *echo.Echo, mw ...echo.MiddlewareFunc) {
	driverGroup := e.Group("/drivers", mw...)
	driverGroup.POST("/routes", h.RegisterRoute)
	driverGroup.PUT("/:driverID/location", h.UpdateLocation)
	driverGroup.PUT("/:driverID/pickup", h.UpdatePickupStatus)
	driverGroup.GET("/:driverID", h.GetDriver)
	driverGroup.GET("", h.ListDrivers)
}
