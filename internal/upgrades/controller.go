package upgrades

import (
	"errors"
	"net/http"

	"flightdesk/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) GetInventory(ctx *gin.Context) {
	flightID := ctx.Param("id")
	if flightID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Flight ID is required", nil, "missing flight ID")
		return
	}

	offers, err := c.service.GetInventory(ctx.Request.Context(), flightID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get premium inventory", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Premium inventory retrieved successfully", offers, nil)
}

func (c *Controller) ApplyUpgrade(ctx *gin.Context) {
	passengerID := ctx.Param("id")
	if passengerID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Passenger ID is required", nil, "missing passenger ID")
		return
	}

	var req ApplyUpgradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	result, err := c.service.ApplyUpgrade(ctx.Request.Context(), passengerID, req)
	if err != nil {
		response.RespondJSON(ctx, "error", upgradeStatus(err), "Failed to apply upgrade", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Upgrade applied successfully", result, nil)
}

func (c *Controller) SetPreferences(ctx *gin.Context) {
	passengerID := ctx.Param("id")
	if passengerID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Passenger ID is required", nil, "missing passenger ID")
		return
	}

	var req SetPreferencesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	result, err := c.service.SetPreferences(ctx.Request.Context(), passengerID, req)
	if err != nil {
		response.RespondJSON(ctx, "error", upgradeStatus(err), "Failed to set seat preferences", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat preferences stored successfully", result, nil)
}

func (c *Controller) PremiumPassengers(ctx *gin.Context) {
	flightID := ctx.Param("id")
	if flightID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Flight ID is required", nil, "missing flight ID")
		return
	}

	list, err := c.service.PremiumPassengers(ctx.Request.Context(), flightID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list premium passengers", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Premium passengers retrieved successfully", list, nil)
}

func (c *Controller) ClearUpgrades(ctx *gin.Context) {
	flightID := ctx.Param("id")
	if flightID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Flight ID is required", nil, "missing flight ID")
		return
	}

	result, err := c.service.ClearUpgrades(ctx.Request.Context(), flightID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to clear premium upgrades", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Premium upgrades cleared successfully", result, nil)
}

func upgradeStatus(err error) int {
	switch {
	case errors.Is(err, ErrPassengerNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrSeatUnavailable):
		return http.StatusConflict
	case errors.Is(err, ErrNotPremiumSeat):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
