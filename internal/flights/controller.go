package flights

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

func (c *Controller) ListFlights(ctx *gin.Context) {
	list, err := c.service.ListFlights(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list flights", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Flights retrieved successfully", list, nil)
}

func (c *Controller) GetFlight(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Flight ID is required", nil, "missing flight ID")
		return
	}

	flight, err := c.service.GetFlight(ctx.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrFlightNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get flight", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Flight retrieved successfully", flight, nil)
}

func (c *Controller) UpdateFlightStatus(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Flight ID is required", nil, "missing flight ID")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required,oneof=SCHEDULED BOARDING DEPARTED CANCELLED"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	flight, err := c.service.UpdateStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, ErrFlightNotFound) {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to update flight status", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Flight status updated successfully", flight, nil)
}
