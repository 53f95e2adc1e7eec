package passengers

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

func (c *Controller) CreatePassenger(ctx *gin.Context) {
	var req CreatePassengerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	passenger, err := c.service.CreatePassenger(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create passenger", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Passenger created successfully", passenger, nil)
}

func (c *Controller) GetPassenger(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Passenger ID is required", nil, "missing passenger ID")
		return
	}

	passenger, err := c.service.GetPassenger(ctx.Request.Context(), id)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to get passenger", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Passenger retrieved successfully", passenger, nil)
}

func (c *Controller) ListByFlight(ctx *gin.Context) {
	flightID := ctx.Param("id")
	if flightID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Flight ID is required", nil, "missing flight ID")
		return
	}

	list, err := c.service.ListByFlight(ctx.Request.Context(), flightID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list passengers", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Passengers retrieved successfully", list, nil)
}

func (c *Controller) UpdatePassenger(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Passenger ID is required", nil, "missing passenger ID")
		return
	}

	var req UpdatePassengerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	passenger, err := c.service.UpdatePassenger(ctx.Request.Context(), id, req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to update passenger", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Passenger updated successfully", passenger, nil)
}

func (c *Controller) CheckIn(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Passenger ID is required", nil, "missing passenger ID")
		return
	}

	var req CheckInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	passenger, err := c.service.CheckIn(ctx.Request.Context(), id, req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to check in passenger", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Passenger checked in successfully", passenger, nil)
}

func (c *Controller) DeletePassenger(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Passenger ID is required", nil, "missing passenger ID")
		return
	}

	if err := c.service.DeletePassenger(ctx.Request.Context(), id); err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to delete passenger", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Passenger deleted successfully", nil, nil)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrPassengerNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrSeatOccupied), errors.Is(err, ErrAlreadyCheckedIn):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
