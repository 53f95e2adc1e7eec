package seatlock

import (
	"net/http"

	"flightdesk/internal/cabin"
	"flightdesk/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
	grid    cabin.Grid
}

func NewController(service Service, grid cabin.Grid) *Controller {
	return &Controller{service: service, grid: grid}
}

type lockRequest struct {
	Seat string `json:"seat" binding:"required"`
}

func (c *Controller) LockSeat(ctx *gin.Context) {
	flightID := ctx.Param("id")
	staffID := ctx.GetString("staff_id")

	var req lockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request payload", nil, err)
		return
	}

	if !c.grid.ValidSeat(req.Seat) {
		response.RespondJSON(ctx, "error", http.StatusUnprocessableEntity, "Invalid seat identifier", nil, nil)
		return
	}

	acquired, err := c.service.LockSeat(ctx.Request.Context(), flightID, req.Seat, staffID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to lock seat", nil, err)
		return
	}
	if !acquired {
		response.RespondJSON(ctx, "error", http.StatusConflict, "Seat is locked by another agent", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat locked", gin.H{
		"flight_id": flightID,
		"seat":      req.Seat,
		"locked_by": staffID,
	}, nil)
}

func (c *Controller) UnlockSeat(ctx *gin.Context) {
	flightID := ctx.Param("id")
	staffID := ctx.GetString("staff_id")

	var req lockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request payload", nil, err)
		return
	}

	if err := c.service.UnlockSeat(ctx.Request.Context(), flightID, req.Seat, staffID); err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to unlock seat", nil, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat unlocked", gin.H{
		"flight_id": flightID,
		"seat":      req.Seat,
	}, nil)
}

func (c *Controller) CheckSeatLock(ctx *gin.Context) {
	flightID := ctx.Param("id")
	seat := ctx.Query("seat")

	if !c.grid.ValidSeat(seat) {
		response.RespondJSON(ctx, "error", http.StatusUnprocessableEntity, "Invalid seat identifier", nil, nil)
		return
	}

	locked, holder, err := c.service.IsSeatLocked(ctx.Request.Context(), flightID, seat)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to check seat lock", nil, err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Seat lock status", gin.H{
		"flight_id": flightID,
		"seat":      seat,
		"locked":    locked,
		"locked_by": holder,
	}, nil)
}
