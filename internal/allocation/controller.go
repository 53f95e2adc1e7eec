package allocation

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

func (c *Controller) AllocateGroup(ctx *gin.Context) {
	flightID := ctx.Param("id")
	if flightID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Flight ID is required", nil, "missing flight ID")
		return
	}

	var req GroupAllocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	result, err := c.service.AllocateGroup(ctx.Request.Context(), flightID, req)
	if err != nil {
		respondAllocationError(ctx, "Failed to allocate group seating", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Group seating allocated successfully", result, nil)
}

func (c *Controller) AllocateFamily(ctx *gin.Context) {
	flightID := ctx.Param("id")
	if flightID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Flight ID is required", nil, "missing flight ID")
		return
	}

	var req FamilyAllocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	result, err := c.service.AllocateFamily(ctx.Request.Context(), flightID, req)
	if err != nil {
		respondAllocationError(ctx, "Failed to allocate family seating", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Family seating allocated successfully", result, nil)
}

func (c *Controller) GroupedPassengers(ctx *gin.Context) {
	flightID := ctx.Param("id")
	if flightID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Flight ID is required", nil, "missing flight ID")
		return
	}

	list, err := c.service.GroupedPassengers(ctx.Request.Context(), flightID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list grouped passengers", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Grouped passengers retrieved successfully", list, nil)
}

func (c *Controller) FamilyPassengers(ctx *gin.Context) {
	flightID := ctx.Param("id")
	if flightID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Flight ID is required", nil, "missing flight ID")
		return
	}

	list, err := c.service.FamilyPassengers(ctx.Request.Context(), flightID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list family passengers", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Family passengers retrieved successfully", list, nil)
}

func (c *Controller) ClearGroupSeating(ctx *gin.Context) {
	flightID := ctx.Param("id")
	if flightID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Flight ID is required", nil, "missing flight ID")
		return
	}

	result, err := c.service.ClearGroupSeating(ctx.Request.Context(), flightID)
	if err != nil {
		respondAllocationError(ctx, "Failed to clear group seating", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Group seating cleared successfully", result, nil)
}

func (c *Controller) ClearFamilySeating(ctx *gin.Context) {
	flightID := ctx.Param("id")
	if flightID == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Flight ID is required", nil, "missing flight ID")
		return
	}

	result, err := c.service.ClearFamilySeating(ctx.Request.Context(), flightID)
	if err != nil {
		respondAllocationError(ctx, "Failed to clear family seating", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Family seating cleared successfully", result, nil)
}

// respondAllocationError maps the domain error taxonomy onto HTTP statuses:
// validation is the caller's input (422), an exhausted search is a conflict
// with current occupancy (409), a partial persistence failure is a server
// fault (502 from the store's point of view).
func respondAllocationError(ctx *gin.Context, message string, err error) {
	var verr *ValidationError
	var aerr *AllocationError
	var perr *PersistenceError

	switch {
	case errors.As(err, &verr):
		response.RespondJSON(ctx, "error", http.StatusUnprocessableEntity, message, nil, verr.Reason)
	case errors.As(err, &aerr):
		response.RespondJSON(ctx, "error", http.StatusConflict, message, nil, aerr.Reason)
	case errors.As(err, &perr):
		response.RespondJSON(ctx, "error", http.StatusBadGateway, message, map[string]interface{}{
			"succeeded":   perr.Succeeded,
			"total":       perr.Total,
			"rolled_back": perr.RolledBack,
		}, err.Error())
	default:
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, message, nil, err.Error())
	}
}
