package seatlock

import (
	"flightdesk/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupSeatLockRoutes(rg *gin.RouterGroup, controller *Controller) {
	locks := rg.Group("/flights/:id/seat-locks")
	locks.Use(middleware.JWTAuth(), middleware.RequireRoles("AGENT", "SUPERVISOR", "ADMIN"))
	{
		locks.GET("", controller.CheckSeatLock)      // GET /api/v1/flights/:id/seat-locks?seat=4C
		locks.POST("", controller.LockSeat)          // POST /api/v1/flights/:id/seat-locks
		locks.DELETE("", controller.UnlockSeat)      // DELETE /api/v1/flights/:id/seat-locks
	}
}
