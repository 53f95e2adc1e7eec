package passengers

import (
	"flightdesk/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupPassengerRoutes(rg *gin.RouterGroup, controller *Controller) {
	pax := rg.Group("/passengers")
	pax.Use(middleware.JWTAuth(), middleware.RequireRoles("AGENT", "SUPERVISOR", "ADMIN"))
	{
		pax.POST("", controller.CreatePassenger)      // POST /api/v1/passengers
		pax.GET("/:id", controller.GetPassenger)      // GET /api/v1/passengers/:id
		pax.PUT("/:id", controller.UpdatePassenger)   // PUT /api/v1/passengers/:id
		pax.POST("/:id/check-in", controller.CheckIn) // POST /api/v1/passengers/:id/check-in
	}

	adminPax := rg.Group("/admin/passengers")
	adminPax.Use(middleware.JWTAuth(), middleware.RequireRoles("SUPERVISOR", "ADMIN"))
	{
		adminPax.DELETE("/:id", controller.DeletePassenger) // DELETE /api/v1/admin/passengers/:id
	}

	flights := rg.Group("/flights")
	flights.Use(middleware.JWTAuth(), middleware.RequireRoles("AGENT", "SUPERVISOR", "ADMIN"))
	{
		// Param name must match the flights routes mounted on the same group.
		flights.GET("/:id/passengers", controller.ListByFlight) // GET /api/v1/flights/:id/passengers
	}
}
