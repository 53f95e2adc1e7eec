package flights

import (
	"flightdesk/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupFlightRoutes(rg *gin.RouterGroup, controller *Controller) {
	fl := rg.Group("/flights")
	fl.Use(middleware.JWTAuth(), middleware.RequireRoles("AGENT", "SUPERVISOR", "ADMIN"))
	{
		fl.GET("", controller.ListFlights)     // GET /api/v1/flights
		fl.GET("/:id", controller.GetFlight)   // GET /api/v1/flights/:id
	}

	adminFlights := rg.Group("/admin/flights")
	adminFlights.Use(middleware.JWTAuth(), middleware.RequireRoles("SUPERVISOR", "ADMIN"))
	{
		adminFlights.PUT("/:id/status", controller.UpdateFlightStatus) // PUT /api/v1/admin/flights/:id/status
	}
}
