package allocation

import (
	"flightdesk/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAllocationRoutes(rg *gin.RouterGroup, controller *Controller) {
	fl := rg.Group("/flights")
	fl.Use(middleware.JWTAuth(), middleware.RequireRoles("AGENT", "SUPERVISOR", "ADMIN"))
	{
		fl.POST("/:id/groups", controller.AllocateGroup)     // POST /api/v1/flights/:id/groups
		fl.POST("/:id/families", controller.AllocateFamily)  // POST /api/v1/flights/:id/families
		fl.GET("/:id/groups", controller.GroupedPassengers)  // GET /api/v1/flights/:id/groups
		fl.GET("/:id/families", controller.FamilyPassengers) // GET /api/v1/flights/:id/families
	}

	// Bulk clears are supervisor actions; the caller confirms against the
	// affected set returned by the GET endpoints above.
	adminFl := rg.Group("/admin/flights")
	adminFl.Use(middleware.JWTAuth(), middleware.RequireRoles("SUPERVISOR", "ADMIN"))
	{
		adminFl.DELETE("/:id/groups", controller.ClearGroupSeating)    // DELETE /api/v1/admin/flights/:id/groups
		adminFl.DELETE("/:id/families", controller.ClearFamilySeating) // DELETE /api/v1/admin/flights/:id/families
	}
}
