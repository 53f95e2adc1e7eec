package upgrades

import (
	"flightdesk/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupUpgradeRoutes(rg *gin.RouterGroup, controller *Controller) {
	fl := rg.Group("/flights")
	fl.Use(middleware.JWTAuth(), middleware.RequireRoles("AGENT", "SUPERVISOR", "ADMIN"))
	{
		fl.GET("/:id/upgrades", controller.GetInventory)        // GET /api/v1/flights/:id/upgrades
		fl.GET("/:id/upgrades/holders", controller.PremiumPassengers) // GET /api/v1/flights/:id/upgrades/holders
	}

	pax := rg.Group("/passengers")
	pax.Use(middleware.JWTAuth(), middleware.RequireRoles("AGENT", "SUPERVISOR", "ADMIN"))
	{
		pax.POST("/:id/upgrade", controller.ApplyUpgrade)    // POST /api/v1/passengers/:id/upgrade
		pax.PUT("/:id/preferences", controller.SetPreferences) // PUT /api/v1/passengers/:id/preferences
	}

	adminFl := rg.Group("/admin/flights")
	adminFl.Use(middleware.JWTAuth(), middleware.RequireRoles("SUPERVISOR", "ADMIN"))
	{
		adminFl.DELETE("/:id/upgrades", controller.ClearUpgrades) // DELETE /api/v1/admin/flights/:id/upgrades
	}
}
