// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"flightdesk/internal/allocation"
	"flightdesk/internal/auth"
	"flightdesk/internal/cabin"
	"flightdesk/internal/flights"
	"flightdesk/internal/passengers"
	"flightdesk/internal/seatevents"
	"flightdesk/internal/seatlock"
	"flightdesk/internal/shared/config"
	"flightdesk/internal/shared/database"
	"flightdesk/internal/upgrades"
	"flightdesk/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	publisher seatevents.Publisher // optional Kafka publisher

	grid          cabin.Grid
	cacheService  cache.Service
	passengerRepo passengers.Repository // shared store for allocation and upgrades
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, publisher seatevents.Publisher) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		publisher: publisher,
		grid:      gridFromConfig(cfg),
	}
}

// gridFromConfig builds the cabin layout from configuration, falling back to
// the standard single-aisle geometry when values are out of range.
func gridFromConfig(cfg *config.Config) cabin.Grid {
	grid := cabin.DefaultGrid()
	if cfg.Cabin.Rows > 0 {
		grid.Rows = cfg.Cabin.Rows
	}
	if cfg.Cabin.PremiumRows > 0 && cfg.Cabin.PremiumRows <= grid.Rows {
		grid.PremiumRows = cfg.Cabin.PremiumRows
	}
	return grid
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// Shared dependencies
	if r.db.GetRedisClient() != nil {
		r.cacheService = cache.NewService(r.db.GetRedisClient())
	}
	r.passengerRepo = passengers.NewRepository(r.db.GetPostgreSQL())

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupFlightRoutes(api)
		r.setupPassengerRoutes(api)
		r.setupAllocationRoutes(api)
		r.setupUpgradeRoutes(api)
		r.setupSeatLockRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		// Perform health checks
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "flightdesk-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "flightdesk-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController)

	authRouter.SetupRoutes(rg)
}

// setupFlightRoutes configures flight management routes
func (r *Router) setupFlightRoutes(rg *gin.RouterGroup) {
	flightRepo := flights.NewRepository(r.db.GetPostgreSQL())
	flightService := flights.NewService(flightRepo)

	if r.cacheService != nil {
		flightService.SetCacheService(r.cacheService)
	}

	flightController := flights.NewController(flightService)

	flights.SetupFlightRoutes(rg, flightController)
}

// setupPassengerRoutes configures passenger manifest and check-in routes
func (r *Router) setupPassengerRoutes(rg *gin.RouterGroup) {
	passengerService := passengers.NewService(r.passengerRepo, r.grid)
	passengerController := passengers.NewController(passengerService)

	passengers.SetupPassengerRoutes(rg, passengerController)
}

// setupAllocationRoutes configures group and family seat allocation routes
func (r *Router) setupAllocationRoutes(rg *gin.RouterGroup) {
	allocationService := allocation.NewService(r.passengerRepo, r.grid)

	// Inject the seat-event publisher when Kafka is configured
	if r.publisher != nil {
		allocationService.SetPublisher(r.publisher)
	}

	allocationController := allocation.NewController(allocationService)

	allocation.SetupAllocationRoutes(rg, allocationController)
}

// setupUpgradeRoutes configures premium upgrade inventory routes
func (r *Router) setupUpgradeRoutes(rg *gin.RouterGroup) {
	pricing := upgrades.DefaultPricing()
	if r.config.Upsell.Currency != "" {
		pricing.Currency = r.config.Upsell.Currency
	}

	upgradeService := upgrades.NewService(r.passengerRepo, r.grid, pricing, r.config.Upsell.MaxOffers)

	if r.cacheService != nil {
		upgradeService.SetCacheService(r.cacheService)
	}
	if r.publisher != nil {
		upgradeService.SetPublisher(r.publisher)
	}

	upgradeController := upgrades.NewController(upgradeService)

	upgrades.SetupUpgradeRoutes(rg, upgradeController)
}

// setupSeatLockRoutes configures advisory seat lock routes
func (r *Router) setupSeatLockRoutes(rg *gin.RouterGroup) {
	lockService := seatlock.NewService(r.db.GetRedisClient(), r.config.Redis.SeatLockTTL)
	lockController := seatlock.NewController(lockService, r.grid)

	seatlock.SetupSeatLockRoutes(rg, lockController)
}
