package routes

import (
	"net/http"
	"time"

	"tripwise/handlers"
	"tripwise/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the handlers the router needs.
type HandlerBundle struct {
	Planner *handlers.PlannerHandler
	Catalog *handlers.CatalogHandler
}

// RegisterPlannerRoutes registers the conversational planner endpoints.
func RegisterPlannerRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/planner")
	{
		api.POST("/sessions", hb.Planner.StartSession)
		api.POST("/sessions/:sessionID/turns", hb.Planner.SubmitTurn)
		api.DELETE("/sessions/:sessionID", hb.Planner.EndSession)
	}
}

// RegisterCatalogRoutes registers the read-only catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/packages")
	{
		api.GET("", hb.Catalog.ListPackages)
		api.GET("/:id", hb.Catalog.GetPackage)
		api.POST("/match", hb.Planner.MatchPackages)
	}
	r.GET("/api/destinations", hb.Catalog.ListDestinations)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPlannerRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterHealthRoute(r)
}
