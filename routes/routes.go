package routes

import (
	"github.com/LovationAdmin/buildadvisor-api/handlers"
	"github.com/LovationAdmin/buildadvisor-api/middleware"
	"github.com/LovationAdmin/buildadvisor-api/services"

	"github.com/gin-gonic/gin"
)

// SetupAdvisorRoutes sets up the public catalog and evaluation routes.
func SetupAdvisorRoutes(rg *gin.RouterGroup, advisor *services.AdvisorService) {
	h := handlers.NewAdvisorHandler(advisor)

	rg.GET("/catalog", h.GetCatalog)
	rg.GET("/catalog/:category", h.GetCatalogCategory)
	rg.GET("/presets", h.GetPresets)

	rg.POST("/evaluate", h.Evaluate)
	rg.POST("/evaluate/upgrades", h.Upgrades)
	rg.POST("/evaluate/alternatives", h.Alternatives)
}

// SetupBuildRoutes sets up protected saved-build routes.
func SetupBuildRoutes(rg *gin.RouterGroup, store handlers.BuildStore, advisor *services.AdvisorService, ws handlers.Broadcaster) {
	h := handlers.NewBuildHandler(store, advisor, ws)

	rg.GET("/builds", h.List)
	rg.POST("/builds", h.Create)
	rg.GET("/builds/:id", h.Get)
	rg.PUT("/builds/:id", h.Update)
	rg.DELETE("/builds/:id", h.Delete)
	rg.GET("/builds/:id/evaluation", h.Evaluate)
}

// SetupAdminRoutes sets up maintenance routes guarded by the admin token.
func SetupAdminRoutes(rg *gin.RouterGroup, store handlers.BuildStore, advisor *services.AdvisorService, adminToken string) {
	h := handlers.NewAdminHandler(store, advisor)

	admin := rg.Group("/admin")
	admin.Use(middleware.AdminMiddleware(adminToken))
	admin.POST("/builds/rescore", h.Rescore)
}

// SetupWSRoutes sets up the live build update channel.
func SetupWSRoutes(rg *gin.RouterGroup, ws *handlers.WSHandler) {
	rg.GET("/ws/builds/:id", ws.HandleWS)
}
