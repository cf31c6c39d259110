package main

import (
	"context"
	"net/http"
	"time"

	"github.com/LovationAdmin/buildadvisor-api/config"
	"github.com/LovationAdmin/buildadvisor-api/handlers"
	"github.com/LovationAdmin/buildadvisor-api/middleware"
	"github.com/LovationAdmin/buildadvisor-api/routes"
	"github.com/LovationAdmin/buildadvisor-api/services"
	"github.com/LovationAdmin/buildadvisor-api/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const version = "1.0.0"

func main() {
	if err := godotenv.Load(); err != nil {
		utils.SafeInfo("No .env file found, using environment variables")
	}
	defer utils.Logger().Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()
	log := utils.Logger().Sugar()

	catalog, err := services.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	advisor := services.NewAdvisorService(catalog, cfg.DefaultRegion())
	utils.SafeInfo("📦 Catalog loaded (%d CPUs, %d GPUs)", len(catalog.CPUs), len(catalog.GPUs))

	if utils.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	allowedOrigins := []string{cfg.FrontendURL}
	utils.SafeInfo("🌍 CORS: Allowing origins: %v", allowedOrigins)
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Admin-Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimiter(ctx, cfg.RateLimitPerMin))

	v1 := router.Group("/api/v1")
	routes.SetupAdvisorRoutes(v1, advisor)

	if cfg.DatabaseURL == "" {
		utils.SafeWarn("⚠️ DATABASE_URL not set, saved builds are disabled")
	} else {
		db, err := config.InitDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		utils.SafeInfo("✅ Database connected successfully")

		if err := config.RunMigrations(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}

		if cfg.JWTSecret == "" {
			log.Fatalf("JWT_SECRET is required when DATABASE_URL is set")
		}

		store := services.NewBuildService(db)
		wsHandler := handlers.NewWSHandler()
		defer wsHandler.Close()

		routes.SetupWSRoutes(v1, wsHandler)
		routes.SetupAdminRoutes(v1, store, advisor, cfg.AdminToken)

		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		routes.SetupBuildRoutes(protected, store, advisor, wsHandler)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": version,
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	utils.LogStartup("buildadvisor-api", version, cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
