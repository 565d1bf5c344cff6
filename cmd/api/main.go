package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"property-analyst/internal/activity"
	"property-analyst/internal/auth"
	"property-analyst/internal/config"
	"property-analyst/internal/database"
	"property-analyst/internal/handlers"
	"property-analyst/internal/scheduler"
	"property-analyst/internal/search"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	db           *database.DB
	appConfig    *config.Config
	authService  *auth.Service
	quickSearch  *search.QuickSearchClient
	appScheduler *scheduler.Scheduler
)

func main() {
	// Load .env for local dev; in production env vars are injected directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	configPath := getEnv("CONFIG_PATH", "config/config.yaml")
	var err error
	appConfig, err = config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: Failed to load config from %s: %v. Using defaults.", configPath, err)
		appConfig = config.DefaultConfig()
	} else {
		log.Printf("Loaded configuration from %s", configPath)
	}

	// Database
	dbType := appConfig.Database.Type
	if envType := os.Getenv("DB_TYPE"); envType != "" {
		dbType = envType
		appConfig.Database.Type = envType
	}
	log.Printf("Using %s database", dbType)

	db, err = database.New(appConfig.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.InitSchema(); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	// Auth
	secret := getEnv("JWT_SECRET", appConfig.Auth.JWTSecret)
	if secret == "" {
		log.Fatal("JWT_SECRET is required (env var or auth.jwt_secret in config)")
	}
	authService = auth.NewService(secret, appConfig.Auth.TokenTTL())

	activityLogger := activity.NewLogger(db)

	// Optional quick-search index
	if appConfig.Search.QuickSearchEnabled() {
		quickSearch = search.NewQuickSearchClient(
			appConfig.Search.Meilisearch.Host,
			appConfig.Search.Meilisearch.APIKey,
		)
		if err := quickSearch.InitIndex(); err != nil {
			log.Printf("Warning: Failed to initialize quick-search index: %v", err)
		}

		appScheduler = scheduler.NewScheduler(db.DB(), quickSearch, appConfig)
		if err := appScheduler.Start(); err != nil {
			log.Printf("Warning: Failed to start scheduler: %v", err)
		}
		defer appScheduler.Stop()
	}

	// Setup Gin router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     appConfig.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/api/health", healthCheck)

	authHandler := handlers.NewAuthHandler(db, authService)
	r.POST("/api/auth/register", authHandler.Register)
	r.POST("/api/auth/login", authHandler.Login)

	propertyHandler := handlers.NewPropertyHandler(db, activityLogger)
	ownerHandler := handlers.NewOwnerHandler(db, activityLogger)

	api := r.Group("/api", auth.Middleware(authService))
	{
		api.GET("/properties", propertyHandler.List)
		api.GET("/properties/search", propertyHandler.Search)
		api.GET("/properties/:id", propertyHandler.Get)
		api.POST("/properties", propertyHandler.Create)
		api.PUT("/properties/:id", propertyHandler.Update)
		api.DELETE("/properties/:id", propertyHandler.Delete)
		api.GET("/properties/:id/logs", propertyHandler.GetLogs)

		api.GET("/properties/:id/owners", ownerHandler.List)
		api.POST("/properties/:id/owners", ownerHandler.Add)
		api.PUT("/owners/:id", ownerHandler.Update)
		api.DELETE("/owners/:id", ownerHandler.Delete)

		if quickSearch != nil {
			quickHandler := handlers.NewQuickSearchHandler(db, quickSearch)
			api.GET("/search/quick", quickHandler.Quick)
			api.POST("/search/reindex", quickHandler.Reindex)
			log.Println("Quick-search routes registered at /api/search/*")
		}
	}

	port := getEnv("PORT", appConfig.Server.Port)
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now(),
	})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
