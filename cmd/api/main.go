package main

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"

	"rentadmin/internal/config"
	"rentadmin/internal/database"
	"rentadmin/internal/handlers"
	"rentadmin/internal/logger"
	"rentadmin/internal/middleware"
	"rentadmin/internal/services"
	"rentadmin/internal/validator"
	"rentadmin/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "rentadmin/internal/docs" // Import swagger docs
)

// @title           Rentadmin API
// @version         1.0
// @description     Administrative API for moderating car-rental listings.

// @host      localhost:8080
// @BasePath  /api

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(appConfig.DBPath)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	// Create schema and seed the sample catalog
	if err := dbManager.Bootstrap(); err != nil {
		return fmt.Errorf("failed to bootstrap database: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	auditService := services.NewAuditService(db)
	listingService := services.NewListingService(db, auditService)
	authService, err := services.NewAuthService(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create auth service: %w", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	listingHandler := handlers.NewListingHandler(listingService)
	auditHandler := handlers.NewAuditHandler(auditService)
	pageHandler := handlers.NewPageHandler()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Gatekeeper())

	// Embedded pages and static assets
	router.SetHTMLTemplate(template.Must(template.ParseFS(web.FS, "templates/*.html")))
	staticFS, err := fs.Sub(web.FS, "static")
	if err != nil {
		return fmt.Errorf("failed to mount static assets: %w", err)
	}
	router.StaticFS("/static", http.FS(staticFS))

	router.GET("/", pageHandler.Root)
	router.GET("/login", pageHandler.Login)
	router.GET("/dashboard", pageHandler.Dashboard)
	router.GET("/dashboard/audit-log", pageHandler.AuditLog)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API group; the gatekeeper guards the listings family
	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	listings := api.Group("/listings")
	listings.GET("", listingHandler.List)
	listings.POST("", listingHandler.Create)
	listings.GET("/:id", listingHandler.Get)
	listings.PUT("/:id", listingHandler.Update)
	listings.PATCH("/:id", listingHandler.Update)
	listings.DELETE("/:id", listingHandler.Delete)

	api.GET("/audit-log", auditHandler.List)

	log.Infof("Starting rentadmin server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
