package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"djbooking-backend/internal/shared/middleware"
	"djbooking-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// BodyCapture runs before the handlers so the error log can attach
	// the request payload when a mutation fails.
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.BodyCapture(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupArtistRoutes(v1, c)
		setupEventRoutes(v1, c)
		setupStyleRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
	}
}

// ========================================
// ARTIST ROUTES
// ========================================
func setupArtistRoutes(v1 *gin.RouterGroup, c *container.Container) {
	artists := v1.Group("/artists")
	{
		artists.GET("", c.ArtistHandler.Search)
		artists.GET("/:id", c.ArtistHandler.GetByID)

		// Mutations require an authenticated principal.
		artists.POST("", middleware.AuthMiddleware(c.JWTManager), c.ArtistHandler.Create)
		artists.PUT("/:id", middleware.AuthMiddleware(c.JWTManager), c.ArtistHandler.Update)
	}
}

// ========================================
// EVENT ROUTES
// ========================================
func setupEventRoutes(v1 *gin.RouterGroup, c *container.Container) {
	events := v1.Group("/events")
	{
		events.GET("", c.EventHandler.List)
		events.GET("/:id", c.EventHandler.GetByID)

		events.POST("", middleware.AuthMiddleware(c.JWTManager), c.EventHandler.Create)
		events.PUT("/:id", middleware.AuthMiddleware(c.JWTManager), c.EventHandler.Update)
		events.DELETE("/:id", middleware.AuthMiddleware(c.JWTManager), c.EventHandler.Delete)
	}
}

// ========================================
// STYLE ROUTES
// ========================================
func setupStyleRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/styles", c.StyleHandler.List)
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		dbStatus := "up"
		cacheStatus := "up"

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			dbStatus = "down"
		}

		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			cacheStatus = "down"
		}

		ctx.JSON(status, gin.H{
			"status":   "ok",
			"version":  c.Config.App.Version,
			"database": dbStatus,
			"cache":    cacheStatus,
		})
	}
}
