package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shsakib002/e-comm/internal/api/handlers"
	"github.com/shsakib002/e-comm/internal/config"
	"github.com/shsakib002/e-comm/internal/repository"
	"github.com/shsakib002/e-comm/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, repos *repository.Repositories, drafts *service.DraftService, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		v1.GET("/products", handlers.HandleListProducts(repos, logger))
		v1.GET("/products/:id", handlers.HandleGetProduct(repos, logger))
		v1.POST("/products", handlers.HandleCreateProduct(repos, logger))

		v1.GET("/orders", handlers.HandleListOrders(repos, logger))
		v1.GET("/orders/:id", handlers.HandleGetOrder(repos, logger))

		v1.GET("/dashboard", handlers.HandleDashboard(repos, logger))

		draftRoutes := v1.Group("/drafts")
		{
			draftRoutes.POST("", handlers.HandleCreateDraft(drafts, logger))
			draftRoutes.GET("/:id", handlers.HandleGetDraft(drafts, logger))
			draftRoutes.POST("/:id/items", handlers.HandleAddItem(drafts, logger))
			draftRoutes.DELETE("/:id/items", handlers.HandleRemoveItem(drafts, logger))
			draftRoutes.DELETE("/:id/items/:lineId", handlers.HandleRemoveLine(drafts, logger))
			draftRoutes.PUT("/:id/shipping", handlers.HandleSetShipping(drafts, logger))
			draftRoutes.POST("/:id/submit", handlers.HandleSubmitDraft(drafts, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
