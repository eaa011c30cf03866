package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shsakib002/e-comm/internal/repository"
	"github.com/shsakib002/e-comm/internal/service"
)

// HandleListProducts handles GET /v1/products?q=&status=
func HandleListProducts(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	catalog := service.NewCatalogService(repos, logger)
	return func(c *gin.Context) {
		products, err := catalog.ListProducts(c.Request.Context(), c.Query("q"), c.Query("status"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

// HandleGetProduct handles GET /v1/products/:id
func HandleGetProduct(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	catalog := service.NewCatalogService(repos, logger)
	return func(c *gin.Context) {
		product, err := catalog.GetProduct(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// HandleCreateProduct handles POST /v1/products
func HandleCreateProduct(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	catalog := service.NewCatalogService(repos, logger)
	return func(c *gin.Context) {
		var req service.CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		product, err := catalog.CreateProduct(c.Request.Context(), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
