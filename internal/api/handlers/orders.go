package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shsakib002/e-comm/internal/repository"
	"github.com/shsakib002/e-comm/internal/service"
)

// HandleListOrders handles GET /v1/orders?status=
func HandleListOrders(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	orders := service.NewOrderService(repos, logger)
	return func(c *gin.Context) {
		list, err := orders.ListOrders(c.Request.Context(), c.Query("status"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": list})
	}
}

// HandleGetOrder handles GET /v1/orders/:id
func HandleGetOrder(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	orders := service.NewOrderService(repos, logger)
	return func(c *gin.Context) {
		order, err := orders.GetOrder(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// HandleDashboard handles GET /v1/dashboard
func HandleDashboard(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	dashboard := service.NewDashboardService(repos, logger)
	return func(c *gin.Context) {
		summary, err := dashboard.Summary(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}
