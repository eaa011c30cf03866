package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shsakib002/e-comm/pkg/errors"
)

// respondError maps service errors onto HTTP responses: missing resources
// to 404, user-correctable input errors to 422, everything else to 500.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	if _, ok := err.(*errors.ErrNotFound); ok {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if errors.IsUserError(err) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	logger.Error("request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
