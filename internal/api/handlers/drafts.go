package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shsakib002/e-comm/internal/service"
)

// HandleCreateDraft handles POST /v1/drafts
func HandleCreateDraft(drafts *service.DraftService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CreateDraftRequest
		// the body is optional; an empty one opens a fresh draft
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error":   "validation failed",
					"details": err.Error(),
				})
				return
			}
		}

		view, err := drafts.CreateDraft(c.Request.Context(), req.OrderID)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, view)
	}
}

// HandleGetDraft handles GET /v1/drafts/:id
func HandleGetDraft(drafts *service.DraftService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := drafts.GetDraft(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// HandleAddItem handles POST /v1/drafts/:id/items
func HandleAddItem(drafts *service.DraftService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		view, err := drafts.AddItem(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// HandleRemoveItem handles DELETE /v1/drafts/:id/items?product_id=&variant_value=
func HandleRemoveItem(drafts *service.DraftService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Query("product_id")
		if productID == "" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "product_id is required"})
			return
		}

		view, err := drafts.RemoveItem(c.Request.Context(), c.Param("id"), productID, c.Query("variant_value"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// HandleRemoveLine handles DELETE /v1/drafts/:id/items/:lineId
func HandleRemoveLine(drafts *service.DraftService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := drafts.RemoveLine(c.Request.Context(), c.Param("id"), c.Param("lineId"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// HandleSetShipping handles PUT /v1/drafts/:id/shipping
func HandleSetShipping(drafts *service.DraftService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.SetShippingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		view, err := drafts.SetShipping(c.Request.Context(), c.Param("id"), *req.Amount)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// HandleSubmitDraft handles POST /v1/drafts/:id/submit
func HandleSubmitDraft(drafts *service.DraftService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.SubmitOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		order, err := drafts.Submit(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
