package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nasayimclean/webapi/internal/api/middleware"
	"github.com/nasayimclean/webapi/internal/repository"
	"github.com/nasayimclean/webapi/internal/service"
)

// ValidatePromotionRequest represents a promotion check against an order amount
type ValidatePromotionRequest struct {
	Code        string  `json:"code" binding:"required"`
	OrderAmount float64 `json:"order_amount" binding:"required,min=0"`
}

// HandleValidatePromotion handles POST /v1/promotions/validate
func HandleValidatePromotion(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req ValidatePromotionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		promotionService := service.NewPromotionService(repos, logger)
		quote, err := promotionService.ValidatePromotion(c.Request.Context(), req.Code, req.OrderAmount)
		if err != nil {
			logger.Error("Failed to validate promotion", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, quote)
	}
}

// HandleApplyPromotion handles POST /v1/promotions/apply
func HandleApplyPromotion(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req ValidatePromotionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		promotionService := service.NewPromotionService(repos, logger)
		quote, err := promotionService.ApplyPromotion(c.Request.Context(), req.Code, req.OrderAmount)
		if err != nil {
			logger.Error("Failed to apply promotion", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, quote)
	}
}
