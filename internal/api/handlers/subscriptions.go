package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nasayimclean/webapi/internal/api/middleware"
	"github.com/nasayimclean/webapi/internal/domain"
	"github.com/nasayimclean/webapi/internal/repository"
	"github.com/nasayimclean/webapi/internal/service"
	pkgerrors "github.com/nasayimclean/webapi/pkg/errors"
)

// SubscribeRequest represents a plan enrollment payload
type SubscribeRequest struct {
	PlanID       int64               `json:"plan_id" binding:"required"`
	BillingCycle domain.BillingCycle `json:"billing_cycle" binding:"required"`
	AutoRenew    bool                `json:"auto_renew"`
}

// HandleListPlans handles GET /v1/subscriptions/plans
func HandleListPlans(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		plans, err := repos.SubscriptionPlan.ListActive(c.Request.Context())
		if err != nil {
			logger.Error("Failed to list subscription plans", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		responses := make([]gin.H, len(plans))
		for i, plan := range plans {
			responses[i] = gin.H{
				"id":                  plan.ID,
				"name":                plan.Name,
				"description":         plan.Description,
				"monthly_price":       plan.MonthlyPrice,
				"annual_price":        service.AnnualPrice(plan),
				"services_included":   plan.ServicesIncluded,
				"discount_percentage": plan.DiscountPercentage,
				"features":            plan.Features,
			}
		}

		c.JSON(http.StatusOK, gin.H{"plans": responses})
	}
}

// HandleSubscribe handles POST /v1/subscriptions
func HandleSubscribe(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req SubscribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		subscriptionService := service.NewSubscriptionService(repos, logger)
		subscription, err := subscriptionService.Subscribe(c.Request.Context(), user.ID, req.PlanID, req.BillingCycle, req.AutoRenew)
		if err != nil {
			switch err.(type) {
			case *pkgerrors.ErrNotFound:
				c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			case *pkgerrors.ErrValidation:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				logger.Error("Failed to create subscription", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":            subscription.ID,
			"plan_id":       subscription.PlanID,
			"status":        subscription.Status,
			"billing_cycle": subscription.BillingCycle,
			"start_date":    subscription.StartDate.Format("2006-01-02T15:04:05Z07:00"),
			"renewal_date":  subscription.RenewalDate.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
}

// HandleUseSubscriptionService handles POST /v1/subscriptions/:id/use
func HandleUseSubscriptionService(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		subscriptionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subscription ID"})
			return
		}

		subscriptionService := service.NewSubscriptionService(repos, logger)
		subscription, err := subscriptionService.RecordServiceUse(c.Request.Context(), subscriptionID)
		if err != nil {
			switch err.(type) {
			case *pkgerrors.ErrNotFound:
				c.JSON(http.StatusNotFound, gin.H{"error": "subscription not found"})
			case *pkgerrors.ErrValidation, *pkgerrors.ErrInvalidStateTransition:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				logger.Error("Failed to record service use", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":            subscription.ID,
			"services_used": subscription.ServicesUsed,
		})
	}
}

// HandleCancelSubscription handles POST /v1/subscriptions/:id/cancel
func HandleCancelSubscription(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		subscriptionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subscription ID"})
			return
		}

		subscriptionService := service.NewSubscriptionService(repos, logger)
		if err := subscriptionService.Cancel(c.Request.Context(), subscriptionID); err != nil {
			switch err.(type) {
			case *pkgerrors.ErrNotFound:
				c.JSON(http.StatusNotFound, gin.H{"error": "subscription not found"})
			case *pkgerrors.ErrInvalidStateTransition:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				logger.Error("Failed to cancel subscription", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
