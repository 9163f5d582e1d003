package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nasayimclean/webapi/internal/api/middleware"
	"github.com/nasayimclean/webapi/internal/domain"
	"github.com/nasayimclean/webapi/internal/repository"
	pkgerrors "github.com/nasayimclean/webapi/pkg/errors"
)

// ReportLocationRequest represents a technician GPS report
type ReportLocationRequest struct {
	TechnicianID int64                 `json:"technician_id" binding:"required"`
	OrderID      *int64                `json:"order_id,omitempty"`
	Latitude     float64               `json:"latitude" binding:"min=-90,max=90"`
	Longitude    float64               `json:"longitude" binding:"min=-180,max=180"`
	Accuracy     *int                  `json:"accuracy,omitempty"`
	Status       domain.TrackingStatus `json:"status" binding:"required"`
	ETAMinutes   *int                  `json:"eta_minutes,omitempty"`
}

// HandleReportLocation handles POST /v1/tracking
func HandleReportLocation(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req ReportLocationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if !req.Status.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}

		location := &domain.TechnicianLocation{
			TechnicianID: req.TechnicianID,
			OrderID:      req.OrderID,
			Latitude:     req.Latitude,
			Longitude:    req.Longitude,
			Accuracy:     req.Accuracy,
			Status:       req.Status,
		}

		if req.ETAMinutes != nil {
			eta := time.Now().Add(time.Duration(*req.ETAMinutes) * time.Minute)
			location.ETA = &eta
		}

		if err := repos.TechnicianTracking.Create(c.Request.Context(), location); err != nil {
			logger.Error("Failed to record technician location", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":     location.ID,
			"status": location.Status,
		})
	}
}

// HandleGetOrderTracking handles GET /v1/tracking/orders/:id
func HandleGetOrderTracking(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
			return
		}

		location, err := repos.TechnicianTracking.GetLatestByOrderID(c.Request.Context(), orderID)
		if err != nil {
			if _, ok := err.(*pkgerrors.ErrNotFound); ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "no tracking data"})
				return
			}
			logger.Error("Failed to get order tracking", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		response := gin.H{
			"technician_id": location.TechnicianID,
			"latitude":      location.Latitude,
			"longitude":     location.Longitude,
			"status":        location.Status,
			"updated_at":    location.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		if location.Accuracy != nil {
			response["accuracy"] = *location.Accuracy
		}
		if location.ETA != nil {
			response["eta"] = location.ETA.Format("2006-01-02T15:04:05Z07:00")
		}

		c.JSON(http.StatusOK, response)
	}
}
