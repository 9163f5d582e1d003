package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nasayimclean/webapi/internal/api/middleware"
	"github.com/nasayimclean/webapi/internal/notify"
	"github.com/nasayimclean/webapi/internal/service"
	"github.com/nasayimclean/webapi/internal/template"
	pkgerrors "github.com/nasayimclean/webapi/pkg/errors"
)

// ScheduleNotificationRequest wraps a notification with a delivery delay
type ScheduleNotificationRequest struct {
	service.NotificationRequest
	DelayMinutes int `json:"delay_minutes" binding:"required,min=1"`
}

// HandleSendNotification handles POST /v1/notifications/send
func HandleSendNotification(senders map[template.Channel]notify.Sender, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req service.NotificationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		notificationService := service.NewNotificationService(senders, logger)
		results, err := notificationService.SendNotification(c.Request.Context(), req)
		if err != nil {
			if _, ok := err.(*pkgerrors.ErrNotFound); ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
				return
			}
			if _, ok := err.(*pkgerrors.ErrValidation); ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Failed to send notification", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"results": results})
	}
}

// HandleScheduleNotification handles POST /v1/notifications/schedule
func HandleScheduleNotification(senders map[template.Channel]notify.Sender, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req ScheduleNotificationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		notificationService := service.NewNotificationService(senders, logger)
		jobID, err := notificationService.ScheduleNotification(c.Request.Context(), req.NotificationRequest, req.DelayMinutes)
		if err != nil {
			if _, ok := err.(*pkgerrors.ErrNotFound); ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
				return
			}
			logger.Error("Failed to schedule notification", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"job_id": jobID})
	}
}

// HandleListTemplates handles GET /v1/notifications/templates
func HandleListTemplates(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		templates := template.Templates()

		responses := make([]gin.H, len(templates))
		for i, t := range templates {
			entry := gin.H{
				"id":        t.ID,
				"name":      t.Name,
				"type":      t.Type,
				"channels":  t.Channels,
				"variables": t.Variables,
			}
			if t.Timing != nil {
				entry["timing"] = gin.H{"before": t.Timing.Before, "after": t.Timing.After}
			}
			responses[i] = entry
		}

		c.JSON(http.StatusOK, gin.H{"templates": responses})
	}
}
