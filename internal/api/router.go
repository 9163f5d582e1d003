package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nasayimclean/webapi/internal/api/handlers"
	"github.com/nasayimclean/webapi/internal/api/middleware"
	"github.com/nasayimclean/webapi/internal/config"
	"github.com/nasayimclean/webapi/internal/notify"
	"github.com/nasayimclean/webapi/internal/repository"
	"github.com/nasayimclean/webapi/internal/template"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, repos *repository.Repositories, senders map[template.Channel]notify.Sender, logger *zap.Logger) *gin.Engine {
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
		// Plan catalog is public marketing content
		v1.GET("/subscriptions/plans", handlers.HandleListPlans(repos, logger))

		// Authenticated routes
		authRoutes := v1.Group("")
		authRoutes.Use(middleware.AuthMiddleware(repos, logger))
		{
			authRoutes.POST("/chat/conversations", handlers.HandleStartConversation(repos, logger))
			authRoutes.GET("/chat/conversations", handlers.HandleGetConversations(repos, logger))
			authRoutes.POST("/chat/conversations/:id/messages", handlers.HandleSendMessage(repos, logger))
			authRoutes.POST("/chat/conversations/:id/close", handlers.HandleCloseConversation(repos, logger))
			authRoutes.POST("/chat/conversations/:id/mark-read", handlers.HandleMarkAsRead(repos, logger))

			authRoutes.POST("/ratings", handlers.HandleCreateRating(repos, logger))
			authRoutes.GET("/technicians/:id/ratings", handlers.HandleListTechnicianRatings(repos, logger))

			authRoutes.POST("/promotions/validate", handlers.HandleValidatePromotion(repos, logger))
			authRoutes.POST("/promotions/apply", handlers.HandleApplyPromotion(repos, logger))

			authRoutes.POST("/subscriptions", handlers.HandleSubscribe(repos, logger))
			authRoutes.POST("/subscriptions/:id/use", handlers.HandleUseSubscriptionService(repos, logger))
			authRoutes.POST("/subscriptions/:id/cancel", handlers.HandleCancelSubscription(repos, logger))

			authRoutes.POST("/tracking", handlers.HandleReportLocation(repos, logger))
			authRoutes.GET("/tracking/orders/:id", handlers.HandleGetOrderTracking(repos, logger))

			authRoutes.GET("/notifications/templates", handlers.HandleListTemplates(logger))
			authRoutes.POST("/notifications/send", handlers.HandleSendNotification(senders, logger))
			authRoutes.POST("/notifications/schedule", handlers.HandleScheduleNotification(senders, logger))
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
