package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nasayimclean/webapi/internal/api/middleware"
	"github.com/nasayimclean/webapi/internal/domain"
	"github.com/nasayimclean/webapi/internal/repository"
)

// CreateRatingRequest represents the rating submission payload.
// All scores are 1-5; out-of-range values are rejected before any write.
type CreateRatingRequest struct {
	OrderID         int64   `json:"order_id" binding:"required"`
	TechnicianID    *int64  `json:"technician_id,omitempty"`
	Rating          int     `json:"rating" binding:"required,min=1,max=5"`
	Review          *string `json:"review,omitempty"`
	ServiceQuality  *int    `json:"service_quality,omitempty" binding:"omitempty,min=1,max=5"`
	Punctuality     *int    `json:"punctuality,omitempty" binding:"omitempty,min=1,max=5"`
	Professionalism *int    `json:"professionalism,omitempty" binding:"omitempty,min=1,max=5"`
}

// HandleCreateRating handles POST /v1/ratings
func HandleCreateRating(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req CreateRatingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		rating := &domain.Rating{
			OrderID:         req.OrderID,
			CustomerID:      user.ID,
			TechnicianID:    req.TechnicianID,
			Rating:          req.Rating,
			Review:          req.Review,
			ServiceQuality:  req.ServiceQuality,
			Punctuality:     req.Punctuality,
			Professionalism: req.Professionalism,
		}

		if err := repos.Rating.Create(c.Request.Context(), rating); err != nil {
			logger.Error("Failed to create rating", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":     rating.ID,
			"rating": rating.Rating,
		})
	}
}

// HandleListTechnicianRatings handles GET /v1/technicians/:id/ratings
func HandleListTechnicianRatings(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		technicianID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid technician ID"})
			return
		}

		limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
		if err != nil || limit < 1 || limit > 100 {
			limit = 50
		}
		offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil || offset < 0 {
			offset = 0
		}

		ratings, err := repos.Rating.ListByTechnicianID(c.Request.Context(), technicianID, limit, offset)
		if err != nil {
			logger.Error("Failed to list ratings", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		responses := make([]gin.H, len(ratings))
		for i, rating := range ratings {
			responses[i] = gin.H{
				"id":          rating.ID,
				"order_id":    rating.OrderID,
				"customer_id": rating.CustomerID,
				"rating":      rating.Rating,
				"review":      rating.Review,
				"is_verified": rating.IsVerified,
				"created_at":  rating.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"ratings": responses,
			"limit":   limit,
			"offset":  offset,
		})
	}
}
