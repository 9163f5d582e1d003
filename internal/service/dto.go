package service

import (
	"github.com/nasayimclean/webapi/internal/i18n"
	"github.com/nasayimclean/webapi/internal/template"
)

// NotificationRequest is the payload for a templated notification
type NotificationRequest struct {
	TemplateID  string             `json:"template_id" binding:"required"`
	PhoneNumber string             `json:"phone_number" binding:"required"`
	Variables   map[string]string  `json:"variables"`
	Channels    []template.Channel `json:"channels" binding:"required,min=1"`
	Language    i18n.Language      `json:"language" binding:"required"`
}

// PromotionQuote is the result of validating a promotion against an order amount
type PromotionQuote struct {
	Code            string  `json:"code"`
	Valid           bool    `json:"valid"`
	Reason          string  `json:"reason,omitempty"`
	DiscountAmount  float64 `json:"discount_amount"`
	DiscountedTotal float64 `json:"discounted_total"`
}
