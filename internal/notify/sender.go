package notify

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nasayimclean/webapi/internal/template"
)

// Result reports the outcome of a single channel delivery attempt
type Result struct {
	Success   bool             `json:"success"`
	MessageID string           `json:"message_id,omitempty"`
	Channel   template.Channel `json:"channel"`
	Error     string           `json:"error,omitempty"`
}

// Sender delivers a rendered message on one channel. The bundled
// implementations are logging stand-ins for the real SMS/WhatsApp/email
// providers: they log the payload, return a synthetic message id and never
// actually deliver anything.
type Sender interface {
	Channel() template.Channel
	Send(ctx context.Context, recipient, message string) (*Result, error)
}

type smsSender struct {
	logger *zap.Logger
}

// NewSMSSender creates the SMS provider stub
func NewSMSSender(logger *zap.Logger) *smsSender {
	return &smsSender{logger: logger}
}

func (s *smsSender) Channel() template.Channel {
	return template.ChannelSMS
}

func (s *smsSender) Send(ctx context.Context, recipient, message string) (*Result, error) {
	s.logger.Info("Sending SMS",
		zap.String("recipient", recipient),
		zap.String("message", message),
	)
	return &Result{
		Success:   true,
		MessageID: fmt.Sprintf("sms_%s", uuid.NewString()),
		Channel:   template.ChannelSMS,
	}, nil
}

type whatsAppSender struct {
	logger *zap.Logger
}

// NewWhatsAppSender creates the WhatsApp provider stub
func NewWhatsAppSender(logger *zap.Logger) *whatsAppSender {
	return &whatsAppSender{logger: logger}
}

func (s *whatsAppSender) Channel() template.Channel {
	return template.ChannelWhatsApp
}

func (s *whatsAppSender) Send(ctx context.Context, recipient, message string) (*Result, error) {
	s.logger.Info("Sending WhatsApp message",
		zap.String("recipient", recipient),
		zap.String("message", message),
	)
	return &Result{
		Success:   true,
		MessageID: fmt.Sprintf("wa_%s", uuid.NewString()),
		Channel:   template.ChannelWhatsApp,
	}, nil
}

type emailSender struct {
	logger *zap.Logger
}

// NewEmailSender creates the email provider stub
func NewEmailSender(logger *zap.Logger) *emailSender {
	return &emailSender{logger: logger}
}

func (s *emailSender) Channel() template.Channel {
	return template.ChannelEmail
}

func (s *emailSender) Send(ctx context.Context, recipient, message string) (*Result, error) {
	s.logger.Info("Sending email",
		zap.String("recipient", recipient),
		zap.String("message", message),
	)
	return &Result{
		Success:   true,
		MessageID: fmt.Sprintf("email_%s", uuid.NewString()),
		Channel:   template.ChannelEmail,
	}, nil
}

// NewSenders returns the full set of channel stubs keyed by channel
func NewSenders(logger *zap.Logger) map[template.Channel]Sender {
	return map[template.Channel]Sender{
		template.ChannelSMS:      NewSMSSender(logger),
		template.ChannelWhatsApp: NewWhatsAppSender(logger),
		template.ChannelEmail:    NewEmailSender(logger),
	}
}
