package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nasayimclean/webapi/internal/notify"
	"github.com/nasayimclean/webapi/internal/template"
	"github.com/nasayimclean/webapi/pkg/errors"
)

type notificationService struct {
	senders map[template.Channel]notify.Sender
	logger  *zap.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(senders map[template.Channel]notify.Sender, logger *zap.Logger) *notificationService {
	return &notificationService{
		senders: senders,
		logger:  logger,
	}
}

// SendNotification renders the template in the requested locale and fans the
// message out to every requested channel, collecting one result per channel
func (s *notificationService) SendNotification(ctx context.Context, req NotificationRequest) ([]*notify.Result, error) {
	tmpl := template.GetTemplate(req.TemplateID)
	if tmpl == nil {
		return nil, &errors.ErrNotFound{Resource: "notification template", ID: req.TemplateID}
	}

	text, ok := tmpl.Text[req.Language]
	if !ok {
		return nil, &errors.ErrValidation{Field: "language", Message: fmt.Sprintf("unsupported language %q", req.Language)}
	}

	message := template.Interpolate(text, req.Variables)

	results := make([]*notify.Result, 0, len(req.Channels))
	for _, channel := range req.Channels {
		sender, ok := s.senders[channel]
		if !ok {
			results = append(results, &notify.Result{
				Success: false,
				Channel: channel,
				Error:   "unsupported channel",
			})
			continue
		}

		result, err := sender.Send(ctx, req.PhoneNumber, message)
		if err != nil {
			s.logger.Error("Failed to send notification",
				zap.String("channel", string(channel)),
				zap.Error(err),
			)
			results = append(results, &notify.Result{
				Success: false,
				Channel: channel,
				Error:   err.Error(),
			})
			continue
		}

		results = append(results, result)
	}

	return results, nil
}

// ScheduleNotification records a future delivery and returns a job id.
// Scheduling is a stub: the job is logged, never executed.
func (s *notificationService) ScheduleNotification(ctx context.Context, req NotificationRequest, delayMinutes int) (string, error) {
	if template.GetTemplate(req.TemplateID) == nil {
		return "", &errors.ErrNotFound{Resource: "notification template", ID: req.TemplateID}
	}

	jobID := fmt.Sprintf("job_%s", uuid.NewString())
	scheduledAt := time.Now().Add(time.Duration(delayMinutes) * time.Minute)

	s.logger.Info("Scheduled notification",
		zap.String("job_id", jobID),
		zap.String("template_id", req.TemplateID),
		zap.Time("scheduled_at", scheduledAt),
	)

	return jobID, nil
}
