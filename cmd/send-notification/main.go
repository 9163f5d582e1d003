package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/nasayimclean/webapi/internal/i18n"
	"github.com/nasayimclean/webapi/internal/notify"
	"github.com/nasayimclean/webapi/internal/service"
	"github.com/nasayimclean/webapi/internal/template"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("Usage: go run cmd/send-notification/main.go <template-id> <phone> <lang> [key=value ...]")
		fmt.Println("Example: go run cmd/send-notification/main.go appointment_reminder_1h +966501234567 en customerName=Ahmed")
		os.Exit(1)
	}

	templateID := os.Args[1]
	phone := os.Args[2]
	lang := i18n.Language(os.Args[3])

	variables := make(map[string]string)
	for _, arg := range os.Args[4:] {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) == 2 {
			variables[parts[0]] = parts[1]
		}
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	tmpl := template.GetTemplate(templateID)
	if tmpl == nil {
		fmt.Fprintf(os.Stderr, "Unknown template: %s\n", templateID)
		os.Exit(1)
	}

	senders := notify.NewSenders(logger)
	notificationService := service.NewNotificationService(senders, logger)

	results, err := notificationService.SendNotification(context.Background(), service.NotificationRequest{
		TemplateID:  templateID,
		PhoneNumber: phone,
		Variables:   variables,
		Channels:    tmpl.Channels,
		Language:    lang,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to send notification: %v\n", err)
		os.Exit(1)
	}

	for _, result := range results {
		if result.Success {
			fmt.Printf("%s: sent (%s)\n", result.Channel, result.MessageID)
		} else {
			fmt.Printf("%s: failed (%s)\n", result.Channel, result.Error)
		}
	}
}
