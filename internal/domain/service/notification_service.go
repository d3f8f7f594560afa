package service

import (
	"context"

	"offerengine/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendBatchNotification sends push notifications to multiple device tokens
	// Returns success count, failure count, list of invalid tokens, and error
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingleNotification sends a push notification to a single device token
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}

// Notifier delivers realtime messages to a retailer account on a best-effort basis.
type Notifier interface {
	NotifyAccount(ctx context.Context, accountID uuid.UUID, message *entity.RealtimeMessage)
}
