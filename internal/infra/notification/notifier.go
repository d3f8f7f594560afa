package notification

import (
	"context"
	"log/slog"

	deliverycontext "offerengine/internal/delivery/context"
	"offerengine/internal/domain/entity"
	"offerengine/internal/domain/repository"
	"offerengine/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// AccountChannel is a live connection registry able to reach an account directly.
type AccountChannel interface {
	SendToAccount(accountID uuid.UUID, message *entity.RealtimeMessage) int
}

type fanoutNotifier struct {
	logger     *slog.Logger
	channel    AccountChannel
	push       service.NotificationService
	deviceRepo repository.DeviceRepository
}

// NotifierParams holds dependencies for the fan-out notifier. Every channel is optional.
type NotifierParams struct {
	fx.In

	Logger     *slog.Logger
	Channel    AccountChannel              `optional:"true"`
	Push       service.NotificationService `optional:"true"`
	DeviceRepo repository.DeviceRepository `optional:"true"`
}

// NewNotifier builds a notifier that fans out to the websocket channel and device push.
func NewNotifier(params NotifierParams) service.Notifier {
	return &fanoutNotifier{
		logger:     params.Logger,
		channel:    params.Channel,
		push:       params.Push,
		deviceRepo: params.DeviceRepo,
	}
}

// NotifyAccount never fails; delivery problems are logged.
func (n *fanoutNotifier) NotifyAccount(ctx context.Context, accountID uuid.UUID, message *entity.RealtimeMessage) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, n.logger)

	if n.channel != nil {
		n.channel.SendToAccount(accountID, message)
	}

	if n.push == nil || n.deviceRepo == nil {
		return
	}

	devices, err := n.deviceRepo.FindActiveDevicesByAccount(ctx, accountID)
	if err != nil {
		logger.Warn("Failed to load devices for notification",
			slog.String("account_id", accountID.String()),
			slog.Any("error", err),
		)

		return
	}
	if len(devices) == 0 {
		return
	}

	byToken := make(map[string]*entity.AccountDevice, len(devices))
	for start := 0; start < len(devices); start += maxMulticastTokens {
		batch := devices[start:min(start+maxMulticastTokens, len(devices))]
		tokens := make([]string, 0, len(batch))
		for _, device := range batch {
			tokens = append(tokens, device.FCMToken)
			byToken[device.FCMToken] = device
		}

		sent, failed, invalidTokens, err := n.push.SendBatchNotification(ctx, tokens, message.Title, message.Body, message.Data)
		if err != nil {
			logger.Warn("Failed to push notification",
				slog.String("account_id", accountID.String()),
				slog.Any("error", err),
			)

			continue
		}

		logger.Debug("Push notification sent",
			slog.String("account_id", accountID.String()),
			slog.Int("sent", sent),
			slog.Int("failed", failed),
		)

		for _, token := range invalidTokens {
			device, ok := byToken[token]
			if !ok {
				continue
			}
			if err := n.deviceRepo.DeactivateDevice(ctx, device.ID); err != nil {
				logger.Warn("Failed to deactivate invalid device",
					slog.String("device_id", device.ID.String()),
					slog.Any("error", err),
				)
			}
		}
	}
}
