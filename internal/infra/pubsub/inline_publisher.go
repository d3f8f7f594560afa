package pubsub

import (
	"context"
	"log/slog"

	"offerengine/internal/domain/entity"
	"offerengine/internal/domain/service"
)

// inlinePublisher applies events in-process, for single-binary deployments
type inlinePublisher struct {
	handler service.ScoreEventHandler
	logger  *slog.Logger
}

// NewInlinePublisher creates a publisher that hands events straight to handler
func NewInlinePublisher(handler service.ScoreEventHandler, logger *slog.Logger) service.EventPublisher {
	return &inlinePublisher{handler: handler, logger: logger}
}

func (p *inlinePublisher) PublishScoreEvent(ctx context.Context, event *entity.ScoreEvent) error {
	applied, err := p.handler.ApplyEvent(ctx, event)
	if err != nil {
		return err
	}

	if !applied {
		p.logger.Debug("[InlinePubSub] Score event already applied",
			slog.String("event_id", event.ID.String()),
		)
	}

	return nil
}

func (p *inlinePublisher) Close() error {
	return nil
}
