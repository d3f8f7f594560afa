package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"offerengine/internal/domain/entity"
	"offerengine/internal/domain/service"
	"offerengine/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googlePubSubPublisher publishes score events with the account id as
// ordering key, so one retailer's events reach the worker in emission order.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to an existing topic. A missing topic fails
// startup rather than the first redemption.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "lookup topic %s", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Publishing score events to Google Pub/Sub", slog.String("topic", topic))

	return &googlePubSubPublisher{client: client, publisher: publisher, logger: logger}, nil
}

// PublishScoreEvent blocks until the server acknowledges the message.
func (p *googlePubSubPublisher) PublishScoreEvent(ctx context.Context, event *entity.ScoreEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal score event")
	}

	orderingKey := event.AccountID.String()
	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: orderingKey,
	}).Get(ctx)
	if err != nil {
		// A failed publish pauses its ordering key until resumed.
		p.publisher.ResumePublish(orderingKey)

		return errors.Wrapf(err, "publish score event %s", event.ID)
	}

	p.logger.Debug("Score event published",
		slog.String("event_id", event.ID.String()),
		slog.String("kind", string(event.Kind)),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.Wrap(p.client.Close(), "close pubsub client")
}
