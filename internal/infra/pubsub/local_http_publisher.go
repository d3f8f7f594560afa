package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"offerengine/internal/domain/entity"
	"offerengine/internal/domain/service"
	"offerengine/internal/errors"

	"github.com/labstack/echo/v4"
)

const localPushTimeout = 30 * time.Second

// localHTTPPublisher posts push envelopes straight to a score worker. Used in
// development where no Pub/Sub emulator runs.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPushTimeout},
		logger:   logger,
	}
}

func (p *localHTTPPublisher) PublishScoreEvent(ctx context.Context, event *entity.ScoreEvent) error {
	msg, err := NewPushMessage(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "marshal push message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build push request")
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if event.RequestID != "" {
		req.Header.Set(echo.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push score event %s", event.ID)
	}
	defer resp.Body.Close()

	// The worker answers 503 on transient store failures.
	if resp.StatusCode/100 != 2 {
		return errors.Errorf("score worker answered %d for event %s", resp.StatusCode, event.ID)
	}

	p.logger.Debug("Score event pushed to local worker",
		slog.String("event_id", event.ID.String()),
		slog.String("kind", string(event.Kind)),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error { return nil }
