package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"offerengine/config"
	deliverycontext "offerengine/internal/delivery/context"
	"offerengine/internal/domain/constants"
	domainerrors "offerengine/internal/domain/errors"
	"offerengine/internal/domain/service"
	"offerengine/internal/errors"
	"offerengine/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PushHandler applies score events delivered by a Pub/Sub push subscription
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	scorer         service.ScoreEventHandler
	validate       func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Scorer service.ScoreEventHandler
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests; local development posts unsigned messages
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		scorer:         params.Scorer,
		validate:       idtoken.Validate,
	}
}

// HandlePush acknowledges with 200 once the event is applied or can never be applied, and answers
// 503 on transient failures so that Pub/Sub redelivers.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	event, err := pushMsg.ScoreEvent()
	if err != nil {
		reqLogger.Error("[Worker] Dropping undecodable score event", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	applied, err := h.scorer.ApplyEvent(ctx, event)
	if err != nil {
		retryable := domainerrors.IsTransient(err)
		reqLogger.Error("[Worker] Failed to apply score event",
			slog.String("event_id", event.ID.String()),
			slog.String("kind", string(event.Kind)),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Score event processed",
		slog.String("event_id", event.ID.String()),
		slog.Bool("applied", applied),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the X-Request-Id header, then a new id
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage) string {
	if requestID := pushMsg.RequestID(); requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the OIDC token Google attaches to push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the push endpoint URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
