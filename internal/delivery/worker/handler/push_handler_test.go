package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"offerengine/config"
	"offerengine/internal/domain/constants"
	"offerengine/internal/domain/entity"
	domainerrors "offerengine/internal/domain/errors"
	"offerengine/internal/infra/pubsub"
	mockSvc "offerengine/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, provider, env string) (*PushHandler, *mockSvc.MockScoreEventHandler) {
	scorer := mockSvc.NewMockScoreEventHandler(t)

	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider}}
	cfg.Env.Env = env

	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Scorer: scorer,
	})

	return h, scorer
}

func pushRequest(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func encodedEvent(t *testing.T) (*entity.ScoreEvent, string) {
	t.Helper()

	event := entity.NewScoreEvent(entity.ScoreReferredRedemption, uuid.New(), uuid.New(), time.Now().UTC())
	msg, err := pubsub.NewPushMessage(event)
	require.NoError(t, err)

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return event, string(raw)
}

func TestPushHandler_HandlePush(t *testing.T) {
	tests := []struct {
		name       string
		applyErr   error
		applied    bool
		wantStatus int
	}{
		{name: "applied", applied: true, wantStatus: http.StatusOK},
		{name: "redelivered event", applied: false, wantStatus: http.StatusOK},
		{
			name:       "transient store failure is retried",
			applyErr:   domainerrors.NewDatabaseExecuteError(assert.AnError, "failed to credit score"),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "invalid event is acknowledged",
			applyErr:   domainerrors.ErrValidationFailed,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, scorer := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)
			event, body := encodedEvent(t)

			scorer.EXPECT().
				ApplyEvent(mock.Anything, mock.MatchedBy(func(got *entity.ScoreEvent) bool {
					return got.ID == event.ID && got.Points == 5
				})).
				Return(tt.applied, tt.applyErr)

			c, rec := pushRequest(t, body)

			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_DropsUndecodableData(t *testing.T) {
	h, _ := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

	c, rec := pushRequest(t, `{"message":{"data":"!!not-base64!!","messageId":"1"}}`)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RejectsMalformedEnvelope(t *testing.T) {
	h, _ := newTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

	c, rec := pushRequest(t, `{"message":`)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderGoogle, constants.EnvProduction)
		_, body := encodedEvent(t)

		c, rec := pushRequest(t, body)

		require.NoError(t, h.HandlePush(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t, constants.PubSubProviderGoogle, constants.EnvProduction)
		h.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}
		_, body := encodedEvent(t)

		c, rec := pushRequest(t, body)
		c.Request().Header.Set(echo.HeaderAuthorization, "Bearer signed")

		require.NoError(t, h.HandlePush(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, scorer := newTestPushHandler(t, constants.PubSubProviderGoogle, constants.EnvProduction)
		h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "signed", token)
			assert.Equal(t, "http://example.com/push", audience)

			return &idtoken.Payload{
				Issuer: "https://accounts.google.com",
				Claims: map[string]any{"email_verified": true},
			}, nil
		}
		_, body := encodedEvent(t)
		scorer.EXPECT().ApplyEvent(mock.Anything, mock.Anything).Return(true, nil)

		c, rec := pushRequest(t, body)
		c.Request().Header.Set(echo.HeaderAuthorization, "Bearer signed")

		require.NoError(t, h.HandlePush(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
