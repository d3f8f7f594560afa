package middleware

import (
	"log/slog"

	deliverycontext "offerengine/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxRequestIDLength = 128

// RequestIDMiddleware tags each request with an id and a logger carrying it.
// Both the HTTP API and the push worker run it first so a score event can be
// traced from the redemption that emitted it to the worker that applied it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		requestID, ok := acceptRequestID(req.Header.Get(deliverycontext.HeaderXRequestID))
		if !ok {
			requestID = uuid.NewString()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(req.Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", requestID)))
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

// acceptRequestID keeps a caller-supplied id only when it is short printable
// ASCII; anything else would end up verbatim in logs and response headers.
func acceptRequestID(id string) (string, bool) {
	if id == "" || len(id) > maxRequestIDLength {
		return "", false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return "", false
		}
	}

	return id, true
}
