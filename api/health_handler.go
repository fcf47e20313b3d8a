package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Pinger reports store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthHandler struct {
	responder   Responder
	logger      zerolog.Logger
	store       Pinger
	startupTime time.Time
}

func newHealthHandler(store Pinger, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		store:       store,
		startupTime: startupTime,
	}
}

// check serves GET /health: liveness plus a store ping.
func (h healthHandler) check() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		payload := map[string]any{
			"status":   "ok",
			"database": "connected",
			"uptime":   time.Since(h.startupTime).Round(time.Second).String(),
		}

		if err := h.store.Ping(ctx); err != nil {
			h.logger.Error().Err(err).Msg("health check: store unreachable")
			payload["status"] = "degraded"
			payload["database"] = "unreachable"
			h.responder.write(w, http.StatusServiceUnavailable, envelope{
				Success: false,
				Message: "Database connection error. Please try again later.",
				Data:    payload,
			})
			return
		}

		h.responder.WriteSuccess(w, http.StatusOK, "", payload)
	}
}
