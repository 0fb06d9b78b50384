package health

import (
	"context"

	"marketstore/internal/domain/market"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    market.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service market.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

// healthCheck проверяет, что хранилище отвечает
func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	n, err := h.service.Stats(ctx)
	if err != nil {
		h.log.Error("health check failed", "error", err)
		return nil, huma.Error503ServiceUnavailable("storage unavailable", err)
	}

	return &Output{
		Body: Response{
			Status:  "OK",
			Markets: n,
		},
	}, nil
}
