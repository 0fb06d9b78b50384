package market

import (
	"context"
	"errors"

	"marketstore/internal/domain/market"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    market.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service market.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.echoOp(), h.echo)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.readOp(), h.read)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) echo(ctx context.Context, input *echoInput) (*echoOutput, error) {
	rec := h.service.Echo(ctx, input.Body.toDomain())
	return &echoOutput{Body: fromDomain(rec)}, nil
}

func (h *Handler) create(ctx context.Context, input *templateInput) (*createOutput, error) {
	rec, err := h.service.Create(ctx, input.Body.toDomain())
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &createOutput{Body: fromDomain(rec)}, nil
}

func (h *Handler) read(ctx context.Context, input *templateInput) (*listOutput, error) {
	records, err := h.service.Read(ctx, input.Body.toDomain())
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &listOutput{Body: fromDomainList(records)}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*listOutput, error) {
	records, err := h.service.Update(ctx, input.Body.Market.toDomain(), input.Body.Conditions.toDomain())
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &listOutput{Body: fromDomainList(records)}, nil
}

func (h *Handler) delete(ctx context.Context, input *templateInput) (*listOutput, error) {
	records, err := h.service.Delete(ctx, input.Body.toDomain())
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &listOutput{Body: fromDomainList(records)}, nil
}

// toHTTPError: InvalidArgument -> 400, все остальное -> 500.
func toHTTPError(err error) error {
	var merr *market.Error
	msg := err.Error()
	if errors.As(err, &merr) && merr.Message != "" {
		msg = merr.Message
	}

	if errors.Is(err, market.ErrInvalidArgument) {
		return huma.Error400BadRequest(msg)
	}
	return huma.Error500InternalServerError(msg, err)
}
