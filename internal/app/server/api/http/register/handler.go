package register

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"classkeeper/internal/domain/session"
	"classkeeper/internal/infrastructure/storage/jsonfile"
)

type Handler struct {
	service    session.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service session.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	id, err := h.service.Register(ctx, session.Profile{
		Name:   input.Body.Name,
		Age:    input.Body.Age,
		Gender: input.Body.Gender,
		Email:  input.Body.Email,
	})
	if err != nil {
		return nil, h.mapError(err)
	}

	return &registerOutput{
		Body: registerResponse{
			SessionID: id,
			Status:    "Ok",
		},
	}, nil
}

func (h *Handler) mapError(err error) error {
	switch {
	case errors.Is(err, session.ErrInvalidInput):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, session.ErrDuplicateEmail):
		return huma.Error409Conflict("email already registered")
	case errors.Is(err, jsonfile.ErrLockTimeout):
		return huma.Error503ServiceUnavailable("storage busy, retry")
	default:
		h.log.Error("register request failed", "error", err)
		return huma.Error500InternalServerError("internal error")
	}
}
