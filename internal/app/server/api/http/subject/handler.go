package subject

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"classkeeper/internal/domain/subject"
	"classkeeper/internal/infrastructure/storage/jsonfile"
)

type Handler struct {
	service    subject.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service subject.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listOp(), h.list)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	created, err := h.service.Create(ctx, input.Body.Name)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &createOutput{
		Body: createResponse{
			ID:     created.ID,
			Status: "Ok",
		},
	}, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	subjects, err := h.service.List(ctx)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &listOutput{
		Body: listResponse{
			Subjects: subjects,
			Total:    len(subjects),
		},
	}, nil
}

// mapError translates domain errors to status codes by identity, never by
// message text. Storage details stay in the logs.
func (h *Handler) mapError(err error) error {
	switch {
	case errors.Is(err, subject.ErrInvalidInput):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, subject.ErrDuplicateName):
		return huma.Error409Conflict("subject name already exists")
	case errors.Is(err, jsonfile.ErrLockTimeout):
		return huma.Error503ServiceUnavailable("storage busy, retry")
	default:
		h.log.Error("subject request failed", "error", err)
		return huma.Error500InternalServerError("internal error")
	}
}
