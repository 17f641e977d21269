package student

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"classkeeper/internal/domain/student"
	"classkeeper/internal/domain/subject"
	"classkeeper/internal/infrastructure/storage/jsonfile"
)

type Handler struct {
	service    student.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service student.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateOp(), h.update)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	view, err := h.service.Create(ctx, student.CreateRequest{
		Name:      input.Body.Name,
		Age:       input.Body.Age,
		Email:     input.Body.Email,
		SubjectID: input.Body.SubjectID,
	})
	if err != nil {
		return nil, h.mapError(err)
	}

	return &createOutput{
		Body: createResponse{
			ID:     view.ID,
			Status: "Ok",
		},
	}, nil
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	views, err := h.service.ListBySubject(ctx, input.SubjectID)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &listOutput{
		Body: listResponse{
			Students: views,
			Total:    len(views),
		},
	}, nil
}

func (h *Handler) get(ctx context.Context, input *getInput) (*getOutput, error) {
	view, err := h.service.Get(ctx, input.ID)
	if err != nil {
		return nil, h.mapError(err)
	}
	return &getOutput{Body: view}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*getOutput, error) {
	view, err := h.service.Update(ctx, input.ID, student.UpdateRequest{
		Name:      input.Body.Name,
		Age:       input.Body.Age,
		Email:     input.Body.Email,
		SubjectID: input.Body.SubjectID,
	})
	if err != nil {
		return nil, h.mapError(err)
	}
	return &getOutput{Body: view}, nil
}

func (h *Handler) mapError(err error) error {
	switch {
	case errors.Is(err, student.ErrInvalidInput):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, student.ErrNotFound), errors.Is(err, subject.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, student.ErrDuplicateEmail):
		return huma.Error409Conflict("email already in use")
	case errors.Is(err, jsonfile.ErrLockTimeout):
		return huma.Error503ServiceUnavailable("storage busy, retry")
	default:
		h.log.Error("student request failed", "error", err)
		return huma.Error500InternalServerError("internal error")
	}
}
