package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// AppVersion is reported by the version endpoint for deployment tracking.
const AppVersion = "1.0.0"

type Handler struct {
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
	huma.Register(api, h.versionOp(), h.version)
}

func (h *Handler) healthCheck(_ context.Context, _ *struct{}) (*Output, error) {
	h.log.Debug("health check request received")

	return &Output{
		Body: Response{
			Status: "OK",
		},
	}, nil
}

func (h *Handler) version(_ context.Context, _ *struct{}) (*versionOutput, error) {
	return &versionOutput{
		Body: versionResponse{
			Version: AppVersion,
			Status:  "running",
		},
	}, nil
}
