package register

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID:   "register",
		Method:        http.MethodPost,
		Path:          "/api/register",
		Summary:       "Register a user session",
		Description:   "Stores the user profile under a freshly generated session id.",
		Tags:          []string{"register"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"apiKey": {}}},
		Middlewares:   h.middleware,
	}
}
