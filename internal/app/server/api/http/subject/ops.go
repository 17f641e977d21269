package subject

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "subjects-create",
		Method:        http.MethodPost,
		Path:          "/api/subjects",
		Summary:       "Create a subject",
		Description:   "Creates a subject with a case-insensitively unique name.",
		Tags:          []string{"subjects"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"apiKey": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "subjects-list",
		Method:      http.MethodGet,
		Path:        "/api/subjects",
		Summary:     "List subjects",
		Tags:        []string{"subjects"},
		Security:    []map[string][]string{{"apiKey": {}}},
		Middlewares: h.middleware,
	}
}
