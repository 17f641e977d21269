package student

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "students-create",
		Method:        http.MethodPost,
		Path:          "/api/students",
		Summary:       "Create a student",
		Description:   "Creates a student enrolled in an existing subject. The name is stored RSA-encrypted.",
		Tags:          []string{"students"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"apiKey": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "students-list",
		Method:      http.MethodGet,
		Path:        "/api/students",
		Summary:     "List students by subject",
		Description: "Returns the students of one subject with names decrypted for display.",
		Tags:        []string{"students"},
		Security:    []map[string][]string{{"apiKey": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "students-get",
		Method:      http.MethodGet,
		Path:        "/api/students/{id}",
		Summary:     "Get a student",
		Tags:        []string{"students"},
		Security:    []map[string][]string{{"apiKey": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "students-update",
		Method:      http.MethodPut,
		Path:        "/api/students/{id}",
		Summary:     "Update a student",
		Description: "Overwrites any provided non-empty field; the name is re-encrypted and email uniqueness re-checked.",
		Tags:        []string{"students"},
		Security:    []map[string][]string{{"apiKey": {}}},
		Middlewares: h.middleware,
	}
}
