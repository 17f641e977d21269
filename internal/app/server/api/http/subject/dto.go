package subject

import "classkeeper/internal/domain/subject"

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Name string `json:"subject_name" doc:"Subject name, unique case-insensitively" minLength:"1" maxLength:"100"`
}

type createOutput struct {
	Body createResponse
}

type createResponse struct {
	ID     string `json:"subject_id"`
	Status string `json:"status"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Subjects []subject.Subject `json:"subjects"`
	Total    int               `json:"total"`
}
