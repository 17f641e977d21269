package student

import "classkeeper/internal/domain/student"

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Name      string `json:"name" doc:"Student name, stored encrypted" minLength:"1" maxLength:"100"`
	Age       int    `json:"age" doc:"Positive integer age" minimum:"1"`
	Email     string `json:"email" doc:"Unique email, normalized to lowercase" minLength:"1" maxLength:"100"`
	SubjectID string `json:"subject_id" doc:"ID of an existing subject" minLength:"1"`
}

type createOutput struct {
	Body createResponse
}

type createResponse struct {
	ID     string `json:"student_id"`
	Status string `json:"status"`
}

type getInput struct {
	ID string `path:"id" doc:"Student ID"`
}

type getOutput struct {
	Body student.View
}

type listInput struct {
	SubjectID string `query:"subject_id" doc:"Subject to list students for"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Students []student.View `json:"students"`
	Total    int            `json:"total"`
}

type updateInput struct {
	ID   string `path:"id" doc:"Student ID"`
	Body updateRequest
}

// updateRequest carries an optional overwrite per field; absent fields are
// left unchanged.
type updateRequest struct {
	Name      *string `json:"name,omitempty" doc:"New name, re-encrypted on change"`
	Age       *int    `json:"age,omitempty" doc:"New age"`
	Email     *string `json:"email,omitempty" doc:"New email, uniqueness re-checked"`
	SubjectID *string `json:"subject_id,omitempty" doc:"New subject, existence re-validated"`
}
