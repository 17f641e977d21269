package register

type registerInput struct {
	Body registerRequest
}

type registerRequest struct {
	Name   string `json:"name" doc:"User name" minLength:"1" maxLength:"100"`
	Age    int    `json:"age" doc:"Positive integer age" minimum:"1"`
	Gender string `json:"gender" doc:"Gender" minLength:"1"`
	Email  string `json:"email" doc:"Unique email, also checked against student records" minLength:"1" maxLength:"100"`
}

type registerOutput struct {
	Body registerResponse
}

type registerResponse struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
}
