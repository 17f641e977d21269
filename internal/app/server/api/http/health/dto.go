package health

// Output represents the output for the health check endpoint
type Output struct {
	Body Response
}

// Response represents the health check response
type Response struct {
	Status string `json:"status" example:"OK" doc:"Health status of the service"`
}

type versionOutput struct {
	Body versionResponse
}

type versionResponse struct {
	Version string `json:"version" example:"1.0.0" doc:"Deployed application version"`
	Status  string `json:"status" example:"running"`
}
