package responses

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Success       bool   `json:"success"`
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// SuccessResponse acknowledges a write without a body
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}
