package common

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string      `json:"error" example:"Validation error"`
	Message string      `json:"message,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// FieldError represents one invalid field of a request body
type FieldError struct {
	Path    []string `json:"path" example:"raw_notes"`
	Message string   `json:"message" example:"raw notes are required"`
}

// HealthResponse represents the liveness probe body
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Timestamp string `json:"timestamp" example:"2024-07-01T09:00:00Z"`
}
