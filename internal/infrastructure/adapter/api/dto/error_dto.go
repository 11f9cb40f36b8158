package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	OK bool   `json:"ok"`
	TS string `json:"ts"`
}
