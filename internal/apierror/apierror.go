// Package apierror provides the standardized error envelope for the API.
// Every 4xx/5xx response goes through it so that save failures always
// collapse to one generic message and internal details (mongo errors, upload
// responses, stack traces) never reach the panel.
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// Generic is the one message shown for any store or upload failure during a
// save; the real cause lives only in the logs.
func Generic() *APIError {
	return &APIError{Detail: "No se pudo guardar"}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
