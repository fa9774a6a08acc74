// Package apierror defines the JSON bodies every handler uses for 4xx/5xx
// responses. Clients always receive a `detail` message; raw GORM or driver
// errors never reach the wire.
package apierror

// APIError carries a single user-facing message.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError adds a per-field breakdown for request binding failures.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
