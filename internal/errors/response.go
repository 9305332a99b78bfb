package errors

import "net/http"

// ErrorDetail is the client-facing body of a failed request
type ErrorDetail struct {
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse is the uniform error envelope returned by the REST layer
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// NewErrorResponse builds the client-facing envelope for an error. The hint,
// not the internal message, is what clients see; the raw message only leaks
// when no hint was attached.
func NewErrorResponse(err error) *ErrorResponse {
	message := Hint(err)
	if message == "" {
		message = err.Error()
	}
	return &ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Message: message,
			Details: ReportableDetails(err),
		},
	}
}

// HTTPStatusFromErr maps a marked error to its HTTP status code
func HTTPStatusFromErr(err error) int {
	switch {
	case IsValidation(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	case IsAlreadyExists(err):
		return http.StatusConflict
	case IsInvalidOperation(err):
		return http.StatusUnprocessableEntity
	case IsPermissionDenied(err):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
