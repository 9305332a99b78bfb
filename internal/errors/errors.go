package errors

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors used with Mark to classify failures. Handlers map these
// to HTTP statuses; services use the Is* predicates to branch on them.
var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("item not found")
	ErrAlreadyExists    = errors.New("item already exists")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrPermissionDenied = errors.New("permission denied")
	ErrDatabase         = errors.New("database error")
	ErrHTTPClient       = errors.New("http client error")
	ErrSystem           = errors.New("system error")
	ErrInternal         = errors.New("internal error")
)

// InternalError is the concrete error produced by the builder. It carries a
// user-presentable hint and reportable details alongside the wrapped cause.
type InternalError struct {
	err     error
	hint    string
	details map[string]interface{}
}

func (e *InternalError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *InternalError) Unwrap() error {
	return e.err
}

// Hint returns the user-presentable hint, if any
func (e *InternalError) Hint() string {
	return e.hint
}

// ReportableDetails returns structured details safe to surface to API clients
func (e *InternalError) ReportableDetails() map[string]interface{} {
	return e.details
}

// Hint extracts the hint from an error chain, if one was attached
func Hint(err error) string {
	var ie *InternalError
	if errors.As(err, &ie) {
		return ie.hint
	}
	return ""
}

// ReportableDetails extracts the reportable details from an error chain
func ReportableDetails(err error) map[string]interface{} {
	var ie *InternalError
	if errors.As(err, &ie) {
		return ie.details
	}
	return nil
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}

func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

func IsDatabase(err error) bool {
	return errors.Is(err, ErrDatabase)
}
