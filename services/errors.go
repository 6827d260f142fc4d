package services

import "fmt"

// Error kinds surfaced to controllers for HTTP mapping.
const (
	ErrValidation  = "VALIDATION"
	ErrNotFound    = "NOT_FOUND"
	ErrConflict    = "CONFLICT"
	ErrPersistence = "PERSISTENCE"
)

// AppError is the structured error for every service operation: a short
// machine-usable kind, a human message, and optional structured details
// (e.g. the existing-orders count behind a sequence-reset conflict).
type AppError struct {
	Kind    string                 `json:"kind"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

func ValidationErr(msg string) *AppError {
	return &AppError{Kind: ErrValidation, Message: msg}
}

func NotFoundErr(msg string) *AppError {
	return &AppError{Kind: ErrNotFound, Message: msg}
}

func ConflictErr(msg string, details map[string]interface{}) *AppError {
	return &AppError{Kind: ErrConflict, Message: msg, Details: details}
}

func PersistenceErr(msg string, cause error) *AppError {
	return &AppError{Kind: ErrPersistence, Message: msg, Cause: cause}
}

// AsAppError pulls an *AppError out of err, wrapping unknown store failures
// as PERSISTENCE so nothing is silently swallowed. Returns the plain error
// interface so a nil input stays a nil error.
func AsAppError(err error) error {
	if err == nil {
		return nil
	}
	if ae, ok := err.(*AppError); ok {
		return ae
	}
	return PersistenceErr("operation failed", err)
}
