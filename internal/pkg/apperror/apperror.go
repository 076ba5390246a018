// Package apperror carries the error taxonomy of the booking API: every
// rejection is an AppError whose status code tells the client how to
// react (fix the form on 400, re-query availability on 409).
package apperror

// AppError is an error with an HTTP status code attached.
type AppError struct {
	Code    int    // HTTP status code (e.g. 400, 409)
	Message string // User-facing error message
	Err     error  // Underlying error, if any (not exposed to the user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates an AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
