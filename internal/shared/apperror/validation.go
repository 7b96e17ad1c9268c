package apperror

import "errors"

// ValidationError is the single error kind for a rejected write.
// Field names the offending column, Message is shown to the caller as-is.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation builds a ValidationError for field
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AsValidation unwraps err into a *ValidationError if there is one in the chain.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	_, ok := AsValidation(err)
	return ok
}
