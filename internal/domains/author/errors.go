package author

import (
	"errors"
	"net/http"

	"blog-backend/internal/shared/apperror"
)

var (
	// Validation Errors
	ErrNameRequired       = apperror.NewValidation("name", "Name field is required.")
	ErrNameTaken          = apperror.NewValidation("name", "Name must be unique.")
	ErrInvalidPhoneNumber = apperror.NewValidation("phone_number", "Phone number must be exactly 10 digits.")

	// Business Rule Errors
	ErrAuthorNotFound = errors.New("author not found")
	ErrInvalidID      = errors.New("author id is invalid")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrNameTaken):
		return "DUPLICATE_NAME"
	case errors.Is(err, ErrInvalidID):
		return "BAD_REQUEST"
	case apperror.IsValidation(err):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNameTaken):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidID), apperror.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
