package post

import (
	"errors"
	"net/http"

	"blog-backend/internal/shared/apperror"
)

var (
	// Validation Errors
	ErrContentTooShort = apperror.NewValidation("content", "Post content must be at least 250 characters long.")
	ErrSummaryTooLong  = apperror.NewValidation("summary", "Post summary must be a maximum of 250 characters.")
	ErrInvalidCategory = apperror.NewValidation("category", "Category must be either 'Fiction' or 'Non-Fiction'.")
	ErrTitleNotCatchy  = apperror.NewValidation("title", "Title must contain one of: 'Won't Believe', 'Secret', 'Top', 'Guess'")

	ErrPostNotFound = errors.New("post not found")
	ErrInvalidID    = errors.New("post id is invalid")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrPostNotFound):
		return "POST_NOT_FOUND"
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
	case errors.Is(err, ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidID), apperror.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
