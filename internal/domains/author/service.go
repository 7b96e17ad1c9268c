package author

import "context"

// Service defines business logic operations for Author domain
type Service interface {
	// Create validates the request and inserts the author
	// Errors: ValidationError (ErrNameRequired, ErrInvalidPhoneNumber, ErrNameTaken)
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// GetByID retrieves author by id
	// Errors: ErrInvalidID, ErrAuthorNotFound
	GetByID(ctx context.Context, id int64) (*Author, error)

	// List retrieves a page of authors, limit defaults to 20 and is capped at 100
	List(ctx context.Context, filter AuthorFilter) ([]Author, int64, error)

	// Update applies a partial update to an existing author
	// Errors: ErrAuthorNotFound, ValidationError
	Update(ctx context.Context, id int64, req *UpdateAuthorRequest) (*Author, error)

	// Delete removes an author
	// Errors: ErrInvalidID, ErrAuthorNotFound
	Delete(ctx context.Context, id int64) error
}
