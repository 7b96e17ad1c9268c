package author

import "context"

// Repository defines the interface for Author data access operations
type Repository interface {
	// Create inserts a new author.
	// ValidateAuthorName runs inside the insert transaction.
	// Errors: ErrNameRequired, ErrNameTaken
	Create(ctx context.Context, a *Author) (*Author, error)

	// GetByID retrieves author by id
	// Errors: ErrAuthorNotFound
	GetByID(ctx context.Context, id int64) (*Author, error)

	// List returns a page of authors and the total count matching the filter
	List(ctx context.Context, filter AuthorFilter) ([]Author, int64, error)

	// Update overwrites name and phone number of an existing author.
	// ValidateAuthorName runs inside the update transaction, excluding a.ID.
	// Errors: ErrAuthorNotFound, ErrNameRequired, ErrNameTaken
	Update(ctx context.Context, a *Author) (*Author, error)

	// Delete removes author by id
	// Errors: ErrAuthorNotFound
	Delete(ctx context.Context, id int64) error
}
