package post

import "context"

// Service defines business logic operations for Post domain
type Service interface {
	// Create validates and inserts a post
	// Errors: ValidationError
	Create(ctx context.Context, req *CreatePostRequest) (*Post, error)

	// GetByID retrieves post by id
	// Errors: ErrInvalidID, ErrPostNotFound
	GetByID(ctx context.Context, id int64) (*Post, error)

	// List retrieves a page of posts, optionally by category
	List(ctx context.Context, filter PostFilter) ([]Post, int64, error)

	// Update applies a partial update; the merged post is validated as a whole
	// Errors: ErrPostNotFound, ValidationError
	Update(ctx context.Context, id int64, req *UpdatePostRequest) (*Post, error)

	// Delete removes a post
	// Errors: ErrInvalidID, ErrPostNotFound
	Delete(ctx context.Context, id int64) error
}
