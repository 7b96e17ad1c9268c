package post

import "context"

// Repository defines the interface for Post data access operations
type Repository interface {
	// Create inserts a new post; id and created_at come from the database
	Create(ctx context.Context, p *Post) (*Post, error)

	// GetByID retrieves post by id
	// Errors: ErrPostNotFound
	GetByID(ctx context.Context, id int64) (*Post, error)

	// List returns a page of posts and the total count matching the filter
	List(ctx context.Context, filter PostFilter) ([]Post, int64, error)

	// Update overwrites every column of an existing post and stamps updated_at
	// Errors: ErrPostNotFound
	Update(ctx context.Context, p *Post) (*Post, error)

	// Delete removes post by id
	// Errors: ErrPostNotFound
	Delete(ctx context.Context, id int64) error
}
