package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared/apperror"
	"blog-backend/internal/shared/utils"
	"blog-backend/pkg/cache"
	txutil "blog-backend/pkg/database"
)

type postgresRepository struct {
	db    *sql.DB
	cache cache.Cache
	ttl   time.Duration
}

// NewPostgresRepository creates a new post repository instance
func NewPostgresRepository(db *sql.DB, c cache.Cache, ttl time.Duration) post.Repository {
	if c == nil {
		c = cache.NewNoop()
	}
	return &postgresRepository{db: db, cache: c, ttl: ttl}
}

const (
	postCacheKeyPrefix = "post:"
	postColumns        = `id, title, content, summary, category, created_at, updated_at`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*post.Post, error) {
	var p post.Post
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Summary, &p.Category, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create validates and inserts a post. Invalid posts never reach the database.
func (r *postgresRepository) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	created, err := txutil.WithTransactionResult(ctx, r.db, func(tx *sql.Tx) (*post.Post, error) {
		query := `
			INSERT INTO posts (title, content, summary, category)
			VALUES ($1, $2, $3, $4)
			RETURNING ` + postColumns

		return scanPost(tx.QueryRowContext(ctx, query, p.Title, p.Content, p.Summary, p.Category))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return created, nil
}

// GetByID retrieves post by id with caching
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*post.Post, error) {
	key := cacheKey(id)

	var cached post.Post
	hit, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("post cache read failed")
	}
	if hit {
		return &cached, nil
	}

	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	p, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	if err := r.cache.Set(ctx, key, p, r.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("post cache write failed")
	}

	return p, nil
}

// List retrieves a page of posts, newest id last
func (r *postgresRepository) List(ctx context.Context, filter post.PostFilter) ([]post.Post, int64, error) {
	var clauses []string
	args := []any{}
	if filter.Category != "" {
		clauses = append(clauses, "category = $1")
		args = append(args, filter.Category)
	}
	where := utils.Where(clauses...)

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	query := `SELECT ` + postColumns + ` FROM posts` + where + utils.Page(len(args))
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query posts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	posts := make([]post.Post, 0, filter.Limit)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, total, nil
}

// Update overwrites every column and stamps updated_at
func (r *postgresRepository) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	updated, err := txutil.WithTransactionResult(ctx, r.db, func(tx *sql.Tx) (*post.Post, error) {
		query := `
			UPDATE posts
			SET title = $1, content = $2, summary = $3, category = $4, updated_at = NOW()
			WHERE id = $5
			RETURNING ` + postColumns

		updated, err := scanPost(tx.QueryRowContext(ctx, query, p.Title, p.Content, p.Summary, p.Category, p.ID))
		if errors.Is(err, sql.ErrNoRows) {
			return nil, post.ErrPostNotFound
		}
		return updated, err
	})
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) || apperror.IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	r.invalidate(ctx, p.ID)
	return updated, nil
}

// Delete removes post by id
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if affected == 0 {
		return post.ErrPostNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, cacheKey(id)); err != nil {
		log.Warn().Err(err).Int64("post_id", id).Msg("post cache invalidation failed")
	}
}

func cacheKey(id int64) string {
	return postCacheKeyPrefix + strconv.FormatInt(id, 10)
}
