package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/author"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/internal/shared/apperror"
	"blog-backend/internal/shared/utils"
	"blog-backend/pkg/cache"
	txutil "blog-backend/pkg/database"
)

// postgresRepository implements author.Repository interface
// Writes run in a transaction that also carries the name check.
type postgresRepository struct {
	db    *sql.DB
	cache cache.Cache
	ttl   time.Duration
}

// NewPostgresRepository creates a new author repository instance
func NewPostgresRepository(db *sql.DB, c cache.Cache, ttl time.Duration) author.Repository {
	if c == nil {
		c = cache.NewNoop()
	}
	return &postgresRepository{db: db, cache: c, ttl: ttl}
}

const (
	authorCacheKeyPrefix = "author:"
	authorColumns        = `id, name, phone_number, created_at, updated_at`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAuthor(row rowScanner) (*author.Author, error) {
	var a author.Author
	if err := row.Scan(&a.ID, &a.Name, &a.PhoneNumber, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// txNameLookup answers author.NameLookup from inside the write transaction
type txNameLookup struct {
	tx *sql.Tx
}

func (l txNameLookup) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	query := `SELECT id FROM authors WHERE name = $1 LIMIT 1`
	args := []any{name}
	if excludeID != 0 {
		query = `SELECT id FROM authors WHERE name = $1 AND id <> $2 LIMIT 1`
		args = append(args, excludeID)
	}

	var id int64
	err := l.tx.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts new author; the database assigns id and created_at
func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	candidate := *a
	candidate.ID = 0

	created, err := txutil.WithTransactionResult(ctx, r.db, func(tx *sql.Tx) (*author.Author, error) {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}
		if err := author.ValidateAuthorName(ctx, txNameLookup{tx: tx}, &candidate); err != nil {
			return nil, err
		}

		query := `
			INSERT INTO authors (name, phone_number)
			VALUES ($1, $2)
			RETURNING ` + authorColumns

		return scanAuthor(tx.QueryRowContext(ctx, query, candidate.Name, candidate.PhoneNumber))
	})
	if err != nil {
		return nil, writeError("create", err)
	}

	return created, nil
}

// GetByID retrieves author by id with caching
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	cacheKey := cacheKey(id)

	var cached author.Author
	hit, err := r.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("author cache read failed")
	}
	if hit {
		return &cached, nil
	}

	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

	a, err := scanAuthor(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	if err := r.cache.Set(ctx, cacheKey, a, r.ttl); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("author cache write failed")
	}

	return a, nil
}

// List retrieves a page of authors ordered by id
func (r *postgresRepository) List(ctx context.Context, filter author.AuthorFilter) ([]author.Author, int64, error) {
	var clauses []string
	args := []any{}
	if filter.Search != "" {
		clauses = append(clauses, "name ILIKE $1")
		args = append(args, "%"+utils.EscapeLike(filter.Search)+"%")
	}
	where := utils.Where(clauses...)

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM authors`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	query := `SELECT ` + authorColumns + ` FROM authors` + where + utils.Page(len(args))
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query authors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	authors := make([]author.Author, 0, filter.Limit)
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, total, nil
}

// Update overwrites name and phone number, stamping updated_at
func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	updated, err := txutil.WithTransactionResult(ctx, r.db, func(tx *sql.Tx) (*author.Author, error) {
		if err := a.Validate(); err != nil {
			return nil, err
		}
		if err := author.ValidateAuthorName(ctx, txNameLookup{tx: tx}, a); err != nil {
			return nil, err
		}

		query := `
			UPDATE authors
			SET name = $1, phone_number = $2, updated_at = NOW()
			WHERE id = $3
			RETURNING ` + authorColumns

		updated, err := scanAuthor(tx.QueryRowContext(ctx, query, a.Name, a.PhoneNumber, a.ID))
		if errors.Is(err, sql.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return updated, err
	})
	if err != nil {
		return nil, writeError("update", err)
	}

	r.invalidate(ctx, a.ID)
	return updated, nil
}

// Delete removes author by id
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	if affected == 0 {
		return author.ErrAuthorNotFound
	}

	r.invalidate(ctx, id)
	return nil
}

// writeError keeps domain errors as they are and maps the unique
// constraint backstop to the same error the pre-write check returns
func writeError(op string, err error) error {
	switch {
	case errors.Is(err, author.ErrAuthorNotFound), apperror.IsValidation(err):
		return err
	case database.IsUniqueViolation(err, database.AuthorNameConstraint):
		return author.ErrNameTaken
	default:
		return fmt.Errorf("failed to %s author: %w", op, err)
	}
}

func (r *postgresRepository) invalidate(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, cacheKey(id)); err != nil {
		log.Warn().Err(err).Int64("author_id", id).Msg("author cache invalidation failed")
	}
}

func cacheKey(id int64) string {
	return authorCacheKeyPrefix + strconv.FormatInt(id, 10)
}
