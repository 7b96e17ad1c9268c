// internal/domains/author/service/author_service.go
package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/author"
	"blog-backend/internal/observability/metrics"
)

const recordName = "author"

// authorService implements author.Service interface
type authorService struct {
	repo author.Repository
}

// NewAuthorService creates a new author service instance
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	a := req.ToEntity()
	if err := a.Validate(); err != nil {
		metrics.RecordWrite(recordName, "create", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, a)
	metrics.RecordWrite(recordName, "create", err)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("author_id", created.ID).Msg("author created")
	return created, nil
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	if id <= 0 {
		return nil, author.ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) List(ctx context.Context, filter author.AuthorFilter) ([]author.Author, int64, error) {
	filter.Normalize()
	return s.repo.List(ctx, filter)
}

// Update loads the author, applies the partial request and writes the result.
// Name uniqueness is re-checked by the repository inside the update transaction.
func (s *authorService) Update(ctx context.Context, id int64, req *author.UpdateAuthorRequest) (*author.Author, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	req.ApplyToEntity(&updated)

	if err := updated.Validate(); err != nil {
		metrics.RecordWrite(recordName, "update", err)
		return nil, err
	}

	result, err := s.repo.Update(ctx, &updated)
	metrics.RecordWrite(recordName, "update", err)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("author_id", id).Msg("author updated")
	return result, nil
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return author.ErrInvalidID
	}

	err := s.repo.Delete(ctx, id)
	metrics.RecordWrite(recordName, "delete", err)
	return err
}
