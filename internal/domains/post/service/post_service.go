package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/observability/metrics"
)

const recordName = "post"

type postService struct {
	repo post.Repository
}

// NewPostService creates a new post service instance
func NewPostService(repo post.Repository) post.Service {
	return &postService{repo: repo}
}

func (s *postService) Create(ctx context.Context, req *post.CreatePostRequest) (*post.Post, error) {
	p := req.ToEntity()
	if err := p.Validate(); err != nil {
		metrics.RecordWrite(recordName, "create", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, p)
	metrics.RecordWrite(recordName, "create", err)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("post_id", created.ID).Str("title", created.Title).Msg("post created")
	return created, nil
}

func (s *postService) GetByID(ctx context.Context, id int64) (*post.Post, error) {
	if id <= 0 {
		return nil, post.ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}

func (s *postService) List(ctx context.Context, filter post.PostFilter) ([]post.Post, int64, error) {
	filter.Normalize()
	return s.repo.List(ctx, filter)
}

func (s *postService) Update(ctx context.Context, id int64, req *post.UpdatePostRequest) (*post.Post, error) {
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

	log.Info().Int64("post_id", id).Msg("post updated")
	return result, nil
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return post.ErrInvalidID
	}

	err := s.repo.Delete(ctx, id)
	metrics.RecordWrite(recordName, "delete", err)
	return err
}
