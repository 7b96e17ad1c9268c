package post

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Pagination bounds for list endpoints
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// CreatePostRequest - POST /v1/posts
type CreatePostRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Summary  *string `json:"summary,omitempty"`
	Category *string `json:"category,omitempty"`
}

// Validate checks every field and reports all failures at once
func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.By(fieldRule(ValidateTitle))),
		validation.Field(&r.Content, validation.By(fieldRule(ValidateContent))),
		validation.Field(&r.Summary, validation.By(fieldRule(ValidateSummary))),
		validation.Field(&r.Category, validation.By(fieldRule(ValidateCategory))),
	)
}

// ToEntity converts CreatePostRequest to Post entity
func (r *CreatePostRequest) ToEntity() *Post {
	return &Post{
		Title:    r.Title,
		Content:  r.Content,
		Summary:  optional(r.Summary),
		Category: optional(r.Category),
	}
}

// UpdatePostRequest - PATCH /v1/posts/:id
// Absent fields are left alone; an empty summary or category clears it.
type UpdatePostRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Summary  *string `json:"summary,omitempty"`
	Category *string `json:"category,omitempty"`
}

// Validate checks the fields that are present
func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.By(fieldRule(ValidateTitle))),
		validation.Field(&r.Content, validation.By(fieldRule(ValidateContent))),
		validation.Field(&r.Summary, validation.By(fieldRule(ValidateSummary))),
		validation.Field(&r.Category, validation.By(fieldRule(ValidateCategory))),
	)
}

// ApplyToEntity applies UpdatePostRequest to existing Post entity
func (r *UpdatePostRequest) ApplyToEntity(p *Post) {
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Content != nil {
		p.Content = *r.Content
	}
	if r.Summary != nil {
		p.Summary = optional(r.Summary)
	}
	if r.Category != nil {
		p.Category = optional(r.Category)
	}
}

// fieldRule adapts a field validator to ozzo; nil pointers are skipped
func fieldRule(fn func(string) (string, error)) validation.RuleFunc {
	return func(value interface{}) error {
		var s string
		switch v := value.(type) {
		case string:
			s = v
		case *string:
			if v == nil {
				return nil
			}
			s = *v
		default:
			return nil
		}
		_, err := fn(s)
		return err
	}
}

// optional copies s, mapping nil and "" to nil
func optional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

// PostResponse - API representation of a post
type PostResponse struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Summary   *string    `json:"summary,omitempty"`
	Category  *string    `json:"category,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ToResponse converts Post entity to PostResponse DTO
func (p Post) ToResponse() PostResponse {
	return PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Summary:   p.Summary,
		Category:  p.Category,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PostFilter - Query parameters for list
type PostFilter struct {
	Category string `form:"category"` // Exact match
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

// Normalize clamps pagination values into the accepted range
func (f *PostFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
