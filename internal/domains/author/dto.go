package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Pagination bounds for list endpoints
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// CreateAuthorRequest - POST /v1/authors
type CreateAuthorRequest struct {
	Name        string  `json:"name"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// Validate checks every field and reports all failures at once
func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error(ErrNameRequired.Message)),
		validation.Field(&r.PhoneNumber, validation.By(phoneRule)),
	)
}

// ToEntity converts CreateAuthorRequest to Author entity
func (r *CreateAuthorRequest) ToEntity() *Author {
	a := &Author{Name: r.Name}
	if r.PhoneNumber != nil && *r.PhoneNumber != "" {
		phone := *r.PhoneNumber
		a.PhoneNumber = &phone
	}
	return a
}

// UpdateAuthorRequest - PATCH /v1/authors/:id
// All fields optional for partial updates. An empty phone_number clears it.
type UpdateAuthorRequest struct {
	Name        *string `json:"name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// Validate checks the fields that are present
func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty.Error(ErrNameRequired.Message)),
		validation.Field(&r.PhoneNumber, validation.By(phoneRule)),
	)
}

// ApplyToEntity applies UpdateAuthorRequest to existing Author entity
func (r *UpdateAuthorRequest) ApplyToEntity(a *Author) {
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.PhoneNumber != nil {
		if *r.PhoneNumber == "" {
			a.PhoneNumber = nil
		} else {
			phone := *r.PhoneNumber
			a.PhoneNumber = &phone
		}
	}
}

func phoneRule(value interface{}) error {
	phone, _ := value.(*string)
	if phone == nil {
		return nil
	}
	_, err := ValidatePhoneNumber(*phone)
	return err
}

// AuthorResponse - Basic author information
type AuthorResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// AuthorListResponse - Paginated list response
type AuthorListResponse struct {
	Data       []AuthorResponse `json:"data"`
	Pagination PaginationMeta   `json:"pagination"`
}

// PaginationMeta - Reusable pagination metadata
type PaginationMeta struct {
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	TotalItems int64 `json:"total_items"`
}

// AuthorFilter - Query parameters for list
type AuthorFilter struct {
	Search string `form:"search"` // Partial name match, case-insensitive
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

// Normalize clamps pagination values into the accepted range
func (f *AuthorFilter) Normalize() {
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

// ToResponse converts Author entity to AuthorResponse DTO
func (a Author) ToResponse() AuthorResponse {
	return AuthorResponse{
		ID:          a.ID,
		Name:        a.Name,
		PhoneNumber: a.PhoneNumber,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
