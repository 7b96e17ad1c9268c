package author

import (
	"fmt"
	"time"
)

// Author represents the core Author entity
// This is the domain model, independent of database/API concerns
type Author struct {
	ID   int64  `json:"id" db:"id"`     // 0 until the row is inserted
	Name string `json:"name" db:"name"` // Required, unique (exact, case-sensitive)

	// Optional, any formatting as long as it carries exactly 10 digits
	PhoneNumber *string `json:"phone_number" db:"phone_number"`

	// Audit timestamps, assigned by the database
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"` // NULL until first update
}

// IsNew reports whether the author has not been persisted yet
func (a *Author) IsNew() bool {
	return a.ID == 0
}

// HasPhoneNumber checks if author has a phone number
func (a *Author) HasPhoneNumber() bool {
	return a.PhoneNumber != nil && *a.PhoneNumber != ""
}

// Validate runs the field-level rules. The uniqueness of Name needs storage
// and is checked by ValidateAuthorName inside the write transaction.
func (a *Author) Validate() error {
	if err := ValidateName(a.Name); err != nil {
		return err
	}
	if a.HasPhoneNumber() {
		if _, err := ValidatePhoneNumber(*a.PhoneNumber); err != nil {
			return err
		}
	}
	return nil
}

func (a Author) String() string {
	return fmt.Sprintf("<Author %s>", a.Name)
}
