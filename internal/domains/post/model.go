package post

import (
	"fmt"
	"time"
)

// Post represents a blog post
type Post struct {
	ID       int64   `json:"id" db:"id"`
	Title    string  `json:"title" db:"title"`       // Must contain one of TitlePhrases()
	Content  string  `json:"content" db:"content"`   // At least MinContentLength characters
	Summary  *string `json:"summary" db:"summary"`   // At most MaxSummaryLength characters
	Category *string `json:"category" db:"category"` // One of Categories()

	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}

// Validate runs every field validator in column order and returns the first failure
func (p *Post) Validate() error {
	if _, err := ValidateTitle(p.Title); err != nil {
		return err
	}
	if _, err := ValidateContent(p.Content); err != nil {
		return err
	}
	if p.Summary != nil {
		if _, err := ValidateSummary(*p.Summary); err != nil {
			return err
		}
	}
	if p.Category != nil {
		if _, err := ValidateCategory(*p.Category); err != nil {
			return err
		}
	}
	return nil
}

func (p Post) String() string {
	return fmt.Sprintf("<Post %s>", p.Title)
}
