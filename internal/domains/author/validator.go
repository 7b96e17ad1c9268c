package author

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"
)

// PhoneDigits is the number of digits a phone number must carry
const PhoneDigits = 10

// nonDigit matches anything that is not a Unicode decimal digit
var nonDigit = regexp.MustCompile(`[^\p{Nd}]`)

// ValidatePhoneNumber accepts an empty value or any value whose digits, once
// every other character is stripped, number exactly PhoneDigits.
// The value is returned unchanged; formatting is kept as the caller wrote it.
func ValidatePhoneNumber(value string) (string, error) {
	if value == "" {
		return value, nil
	}
	if utf8.RuneCountInString(nonDigit.ReplaceAllString(value, "")) != PhoneDigits {
		return "", ErrInvalidPhoneNumber
	}
	return value, nil
}

// ValidateName checks that a name is present
func ValidateName(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	return nil
}

// NameLookup answers whether a name is already used by another author.
// Implementations must read through the handle of the write being guarded.
type NameLookup interface {
	// NameTaken reports whether an author other than excludeID has name.
	// excludeID 0 means no exclusion (insert).
	NameTaken(ctx context.Context, name string, excludeID int64) (bool, error)
}

// ValidateAuthorName is the pre-write hook run before every insert and update.
// The author's own row is excluded so renaming to the current name is allowed.
func ValidateAuthorName(ctx context.Context, lookup NameLookup, a *Author) error {
	if err := ValidateName(a.Name); err != nil {
		return err
	}

	taken, err := lookup.NameTaken(ctx, a.Name, a.ID)
	if err != nil {
		return fmt.Errorf("failed to check author name: %w", err)
	}
	if taken {
		return ErrNameTaken
	}
	return nil
}
