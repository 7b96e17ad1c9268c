package post

import (
	"strings"
	"unicode/utf8"
)

// Length bounds, counted in characters
const (
	MinContentLength = 250
	MaxSummaryLength = 250
)

// titlePhrases lists the phrases a title must contain at least one of.
// Matching is case-sensitive.
var titlePhrases = []string{"Won't Believe", "Secret", "Top", "Guess"}

// categories is the closed set of category values
var categories = []string{"Fiction", "Non-Fiction"}

// TitlePhrases returns a copy of the phrases a title must contain one of
func TitlePhrases() []string {
	return append([]string(nil), titlePhrases...)
}

// Categories returns a copy of the accepted category values
func Categories() []string {
	return append([]string(nil), categories...)
}

// ValidateContent rejects content shorter than MinContentLength characters
func ValidateContent(content string) (string, error) {
	if utf8.RuneCountInString(content) < MinContentLength {
		return "", ErrContentTooShort
	}
	return content, nil
}

// ValidateSummary accepts an empty summary
func ValidateSummary(summary string) (string, error) {
	if utf8.RuneCountInString(summary) > MaxSummaryLength {
		return "", ErrSummaryTooLong
	}
	return summary, nil
}

// ValidateCategory accepts an empty category
func ValidateCategory(category string) (string, error) {
	if category == "" {
		return category, nil
	}
	for _, c := range categories {
		if category == c {
			return category, nil
		}
	}
	return "", ErrInvalidCategory
}

// ValidateTitle requires at least one of titlePhrases as a substring
func ValidateTitle(title string) (string, error) {
	for _, phrase := range titlePhrases {
		if strings.Contains(title, phrase) {
			return title, nil
		}
	}
	return "", ErrTitleNotCatchy
}
