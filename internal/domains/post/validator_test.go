package post

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/shared/apperror"
)

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{name: "empty", content: "", wantErr: true},
		{name: "one short", content: strings.Repeat("a", 249), wantErr: true},
		{name: "exact minimum", content: strings.Repeat("a", 250)},
		{name: "long", content: strings.Repeat("a", 5000)},
		{name: "multibyte counted by character", content: strings.Repeat("é", 250)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateContent(tt.content)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrContentTooShort)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.content, got)
		})
	}
}

func TestValidateSummary(t *testing.T) {
	_, err := ValidateSummary("")
	assert.NoError(t, err)

	_, err = ValidateSummary(strings.Repeat("s", 250))
	assert.NoError(t, err)

	_, err = ValidateSummary(strings.Repeat("s", 251))
	assert.ErrorIs(t, err, ErrSummaryTooLong)
	assert.Equal(t, "Post summary must be a maximum of 250 characters.", err.Error())
}

func TestValidateCategory(t *testing.T) {
	for _, ok := range []string{"", "Fiction", "Non-Fiction"} {
		_, err := ValidateCategory(ok)
		assert.NoError(t, err, ok)
	}
	for _, bad := range []string{"Mystery", "fiction", "Non-fiction", " Fiction"} {
		_, err := ValidateCategory(bad)
		assert.ErrorIs(t, err, ErrInvalidCategory, bad)
	}
}

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		title   string
		wantErr bool
	}{
		{title: "Top 10 Tips"},
		{title: "The Secret Life of Bees"},
		{title: "You Won't Believe This"},
		{title: "Guess Who"},
		{title: "Stop Motion", wantErr: true},
		{title: "Daily News", wantErr: true},
		{title: "top 10 tips", wantErr: true},
		{title: "You won't believe this", wantErr: true},
		{title: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			_, err := ValidateTitle(tt.title)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrTitleNotCatchy)
				assert.True(t, apperror.IsValidation(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidators_AreIdempotent(t *testing.T) {
	for i := 0; i < 3; i++ {
		_, err := ValidateTitle("Daily News")
		assert.ErrorIs(t, err, ErrTitleNotCatchy)
		_, err = ValidateTitle("Top Picks")
		assert.NoError(t, err)
	}
}

func TestPost_Validate(t *testing.T) {
	content := strings.Repeat("x", 250)
	mystery := "Mystery"
	fiction := "Fiction"

	assert.NoError(t, (&Post{Title: "Top 10 Tips", Content: content}).Validate())
	assert.NoError(t, (&Post{Title: "Top 10 Tips", Content: content, Category: &fiction}).Validate())
	assert.ErrorIs(t, (&Post{Title: "Top 10 Tips", Content: content, Category: &mystery}).Validate(), ErrInvalidCategory)
	assert.ErrorIs(t, (&Post{Title: "Daily News", Content: content}).Validate(), ErrTitleNotCatchy)
	assert.ErrorIs(t, (&Post{Title: "Top 10 Tips", Content: "short"}).Validate(), ErrContentTooShort)

	// title is checked first
	assert.ErrorIs(t, (&Post{Title: "Daily News", Content: "short"}).Validate(), ErrTitleNotCatchy)
}

func TestRuleSets_ReturnCopies(t *testing.T) {
	phrases := TitlePhrases()
	require.Len(t, phrases, 4)
	phrases[0] = "Daily"

	cats := Categories()
	require.Equal(t, []string{"Fiction", "Non-Fiction"}, cats)
	cats[0] = "Mystery"

	_, err := ValidateTitle("Daily News")
	assert.ErrorIs(t, err, ErrTitleNotCatchy)
	_, err = ValidateTitle("You Won't Believe This")
	assert.NoError(t, err)

	_, err = ValidateCategory("Mystery")
	assert.ErrorIs(t, err, ErrInvalidCategory)
	_, err = ValidateCategory("Fiction")
	assert.NoError(t, err)
}
