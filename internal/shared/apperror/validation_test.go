package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	err := NewValidation("name", "Name field is required.")
	assert.Equal(t, "Name field is required.", err.Error())
	assert.Equal(t, "name", err.Field)
}

func TestAsValidation(t *testing.T) {
	base := NewValidation("content", "too short")
	wrapped := fmt.Errorf("create post: %w", base)

	ve, ok := AsValidation(wrapped)
	require.True(t, ok)
	assert.Same(t, base, ve)
	assert.True(t, IsValidation(wrapped))

	_, ok = AsValidation(errors.New("connection refused"))
	assert.False(t, ok)
	assert.False(t, IsValidation(nil))
}
