package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: UniqueViolationCode, ConstraintName: AuthorNameConstraint}

	assert.True(t, IsUniqueViolation(dup, AuthorNameConstraint))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", dup), AuthorNameConstraint))
	assert.False(t, IsUniqueViolation(dup, "posts_pkey"))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503", ConstraintName: AuthorNameConstraint}, AuthorNameConstraint))
	assert.False(t, IsUniqueViolation(errors.New("boom"), AuthorNameConstraint))
}
