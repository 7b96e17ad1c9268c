package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	// UniqueViolationCode indicates a unique constraint violation.
	UniqueViolationCode = "23505"
)

func AsPgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// IsUniqueViolation reports whether err is a unique violation on constraint
func IsUniqueViolation(err error, constraint string) bool {
	pe, ok := AsPgError(err)
	return ok && pe.Code == UniqueViolationCode && pe.ConstraintName == constraint
}
