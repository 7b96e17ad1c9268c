package utils

import (
	"fmt"
	"strings"
)

// Where joins clauses with AND behind a WHERE keyword; no clauses yields ""
func Where(clauses ...string) string {
	if len(clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(clauses, " AND ")
}

// Page returns an id-ordered LIMIT/OFFSET suffix whose placeholders
// follow n already-bound arguments
func Page(n int) string {
	return fmt.Sprintf(" ORDER BY id ASC LIMIT $%d OFFSET $%d", n+1, n+2)
}

// EscapeLike keeps %, _ and \ in user input literal inside a LIKE pattern
func EscapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	return strings.ReplaceAll(s, "_", `\_`)
}
