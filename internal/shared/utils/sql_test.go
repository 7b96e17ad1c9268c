package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhere(t *testing.T) {
	assert.Equal(t, "", Where())
	assert.Equal(t, " WHERE a = $1", Where("a = $1"))
	assert.Equal(t, " WHERE a = $1 AND b = $2", Where("a = $1", "b = $2"))
}

func TestPage(t *testing.T) {
	assert.Equal(t, " ORDER BY id ASC LIMIT $1 OFFSET $2", Page(0))
	assert.Equal(t, " ORDER BY id ASC LIMIT $3 OFFSET $4", Page(2))
}

func TestEscapeLike(t *testing.T) {
	tests := map[string]string{
		"plain":  "plain",
		"50%":    `50\%`,
		"a_b":    `a\_b`,
		`c:\dir`: `c:\\dir`,
	}
	for in, want := range tests {
		assert.Equal(t, want, EscapeLike(in), in)
	}
}
