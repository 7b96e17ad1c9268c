package author

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateAuthorRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := CreateAuthorRequest{Name: "Alice", PhoneNumber: strPtr("(555) 123-4567")}
		assert.NoError(t, req.Validate())
	})

	t.Run("reports every failing field", func(t *testing.T) {
		req := CreateAuthorRequest{PhoneNumber: strPtr("12345")}
		err := req.Validate()
		require.Error(t, err)

		errs, ok := err.(validation.Errors)
		require.True(t, ok)
		assert.Len(t, errs, 2)
		assert.Equal(t, "Name field is required.", errs["name"].Error())
		assert.Equal(t, "Phone number must be exactly 10 digits.", errs["phone_number"].Error())
	})
}

func TestCreateAuthorRequest_ToEntity(t *testing.T) {
	a := (&CreateAuthorRequest{Name: "Alice", PhoneNumber: strPtr("")}).ToEntity()
	assert.Equal(t, "Alice", a.Name)
	assert.Nil(t, a.PhoneNumber)
	assert.True(t, a.IsNew())
}

func TestUpdateAuthorRequest(t *testing.T) {
	assert.Error(t, UpdateAuthorRequest{Name: strPtr("")}.Validate())
	assert.NoError(t, UpdateAuthorRequest{}.Validate())
	assert.NoError(t, UpdateAuthorRequest{PhoneNumber: strPtr("")}.Validate())

	a := &Author{ID: 3, Name: "Alice", PhoneNumber: strPtr("5551234567")}
	(&UpdateAuthorRequest{PhoneNumber: strPtr("")}).ApplyToEntity(a)
	assert.Nil(t, a.PhoneNumber)
	assert.Equal(t, "Alice", a.Name)

	(&UpdateAuthorRequest{Name: strPtr("Alicia"), PhoneNumber: strPtr("555-123-4567")}).ApplyToEntity(a)
	assert.Equal(t, "Alicia", a.Name)
	assert.Equal(t, "555-123-4567", *a.PhoneNumber)
}

func TestAuthorFilter_Normalize(t *testing.T) {
	f := AuthorFilter{Limit: 500, Offset: -3}
	f.Normalize()
	assert.Equal(t, MaxLimit, f.Limit)
	assert.Zero(t, f.Offset)

	f = AuthorFilter{}
	f.Normalize()
	assert.Equal(t, DefaultLimit, f.Limit)
}
