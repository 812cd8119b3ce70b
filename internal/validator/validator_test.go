package validator

import (
	"testing"

	"adira_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_RegisterRequest(t *testing.T) {
	t.Parallel()

	v := New()

	valid := &dto.RegisterRequest{
		Username:    "alice.smith",
		Email:       "alice@example.com",
		Password:    "Str0ng-passw0rd!",
		Password2:   "Str0ng-passw0rd!",
		DateOfBirth: "1990-05-01",
	}
	assert.NoError(t, v.Validate(valid))
}

func TestValidate_MissingFields(t *testing.T) {
	t.Parallel()

	v := New()

	err := v.Validate(&dto.RegisterRequest{})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)

	// Ключи ошибок - json-имена полей
	assert.Equal(t, "This field is required", vErr.Errors["username"])
	assert.Equal(t, "This field is required", vErr.Errors["email"])
	assert.Equal(t, "This field is required", vErr.Errors["password"])
	assert.Equal(t, "This field is required", vErr.Errors["password2"])
}

func TestValidate_BadEmail(t *testing.T) {
	t.Parallel()

	v := New()

	err := v.Validate(&dto.RegisterRequest{
		Username:  "alice",
		Email:     "not-an-email",
		Password:  "x",
		Password2: "x",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
}

func TestValidate_UsernameCharset(t *testing.T) {
	t.Parallel()

	v := New()

	// Django-совместимый набор символов: буквы, цифры и @/./+/-/_
	for _, ok := range []string{"alice", "alice.smith", "a+b@c", "user_1-x"} {
		err := v.Validate(&dto.RegisterRequest{
			Username:  ok,
			Email:     "a@b.com",
			Password:  "x",
			Password2: "x",
		})
		assert.NoError(t, err, "username %q", ok)
	}

	err := v.Validate(&dto.RegisterRequest{
		Username:  "has spaces",
		Email:     "a@b.com",
		Password:  "x",
		Password2: "x",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors["username"], "Enter a valid username")
}

func TestValidate_BadDate(t *testing.T) {
	t.Parallel()

	v := New()

	err := v.Validate(&dto.RegisterRequest{
		Username:    "alice",
		Email:       "a@b.com",
		Password:    "x",
		Password2:   "x",
		DateOfBirth: "05/01/1990",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be a valid date in 2006-01-02 format", vErr.Errors["date_of_birth"])
}

func TestValidate_ProductBounds(t *testing.T) {
	t.Parallel()

	v := New()

	price := -1.0
	err := v.Validate(&dto.UpdateProductRequest{Price: &price})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be greater than or equal to 0", vErr.Errors["price"])
}
