package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Str0ng-passw0rd!")
	require.NoError(t, err)

	assert.NotEqual(t, "Str0ng-passw0rd!", hash)
	assert.True(t, CheckPasswordHash("Str0ng-passw0rd!", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestGenerateVerificationToken(t *testing.T) {
	t.Parallel()

	first, err := GenerateVerificationToken()
	require.NoError(t, err)
	second, err := GenerateVerificationToken()
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	// URL-safe: токен вставляется в query-параметр без экранирования
	assert.NotContains(t, first, "+")
	assert.NotContains(t, first, "/")
	assert.NotContains(t, first, "=")
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		identity []string
		want     []string
	}{
		{
			name:     "strong password",
			password: "correct-horse-battery",
			identity: []string{"alice", "alice@example.com"},
			want:     nil,
		},
		{
			name:     "too short",
			password: "abc1",
			want:     []string{"This password is too short. It must contain at least 8 characters."},
		},
		{
			name:     "entirely numeric",
			password: "4815162342",
			want:     []string{"This password is entirely numeric."},
		},
		{
			name:     "common password",
			password: "password123",
			want:     []string{"This password is too common."},
		},
		{
			name:     "similar to username",
			password: "alice2024",
			identity: []string{"alice"},
			want:     []string{"The password is too similar to your other personal information."},
		},
		{
			name:     "similar to email local part",
			password: "my-alice.smith-pass",
			identity: []string{"user1", "alice.smith@example.com"},
			want:     []string{"The password is too similar to your other personal information."},
		},
		{
			name:     "short and numeric accumulates reasons",
			password: "1234",
			want: []string{
				"This password is too short. It must contain at least 8 characters.",
				"This password is entirely numeric.",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ValidatePassword(tt.password, tt.identity...)
			assert.Equal(t, tt.want, got)
		})
	}
}
