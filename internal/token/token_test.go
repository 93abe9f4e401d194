package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssue(t *testing.T) {
	signed, exp, err := Issue("secret", "user-uuid", 8*time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC().Add(8*time.Hour), exp, time.Minute)

	parsed, err := jwt.Parse(signed, func(tok *jwt.Token) (any, error) {
		return []byte("secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	sub, err := parsed.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "user-uuid", sub)
}

// Two tokens for the same user in the same instant must still differ.
func TestIssueUnique(t *testing.T) {
	first, _, err := Issue("secret", "user-uuid", time.Hour)
	require.NoError(t, err)
	second, _, err := Issue("secret", "user-uuid", time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
