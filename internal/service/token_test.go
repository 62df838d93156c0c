package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	InitTokens("test-secret")

	tokenString, err := GenerateToken(42, false)
	require.NoError(t, err)

	claims, err := ParseToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.False(t, claims.Admin)
}

func TestTokenAdminClaim(t *testing.T) {
	InitTokens("test-secret")

	tokenString, err := GenerateToken(7, true)
	require.NoError(t, err)

	claims, err := ParseToken(tokenString)
	require.NoError(t, err)
	assert.True(t, claims.Admin)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	InitTokens("test-secret")

	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}
