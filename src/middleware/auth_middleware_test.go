package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"fintrack-server/src/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTokenFromRequest(t *testing.T) {
	secret := []byte("test-secret")

	tok, err := auth.GenerateToken("user@example.com", secret, 30*time.Minute)
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/api/balance", nil)
	r.Header.Set("Authorization", "Bearer "+tok)

	email, err := ParseTokenFromRequest(r, secret)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", email)
}

func TestParseTokenFromRequest_MissingHeader(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/balance", nil)

	_, err := ParseTokenFromRequest(r, []byte("test-secret"))
	assert.Error(t, err)
}

func TestParseTokenFromRequest_WrongSecret(t *testing.T) {
	tok, err := auth.GenerateToken("user@example.com", []byte("right"), 30*time.Minute)
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/api/balance", nil)
	r.Header.Set("Authorization", "Bearer "+tok)

	_, err = ParseTokenFromRequest(r, []byte("wrong"))
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
