package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	ti, err := NewTokenIssuer("secret")
	require.NoError(t, err)

	tok, err := ti.GenerateToken("1")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := ti.ParseToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
	assert.Equal(t, "1", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.Nil(t, claims.ExpiresAt)

	uid, err := ti.GetUserIDFromToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "1", uid)
}

func TestTokenIssuer_UniquePerCall(t *testing.T) {
	ti, err := NewTokenIssuer("secret")
	require.NoError(t, err)
	fixed := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ti.now = func() time.Time { return fixed }

	seen := map[string]struct{}{}
	for i := 0; i < 50; i++ {
		tok, err := ti.GenerateToken("1")
		require.NoError(t, err)
		_, dup := seen[tok]
		require.False(t, dup, "duplicate token at iteration %d", i)
		seen[tok] = struct{}{}
	}
}

func TestTokenIssuer_RejectsForeignSecret(t *testing.T) {
	a, err := NewTokenIssuer("")
	require.NoError(t, err)
	b, err := NewTokenIssuer("")
	require.NoError(t, err)

	tok, err := a.GenerateToken("2")
	require.NoError(t, err)

	_, err = b.ParseToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuer_RejectsOtherAlgorithms(t *testing.T) {
	ti, err := NewTokenIssuer("secret")
	require.NoError(t, err)

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{UserID: "1"}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ti.ParseToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ti.ParseToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
