package token_test

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/abdsayeed/rentease-go/token"
)

func signedToken(t *testing.T, claims jwtlib.MapClaims) string {
	t.Helper()
	raw, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func TestIntrospect(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	token.NowTimeFunc = func() time.Time { return now }
	t.Cleanup(func() { token.NowTimeFunc = time.Now })

	t.Run("live token", func(t *testing.T) {
		raw := signedToken(t, jwtlib.MapClaims{
			"sub":   "user-1",
			"email": "test@example.com",
			"role":  "agent",
			"iss":   "rentease",
			"iat":   now.Add(-time.Minute).Unix(),
			"exp":   now.Add(15 * time.Minute).Unix(),
		})

		intro, err := token.Introspect(raw)
		require.NoError(t, err)
		require.True(t, intro.Active)
		require.Equal(t, "user-1", intro.Subject)
		require.Equal(t, "test@example.com", intro.Email)
		require.Equal(t, "agent", intro.Role)
		require.Equal(t, "rentease", intro.Issuer)
		require.Equal(t, 15*time.Minute, intro.ExpiresIn())
	})

	t.Run("expired token", func(t *testing.T) {
		raw := signedToken(t, jwtlib.MapClaims{
			"sub": "user-1",
			"exp": now.Add(-time.Minute).Unix(),
		})

		intro, err := token.Introspect(raw)
		require.NoError(t, err)
		require.False(t, intro.Active)
		require.Negative(t, intro.ExpiresIn())
	})

	t.Run("empty token is inactive, not an error", func(t *testing.T) {
		intro, err := token.Introspect("  ")
		require.NoError(t, err)
		require.False(t, intro.Active)
	})

	t.Run("garbage token", func(t *testing.T) {
		intro, err := token.Introspect("not-a-jwt")
		require.Error(t, err)
		require.False(t, intro.Active)
	})
}
