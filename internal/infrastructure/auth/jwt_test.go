package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mkboutique/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		RefreshSecret:          "test-refresh-secret-key-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "mkboutique-test",
		MaxRefreshCount:        2,
	})
}

func testIdentity() Identity {
	return Identity{SocieteID: 3, UserID: 17, Login: "nadia", Role: "ADMIN"}
}

func TestNewJWTService_UsesSecretForRefreshIfNotProvided(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "only-secret"})
	assert.Equal(t, []byte("only-secret"), svc.refreshSecret)
}

func TestGenerateTokenPair(t *testing.T) {
	svc := newTestJWTService()

	pair, err := svc.GenerateTokenPair(testIdentity())
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.True(t, pair.RefreshTokenExpiresAt.After(pair.AccessTokenExpiresAt))

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, 3, claims.SocieteID)
	assert.Equal(t, 17, claims.UserID)
	assert.Equal(t, "nadia", claims.Login)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_Errors(t *testing.T) {
	svc := newTestJWTService()
	pair, err := svc.GenerateTokenPair(testIdentity())
	require.NoError(t, err)

	t.Run("refresh token is not an access token", func(t *testing.T) {
		_, err := svc.ValidateAccessToken(pair.RefreshToken)
		assert.ErrorIs(t, err, ErrInvalidToken, "signed with a different secret")
	})

	t.Run("wrong type with shared secret", func(t *testing.T) {
		shared := NewJWTService(config.JWTConfig{
			Secret:                 "same-secret-for-both-tokens-32-chars",
			AccessTokenExpiration:  time.Minute,
			RefreshTokenExpiration: time.Hour,
			Issuer:                 "mkboutique-test",
		})
		p, err := shared.GenerateTokenPair(testIdentity())
		require.NoError(t, err)
		_, err = shared.ValidateAccessToken(p.RefreshToken)
		assert.ErrorIs(t, err, ErrInvalidTokenType)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := newTestJWTService()
		expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
		p, err := expired.GenerateTokenPair(testIdentity())
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(p.AccessToken)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("missing societe", func(t *testing.T) {
		p, err := svc.GenerateTokenPair(Identity{UserID: 1, Login: "x"})
		require.NoError(t, err)
		_, err = svc.ValidateAccessToken(p.AccessToken)
		assert.ErrorIs(t, err, ErrMissingSocieteID)
	})

	t.Run("none algorithm is rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{SocieteID: 1, UserID: 1, TokenType: TokenTypeAccess})
		s, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.ValidateAccessToken(s)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestRefreshTokenPair(t *testing.T) {
	svc := newTestJWTService()
	id := testIdentity()
	pair, err := svc.GenerateTokenPair(id)
	require.NoError(t, err)

	t.Run("issues a new pair with incremented count", func(t *testing.T) {
		id.Role = "MANAGER"
		refreshed, err := svc.RefreshTokenPair(pair.RefreshToken, id)
		require.NoError(t, err)

		claims, err := svc.ValidateRefreshToken(refreshed.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, 1, claims.RefreshCount)

		access, err := svc.ValidateAccessToken(refreshed.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "MANAGER", access.Role)

		again, err := svc.RefreshTokenPair(refreshed.RefreshToken, id)
		require.NoError(t, err)
		_, err = svc.RefreshTokenPair(again.RefreshToken, id)
		assert.ErrorIs(t, err, ErrMaxRefreshExceeded)
	})

	t.Run("rejects a different user", func(t *testing.T) {
		other := id
		other.UserID = 99
		_, err := svc.RefreshTokenPair(pair.RefreshToken, other)
		assert.ErrorIs(t, err, ErrInvalidClaims)
	})

	t.Run("rejects access tokens", func(t *testing.T) {
		_, err := svc.RefreshTokenPair(pair.AccessToken, id)
		assert.Error(t, err)
	})
}

func TestClaims_Times(t *testing.T) {
	svc := newTestJWTService()
	pair, err := svc.GenerateTokenPair(testIdentity())
	require.NoError(t, err)
	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)

	assert.False(t, claims.GetIssuedAtTime().IsZero())
	assert.WithinDuration(t, pair.AccessTokenExpiresAt, claims.GetExpiresAtTime(), time.Second)
	assert.InDelta(t, (15 * time.Minute).Seconds(), claims.GetRemainingTTL().Seconds(), 5)
	assert.Zero(t, (&Claims{}).GetRemainingTTL())
}
