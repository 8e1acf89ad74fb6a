package service

import (
	"testing"
	"time"

	"github.com/dom/storefront-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIssuer() *TokenIssuer {
	return NewTokenIssuer(&config.Config{
		JWTSecret:       "unit-test-secret",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	})
}

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer := testIssuer()
	userID := uuid.New()

	pair, err := issuer.Issue(userID)
	require.NoError(t, err)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	for _, token := range []string{pair.AccessToken, pair.RefreshToken} {
		claims, err := issuer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.NotEmpty(t, claims.ID)
	}
}

func TestTokenIssuer_Lifetimes(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer := testIssuer().WithClock(func() time.Time { return now })

	pair, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	access, err := issuer.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.True(t, now.Add(time.Hour).Equal(access.ExpiresAt.Time))
	assert.True(t, now.Equal(access.IssuedAt.Time))

	refresh, err := issuer.Verify(pair.RefreshToken)
	require.NoError(t, err)
	assert.True(t, now.Add(7*24*time.Hour).Equal(refresh.ExpiresAt.Time))
}

func TestTokenIssuer_RotationYieldsDistinctTokens(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer := testIssuer().WithClock(func() time.Time { return now })
	userID := uuid.New()

	first, err := issuer.Issue(userID)
	require.NoError(t, err)
	second, err := issuer.Issue(userID)
	require.NoError(t, err)

	assert.NotEqual(t, first.AccessToken, second.AccessToken)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
}

func TestTokenIssuer_VerifyRejects(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer := testIssuer().WithClock(func() time.Time { return now })
	userID := uuid.New()

	pair, err := issuer.Issue(userID)
	require.NoError(t, err)

	otherSecret := NewTokenIssuer(&config.Config{JWTSecret: "other", AccessTokenTTL: time.Hour, RefreshTokenTTL: time.Hour}).
		WithClock(func() time.Time { return now })
	foreign, err := otherSecret.Issue(userID)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}).SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: userID}).
		SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}).SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		issuer *TokenIssuer
	}{
		{name: "garbage", token: "not-a-token", issuer: issuer},
		{name: "wrong secret", token: foreign.AccessToken, issuer: issuer},
		{name: "none algorithm", token: noneToken, issuer: issuer},
		{name: "other hmac algorithm", token: hs512, issuer: issuer},
		{name: "missing expiry", token: noExpiry, issuer: issuer},
		{name: "missing user id", token: noUser, issuer: issuer},
		{
			name:   "expired access token",
			token:  pair.AccessToken,
			issuer: issuer.WithClock(func() time.Time { return now.Add(61 * time.Minute) }),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.issuer.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.ErrorIs(t, err, ErrUnauthorized)
		})
	}
}
