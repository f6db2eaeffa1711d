package service

import (
	"testing"
	"time"

	"github.com/angusyg/mean-stack/internal/auth/domain"
	autherror "github.com/angusyg/mean-stack/internal/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name          string
		secret        string
		expirySeconds int
	}{
		{
			name:          "valid parameters",
			secret:        "test-secret-key",
			expirySeconds: 600,
		},
		{
			name:          "empty secret",
			secret:        "",
			expirySeconds: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService(tt.secret, tt.expirySeconds)

			assert.NotNil(t, ts)
			assert.Equal(t, tt.secret, ts.TokenSecret)
			assert.Equal(t, time.Duration(tt.expirySeconds)*time.Second, ts.AccessTokenExpiry)
		})
	}
}

func TestTokenService_Generate(t *testing.T) {
	tests := []struct {
		name string
		user *domain.User
	}{
		{
			name: "user role",
			user: &domain.User{ID: "user-123", Login: "TEST", Roles: []string{"USER"}},
		},
		{
			name: "multiple roles",
			user: &domain.User{ID: "admin-456", Login: "ADMIN", Roles: []string{"ADMIN", "USER"}},
		},
		{
			name: "empty user data",
			user: &domain.User{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService("test-secret-key-123", 600)

			beforeGenerate := time.Now()
			token, err := ts.Generate(tt.user)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims := &JWTCustomClaims{}
			parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
				return []byte(ts.TokenSecret), nil
			})
			require.NoError(t, err)
			assert.True(t, parsed.Valid)
			assert.Equal(t, tt.user.ID, claims.UserID)
			assert.Equal(t, tt.user.Login, claims.Login)
			assert.Equal(t, tt.user.Roles, claims.Roles)
			assert.True(t, claims.ExpiresAt.Time.After(beforeGenerate))
		})
	}
}

func TestTokenService_Verify_RoundTrip(t *testing.T) {
	ts := NewTokenService("test-secret", 600)
	user := &domain.User{ID: "user-123", Login: "TEST", Roles: []string{"USER"}}

	token, err := ts.Generate(user)
	require.NoError(t, err)

	claims, err := ts.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Login, claims.Login)
	assert.Equal(t, user.Roles, claims.Roles)
}

func TestTokenService_Verify_Failures(t *testing.T) {
	ts := NewTokenService("test-secret", 600)
	user := &domain.User{ID: "user-123", Login: "TEST", Roles: []string{"USER"}}

	t.Run("empty token", func(t *testing.T) {
		claims, err := ts.Verify("")
		assert.ErrorIs(t, err, autherror.ErrNoJwtToken)
		assert.Nil(t, claims)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenService("another-secret", 600)
		token, err := other.Generate(user)
		require.NoError(t, err)

		claims, err := ts.Verify(token)
		assert.ErrorIs(t, err, autherror.ErrJwtTokenSignature)
		assert.Nil(t, claims)
	})

	t.Run("garbage token", func(t *testing.T) {
		claims, err := ts.Verify("not.a.jwt")
		assert.ErrorIs(t, err, autherror.ErrJwtTokenSignature)
		assert.Nil(t, claims)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		// alg=none tokens must never pass, whatever the payload says.
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone,
			JWTCustomClaims{UserID: user.ID, Login: user.Login}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		claims, err := ts.Verify(unsigned)
		assert.ErrorIs(t, err, autherror.ErrJwtTokenSignature)
		assert.Nil(t, claims)
	})

	t.Run("zero ttl expires immediately", func(t *testing.T) {
		expired := NewTokenService("test-secret", 0)
		token, err := expired.Generate(user)
		require.NoError(t, err)

		time.Sleep(time.Millisecond)

		claims, err := expired.Verify(token)
		assert.ErrorIs(t, err, autherror.ErrJwtTokenExpired)
		assert.Nil(t, claims)
	})
}

func TestTokenService_NewRefreshToken(t *testing.T) {
	ts := NewTokenService("test-secret", 600)

	first := ts.NewRefreshToken()
	second := ts.NewRefreshToken()

	assert.NotEqual(t, first, second)

	// Refresh tokens are opaque uuids, not JWTs.
	_, err := uuid.Parse(first)
	require.NoError(t, err)
}
