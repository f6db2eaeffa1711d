package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/angusyg/mean-stack/internal/auth/service TokenGenerator

import (
	"errors"
	"fmt"
	"time"

	"github.com/angusyg/mean-stack/internal/auth/domain"
	autherror "github.com/angusyg/mean-stack/internal/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenGenerator signs and verifies access tokens and mints opaque refresh
// tokens. Access tokens are stateless: validity rests on signature and
// expiry alone, never on a store lookup.
type TokenGenerator interface {
	Generate(user *domain.User) (string, error)
	Verify(tokenString string) (*JWTCustomClaims, error)
	NewRefreshToken() string
}

type TokenService struct {
	TokenSecret       string
	AccessTokenExpiry time.Duration
}

// JWTCustomClaims is the signed claim bundle carried by access tokens.
type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID string   `json:"id"`
	Login  string   `json:"login"`
	Roles  []string `json:"roles"`
}

func NewTokenService(secret string, expirySeconds int) *TokenService {
	return &TokenService{
		TokenSecret:       secret,
		AccessTokenExpiry: time.Duration(expirySeconds) * time.Second,
	}
}

// Generate signs a new HS256 access token for the user with the configured
// lifetime.
func (ts *TokenService) Generate(user *domain.User) (string, error) {
	now := time.Now()

	claims := JWTCustomClaims{
		UserID: user.ID,
		Login:  user.Login,
		Roles:  user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.TokenSecret))
}

// Verify parses and validates an access token. It fails with exactly one of
// ErrNoJwtToken (empty input), ErrJwtTokenExpired (exp elapsed) or
// ErrJwtTokenSignature (anything else: bad secret, malformed, wrong alg);
// the middleware maps each to a distinct client-visible error.
func (ts *TokenService) Verify(tokenString string) (*JWTCustomClaims, error) {
	if tokenString == "" {
		return nil, autherror.ErrNoJwtToken
	}

	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.TokenSecret), nil
	})

	switch {
	case err == nil && token.Valid:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, autherror.ErrJwtTokenExpired
	default:
		return nil, autherror.ErrJwtTokenSignature
	}
}

// NewRefreshToken mints an opaque refresh token. Random uuid, no embedded
// expiry: revocation happens by overwrite on the user record.
func (ts *TokenService) NewRefreshToken() string {
	return uuid.NewString()
}
