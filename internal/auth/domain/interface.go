package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/angusyg/mean-stack/internal/auth/domain UserRepository

import "context"

// UserRepository is the capability the auth core needs from the credential
// store. GetByLogin returns (nil, nil) when no user matches; errors are
// reserved for store faults. UpdateRefreshToken must overwrite the stored
// token atomically per user record.
type UserRepository interface {
	GetByLogin(ctx context.Context, login string) (*User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string) (*User, error)
	Create(ctx context.Context, user *User) error
}
