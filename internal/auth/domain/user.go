package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/angusyg/mean-stack/pkg/constant"
	"github.com/google/uuid"
)

var (
	ErrEmptyLogin        = errors.New("login must not be empty")
	ErrEmptyPasswordHash = errors.New("password hash must not be empty")
)

// Settings holds user preferences. Opaque to the auth core, persisted as-is.
type Settings struct {
	Theme string `json:"theme"`
}

// User is the identity record owned by the credential store.
// RefreshToken is the single currently valid refresh credential for the
// user: overwritten on every login, compared (never rotated) on refresh.
type User struct {
	ID           string
	Login        string
	PasswordHash string
	Roles        []string
	RefreshToken string
	Settings     Settings
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser builds a validated user ready for persistence. The password must
// already be hashed; hashing stays visible in the service layer instead of
// hiding behind a persistence hook.
func NewUser(login, passwordHash string, roles []string) (*User, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return nil, ErrEmptyLogin
	}
	if passwordHash == "" {
		return nil, ErrEmptyPasswordHash
	}
	if len(roles) == 0 {
		roles = []string{constant.RoleUser}
	}

	now := time.Now()

	return &User{
		ID:           uuid.NewString(),
		Login:        login,
		PasswordHash: passwordHash,
		Roles:        roles,
		RefreshToken: "",
		Settings:     Settings{Theme: constant.DefaultTheme},
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// HasAnyRole reports whether the user holds at least one of the given roles.
func (u *User) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		for _, owned := range u.Roles {
			if owned == role {
				return true
			}
		}
	}
	return false
}
