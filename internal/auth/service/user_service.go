package service

import (
	"context"
	"strings"

	"github.com/angusyg/mean-stack/config"
	"github.com/angusyg/mean-stack/internal/auth/domain"
	"github.com/angusyg/mean-stack/internal/auth/dto"
	"github.com/angusyg/mean-stack/internal/auth/password"
	autherror "github.com/angusyg/mean-stack/internal/errors"
)

// UserService orchestrates the session lifecycle: login, refresh, logout and
// user provisioning. All failures are typed; nothing is swallowed.
type UserService struct {
	repo         domain.UserRepository
	tokenService TokenGenerator
	cfg          *config.Config
}

func NewUserService(repo domain.UserRepository, tokenService TokenGenerator, cfg *config.Config) *UserService {
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
		cfg:          cfg,
	}
}

// Login authenticates credentials and opens a session. On success a fresh
// opaque refresh token overwrites the stored one (invalidating any previous
// session) and a new access token is signed from the persisted record.
// Exactly one persistence write. Bad login and bad password produce the same
// error shape with distinct codes.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	user, err := s.repo.GetByLogin(ctx, input.Login)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.NewUnauthorizedAccessError(autherror.CodeBadLogin, "Bad login")
	}

	if !password.Compare(input.Password, user.PasswordHash) {
		return nil, autherror.NewUnauthorizedAccessError(autherror.CodeBadPassword, "Bad password")
	}

	updated, err := s.repo.UpdateRefreshToken(ctx, user.ID, s.tokenService.NewRefreshToken())
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, autherror.NewApiError(autherror.CodeUserNotFound, "No user found for login")
	}

	accessToken, err := s.tokenService.Generate(updated)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: updated.RefreshToken,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// principal comes from the authentication middleware; its login is trusted
// here without re-verifying the original token. The user is re-fetched so
// the new access token carries current roles, not the snapshot in the old
// token. The refresh token itself is not rotated.
func (s *UserService) Refresh(ctx context.Context, principal *domain.User, suppliedToken string) (*dto.AccessTokenResponse, error) {
	if suppliedToken == "" {
		return nil, autherror.NewUnauthorizedAccessError(autherror.CodeMissingRefreshToken, "Refresh token's missing")
	}

	user, err := s.repo.GetByLogin(ctx, principal.Login)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// The principal authenticated moments ago, so a miss here is a
		// server-consistency fault, not an auth failure.
		return nil, autherror.NewApiError(autherror.CodeUserNotFound, "No user found for login")
	}

	if user.RefreshToken == "" || user.RefreshToken != suppliedToken {
		return nil, autherror.NewUnauthorizedAccessError(autherror.CodeRefreshNotAllowed, "Refresh token has been revoked")
	}

	accessToken, err := s.tokenService.Generate(user)
	if err != nil {
		return nil, err
	}

	return &dto.AccessTokenResponse{AccessToken: accessToken}, nil
}

// Logout is a stateless no-op: clients discard their tokens. The stored
// refresh token is deliberately left in place (see DESIGN.md).
func (s *UserService) Logout(ctx context.Context) error {
	return nil
}

// Register provisions a new user. The password is hashed before the record
// is constructed, so the hashing step is explicit and testable instead of
// hiding in a persistence hook.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	login := strings.TrimSpace(input.Login)

	existing, err := s.repo.GetByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.NewBadRequestError(autherror.CodeLoginInUse, "Login already in use")
	}

	hash, err := password.Hash(input.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := domain.NewUser(login, hash, input.Roles)
	if err != nil {
		return nil, autherror.NewBadRequestError(autherror.CodeInvalidInput, err.Error())
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// FindByLogin resolves the current user record for a verified login claim.
// Used by the authentication middleware to attach live role data.
func (s *UserService) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	return s.repo.GetByLogin(ctx, login)
}
