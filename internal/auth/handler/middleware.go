package handler

import (
	"strings"

	"github.com/angusyg/mean-stack/internal/auth/domain"
	autherror "github.com/angusyg/mean-stack/internal/errors"
	"github.com/angusyg/mean-stack/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

// Authenticate verifies the bearer access token and attaches the
// authenticated principal to the request. The user is re-resolved from the
// store by the login claim rather than trusted from the token, so role
// changes take effect on the next request.
func (h *AuthHandler) Authenticate(c *fiber.Ctx) error {
	claims, err := h.tokenService.Verify(bearerToken(c.Get(h.cfg.AccessTokenHeader)))
	if err != nil {
		return err
	}

	user, err := h.userService.FindByLogin(c.Context(), claims.Login)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.NewUnauthorizedAccessError(autherror.CodeUserNotFound, "No user found for login in JWT Token")
	}

	c.Locals(constant.PrincipalKey, user)

	return c.Next()
}

// RequiresRole gates a route on role membership. With no roles it is a
// passthrough; otherwise the principal's roles must intersect the allowed
// set. Must be mounted after Authenticate.
func (h *AuthHandler) RequiresRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if len(roles) == 0 {
			return c.Next()
		}

		principal := PrincipalFromCtx(c)
		if principal == nil {
			return autherror.ErrNoJwtToken
		}

		if !principal.HasAnyRole(roles...) {
			return autherror.NewForbiddenOperationError()
		}

		return c.Next()
	}
}

// PrincipalFromCtx returns the authenticated user attached by Authenticate,
// or nil when the request is unauthenticated.
func PrincipalFromCtx(c *fiber.Ctx) *domain.User {
	principal, _ := c.Locals(constant.PrincipalKey).(*domain.User)
	return principal
}

// bearerToken extracts the token from a "bearer <token>" header value.
// Anything else, including a missing scheme, reads as no token at all.
func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], constant.BearerScheme) {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
