package handler

import (
	"fmt"

	"github.com/angusyg/mean-stack/config"
	"github.com/angusyg/mean-stack/internal/auth/dto"
	"github.com/angusyg/mean-stack/internal/auth/service"
	autherror "github.com/angusyg/mean-stack/internal/errors"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AuthHandler exposes the auth core over HTTP. Handlers return typed errors;
// the app-level error handler owns the wire mapping.
type AuthHandler struct {
	userService  *service.UserService
	tokenService service.TokenGenerator
	cfg          *config.Config
	log          *zap.Logger
}

func NewAuthHandler(userService *service.UserService, tokenService service.TokenGenerator, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		tokenService: tokenService,
		cfg:          cfg,
		log:          log,
	}
}

// Login opens a session from a credentials body and returns both tokens.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.NewBadRequestError(autherror.CodeInvalidInput, "invalid input")
	}

	tokens, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

// Refresh exchanges the refresh header for a new access token. Runs behind
// Authenticate, which provides the principal.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	principal := PrincipalFromCtx(c)
	if principal == nil {
		return autherror.ErrNoJwtToken
	}

	token, err := h.userService.Refresh(c.Context(), principal, c.Get(h.cfg.RefreshTokenHeader))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(token)
}

// Logout ends the session client-side only.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.userService.Logout(c.Context()); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ValidateToken proves the bearer token is valid. Reaching this handler
// means Authenticate already accepted the request.
func (h *AuthHandler) ValidateToken(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// ClientLog relays a client-side log line at the requested level.
func (h *AuthHandler) ClientLog(c *fiber.Ctx) error {
	var level zapcore.Level
	switch c.Params("level") {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		return autherror.NewApiError(autherror.CodeInvalidLogLevel,
			fmt.Sprintf("%s is not a valid log level", c.Params("level")))
	}

	h.log.Log(level, "client log", zap.ByteString("payload", c.Body()), zap.String("ip", c.IP()))

	return c.SendStatus(fiber.StatusNoContent)
}

// Register provisions a new user. Admin-gated at the route level.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.NewBadRequestError(autherror.CodeInvalidInput, "invalid input")
	}

	user, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewUserOutput(user))
}
