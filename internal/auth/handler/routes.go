package handler

import (
	"github.com/angusyg/mean-stack/config"
	autherror "github.com/angusyg/mean-stack/internal/errors"
	"github.com/angusyg/mean-stack/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the auth API. Authenticate runs before Refresh and
// Validate; RequiresRole depends on the principal Authenticate attaches, so
// ordering inside each chain matters.
func RegisterRoutes(app *fiber.App, h *AuthHandler, cfg *config.Config) {
	api := app.Group(cfg.APIBase)

	api.Post("/login", h.Login)
	api.Post("/logout", h.Logout)
	api.Post("/refresh", h.Authenticate, h.Refresh)
	api.Get("/validate", h.Authenticate, h.ValidateToken)
	api.Post("/log/:level", h.ClientLog)

	// Admin-only endpoints
	users := api.Group("/users", h.Authenticate, h.RequiresRole(constant.RoleAdmin))
	users.Post("/", h.Register)

	// Unmapped routes get the typed 404 body
	app.Use(func(c *fiber.Ctx) error {
		return autherror.NewNotFoundResourceError(c.Path())
	})
}
