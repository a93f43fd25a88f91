package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"leadflow-crm/internal/api"
	"leadflow-crm/internal/entities"
	"leadflow-crm/internal/mapper"
	"leadflow-crm/internal/transport/http/middleware"
)

// PostRegister creates a user account.
func (h *Handler) PostRegister(c *fiber.Ctx) error {
	var body api.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	user, err := h.uc.Register(c.Context(), entities.Credentials{
		Username: body.Username,
		Password: body.Password,
		Role:     entities.Role(body.Role),
	})
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPIUser(*user))
}

// PostLogin verifies credentials and issues a token.
func (h *Handler) PostLogin(c *fiber.Ctx) error {
	var body api.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATION, "invalid body"))
	}

	token, user, err := h.uc.Login(c.Context(), entities.Credentials{
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.LoginResponse{
		Token: token,
		User:  mapper.ToAPIUser(*user),
	})
}

// GetMe returns the authenticated user's profile.
func (h *Handler) GetMe(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(errorResponse(api.UNAUTHORIZED, "Unauthorized"))
	}

	user, err := h.uc.Me(c.Context(), identity.UserID)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIUser(*user))
}
