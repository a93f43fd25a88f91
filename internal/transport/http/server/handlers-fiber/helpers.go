package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"leadflow-crm/internal/api"
	"leadflow-crm/internal/entities"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.VALIDATION
		msg = err.Error()
	case errors.Is(err, entities.ErrLeadNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "Lead not found."
	case errors.Is(err, entities.ErrUserNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "User not found."
	case errors.Is(err, entities.ErrUsernameTaken):
		status = http.StatusConflict
		code = api.CONFLICT
		msg = "Username already taken."
	case errors.Is(err, entities.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		code = api.UNAUTHORIZED
		msg = "Invalid credentials."
	case errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		code = api.FORBIDDEN
		msg = "Admin access required"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorBody{Code: code, Message: msg}}
}
