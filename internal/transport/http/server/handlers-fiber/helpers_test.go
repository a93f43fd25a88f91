package handlers_fiber

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"leadflow-crm/internal/api"
	"leadflow-crm/internal/entities"
)

func TestWriteErrorValidation(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.VALIDATION, body.Error.Code)
	require.Contains(t, body.Error.Message, "name is required")
}

func TestWriteErrorLeadNotFound(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, entities.ErrLeadNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.NOTFOUND, body.Error.Code)
	require.Equal(t, "Lead not found.", body.Error.Message)
}

func TestWriteErrorTable(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    api.ErrorCode
		message string
	}{
		{
			name:    "conflict",
			err:     entities.ErrUsernameTaken,
			status:  http.StatusConflict,
			code:    api.CONFLICT,
			message: "Username already taken.",
		},
		{
			name:    "unauthorized",
			err:     entities.ErrInvalidCredentials,
			status:  http.StatusUnauthorized,
			code:    api.UNAUTHORIZED,
			message: "Invalid credentials.",
		},
		{
			name:    "forbidden",
			err:     entities.ErrForbidden,
			status:  http.StatusForbidden,
			code:    api.FORBIDDEN,
			message: "Admin access required",
		},
		{
			name:    "user_not_found",
			err:     entities.ErrUserNotFound,
			status:  http.StatusNotFound,
			code:    api.NOTFOUND,
			message: "User not found.",
		},
		{
			name:    "internal",
			err:     fmt.Errorf("pool exhausted"),
			status:  http.StatusInternalServerError,
			code:    api.INTERNAL,
			message: "internal error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.code, body.Error.Code)
			require.Equal(t, tt.message, body.Error.Message)
		})
	}
}
