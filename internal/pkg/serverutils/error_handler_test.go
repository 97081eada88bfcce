package serverutils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandlerKeepsHttpErrors(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(nopLogger{}))
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return NotFound("Note not found")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Note not found", body["message"])
}

func TestErrorHandlerSanitizesUnknownErrors(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(nopLogger{}))
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return errors.New("pq: connection refused to db at 10.0.0.3")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	// Internal detail never reaches the client.
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Internal server error", body["message"])
}

func TestValidateRequestMessages(t *testing.T) {
	type req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	err := ValidateRequest(req{Email: "a@example.com", Password: "x"})
	assert.NoError(t, err)

	err = ValidateRequest(req{Email: "a@example.com"})
	var httpErr *HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, fiber.StatusBadRequest, httpErr.Status)

	err = ValidateRequest(req{Email: "not-an-email", Password: "x"})
	require.ErrorAs(t, err, &httpErr)
	assert.Contains(t, httpErr.Message, "email")
}
