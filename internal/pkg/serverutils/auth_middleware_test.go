package serverutils

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"notely-be/internal/entity"
	"notely-be/internal/pkg/token"
	"notely-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(t *testing.T) (*fiber.App, *token.Manager, *entity.User) {
	t.Helper()
	store := memory.NewStore()
	now := time.Now()
	user := &entity.User{
		Id:                uuid.New(),
		Username:          "ada",
		Email:             "ada@example.com",
		PasswordHash:      "x",
		FirstName:         "Ada",
		LastName:          "Lovelace",
		DateJoined:        now,
		LastProfileUpdate: now,
	}
	require.NoError(t, memory.NewUserRepository(store).Create(context.Background(), user))

	tokens := token.NewManager("test-secret")

	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(nopLogger{}))
	app.Get("/protected", NewAuthMiddleware(tokens, memory.NewRepositoryFactory(store)), func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"username": CurrentUser(ctx).Username})
	})
	return app, tokens, user
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	app, tokens, user := newProtectedApp(t)

	signed, err := tokens.Issue(user.Id)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ada", body["username"])
}

func TestAuthMiddlewareRejections(t *testing.T) {
	app, tokens, _ := newProtectedApp(t)

	// Token for a user that no longer exists.
	orphan, err := tokens.Issue(uuid.New())
	require.NoError(t, err)

	cases := []struct {
		name    string
		header  string
		message string
	}{
		{"no header", "", "Unauthorized: No token provided"},
		{"wrong scheme", "Basic abc", "Unauthorized: No token provided"},
		{"garbage token", "Bearer not-a-jwt", "Unauthorized: Invalid token"},
		{"unknown user", "Bearer " + orphan, "Unauthorized: Invalid token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.message, body["message"])
		})
	}
}

func TestAuthMiddlewareRejectsTokenSignedElsewhere(t *testing.T) {
	app, _, user := newProtectedApp(t)

	foreign, err := token.NewManager("other-secret").Issue(user.Id)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+foreign)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
