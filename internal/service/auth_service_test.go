package service

import (
	"context"
	"strings"
	"testing"

	"notely-be/internal/dto"
	"notely-be/internal/pkg/serverutils"
	"notely-be/internal/pkg/token"
	"notely-be/internal/repository/memory"
	"notely-be/internal/repository/specification"
	"notely-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (IAuthService, unitofwork.RepositoryFactory) {
	t.Helper()
	factory := memory.NewRepositoryFactory(memory.NewStore())
	return NewAuthService(factory, token.NewManager("test-secret")), factory
}

func registerReq(username, email string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username:  username,
		Email:     email,
		Password:  "password123",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
}

func assertHttpError(t *testing.T, err error, status int, message string) {
	t.Helper()
	var httpErr *serverutils.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, status, httpErr.Status)
	assert.Equal(t, message, httpErr.Message)
}

func TestRegisterIssuesUsableToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	res, err := svc.Register(context.Background(), registerReq("ada", "ada@example.com"))
	require.NoError(t, err)

	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "ada", res.User.Username)
	assert.Equal(t, "ada@example.com", res.User.Email)

	userId, err := token.NewManager("test-secret").Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.Id, userId)
}

func TestRegisterEmailConflictWinsOverUsername(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), registerReq("ada", "ada@example.com"))
	require.NoError(t, err)

	// Both the email and the username collide; the email message wins.
	_, err = svc.Register(context.Background(), registerReq("ada", "ada@example.com"))
	assertHttpError(t, err, fiber.StatusBadRequest, "Email already registered")

	_, err = svc.Register(context.Background(), registerReq("ada", "other@example.com"))
	assertHttpError(t, err, fiber.StatusBadRequest, "Username already taken")
}

func TestLoginByEmailAndByUsername(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), registerReq("ada", "ada@example.com"))
	require.NoError(t, err)

	for _, identifier := range []string{"ada", "ada@example.com"} {
		res, err := svc.Login(context.Background(), &dto.LoginRequest{
			EmailOrUsername: identifier,
			Password:        "password123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
	}
}

func TestLoginRejectsUniformly(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), registerReq("ada", "ada@example.com"))
	require.NoError(t, err)

	// Unknown user and wrong password look identical to the caller.
	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		EmailOrUsername: "nobody",
		Password:        "password123",
	})
	assertHttpError(t, err, fiber.StatusUnauthorized, "Invalid credentials")

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		EmailOrUsername: "ada",
		Password:        "wrong-password",
	})
	assertHttpError(t, err, fiber.StatusUnauthorized, "Invalid credentials")
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	svc, factory := newAuthFixture(t)

	_, err := svc.Register(context.Background(), registerReq("ada", "ada@example.com"))
	require.NoError(t, err)

	uow := factory.NewUnitOfWork(context.Background())
	stored, err := uow.UserRepository().FindOne(context.Background(), specification.ByIdentifier{Value: "ada"})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$2"))
}
