package serverutils

import (
	"strings"

	"notely-be/internal/pkg/token"
	"notely-be/internal/repository/specification"
	"notely-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const authUserKey = "auth_user"

// AuthUser is the identity attached to a request after the bearer token is
// verified and resolved. It carries the user's public fields only, never
// the password hash.
type AuthUser struct {
	Id        uuid.UUID
	Username  string
	Email     string
	FirstName string
	LastName  string
}

// NewAuthMiddleware is the sole authorization gate for protected routes:
// one token verification and one user lookup per request, no caching. All
// failure modes reject with 401.
func NewAuthMiddleware(tokens *token.Manager, uowFactory unitofwork.RepositoryFactory) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return Unauthorized("Unauthorized: No token provided")
		}

		userId, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return Unauthorized("Unauthorized: Invalid token")
		}

		uow := uowFactory.NewUnitOfWork(ctx.Context())
		user, err := uow.UserRepository().FindOne(ctx.Context(), specification.ByID{ID: userId})
		if err != nil {
			return Unauthorized("Unauthorized: Token error")
		}
		if user == nil {
			return Unauthorized("Unauthorized: Invalid token")
		}

		ctx.Locals(authUserKey, &AuthUser{
			Id:        user.Id,
			Username:  user.Username,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		})
		return ctx.Next()
	}
}

// CurrentUser returns the identity the auth middleware attached, or nil on
// unprotected routes.
func CurrentUser(ctx *fiber.Ctx) *AuthUser {
	user, _ := ctx.Locals(authUserKey).(*AuthUser)
	return user
}
