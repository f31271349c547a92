package mockapi

import (
	"net/http"
	"strings"

	"agriproxy/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyToken  = "token"
)

// AuthMiddleware validates the bearer token on protected routes and puts
// the user id on the request context.
type AuthMiddleware struct {
	tokens service.TokenService
	users  *UserStore
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokens service.TokenService, users *UserStore) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// Authenticate rejects requests without a valid, unrevoked bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return fail(c, http.StatusUnauthorized, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return fail(c, http.StatusUnauthorized, "Invalid token format, must be Bearer token")
		}

		if m.users.TokenRevoked(tokenString) {
			return fail(c, http.StatusUnauthorized, "Token has been logged out")
		}

		userID, err := m.tokens.ValidateToken(tokenString)
		if err != nil {
			return fail(c, http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set(contextKeyUserID, userID)
		c.Set(contextKeyToken, tokenString)

		return next(c)
	}
}
