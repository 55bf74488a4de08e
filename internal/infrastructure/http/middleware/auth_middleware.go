package middleware

import (
	"context"
	stdErrors "errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/mom-generator/errors"
	"github.com/johnquangdev/mom-generator/internal/domain/entities"
)

// UserContextKey is the echo context key holding the authenticated *entities.User
const UserContextKey = "user"

const bearerPrefix = "Bearer "

// Authenticator resolves a bearer token to an allowlisted user
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.User, error)
}

// EchoAuth returns an Echo middleware that requires a valid bearer token
// from an allowlisted user and sets "user" (*entities.User) into the context
func EchoAuth(authenticator Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := extractBearer(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return errors.ErrMissingToken()
			}

			user, err := authenticator.Authenticate(c.Request().Context(), token)
			if err != nil {
				switch {
				case stdErrors.Is(err, entities.ErrMissingToken):
					return errors.ErrMissingToken()
				case stdErrors.Is(err, entities.ErrNotAllowlisted):
					return errors.ErrNotAllowed()
				default:
					return errors.ErrInvalidToken(err)
				}
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// GetUser retrieves the authenticated user set by EchoAuth
func GetUser(c echo.Context) (*entities.User, bool) {
	user, ok := c.Get(UserContextKey).(*entities.User)
	return user, ok
}

func extractBearer(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
