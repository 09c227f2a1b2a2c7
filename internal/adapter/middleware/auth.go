package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"compras-backend/internal/domain/user"

	"github.com/labstack/echo/v4"
)

const identityContextKey = "identity"

// tokenFromRequest accepts "Authorization: Bearer <token>" or the
// session_token cookie, header first.
func tokenFromRequest(c echo.Context) string {
	h := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
	if h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if ck, err := c.Cookie("session_token"); err == nil {
		return ck.Value
	}
	return ""
}

// Authenticate resolves the request's session token to an Identity and puts
// it in the echo context. Missing or unknown token is 401.
func Authenticate(store *SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := tokenFromRequest(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			defer cancel()

			ident, err := store.Get(ctx, token)
			if err != nil {
				if errors.Is(err, ErrNoSession) {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired session"})
				}
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "session store unavailable"})
			}
			SetIdentity(c, *ident)
			return next(c)
		}
	}
}

// RequireWrite is the mutation gate: admin OR write permission.
func RequireWrite() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !IdentityFrom(c).CanMutate() {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "write permission required"})
			}
			return next(c)
		}
	}
}

func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !IdentityFrom(c).IsAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin permission required"})
			}
			return next(c)
		}
	}
}

// SetIdentity stores an identity on the request context. Handler tests that
// bypass Authenticate use it directly.
func SetIdentity(c echo.Context, ident user.Identity) {
	c.Set(identityContextKey, ident)
}

// IdentityFrom returns the authenticated identity, or the zero Identity when
// the route skipped Authenticate.
func IdentityFrom(c echo.Context) user.Identity {
	if v, ok := c.Get(identityContextKey).(user.Identity); ok {
		return v
	}
	return user.Identity{}
}
