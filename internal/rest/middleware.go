package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/site-admin/internal/auth"
	"github.com/daniilsolovey/site-admin/internal/db"
)

const (
	ctxUserID = "userId"
	ctxRole   = "role"
)

// RequireAuth rejects requests without a valid bearer token and stores
// the session claims on the echo context.
func (h *Handler) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := auth.ExtractToken(c.Request())
		if token == "" {
			return fail(c, http.StatusUnauthorized, "missing bearer token")
		}

		claims, err := auth.ParseToken(token, h.auth.Secret)
		if err != nil {
			return fail(c, http.StatusUnauthorized, "invalid or expired token")
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)

		return next(c)
	}
}

// RequireAdmin allows only users with the admin role. Must run after
// RequireAuth.
func (h *Handler) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if role, _ := c.Get(ctxRole).(string); role != db.RoleAdmin {
			return fail(c, http.StatusForbidden, "admin role required")
		}

		return next(c)
	}
}

func sessionUserID(c echo.Context) int {
	id, _ := c.Get(ctxUserID).(int)
	return id
}

func sessionRole(c echo.Context) string {
	role, _ := c.Get(ctxRole).(string)
	return role
}
