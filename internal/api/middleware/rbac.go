package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/enrollment/enrollment-api/internal/core/domain"
)

// RBAC enforces role-based access control on the identity set by Auth.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			who, _ := c.Get(IdentityKey).(domain.Identity)
			if _, ok := allowed[who.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
