package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/enrollment/enrollment-api/internal/api/middleware"
	"github.com/enrollment/enrollment-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. A missing
// or roleless identity means the middleware did not run, which is reported as
// unauthenticated rather than forbidden.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	who, ok := c.Get(middleware.IdentityKey).(domain.Identity)
	if !ok || who.Role == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return who, nil
}
