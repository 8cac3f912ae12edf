package middleware

import (
	"context"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/mitchellh/mapstructure"

	"github.com/enrollment/enrollment-api/internal/api/metrics"
	"github.com/enrollment/enrollment-api/internal/core/domain"
)

// IdentityKey is the echo context key holding the domain.Identity.
const IdentityKey = "identity"

type identityContextKey struct{}

// WithIdentity stores who on ctx for code that only sees a context.Context.
func WithIdentity(ctx context.Context, who domain.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, who)
}

// IdentityFromContext returns the identity stored by WithIdentity.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	who, ok := ctx.Value(identityContextKey{}).(domain.Identity)
	return who, ok
}

// Auth validates the bearer JWT and injects the decoded identity into both the
// echo context and the request context.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return authenticate(jwtSecret, false)
}

// OptionalAuth lets requests without an Authorization header through
// untouched, but still rejects a header that does not verify.
func OptionalAuth(jwtSecret string) echo.MiddlewareFunc {
	return authenticate(jwtSecret, true)
}

func authenticate(jwtSecret string, optional bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				if optional {
					return next(c)
				}
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return unauthenticated("missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				metrics.AuthFailuresTotal.WithLabelValues("malformed_header").Inc()
				return unauthenticated("invalid authorization header")
			}

			who, err := parseIdentity(parts[1], jwtSecret)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return unauthenticated("invalid or expired token")
			}

			c.Set(IdentityKey, who)
			c.SetRequest(c.Request().WithContext(WithIdentity(c.Request().Context(), who)))

			return next(c)
		}
	}
}

func parseIdentity(raw, jwtSecret string) (domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	var who domain.Identity
	if err := mapstructure.Decode(map[string]any(claims), &who); err != nil {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	if who.Username == "" || who.Role == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return who, nil
}

func unauthenticated(reason string) error {
	return &AuthError{Reason: reason}
}

// AuthError is returned for every authentication failure. It unwraps to
// domain.ErrUnauthenticated so the error handler maps it to 401.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string { return e.Reason }

func (e *AuthError) Unwrap() error { return domain.ErrUnauthenticated }
