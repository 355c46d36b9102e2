package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/webstore/store-api/internal/api/metrics"
	"github.com/webstore/store-api/internal/core/domain"
	"github.com/webstore/store-api/internal/core/ports"
)

const identityKey = "identity"

// Guard enforces policy on a single route. Routes that need an identity get
// the bearer token resolved first: a missing or invalid token fails with
// ErrUnauthenticated before any role is looked at, a missing role fails
// with ErrForbidden. The resolved identity is stored on the context.
func Guard(resolver ports.TokenResolver, policy domain.Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !policy.RequiresIdentity() {
				return next(c)
			}

			var identity *domain.Identity
			if token, ok := BearerToken(c); ok {
				id, err := resolver.Resolve(c.Request().Context(), token)
				if err != nil && !errors.Is(err, domain.ErrUnauthenticated) {
					return err
				}
				identity = id
			}

			if err := policy.Evaluate(identity); err != nil {
				reason := "forbidden"
				if errors.Is(err, domain.ErrUnauthenticated) {
					reason = "unauthenticated"
				}
				metrics.AuthorizationDenialsTotal.WithLabelValues(reason).Inc()
				return err
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// BearerToken extracts the token from "Authorization: Bearer <token>".
// The scheme is matched case-insensitively.
func BearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// IdentityFrom returns the identity stored by Guard, if any.
func IdentityFrom(c echo.Context) (*domain.Identity, bool) {
	id, ok := c.Get(identityKey).(*domain.Identity)
	return id, ok && id != nil
}
