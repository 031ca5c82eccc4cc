package middleware

import (
	"encoding/json"
	"log/slog"

	"gestcondo/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// PermissionHeader carries the caller's loosely-typed permission descriptor.
// The middleware is the only place that parses it; handlers see AccessScope.
const PermissionHeader = "X-Admin-Access"

// ContextKeyScope holds the resolved AccessScope on the request context.
const ContextKeyScope = "accessScope"

// PermissionMiddleware resolves the permission descriptor header into a
// canonical AccessScope.
type PermissionMiddleware struct {
	logger *slog.Logger
}

// NewPermissionMiddleware is the constructor for PermissionMiddleware.
func NewPermissionMiddleware(logger *slog.Logger) *PermissionMiddleware {
	return &PermissionMiddleware{logger: logger}
}

// ResolveScope parses the header and stores the resulting scope on the
// context. The fallback applies when the header is absent: administrative
// management surfaces pass FullScope, notification read surfaces pass
// DeniedScope. An unparseable header degrades to a limited scope over
// nothing rather than failing the request.
func (m *PermissionMiddleware) ResolveScope(fallback entity.AccessScope) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(PermissionHeader)
			if raw == "" {
				c.Set(ContextKeyScope, fallback)

				return next(c)
			}

			var descriptor entity.PermissionDescriptor
			if err := json.Unmarshal([]byte(raw), &descriptor); err != nil {
				m.logger.Warn("Unparseable permission descriptor header",
					slog.String("path", c.Request().URL.Path),
					slog.String("error", err.Error()),
				)
				c.Set(ContextKeyScope, entity.DeniedScope())

				return next(c)
			}

			c.Set(ContextKeyScope, entity.ResolveScope(descriptor))

			return next(c)
		}
	}
}

// ScopeFrom retrieves the resolved scope. Missing scope fails closed.
func ScopeFrom(c echo.Context) entity.AccessScope {
	scope, ok := c.Get(ContextKeyScope).(entity.AccessScope)
	if !ok {
		return entity.DeniedScope()
	}

	return scope
}
