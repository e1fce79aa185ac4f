package web

import (
	"net/http"

	"pharmacygo/internal/adapters/in/http/session"
	"pharmacygo/internal/core/domain/model/identity"

	"github.com/labstack/echo/v4"
)

// RoleRequired lets through only signed-in accounts of role. Anonymous
// visitors go to the sign-in page and everyone else to their own dashboard.
func RoleRequired(role identity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := session.Current(c)
			if !ok {
				return c.Redirect(http.StatusFound, LoginPath)
			}
			if principal.Role != role {
				return c.Redirect(http.StatusFound, DashboardPath(principal.Role))
			}
			return next(c)
		}
	}
}

// RedirectSignedIn sends signed-in accounts from the access pages to their dashboard.
func RedirectSignedIn(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if principal, ok := session.Current(c); ok {
			return c.Redirect(http.StatusFound, DashboardPath(principal.Role))
		}
		return next(c)
	}
}

// SignedIn rejects anonymous visitors with a redirect to the sign-in page.
func SignedIn(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := session.Current(c); !ok {
			return c.Redirect(http.StatusFound, LoginPath)
		}
		return next(c)
	}
}
