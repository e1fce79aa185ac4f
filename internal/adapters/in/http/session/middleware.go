package session

import (
	"context"
	"errors"
	"strings"

	"pharmacygo/internal/core/application/usecases/queries"
	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	principalKey        = "principal"
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
)

// Principal is the signed-in account as seen by request handlers.
type Principal struct {
	AccountID    kernel.UUID
	SessionID    string
	Role         identity.Role
	DisplayName  string
	Organization string
}

type AccountLoader interface {
	Handle(ctx context.Context, query queries.GetAccountQuery) (queries.AccountView, error)
}

// Load resolves the session token, if any, into a Principal stored on the
// echo context. Requests without a valid session continue anonymously; a
// stale cookie is cleared.
func Load(sessions *Manager, accounts AccountLoader, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, fromCookie := tokenFrom(c)
			if token == "" {
				return next(c)
			}

			ctx := c.Request().Context()
			claims, err := sessions.Parse(ctx, token)
			if err != nil {
				logger.Debug("ignoring session token", zap.Error(err))
				if fromCookie {
					sessions.ClearCookie(c)
				}
				return next(c)
			}

			principal, err := resolve(ctx, accounts, claims)
			if errors.Is(err, errs.ErrObjectNotFound) {
				if fromCookie {
					sessions.ClearCookie(c)
				}
				return next(c)
			}
			if err != nil {
				return err
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

func resolve(ctx context.Context, accounts AccountLoader, claims *Claims) (*Principal, error) {
	accountID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("account", claims.Subject, err)
	}

	query, err := queries.NewGetAccountQuery(accountID)
	if err != nil {
		return nil, err
	}

	view, err := accounts.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	return &Principal{
		AccountID:    view.ID,
		SessionID:    claims.ID,
		Role:         view.Role,
		DisplayName:  view.DisplayName,
		Organization: view.Organization,
	}, nil
}

// tokenFrom prefers the Authorization header over the cookie.
func tokenFrom(c echo.Context) (string, bool) {
	if header := c.Request().Header.Get(authorizationHeader); strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)), false
	}

	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	return cookie.Value, true
}

// Current returns the signed-in account, if any.
func Current(c echo.Context) (*Principal, bool) {
	p, ok := c.Get(principalKey).(*Principal)
	return p, ok && p != nil
}

// WithPrincipal stores p on the context. Tests use it to skip token handling.
func WithPrincipal(c echo.Context, p *Principal) {
	c.Set(principalKey, p)
}
