// Package session issues signed session tokens and resolves the signed-in
// account on every request. A token is an HS256 JWT carried in the
// pg_session cookie or an Authorization bearer header; its jti must also be
// active in the session store, so signing out takes effect immediately.
package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	CookieName = "pg_session"
	issuer     = "pharmacygo"
)

var (
	ErrSessionRevoked = errors.New("session is revoked or expired")
	ErrSecretTooShort = errors.New("session secret must be at least 32 bytes")
)

// Claims is the token payload. Subject holds the account id and ID the
// session id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret       []byte
	ttl          time.Duration
	store        ports.SessionStore
	secureCookie bool
	now          func() time.Time
}

func NewManager(secret string, ttl time.Duration, store ports.SessionStore, secureCookie bool) (*Manager, error) {
	if len(secret) < 32 {
		return nil, ErrSecretTooShort
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %s", ttl)
	}
	return &Manager{
		secret:       []byte(secret),
		ttl:          ttl,
		store:        store,
		secureCookie: secureCookie,
		now:          time.Now,
	}, nil
}

// Issue signs a token for the account and registers its session id.
func (m *Manager) Issue(ctx context.Context, accountID kernel.UUID, role identity.Role) (string, error) {
	now := m.now().UTC()
	sessionID := kernel.NewUUID().String()

	claims := Claims{
		Role: role.Code(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   accountID.String(),
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", err
	}

	if err = m.store.Save(ctx, sessionID, accountID.String(), m.ttl); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return token, nil
}

// Parse verifies the signature and expiry and checks that the session was
// not revoked.
func (m *Manager) Parse(ctx context.Context, token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, ErrSessionRevoked
	}

	active, err := m.store.Active(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}
	if !active {
		return nil, ErrSessionRevoked
	}
	return claims, nil
}

func (m *Manager) Revoke(ctx context.Context, sessionID string) error {
	return m.store.Revoke(ctx, sessionID)
}

// SetCookie stores the token in the browser for the session lifetime.
func (m *Manager) SetCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
