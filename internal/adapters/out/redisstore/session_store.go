// Package redisstore keeps issued sign-in sessions so they can be revoked
// before their token expires.
package redisstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"pharmacygo/internal/core/ports"
	"pharmacygo/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

var _ ports.SessionStore = (*SessionStore)(nil)

// Config holds the connection settings for the session store.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// NewClient connects and pings the server.
func NewClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

type SessionStore struct {
	client redis.Cmdable
}

func NewSessionStore(client redis.Cmdable) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Save(ctx context.Context, sessionID, accountID string, ttl time.Duration) error {
	if strings.TrimSpace(sessionID) == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}
	if ttl <= 0 {
		return errs.NewValueIsOutOfRangeError("ttl", ttl, time.Second, "unbounded")
	}
	return s.client.Set(ctx, key(sessionID), accountID, ttl).Err()
}

func (s *SessionStore) Active(ctx context.Context, sessionID string) (bool, error) {
	if strings.TrimSpace(sessionID) == "" {
		return false, nil
	}
	err := s.client.Get(ctx, key(sessionID)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Revoke is idempotent.
func (s *SessionStore) Revoke(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	return s.client.Del(ctx, key(sessionID)).Err()
}

func key(sessionID string) string {
	return keyPrefix + sessionID
}
