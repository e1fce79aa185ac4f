package ports

import (
	"context"
	"time"

	"pharmacygo/internal/core/domain/model/outbox"
)

// PasswordHasher turns plain passwords into storable hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Matches reports whether password produces hash. A malformed hash never matches.
	Matches(hash, password string) bool
}

// MessageBus delivers outbox messages to subscribers.
type MessageBus interface {
	Publish(ctx context.Context, message *outbox.Message) error
}

// SessionStore remembers issued sessions so they can be revoked before
// their token expires.
type SessionStore interface {
	Save(ctx context.Context, sessionID, accountID string, ttl time.Duration) error
	// Active reports whether the session is known and not revoked.
	Active(ctx context.Context, sessionID string) (bool, error)
	Revoke(ctx context.Context, sessionID string) error
}
