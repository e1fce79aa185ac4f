// Package ports defines the contracts between the application core and its
// adapters: repositories, the unit of work, and outbound services.
package ports

import (
	"context"

	"pharmacygo/internal/core/domain/model/delivery"
	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/core/domain/model/inventory"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/core/domain/model/notification"
	"pharmacygo/internal/core/domain/model/order"
	"pharmacygo/internal/core/domain/model/outbox"
	"pharmacygo/internal/core/domain/model/payment"
	"pharmacygo/internal/core/domain/model/pharmacy"
)

// AccountRepository stores sign-in accounts with their profiles.
type AccountRepository interface {
	// Add persists a new account. A username taken case-insensitively is
	// reported as errs.ErrValueIsInvalid.
	Add(ctx context.Context, account *identity.Account) error

	Get(ctx context.Context, id kernel.UUID) (*identity.Account, error)

	// UsernameExists checks the login identifier case-insensitively.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// FindLoginCandidates returns the accounts an identifier may refer to, in
	// the order they must be tried:
	//   - the account whose username matches case-insensitively
	//   - the oldest account whose email matches case-insensitively
	//   - the account whose profile phone matches exactly
	// Duplicates are removed; an empty slice means no match.
	FindLoginCandidates(ctx context.Context, identifier string) ([]*identity.Account, error)
}

type PharmacyRepository interface {
	Add(ctx context.Context, aggregate *pharmacy.Pharmacy) error
	Get(ctx context.Context, id kernel.UUID) (*pharmacy.Pharmacy, error)
	// GetByName matches the name exactly.
	GetByName(ctx context.Context, name string) (*pharmacy.Pharmacy, error)
	Count(ctx context.Context) (int64, error)
}

type ApplicationRepository interface {
	Add(ctx context.Context, aggregate *pharmacy.Application) error
	Update(ctx context.Context, aggregate *pharmacy.Application) error
	Get(ctx context.Context, id kernel.UUID) (*pharmacy.Application, error)
	Count(ctx context.Context) (int64, error)
}

// OrderRepository persists order aggregates. Update enforces the optimistic
// version and reports a concurrent change as errs.ErrVersionIsInvalid.
type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error
	Update(ctx context.Context, aggregate *order.Order) error
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// TaskRepository persists delivery tasks with the same version rule as orders.
type TaskRepository interface {
	Add(ctx context.Context, aggregate *delivery.Task) error
	Update(ctx context.Context, aggregate *delivery.Task) error
	Get(ctx context.Context, id kernel.UUID) (*delivery.Task, error)
	Count(ctx context.Context) (int64, error)
}

type TimelineRepository interface {
	Add(ctx context.Context, event *delivery.TimelineEvent) error
	Count(ctx context.Context) (int64, error)
}

type StatusBoardRepository interface {
	Add(ctx context.Context, entry *delivery.StatusEntry) error
	Update(ctx context.Context, entry *delivery.StatusEntry) error
	Get(ctx context.Context, id kernel.UUID) (*delivery.StatusEntry, error)
	Count(ctx context.Context) (int64, error)
}

type StockRepository interface {
	Add(ctx context.Context, item *inventory.StockItem) error
	Update(ctx context.Context, item *inventory.StockItem) error
	GetAll(ctx context.Context) ([]*inventory.StockItem, error)
	Count(ctx context.Context) (int64, error)
}

type ProviderRepository interface {
	Add(ctx context.Context, provider *payment.Provider) error
	GetByName(ctx context.Context, name string) (*payment.Provider, error)
	Count(ctx context.Context) (int64, error)
}

type CardRepository interface {
	Add(ctx context.Context, card *payment.Card) error
	Count(ctx context.Context) (int64, error)
}

type NotificationRepository interface {
	Add(ctx context.Context, n *notification.Notification) error
	Count(ctx context.Context) (int64, error)
}

// OutboxRepository reads and acknowledges stored domain events. Writing them
// is done by the unit of work on commit.
type OutboxRepository interface {
	Add(ctx context.Context, messages ...*outbox.Message) error
	GetUnprocessed(ctx context.Context, limit int) ([]*outbox.Message, error)
	Update(ctx context.Context, message *outbox.Message) error
}
