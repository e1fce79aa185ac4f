package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories returned by it use the transaction started by Begin. On
// Commit, domain events recorded by every aggregate the repositories saved
// are written to the outbox inside the same transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	// Lock waits for the lock named by key. It is held until Commit or Rollback.
	Lock(ctx context.Context, key int64) error

	AccountRepository() AccountRepository
	PharmacyRepository() PharmacyRepository
	ApplicationRepository() ApplicationRepository
	OrderRepository() OrderRepository
	TaskRepository() TaskRepository
	TimelineRepository() TimelineRepository
	StatusBoardRepository() StatusBoardRepository
	StockRepository() StockRepository
	ProviderRepository() ProviderRepository
	CardRepository() CardRepository
	NotificationRepository() NotificationRepository
	OutboxRepository() OutboxRepository
}
