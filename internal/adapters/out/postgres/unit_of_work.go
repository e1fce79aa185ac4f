// Package postgres provides the GORM-based Unit of Work and schema setup.
//
// Repositories handed out by a unit of work share its transaction. Aggregates
// they save are tracked, and on Commit the domain events those aggregates
// recorded are written to the outbox in the same transaction:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx) // order.StatusChanged lands in outbox_messages
package postgres

import (
	"context"

	"pharmacygo/internal/adapters/out/postgres/accountrepo"
	"pharmacygo/internal/adapters/out/postgres/deliveryrepo"
	"pharmacygo/internal/adapters/out/postgres/inventoryrepo"
	"pharmacygo/internal/adapters/out/postgres/notificationrepo"
	"pharmacygo/internal/adapters/out/postgres/orderrepo"
	"pharmacygo/internal/adapters/out/postgres/outboxrepo"
	"pharmacygo/internal/adapters/out/postgres/paymentrepo"
	"pharmacygo/internal/adapters/out/postgres/pharmacyrepo"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/core/domain/model/outbox"
	"pharmacygo/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// eventSource is implemented by aggregates embedding kernel.EventRecorder.
type eventSource interface {
	DomainEvents() []kernel.DomainEvent
	ClearDomainEvents()
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and the outbox writes
// that go with it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit stores pending domain events in the outbox and commits. On an outbox
// failure the transaction is rolled back and the events stay on the aggregates.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	messages, err := uow.pendingMessages()
	if err == nil {
		err = outboxrepo.NewGormOutboxRepository(uow.tx).Add(ctx, messages...)
	}
	if err != nil {
		_ = uow.tx.Rollback()
		uow.tx = nil
		return err
	}

	err = uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	uow.clearEvents()
	return nil
}

// Rollback discards the transaction. It returns gorm.ErrInvalidTransaction
// when there is nothing to roll back, which lets handlers defer it
// unconditionally after Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// Lock takes a PostgreSQL transaction-level advisory lock.
func (uow *GormUnitOfWork) Lock(ctx context.Context, key int64) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}
	return uow.tx.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", key).Error
}

func (uow *GormUnitOfWork) pendingMessages() ([]*outbox.Message, error) {
	seen := make(map[any]struct{}, len(uow.trackedAggregates))
	messages := make([]*outbox.Message, 0)

	for _, tracked := range uow.trackedAggregates {
		source, ok := tracked.Aggregate.(eventSource)
		if !ok {
			continue
		}
		if _, dup := seen[source]; dup {
			continue
		}
		seen[source] = struct{}{}

		for _, event := range source.DomainEvents() {
			m, err := outbox.NewMessage(event)
			if err != nil {
				return nil, err
			}
			messages = append(messages, m)
		}
	}

	return messages, nil
}

func (uow *GormUnitOfWork) clearEvents() {
	for _, tracked := range uow.trackedAggregates {
		if source, ok := tracked.Aggregate.(eventSource); ok {
			source.ClearDomainEvents()
		}
	}
	uow.trackedAggregates = uow.trackedAggregates[:0]
}

// conn returns the transaction when one is active, otherwise the pool.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) AccountRepository() ports.AccountRepository {
	return accountrepo.NewGormAccountRepository(uow.conn())
}

func (uow *GormUnitOfWork) PharmacyRepository() ports.PharmacyRepository {
	return pharmacyrepo.NewGormPharmacyRepository(uow.conn())
}

func (uow *GormUnitOfWork) ApplicationRepository() ports.ApplicationRepository {
	return pharmacyrepo.NewGormApplicationRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TaskRepository() ports.TaskRepository {
	return deliveryrepo.NewGormTaskRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TimelineRepository() ports.TimelineRepository {
	return deliveryrepo.NewGormTimelineRepository(uow.conn())
}

func (uow *GormUnitOfWork) StatusBoardRepository() ports.StatusBoardRepository {
	return deliveryrepo.NewGormStatusBoardRepository(uow.conn())
}

func (uow *GormUnitOfWork) StockRepository() ports.StockRepository {
	return inventoryrepo.NewGormStockRepository(uow.conn())
}

func (uow *GormUnitOfWork) ProviderRepository() ports.ProviderRepository {
	return paymentrepo.NewGormProviderRepository(uow.conn())
}

func (uow *GormUnitOfWork) CardRepository() ports.CardRepository {
	return paymentrepo.NewGormCardRepository(uow.conn())
}

func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an aggregate saved through one of the repositories.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
