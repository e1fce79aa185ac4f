// Package commands contains business operations that modify system state.
// Every command is a value object built through its constructor and executed
// by a handler inside one unit of work: begin, change aggregates, commit.
package commands

import (
	"context"

	"pharmacygo/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	AccountUoW interface {
		TxManager
		AccountRepository() ports.AccountRepository
	}

	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// OrderUoW covers orders and what creating one needs to look up.
	OrderUoW interface {
		TxManager
		OrderRepository() ports.OrderRepository
		PharmacyRepository() ports.PharmacyRepository
		AccountRepository() ports.AccountRepository
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	ApplicationUoW interface {
		TxManager
		ApplicationRepository() ports.ApplicationRepository
	}

	ApplicationUoWFactory interface {
		Create() ApplicationUoW
	}

	DeliveryUoW interface {
		TxManager
		TaskRepository() ports.TaskRepository
		StatusBoardRepository() ports.StatusBoardRepository
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	StockUoW interface {
		TxManager
		StockRepository() ports.StockRepository
	}

	StockUoWFactory interface {
		Create() StockUoW
	}

	NotificationUoW interface {
		TxManager
		NotificationRepository() ports.NotificationRepository
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	OutboxUoW interface {
		TxManager
		OutboxRepository() ports.OutboxRepository
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}

	// UoW spans every repository. Seeding uses it.
	UoW interface {
		ports.UnitOfWork
	}

	UoWFactory interface {
		Create() UoW
	}
)
