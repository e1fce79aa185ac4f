package postgres

import (
	"pharmacygo/internal/adapters/out/postgres/accountrepo"
	"pharmacygo/internal/adapters/out/postgres/deliveryrepo"
	"pharmacygo/internal/adapters/out/postgres/inventoryrepo"
	"pharmacygo/internal/adapters/out/postgres/notificationrepo"
	"pharmacygo/internal/adapters/out/postgres/orderrepo"
	"pharmacygo/internal/adapters/out/postgres/outboxrepo"
	"pharmacygo/internal/adapters/out/postgres/paymentrepo"
	"pharmacygo/internal/adapters/out/postgres/pharmacyrepo"

	"gorm.io/gorm"
)

// Tables lists every table in truncation-safe order.
var Tables = []string{
	"outbox_messages",
	"notifications",
	"payment_cards",
	"payment_providers",
	"stock_items",
	"delivery_status_entries",
	"delivery_timeline_events",
	"delivery_tasks",
	"orders",
	"pharmacy_applications",
	"pharmacies",
	"accounts",
}

// Models returns the DTOs AutoMigrate creates tables for.
func Models() []any {
	return []any{
		&accountrepo.AccountDTO{},
		&pharmacyrepo.PharmacyDTO{},
		&pharmacyrepo.ApplicationDTO{},
		&orderrepo.OrderDTO{},
		&deliveryrepo.TaskDTO{},
		&deliveryrepo.TimelineEventDTO{},
		&deliveryrepo.StatusEntryDTO{},
		&inventoryrepo.StockItemDTO{},
		&paymentrepo.ProviderDTO{},
		&paymentrepo.CardDTO{},
		&notificationrepo.NotificationDTO{},
		&outboxrepo.MessageDTO{},
	}
}

// Migrate creates or updates the schema, including the case-insensitive
// username index AutoMigrate cannot express.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}

	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_accounts_username_lower ON accounts (LOWER(username))`,
	).Error
}
