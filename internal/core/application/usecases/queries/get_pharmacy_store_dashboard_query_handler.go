package queries

import (
	"context"

	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetPharmacyStoreDashboardQueryHandler struct {
	db *gorm.DB
}

func NewGetPharmacyStoreDashboardQueryHandler(db *gorm.DB) GetPharmacyStoreDashboardQueryHandler {
	return GetPharmacyStoreDashboardQueryHandler{db: db}
}

func (h GetPharmacyStoreDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetPharmacyStoreDashboardQuery,
) (PharmacyStoreDashboard, error) {
	if err := query.Validate(); err != nil {
		return PharmacyStoreDashboard{}, err
	}

	db := h.db.WithContext(ctx)
	var dashboard PharmacyStoreDashboard

	// Oldest first: that is the packing queue.
	rows, err := db.Raw(`SELECT `+orderColumns+`
		FROM orders o
		LEFT JOIN pharmacies p ON p.id = o.pharmacy_id
		WHERE o.status IN (?, ?)
		ORDER BY o.created_at`, order.Pending.Code(), order.Packed.Code()).Rows()
	if err != nil {
		return PharmacyStoreDashboard{}, err
	}
	if dashboard.Orders, err = collect(rows, scanOrder); err != nil {
		return PharmacyStoreDashboard{}, err
	}

	if dashboard.Stock, err = allStock(db); err != nil {
		return PharmacyStoreDashboard{}, err
	}

	if dashboard.Notifications, err = notificationsFor(db, identity.Pharmacy, PharmacyNotificationsLimit); err != nil {
		return PharmacyStoreDashboard{}, err
	}

	applications := db.Raw(`SELECT ` + applicationColumns + ` FROM pharmacy_applications ORDER BY created_at DESC`)
	if query.organization != "" {
		applications = db.Raw(`SELECT `+applicationColumns+`
			FROM pharmacy_applications
			WHERE LOWER(pharmacy_name) = LOWER(?)
			ORDER BY created_at DESC`, query.organization)
	}
	rows, err = applications.Rows()
	if err != nil {
		return PharmacyStoreDashboard{}, err
	}
	if dashboard.Applications, err = collect(rows, scanApplication); err != nil {
		return PharmacyStoreDashboard{}, err
	}

	return dashboard, nil
}

func allStock(db *gorm.DB) ([]StockRow, error) {
	rows, err := db.Raw(`SELECT sku, name, quantity, status, expires_in_days FROM stock_items ORDER BY sku`).Rows()
	if err != nil {
		return nil, err
	}
	return collect(rows, scanStock)
}
