package queries

import (
	"context"

	"pharmacygo/internal/core/domain/model/identity"

	"gorm.io/gorm"
)

type GetCustomerDashboardQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerDashboardQueryHandler(db *gorm.DB) GetCustomerDashboardQueryHandler {
	return GetCustomerDashboardQueryHandler{db: db}
}

// Handle lists the customer's own orders together with guest orders that
// carry no account.
func (h GetCustomerDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerDashboardQuery,
) (CustomerDashboard, error) {
	if err := query.Validate(); err != nil {
		return CustomerDashboard{}, err
	}

	db := h.db.WithContext(ctx)
	var dashboard CustomerDashboard

	rows, err := db.Raw(`SELECT ` + pharmacyColumns + ` FROM pharmacies ORDER BY created_at, name`).Rows()
	if err != nil {
		return CustomerDashboard{}, err
	}
	if dashboard.Pharmacies, err = collect(rows, scanPharmacy); err != nil {
		return CustomerDashboard{}, err
	}

	rows, err = db.Raw(`SELECT `+orderColumns+`
		FROM orders o
		LEFT JOIN pharmacies p ON p.id = o.pharmacy_id
		WHERE o.customer_id = ? OR o.customer_id IS NULL
		ORDER BY o.created_at DESC
		LIMIT ?`, query.customerID.Bytes(), CustomerRecentOrdersLimit).Rows()
	if err != nil {
		return CustomerDashboard{}, err
	}
	if dashboard.Orders, err = collect(rows, scanOrder); err != nil {
		return CustomerDashboard{}, err
	}

	rows, err = db.Raw(`SELECT name, status, COALESCE(fee, '') FROM payment_providers ORDER BY created_at, name`).Rows()
	if err != nil {
		return CustomerDashboard{}, err
	}
	if dashboard.Providers, err = collect(rows, func(s rowScanner) (ProviderRow, error) {
		var row ProviderRow
		err := s.Scan(&row.Name, &row.Status, &row.Fee)
		return row, err
	}); err != nil {
		return CustomerDashboard{}, err
	}

	rows, err = db.Raw(`
		SELECT c.owner_name, pp.name, c.last4, c.theme, COALESCE(c.spending_limit, '')
		FROM payment_cards c
		JOIN payment_providers pp ON pp.id = c.provider_id
		ORDER BY c.created_at`).Rows()
	if err != nil {
		return CustomerDashboard{}, err
	}
	if dashboard.Cards, err = collect(rows, func(s rowScanner) (CardRow, error) {
		var row CardRow
		var last4 string
		if err := s.Scan(&row.OwnerName, &row.ProviderName, &last4, &row.Theme, &row.Limit); err != nil {
			return CardRow{}, err
		}
		row.Masked = "•••• " + last4
		return row, nil
	}); err != nil {
		return CustomerDashboard{}, err
	}

	if dashboard.Notifications, err = notificationsFor(db, identity.Customer, CustomerNotificationsLimit); err != nil {
		return CustomerDashboard{}, err
	}

	return dashboard, nil
}

func notificationsFor(db *gorm.DB, audience identity.Role, limit int) ([]NotificationRow, error) {
	rows, err := db.Raw(`
		SELECT message, type, created_at
		FROM notifications
		WHERE audience = ?
		ORDER BY created_at DESC
		LIMIT ?`, audience.Code(), limit).Rows()
	if err != nil {
		return nil, err
	}
	return collect(rows, scanNotification)
}
