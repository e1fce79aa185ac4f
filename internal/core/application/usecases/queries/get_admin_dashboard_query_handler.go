package queries

import (
	"context"
	"fmt"
	"time"

	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/core/domain/model/order"
	"pharmacygo/internal/core/domain/model/pharmacy"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetAdminDashboardQueryHandler struct {
	db *gorm.DB
}

func NewGetAdminDashboardQueryHandler(db *gorm.DB) GetAdminDashboardQueryHandler {
	return GetAdminDashboardQueryHandler{db: db}
}

func (h GetAdminDashboardQueryHandler) Handle(ctx context.Context, query GetAdminDashboardQuery) (AdminDashboard, error) {
	if err := query.Validate(); err != nil {
		return AdminDashboard{}, err
	}

	db := h.db.WithContext(ctx)
	var dashboard AdminDashboard
	var err error

	if dashboard.KPIs, err = h.kpis(db, query.now); err != nil {
		return AdminDashboard{}, err
	}

	rows, err := db.Raw(`SELECT `+orderColumns+`
		FROM orders o
		LEFT JOIN pharmacies p ON p.id = o.pharmacy_id
		ORDER BY o.created_at DESC
		LIMIT ?`, AdminRecentOrdersLimit).Rows()
	if err != nil {
		return AdminDashboard{}, err
	}
	if dashboard.Orders, err = collect(rows, scanOrder); err != nil {
		return AdminDashboard{}, err
	}

	rows, err = db.Raw(`SELECT `+applicationColumns+`
		FROM pharmacy_applications
		ORDER BY created_at DESC
		LIMIT ?`, AdminRecentApplicationsLimit).Rows()
	if err != nil {
		return AdminDashboard{}, err
	}
	if dashboard.Applications, err = collect(rows, scanApplication); err != nil {
		return AdminDashboard{}, err
	}

	segments := []struct {
		role   identity.Role
		target *[]ProfileRow
	}{
		{identity.Customer, &dashboard.Segments.Customers},
		{identity.Pharmacy, &dashboard.Segments.Pharmacies},
		{identity.Distributor, &dashboard.Segments.Distributors},
	}
	for _, s := range segments {
		if *s.target, err = h.segment(db, s.role); err != nil {
			return AdminDashboard{}, err
		}
	}

	return dashboard, nil
}

// segment lists the newest accounts of a role. Name, contact and meta fall
// back the same way the account itself does.
func (h GetAdminDashboardQueryHandler) segment(db *gorm.DB, role identity.Role) ([]ProfileRow, error) {
	rows, err := db.Raw(`
		SELECT id, username, COALESCE(email, ''), COALESCE(full_name, ''),
			COALESCE(profile_phone, ''), COALESCE(profile_organization, ''), created_at
		FROM accounts
		WHERE profile_role = ?
		ORDER BY created_at DESC
		LIMIT ?`, role.Code(), AdminSegmentLimit).Rows()
	if err != nil {
		return nil, err
	}

	return collect(rows, func(s rowScanner) (ProfileRow, error) {
		var id uuid.UUID
		var username, email, fullName, phone, organization string
		var createdAt time.Time
		if err := s.Scan(&id, &username, &email, &fullName, &phone, &organization, &createdAt); err != nil {
			return ProfileRow{}, err
		}

		accountID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return ProfileRow{}, err
		}
		account, err := identity.RestoreAccount(accountID, username, email, fullName, "", role, phone, organization, createdAt)
		if err != nil {
			return ProfileRow{}, err
		}
		return ProfileRow{Name: account.DisplayName(), Contact: account.Contact(), Meta: account.Meta()}, nil
	})
}

func (h GetAdminDashboardQueryHandler) kpis(db *gorm.DB, now time.Time) ([]KPI, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := today.AddDate(0, 0, -1)

	var counts struct {
		Today       int64
		Yesterday   int64
		Delivered   int64
		Out         int64
		Pharmacies  int64
		PendingApps int64
	}
	err := db.Raw(`
		SELECT
			(SELECT COUNT(*) FROM orders WHERE created_at >= ?) AS today,
			(SELECT COUNT(*) FROM orders WHERE created_at >= ? AND created_at < ?) AS yesterday,
			(SELECT COUNT(*) FROM orders WHERE status = ?) AS delivered,
			(SELECT COUNT(*) FROM orders WHERE status = ?) AS out_for_delivery,
			(SELECT COUNT(*) FROM pharmacies) AS pharmacies,
			(SELECT COUNT(*) FROM pharmacy_applications WHERE status IN (?, ?)) AS pending_apps
	`, today, yesterday, today,
		order.Delivered.Code(), order.Out.Code(),
		pharmacy.Pending.Code(), pharmacy.Review.Code(),
	).Row().Scan(&counts.Today, &counts.Yesterday, &counts.Delivered, &counts.Out, &counts.Pharmacies, &counts.PendingApps)
	if err != nil {
		return nil, err
	}

	return []KPI{
		{
			Label: "Orders today",
			Value: fmt.Sprintf("%d", counts.Today),
			Delta: fmt.Sprintf("%+d vs yesterday", counts.Today-counts.Yesterday),
		},
		{
			Label: "Delivered orders",
			Value: fmt.Sprintf("%d", counts.Delivered),
			Delta: fmt.Sprintf("%d out for delivery", counts.Out),
		},
		{
			Label: "Active pharmacies",
			Value: fmt.Sprintf("%d", counts.Pharmacies),
			Delta: fmt.Sprintf("%d awaiting approval", counts.PendingApps),
		},
	}, nil
}
