package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetDistributorDashboardQueryHandler struct {
	db *gorm.DB
}

func NewGetDistributorDashboardQueryHandler(db *gorm.DB) GetDistributorDashboardQueryHandler {
	return GetDistributorDashboardQueryHandler{db: db}
}

func (h GetDistributorDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetDistributorDashboardQuery,
) (DistributorDashboard, error) {
	if err := query.Validate(); err != nil {
		return DistributorDashboard{}, err
	}

	db := h.db.WithContext(ctx)
	var dashboard DistributorDashboard
	var err error

	if dashboard.Stock, err = allStock(db); err != nil {
		return DistributorDashboard{}, err
	}

	if dashboard.Tasks, err = listTasks(db, ""); err != nil {
		return DistributorDashboard{}, err
	}

	rows, err := db.Raw(`
		SELECT label, COALESCE(time_text, ''), is_active
		FROM delivery_timeline_events
		ORDER BY created_at`).Rows()
	if err != nil {
		return DistributorDashboard{}, err
	}
	if dashboard.Timeline, err = collect(rows, scanTimeline); err != nil {
		return DistributorDashboard{}, err
	}

	rows, err = db.Raw(`
		SELECT id, order_code, pharmacy_name, status
		FROM delivery_status_entries
		ORDER BY created_at, order_code`).Rows()
	if err != nil {
		return DistributorDashboard{}, err
	}
	if dashboard.StatusBoard, err = collect(rows, scanStatusEntry); err != nil {
		return DistributorDashboard{}, err
	}

	return dashboard, nil
}

// listTasks returns tasks in creation order, optionally narrowed to a status code.
func listTasks(db *gorm.DB, statusCode string) ([]TaskRow, error) {
	rows, err := db.Raw(`SELECT `+taskColumns+`
		FROM delivery_tasks t
		LEFT JOIN pharmacies p ON p.id = t.pharmacy_id
		WHERE (? = '' OR t.status = ?)
		ORDER BY t.created_at, t.code`, statusCode, statusCode).Rows()
	if err != nil {
		return nil, err
	}
	return collect(rows, scanTask)
}
