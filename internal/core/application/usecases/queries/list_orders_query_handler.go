package queries

import (
	"context"

	"pharmacygo/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	status := ""
	if query.status != order.Unknown {
		status = query.status.Code()
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT `+orderColumns+`
		FROM orders o
		LEFT JOIN pharmacies p ON p.id = o.pharmacy_id
		WHERE (? = '' OR o.status = ?)
		ORDER BY o.created_at DESC
		LIMIT ?`, status, status, query.limit).Rows()
	if err != nil {
		return nil, err
	}
	return collect(rows, scanOrder)
}
