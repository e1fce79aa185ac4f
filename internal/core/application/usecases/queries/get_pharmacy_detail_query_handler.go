package queries

import (
	"context"
	"database/sql"
	"errors"

	"pharmacygo/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetPharmacyDetailQueryHandler struct {
	db *gorm.DB
}

func NewGetPharmacyDetailQueryHandler(db *gorm.DB) GetPharmacyDetailQueryHandler {
	return GetPharmacyDetailQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for an unknown pharmacy.
func (h GetPharmacyDetailQueryHandler) Handle(ctx context.Context, query GetPharmacyDetailQuery) (PharmacyDetail, error) {
	if err := query.Validate(); err != nil {
		return PharmacyDetail{}, err
	}

	db := h.db.WithContext(ctx)
	var detail PharmacyDetail

	p, err := scanPharmacy(db.Raw(`SELECT `+pharmacyColumns+` FROM pharmacies WHERE id = ?`, query.pharmacyID.Bytes()).Row())
	if errors.Is(err, sql.ErrNoRows) {
		return PharmacyDetail{}, errs.NewObjectNotFoundError("pharmacy", query.pharmacyID.String())
	}
	if err != nil {
		return PharmacyDetail{}, err
	}
	detail.Pharmacy = p

	rows, err := db.Raw(`SELECT `+orderColumns+`
		FROM orders o
		LEFT JOIN pharmacies p ON p.id = o.pharmacy_id
		WHERE o.pharmacy_id = ?
		ORDER BY o.created_at DESC
		LIMIT ?`, query.pharmacyID.Bytes(), PharmacyRecentOrdersLimit).Rows()
	if err != nil {
		return PharmacyDetail{}, err
	}
	if detail.RecentOrders, err = collect(rows, scanOrder); err != nil {
		return PharmacyDetail{}, err
	}

	return detail, nil
}
