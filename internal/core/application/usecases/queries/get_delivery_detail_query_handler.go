package queries

import (
	"context"
	"database/sql"
	"errors"

	"pharmacygo/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetDeliveryDetailQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryDetailQueryHandler(db *gorm.DB) GetDeliveryDetailQueryHandler {
	return GetDeliveryDetailQueryHandler{db: db}
}

func (h GetDeliveryDetailQueryHandler) Handle(ctx context.Context, query GetDeliveryDetailQuery) (DeliveryDetail, error) {
	if err := query.Validate(); err != nil {
		return DeliveryDetail{}, err
	}

	db := h.db.WithContext(ctx)

	task, err := scanTask(db.Raw(`SELECT `+taskColumns+`
		FROM delivery_tasks t
		LEFT JOIN pharmacies p ON p.id = t.pharmacy_id
		WHERE t.id = ?`, query.taskID.Bytes()).Row())
	if errors.Is(err, sql.ErrNoRows) {
		return DeliveryDetail{}, errs.NewObjectNotFoundError("delivery task", query.taskID.String())
	}
	if err != nil {
		return DeliveryDetail{}, err
	}

	detail := DeliveryDetail{Task: task}

	p, err := scanPharmacy(db.Raw(`SELECT `+pharmacyColumns+` FROM pharmacies WHERE id = ?`, task.PharmacyID.Bytes()).Row())
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return DeliveryDetail{}, err
	default:
		detail.Pharmacy = &p
	}

	return detail, nil
}
