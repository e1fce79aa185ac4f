package queries

import (
	"context"

	"pharmacygo/internal/pkg/errs"

	"gorm.io/gorm"
)

type FindRecordQueryHandler struct {
	db *gorm.DB
}

func NewFindRecordQueryHandler(db *gorm.DB) FindRecordQueryHandler {
	return FindRecordQueryHandler{db: db}
}

// Handle returns an ErrObjectNotFound error when the record is missing.
func (h FindRecordQueryHandler) Handle(ctx context.Context, query FindRecordQuery) error {
	if err := query.Validate(); err != nil {
		return err
	}

	var exists bool
	err := h.db.WithContext(ctx).
		Raw(`SELECT EXISTS (SELECT 1 FROM `+recordTables[query.kind]+` WHERE id = ?)`, query.id.Bytes()).
		Row().
		Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError(string(query.kind), query.id.String())
	}
	return nil
}
