package queries

import (
	"errors"

	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/errs"
	"pharmacygo/internal/pkg/guard"
)

var ErrFindRecordQueryIsNotConstructed = errors.New(
	"FindRecordQuery must be created via NewFindRecordQuery constructor",
)

// RecordKind names a record that dashboard actions address by id.
type RecordKind string

const (
	OrderRecord        RecordKind = "order"
	ApplicationRecord  RecordKind = "pharmacy application"
	DeliveryTaskRecord RecordKind = "delivery task"
	StatusEntryRecord  RecordKind = "status entry"
)

var recordTables = map[RecordKind]string{
	OrderRecord:        "orders",
	ApplicationRecord:  "pharmacy_applications",
	DeliveryTaskRecord: "delivery_tasks",
	StatusEntryRecord:  "delivery_status_entries",
}

// FindRecordQuery checks that a record exists before an action is read.
type FindRecordQuery struct {
	kind  RecordKind
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewFindRecordQuery(kind RecordKind, id kernel.UUID) (FindRecordQuery, error) {
	if _, ok := recordTables[kind]; !ok {
		return FindRecordQuery{}, errs.NewValueIsInvalidError("record kind")
	}
	if err := id.Validate(); err != nil {
		return FindRecordQuery{}, err
	}
	return FindRecordQuery{kind: kind, id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q FindRecordQuery) Validate() error {
	return q.guard.Validate(ErrFindRecordQueryIsNotConstructed)
}
