// Package queries contains read operations for the dashboards and the JSON API.
// Handlers read with plain SQL and return flat read models ready to render.
package queries

import (
	"database/sql"
	"time"

	"pharmacygo/internal/core/domain/model/delivery"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/core/domain/model/order"
	"pharmacygo/internal/core/domain/model/pharmacy"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderRow is an order joined with its pharmacy name.
type OrderRow struct {
	ID           kernel.UUID
	Code         string
	CustomerName string
	PharmacyID   kernel.UUID
	PharmacyName string
	Status       order.Status
	Items        []string
	Progress     string
	ETA          string
	CreatedAt    time.Time
}

// StatusLabel is the human form, e.g. "Out for delivery".
func (r OrderRow) StatusLabel() string {
	return r.Status.String()
}

type PharmacyRow struct {
	ID         kernel.UUID
	Name       string
	DistanceKm float64
	Rating     float64
	Address    string
	PinTop     string
	PinLeft    string
}

type ApplicationRow struct {
	ID           kernel.UUID
	PharmacyName string
	Documents    string
	Status       pharmacy.ApplicationStatus
	CreatedAt    time.Time
}

type StockRow struct {
	Sku           string
	Name          string
	Quantity      int
	Status        string
	ExpiresInDays int
}

// TaskRow is a delivery task joined with its pharmacy name.
type TaskRow struct {
	ID           kernel.UUID
	Code         string
	PharmacyID   kernel.UUID
	PharmacyName string
	Address      string
	ETA          string
	Status       delivery.TaskStatus
	Version      int
}

type TimelineRow struct {
	Label    string
	TimeText string
	Active   bool
}

type StatusEntryRow struct {
	ID           kernel.UUID
	OrderCode    string
	PharmacyName string
	Status       string
}

type NotificationRow struct {
	Message   string
	Type      string
	CreatedAt time.Time
}

// rowScanner is satisfied by *sql.Rows and *sql.Row.
type rowScanner interface {
	Scan(dest ...any) error
}

func toKernelUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

const orderColumns = `
	o.id, o.code, o.customer_name, o.pharmacy_id, COALESCE(p.name, ''),
	o.status, o.items, o.progress, o.eta, o.created_at`

func scanOrder(s rowScanner) (OrderRow, error) {
	var row OrderRow
	var id, pharmacyID uuid.UUID
	var status string
	var items pq.StringArray

	if err := s.Scan(&id, &row.Code, &row.CustomerName, &pharmacyID, &row.PharmacyName,
		&status, &items, &row.Progress, &row.ETA, &row.CreatedAt); err != nil {
		return OrderRow{}, err
	}

	var err error
	if row.ID, err = toKernelUUID(id); err != nil {
		return OrderRow{}, err
	}
	if row.PharmacyID, err = toKernelUUID(pharmacyID); err != nil {
		return OrderRow{}, err
	}
	if row.Status, err = order.ParseStatus(status); err != nil {
		return OrderRow{}, err
	}
	row.Items = []string(items)
	return row, nil
}

const pharmacyColumns = `id, name, distance_km, rating, COALESCE(address, ''), map_top, map_left`

func scanPharmacy(s rowScanner) (PharmacyRow, error) {
	var row PharmacyRow
	var id uuid.UUID
	var top, left int

	if err := s.Scan(&id, &row.Name, &row.DistanceKm, &row.Rating, &row.Address, &top, &left); err != nil {
		return PharmacyRow{}, err
	}

	pin, err := kernel.NewMapPin(kernel.Percent(top), kernel.Percent(left))
	if err != nil {
		return PharmacyRow{}, err
	}
	row.PinTop = pin.Top().String()
	row.PinLeft = pin.Left().String()

	if row.ID, err = toKernelUUID(id); err != nil {
		return PharmacyRow{}, err
	}
	return row, nil
}

const applicationColumns = `id, pharmacy_name, documents, status, created_at`

func scanApplication(s rowScanner) (ApplicationRow, error) {
	var row ApplicationRow
	var id uuid.UUID
	var status string

	if err := s.Scan(&id, &row.PharmacyName, &row.Documents, &status, &row.CreatedAt); err != nil {
		return ApplicationRow{}, err
	}

	var err error
	if row.ID, err = toKernelUUID(id); err != nil {
		return ApplicationRow{}, err
	}
	if row.Status, err = pharmacy.ParseApplicationStatus(status); err != nil {
		return ApplicationRow{}, err
	}
	return row, nil
}

const taskColumns = `
	t.id, t.code, t.pharmacy_id, COALESCE(p.name, ''), t.address, COALESCE(t.eta, ''), t.status, t.version`

func scanTask(s rowScanner) (TaskRow, error) {
	var row TaskRow
	var id, pharmacyID uuid.UUID
	var status string

	if err := s.Scan(&id, &row.Code, &pharmacyID, &row.PharmacyName, &row.Address,
		&row.ETA, &status, &row.Version); err != nil {
		return TaskRow{}, err
	}

	var err error
	if row.ID, err = toKernelUUID(id); err != nil {
		return TaskRow{}, err
	}
	if row.PharmacyID, err = toKernelUUID(pharmacyID); err != nil {
		return TaskRow{}, err
	}
	if row.Status, err = delivery.ParseTaskStatus(status); err != nil {
		return TaskRow{}, err
	}
	return row, nil
}

// collect drains rows through scan and closes them.
func collect[T any](rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanStock(s rowScanner) (StockRow, error) {
	var row StockRow
	err := s.Scan(&row.Sku, &row.Name, &row.Quantity, &row.Status, &row.ExpiresInDays)
	return row, err
}

func scanTimeline(s rowScanner) (TimelineRow, error) {
	var row TimelineRow
	err := s.Scan(&row.Label, &row.TimeText, &row.Active)
	return row, err
}

func scanStatusEntry(s rowScanner) (StatusEntryRow, error) {
	var row StatusEntryRow
	var id uuid.UUID
	if err := s.Scan(&id, &row.OrderCode, &row.PharmacyName, &row.Status); err != nil {
		return StatusEntryRow{}, err
	}
	var err error
	row.ID, err = toKernelUUID(id)
	return row, err
}

func scanNotification(s rowScanner) (NotificationRow, error) {
	var row NotificationRow
	err := s.Scan(&row.Message, &row.Type, &row.CreatedAt)
	return row, err
}
