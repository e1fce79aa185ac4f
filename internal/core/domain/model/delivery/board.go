package delivery

import (
	"errors"
	"strings"
	"time"

	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/errs"
)

const DeliveredText = "Delivered"

var (
	ErrTimelineEventIsNotConstructed = errors.New("TimelineEvent must be created via NewTimelineEvent constructor")
	ErrStatusEntryIsNotConstructed   = errors.New("StatusEntry must be created via NewStatusEntry constructor")
)

// TimelineEvent is one step on the distributor's route timeline.
type TimelineEvent struct {
	id        kernel.UUID
	label     string
	timeText  string
	active    bool
	createdAt time.Time

	isConstructed bool
}

func NewTimelineEvent(id kernel.UUID, label, timeText string, active bool, createdAt time.Time) (*TimelineEvent, error) {
	e := &TimelineEvent{
		timeText:      strings.TrimSpace(timeText),
		active:        active,
		createdAt:     createdAt,
		isConstructed: true,
	}

	label = strings.TrimSpace(label)
	var labelErr error
	if label == "" {
		labelErr = errs.NewValueIsRequiredError("label")
	}
	e.label = label

	if err := errors.Join(id.Validate(), labelErr); err != nil {
		return nil, err
	}
	e.id = id
	return e, nil
}

func (e *TimelineEvent) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrTimelineEventIsNotConstructed
	}
	return nil
}

func (e *TimelineEvent) ID() kernel.UUID      { return e.id }
func (e *TimelineEvent) Label() string        { return e.label }
func (e *TimelineEvent) TimeText() string     { return e.timeText }
func (e *TimelineEvent) IsActive() bool       { return e.active }
func (e *TimelineEvent) CreatedAt() time.Time { return e.createdAt }

// StatusEntry is a row of the distributor status board. Its status is free text.
type StatusEntry struct {
	id           kernel.UUID
	orderCode    string
	pharmacyName string
	status       string

	isConstructed bool
}

func NewStatusEntry(id kernel.UUID, orderCode, pharmacyName, status string) (*StatusEntry, error) {
	s := &StatusEntry{isConstructed: true}

	if err := errors.Join(
		id.Validate(),
		s.setOrderCode(orderCode),
		s.setPharmacyName(pharmacyName),
		s.UpdateStatus(status),
	); err != nil {
		return nil, err
	}
	s.id = id
	return s, nil
}

func (s *StatusEntry) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStatusEntryIsNotConstructed
	}
	return nil
}

func (s *StatusEntry) ID() kernel.UUID      { return s.id }
func (s *StatusEntry) OrderCode() string    { return s.orderCode }
func (s *StatusEntry) PharmacyName() string { return s.pharmacyName }
func (s *StatusEntry) Status() string       { return s.status }

// Complete sets the board status to "Delivered".
func (s *StatusEntry) Complete() {
	s.status = DeliveredText
}

// UpdateStatus replaces the free-text status; blank text is rejected.
func (s *StatusEntry) UpdateStatus(status string) error {
	status = strings.TrimSpace(status)
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}
	s.status = status
	return nil
}

func (s *StatusEntry) setOrderCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("order code")
	}
	s.orderCode = code
	return nil
}

func (s *StatusEntry) setPharmacyName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("pharmacy name")
	}
	s.pharmacyName = name
	return nil
}
