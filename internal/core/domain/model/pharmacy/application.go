package pharmacy

import (
	"errors"
	"strings"
	"time"

	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/errs"
)

var ErrApplicationIsNotConstructed = errors.New("Application must be created via NewApplication constructor")

const ApplicationReviewedEventName = "application.reviewed"

// ApplicationReviewed is raised when an admin approves or rejects an application.
type ApplicationReviewed struct {
	ApplicationID string    `json:"application_id"`
	PharmacyName  string    `json:"pharmacy_name"`
	Status        string    `json:"status"`
	At            time.Time `json:"at"`
}

func (e ApplicationReviewed) EventName() string {
	return ApplicationReviewedEventName
}

func (e ApplicationReviewed) OccurredAt() time.Time {
	return e.At
}

// Application is a pharmacy's onboarding request.
type Application struct {
	kernel.EventRecorder

	id           kernel.UUID
	pharmacyName string
	documents    string
	status       ApplicationStatus
	createdAt    time.Time

	isConstructed bool
}

// NewApplication files a Pending application.
func NewApplication(id kernel.UUID, pharmacyName, documents string, createdAt time.Time) (*Application, error) {
	a := &Application{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setPharmacyName(pharmacyName),
		a.setDocuments(documents),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreApplication rebuilds an application in any status.
func RestoreApplication(
	id kernel.UUID,
	pharmacyName, documents string,
	status ApplicationStatus,
	createdAt time.Time,
) (*Application, error) {
	a, err := NewApplication(id, pharmacyName, documents, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	a.status = status
	return a, nil
}

func (a *Application) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrApplicationIsNotConstructed
	}
	return nil
}

func (a *Application) ID() kernel.UUID {
	return a.id
}

func (a *Application) PharmacyName() string {
	return a.pharmacyName
}

func (a *Application) Documents() string {
	return a.documents
}

func (a *Application) Status() ApplicationStatus {
	return a.status
}

func (a *Application) CreatedAt() time.Time {
	return a.createdAt
}

// MoveToReview marks a pending application as under review. Other statuses are left alone.
func (a *Application) MoveToReview() {
	if a.status == Pending {
		a.status = Review
	}
}

func (a *Application) Approve(at time.Time) error {
	return a.decide(Approved, at)
}

func (a *Application) Reject(at time.Time) error {
	return a.decide(Rejected, at)
}

func (a *Application) decide(to ApplicationStatus, at time.Time) error {
	next, err := a.status.decide(to)
	if err != nil {
		return err
	}
	a.status = next
	a.Record(ApplicationReviewed{
		ApplicationID: a.id.String(),
		PharmacyName:  a.pharmacyName,
		Status:        next.Code(),
		At:            at,
	})
	return nil
}

func (a *Application) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Application) setPharmacyName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("pharmacy name")
	}
	a.pharmacyName = name
	return nil
}

func (a *Application) setDocuments(documents string) error {
	documents = strings.TrimSpace(documents)
	if documents == "" {
		return errs.NewValueIsRequiredError("documents")
	}
	a.documents = documents
	return nil
}
