package pharmacy

import (
	"fmt"
	"strings"

	"pharmacygo/internal/pkg/errs"
)

// ApplicationStatus tracks a pharmacy's onboarding request.
//
//	Pending ──┬──> Approved
//	Review  ──┴──> Rejected
//
// Approved and Rejected are final.
type ApplicationStatus int

const (
	UnknownApplicationStatus ApplicationStatus = iota
	Pending
	Review
	Approved
	Rejected
)

func applicationStatusCodes() map[ApplicationStatus]string {
	return map[ApplicationStatus]string{
		Pending:  "pending",
		Review:   "review",
		Approved: "approved",
		Rejected: "rejected",
	}
}

// ParseApplicationStatus reads codes as well as the fixture labels ("Pending", "Review").
func ParseApplicationStatus(code string) (ApplicationStatus, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	for s, c := range applicationStatusCodes() {
		if c == code {
			return s, nil
		}
	}
	return UnknownApplicationStatus, errs.NewValueIsInvalidErrorWithCause(
		"application status", fmt.Errorf("%q is not a valid application status", code))
}

func (s ApplicationStatus) Validate() error {
	if _, ok := applicationStatusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"application status", fmt.Errorf("%d is not a valid application status", s))
	}
	return nil
}

func (s ApplicationStatus) Code() string {
	return applicationStatusCodes()[s]
}

func (s ApplicationStatus) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Review:
		return "Review"
	case Approved:
		return "Approved"
	case Rejected:
		return "Rejected"
	case UnknownApplicationStatus:
	}
	return "Unknown"
}

// IsFinal reports whether the application was already decided.
func (s ApplicationStatus) IsFinal() bool {
	return s == Approved || s == Rejected
}

func (s ApplicationStatus) decide(to ApplicationStatus) (ApplicationStatus, error) {
	if s != Pending && s != Review {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"application status",
			fmt.Errorf("%s is not a valid status to %s", s, strings.ToLower(to.verb())),
		)
	}
	return to, nil
}

func (s ApplicationStatus) verb() string {
	if s == Rejected {
		return "reject"
	}
	return "approve"
}
