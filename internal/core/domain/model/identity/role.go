package identity

import (
	"fmt"
	"strings"

	"pharmacygo/internal/pkg/errs"
)

// Role decides which dashboard an account lands on and which actions it may
// trigger. It is persisted by its code ("admin", "customer", ...).
type Role int

const (
	UnknownRole Role = iota
	Admin
	Customer
	Distributor
	Pharmacy
)

// legacyDoctorCode is what accounts created before pharmacy stores replaced
// doctors still carry; it reads as Pharmacy.
const legacyDoctorCode = "doctor"

func roleCodes() map[Role]string {
	return map[Role]string{
		Admin:       "admin",
		Customer:    "customer",
		Distributor: "distributor",
		Pharmacy:    "pharmacy",
	}
}

func roleLabels() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		Admin:       "Admin",
		Customer:    "Customer",
		Distributor: "Distributor",
		Pharmacy:    "Pharmacy store",
	}
}

// Roles lists the selectable roles in the order the sign-in and sign-up forms show them.
func Roles() []Role {
	return []Role{Admin, Customer, Distributor, Pharmacy}
}

// ParseRole maps a persisted or submitted code to a Role.
func ParseRole(code string) (Role, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == legacyDoctorCode {
		return Pharmacy, nil
	}
	for role, c := range roleCodes() {
		if c == code {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", code))
}

func (r Role) Validate() error {
	if _, ok := roleCodes()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Code is the persisted form; empty for invalid roles.
func (r Role) Code() string {
	return roleCodes()[r]
}

// String is the human label, e.g. "Pharmacy store".
func (r Role) String() string {
	if label, ok := roleLabels()[r]; ok {
		return label
	}
	return "Unknown"
}

// Description is the one-line blurb shown next to each role on the access page.
func (r Role) Description() string {
	switch r {
	case Admin:
		return "Manage platform health & approvals"
	case Customer:
		return "Order medicines & pay securely"
	case Distributor:
		return "Deliver and update stock"
	case Pharmacy:
		return "Pack orders & manage store stock"
	case UnknownRole:
	}
	return ""
}
