package commands

import (
	"errors"
	"strings"

	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/guard"
)

var ErrSignUpCommandIsNotConstructed = errors.New(
	"SignUpCommand must be created via NewSignUpCommand constructor",
)

// Messages shown next to sign-up form fields.
const (
	MsgRoleIsInvalid     = "Select a valid role."
	MsgFullNameRequired  = "Full name is required."
	MsgPhoneRequired     = "Customers must sign up with a phone number."
	MsgEmailRequired     = "Pharmacies, admins, and distributors must use a work email."
	MsgAccountExists     = "Account already exists for this identifier."
	MsgPasswordsMismatch = "Passwords do not match."
	MsgPasswordRequired  = "Password is required."
	MsgConfirmRequired   = "Confirm your password."
)

// SignUpCommand registers a new account for one of the four roles.
//
// Email is trimmed and lower-cased and phone trimmed before the identifier
// rule applies: customers sign in with their phone, everyone else with email.
type SignUpCommand struct { //nolint:recvcheck //using for validation
	accountID    kernel.UUID
	role         identity.Role
	fullName     string
	email        string
	phone        string
	organization string
	password     string

	guard guard.ConstructorGuard
}

// NewSignUpCommand validates the submitted form. It returns FieldErrors with
// every problem it can detect without touching storage.
func NewSignUpCommand(
	accountID kernel.UUID,
	role, fullName, email, phone, organization, password1, password2 string,
) (SignUpCommand, error) {
	if err := accountID.Validate(); err != nil {
		return SignUpCommand{}, err
	}

	c := SignUpCommand{
		accountID:    accountID,
		fullName:     strings.TrimSpace(fullName),
		email:        identity.NormalizeEmail(email),
		phone:        strings.TrimSpace(phone),
		organization: strings.TrimSpace(organization),
		password:     password1,
		guard:        guard.NewConstructorGuard(),
	}

	fieldErrs := FieldErrors{}

	parsed, err := identity.ParseRole(role)
	if err != nil {
		fieldErrs.Add("role", MsgRoleIsInvalid)
	}
	c.role = parsed

	if c.fullName == "" {
		fieldErrs.Add("full_name", MsgFullNameRequired)
	}

	if err == nil {
		if c.role == identity.Customer && c.phone == "" {
			fieldErrs.Add("phone", MsgPhoneRequired)
		}
		if c.role != identity.Customer && c.email == "" {
			fieldErrs.Add("email", MsgEmailRequired)
		}
	}

	if password1 == "" {
		fieldErrs.Add("password1", MsgPasswordRequired)
	}
	switch {
	case password2 == "":
		fieldErrs.Add("password2", MsgConfirmRequired)
	case password1 != "" && password1 != password2:
		fieldErrs.Add("password2", MsgPasswordsMismatch)
	}

	if password1 != "" {
		if policyErr := identity.ValidatePassword(password1); policyErr != nil {
			for _, msg := range strings.Split(policyErr.Error(), "\n") {
				fieldErrs.Add("password1", sentence(msg))
			}
		}
	}

	if err = fieldErrs.OrNil(); err != nil {
		return SignUpCommand{}, err
	}

	return c, nil
}

func (c SignUpCommand) Validate() error {
	return c.guard.Validate(ErrSignUpCommandIsNotConstructed)
}

func (c SignUpCommand) AccountID() kernel.UUID {
	return c.accountID
}

func (c SignUpCommand) Role() identity.Role {
	return c.role
}

func (c SignUpCommand) FullName() string {
	return c.fullName
}

func (c SignUpCommand) Email() string {
	return c.email
}

func (c SignUpCommand) Phone() string {
	return c.phone
}

func (c SignUpCommand) Organization() string {
	return c.organization
}

func (c SignUpCommand) Password() string {
	return c.password
}

// Identifier is the username the account will sign in with.
func (c SignUpCommand) Identifier() string {
	return identity.LoginIdentifier(c.role, c.email, c.phone)
}

// identifierField is the form field an identifier clash is reported on.
func (c SignUpCommand) identifierField() string {
	if c.role == identity.Customer {
		return "phone"
	}
	return "email"
}

func sentence(msg string) string {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:] + "."
}
