package identity

import (
	"errors"
	"strings"
	"time"

	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/errs"
)

var (
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")
	ErrPhoneIsRequired         = errors.New("customers must sign up with a phone number")
	ErrEmailIsRequired         = errors.New("pharmacies, admins, and distributors must use a work email")
)

// Profile is the role and contact metadata attached to an account.
type Profile struct {
	role         Role
	phone        string
	organization string
}

func (p Profile) Role() Role {
	return p.role
}

func (p Profile) Phone() string {
	return p.phone
}

func (p Profile) Organization() string {
	return p.organization
}

// Account is a person who can sign in. Customers log in with their phone
// number, every other role with a work email; that identifier becomes the
// username and is unique case-insensitively across accounts.
type Account struct {
	id           kernel.UUID
	username     string
	email        string
	fullName     string
	passwordHash string
	profile      Profile
	createdAt    time.Time

	isConstructed bool
}

// NewAccount registers a new account. Email is lower-cased and phone trimmed
// before the identifier rule is checked.
func NewAccount(
	id kernel.UUID,
	role Role,
	fullName, email, phone, organization, passwordHash string,
	createdAt time.Time,
) (*Account, error) {
	email = NormalizeEmail(email)
	phone = strings.TrimSpace(phone)

	a := &Account{
		email:         email,
		createdAt:     createdAt,
		isConstructed: true,
		profile: Profile{
			phone:        phone,
			organization: strings.TrimSpace(organization),
		},
	}

	if err := errors.Join(
		a.setID(id),
		a.setRole(role),
		a.setFullName(fullName),
		a.setPasswordHash(passwordHash),
		a.setUsername(LoginIdentifier(role, email, phone)),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAccount rebuilds an account from storage without applying sign-up rules.
func RestoreAccount(
	id kernel.UUID,
	username, email, fullName, passwordHash string,
	role Role,
	phone, organization string,
	createdAt time.Time,
) (*Account, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return nil, err
	}
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}
	return &Account{
		id:           id,
		username:     username,
		email:        email,
		fullName:     fullName,
		passwordHash: passwordHash,
		profile: Profile{
			role:         role,
			phone:        phone,
			organization: organization,
		},
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// LoginIdentifier picks the username for a role: phone for customers, email otherwise.
func LoginIdentifier(role Role, email, phone string) string {
	if role == Customer {
		return strings.TrimSpace(phone)
	}
	return NormalizeEmail(email)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

func (a *Account) ID() kernel.UUID {
	return a.id
}

func (a *Account) Username() string {
	return a.username
}

func (a *Account) Email() string {
	return a.email
}

func (a *Account) FullName() string {
	return a.fullName
}

func (a *Account) PasswordHash() string {
	return a.passwordHash
}

func (a *Account) Profile() Profile {
	return a.profile
}

func (a *Account) Role() Role {
	return a.profile.role
}

func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// DisplayName is the full name, falling back to the username.
func (a *Account) DisplayName() string {
	if a.fullName != "" {
		return a.fullName
	}
	return a.username
}

// Contact is what the admin user segments list shows: phone, email, or a dash.
func (a *Account) Contact() string {
	switch {
	case a.profile.phone != "":
		return a.profile.phone
	case a.email != "":
		return a.email
	default:
		return "—"
	}
}

// Meta is the organization, falling back to the role label.
func (a *Account) Meta() string {
	if a.profile.organization != "" {
		return a.profile.organization
	}
	return a.profile.role.String()
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.profile.role = role
	return nil
}

func (a *Account) setFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return errs.NewValueIsRequiredError("full name")
	}
	a.fullName = fullName
	return nil
}

func (a *Account) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	a.passwordHash = hash
	return nil
}

func (a *Account) setUsername(username string) error {
	if username != "" {
		a.username = username
		return nil
	}
	if a.profile.role == Customer {
		return errs.NewValueIsRequiredErrorWithCause("phone", ErrPhoneIsRequired)
	}
	return errs.NewValueIsRequiredErrorWithCause("email", ErrEmailIsRequired)
}
