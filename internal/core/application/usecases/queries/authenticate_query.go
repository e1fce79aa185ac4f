package queries

import (
	"errors"
	"strings"

	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/pkg/errs"
	"pharmacygo/internal/pkg/guard"
)

var ErrAuthenticateQueryIsNotConstructed = errors.New(
	"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
)

// AuthenticateQuery checks a sign-in form. The role hint is the tab the user
// picked on the access page.
type AuthenticateQuery struct {
	identifier string
	password   string
	roleHint   identity.Role

	guard guard.ConstructorGuard
}

// NewAuthenticateQuery trims the identifier and resolves the role hint.
func NewAuthenticateQuery(identifier, password, roleHint string) (AuthenticateQuery, error) {
	identifier = strings.TrimSpace(identifier)

	var identifierErr, passwordErr error
	if identifier == "" {
		identifierErr = errs.NewValueIsRequiredError("identifier")
	}
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	role, roleErr := identity.ParseRole(roleHint)

	if err := errors.Join(identifierErr, passwordErr, roleErr); err != nil {
		return AuthenticateQuery{}, err
	}

	return AuthenticateQuery{
		identifier: identifier,
		password:   password,
		roleHint:   role,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}

func (q AuthenticateQuery) Identifier() string {
	return q.identifier
}

func (q AuthenticateQuery) RoleHint() identity.Role {
	return q.roleHint
}
