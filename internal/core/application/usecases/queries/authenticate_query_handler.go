package queries

import (
	"context"
	"errors"
	"fmt"

	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/core/ports"
)

// ErrInvalidCredentials is returned when no candidate account accepts the password.
var ErrInvalidCredentials = errors.New("Invalid credentials. Check your email/phone and password.")

// RoleMismatchError means the password was right but the account belongs to
// another role than the one picked on the form.
type RoleMismatchError struct {
	Selected identity.Role
	Actual   identity.Role
}

func (e *RoleMismatchError) Error() string {
	return fmt.Sprintf("You selected %s but this account is %s.", e.Selected, e.Actual)
}

type loginCandidateFinder interface {
	FindLoginCandidates(ctx context.Context, identifier string) ([]*identity.Account, error)
}

// AuthenticateQueryHandler resolves a sign-in identifier to an account.
// Candidates are tried in the order the repository returns them and the first
// password match wins.
type AuthenticateQueryHandler struct {
	accounts loginCandidateFinder
	hasher   ports.PasswordHasher
}

func NewAuthenticateQueryHandler(accounts loginCandidateFinder, hasher ports.PasswordHasher) AuthenticateQueryHandler {
	return AuthenticateQueryHandler{accounts: accounts, hasher: hasher}
}

func (h AuthenticateQueryHandler) Handle(ctx context.Context, query AuthenticateQuery) (*identity.Account, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	candidates, err := h.accounts.FindLoginCandidates(ctx, query.Identifier())
	if err != nil {
		return nil, err
	}

	for _, account := range candidates {
		if !h.hasher.Matches(account.PasswordHash(), query.password) {
			continue
		}
		if account.Role() != query.RoleHint() {
			return nil, &RoleMismatchError{Selected: query.RoleHint(), Actual: account.Role()}
		}
		return account, nil
	}

	return nil, ErrInvalidCredentials
}
