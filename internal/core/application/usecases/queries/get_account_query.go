package queries

import (
	"errors"

	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/guard"
)

var ErrGetAccountQueryIsNotConstructed = errors.New(
	"GetAccountQuery must be created via NewGetAccountQuery constructor",
)

// GetAccountQuery loads the signed-in account behind a session.
type GetAccountQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetAccountQuery(id kernel.UUID) (GetAccountQuery, error) {
	if err := id.Validate(); err != nil {
		return GetAccountQuery{}, err
	}
	return GetAccountQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAccountQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountQueryIsNotConstructed)
}

// AccountView is what page layouts and role guards need about the current user.
type AccountView struct {
	ID           kernel.UUID
	Username     string
	DisplayName  string
	Email        string
	Role         identity.Role
	Organization string
}
