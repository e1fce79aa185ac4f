package commands

import (
	"errors"

	"pharmacygo/internal/pkg/guard"
)

var ErrAgeStockCommandIsNotConstructed = errors.New(
	"AgeStockCommand must be created via NewAgeStockCommand constructor",
)

// AgeStockCommand moves every stock line one day closer to expiry.
type AgeStockCommand struct {
	guard guard.ConstructorGuard
}

func NewAgeStockCommand() AgeStockCommand {
	return AgeStockCommand{guard: guard.NewConstructorGuard()}
}

func (c AgeStockCommand) Validate() error {
	return c.guard.Validate(ErrAgeStockCommandIsNotConstructed)
}
