package commands

import (
	"errors"

	"pharmacygo/internal/pkg/guard"
)

var ErrSeedRecordsCommandIsNotConstructed = errors.New(
	"SeedRecordsCommand must be created via NewSeedRecordsCommand constructor",
)

// SeedRecordsCommand fills every empty table with the demo fixtures.
type SeedRecordsCommand struct {
	guard guard.ConstructorGuard
}

func NewSeedRecordsCommand() SeedRecordsCommand {
	return SeedRecordsCommand{guard: guard.NewConstructorGuard()}
}

func (c SeedRecordsCommand) Validate() error {
	return c.guard.Validate(ErrSeedRecordsCommandIsNotConstructed)
}
