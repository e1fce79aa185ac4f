package commands

import (
	"errors"
	"strings"

	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/errs"
	"pharmacygo/internal/pkg/guard"
)

var ErrSubmitApplicationCommandIsNotConstructed = errors.New(
	"SubmitApplicationCommand must be created via NewSubmitApplicationCommand constructor",
)

// SubmitApplicationCommand files a pharmacy onboarding request.
type SubmitApplicationCommand struct {
	applicationID kernel.UUID
	pharmacyName  string
	documents     string

	guard guard.ConstructorGuard
}

func NewSubmitApplicationCommand(
	applicationID kernel.UUID,
	pharmacyName, documents string,
) (SubmitApplicationCommand, error) {
	c := SubmitApplicationCommand{
		applicationID: applicationID,
		pharmacyName:  strings.TrimSpace(pharmacyName),
		documents:     strings.TrimSpace(documents),
		guard:         guard.NewConstructorGuard(),
	}

	var nameErr, docsErr error
	if c.pharmacyName == "" {
		nameErr = errs.NewValueIsRequiredError("pharmacy name")
	}
	if c.documents == "" {
		docsErr = errs.NewValueIsRequiredError("documents")
	}

	if err := errors.Join(applicationID.Validate(), nameErr, docsErr); err != nil {
		return SubmitApplicationCommand{}, err
	}

	return c, nil
}

func (c SubmitApplicationCommand) Validate() error {
	return c.guard.Validate(ErrSubmitApplicationCommandIsNotConstructed)
}

func (c SubmitApplicationCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

func (c SubmitApplicationCommand) PharmacyName() string {
	return c.pharmacyName
}

func (c SubmitApplicationCommand) Documents() string {
	return c.documents
}
