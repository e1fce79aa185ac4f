package commands

import (
	"context"
	"errors"
	"time"

	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/core/ports"
	"pharmacygo/internal/pkg/errs"
)

// SignUpCommandHandler stores a new account with a hashed password.
type SignUpCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
}

func NewSignUpCommandHandler(uowFactory AccountUoWFactory, hasher ports.PasswordHasher) SignUpCommandHandler {
	return SignUpCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle rejects an identifier that is already taken with FieldErrors, so the
// form can render it next to the field.
func (h *SignUpCommandHandler) Handle(ctx context.Context, cmd SignUpCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	exists, err := accountRepo.UsernameExists(ctx, cmd.Identifier())
	if err != nil {
		return err
	}
	if exists {
		return identifierTaken(cmd)
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	account, err := identity.NewAccount(
		cmd.AccountID(),
		cmd.Role(),
		cmd.FullName(),
		cmd.Email(),
		cmd.Phone(),
		cmd.Organization(),
		hash,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = accountRepo.Add(ctx, account); err != nil {
		// a concurrent sign-up took the identifier between the check and the insert
		if errors.Is(err, errs.ErrValueIsInvalid) {
			return identifierTaken(cmd)
		}
		return err
	}

	return uow.Commit(ctx)
}

func identifierTaken(cmd SignUpCommand) FieldErrors {
	fieldErrs := FieldErrors{}
	fieldErrs.Add(cmd.identifierField(), MsgAccountExists)
	return fieldErrs
}
