package commands

import (
	"context"
	"time"
)

// ReviewApplicationCommandHandler approves, rejects or opens review of an
// application and returns the pharmacy name for the confirmation message.
type ReviewApplicationCommandHandler struct {
	uowFactory ApplicationUoWFactory
}

func NewReviewApplicationCommandHandler(uowFactory ApplicationUoWFactory) ReviewApplicationCommandHandler {
	return ReviewApplicationCommandHandler{uowFactory: uowFactory}
}

func (h *ReviewApplicationCommandHandler) Handle(ctx context.Context, cmd ReviewApplicationCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ApplicationRepository()

	application, err := repo.Get(ctx, cmd.ApplicationID())
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	switch cmd.Decision() {
	case DecisionApprove:
		err = application.Approve(now)
	case DecisionReject:
		err = application.Reject(now)
	case DecisionReview:
		application.MoveToReview()
	}
	if err != nil {
		return "", err
	}

	if err = repo.Update(ctx, application); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return application.PharmacyName(), nil
}
