package commands

import (
	"errors"
	"fmt"
	"strings"

	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/errs"
	"pharmacygo/internal/pkg/guard"
)

var ErrReviewApplicationCommandIsNotConstructed = errors.New(
	"ReviewApplicationCommand must be created via NewReviewApplicationCommand constructor",
)

// ReviewDecision is an admin's verdict on a pharmacy application.
// DecisionReview only takes a pending application under review.
type ReviewDecision string

const (
	DecisionApprove ReviewDecision = "approve"
	DecisionReject  ReviewDecision = "reject"
	DecisionReview  ReviewDecision = "review"
)

type ReviewApplicationCommand struct {
	applicationID kernel.UUID
	decision      ReviewDecision

	guard guard.ConstructorGuard
}

func NewReviewApplicationCommand(applicationID kernel.UUID, action string) (ReviewApplicationCommand, error) {
	if err := applicationID.Validate(); err != nil {
		return ReviewApplicationCommand{}, err
	}

	decision := ReviewDecision(strings.ToLower(strings.TrimSpace(action)))
	switch decision {
	case DecisionApprove, DecisionReject, DecisionReview:
	default:
		return ReviewApplicationCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"action", fmt.Errorf("%q is not a valid review action", action))
	}

	return ReviewApplicationCommand{
		applicationID: applicationID,
		decision:      decision,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c ReviewApplicationCommand) Validate() error {
	return c.guard.Validate(ErrReviewApplicationCommandIsNotConstructed)
}

func (c ReviewApplicationCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

func (c ReviewApplicationCommand) Decision() ReviewDecision {
	return c.decision
}
