package payment

import (
	"errors"
	"fmt"
	"strings"

	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/errs"
)

const DefaultTheme = "ocean"

var ErrCardIsNotConstructed = errors.New("Card must be created via NewCard constructor")

// Card is a saved customer card. Only the last four digits are kept.
type Card struct {
	id         kernel.UUID
	ownerName  string
	providerID kernel.UUID
	last4      string
	theme      string
	limit      string

	isConstructed bool
}

func NewCard(id kernel.UUID, ownerName string, providerID kernel.UUID, last4, theme, limit string) (*Card, error) {
	c := &Card{
		theme:         strings.TrimSpace(theme),
		limit:         strings.TrimSpace(limit),
		isConstructed: true,
	}
	if c.theme == "" {
		c.theme = DefaultTheme
	}

	if err := errors.Join(
		c.setID(id),
		c.setOwnerName(ownerName),
		c.setProviderID(providerID),
		c.setLast4(last4),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Card) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCardIsNotConstructed
	}
	return nil
}

func (c *Card) ID() kernel.UUID {
	return c.id
}

func (c *Card) OwnerName() string {
	return c.ownerName
}

func (c *Card) ProviderID() kernel.UUID {
	return c.providerID
}

func (c *Card) Last4() string {
	return c.last4
}

// Masked renders the card number as "•••• 2345".
func (c *Card) Masked() string {
	return "•••• " + c.last4
}

func (c *Card) Theme() string {
	return c.theme
}

func (c *Card) Limit() string {
	return c.limit
}

func (c *Card) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Card) setOwnerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("owner name")
	}
	c.ownerName = name
	return nil
}

func (c *Card) setProviderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("provider", err)
	}
	c.providerID = id
	return nil
}

func (c *Card) setLast4(last4 string) error {
	last4 = strings.TrimSpace(last4)
	if len(last4) != 4 {
		return errs.NewValueIsInvalidErrorWithCause("last4", fmt.Errorf("%q must have exactly 4 digits", last4))
	}
	for _, r := range last4 {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidErrorWithCause("last4", fmt.Errorf("%q must have exactly 4 digits", last4))
		}
	}
	c.last4 = last4
	return nil
}
