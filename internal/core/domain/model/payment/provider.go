package payment

import (
	"errors"
	"strings"

	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/errs"
)

const DefaultProviderStatus = "Connected"

var ErrProviderIsNotConstructed = errors.New("Provider must be created via NewProvider constructor")

// Provider is a payment network the customer can pay through. Status and fee
// are display texts ("Connected", "0.7%").
type Provider struct {
	id     kernel.UUID
	name   string
	status string
	fee    string

	isConstructed bool
}

func NewProvider(id kernel.UUID, name, status, fee string) (*Provider, error) {
	p := &Provider{
		status:        strings.TrimSpace(status),
		fee:           strings.TrimSpace(fee),
		isConstructed: true,
	}
	if p.status == "" {
		p.status = DefaultProviderStatus
	}

	name = strings.TrimSpace(name)
	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("provider name")
	}

	if err := errors.Join(id.Validate(), nameErr); err != nil {
		return nil, err
	}

	p.id = id
	p.name = name
	return p, nil
}

func (p *Provider) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProviderIsNotConstructed
	}
	return nil
}

func (p *Provider) ID() kernel.UUID {
	return p.id
}

func (p *Provider) Name() string {
	return p.name
}

func (p *Provider) Status() string {
	return p.status
}

func (p *Provider) Fee() string {
	return p.fee
}
