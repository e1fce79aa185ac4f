// Package paymentrepo persists payment providers and saved cards.
package paymentrepo

import (
	"time"

	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

type ProviderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:80;not null;index"`
	Status    string    `gorm:"size:40;not null"`
	Fee       string    `gorm:"size:40"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ProviderDTO) TableName() string {
	return "payment_providers"
}

type CardDTO struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OwnerName  string      `gorm:"size:120;not null"`
	ProviderID uuid.UUID   `gorm:"type:uuid;not null;index"`
	Provider   ProviderDTO `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE"`
	Last4      string      `gorm:"column:last4;size:4;not null"`
	Theme      string      `gorm:"size:40;not null"`
	Limit      string      `gorm:"column:spending_limit;size:40"`
	CreatedAt  time.Time   `gorm:"autoCreateTime"`
}

func (CardDTO) TableName() string {
	return "payment_cards"
}

func providerFromDomain(p *payment.Provider) ProviderDTO {
	return ProviderDTO{
		ID:     p.ID().Bytes(),
		Name:   p.Name(),
		Status: p.Status(),
		Fee:    p.Fee(),
	}
}

func providerToDomain(dto ProviderDTO) (*payment.Provider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return payment.NewProvider(id, dto.Name, dto.Status, dto.Fee)
}

func cardFromDomain(c *payment.Card) CardDTO {
	return CardDTO{
		ID:         c.ID().Bytes(),
		OwnerName:  c.OwnerName(),
		ProviderID: c.ProviderID().Bytes(),
		Last4:      c.Last4(),
		Theme:      c.Theme(),
		Limit:      c.Limit(),
	}
}
