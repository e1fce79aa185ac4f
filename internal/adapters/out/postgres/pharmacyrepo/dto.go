// Package pharmacyrepo persists pharmacies and their onboarding applications.
package pharmacyrepo

import (
	"time"

	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/core/domain/model/pharmacy"

	"github.com/google/uuid"
)

type PharmacyDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"size:120;not null;index"`
	DistanceKm float64   `gorm:"type:numeric(4,1);not null;default:0"`
	Rating     float64   `gorm:"type:numeric(2,1);not null;default:0"`
	Address    string    `gorm:"size:255"`
	Pin        PinDTO    `gorm:"embedded;embeddedPrefix:map_"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (PharmacyDTO) TableName() string {
	return "pharmacies"
}

// PinDTO stores map offsets as whole percents.
type PinDTO struct {
	Top  int `gorm:"type:smallint;not null"`
	Left int `gorm:"type:smallint;not null"`
}

type ApplicationDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PharmacyName string    `gorm:"size:120;not null"`
	Documents    string    `gorm:"size:255;not null"`
	Status       string    `gorm:"size:20;not null;index"`
	CreatedAt    time.Time `gorm:"not null;index"`
}

func (ApplicationDTO) TableName() string {
	return "pharmacy_applications"
}

func pharmacyFromDomain(p *pharmacy.Pharmacy) PharmacyDTO {
	return PharmacyDTO{
		ID:         p.ID().Bytes(),
		Name:       p.Name(),
		DistanceKm: p.DistanceKm(),
		Rating:     p.Rating(),
		Address:    p.Address(),
		Pin: PinDTO{
			Top:  int(p.Pin().Top()),
			Left: int(p.Pin().Left()),
		},
	}
}

func pharmacyToDomain(dto PharmacyDTO) (*pharmacy.Pharmacy, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	pin, err := kernel.NewMapPin(kernel.Percent(dto.Pin.Top), kernel.Percent(dto.Pin.Left))
	if err != nil {
		return nil, err
	}

	return pharmacy.NewPharmacy(id, dto.Name, dto.DistanceKm, dto.Rating, dto.Address, pin)
}

func applicationFromDomain(a *pharmacy.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:           a.ID().Bytes(),
		PharmacyName: a.PharmacyName(),
		Documents:    a.Documents(),
		Status:       a.Status().Code(),
		CreatedAt:    a.CreatedAt(),
	}
}

func applicationToDomain(dto ApplicationDTO) (*pharmacy.Application, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := pharmacy.ParseApplicationStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return pharmacy.RestoreApplication(id, dto.PharmacyName, dto.Documents, status, dto.CreatedAt)
}
