// Package accountrepo persists sign-in accounts and their profiles.
package accountrepo

import (
	"time"

	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO keeps the profile in the same row; roles are stored by code.
type AccountDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Username     string     `gorm:"size:150;not null;uniqueIndex:idx_accounts_username"`
	Email        string     `gorm:"size:254;index"`
	FullName     string     `gorm:"size:150"`
	PasswordHash string     `gorm:"size:128;not null"`
	Profile      ProfileDTO `gorm:"embedded;embeddedPrefix:profile_"`
	CreatedAt    time.Time  `gorm:"not null;index"`
}

func (AccountDTO) TableName() string {
	return "accounts"
}

type ProfileDTO struct {
	Role         string `gorm:"size:20;not null;index"`
	Phone        string `gorm:"size:32;index"`
	Organization string `gorm:"size:120"`
}

func fromDomain(a *identity.Account) AccountDTO {
	return AccountDTO{
		ID:           a.ID().Bytes(),
		Username:     a.Username(),
		Email:        a.Email(),
		FullName:     a.FullName(),
		PasswordHash: a.PasswordHash(),
		Profile: ProfileDTO{
			Role:         a.Role().Code(),
			Phone:        a.Profile().Phone(),
			Organization: a.Profile().Organization(),
		},
		CreatedAt: a.CreatedAt(),
	}
}

func toDomain(dto AccountDTO) (*identity.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := identity.ParseRole(dto.Profile.Role)
	if err != nil {
		return nil, err
	}

	return identity.RestoreAccount(
		id,
		dto.Username,
		dto.Email,
		dto.FullName,
		dto.PasswordHash,
		role,
		dto.Profile.Phone,
		dto.Profile.Organization,
		dto.CreatedAt,
	)
}
