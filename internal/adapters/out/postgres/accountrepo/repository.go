package accountrepo

import (
	"context"
	"errors"

	"pharmacygo/internal/adapters/out/postgres/pgerr"
	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/core/domain/model/kernel"
	"pharmacygo/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errUsernameIsTaken = errors.New("username is already taken")

// GormAccountRepository implements ports.AccountRepository using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

func (r *GormAccountRepository) Add(ctx context.Context, account *identity.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	dto := fromDomain(account)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("username", errUsernameIsTaken)
		}
		return err
	}

	return nil
}

func (r *GormAccountRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormAccountRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("LOWER(username) = LOWER(?)", username).
		Count(&count).Error
	return count > 0, err
}

// FindLoginCandidates runs the three lookups in priority order and drops
// accounts already found by an earlier one.
func (r *GormAccountRepository) FindLoginCandidates(ctx context.Context, identifier string) ([]*identity.Account, error) {
	if identifier == "" {
		return []*identity.Account{}, nil
	}

	lookups := []func(*gorm.DB) *gorm.DB{
		func(db *gorm.DB) *gorm.DB {
			return db.Where("LOWER(username) = LOWER(?)", identifier)
		},
		func(db *gorm.DB) *gorm.DB {
			return db.Where("email <> '' AND LOWER(email) = LOWER(?)", identifier).Order("created_at")
		},
		func(db *gorm.DB) *gorm.DB {
			return db.Where("profile_phone = ?", identifier).Order("created_at")
		},
	}

	seen := make(map[uuid.UUID]struct{})
	candidates := make([]*identity.Account, 0, len(lookups))

	for _, lookup := range lookups {
		var dto AccountDTO
		err := lookup(r.db.WithContext(ctx).Model(&AccountDTO{})).Take(&dto).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if _, ok := seen[dto.ID]; ok {
			continue
		}
		seen[dto.ID] = struct{}{}

		account, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, account)
	}

	return candidates, nil
}
