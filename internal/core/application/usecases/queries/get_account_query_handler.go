package queries

import (
	"context"
	"database/sql"
	"errors"

	"pharmacygo/internal/core/domain/model/identity"
	"pharmacygo/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetAccountQueryHandler struct {
	db *gorm.DB
}

func NewGetAccountQueryHandler(db *gorm.DB) GetAccountQueryHandler {
	return GetAccountQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound when the account was deleted after
// the session was issued.
func (h GetAccountQueryHandler) Handle(ctx context.Context, query GetAccountQuery) (AccountView, error) {
	if err := query.Validate(); err != nil {
		return AccountView{}, err
	}

	var (
		view     AccountView
		id       uuid.UUID
		fullName string
		role     string
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, username, COALESCE(full_name, ''), COALESCE(email, ''),
			profile_role, COALESCE(profile_organization, '')
		FROM accounts
		WHERE id = ?
	`, query.id.Bytes()).Row().Scan(&id, &view.Username, &fullName, &view.Email, &role, &view.Organization)
	if errors.Is(err, sql.ErrNoRows) {
		return AccountView{}, errs.NewObjectNotFoundError("account", query.id.String())
	}
	if err != nil {
		return AccountView{}, err
	}

	if view.ID, err = toKernelUUID(id); err != nil {
		return AccountView{}, err
	}
	if view.Role, err = identity.ParseRole(role); err != nil {
		return AccountView{}, err
	}
	view.DisplayName = fullName
	if view.DisplayName == "" {
		view.DisplayName = view.Username
	}
	return view, nil
}
