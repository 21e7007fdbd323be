package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kindred/internal/models/db_models"
	"kindred/pkg/utils"
)

type AccountRepository interface {
	InsertTx(account *db_models.Account, ctx context.Context) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	ListByStatus(ctx context.Context, status db_models.AccountStatus) ([]db_models.Account, error)
	UpdateApproval(ctx context.Context, id uuid.UUID, status db_models.AccountStatus, approvedAt *time.Time, approvedBy *uuid.UUID) error
	UpdatePreferences(ctx context.Context, id uuid.UUID, avatar, voice string, settings datatypes.JSON) error
	UpdateRole(ctx context.Context, id uuid.UUID, role string, status db_models.AccountStatus) error
	TouchLastSeen(ctx context.Context, id uuid.UUID, at time.Time) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// InsertTx creates the account. A unique violation on email comes back as ErrEmailAlreadyExists.
func (a *accountRepository) InsertTx(account *db_models.Account, ctx context.Context) error {
	err := a.db.WithContext(ctx).Create(account).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrEmailAlreadyExists
	}
	return err
}

func (a *accountRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {

	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

// ListByStatus returns accounts oldest first. An empty status lists everyone.
func (a *accountRepository) ListByStatus(ctx context.Context, status db_models.AccountStatus) ([]db_models.Account, error) {
	var accounts []db_models.Account
	q := a.db.WithContext(ctx).Order("created_at ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&accounts).Error
	return accounts, err
}

func (a *accountRepository) UpdateApproval(ctx context.Context, id uuid.UUID, status db_models.AccountStatus, approvedAt *time.Time, approvedBy *uuid.UUID) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"approved_at": approvedAt,
			"approved_by": approvedBy,
		}).Error
}

func (a *accountRepository) UpdatePreferences(ctx context.Context, id uuid.UUID, avatar, voice string, settings datatypes.JSON) error {
	updates := map[string]interface{}{
		"selected_avatar": avatar,
		"selected_voice":  voice,
	}
	if settings != nil {
		updates["voice_settings"] = settings
	}
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (a *accountRepository) UpdateRole(ctx context.Context, id uuid.UUID, role string, status db_models.AccountStatus) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"role": role, "status": status}).Error
}

// TouchLastSeen skips hooks so updated_at keeps tracking profile changes only.
func (a *accountRepository) TouchLastSeen(ctx context.Context, id uuid.UUID, at time.Time) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		UpdateColumn("last_seen", at).Error
}
