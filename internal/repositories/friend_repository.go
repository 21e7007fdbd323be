package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kindred/internal/models/db_models"
	"kindred/pkg/utils"
)

type FriendRepositoryInterface interface {
	CreateRequest(ctx context.Context, request *db_models.FriendRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.FriendRequest, error)
	UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status db_models.FriendRequestStatus) (bool, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.FriendRequest, error)
	ListAccepted(ctx context.Context, userID uuid.UUID) ([]db_models.FriendRequest, error)
	AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error)
}

type FriendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) *FriendRepository {
	return &FriendRepository{db: db}
}

// CreateRequest inserts a PENDING row unless any row already exists for the unordered pair.
// The pair_key unique index covers the window between the check and the insert.
func (r *FriendRepository) CreateRequest(ctx context.Context, request *db_models.FriendRequest) error {
	request.PairKey = db_models.PairKeyOf(request.FromUserID, request.ToUserID)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&db_models.FriendRequest{}).
			Where("pair_key = ?", request.PairKey).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return utils.ErrRequestExists
		}
		return tx.Omit(clause.Associations).Create(request).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrRequestExists
	}
	return err
}

func (r *FriendRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.FriendRequest, error) {
	var request db_models.FriendRequest
	err := r.db.WithContext(ctx).
		Preload("FromUser").
		Preload("ToUser").
		First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

// UpdateStatusIfPending reports false when the row was already answered.
func (r *FriendRepository) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status db_models.FriendRequestStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.FriendRequest{}).
		Where("id = ? AND status = ?", id, db_models.FriendRequestPending).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *FriendRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]db_models.FriendRequest, error) {
	var requests []db_models.FriendRequest
	err := r.db.WithContext(ctx).
		Preload("FromUser").
		Preload("ToUser").
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("created_at ASC").
		Find(&requests).Error
	return requests, err
}

func (r *FriendRepository) ListAccepted(ctx context.Context, userID uuid.UUID) ([]db_models.FriendRequest, error) {
	var requests []db_models.FriendRequest
	err := r.db.WithContext(ctx).
		Preload("FromUser").
		Preload("ToUser").
		Where("(from_user_id = ? OR to_user_id = ?) AND status = ?", userID, userID, db_models.FriendRequestAccepted).
		Find(&requests).Error
	return requests, err
}

func (r *FriendRepository) AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.FriendRequest{}).
		Where("pair_key = ? AND status = ?", db_models.PairKeyOf(a, b), db_models.FriendRequestAccepted).
		Count(&count).Error
	return count > 0, err
}
