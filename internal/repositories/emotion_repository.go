package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kindred/internal/models/db_models"
)

type EmotionRepositoryInterface interface {
	Create(ctx context.Context, alert *db_models.EmotionAlert) error
	ListForRecipient(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.EmotionAlert, error)
	MarkRead(ctx context.Context, id, recipient uuid.UUID) (bool, error)
}

type EmotionRepository struct {
	db *gorm.DB
}

func NewEmotionRepository(db *gorm.DB) *EmotionRepository {
	return &EmotionRepository{db: db}
}

func (r *EmotionRepository) Create(ctx context.Context, alert *db_models.EmotionAlert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *EmotionRepository) ListForRecipient(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.EmotionAlert, error) {
	var alerts []db_models.EmotionAlert
	q := r.db.WithContext(ctx).
		Where("to_user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&alerts).Error
	return alerts, err
}

// MarkRead reports false when no alert with that id was sent to recipient.
func (r *EmotionRepository) MarkRead(ctx context.Context, id, recipient uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.EmotionAlert{}).
		Where("id = ? AND to_user_id = ?", id, recipient).
		Update("is_read", true)
	return res.RowsAffected == 1, res.Error
}
