package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kindred/internal/models/db_models"
)

type UnreadRow struct {
	FromUserID uuid.UUID
	Count      int64
}

type MessageRepositoryInterface interface {
	Create(ctx context.Context, message *db_models.Message) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Message, error)
	ListThread(ctx context.Context, a, b uuid.UUID) ([]db_models.Message, error)
	MarkThreadRead(ctx context.Context, reader, sender uuid.UUID, at time.Time) (int64, error)
	CountUnread(ctx context.Context, reader uuid.UUID) ([]UnreadRow, error)
}

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, message *db_models.Message) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(message).Error
}

func (r *MessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Message, error) {
	var message db_models.Message
	err := r.db.WithContext(ctx).
		Preload("FromUser").
		Preload("ToUser").
		First(&message, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

// ListThread returns both directions, oldest first.
func (r *MessageRepository) ListThread(ctx context.Context, a, b uuid.UUID) ([]db_models.Message, error) {
	var messages []db_models.Message
	err := r.db.WithContext(ctx).
		Preload("FromUser").
		Preload("ToUser").
		Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)", a, b, b, a).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepository) MarkThreadRead(ctx context.Context, reader, sender uuid.UUID, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Message{}).
		Where("from_user_id = ? AND to_user_id = ? AND is_read = ?", sender, reader, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": at})
	return res.RowsAffected, res.Error
}

func (r *MessageRepository) CountUnread(ctx context.Context, reader uuid.UUID) ([]UnreadRow, error) {
	var rows []UnreadRow
	err := r.db.WithContext(ctx).
		Model(&db_models.Message{}).
		Select("from_user_id, COUNT(*) AS count").
		Where("to_user_id = ? AND is_read = ?", reader, false).
		Group("from_user_id").
		Scan(&rows).Error
	return rows, err
}
