package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kindred/internal/models/db_models"
)

type FeedbackFilter struct {
	UserID *uuid.UUID
	Kind   db_models.FeedbackKind
	Status string
}

type FeedbackRepositoryInterface interface {
	CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error
	ListFeedback(ctx context.Context, filter FeedbackFilter, page, pageSize int) ([]db_models.Feedback, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Feedback, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, adminResponse *string) error
	CreateContact(ctx context.Context, contact *db_models.ContactMessage) error
}

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *FeedbackRepository) ListFeedback(ctx context.Context, filter FeedbackFilter, page, pageSize int) ([]db_models.Feedback, error) {
	var feedbacks []db_models.Feedback
	q := r.db.WithContext(ctx)
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.Kind != "" {
		q = q.Where("kind = ?", filter.Kind)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	err := q.
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&feedbacks).Error
	return feedbacks, err
}

func (r *FeedbackRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Feedback, error) {
	var feedback db_models.Feedback
	err := r.db.WithContext(ctx).First(&feedback, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &feedback, nil
}

// UpdateStatus leaves admin_response untouched when adminResponse is nil.
func (r *FeedbackRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, adminResponse *string) error {
	updates := map[string]interface{}{"status": status}
	if adminResponse != nil {
		updates["admin_response"] = *adminResponse
	}
	return r.db.WithContext(ctx).
		Model(&db_models.Feedback{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *FeedbackRepository) CreateContact(ctx context.Context, contact *db_models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(contact).Error
}
