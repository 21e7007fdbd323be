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

type MoodRepositoryInterface interface {
	Upsert(ctx context.Context, entry *db_models.MoodEntry) (*db_models.MoodEntry, error)
	FindByDay(ctx context.Context, userID uuid.UUID, day string) (*db_models.MoodEntry, error)
	ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]db_models.MoodEntry, error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]db_models.MoodEntry, error)
}

type MoodRepository struct {
	db *gorm.DB
}

func NewMoodRepository(db *gorm.DB) *MoodRepository {
	return &MoodRepository{db: db}
}

// Upsert writes the entry for (UserID, Day) in one statement; the latest check-in wins.
func (r *MoodRepository) Upsert(ctx context.Context, entry *db_models.MoodEntry) (*db_models.MoodEntry, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"mood", "notes", "timestamp", "updated_at"}),
	}).Create(entry).Error
	if err != nil {
		return nil, err
	}
	// On conflict the generated id in entry is not the stored one.
	return r.FindByDay(ctx, entry.UserID, entry.Day)
}

func (r *MoodRepository) FindByDay(ctx context.Context, userID uuid.UUID, day string) (*db_models.MoodEntry, error) {
	var entry db_models.MoodEntry
	err := r.db.WithContext(ctx).
		First(&entry, "user_id = ? AND day = ?", userID, day).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// ListBetween returns entries with from <= timestamp <= to, newest first.
func (r *MoodRepository) ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]db_models.MoodEntry, error) {
	var entries []db_models.MoodEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND timestamp >= ? AND timestamp <= ?", userID, from.UTC(), to.UTC()).
		Order("timestamp DESC").
		Find(&entries).Error
	return entries, err
}

func (r *MoodRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]db_models.MoodEntry, error) {
	var entries []db_models.MoodEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&entries).Error
	return entries, err
}
