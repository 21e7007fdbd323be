package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	dbm "kindred/internal/models/db_models"
)

type DashboardRepository interface {
	CountAccountsByStatus(ctx context.Context) ([]StatusCount, error)
	CountNewAccounts(ctx context.Context, start, end time.Time) (int64, error)
	CountMessages(ctx context.Context, start, end time.Time) (int64, error)
	CountAlerts(ctx context.Context, start, end time.Time) (int64, error)
	CountFriendshipsFormed(ctx context.Context, start, end time.Time) (int64, error)
	CountOpenFeedback(ctx context.Context) ([]KindCount, error)
	MoodMix(ctx context.Context, start, end time.Time, limit int) ([]MoodCount, error)
	CheckInSeries(ctx context.Context, startDay, endDay string) ([]DayCount, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

type StatusCount struct {
	Status string `gorm:"column:status"`
	Count  int64  `gorm:"column:count"`
}

type KindCount struct {
	Kind  string `gorm:"column:kind"`
	Count int64  `gorm:"column:count"`
}

type MoodCount struct {
	Mood  string `gorm:"column:mood"`
	Count int64  `gorm:"column:count"`
}

type DayCount struct {
	Day   string `gorm:"column:day"`
	Count int64  `gorm:"column:count"`
}

func (r *dashboardRepository) CountAccountsByStatus(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.WithContext(ctx).
		Model(&dbm.Account{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) CountNewAccounts(ctx context.Context, start, end time.Time) (int64, error) {
	return r.countBetween(ctx, &dbm.Account{}, "created_at", start, end)
}

func (r *dashboardRepository) CountMessages(ctx context.Context, start, end time.Time) (int64, error) {
	return r.countBetween(ctx, &dbm.Message{}, "created_at", start, end)
}

func (r *dashboardRepository) CountAlerts(ctx context.Context, start, end time.Time) (int64, error) {
	return r.countBetween(ctx, &dbm.EmotionAlert{}, "created_at", start, end)
}

// CountFriendshipsFormed uses updated_at, which is when the request was accepted.
func (r *dashboardRepository) CountFriendshipsFormed(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&dbm.FriendRequest{}).
		Where("status = ?", dbm.FriendRequestAccepted).
		Where("updated_at BETWEEN ? AND ?", start.UTC(), end.UTC()).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepository) CountOpenFeedback(ctx context.Context) ([]KindCount, error) {
	var rows []KindCount
	err := r.db.WithContext(ctx).
		Model(&dbm.Feedback{}).
		Select("kind, COUNT(*) AS count").
		Where("status IN ?", []string{dbm.FeedbackStatusPending, dbm.FeedbackStatusInProgress}).
		Group("kind").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) MoodMix(ctx context.Context, start, end time.Time, limit int) ([]MoodCount, error) {
	var rows []MoodCount
	err := r.db.WithContext(ctx).
		Model(&dbm.MoodEntry{}).
		Select("mood, COUNT(*) AS count").
		Where("timestamp BETWEEN ? AND ?", start.UTC(), end.UTC()).
		Group("mood").
		Order("count DESC, mood ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// CheckInSeries buckets on the stored local day key, so it needs no date functions.
func (r *dashboardRepository) CheckInSeries(ctx context.Context, startDay, endDay string) ([]DayCount, error) {
	var rows []DayCount
	err := r.db.WithContext(ctx).
		Model(&dbm.MoodEntry{}).
		Select("day, COUNT(*) AS count").
		Where("day BETWEEN ? AND ?", startDay, endDay).
		Group("day").
		Order("day ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) countBetween(ctx context.Context, model interface{}, column string, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(model).
		Where(column+" BETWEEN ? AND ?", start.UTC(), end.UTC()).
		Count(&n).Error
	return n, err
}
