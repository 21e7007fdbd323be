package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kindred/internal/models/db_models"
	"kindred/internal/models/request_models"
	"kindred/internal/models/response_models"
	"kindred/internal/repositories"
	"kindred/pkg/utils"
)

var historyRanges = map[string]time.Duration{
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
}

const defaultHistoryRange = "7d"

type MoodServiceInterface interface {
	CheckIn(ctx context.Context, callerID uuid.UUID, request request_models.CheckInRequest, loc *time.Location) (*response_models.MoodEntryResponse, error)
	GetTodayMood(ctx context.Context, callerID uuid.UUID, loc *time.Location) (*response_models.TodayMoodResponse, error)
	GetHistory(ctx context.Context, callerID uuid.UUID, rangeKey string) (*response_models.MoodHistoryResponse, error)
	ListEntries(ctx context.Context, callerID uuid.UUID) ([]response_models.MoodEntryResponse, error)
}

type MoodService struct {
	moodRepo repositories.MoodRepositoryInterface
	log      *zap.Logger
	now      func() time.Time
}

func NewMoodService(moodRepo repositories.MoodRepositoryInterface, log *zap.Logger) *MoodService {
	return &MoodService{moodRepo: moodRepo, log: log, now: time.Now}
}

// CheckIn records the caller's mood for the local day in loc. A second check-in
// the same day replaces the first.
func (s *MoodService) CheckIn(ctx context.Context, callerID uuid.UUID, request request_models.CheckInRequest, loc *time.Location) (*response_models.MoodEntryResponse, error) {
	mood := strings.TrimSpace(request.Mood)
	if mood == "" {
		return nil, utils.NewValidationError("mood is required")
	}

	now := s.now()
	entry := &db_models.MoodEntry{
		UserID:    callerID,
		Day:       utils.DayKey(now, loc),
		Mood:      mood,
		Notes:     strings.TrimSpace(request.Notes),
		Timestamp: now.UTC(),
	}

	stored, err := s.moodRepo.Upsert(ctx, entry)
	if err != nil {
		s.log.Error("mood upsert failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if stored == nil {
		return nil, utils.ErrDatabaseError
	}
	resp := newMoodEntryResponse(stored)
	return &resp, nil
}

func (s *MoodService) GetTodayMood(ctx context.Context, callerID uuid.UUID, loc *time.Location) (*response_models.TodayMoodResponse, error) {
	entry, err := s.moodRepo.FindByDay(ctx, callerID, utils.DayKey(s.now(), loc))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if entry == nil {
		return &response_models.TodayMoodResponse{HasCheckedIn: false}, nil
	}
	resp := newMoodEntryResponse(entry)
	return &response_models.TodayMoodResponse{HasCheckedIn: true, Entry: &resp}, nil
}

// GetHistory accepts 7d or 30d; anything else is treated as 7d.
func (s *MoodService) GetHistory(ctx context.Context, callerID uuid.UUID, rangeKey string) (*response_models.MoodHistoryResponse, error) {
	window, ok := historyRanges[rangeKey]
	if !ok {
		rangeKey = defaultHistoryRange
		window = historyRanges[rangeKey]
	}

	to := s.now().UTC()
	from := to.Add(-window)
	entries, err := s.moodRepo.ListBetween(ctx, callerID, from, to)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.MoodHistoryResponse{
		Range:   rangeKey,
		From:    from,
		To:      to,
		Entries: newMoodEntryResponses(entries),
	}, nil
}

func (s *MoodService) ListEntries(ctx context.Context, callerID uuid.UUID) ([]response_models.MoodEntryResponse, error) {
	entries, err := s.moodRepo.ListAll(ctx, callerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return newMoodEntryResponses(entries), nil
}

func newMoodEntryResponse(e *db_models.MoodEntry) response_models.MoodEntryResponse {
	return response_models.MoodEntryResponse{
		ID:        e.ID,
		Mood:      e.Mood,
		Notes:     e.Notes,
		Day:       e.Day,
		Timestamp: e.Timestamp,
	}
}

func newMoodEntryResponses(entries []db_models.MoodEntry) []response_models.MoodEntryResponse {
	out := make([]response_models.MoodEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, newMoodEntryResponse(&entries[i]))
	}
	return out
}
