package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kindred/internal/models/db_models"
	"kindred/internal/models/request_models"
	"kindred/pkg/utils"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestMoodService_SecondCheckInReplacesFirst(t *testing.T) {
	f := newFixture(t)
	svc := NewMoodService(f.moods, f.log)
	ctx := context.Background()
	user := f.seedAccount(t, "moody", db_models.AccountStatusApproved)

	morning := time.Date(2025, 9, 24, 8, 0, 0, 0, time.UTC)
	svc.now = fixedClock(morning)
	first, err := svc.CheckIn(ctx, user.ID, request_models.CheckInRequest{Mood: "tired"}, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "2025-09-24", first.Day)

	svc.now = fixedClock(morning.Add(10 * time.Hour))
	second, err := svc.CheckIn(ctx, user.ID, request_models.CheckInRequest{Mood: "calm", Notes: "walked"}, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "calm", second.Mood)
	assert.Equal(t, "walked", second.Notes)

	entries, err := svc.ListEntries(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "calm", entries[0].Mood)

	today, err := svc.GetTodayMood(ctx, user.ID, time.UTC)
	require.NoError(t, err)
	assert.True(t, today.HasCheckedIn)
	assert.Equal(t, "calm", today.Entry.Mood)
}

func TestMoodService_DayFollowsCallerTimezone(t *testing.T) {
	f := newFixture(t)
	svc := NewMoodService(f.moods, f.log)
	ctx := context.Background()
	user := f.seedAccount(t, "traveler", db_models.AccountStatusApproved)

	tokyo := time.FixedZone("JST", 9*60*60)
	svc.now = fixedClock(time.Date(2025, 9, 24, 20, 0, 0, 0, time.UTC))

	entry, err := svc.CheckIn(ctx, user.ID, request_models.CheckInRequest{Mood: "hopeful"}, tokyo)
	require.NoError(t, err)
	assert.Equal(t, "2025-09-25", entry.Day)

	today, err := svc.GetTodayMood(ctx, user.ID, time.UTC)
	require.NoError(t, err)
	assert.False(t, today.HasCheckedIn)
	assert.Nil(t, today.Entry)
}

func TestMoodService_HistoryWindow(t *testing.T) {
	f := newFixture(t)
	svc := NewMoodService(f.moods, f.log)
	ctx := context.Background()
	user := f.seedAccount(t, "historian", db_models.AccountStatusApproved)

	now := time.Date(2025, 9, 24, 12, 0, 0, 0, time.UTC)
	for _, c := range []struct {
		ago  time.Duration
		mood string
	}{
		{10 * 24 * time.Hour, "old"},
		{2 * 24 * time.Hour, "recent"},
		{0, "today"},
	} {
		svc.now = fixedClock(now.Add(-c.ago))
		_, err := svc.CheckIn(ctx, user.ID, request_models.CheckInRequest{Mood: c.mood}, time.UTC)
		require.NoError(t, err)
	}
	svc.now = fixedClock(now)

	week, err := svc.GetHistory(ctx, user.ID, "7d")
	require.NoError(t, err)
	assert.Equal(t, "7d", week.Range)
	require.Len(t, week.Entries, 2)
	assert.Equal(t, "today", week.Entries[0].Mood)
	assert.Equal(t, "recent", week.Entries[1].Mood)

	month, err := svc.GetHistory(ctx, user.ID, "30d")
	require.NoError(t, err)
	assert.Len(t, month.Entries, 3)

	fallback, err := svc.GetHistory(ctx, user.ID, "1y")
	require.NoError(t, err)
	assert.Equal(t, "7d", fallback.Range)
	assert.Len(t, fallback.Entries, 2)

	_, err = svc.CheckIn(ctx, user.ID, request_models.CheckInRequest{Mood: ""}, time.UTC)
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestMoodService_ConcurrentCheckInsKeepOneRow(t *testing.T) {
	f := newFixture(t)
	svc := NewMoodService(f.moods, f.log)
	svc.now = fixedClock(time.Date(2025, 9, 24, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()
	user := f.seedAccount(t, "busy", db_models.AccountStatusApproved)

	const attempts = 10
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CheckIn(ctx, user.ID, request_models.CheckInRequest{Mood: fmt.Sprintf("mood-%d", i)}, time.UTC)
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		assert.NoError(t, err)
	}

	var rows int64
	require.NoError(t, f.db.Model(&db_models.MoodEntry{}).
		Where("user_id = ? AND day = ?", user.ID, "2025-09-24").
		Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}
