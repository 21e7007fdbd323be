package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kindred/internal/models/db_models"
	"kindred/internal/models/request_models"
	resp "kindred/internal/models/response_models"
	"kindred/internal/repositories"
)

func TestNormalizeRange(t *testing.T) {
	now := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	r := normalizeRange(resp.TimeRange{}, now)
	assert.Equal(t, now, r.End)
	assert.Equal(t, now.AddDate(0, 0, -30), r.Start)

	swapped := normalizeRange(resp.TimeRange{Start: now, End: now.AddDate(0, 0, -2)}, now)
	assert.True(t, swapped.Start.Before(swapped.End))
}

func TestDashboardService_BuildDashboard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewDashboardService(repositories.NewDashboardRepository(f.db), f.log)

	alice := f.seedAccount(t, "alice", db_models.AccountStatusApproved)
	bob := f.seedAccount(t, "bob", db_models.AccountStatusApproved)
	f.seedAccount(t, "queued", db_models.AccountStatusWaitlist)
	f.befriend(t, alice.ID, bob.ID)

	chat := NewChatService(f.friends, f.messages, nil, f.log)
	_, err := chat.SendMessage(ctx, alice.ID, request_models.SendMessageRequest{ToUserID: bob.ID.String(), Content: "hi"})
	require.NoError(t, err)

	emotions := NewEmotionService(f.accounts, f.friends, f.alerts, nil, nil, f.log)
	_, err = emotions.SendAlert(ctx, alice.ID, request_models.SendAlertRequest{Emotion: "sad", Intensity: 6})
	require.NoError(t, err)

	moods := NewMoodService(f.moods, f.log)
	_, err = moods.CheckIn(ctx, alice.ID, request_models.CheckInRequest{Mood: "calm"}, time.UTC)
	require.NoError(t, err)
	_, err = moods.CheckIn(ctx, bob.ID, request_models.CheckInRequest{Mood: "calm"}, time.UTC)
	require.NoError(t, err)

	feedback := NewFeedbackService(f.feedback, f.log)
	_, err = feedback.AddFeedback(ctx, bob.ID, db_models.FeedbackKindComplaint, request_models.AddFeedbackRequest{Title: "t", Description: "d"})
	require.NoError(t, err)

	report, err := svc.BuildDashboard(ctx, resp.TimeRange{}, time.UTC)
	require.NoError(t, err)

	assert.EqualValues(t, 3, report.Accounts.Total)
	assert.EqualValues(t, 2, report.Accounts.ByStatus["APPROVED"])
	assert.EqualValues(t, 1, report.Accounts.ByStatus["WAITLIST"])
	assert.EqualValues(t, 3, report.Accounts.New)
	assert.EqualValues(t, 1, report.Activity.MessagesSent)
	assert.EqualValues(t, 1, report.Activity.AlertsSent)
	assert.EqualValues(t, 1, report.Activity.FriendshipsFormed)
	assert.EqualValues(t, 2, report.Activity.MoodCheckIns)
	assert.EqualValues(t, 1, report.OpenFeedback["complaint"])

	require.Len(t, report.MoodMix, 1)
	assert.Equal(t, "calm", report.MoodMix[0].Mood)
	assert.InDelta(t, 100.0, report.MoodMix[0].Percent, 0.001)

	require.Len(t, report.CheckInSeries, 1)
	assert.EqualValues(t, 2, report.CheckInSeries[0].Value)

	old := time.Now().AddDate(-1, 0, 0)
	empty, err := svc.BuildDashboard(ctx, resp.TimeRange{Start: old, End: old.AddDate(0, 0, 7)}, time.UTC)
	require.NoError(t, err)
	assert.EqualValues(t, 0, empty.Accounts.New)
	assert.EqualValues(t, 3, empty.Accounts.Total)
	assert.Empty(t, empty.MoodMix)
}
