package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	resp "kindred/internal/models/response_models"
	"kindred/internal/repositories"
	"kindred/pkg/utils"
)

const moodMixLimit = 8

type DashboardService interface {
	BuildDashboard(ctx context.Context, rng resp.TimeRange, loc *time.Location) (*resp.DashboardReport, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
	log  *zap.Logger
}

func NewDashboardService(repo repositories.DashboardRepository, log *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, log: log}
}

// normalizeRange fills in a 30-day window ending now and orders the bounds.
func normalizeRange(r resp.TimeRange, now time.Time) resp.TimeRange {
	out := r
	if out.End.IsZero() {
		out.End = now.UTC()
	}
	if out.Start.IsZero() {
		out.Start = out.End.AddDate(0, 0, -30)
	}
	if out.Start.After(out.End) {
		out.Start, out.End = out.End, out.Start
	}
	return out
}

func (s *dashboardService) BuildDashboard(ctx context.Context, rng resp.TimeRange, loc *time.Location) (*resp.DashboardReport, error) {
	rng = normalizeRange(rng, time.Now())
	report, err := s.build(ctx, rng, loc)
	if err != nil {
		s.log.Error("dashboard query failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return report, nil
}

func (s *dashboardService) build(ctx context.Context, rng resp.TimeRange, loc *time.Location) (*resp.DashboardReport, error) {
	report := &resp.DashboardReport{
		Range:         rng,
		Accounts:      resp.AccountKPIs{ByStatus: map[string]int64{}},
		OpenFeedback:  map[string]int64{},
		MoodMix:       []resp.MoodShare{},
		CheckInSeries: []resp.DayPoint{},
	}

	statusRows, err := s.repo.CountAccountsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range statusRows {
		report.Accounts.ByStatus[r.Status] = r.Count
		report.Accounts.Total += r.Count
	}

	if report.Accounts.New, err = s.repo.CountNewAccounts(ctx, rng.Start, rng.End); err != nil {
		return nil, err
	}
	if report.Activity.MessagesSent, err = s.repo.CountMessages(ctx, rng.Start, rng.End); err != nil {
		return nil, err
	}
	if report.Activity.AlertsSent, err = s.repo.CountAlerts(ctx, rng.Start, rng.End); err != nil {
		return nil, err
	}
	if report.Activity.FriendshipsFormed, err = s.repo.CountFriendshipsFormed(ctx, rng.Start, rng.End); err != nil {
		return nil, err
	}

	feedbackRows, err := s.repo.CountOpenFeedback(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range feedbackRows {
		report.OpenFeedback[r.Kind] = r.Count
	}

	moodRows, err := s.repo.MoodMix(ctx, rng.Start, rng.End, moodMixLimit)
	if err != nil {
		return nil, err
	}
	var totalMoods int64
	for _, r := range moodRows {
		totalMoods += r.Count
	}
	for _, r := range moodRows {
		report.MoodMix = append(report.MoodMix, resp.MoodShare{
			Mood:    r.Mood,
			Count:   r.Count,
			Percent: float64(r.Count) * 100.0 / float64(totalMoods),
		})
	}

	dayRows, err := s.repo.CheckInSeries(ctx, utils.DayKey(rng.Start, loc), utils.DayKey(rng.End, loc))
	if err != nil {
		return nil, err
	}
	for _, r := range dayRows {
		report.CheckInSeries = append(report.CheckInSeries, resp.DayPoint{Day: r.Day, Value: r.Count})
		report.Activity.MoodCheckIns += r.Count
	}

	return report, nil
}
