package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"kindred/internal/infra/queue"
	"kindred/internal/models/db_models"
	"kindred/internal/models/request_models"
	"kindred/internal/models/response_models"
	"kindred/internal/realtime"
	"kindred/internal/repositories"
	"kindred/pkg/utils"
)

const (
	minIntensity     = 1
	maxIntensity     = 10
	alertFanOutLimit = 8
	alertListLimit   = 100
)

type EmotionServiceInterface interface {
	SendAlert(ctx context.Context, callerID uuid.UUID, request request_models.SendAlertRequest) (*response_models.SendAlertResponse, error)
	ListAlerts(ctx context.Context, callerID uuid.UUID) ([]response_models.AlertResponse, error)
	MarkAlertRead(ctx context.Context, callerID uuid.UUID, alertID string) error
}

type EmotionService struct {
	accountRepo repositories.AccountRepository
	friendRepo  repositories.FriendRepositoryInterface
	emotionRepo repositories.EmotionRepositoryInterface
	events      EventPublisher
	producer    queue.ProducerHandler
	log         *zap.Logger
}

func NewEmotionService(
	accountRepo repositories.AccountRepository,
	friendRepo repositories.FriendRepositoryInterface,
	emotionRepo repositories.EmotionRepositoryInterface,
	events EventPublisher,
	producer queue.ProducerHandler,
	log *zap.Logger,
) *EmotionService {
	return &EmotionService{
		accountRepo: accountRepo,
		friendRepo:  friendRepo,
		emotionRepo: emotionRepo,
		events:      publisherOrNop(events),
		producer:    producer,
		log:         log,
	}
}

// AlertMessage is the text friends see for an emotion alert.
func AlertMessage(fullName, emotion string, intensity int) string {
	return fmt.Sprintf("%s is feeling %s (intensity %d/10) and could use some support.", fullName, emotion, intensity)
}

// SendAlert writes one alert per accepted friend. A failed write is counted and
// logged but does not stop the others.
func (s *EmotionService) SendAlert(ctx context.Context, callerID uuid.UUID, request request_models.SendAlertRequest) (*response_models.SendAlertResponse, error) {
	emotion := strings.TrimSpace(request.Emotion)
	if emotion == "" {
		return nil, utils.NewValidationError("emotion is required")
	}
	if request.Intensity < minIntensity || request.Intensity > maxIntensity {
		return nil, utils.NewValidationError("intensity must be between 1 and 10")
	}

	sender, err := s.accountRepo.FindById(ctx, callerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sender == nil {
		return nil, utils.ErrAccountNotFound
	}

	edges, err := s.friendRepo.ListAccepted(ctx, callerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	text := AlertMessage(sender.FullName(), emotion, request.Intensity)
	created := make([]*db_models.EmotionAlert, len(edges))

	var g errgroup.Group
	g.SetLimit(alertFanOutLimit)
	for i := range edges {
		i := i
		friendID := edges[i].Other(callerID).ID
		g.Go(func() error {
			alert := &db_models.EmotionAlert{
				FromUserID: callerID,
				ToUserID:   friendID,
				Emotion:    emotion,
				Intensity:  request.Intensity,
				Message:    text,
			}
			if err := s.emotionRepo.Create(ctx, alert); err != nil {
				s.log.Warn("emotion alert write failed", zap.String("to_user_id", friendID.String()), zap.Error(err))
				return nil
			}
			created[i] = alert
			return nil
		})
	}
	_ = g.Wait()

	resp := &response_models.SendAlertResponse{Alerts: []response_models.AlertResponse{}}
	for _, alert := range created {
		if alert == nil {
			resp.Failed++
			continue
		}
		out := newAlertResponse(alert)
		resp.Alerts = append(resp.Alerts, out)
		s.events.Publish(out.ToUserID, realtime.Event{Type: realtime.EventEmotionAlert, Payload: out})
	}
	resp.AlertsSent = len(resp.Alerts)
	s.publishEvents(ctx, resp.Alerts)

	s.log.Info("emotion alert sent",
		zap.String("from_user_id", callerID.String()),
		zap.Int("sent", resp.AlertsSent),
		zap.Int("failed", resp.Failed))
	return resp, nil
}

// publishEvents sends every created alert to the event topic in one batch. Best effort.
func (s *EmotionService) publishEvents(ctx context.Context, alerts []response_models.AlertResponse) {
	if s.producer == nil || len(alerts) == 0 {
		return
	}
	msgs := make([]queue.Message, 0, len(alerts))
	for _, alert := range alerts {
		value, err := json.Marshal(alert)
		if err != nil {
			continue
		}
		msgs = append(msgs, queue.Message{Key: []byte(alert.ToUserID.String()), Value: value})
	}
	if err := s.producer.PublishMessages(ctx, msgs...); err != nil {
		s.log.Warn("emotion alert publish failed", zap.Int("alerts", len(msgs)), zap.Error(err))
	}
}

func (s *EmotionService) ListAlerts(ctx context.Context, callerID uuid.UUID) ([]response_models.AlertResponse, error) {
	alerts, err := s.emotionRepo.ListForRecipient(ctx, callerID, alertListLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.AlertResponse, 0, len(alerts))
	for i := range alerts {
		out = append(out, newAlertResponse(&alerts[i]))
	}
	return out, nil
}

func (s *EmotionService) MarkAlertRead(ctx context.Context, callerID uuid.UUID, alertID string) error {
	id, err := uuid.Parse(strings.TrimSpace(alertID))
	if err != nil {
		return utils.NewValidationError("alert id must be a valid id")
	}
	ok, err := s.emotionRepo.MarkRead(ctx, id, callerID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !ok {
		return utils.ErrAlertNotFound
	}
	return nil
}

func newAlertResponse(a *db_models.EmotionAlert) response_models.AlertResponse {
	return response_models.AlertResponse{
		ID:         a.ID,
		FromUserID: a.FromUserID,
		ToUserID:   a.ToUserID,
		Emotion:    a.Emotion,
		Intensity:  a.Intensity,
		Message:    a.Message,
		IsRead:     a.IsRead,
		CreatedAt:  a.CreatedAt,
	}
}
