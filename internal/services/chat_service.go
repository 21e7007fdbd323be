package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kindred/internal/models/db_models"
	"kindred/internal/models/request_models"
	"kindred/internal/models/response_models"
	"kindred/internal/realtime"
	"kindred/internal/repositories"
	"kindred/pkg/utils"
)

const maxMessageLength = 4000

type ChatServiceInterface interface {
	SendMessage(ctx context.Context, callerID uuid.UUID, request request_models.SendMessageRequest) (*response_models.MessageResponse, error)
	GetMessages(ctx context.Context, callerID uuid.UUID, friendID string) ([]response_models.MessageResponse, error)
	UnreadCounts(ctx context.Context, callerID uuid.UUID) ([]response_models.UnreadCount, error)
}

type ChatService struct {
	friendRepo  repositories.FriendRepositoryInterface
	messageRepo repositories.MessageRepositoryInterface
	events      EventPublisher
	log         *zap.Logger
	now         func() time.Time
}

func NewChatService(
	friendRepo repositories.FriendRepositoryInterface,
	messageRepo repositories.MessageRepositoryInterface,
	events EventPublisher,
	log *zap.Logger,
) *ChatService {
	return &ChatService{
		friendRepo:  friendRepo,
		messageRepo: messageRepo,
		events:      publisherOrNop(events),
		log:         log,
		now:         time.Now,
	}
}

func (s *ChatService) SendMessage(ctx context.Context, callerID uuid.UUID, request request_models.SendMessageRequest) (*response_models.MessageResponse, error) {
	toUserID, err := parseUserID(request.ToUserID, "toUserId")
	if err != nil {
		return nil, err
	}
	if toUserID == callerID {
		return nil, utils.ErrSelfMessage
	}
	content := strings.TrimSpace(request.Content)
	if content == "" {
		return nil, utils.NewValidationError("Message content is required")
	}
	if utf8.RuneCountInString(content) > maxMessageLength {
		return nil, utils.NewValidationError("Message is too long")
	}

	if err := s.requireFriends(ctx, callerID, toUserID); err != nil {
		return nil, err
	}

	message := &db_models.Message{
		FromUserID: callerID,
		ToUserID:   toUserID,
		Content:    content,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		s.log.Error("message insert failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	stored, err := s.messageRepo.FindByID(ctx, message.ID)
	if err != nil || stored == nil {
		return nil, utils.ErrDatabaseError
	}

	resp := newMessageResponse(stored)
	s.events.Publish(toUserID, realtime.Event{Type: realtime.EventMessage, Payload: resp})
	return &resp, nil
}

// GetMessages returns the thread as it was before this read, then marks the
// caller's incoming messages read.
func (s *ChatService) GetMessages(ctx context.Context, callerID uuid.UUID, friendID string) ([]response_models.MessageResponse, error) {
	friend, err := parseUserID(friendID, "friendId")
	if err != nil {
		return nil, err
	}
	if err := s.requireFriends(ctx, callerID, friend); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.ListThread(ctx, callerID, friend)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if _, err := s.messageRepo.MarkThreadRead(ctx, callerID, friend, s.now().UTC()); err != nil {
		s.log.Error("mark read failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.MessageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, newMessageResponse(&messages[i]))
	}
	return out, nil
}

func (s *ChatService) UnreadCounts(ctx context.Context, callerID uuid.UUID) ([]response_models.UnreadCount, error) {
	rows, err := s.messageRepo.CountUnread(ctx, callerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.UnreadCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, response_models.UnreadCount{FriendID: r.FromUserID, Count: r.Count})
	}
	return out, nil
}

func (s *ChatService) requireFriends(ctx context.Context, a, b uuid.UUID) error {
	ok, err := s.friendRepo.AreFriends(ctx, a, b)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !ok {
		return utils.ErrNotFriends
	}
	return nil
}

func parseUserID(raw, field string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, utils.NewValidationError(field + " is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, utils.NewValidationError(field + " must be a valid id")
	}
	return id, nil
}

func newMessageResponse(m *db_models.Message) response_models.MessageResponse {
	return response_models.MessageResponse{
		ID:         m.ID,
		FromUserID: m.FromUserID,
		ToUserID:   m.ToUserID,
		Content:    m.Content,
		IsRead:     m.IsRead,
		ReadAt:     m.ReadAt,
		CreatedAt:  m.CreatedAt,
		FromUser:   response_models.NewPublicAccountResponse(&m.FromUser),
		ToUser:     response_models.NewPublicAccountResponse(&m.ToUser),
	}
}
