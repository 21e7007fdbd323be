package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kindred/internal/models/db_models"
	"kindred/internal/models/request_models"
	"kindred/internal/models/response_models"
	"kindred/internal/realtime"
	"kindred/internal/repositories"
	"kindred/pkg/utils"
)

type FriendServiceInterface interface {
	SendRequest(ctx context.Context, callerID uuid.UUID, request request_models.SendFriendRequest) (*response_models.FriendRequestResponse, error)
	RespondToRequest(ctx context.Context, callerID uuid.UUID, request request_models.RespondFriendRequest) (*response_models.FriendRequestResponse, error)
	ListFriends(ctx context.Context, callerID uuid.UUID) (*response_models.FriendListResponse, error)
}

type FriendService struct {
	accountRepo    repositories.AccountRepository
	friendRepo     repositories.FriendRepositoryInterface
	events         EventPublisher
	presenceWindow time.Duration
	log            *zap.Logger
	now            func() time.Time
}

func NewFriendService(
	accountRepo repositories.AccountRepository,
	friendRepo repositories.FriendRepositoryInterface,
	events EventPublisher,
	presenceWindow time.Duration,
	log *zap.Logger,
) *FriendService {
	return &FriendService{
		accountRepo:    accountRepo,
		friendRepo:     friendRepo,
		events:         publisherOrNop(events),
		presenceWindow: presenceWindow,
		log:            log,
		now:            time.Now,
	}
}

func (s *FriendService) SendRequest(ctx context.Context, callerID uuid.UUID, request request_models.SendFriendRequest) (*response_models.FriendRequestResponse, error) {
	raw := strings.TrimSpace(request.ToUserID)
	if raw == "" {
		return nil, utils.NewValidationError("toUserId is required")
	}
	toUserID, err := uuid.Parse(raw)
	if err != nil {
		return nil, utils.NewValidationError("toUserId must be a valid id")
	}
	if toUserID == callerID {
		return nil, utils.ErrSelfRequest
	}

	target, err := s.accountRepo.FindById(ctx, toUserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if target == nil {
		return nil, utils.ErrUserNotFound
	}
	if target.Status != db_models.AccountStatusApproved {
		return nil, utils.ErrTargetNotApproved
	}

	friendRequest := &db_models.FriendRequest{
		FromUserID: callerID,
		ToUserID:   toUserID,
		Status:     db_models.FriendRequestPending,
	}
	if err := s.friendRepo.CreateRequest(ctx, friendRequest); err != nil {
		if errors.Is(err, utils.ErrRequestExists) {
			return nil, utils.ErrRequestExists
		}
		s.log.Error("friend request insert failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	resp := newFriendRequestResponse(friendRequest)
	s.events.Publish(toUserID, realtime.Event{Type: realtime.EventFriendRequest, Payload: resp})
	return &resp, nil
}

// RespondToRequest lets the recipient accept or reject a PENDING request once.
func (s *FriendService) RespondToRequest(ctx context.Context, callerID uuid.UUID, request request_models.RespondFriendRequest) (*response_models.FriendRequestResponse, error) {
	status := db_models.FriendRequestStatus(strings.TrimSpace(request.Action))
	if status != db_models.FriendRequestAccepted && status != db_models.FriendRequestRejected {
		return nil, utils.NewValidationError("Action must be ACCEPTED or REJECTED")
	}
	requestID, err := uuid.Parse(strings.TrimSpace(request.RequestID))
	if err != nil {
		return nil, utils.NewValidationError("requestId must be a valid id")
	}

	friendRequest, err := s.friendRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if friendRequest == nil {
		return nil, utils.ErrRequestNotFound
	}
	if friendRequest.ToUserID != callerID {
		return nil, utils.ErrNotRecipient
	}

	updated, err := s.friendRepo.UpdateStatusIfPending(ctx, requestID, status)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !updated {
		return nil, utils.ErrRequestNotPending
	}
	friendRequest.Status = status
	friendRequest.UpdatedAt = s.now().UTC()

	resp := newFriendRequestResponse(friendRequest)
	if status == db_models.FriendRequestAccepted {
		s.events.Publish(friendRequest.FromUserID, realtime.Event{Type: realtime.EventFriendAccepted, Payload: resp})
	}
	return &resp, nil
}

func (s *FriendService) ListFriends(ctx context.Context, callerID uuid.UUID) (*response_models.FriendListResponse, error) {
	requests, err := s.friendRepo.ListForUser(ctx, callerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := PartitionRequests(callerID, requests, s.now(), s.presenceWindow)
	return &resp, nil
}

// PartitionRequests splits every request touching callerID into accepted friends,
// pending sent and pending received. REJECTED rows are left out.
func PartitionRequests(callerID uuid.UUID, requests []db_models.FriendRequest, now time.Time, window time.Duration) response_models.FriendListResponse {
	out := response_models.FriendListResponse{
		Friends:          []response_models.FriendEntry{},
		SentRequests:     []response_models.PendingEntry{},
		ReceivedRequests: []response_models.PendingEntry{},
	}

	for i := range requests {
		r := &requests[i]
		other := r.Other(callerID)

		switch r.Status {
		case db_models.FriendRequestAccepted:
			out.Friends = append(out.Friends, response_models.FriendEntry{
				ID:             other.ID,
				RequestID:      r.ID,
				Name:           other.Name,
				Surname:        other.Surname,
				FullName:       other.FullName(),
				SelectedAvatar: other.SelectedAvatar,
				IsOnline:       IsOnline(other.LastSeen, now, window),
				LastSeen:       other.LastSeen,
				FriendsSince:   r.UpdatedAt,
			})
		case db_models.FriendRequestPending:
			entry := response_models.PendingEntry{
				RequestID: r.ID,
				User:      response_models.NewPublicAccountResponse(&other),
				CreatedAt: r.CreatedAt,
			}
			if r.FromUserID == callerID {
				out.SentRequests = append(out.SentRequests, entry)
			} else {
				out.ReceivedRequests = append(out.ReceivedRequests, entry)
			}
		}
	}
	return out
}

// IsOnline is true when lastSeen falls within window before now.
func IsOnline(lastSeen *time.Time, now time.Time, window time.Duration) bool {
	if lastSeen == nil {
		return false
	}
	return now.Sub(*lastSeen) < window
}

func newFriendRequestResponse(r *db_models.FriendRequest) response_models.FriendRequestResponse {
	return response_models.FriendRequestResponse{
		ID:         r.ID,
		FromUserID: r.FromUserID,
		ToUserID:   r.ToUserID,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
