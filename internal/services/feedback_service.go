package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kindred/internal/models/db_models"
	"kindred/internal/models/request_models"
	"kindred/internal/models/response_models"
	"kindred/internal/repositories"
	"kindred/pkg/utils"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

var feedbackPriorities = map[string]bool{"low": true, "medium": true, "high": true}

var feedbackStatuses = map[string]bool{
	db_models.FeedbackStatusPending:    true,
	db_models.FeedbackStatusInProgress: true,
	db_models.FeedbackStatusResolved:   true,
}

type FeedbackServiceInterface interface {
	AddFeedback(ctx context.Context, userID uuid.UUID, kind db_models.FeedbackKind, request request_models.AddFeedbackRequest) (*response_models.FeedbackResponse, error)
	GetOwnFeedback(ctx context.Context, userID uuid.UUID, kind db_models.FeedbackKind, page, pageSize int) ([]response_models.FeedbackResponse, error)
	GetFeedback(ctx context.Context, kind, status string, page, pageSize int) ([]response_models.FeedbackResponse, error)
	UpdateFeedback(ctx context.Context, feedbackID string, request request_models.UpdateFeedbackRequest) (*response_models.FeedbackResponse, error)
	SubmitContact(ctx context.Context, request request_models.ContactRequest) (*response_models.ContactResponse, error)
	SearchFAQ(query string) []response_models.FAQEntry
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepositoryInterface
	log          *zap.Logger
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepositoryInterface, log *zap.Logger) *FeedbackService {
	return &FeedbackService{feedbackRepo: feedbackRepo, log: log}
}

func (s *FeedbackService) AddFeedback(ctx context.Context, userID uuid.UUID, kind db_models.FeedbackKind, request request_models.AddFeedbackRequest) (*response_models.FeedbackResponse, error) {
	title := strings.TrimSpace(request.Title)
	description := strings.TrimSpace(request.Description)
	if title == "" || description == "" {
		return nil, utils.NewValidationError("title and description are required")
	}

	category := strings.ToLower(strings.TrimSpace(request.Category))
	if category == "" {
		category = "general"
	}
	priority := strings.ToLower(strings.TrimSpace(request.Priority))
	if priority == "" {
		priority = "medium"
	}
	if !feedbackPriorities[priority] {
		return nil, utils.NewValidationError("priority must be low, medium or high")
	}

	feedback := &db_models.Feedback{
		UserID:      userID,
		Kind:        kind,
		Title:       title,
		Description: description,
		Category:    category,
		Priority:    priority,
		Status:      db_models.FeedbackStatusPending,
	}
	if err := s.feedbackRepo.CreateFeedback(ctx, feedback); err != nil {
		s.log.Error("feedback insert failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	resp := newFeedbackResponse(feedback)
	return &resp, nil
}

func (s *FeedbackService) GetOwnFeedback(ctx context.Context, userID uuid.UUID, kind db_models.FeedbackKind, page, pageSize int) ([]response_models.FeedbackResponse, error) {
	page, pageSize = normalizePage(page, pageSize)
	items, err := s.feedbackRepo.ListFeedback(ctx, repositories.FeedbackFilter{UserID: &userID, Kind: kind}, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return newFeedbackResponses(items), nil
}

// GetFeedback is the admin listing across all users.
func (s *FeedbackService) GetFeedback(ctx context.Context, kind, status string, page, pageSize int) ([]response_models.FeedbackResponse, error) {
	filter := repositories.FeedbackFilter{
		Kind:   db_models.FeedbackKind(strings.ToLower(strings.TrimSpace(kind))),
		Status: strings.ToLower(strings.TrimSpace(status)),
	}
	switch filter.Kind {
	case "", db_models.FeedbackKindFeedback, db_models.FeedbackKindComplaint:
	default:
		return nil, utils.NewValidationError("kind must be feedback or complaint")
	}
	if filter.Status != "" && !feedbackStatuses[filter.Status] {
		return nil, utils.NewValidationError("status must be pending, in_progress or resolved")
	}

	page, pageSize = normalizePage(page, pageSize)
	items, err := s.feedbackRepo.ListFeedback(ctx, filter, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return newFeedbackResponses(items), nil
}

// UpdateFeedback sets any status; there is no transition order.
func (s *FeedbackService) UpdateFeedback(ctx context.Context, feedbackID string, request request_models.UpdateFeedbackRequest) (*response_models.FeedbackResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(feedbackID))
	if err != nil {
		return nil, utils.NewValidationError("feedback id must be a valid id")
	}
	status := strings.ToLower(strings.TrimSpace(request.Status))
	if !feedbackStatuses[status] {
		return nil, utils.NewValidationError("status must be pending, in_progress or resolved")
	}

	existing, err := s.feedbackRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrFeedbackNotFound
	}

	if err := s.feedbackRepo.UpdateStatus(ctx, id, status, request.AdminResponse); err != nil {
		return nil, utils.ErrDatabaseError
	}
	updated, err := s.feedbackRepo.FindByID(ctx, id)
	if err != nil || updated == nil {
		return nil, utils.ErrDatabaseError
	}
	resp := newFeedbackResponse(updated)
	return &resp, nil
}

func (s *FeedbackService) SubmitContact(ctx context.Context, request request_models.ContactRequest) (*response_models.ContactResponse, error) {
	name := strings.TrimSpace(request.Name)
	email := normalizeEmail(request.Email)
	message := strings.TrimSpace(request.Message)
	if name == "" || email == "" || message == "" {
		return nil, utils.NewValidationError("name, email and message are required")
	}

	contact := &db_models.ContactMessage{
		Name:    name,
		Email:   email,
		Subject: strings.TrimSpace(request.Subject),
		Message: message,
	}
	if err := s.feedbackRepo.CreateContact(ctx, contact); err != nil {
		s.log.Error("contact insert failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return &response_models.ContactResponse{ID: contact.ID, CreatedAt: contact.CreatedAt}, nil
}

// SearchFAQ does a case-insensitive substring match on question and answer.
func (s *FeedbackService) SearchFAQ(query string) []response_models.FAQEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]response_models.FAQEntry, 0, len(faqEntries))
	for _, e := range faqEntries {
		if q == "" ||
			strings.Contains(strings.ToLower(e.Question), q) ||
			strings.Contains(strings.ToLower(e.Answer), q) {
			out = append(out, e)
		}
	}
	return out
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func newFeedbackResponse(f *db_models.Feedback) response_models.FeedbackResponse {
	return response_models.FeedbackResponse{
		ID:            f.ID,
		UserID:        f.UserID,
		Kind:          string(f.Kind),
		Title:         f.Title,
		Description:   f.Description,
		Category:      f.Category,
		Priority:      f.Priority,
		Status:        f.Status,
		AdminResponse: f.AdminResponse,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

func newFeedbackResponses(items []db_models.Feedback) []response_models.FeedbackResponse {
	out := make([]response_models.FeedbackResponse, 0, len(items))
	for i := range items {
		out = append(out, newFeedbackResponse(&items[i]))
	}
	return out
}
