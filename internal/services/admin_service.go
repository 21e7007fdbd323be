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

type AdminServiceInterface interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
	ApproveUser(ctx context.Context, callerID uuid.UUID, request request_models.ApproveUserRequest) (*response_models.AccountResponse, error)
	ListWaitlist(ctx context.Context, callerID uuid.UUID) ([]response_models.AccountResponse, error)
	ListUsers(ctx context.Context, callerID uuid.UUID, status string) ([]response_models.AccountResponse, error)
	BootstrapAdmin(ctx context.Context, email string) error
}

type AdminService struct {
	accountRepo repositories.AccountRepository
	mailService IMailService
	log         *zap.Logger
	now         func() time.Time
}

func NewAdminService(accountRepo repositories.AccountRepository, mailService IMailService, log *zap.Logger) *AdminService {
	return &AdminService{
		accountRepo: accountRepo,
		mailService: mailService,
		log:         log,
		now:         time.Now,
	}
}

// IsAdmin requires both the admin role and an approved account.
func (s *AdminService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	account, err := s.accountRepo.FindById(ctx, userID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return account != nil && account.IsAdmin(), nil
}

func (s *AdminService) requireAdmin(ctx context.Context, callerID uuid.UUID) error {
	ok, err := s.IsAdmin(ctx, callerID)
	if err != nil {
		return err
	}
	if !ok {
		return utils.ErrAdminOnly
	}
	return nil
}

func (s *AdminService) ApproveUser(ctx context.Context, callerID uuid.UUID, request request_models.ApproveUserRequest) (*response_models.AccountResponse, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	status := db_models.AccountStatus(request.Action)
	if status != db_models.AccountStatusApproved && status != db_models.AccountStatusRejected {
		return nil, utils.ErrInvalidAction
	}
	targetID, err := uuid.Parse(strings.TrimSpace(request.UserID))
	if err != nil {
		return nil, utils.NewValidationError("userId must be a valid id")
	}

	target, err := s.accountRepo.FindById(ctx, targetID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if target == nil {
		return nil, utils.ErrUserNotFound
	}

	var approvedAt *time.Time
	var approvedBy *uuid.UUID
	if status == db_models.AccountStatusApproved {
		now := s.now().UTC()
		approvedAt = &now
		approvedBy = &callerID
	}
	if err := s.accountRepo.UpdateApproval(ctx, targetID, status, approvedAt, approvedBy); err != nil {
		s.log.Error("approval update failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	target.Status = status
	target.ApprovedAt = approvedAt
	target.ApprovedBy = approvedBy

	s.log.Info("account reviewed",
		zap.String("account_id", targetID.String()),
		zap.String("status", string(status)),
		zap.String("admin_id", callerID.String()))

	if err := s.mailService.SendAccountDecision(target.Email, target.Name, status == db_models.AccountStatusApproved); err != nil {
		s.log.Warn("account decision mail failed", zap.String("account_id", targetID.String()), zap.Error(err))
	}

	resp := response_models.NewAccountResponse(target)
	return &resp, nil
}

func (s *AdminService) ListWaitlist(ctx context.Context, callerID uuid.UUID) ([]response_models.AccountResponse, error) {
	return s.ListUsers(ctx, callerID, string(db_models.AccountStatusWaitlist))
}

func (s *AdminService) ListUsers(ctx context.Context, callerID uuid.UUID, status string) ([]response_models.AccountResponse, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	filter := db_models.AccountStatus(strings.ToUpper(strings.TrimSpace(status)))
	switch filter {
	case "", db_models.AccountStatusWaitlist, db_models.AccountStatusApproved, db_models.AccountStatusRejected:
	default:
		return nil, utils.NewValidationError("status must be WAITLIST, APPROVED or REJECTED")
	}

	accounts, err := s.accountRepo.ListByStatus(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return response_models.NewAccountResponses(accounts), nil
}

// BootstrapAdmin promotes an existing account to an approved admin. A missing
// account is not an error; the admin may not have signed up yet.
func (s *AdminService) BootstrapAdmin(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return nil
	}
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if account == nil {
		s.log.Warn("admin account not found, skipping bootstrap", zap.String("email", email))
		return nil
	}
	if account.IsAdmin() {
		return nil
	}
	if err := s.accountRepo.UpdateRole(ctx, account.ID, db_models.RoleAdmin, db_models.AccountStatusApproved); err != nil {
		return err
	}
	s.log.Info("admin bootstrapped", zap.String("account_id", account.ID.String()))
	return nil
}
