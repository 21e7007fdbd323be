package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"kindred/internal/models/db_models"
	"kindred/internal/models/request_models"
	"kindred/internal/models/response_models"
	"kindred/internal/repositories"
	mem "kindred/pkg/memcache"
	"kindred/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	Verify(ctx context.Context, userID uuid.UUID) (*response_models.AccountResponse, error)
	Logout(ctx context.Context, claims *utils.Claims) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.AccountResponse, error)
	UpdatePreferences(ctx context.Context, userID uuid.UUID, request request_models.UpdatePreferencesRequest) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenIssuer
	denylist    mem.TokenDenylist
	bcryptCost  int
	log         *zap.Logger
	now         func() time.Time
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	tokens *utils.TokenIssuer,
	denylist mem.TokenDenylist,
	bcryptCost int,
	log *zap.Logger,
) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		denylist:    denylist,
		bcryptCost:  bcryptCost,
		log:         log,
		now:         time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateAccount registers a new account on the waitlist.
func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	name := strings.TrimSpace(request.Name)
	surname := strings.TrimSpace(request.Surname)
	email := normalizeEmail(request.Email)
	if name == "" || surname == "" || email == "" || request.Password == "" {
		return nil, utils.NewValidationError("Name, surname, email and password are required")
	}

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password, a.bcryptCost)
	if err != nil {
		a.log.Error("password hashing failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         name,
		Surname:      surname,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleUser,
		Status:       db_models.AccountStatusWaitlist,
	}

	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		if errors.Is(err, utils.ErrEmailAlreadyExists) {
			return nil, utils.ErrEmailAlreadyExists
		}
		a.log.Error("account insert failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	a.log.Info("account created", zap.String("account_id", newAccount.ID.String()))
	resp := response_models.NewAccountResponse(newAccount)
	return &resp, nil
}

// Login checks credentials before status so a waitlisted account with a wrong
// password still gets the generic 401.
func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	switch account.Status {
	case db_models.AccountStatusWaitlist:
		return nil, utils.ErrAccountWaitlisted
	case db_models.AccountStatusRejected:
		return nil, utils.ErrAccountRejected
	}

	token, err := a.tokens.CreateToken(account.ID, account.Email)
	if err != nil {
		a.log.Error("token signing failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	a.touch(ctx, account)

	return &response_models.LoginResponse{
		Token:   token,
		Account: response_models.NewAccountResponse(account),
	}, nil
}

func (a *AccountService) Verify(ctx context.Context, userID uuid.UUID) (*response_models.AccountResponse, error) {
	account, err := a.findAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	a.touch(ctx, account)
	resp := response_models.NewAccountResponse(account)
	return &resp, nil
}

// Logout revokes the presented token until it would have expired.
func (a *AccountService) Logout(ctx context.Context, claims *utils.Claims) error {
	if claims == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return utils.ErrTokenInvalid
	}
	if err := a.denylist.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		a.log.Error("token revoke failed", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.AccountResponse, error) {
	account, err := a.findAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := response_models.NewAccountResponse(account)
	return &resp, nil
}

func (a *AccountService) UpdatePreferences(ctx context.Context, userID uuid.UUID, request request_models.UpdatePreferencesRequest) (*response_models.AccountResponse, error) {
	avatar := strings.TrimSpace(request.SelectedAvatar)
	voice := strings.TrimSpace(request.SelectedVoice)
	if avatar == "" || voice == "" {
		return nil, utils.NewValidationError("selectedAvatar and selectedVoice are required")
	}

	var settings datatypes.JSON
	if request.VoiceSettings != nil {
		raw, err := json.Marshal(request.VoiceSettings)
		if err != nil {
			return nil, utils.NewValidationError("voiceSettings must be a JSON object")
		}
		settings = datatypes.JSON(raw)
	}

	if _, err := a.findAccount(ctx, userID); err != nil {
		return nil, err
	}
	if err := a.accountRepo.UpdatePreferences(ctx, userID, avatar, voice, settings); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return a.GetProfile(ctx, userID)
}

func (a *AccountService) findAccount(ctx context.Context, userID uuid.UUID) (*db_models.Account, error) {
	account, err := a.accountRepo.FindById(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}

// touch records presence. A failed write is logged, never surfaced.
func (a *AccountService) touch(ctx context.Context, account *db_models.Account) {
	now := a.now().UTC()
	if err := a.accountRepo.TouchLastSeen(ctx, account.ID, now); err != nil {
		a.log.Warn("lastSeen update failed", zap.String("account_id", account.ID.String()), zap.Error(err))
		return
	}
	account.LastSeen = &now
}
