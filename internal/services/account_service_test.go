package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"kindred/internal/models/db_models"
	"kindred/internal/models/request_models"
	"kindred/pkg/utils"
)

func newAccountService(f *fixture) *AccountService {
	return NewAccountService(f.accounts, f.tokens, f.denylist, bcrypt.MinCost, f.log)
}

func TestAccountService_SignupStartsOnWaitlist(t *testing.T) {
	f := newFixture(t)
	svc := newAccountService(f)
	ctx := context.Background()

	created, err := svc.CreateAccount(ctx, request_models.SignUpRequest{
		Name: "Ana", Surname: "Lopez", Email: "  Ana@Example.com ", Password: testPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", created.Email)
	assert.Equal(t, string(db_models.AccountStatusWaitlist), created.Status)
	assert.Equal(t, db_models.RoleUser, created.Role)
	assert.Nil(t, created.ApprovedAt)

	_, err = svc.Login(ctx, request_models.LoginRequest{Email: "ana@example.com", Password: testPassword})
	assert.ErrorIs(t, err, utils.ErrAccountWaitlisted)
	assert.Equal(t, 403, utils.StatusFor(err))

	require.NoError(t, f.accounts.UpdateApproval(ctx, created.ID, db_models.AccountStatusApproved, nil, nil))

	login, err := svc.Login(ctx, request_models.LoginRequest{Email: "ANA@example.com", Password: testPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, created.ID, login.Account.ID)
	assert.NotNil(t, login.Account.LastSeen)

	claims, err := f.tokens.ValidateToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID.String(), claims.UserID)
}

func TestAccountService_DuplicateEmailIgnoresCase(t *testing.T) {
	f := newFixture(t)
	svc := newAccountService(f)
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, request_models.SignUpRequest{Name: "A", Surname: "B", Email: "dup@example.com", Password: testPassword})
	require.NoError(t, err)

	_, err = svc.CreateAccount(ctx, request_models.SignUpRequest{Name: "C", Surname: "D", Email: "DUP@example.com", Password: testPassword})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
	assert.Equal(t, 409, utils.StatusFor(err))
}

func TestAccountService_LoginChecksPasswordBeforeStatus(t *testing.T) {
	f := newFixture(t)
	svc := newAccountService(f)
	ctx := context.Background()

	waiting := f.seedAccount(t, "waiting", db_models.AccountStatusWaitlist)
	rejected := f.seedAccount(t, "rejected", db_models.AccountStatusRejected)

	_, err := svc.Login(ctx, request_models.LoginRequest{Email: waiting.Email, Password: "wrong"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(ctx, request_models.LoginRequest{Email: "nobody@example.com", Password: testPassword})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(ctx, request_models.LoginRequest{Email: rejected.Email, Password: testPassword})
	assert.ErrorIs(t, err, utils.ErrAccountRejected)
}

func TestAccountService_LogoutRevokesToken(t *testing.T) {
	f := newFixture(t)
	svc := newAccountService(f)
	ctx := context.Background()
	user := f.seedAccount(t, "leaver", db_models.AccountStatusApproved)

	login, err := svc.Login(ctx, request_models.LoginRequest{Email: user.Email, Password: testPassword})
	require.NoError(t, err)
	claims, err := f.tokens.ValidateToken(login.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, claims))

	revoked, err := f.denylist.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)

	assert.ErrorIs(t, svc.Logout(ctx, &utils.Claims{}), utils.ErrTokenInvalid)
}

func TestAccountService_UpdatePreferences(t *testing.T) {
	f := newFixture(t)
	svc := newAccountService(f)
	ctx := context.Background()
	user := f.seedAccount(t, "prefs", db_models.AccountStatusApproved)

	_, err := svc.UpdatePreferences(ctx, user.ID, request_models.UpdatePreferencesRequest{SelectedAvatar: "fox"})
	assert.ErrorIs(t, err, utils.ErrValidation)

	updated, err := svc.UpdatePreferences(ctx, user.ID, request_models.UpdatePreferencesRequest{
		SelectedAvatar: "fox",
		SelectedVoice:  "nova",
		VoiceSettings:  map[string]interface{}{"speed": 1.25},
	})
	require.NoError(t, err)
	assert.Equal(t, "fox", updated.SelectedAvatar)
	assert.Equal(t, "nova", updated.SelectedVoice)
	assert.JSONEq(t, `{"speed":1.25}`, string(updated.VoiceSettings))
}

func TestAccountService_VerifyMissingAccount(t *testing.T) {
	f := newFixture(t)
	svc := newAccountService(f)

	_, err := svc.Verify(context.Background(), f.seedAccount(t, "x", db_models.AccountStatusApproved).ID)
	require.NoError(t, err)

	_, err = svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}
