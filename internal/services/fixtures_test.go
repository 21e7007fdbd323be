package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kindred/internal/infra/storetest"
	"kindred/internal/models/db_models"
	"kindred/internal/realtime"
	"kindred/internal/repositories"
	mem "kindred/pkg/memcache"
	"kindred/pkg/utils"
)

const testPassword = "s3cret-pass"

type fixture struct {
	db       *gorm.DB
	accounts repositories.AccountRepository
	friends  *repositories.FriendRepository
	messages *repositories.MessageRepository
	alerts   *repositories.EmotionRepository
	moods    *repositories.MoodRepository
	feedback *repositories.FeedbackRepository
	tokens   *utils.TokenIssuer
	denylist *mem.MemoryDenylist
	events   *recordingPublisher
	log      *zap.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := storetest.NewTestStore(t)
	return &fixture{
		db:       db,
		accounts: repositories.NewAccountRepository(db),
		friends:  repositories.NewFriendRepository(db),
		messages: repositories.NewMessageRepository(db),
		alerts:   repositories.NewEmotionRepository(db),
		moods:    repositories.NewMoodRepository(db),
		feedback: repositories.NewFeedbackRepository(db),
		tokens:   utils.NewTokenIssuer("test-secret", time.Hour),
		denylist: mem.NewMemoryDenylist(),
		events:   &recordingPublisher{},
		log:      zap.NewNop(),
	}
}

// seedAccount stores an account directly, skipping the signup flow.
func (f *fixture) seedAccount(t *testing.T, name string, status db_models.AccountStatus) *db_models.Account {
	t.Helper()
	hash, err := utils.HashPassword(testPassword, bcrypt.MinCost)
	require.NoError(t, err)
	account := &db_models.Account{
		Name:         name,
		Surname:      "Tester",
		Email:        name + "@example.com",
		PasswordHash: hash,
		Role:         db_models.RoleUser,
		Status:       status,
	}
	require.NoError(t, f.accounts.InsertTx(account, context.Background()))
	return account
}

func (f *fixture) seedAdmin(t *testing.T) *db_models.Account {
	t.Helper()
	admin := f.seedAccount(t, "admin", db_models.AccountStatusApproved)
	require.NoError(t, f.accounts.UpdateRole(context.Background(), admin.ID, db_models.RoleAdmin, db_models.AccountStatusApproved))
	admin.Role = db_models.RoleAdmin
	return admin
}

// befriend stores an ACCEPTED request between a and b.
func (f *fixture) befriend(t *testing.T, a, b uuid.UUID) *db_models.FriendRequest {
	t.Helper()
	ctx := context.Background()
	req := &db_models.FriendRequest{FromUserID: a, ToUserID: b, Status: db_models.FriendRequestPending}
	require.NoError(t, f.friends.CreateRequest(ctx, req))
	ok, err := f.friends.UpdateStatusIfPending(ctx, req.ID, db_models.FriendRequestAccepted)
	require.NoError(t, err)
	require.True(t, ok)
	return req
}

type published struct {
	userID uuid.UUID
	event  realtime.Event
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []published
}

func (p *recordingPublisher) Publish(userID uuid.UUID, event realtime.Event) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{userID: userID, event: event})
	return 1
}

func (p *recordingPublisher) ofType(eventType string) []published {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []published
	for _, e := range p.events {
		if e.event.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

type sentMail struct {
	to       string
	approved bool
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *recordingMailer) SendMailToNotifyUser(to, subject, body string) error {
	return m.err
}

func (m *recordingMailer) SendAccountDecision(to, name string, approved bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to: to, approved: approved})
	return m.err
}
