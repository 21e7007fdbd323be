package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kindred/internal/models/db_models"
	"kindred/internal/models/request_models"
	"kindred/internal/realtime"
	"kindred/pkg/utils"
)

func newFriendService(f *fixture) *FriendService {
	return NewFriendService(f.accounts, f.friends, f.events, 5*time.Minute, f.log)
}

func TestFriendService_OnePendingRequestPerPair(t *testing.T) {
	f := newFixture(t)
	svc := newFriendService(f)
	ctx := context.Background()

	alice := f.seedAccount(t, "alice", db_models.AccountStatusApproved)
	bob := f.seedAccount(t, "bob", db_models.AccountStatusApproved)

	sent, err := svc.SendRequest(ctx, alice.ID, request_models.SendFriendRequest{ToUserID: bob.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, "PENDING", sent.Status)
	assert.Equal(t, alice.ID, sent.FromUserID)

	_, err = svc.SendRequest(ctx, bob.ID, request_models.SendFriendRequest{ToUserID: alice.ID.String()})
	assert.ErrorIs(t, err, utils.ErrRequestExists)
	assert.Equal(t, 409, utils.StatusFor(err))

	_, err = svc.SendRequest(ctx, alice.ID, request_models.SendFriendRequest{ToUserID: bob.ID.String()})
	assert.ErrorIs(t, err, utils.ErrRequestExists)

	notified := f.events.ofType(realtime.EventFriendRequest)
	require.Len(t, notified, 1)
	assert.Equal(t, bob.ID, notified[0].userID)
}

func TestFriendService_SendRequestValidation(t *testing.T) {
	f := newFixture(t)
	svc := newFriendService(f)
	ctx := context.Background()

	alice := f.seedAccount(t, "alice", db_models.AccountStatusApproved)
	waiting := f.seedAccount(t, "waiting", db_models.AccountStatusWaitlist)

	cases := []struct {
		name string
		to   string
		want error
	}{
		{"missing", "", utils.ErrValidation},
		{"malformed", "not-an-id", utils.ErrValidation},
		{"self", alice.ID.String(), utils.ErrSelfRequest},
		{"unknown", uuid.NewString(), utils.ErrUserNotFound},
		{"not approved", waiting.ID.String(), utils.ErrTargetNotApproved},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SendRequest(ctx, alice.ID, request_models.SendFriendRequest{ToUserID: tc.to})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFriendService_RespondOnlyOnceByRecipient(t *testing.T) {
	f := newFixture(t)
	svc := newFriendService(f)
	ctx := context.Background()

	alice := f.seedAccount(t, "alice", db_models.AccountStatusApproved)
	bob := f.seedAccount(t, "bob", db_models.AccountStatusApproved)

	sent, err := svc.SendRequest(ctx, alice.ID, request_models.SendFriendRequest{ToUserID: bob.ID.String()})
	require.NoError(t, err)

	_, err = svc.RespondToRequest(ctx, alice.ID, request_models.RespondFriendRequest{RequestID: sent.ID.String(), Action: "ACCEPTED"})
	assert.ErrorIs(t, err, utils.ErrNotRecipient)
	assert.Equal(t, 403, utils.StatusFor(err))

	_, err = svc.RespondToRequest(ctx, bob.ID, request_models.RespondFriendRequest{RequestID: sent.ID.String(), Action: "PENDING"})
	assert.ErrorIs(t, err, utils.ErrValidation)

	accepted, err := svc.RespondToRequest(ctx, bob.ID, request_models.RespondFriendRequest{RequestID: sent.ID.String(), Action: "ACCEPTED"})
	require.NoError(t, err)
	assert.Equal(t, "ACCEPTED", accepted.Status)

	_, err = svc.RespondToRequest(ctx, bob.ID, request_models.RespondFriendRequest{RequestID: sent.ID.String(), Action: "REJECTED"})
	assert.ErrorIs(t, err, utils.ErrRequestNotPending)
	assert.Equal(t, 409, utils.StatusFor(err))

	_, err = svc.RespondToRequest(ctx, bob.ID, request_models.RespondFriendRequest{RequestID: uuid.NewString(), Action: "ACCEPTED"})
	assert.ErrorIs(t, err, utils.ErrRequestNotFound)

	notified := f.events.ofType(realtime.EventFriendAccepted)
	require.Len(t, notified, 1)
	assert.Equal(t, alice.ID, notified[0].userID)

	friends, err := f.friends.AreFriends(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, friends)
}

func TestFriendService_RejectedPairCannotBeRequestedAgain(t *testing.T) {
	f := newFixture(t)
	svc := newFriendService(f)
	ctx := context.Background()

	alice := f.seedAccount(t, "alice", db_models.AccountStatusApproved)
	bob := f.seedAccount(t, "bob", db_models.AccountStatusApproved)

	sent, err := svc.SendRequest(ctx, alice.ID, request_models.SendFriendRequest{ToUserID: bob.ID.String()})
	require.NoError(t, err)
	_, err = svc.RespondToRequest(ctx, bob.ID, request_models.RespondFriendRequest{RequestID: sent.ID.String(), Action: "REJECTED"})
	require.NoError(t, err)

	_, err = svc.SendRequest(ctx, alice.ID, request_models.SendFriendRequest{ToUserID: bob.ID.String()})
	assert.ErrorIs(t, err, utils.ErrRequestExists)
}

func TestFriendService_ListFriendsPartitions(t *testing.T) {
	f := newFixture(t)
	svc := newFriendService(f)
	ctx := context.Background()

	me := f.seedAccount(t, "me", db_models.AccountStatusApproved)
	friend := f.seedAccount(t, "friend", db_models.AccountStatusApproved)
	outgoing := f.seedAccount(t, "outgoing", db_models.AccountStatusApproved)
	incoming := f.seedAccount(t, "incoming", db_models.AccountStatusApproved)

	f.befriend(t, friend.ID, me.ID)
	_, err := svc.SendRequest(ctx, me.ID, request_models.SendFriendRequest{ToUserID: outgoing.ID.String()})
	require.NoError(t, err)
	_, err = svc.SendRequest(ctx, incoming.ID, request_models.SendFriendRequest{ToUserID: me.ID.String()})
	require.NoError(t, err)

	require.NoError(t, f.accounts.TouchLastSeen(ctx, friend.ID, time.Now().UTC()))

	list, err := svc.ListFriends(ctx, me.ID)
	require.NoError(t, err)

	require.Len(t, list.Friends, 1)
	assert.Equal(t, friend.ID, list.Friends[0].ID)
	assert.Equal(t, "friend Tester", list.Friends[0].FullName)
	assert.True(t, list.Friends[0].IsOnline)

	require.Len(t, list.SentRequests, 1)
	assert.Equal(t, outgoing.ID, list.SentRequests[0].User.ID)
	require.Len(t, list.ReceivedRequests, 1)
	assert.Equal(t, incoming.ID, list.ReceivedRequests[0].User.ID)
}

func TestPartitionRequests_SkipsRejectedAndUsesOtherParty(t *testing.T) {
	me := uuid.New()
	now := time.Date(2025, 9, 24, 12, 0, 0, 0, time.UTC)
	stale := now.Add(-time.Hour)

	other := func(name string) db_models.Account {
		a := db_models.Account{Name: name, Surname: "X", LastSeen: &stale}
		a.ID = uuid.New()
		return a
	}
	self := db_models.Account{Name: "me"}
	self.ID = me

	f1, f2, r1 := other("f1"), other("f2"), other("r1")
	requests := []db_models.FriendRequest{
		{FromUserID: me, ToUserID: f1.ID, Status: db_models.FriendRequestAccepted, FromUser: self, ToUser: f1},
		{FromUserID: f2.ID, ToUserID: me, Status: db_models.FriendRequestAccepted, FromUser: f2, ToUser: self},
		{FromUserID: r1.ID, ToUserID: me, Status: db_models.FriendRequestRejected, FromUser: r1, ToUser: self},
	}

	out := PartitionRequests(me, requests, now, 5*time.Minute)
	require.Len(t, out.Friends, 2)
	assert.Equal(t, f1.ID, out.Friends[0].ID)
	assert.Equal(t, f2.ID, out.Friends[1].ID)
	assert.False(t, out.Friends[0].IsOnline)
	assert.Empty(t, out.SentRequests)
	assert.Empty(t, out.ReceivedRequests)
}

func TestIsOnline(t *testing.T) {
	now := time.Now()
	recent := now.Add(-time.Minute)
	old := now.Add(-10 * time.Minute)

	assert.True(t, IsOnline(&recent, now, 5*time.Minute))
	assert.False(t, IsOnline(&old, now, 5*time.Minute))
	assert.False(t, IsOnline(nil, now, 5*time.Minute))
}

func TestFriendService_ConcurrentRequestsCreateOneRow(t *testing.T) {
	f := newFixture(t)
	svc := newFriendService(f)
	ctx := context.Background()

	alice := f.seedAccount(t, "alice", db_models.AccountStatusApproved)
	bob := f.seedAccount(t, "bob", db_models.AccountStatusApproved)

	const attempts = 20
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			from, to := alice, bob
			if i%2 == 1 {
				from, to = bob, alice
			}
			_, errs[i] = svc.SendRequest(ctx, from.ID, request_models.SendFriendRequest{ToUserID: to.ID.String()})
		}(i)
	}
	wg.Wait()

	created, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case assert.ErrorIs(t, err, utils.ErrRequestExists):
			conflicts++
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, attempts-1, conflicts)

	var rows int64
	require.NoError(t, f.db.Model(&db_models.FriendRequest{}).
		Where("pair_key = ?", db_models.PairKeyOf(alice.ID, bob.ID)).
		Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}

func TestFriendRepository_DuplicatePairKey(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.seedAccount(t, "alice", db_models.AccountStatusApproved)
	bob := f.seedAccount(t, "bob", db_models.AccountStatusApproved)

	require.NoError(t, f.friends.CreateRequest(ctx, &db_models.FriendRequest{
		FromUserID: alice.ID,
		ToUserID:   bob.ID,
		Status:     db_models.FriendRequestPending,
	}))

	// Bypasses the existence check so only the unique index stands in the way.
	err := f.db.Omit(clause.Associations).Create(&db_models.FriendRequest{
		FromUserID: bob.ID,
		ToUserID:   alice.ID,
		Status:     db_models.FriendRequestPending,
		PairKey:    db_models.PairKeyOf(alice.ID, bob.ID),
	}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	err = f.friends.CreateRequest(ctx, &db_models.FriendRequest{
		FromUserID: bob.ID,
		ToUserID:   alice.ID,
		Status:     db_models.FriendRequestPending,
	})
	assert.ErrorIs(t, err, utils.ErrRequestExists)
}
