package conversation

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/fortune-club/internal/domain/conversation"
	"github.com/BruksfildServices01/fortune-club/internal/domain/identity"
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/infra/repository"
	"github.com/BruksfildServices01/fortune-club/internal/models"
	"github.com/BruksfildServices01/fortune-club/internal/testhelpers"
)

// staleRepo misses the first pair lookup, the way a request that lost the
// insert race would.
type staleRepo struct {
	domain.Repository
	once sync.Once
}

func (r *staleRepo) FindByPair(ctx context.Context, pair domain.Pair) (*models.Conversation, error) {
	stale := false
	r.once.Do(func() { stale = true })
	if stale {
		return nil, gorm.ErrRecordNotFound
	}
	return r.Repository.FindByPair(ctx, pair)
}

type fakeLimiter struct {
	allow bool
	err   error
	calls int
}

func (l *fakeLimiter) Allow(context.Context, uint) (bool, error) {
	l.calls++
	return l.allow, l.err
}

type fakeNotifier struct {
	sent []*models.Message
}

func (n *fakeNotifier) NotifyMessage(_ *models.Conversation, msg *models.Message) {
	n.sent = append(n.sent, msg)
}

func users(t *testing.T, db *gorm.DB) (a, b, c identity.Actor) {
	t.Helper()
	ua := testhelpers.CreateUser(t, db, "alice", "client")
	ub := testhelpers.CreateUser(t, db, "bruno", "fortune teller")
	uc := testhelpers.CreateUser(t, db, "carla", "client")
	return identity.ActorFor(&ua), identity.ActorFor(&ub), identity.ActorFor(&uc)
}

func TestStartConversation_SamePairSameConversation(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	repo := repository.NewConversationGormRepository(db)
	start := NewStartConversation(repo, nil)
	alice, bruno, _ := users(t, db)

	first, created, err := start.Execute(testhelpers.Ctx(), alice, bruno.UserID)
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := start.Execute(testhelpers.Ctx(), alice, bruno.UserID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)

	reverse, created, err := start.Execute(testhelpers.Ctx(), bruno, alice.UserID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, reverse.ID)

	var count int64
	require.NoError(t, db.Model(&models.Conversation{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestStartConversation_LostRaceConverges(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	base := repository.NewConversationGormRepository(db)
	alice, bruno, _ := users(t, db)

	existing, _, err := NewStartConversation(base, nil).Execute(testhelpers.Ctx(), alice, bruno.UserID)
	require.NoError(t, err)

	racer := NewStartConversation(&staleRepo{Repository: base}, nil)
	got, created, err := racer.Execute(testhelpers.Ctx(), bruno, alice.UserID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, got.ID)
}

func TestStartConversation_Validation(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	start := NewStartConversation(repository.NewConversationGormRepository(db), nil)
	alice, _, _ := users(t, db)

	_, _, err := start.Execute(testhelpers.Ctx(), alice, alice.UserID)
	assert.True(t, httperr.IsBusiness(err, "self_conversation"))

	_, _, err = start.Execute(testhelpers.Ctx(), alice, 9999)
	assert.True(t, httperr.IsBusiness(err, "invalid_participant"))
}

func TestSendMessage(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	repo := repository.NewConversationGormRepository(db)
	alice, bruno, carla := users(t, db)

	conv, _, err := NewStartConversation(repo, nil).Execute(testhelpers.Ctx(), alice, bruno.UserID)
	require.NoError(t, err)

	notifier := &fakeNotifier{}
	send := NewSendMessage(repo, nil, notifier, nil)

	m1, err := send.Execute(testhelpers.Ctx(), alice, conv.ID, SendMessageInput{Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "alice", m1.Sender.Username)
	m2, err := send.Execute(testhelpers.Ctx(), bruno, conv.ID, SendMessageInput{Content: "hello"})
	require.NoError(t, err)
	assert.Len(t, notifier.sent, 2)

	_, err = send.Execute(testhelpers.Ctx(), carla, conv.ID, SendMessageInput{Content: "let me in"})
	assert.True(t, httperr.IsKind(err, httperr.KindAuthorization))

	_, err = send.Execute(testhelpers.Ctx(), alice, 9999, SendMessageInput{Content: "void"})
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))

	_, err = send.Execute(testhelpers.Ctx(), alice, conv.ID, SendMessageInput{})
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))

	msgs, err := NewListMessages(repo).Execute(testhelpers.Ctx(), bruno, conv.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, m1.ID, msgs[0].ID)
	assert.Equal(t, m2.ID, msgs[1].ID)

	_, err = NewListMessages(repo).Execute(testhelpers.Ctx(), carla, conv.ID)
	assert.True(t, httperr.IsKind(err, httperr.KindAuthorization))

	full, err := NewGetConversation(repo).Execute(testhelpers.Ctx(), alice, conv.ID)
	require.NoError(t, err)
	assert.Len(t, full.Messages, 2)
	assert.Equal(t, "bruno", full.Messages[1].Sender.Username)
}

func TestSendMessage_RateLimit(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	repo := repository.NewConversationGormRepository(db)
	alice, bruno, _ := users(t, db)

	conv, _, err := NewStartConversation(repo, nil).Execute(testhelpers.Ctx(), alice, bruno.UserID)
	require.NoError(t, err)

	denied := &fakeLimiter{allow: false}
	_, err = NewSendMessage(repo, denied, nil, nil).Execute(testhelpers.Ctx(), alice, conv.ID, SendMessageInput{Content: "spam"})
	assert.True(t, httperr.IsKind(err, httperr.KindRateLimited))
	assert.Equal(t, 1, denied.calls)

	broken := &fakeLimiter{err: errors.New("redis down")}
	_, err = NewSendMessage(repo, broken, nil, nil).Execute(testhelpers.Ctx(), alice, conv.ID, SendMessageInput{Content: "still works"})
	assert.NoError(t, err)
}

func TestListConversations(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	repo := repository.NewConversationGormRepository(db)
	start := NewStartConversation(repo, nil)
	alice, bruno, carla := users(t, db)

	c1, _, err := start.Execute(testhelpers.Ctx(), alice, bruno.UserID)
	require.NoError(t, err)
	c2, _, err := start.Execute(testhelpers.Ctx(), carla, alice.UserID)
	require.NoError(t, err)
	_, _, err = start.Execute(testhelpers.Ctx(), bruno, carla.UserID)
	require.NoError(t, err)

	out, total, err := NewListConversations(repo).Execute(testhelpers.Ctx(), alice, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, out, 2)
	assert.Equal(t, c1.ID, out[0].ID)
	assert.Equal(t, c2.ID, out[1].ID)

	_, err = NewGetConversation(repo).Execute(testhelpers.Ctx(), alice, 9999)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}
