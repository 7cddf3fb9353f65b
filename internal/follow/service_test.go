package follow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/user"
)

type edge struct{ from, to int64 }

type memoryFollows struct {
	edges []edge
}

func (m *memoryFollows) index(from, to int64) int {
	for i, e := range m.edges {
		if e.from == from && e.to == to {
			return i
		}
	}
	return -1
}

func (m *memoryFollows) Insert(_ context.Context, from, to int64) (bool, error) {
	if m.index(from, to) >= 0 {
		return false, nil
	}
	m.edges = append(m.edges, edge{from, to})
	return true, nil
}

func (m *memoryFollows) Delete(_ context.Context, from, to int64) (bool, error) {
	i := m.index(from, to)
	if i < 0 {
		return false, nil
	}
	m.edges = append(m.edges[:i], m.edges[i+1:]...)
	return true, nil
}

func (m *memoryFollows) Followers(_ context.Context, userID int64, limit int) ([]Follow, error) {
	var out []Follow
	for _, e := range m.edges {
		if e.to == userID && len(out) < limit {
			out = append(out, Follow{FromUserID: e.from, ToUserID: e.to})
		}
	}
	return out, nil
}

type knownUsers map[int64]bool

func (k knownUsers) GetAccountType(_ context.Context, id int64) (user.AccountType, error) {
	if !k[id] {
		return "", user.ErrNotFound
	}
	return user.AccountUser, nil
}

type fakeNotifier struct {
	created []edge
	removed []edge
}

func (f *fakeNotifier) CreateFollowNotification(_ context.Context, from, to int64) error {
	f.created = append(f.created, edge{from, to})
	return nil
}

func (f *fakeNotifier) RemoveFollowNotification(_ context.Context, from, to int64) error {
	f.removed = append(f.removed, edge{from, to})
	return nil
}

type inlineTx struct{}

func (inlineTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestFollowIsIdempotent(t *testing.T) {
	store := &memoryFollows{}
	notifier := &fakeNotifier{}
	svc := NewService(store, knownUsers{1: true, 2: true}, notifier, inlineTx{})
	ctx := context.Background()

	require.NoError(t, svc.Follow(ctx, 1, 2))
	require.NoError(t, svc.Follow(ctx, 1, 2))

	assert.Len(t, store.edges, 1)
	assert.Equal(t, []edge{{1, 2}}, notifier.created, "only the first follow notifies")

	followers, err := svc.Followers(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, int64(1), followers[0].FromUserID)
}

func TestFollowRejects(t *testing.T) {
	store := &memoryFollows{}
	svc := NewService(store, knownUsers{1: true}, &fakeNotifier{}, inlineTx{})
	ctx := context.Background()

	assert.ErrorIs(t, svc.Follow(ctx, 1, 1), apperr.ErrInvalidArgument)
	assert.ErrorIs(t, svc.Follow(ctx, 1, 5), apperr.ErrNotFound)
	assert.Empty(t, store.edges)
}

func TestUnfollow(t *testing.T) {
	store := &memoryFollows{}
	notifier := &fakeNotifier{}
	svc := NewService(store, knownUsers{1: true, 2: true}, notifier, inlineTx{})
	ctx := context.Background()

	require.NoError(t, svc.Unfollow(ctx, 1, 2))
	assert.Empty(t, notifier.removed, "nothing to undo")

	require.NoError(t, svc.Follow(ctx, 1, 2))
	require.NoError(t, svc.Unfollow(ctx, 1, 2))
	assert.Empty(t, store.edges)
	assert.Equal(t, []edge{{1, 2}}, notifier.removed)
}
