package vote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zazzlife/zazz-api/internal/apperr"
)

type voteKey struct{ photoID, userID int64 }

type memoryVotes struct {
	votes    map[voteKey]bool
	received map[int64]int64
}

func newMemoryVotes() *memoryVotes {
	return &memoryVotes{votes: map[voteKey]bool{}, received: map[int64]int64{}}
}

func (m *memoryVotes) Insert(_ context.Context, photoID, userID int64) error {
	key := voteKey{photoID, userID}
	if m.votes[key] {
		return ErrAlreadyVoted
	}
	m.votes[key] = true
	return nil
}

func (m *memoryVotes) Delete(_ context.Context, photoID, userID int64) (bool, error) {
	key := voteKey{photoID, userID}
	existed := m.votes[key]
	delete(m.votes, key)
	return existed, nil
}

func (m *memoryVotes) Exists(_ context.Context, photoID, userID int64) (bool, error) {
	return m.votes[voteKey{photoID, userID}], nil
}

func (m *memoryVotes) Count(_ context.Context, photoID int64) (int, error) {
	count := 0
	for key := range m.votes {
		if key.photoID == photoID {
			count++
		}
	}
	return count, nil
}

func (m *memoryVotes) AdjustReceived(_ context.Context, userID, delta int64) error {
	m.received[userID] = max(m.received[userID]+delta, 0)
	return nil
}

type photoOwners map[int64]int64

func (p photoOwners) OwnerID(_ context.Context, photoID int64) (int64, error) {
	owner, ok := p[photoID]
	if !ok {
		return 0, apperr.NotFound("photo")
	}
	return owner, nil
}

type inlineTx struct{}

func (inlineTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newVoteService() (*Service, *memoryVotes) {
	store := newMemoryVotes()
	return NewService(store, photoOwners{10: 1}, inlineTx{}), store
}

func TestAddVote(t *testing.T) {
	svc, store := newVoteService()
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, 10, 2))
	assert.Equal(t, int64(1), store.received[1])

	err := svc.Add(ctx, 10, 2)
	assert.ErrorIs(t, err, apperr.ErrAlreadyExists)
	assert.Equal(t, int64(1), store.received[1], "a repeated vote is not counted")

	require.NoError(t, svc.Add(ctx, 10, 3))
	count, err := svc.Count(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, int64(2), store.received[1])
}

func TestAddVoteRejects(t *testing.T) {
	svc, store := newVoteService()
	ctx := context.Background()

	assert.ErrorIs(t, svc.Add(ctx, 0, 2), apperr.ErrInvalidArgument)
	assert.ErrorIs(t, svc.Add(ctx, 10, 0), apperr.ErrInvalidArgument)
	assert.ErrorIs(t, svc.Add(ctx, 99, 2), apperr.ErrNotFound)
	assert.Empty(t, store.votes)
}

func TestRemoveVote(t *testing.T) {
	svc, store := newVoteService()
	ctx := context.Background()
	require.NoError(t, svc.Add(ctx, 10, 2))

	require.NoError(t, svc.Remove(ctx, 99, 2), "missing photos are a no-op")
	require.NoError(t, svc.Remove(ctx, 10, 3), "users who never voted are a no-op")
	assert.Equal(t, int64(1), store.received[1])

	require.NoError(t, svc.Remove(ctx, 10, 2))
	assert.Zero(t, store.received[1])

	voted, err := svc.Exists(ctx, 10, 2)
	require.NoError(t, err)
	assert.False(t, voted)

	assert.ErrorIs(t, svc.Remove(ctx, 0, 2), apperr.ErrInvalidArgument)
	_, err = svc.Count(ctx, 0)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}
