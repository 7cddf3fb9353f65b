package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zazzlife/zazz-api/internal/apperr"
)

type fakeSource struct {
	keys  map[int64][]byte
	calls int
	err   error
}

func (f *fakeSource) SigningKey(_ context.Context, id int64) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	key, ok := f.keys[id]
	if !ok {
		return nil, apperr.NotFound("client")
	}
	return key, nil
}

func TestCachedKeyStoreCachesHits(t *testing.T) {
	src := &fakeSource{keys: map[int64][]byte{1: []byte("secret")}}
	store := NewCachedKeyStore(src, 4, time.Minute)

	for range 3 {
		key, err := store.SigningKey(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, []byte("secret"), key)
	}
	assert.Equal(t, 1, src.calls)
}

func TestCachedKeyStoreDoesNotCacheMisses(t *testing.T) {
	src := &fakeSource{keys: map[int64][]byte{}}
	store := NewCachedKeyStore(src, 4, time.Minute)

	_, err := store.SigningKey(context.Background(), 9)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	src.keys[9] = []byte("late")
	key, err := store.SigningKey(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, []byte("late"), key)
	assert.Equal(t, 2, src.calls)
}

func TestCachedKeyStoreRereadsAfterTTL(t *testing.T) {
	src := &fakeSource{keys: map[int64][]byte{1: []byte("key")}}
	store := NewCachedKeyStore(src, 4, time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	_, err := store.SigningKey(context.Background(), 1)
	require.NoError(t, err)

	// client disabled at the source
	delete(src.keys, 1)

	now = now.Add(59 * time.Second)
	key, err := store.SigningKey(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("key"), key)
	assert.Equal(t, 1, src.calls)

	now = now.Add(time.Second)
	_, err = store.SigningKey(context.Background(), 1)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, 2, src.calls)

	_, err = store.SigningKey(context.Background(), 1)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, 3, src.calls)
}

func TestCachedKeyStoreDropsEntryOnSourceError(t *testing.T) {
	src := &fakeSource{keys: map[int64][]byte{1: []byte("a")}}
	store := NewCachedKeyStore(src, 4, time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	_, err := store.SigningKey(context.Background(), 1)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	src.err = errors.New("db down")
	_, err = store.SigningKey(context.Background(), 1)
	assert.Error(t, err)

	src.err = nil
	now = now.Add(time.Second)
	_, err = store.SigningKey(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, src.calls)
}

func TestCachedKeyIsNotAliased(t *testing.T) {
	src := &fakeSource{keys: map[int64][]byte{1: []byte("abc")}}
	store := NewCachedKeyStore(src, 4, time.Minute)

	key, err := store.SigningKey(context.Background(), 1)
	require.NoError(t, err)
	key[0] = 'X'

	again, err := store.SigningKey(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestGenerateSigningKey(t *testing.T) {
	a, err := GenerateSigningKey()
	require.NoError(t, err)
	b, err := GenerateSigningKey()
	require.NoError(t, err)

	assert.Len(t, a, KeySize)
	assert.NotEqual(t, a, b)
}
