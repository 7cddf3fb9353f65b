package client

import (
	"bytes"
	"context"
	"time"

	"github.com/zazzlife/zazz-api/internal/cache"
)

// KeySource loads client signing keys
type KeySource interface {
	SigningKey(ctx context.Context, id int64) ([]byte, error)
}

type cachedKey struct {
	key       []byte
	fetchedAt time.Time
}

// CachedKeyStore keeps recently used signing keys in memory for at most
// ttl, after which the source is asked again. Failed lookups are not
// cached, so a client disabled at the source is rejected once its entry
// expires.
type CachedKeyStore struct {
	source KeySource
	keys   *cache.Ring[int64, cachedKey]
	ttl    time.Duration
	now    func() time.Time
}

// NewCachedKeyStore creates a store caching up to capacity keys for ttl
func NewCachedKeyStore(source KeySource, capacity int, ttl time.Duration) *CachedKeyStore {
	return &CachedKeyStore{
		source: source,
		keys:   cache.NewRing[int64, cachedKey](capacity),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *CachedKeyStore) SigningKey(ctx context.Context, id int64) ([]byte, error) {
	now := s.now()
	if entry, ok := s.keys.Get(id); ok && now.Sub(entry.fetchedAt) < s.ttl {
		return bytes.Clone(entry.key), nil
	}

	key, err := s.source.SigningKey(ctx, id)
	if err != nil {
		s.keys.Remove(id)
		return nil, err
	}

	s.keys.Add(id, cachedKey{key: bytes.Clone(key), fetchedAt: now})
	return key, nil
}
