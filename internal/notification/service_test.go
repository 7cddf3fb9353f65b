package notification

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zazzlife/zazz-api/internal/apiauth"
	"github.com/zazzlife/zazz-api/internal/apperr"
)

type memoryStore struct {
	nextID int64
	rows   map[int64]*Notification
}

func newMemoryStore() *memoryStore {
	return &memoryStore{rows: map[int64]*Notification{}}
}

func (m *memoryStore) Insert(_ context.Context, notifications []*Notification) error {
	for _, n := range notifications {
		m.nextID++
		n.ID = m.nextID
		stored := *n
		m.rows[n.ID] = &stored
	}
	return nil
}

func (m *memoryStore) List(_ context.Context, userID, before int64, limit int) ([]Notification, error) {
	var out []Notification
	for _, n := range m.rows {
		if n.UserID == userID && (before == 0 || n.ID < before) {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryStore) RecipientID(_ context.Context, id int64) (int64, error) {
	n, ok := m.rows[id]
	if !ok {
		return 0, ErrNotFound
	}
	return n.UserID, nil
}

func (m *memoryStore) Delete(_ context.Context, id int64) error {
	delete(m.rows, id)
	return nil
}

func (m *memoryStore) DeleteByTarget(_ context.Context, target Target, id int64) error {
	for key, n := range m.rows {
		var ref *int64
		switch target {
		case TargetPost:
			ref = n.PostID
		case TargetEvent:
			ref = n.EventID
		case TargetPhoto:
			ref = n.PhotoID
		case TargetComment:
			ref = n.CommentID
		}
		if ref != nil && *ref == id {
			delete(m.rows, key)
		}
	}
	return nil
}

func (m *memoryStore) DeleteFollow(_ context.Context, fromUserID, toUserID int64) error {
	for key, n := range m.rows {
		if n.Type == TypeFollow && n.FromUserID == fromUserID && n.UserID == toUserID {
			delete(m.rows, key)
		}
	}
	return nil
}

func (m *memoryStore) MarkAllRead(_ context.Context, userID int64) error {
	for _, n := range m.rows {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (m *memoryStore) UnreadCount(_ context.Context, userID int64) (int, error) {
	count := 0
	for _, n := range m.rows {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

type staticFollowers struct {
	ids []int64
	err error
}

func (s staticFollowers) FollowerIDs(context.Context, int64) ([]int64, error) {
	return s.ids, s.err
}

func TestListNewestFirstWithCursor(t *testing.T) {
	store := newMemoryStore()
	svc := NewService(store, staticFollowers{})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.CreateFollowNotification(ctx, int64(10+i), 1))
	}
	require.NoError(t, svc.CreateFollowNotification(ctx, 10, 2))

	page, err := svc.List(ctx, 1, 0, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(5), page[0].ID)
	assert.Equal(t, int64(4), page[1].ID)

	page, err = svc.List(ctx, 1, page[1].ID, 0)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, int64(3), page[0].ID)

	_, err = svc.List(ctx, 1, -1, 0)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestCommentNotificationsCarryTargets(t *testing.T) {
	store := newMemoryStore()
	svc := NewService(store, staticFollowers{})
	ctx := context.Background()

	require.NoError(t, svc.CreatePhotoCommentNotification(ctx, 100, 2, 30, 1))
	require.NoError(t, svc.CreatePostCommentNotification(ctx, 101, 2, 40, 1))
	require.NoError(t, svc.CreateEventCommentNotification(ctx, 102, 2, 50, 1))
	require.NoError(t, svc.CreateWallPostNotification(ctx, 2, 1, 40))

	photo := store.rows[1]
	assert.Equal(t, TypePhotoComment, photo.Type)
	assert.Equal(t, int64(30), *photo.PhotoID)
	assert.Equal(t, int64(100), *photo.CommentID)
	assert.Equal(t, int64(2), photo.FromUserID)

	require.NoError(t, svc.RemoveByPost(ctx, 40))
	assert.Len(t, store.rows, 2, "post comment and wall post notifications are gone")

	require.NoError(t, svc.RemoveByComment(ctx, 102))
	require.NoError(t, svc.RemoveByPhoto(ctx, 30))
	assert.Empty(t, store.rows)
}

func TestCreateNewEventNotificationFansOut(t *testing.T) {
	store := newMemoryStore()
	svc := NewService(store, staticFollowers{ids: []int64{4, 5, 6}})
	ctx := context.Background()

	require.NoError(t, svc.CreateNewEventNotification(ctx, 9, 77))
	require.Len(t, store.rows, 3)
	for _, n := range store.rows {
		assert.Equal(t, TypeNewEvent, n.Type)
		assert.Equal(t, int64(9), n.FromUserID)
		assert.Equal(t, int64(77), *n.EventID)
	}

	require.NoError(t, svc.RemoveByEvent(ctx, 77))
	assert.Empty(t, store.rows)

	failing := NewService(store, staticFollowers{err: errors.New("db down")})
	assert.Error(t, failing.CreateNewEventNotification(ctx, 9, 78))
}

func TestRemoveOnlyByRecipient(t *testing.T) {
	store := newMemoryStore()
	svc := NewService(store, staticFollowers{})
	ctx := context.Background()

	require.NoError(t, svc.CreateFollowNotification(ctx, 2, 1))

	assert.ErrorIs(t, svc.Remove(ctx, 1, 2), apperr.ErrForbidden)
	assert.ErrorIs(t, svc.Remove(ctx, 99, 1), apperr.ErrNotFound)
	require.NoError(t, svc.Remove(ctx, 1, 1))
	assert.Empty(t, store.rows)
}

func TestRemoveFollowNotification(t *testing.T) {
	store := newMemoryStore()
	svc := NewService(store, staticFollowers{})
	ctx := context.Background()

	require.NoError(t, svc.CreateFollowNotification(ctx, 2, 1))
	require.NoError(t, svc.CreateWallPostNotification(ctx, 2, 1, 5))

	require.NoError(t, svc.RemoveFollowNotification(ctx, 2, 1))
	require.Len(t, store.rows, 1)
	assert.Equal(t, TypeWallPost, store.rows[2].Type)
}

func TestUnreadCountAndMarkAllRead(t *testing.T) {
	store := newMemoryStore()
	svc := NewService(store, staticFollowers{})
	ctx := context.Background()

	require.NoError(t, svc.CreateFollowNotification(ctx, 2, 1))
	require.NoError(t, svc.CreateFollowNotification(ctx, 3, 1))
	require.NoError(t, svc.CreateFollowNotification(ctx, 3, 2))

	count, err := svc.UnreadCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, svc.MarkAllRead(ctx, 1))
	count, err = svc.UnreadCount(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = svc.UnreadCount(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRemoveHandler(t *testing.T) {
	store := newMemoryStore()
	svc := NewService(store, staticFollowers{})
	require.NoError(t, svc.CreateFollowNotification(context.Background(), 2, 1))

	r := chi.NewRouter()
	r.Delete("/notifications/{id}", NewHandler(svc).Remove)

	do := func(userID int64, target string) int {
		req := httptest.NewRequest(http.MethodDelete, target, nil)
		req = req.WithContext(apiauth.WithIdentity(req.Context(), &apiauth.Identity{ClientID: 1, UserID: userID}))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusBadRequest, do(1, "/notifications/abc"))
	assert.Equal(t, http.StatusForbidden, do(2, "/notifications/1"))
	assert.Equal(t, http.StatusNoContent, do(1, "/notifications/1"))
	assert.Equal(t, http.StatusNotFound, do(1, "/notifications/1"))
}
