package feed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zazzlife/zazz-api/internal/apiauth"
)

type recordingLister struct {
	userID, before int64
	limit          int
	entries        []Entry
	err            error
}

func (l *recordingLister) ForUser(_ context.Context, userID, before int64, limit int) ([]Entry, error) {
	l.userID, l.before, l.limit = userID, before, limit
	return l.entries, l.err
}

func TestEntryBuilders(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	post := ForPost(3, 10, at)
	assert.Equal(t, TypePost, post.Type)
	assert.Equal(t, int64(10), *post.PostID)
	assert.Nil(t, post.EventID)

	event := ForEvent(3, 11, at)
	assert.Equal(t, TypeEvent, event.Type)
	assert.Equal(t, int64(11), *event.EventID)
	assert.Equal(t, at, event.CreatedAt)
}

func TestHomeHandler(t *testing.T) {
	lister := &recordingLister{entries: []Entry{*ForPost(4, 1, time.Now())}}
	h := NewHandler(lister)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed?before=50&limit=10", nil)
	req = req.WithContext(apiauth.WithIdentity(req.Context(), &apiauth.Identity{ClientID: 1, UserID: 4}))
	rec := httptest.NewRecorder()
	h.Home(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(4), lister.userID)
	assert.Equal(t, int64(50), lister.before)
	assert.Equal(t, 10, lister.limit)

	var got []Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, TypePost, got[0].Type)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/feed?limit=abc", nil)
	rec = httptest.NewRecorder()
	h.Home(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	lister.err = errors.New("db down")
	req = httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil)
	rec = httptest.NewRecorder()
	h.Home(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
