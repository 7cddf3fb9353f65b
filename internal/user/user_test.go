package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zazzlife/zazz-api/internal/apiauth"
	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/cache"
)

type fakeFinder struct {
	users      map[int64]*User
	byNameHits int
	byIDHits   int
}

func (f *fakeFinder) GetByUsername(_ context.Context, username string) (*User, error) {
	f.byNameHits++
	for _, u := range f.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeFinder) GetByID(_ context.Context, id int64) (*User, error) {
	f.byIDHits++
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, ErrNotFound
}

func newFinder() *fakeFinder {
	club := "Club Zazz"
	return &fakeFinder{users: map[int64]*User{
		1: {ID: 1, Username: "alice", Email: "alice@example.com", AccountType: AccountUser},
		2: {ID: 2, Username: "zazzclub", Email: "club@example.com", AccountType: AccountClub, ClubName: &club},
	}}
}

func newDirectory(f Finder) *Directory {
	return NewDirectory(f, cache.NewRing[string, int64](8), cache.NewRing[int64, string](8))
}

func TestDirectoryCachesUsernameLookups(t *testing.T) {
	f := newFinder()
	d := newDirectory(f)

	for _, name := range []string{"alice", "ALICE", "Alice"} {
		id, err := d.IDByUsername(context.Background(), name)
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
	}
	assert.Equal(t, 1, f.byNameHits)

	name, err := d.DisplayName(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "alice", name)
	assert.Zero(t, f.byIDHits, "filled by the username lookup")
}

func TestDirectoryDisplayNameForClubs(t *testing.T) {
	d := newDirectory(newFinder())

	name, err := d.DisplayName(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Club Zazz", name)
}

func TestDirectoryMissingUser(t *testing.T) {
	f := newFinder()
	d := newDirectory(f)

	_, err := d.IDByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = d.IDByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 2, f.byNameHits, "misses are not cached")
}

func TestDirectoryForget(t *testing.T) {
	f := newFinder()
	d := newDirectory(f)

	_, err := d.IDByUsername(context.Background(), "alice")
	require.NoError(t, err)

	d.Forget(f.users[1])
	_, err = d.IDByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, f.byNameHits)
}

func TestHandlerMe(t *testing.T) {
	f := newFinder()
	h := NewHandler(f, newDirectory(f))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req = req.WithContext(apiauth.WithIdentity(req.Context(), &apiauth.Identity{ClientID: 1, UserID: 1}))
	rec := httptest.NewRecorder()
	h.Me(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "alice", body["username"])
	assert.NotContains(t, body, "PasswordHash")
	assert.NotContains(t, body, "password_hash")
}

func TestHandlerGetByUsername(t *testing.T) {
	f := newFinder()
	h := NewHandler(f, newDirectory(f))

	r := chi.NewRouter()
	r.Get("/api/v1/users/{username}", h.GetByUsername)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users/zazzclub", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var profile Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, int64(2), profile.ID)
	assert.Equal(t, AccountClub, profile.AccountType)
	assert.NotContains(t, rec.Body.String(), "club@example.com")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users/ghost", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAccountTypeValid(t *testing.T) {
	assert.True(t, AccountUser.Valid())
	assert.True(t, AccountClub.Valid())
	assert.False(t, AccountType("admin").Valid())
}
