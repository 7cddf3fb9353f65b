package weekly

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zazzlife/zazz-api/internal/apiauth"
	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/user"
)

const (
	clubID   int64 = 10
	personID int64 = 20
)

type memoryWeeklies struct {
	nextID   int64
	weeklies map[int64]*Weekly
}

func newMemoryWeeklies() *memoryWeeklies {
	return &memoryWeeklies{weeklies: map[int64]*Weekly{}}
}

func (m *memoryWeeklies) Create(_ context.Context, w *Weekly) error {
	m.nextID++
	w.ID = m.nextID
	stored := *w
	m.weeklies[w.ID] = &stored
	return nil
}

func (m *memoryWeeklies) GetByID(_ context.Context, id int64) (*Weekly, error) {
	w, ok := m.weeklies[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *w
	return &out, nil
}

func (m *memoryWeeklies) Update(_ context.Context, w *Weekly) error {
	stored := *w
	m.weeklies[w.ID] = &stored
	return nil
}

func (m *memoryWeeklies) Delete(_ context.Context, id int64) error {
	delete(m.weeklies, id)
	return nil
}

func (m *memoryWeeklies) CountByUser(_ context.Context, userID int64) (int, error) {
	n := 0
	for _, w := range m.weeklies {
		if w.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (m *memoryWeeklies) ListByUser(_ context.Context, userID int64) ([]Weekly, error) {
	var out []Weekly
	for _, w := range m.weeklies {
		if w.UserID == userID {
			out = append(out, *w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DayOfWeek != out[j].DayOfWeek {
			return out[i].DayOfWeek < out[j].DayOfWeek
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

type accountTypes map[int64]user.AccountType

func (a accountTypes) GetAccountType(_ context.Context, id int64) (user.AccountType, error) {
	t, ok := a[id]
	if !ok {
		return "", apperr.NotFound("user")
	}
	return t, nil
}

type photoOwners map[int64]int64

func (p photoOwners) OwnerID(_ context.Context, id int64) (int64, error) {
	owner, ok := p[id]
	if !ok {
		return 0, apperr.NotFound("photo")
	}
	return owner, nil
}

type inlineTx struct{ calls int }

func (tx *inlineTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

func newTestService() (*Service, *memoryWeeklies, *inlineTx) {
	weeklies := newMemoryWeeklies()
	tx := &inlineTx{}
	accounts := accountTypes{clubID: user.AccountClub, personID: user.AccountUser}
	photos := photoOwners{1: clubID, 2: personID}
	return NewService(weeklies, accounts, photos, tx), weeklies, tx
}

func ladiesNight() Details {
	return Details{Name: "  Ladies night ", Description: "Half price", DayOfWeek: time.Thursday}
}

func TestCreateWeekly(t *testing.T) {
	svc, _, tx := newTestService()

	w, err := svc.Create(context.Background(), clubID, ladiesNight())
	require.NoError(t, err)

	assert.Equal(t, int64(1), w.ID)
	assert.Equal(t, clubID, w.UserID)
	assert.Equal(t, "Ladies night", w.Name)
	assert.Equal(t, time.Thursday, w.DayOfWeek)
	assert.Equal(t, 1, tx.calls)
}

func TestCreateWeeklyRequiresClub(t *testing.T) {
	svc, weeklies, _ := newTestService()

	_, err := svc.Create(context.Background(), personID, ladiesNight())
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.Create(context.Background(), 99, ladiesNight())
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.Empty(t, weeklies.weeklies)
}

func TestCreateWeeklyValidatesDetails(t *testing.T) {
	svc, _, _ := newTestService()

	tests := []struct {
		name    string
		details Details
	}{
		{"blank name", Details{Name: "   ", DayOfWeek: time.Monday}},
		{"long name", Details{Name: strings.Repeat("n", maxNameLength+1)}},
		{"long description", Details{Name: "ok", Description: strings.Repeat("d", maxDescriptionLength+1)}},
		{"negative day", Details{Name: "ok", DayOfWeek: -1}},
		{"day past saturday", Details{Name: "ok", DayOfWeek: 7}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), clubID, tc.details)
			assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
		})
	}

	_, err := svc.Create(context.Background(), 0, ladiesNight())
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestCreateWeeklyChecksPhotoOwner(t *testing.T) {
	svc, _, _ := newTestService()

	d := ladiesNight()
	d.PhotoID = ptr(int64(2))
	_, err := svc.Create(context.Background(), clubID, d)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	d.PhotoID = ptr(int64(3))
	_, err = svc.Create(context.Background(), clubID, d)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	d.PhotoID = ptr(int64(1))
	w, err := svc.Create(context.Background(), clubID, d)
	require.NoError(t, err)
	assert.Equal(t, int64(1), *w.PhotoID)
}

func TestCreateWeeklyLimit(t *testing.T) {
	svc, weeklies, _ := newTestService()

	for i := 0; i < MaxPerClub; i++ {
		_, err := svc.Create(context.Background(), clubID, ladiesNight())
		require.NoError(t, err)
	}

	_, err := svc.Create(context.Background(), clubID, ladiesNight())
	assert.ErrorIs(t, err, ErrLimitReached)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
	assert.Len(t, weeklies.weeklies, MaxPerClub)
}

func TestEditWeekly(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	w, err := svc.Create(ctx, clubID, ladiesNight())
	require.NoError(t, err)

	_, err = svc.Edit(ctx, w.ID, personID, Details{Name: "Mine now"})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.Edit(ctx, 42, clubID, Details{Name: "Ghost"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	edited, err := svc.Edit(ctx, w.ID, clubID, Details{Name: "Trivia", DayOfWeek: time.Tuesday})
	require.NoError(t, err)
	assert.Equal(t, "Trivia", edited.Name)

	got, err := svc.Get(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "Trivia", got.Name)
	assert.Equal(t, time.Tuesday, got.DayOfWeek)
	assert.Empty(t, got.Description)
}

func TestGetWeekly(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Get(context.Background(), 0)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = svc.Get(context.Background(), 5)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListWeekliesByDay(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	for _, day := range []time.Weekday{time.Saturday, time.Monday, time.Friday} {
		_, err := svc.Create(ctx, clubID, Details{Name: day.String(), DayOfWeek: day})
		require.NoError(t, err)
	}

	list, err := svc.ListByUser(ctx, clubID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Monday", list[0].Name)
	assert.Equal(t, "Friday", list[1].Name)
	assert.Equal(t, "Saturday", list[2].Name)

	_, err = svc.ListByUser(ctx, 0)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestWeeklyHandlers(t *testing.T) {
	svc, _, _ := newTestService()
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Post("/weeklies", h.Create)
	r.Delete("/weeklies/{id}", h.Delete)

	do := func(method, target, body string, userID int64) int {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req = req.WithContext(apiauth.WithIdentity(req.Context(), &apiauth.Identity{ClientID: 1, UserID: userID}))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	body := `{"name":"Ladies night","day_of_week":4}`
	assert.Equal(t, http.StatusForbidden, do(http.MethodPost, "/weeklies", body, personID))
	assert.Equal(t, http.StatusBadRequest, do(http.MethodPost, "/weeklies", `{"name":`, clubID))
	assert.Equal(t, http.StatusBadRequest, do(http.MethodPost, "/weeklies", `{"name":"x","day_of_week":9}`, clubID))
	assert.Equal(t, http.StatusCreated, do(http.MethodPost, "/weeklies", body, clubID))

	assert.Equal(t, http.StatusForbidden, do(http.MethodDelete, "/weeklies/1", "", personID))
	assert.Equal(t, http.StatusNoContent, do(http.MethodDelete, "/weeklies/1", "", clubID))
	assert.Equal(t, http.StatusNoContent, do(http.MethodDelete, "/weeklies/1", "", clubID))
}

func ptr[T any](v T) *T { return &v }
