package apiauth

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zazzlife/zazz-api/internal/httputil"
	"github.com/zazzlife/zazz-api/internal/token"
)

// countingService stands in for a downstream application service
type countingService struct {
	calls    int
	lastUser int64
	lastBody string
}

func (s *countingService) handler(w http.ResponseWriter, r *http.Request) {
	s.calls++
	s.lastUser = UserID(r.Context())
	body, _ := io.ReadAll(r.Body)
	s.lastBody = string(body)
	w.WriteHeader(http.StatusCreated)
}

func newTestRouter(f *fixture, svc *countingService, maxBody int64) http.Handler {
	m := NewMiddleware(f.authorizer, maxBody)

	r := chi.NewRouter()
	r.With(m.Require(PolicyUser)).Post("/api/v1/posts", svc.handler)
	r.With(m.Require(PolicyClient)).Post("/api/v1/auth/login", svc.handler)
	return r
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httputil.ErrorResponse {
	t.Helper()
	var body httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequireRejectsWrongSecretBeforeService(t *testing.T) {
	f := newFixture(t)
	svc := &countingService{}
	router := newTestRouter(f, svc, 1<<20)

	access := f.accessToken(t, token.Token{UserID: 42, ClientID: testClientID, Type: token.TypeAccess})
	req := f.signed(t, bytes.Repeat([]byte("w"), 64), access)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, httputil.CodeUnauthorized, decodeError(t, rec).Code)
	assert.Equal(t, 0, svc.calls)
}

func TestRequireExpiredTokenHasDistinctCode(t *testing.T) {
	f := newFixture(t)
	svc := &countingService{}
	router := newTestRouter(f, svc, 1<<20)

	access := f.accessToken(t, token.Token{
		UserID:    42,
		ClientID:  testClientID,
		Type:      token.TypeAccess,
		ExpiresAt: token.ExpiresIn(f.now, -time.Second),
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, f.signed(t, testKey, access))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, httputil.CodeTokenExpired, decodeError(t, rec).Code)
	assert.Equal(t, 0, svc.calls)
}

func TestRequireFailuresLookTheSame(t *testing.T) {
	f := newFixture(t)
	svc := &countingService{}
	router := newTestRouter(f, svc, 1<<20)

	wrongType := f.accessToken(t, token.Token{UserID: 42, ClientID: testClientID, Type: token.TypeRefresh})

	unknownClient := f.signed(t, testKey, "")
	unknownClient.Header.Set(HeaderAuthorization, strings.Replace(unknownClient.Header.Get(HeaderAuthorization), " 7:", " 8:", 1))

	var bodies []string
	for _, req := range []*http.Request{
		f.signed(t, testKey, wrongType),
		f.signed(t, testKey, ""),
		unknownClient,
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		bodies = append(bodies, rec.Body.String())
	}

	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[1], bodies[2])
	assert.Equal(t, 0, svc.calls)
}

func TestRequirePassesIdentityAndBody(t *testing.T) {
	f := newFixture(t)
	svc := &countingService{}
	router := newTestRouter(f, svc, 1<<20)

	access := f.accessToken(t, token.Token{UserID: 42, ClientID: testClientID, Type: token.TypeAccess})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, f.signed(t, testKey, access))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, int64(42), svc.lastUser)
	assert.Equal(t, `{"message":"hello"}`, svc.lastBody)
}

func TestRequireClientPolicy(t *testing.T) {
	f := newFixture(t)
	svc := &countingService{}
	router := newTestRouter(f, svc, 1<<20)

	req, err := http.NewRequest(http.MethodPost, "http://api.test/api/v1/auth/login", strings.NewReader(`{}`))
	require.NoError(t, err)
	s := NewSigner(testClientID, testKey)
	s.now = func() time.Time { return f.now }
	require.NoError(t, s.SignRequest(req, ""))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, svc.calls)
	assert.Zero(t, svc.lastUser)
}

func TestRequireRejectsOversizedBody(t *testing.T) {
	f := newFixture(t)
	svc := &countingService{}
	router := newTestRouter(f, svc, 8)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, f.signed(t, testKey, ""))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, httputil.CodeRequestTooLarge, decodeError(t, rec).Code)
	assert.Equal(t, 0, svc.calls)
}

func TestIdentityFromEmptyContext(t *testing.T) {
	_, ok := IdentityFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
	assert.Zero(t, UserID(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}
