package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zazzlife/zazz-api/internal/apiauth"
	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/config"
	"github.com/zazzlife/zazz-api/internal/feed"
	"github.com/zazzlife/zazz-api/internal/logging"
	"github.com/zazzlife/zazz-api/internal/token"
)

const testClientID int64 = 7

var testKey = bytes.Repeat([]byte{9}, 64)

type staticKeys map[int64][]byte

func (k staticKeys) SigningKey(_ context.Context, clientID int64) ([]byte, error) {
	key, ok := k[clientID]
	if !ok {
		return nil, apperr.NotFound("client")
	}
	return key, nil
}

type memoryNonces struct {
	mu   sync.Mutex
	seen map[string]bool
}

func (n *memoryNonces) Claim(_ context.Context, _ int64, nonce string, _ time.Duration) (bool, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.seen[nonce] {
		return false, nil
	}
	n.seen[nonce] = true
	return true, nil
}

type recordingFeed struct {
	calls  int
	userID int64
}

func (f *recordingFeed) ForUser(_ context.Context, userID, _ int64, _ int) ([]feed.Entry, error) {
	f.calls++
	f.userID = userID
	return []feed.Entry{{ID: 1, UserID: userID, Type: feed.TypePost}}, nil
}

type routerFixture struct {
	router http.Handler
	codec  *token.Codec
	feed   *recordingFeed
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	codec, err := token.NewCodec(bytes.Repeat([]byte{1}, token.SecretSize))
	require.NoError(t, err)

	authorizer := apiauth.NewAuthorizer(staticKeys{testClientID: testKey}, &memoryNonces{seen: map[string]bool{}}, codec, 5*time.Minute)
	lister := &recordingFeed{}

	cfg := &config.Config{Server: config.ServerConfig{
		Env:            "prod",
		TrustedOrigins: []string{"https://app.zazzlife.com"},
	}}

	router := NewRouter(cfg, Handlers{Feed: feed.NewHandler(lister)}, apiauth.NewMiddleware(authorizer, 1<<20), logging.NewNop())
	return &routerFixture{router: router, codec: codec, feed: lister}
}

func (f *routerFixture) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestRoutePolicies(t *testing.T) {
	clientOnly := map[string]bool{
		"POST /auth/register":            true,
		"POST /auth/login":               true,
		"POST /auth/refresh":             true,
		"GET /auth/verify-email":         true,
		"POST /auth/forgot-password":     true,
		"POST /auth/reset-password":      true,
		"POST /auth/resend-verification": true,
	}

	seen := map[string]bool{}
	for _, rt := range routes(Handlers{}) {
		key := rt.method + " " + rt.pattern
		assert.False(t, seen[key], "duplicate route %s", key)
		seen[key] = true

		if clientOnly[key] {
			assert.Equal(t, apiauth.PolicyClient, rt.policy, key)
		} else {
			assert.Equal(t, apiauth.PolicyUser, rt.policy, key)
		}
	}

	for key := range clientOnly {
		assert.True(t, seen[key], "missing route %s", key)
	}
}

func TestHealthIsPublic(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, apiCSP, rec.Header().Get("Content-Security-Policy"))
	assert.NotEmpty(t, rec.Header().Get("Strict-Transport-Security"))
	assert.Empty(t, rec.Header().Get("Cache-Control"))
}

func TestSwaggerDisabledOutsideDevelopment(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnsignedRequestNeverReachesHandler(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Zero(t, f.feed.calls)
}

func TestSignedRequestWithoutAccessTokenIsRejectedOnUserRoutes(t *testing.T) {
	f := newRouterFixture(t)

	req, err := http.NewRequest(http.MethodGet, "http://api.test/api/v1/feed", nil)
	require.NoError(t, err)
	require.NoError(t, apiauth.NewSigner(testClientID, testKey).SignRequest(req, ""))

	rec := f.do(t, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, f.feed.calls)
}

func TestSignedRequestReachesHandler(t *testing.T) {
	f := newRouterFixture(t)

	access, err := f.codec.Encode(token.Token{
		UserID:   42,
		ClientID: testClientID,
		Type:     token.TypeAccess,
		Scopes:   []string{"full"},
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, "http://api.test/api/v1/feed?limit=5", nil)
	require.NoError(t, err)
	require.NoError(t, apiauth.NewSigner(testClientID, testKey).SignRequest(req, access))

	rec := f.do(t, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1, f.feed.calls)
	assert.Equal(t, int64(42), f.feed.userID)
	assert.Contains(t, rec.Body.String(), `"user_id":42`)
}

func TestCORSPreflightAllowsSigningHeaders(t *testing.T) {
	f := newRouterFixture(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/feed", nil)
	req.Header.Set("Origin", "https://app.zazzlife.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "X-Zazz-Date, X-Zazz-Nonce, X-Access-Token")

	rec := f.do(t, req)

	assert.Equal(t, "https://app.zazzlife.com", rec.Header().Get("Access-Control-Allow-Origin"))
	allowed := strings.ToLower(rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Contains(t, allowed, "x-zazz-date")
	assert.Contains(t, allowed, "x-access-token")
	assert.Zero(t, f.feed.calls)
}
