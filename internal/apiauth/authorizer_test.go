package apiauth

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/token"
)

type fakeKeyStore struct {
	keys map[int64][]byte
	err  error
}

func (f *fakeKeyStore) SigningKey(_ context.Context, clientID int64) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	key, ok := f.keys[clientID]
	if !ok {
		return nil, apperr.NotFound("client")
	}
	return key, nil
}

type fakeNonceGuard struct {
	mu   sync.Mutex
	seen map[string]bool
	ttl  time.Duration
	err  error
}

func newFakeNonceGuard() *fakeNonceGuard {
	return &fakeNonceGuard{seen: make(map[string]bool)}
}

func (f *fakeNonceGuard) Claim(_ context.Context, clientID int64, nonce string, ttl time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	f.ttl = ttl
	key := getNonceKey(clientID, nonce)
	if f.seen[key] {
		return false, nil
	}
	f.seen[key] = true
	return true, nil
}

type fixture struct {
	now        time.Time
	codec      *token.Codec
	keys       *fakeKeyStore
	nonces     *fakeNonceGuard
	authorizer *Authorizer
	nonceSeq   int
}

const testClientID int64 = 7

func newFixture(t *testing.T) *fixture {
	t.Helper()
	now := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)

	codec, err := token.NewCodec(bytes.Repeat([]byte{1}, token.SecretSize), token.WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	f := &fixture{
		now:    now,
		codec:  codec,
		keys:   &fakeKeyStore{keys: map[int64][]byte{testClientID: testKey}},
		nonces: newFakeNonceGuard(),
	}
	f.authorizer = NewAuthorizer(f.keys, f.nonces, codec, 5*time.Minute)
	f.authorizer.now = func() time.Time { return now }
	return f
}

func (f *fixture) accessToken(t *testing.T, tok token.Token) string {
	t.Helper()
	s, err := f.codec.Encode(tok)
	require.NoError(t, err)
	return s
}

// signed builds a request signed with key at the fixture's clock
func (f *fixture) signed(t *testing.T, key []byte, accessToken string) *http.Request {
	t.Helper()
	f.nonceSeq++

	req, err := http.NewRequest(http.MethodPost, "http://api.test/api/v1/posts?x=1", strings.NewReader(`{"message":"hello"}`))
	require.NoError(t, err)

	s := NewSigner(testClientID, key)
	s.now = func() time.Time { return f.now }
	seq := f.nonceSeq
	s.nonce = func() string { return "nonce-" + string(rune('a'+seq)) }
	require.NoError(t, s.SignRequest(req, accessToken))
	return req
}

func (f *fixture) authorize(t *testing.T, req *http.Request, policy Policy) (*Identity, error) {
	t.Helper()
	var body []byte
	if req.Body != nil {
		buf := new(bytes.Buffer)
		_, err := buf.ReadFrom(req.Body)
		require.NoError(t, err)
		body = buf.Bytes()
	}
	return f.authorizer.Authorize(context.Background(), FromHTTP(req, body), policy)
}

func TestAuthorizeUserPolicy(t *testing.T) {
	f := newFixture(t)
	access := f.accessToken(t, token.Token{
		UserID:    42,
		ClientID:  testClientID,
		Type:      token.TypeAccess,
		Scopes:    []string{"full"},
		ExpiresAt: token.ExpiresIn(f.now, time.Hour),
	})

	identity, err := f.authorize(t, f.signed(t, testKey, access), PolicyUser)
	require.NoError(t, err)
	assert.Equal(t, &Identity{ClientID: testClientID, UserID: 42, Scopes: []string{"full"}}, identity)
	assert.Equal(t, 10*time.Minute, f.nonces.ttl)
}

func TestAuthorizeClientPolicySkipsToken(t *testing.T) {
	f := newFixture(t)

	identity, err := f.authorize(t, f.signed(t, testKey, "garbage"), PolicyClient)
	require.NoError(t, err)
	assert.Equal(t, testClientID, identity.ClientID)
	assert.Zero(t, identity.UserID)
}

func TestAuthorizeFailures(t *testing.T) {
	f := newFixture(t)
	valid := token.Token{UserID: 42, ClientID: testClientID, Type: token.TypeAccess}

	expired := valid
	expired.ExpiresAt = token.ExpiresIn(f.now, -time.Minute)
	refresh := valid
	refresh.Type = token.TypeRefresh
	otherClient := valid
	otherClient.ClientID = 99

	wrongKey := bytes.Repeat([]byte("w"), 64)

	tests := []struct {
		name string
		req  func() *http.Request
		want error
	}{
		{
			name: "wrong signing key",
			req:  func() *http.Request { return f.signed(t, wrongKey, f.accessToken(t, valid)) },
			want: ErrInvalidSignature,
		},
		{
			name: "missing access token",
			req:  func() *http.Request { return f.signed(t, testKey, "") },
			want: ErrMissingAccessToken,
		},
		{
			name: "expired token",
			req:  func() *http.Request { return f.signed(t, testKey, f.accessToken(t, expired)) },
			want: token.ErrTokenExpired,
		},
		{
			name: "refresh token used as access token",
			req:  func() *http.Request { return f.signed(t, testKey, f.accessToken(t, refresh)) },
			want: ErrWrongTokenType,
		},
		{
			name: "token issued to another client",
			req:  func() *http.Request { return f.signed(t, testKey, f.accessToken(t, otherClient)) },
			want: ErrClientMismatch,
		},
		{
			name: "tampered token",
			req:  func() *http.Request { return f.signed(t, testKey, f.accessToken(t, valid)+"x") },
			want: token.ErrInvalidSignature,
		},
		{
			name: "body changed after signing",
			req: func() *http.Request {
				req := f.signed(t, testKey, f.accessToken(t, valid))
				req.Body = http.NoBody
				return req
			},
			want: ErrInvalidSignature,
		},
		{
			name: "missing authorization",
			req: func() *http.Request {
				req := f.signed(t, testKey, f.accessToken(t, valid))
				req.Header.Del(HeaderAuthorization)
				return req
			},
			want: ErrMalformedAuthorization,
		},
		{
			name: "stale date",
			req: func() *http.Request {
				req := f.signed(t, testKey, f.accessToken(t, valid))
				req.Header.Set(HeaderDate, f.now.Add(-6*time.Minute).Format(http.TimeFormat))
				return req
			},
			want: ErrStaleRequest,
		},
		{
			name: "date in the future",
			req: func() *http.Request {
				req := f.signed(t, testKey, f.accessToken(t, valid))
				req.Header.Set(HeaderDate, f.now.Add(6*time.Minute).Format(http.TimeFormat))
				return req
			},
			want: ErrStaleRequest,
		},
		{
			name: "unparseable date",
			req: func() *http.Request {
				req := f.signed(t, testKey, f.accessToken(t, valid))
				req.Header.Set(HeaderDate, "yesterday")
				return req
			},
			want: ErrMalformedAuthorization,
		},
		{
			name: "missing nonce",
			req: func() *http.Request {
				req := f.signed(t, testKey, f.accessToken(t, valid))
				req.Header.Del(HeaderNonce)
				return req
			},
			want: ErrMalformedAuthorization,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.authorize(t, tt.req(), PolicyUser)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAuthorizeUnknownClient(t *testing.T) {
	f := newFixture(t)
	f.keys.keys = map[int64][]byte{}

	_, err := f.authorize(t, f.signed(t, testKey, ""), PolicyClient)
	assert.ErrorIs(t, err, ErrUnauthorizedClient)
	assert.NotErrorIs(t, err, apperr.ErrNotFound, "lookup errors are not propagated")
}

func TestAuthorizeKeyStoreFailureIsUnauthorized(t *testing.T) {
	f := newFixture(t)
	f.keys.err = errors.New("connection refused")

	_, err := f.authorize(t, f.signed(t, testKey, ""), PolicyClient)
	assert.ErrorIs(t, err, ErrUnauthorizedClient)
}

func TestAuthorizeRejectsReplay(t *testing.T) {
	f := newFixture(t)
	req := f.signed(t, testKey, "")

	body := []byte(`{"message":"hello"}`)
	signed := FromHTTP(req, body)

	_, err := f.authorizer.Authorize(context.Background(), signed, PolicyClient)
	require.NoError(t, err)

	_, err = f.authorizer.Authorize(context.Background(), signed, PolicyClient)
	assert.ErrorIs(t, err, ErrReplayedRequest)
}

func TestAuthorizeNonceGuardFailure(t *testing.T) {
	f := newFixture(t)
	f.nonces.err = errors.New("redis down")

	_, err := f.authorize(t, f.signed(t, testKey, ""), PolicyClient)
	assert.ErrorIs(t, err, ErrUnauthorizedClient)
}

func TestBadSignatureDoesNotConsumeNonce(t *testing.T) {
	f := newFixture(t)

	_, err := f.authorize(t, f.signed(t, bytes.Repeat([]byte("w"), 64), ""), PolicyClient)
	require.ErrorIs(t, err, ErrInvalidSignature)
	assert.Empty(t, f.nonces.seen)
}
