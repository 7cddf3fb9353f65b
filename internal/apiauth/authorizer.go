package apiauth

import (
	"context"
	"crypto/hmac"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/zazzlife/zazz-api/internal/token"
)

// maxNonceLength bounds the nonce stored by the replay guard
const maxNonceLength = 128

// KeyStore looks up the signing key of a registered client
type KeyStore interface {
	SigningKey(ctx context.Context, clientID int64) ([]byte, error)
}

// NonceGuard records nonces and reports whether one was seen before
type NonceGuard interface {
	// Claim returns true when nonce was not used by clientID within ttl
	Claim(ctx context.Context, clientID int64, nonce string, ttl time.Duration) (bool, error)
}

// TokenDecoder decodes bearer tokens
type TokenDecoder interface {
	Decode(s string) (*token.Token, error)
}

// Identity is the verified caller of a request
type Identity struct {
	ClientID int64
	// UserID is zero for PolicyClient requests
	UserID int64
	Scopes []string
}

// Authorizer verifies signed requests. It holds only read-only state and
// can be shared between requests.
type Authorizer struct {
	keys   KeyStore
	nonces NonceGuard
	tokens TokenDecoder
	skew   time.Duration
	now    func() time.Time
}

// NewAuthorizer creates an authorizer that accepts request dates within
// clockSkew of the server clock
func NewAuthorizer(keys KeyStore, nonces NonceGuard, tokens TokenDecoder, clockSkew time.Duration) *Authorizer {
	return &Authorizer{
		keys:   keys,
		nonces: nonces,
		tokens: tokens,
		skew:   clockSkew,
		now:    time.Now,
	}
}

// Authorize checks req against policy and returns the caller on success
func (a *Authorizer) Authorize(ctx context.Context, req SignedRequest, policy Policy) (*Identity, error) {
	clientID, signature, err := parseAuthorization(req.Authorization)
	if err != nil {
		return nil, err
	}

	if err := a.checkDate(req.Date); err != nil {
		return nil, err
	}

	if req.Nonce == "" || len(req.Nonce) > maxNonceLength {
		return nil, fmt.Errorf("%w: bad nonce", ErrMalformedAuthorization)
	}

	key, err := a.keys.SigningKey(ctx, clientID)
	if err != nil || len(key) == 0 {
		// Lookup failures never surface as internal errors
		return nil, fmt.Errorf("%w: client %d: %v", ErrUnauthorizedClient, clientID, err)
	}

	if !hmac.Equal(signature, mac(key, CanonicalString(req))) {
		return nil, ErrInvalidSignature
	}

	fresh, err := a.nonces.Claim(ctx, clientID, req.Nonce, 2*a.skew)
	if err != nil {
		return nil, fmt.Errorf("%w: nonce check failed: %v", ErrUnauthorizedClient, err)
	}
	if !fresh {
		return nil, ErrReplayedRequest
	}

	identity := &Identity{ClientID: clientID}
	if !policy.RequiresUser() {
		return identity, nil
	}

	tok, err := a.accessToken(req.AccessToken, clientID)
	if err != nil {
		return nil, err
	}
	identity.UserID = tok.UserID
	identity.Scopes = tok.Scopes

	return identity, nil
}

func (a *Authorizer) accessToken(raw string, clientID int64) (*token.Token, error) {
	if raw == "" {
		return nil, ErrMissingAccessToken
	}

	tok, err := a.tokens.Decode(raw)
	if err != nil {
		return nil, err
	}
	if tok.Type != token.TypeAccess {
		return nil, ErrWrongTokenType
	}
	if tok.ClientID != clientID {
		return nil, ErrClientMismatch
	}
	if tok.Expired(a.now()) {
		return nil, token.ErrTokenExpired
	}

	return tok, nil
}

func (a *Authorizer) checkDate(value string) error {
	if value == "" {
		return fmt.Errorf("%w: missing %s", ErrMalformedAuthorization, HeaderDate)
	}

	date, err := time.Parse(http.TimeFormat, value)
	if err != nil {
		return fmt.Errorf("%w: bad %s", ErrMalformedAuthorization, HeaderDate)
	}

	diff := a.now().Sub(date)
	if diff < 0 {
		diff = -diff
	}
	if diff > a.skew {
		return ErrStaleRequest
	}

	return nil
}

// parseAuthorization splits "ZAZZ-HMAC-SHA256 {clientId}:{signature}"
func parseAuthorization(header string) (int64, []byte, error) {
	scheme, credentials, ok := strings.Cut(header, " ")
	if !ok || scheme != Scheme {
		return 0, nil, fmt.Errorf("%w: expected %s scheme", ErrMalformedAuthorization, Scheme)
	}

	id, sig, ok := strings.Cut(credentials, ":")
	if !ok {
		return 0, nil, fmt.Errorf("%w: expected clientId:signature", ErrMalformedAuthorization)
	}

	clientID, err := strconv.ParseInt(id, 10, 64)
	if err != nil || clientID <= 0 {
		return 0, nil, fmt.Errorf("%w: bad client id", ErrMalformedAuthorization)
	}

	signature, err := signatureEncoding.DecodeString(sig)
	if err != nil || len(signature) == 0 {
		return 0, nil, fmt.Errorf("%w: bad signature encoding", ErrMalformedAuthorization)
	}

	return clientID, signature, nil
}
