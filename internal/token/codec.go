package token

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// SecretSize is the required length of the shared signing secret
const SecretSize = 64

const (
	headerType      = "JWT"
	headerAlgorithm = "HS256"
)

// Unpadded URL-safe alphabet. Strict mode rejects non-canonical encodings
// so that one signature has exactly one textual form.
var segmentEncoding = base64.RawURLEncoding.Strict()

type header struct {
	Type      string `json:"typ"`
	Algorithm string `json:"alg"`
}

// encodedHeader never changes, so it is computed once
var encodedHeader = func() string {
	b, err := json.Marshal(header{Type: headerType, Algorithm: headerAlgorithm})
	if err != nil {
		panic(err)
	}
	return segmentEncoding.EncodeToString(b)
}()

// Codec encodes and decodes tokens with a fixed secret.
// It holds no mutable state and is safe for concurrent use.
type Codec struct {
	secret   []byte
	issuer   string
	audience string
	now      func() time.Time
}

// Option configures a Codec
type Option func(*Codec)

// WithIssuer sets the value written to the iss claim
func WithIssuer(issuer string) Option {
	return func(c *Codec) { c.issuer = issuer }
}

// WithAudience sets the value written to the aud claim
func WithAudience(audience string) Option {
	return func(c *Codec) { c.audience = audience }
}

// WithClock overrides the clock used to stamp the issued-at claim
func WithClock(now func() time.Time) Option {
	return func(c *Codec) { c.now = now }
}

// NewCodec creates a codec that signs with secret, which must be SecretSize bytes
func NewCodec(secret []byte, opts ...Option) (*Codec, error) {
	if len(secret) != SecretSize {
		return nil, fmt.Errorf("%w: must be exactly %d bytes, got %d", ErrInvalidSecret, SecretSize, len(secret))
	}

	c := &Codec{
		secret:   bytes.Clone(secret),
		issuer:   "https://www.zazzlife.com",
		audience: "Zazz clients",
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Encode serializes and signs t. The token passed in is not modified;
// encoding the same claims at the same second yields the same string.
func (c *Codec) Encode(t Token) (string, error) {
	claims := c.buildClaims(&t)

	// encoding/json writes map keys in sorted order
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	signingInput := encodedHeader + "." + segmentEncoding.EncodeToString(claimsJSON)

	return signingInput + "." + segmentEncoding.EncodeToString(c.sign(signingInput)), nil
}

func (c *Codec) buildClaims(t *Token) map[string]any {
	claims := make(map[string]any, len(t.Claims)+10)
	for k, v := range t.Claims {
		claims[k] = v
	}

	claims[ClaimIssuer] = c.issuer
	claims[ClaimAudience] = c.audience
	claims[ClaimIssuedAt] = c.now().UTC().Unix()
	claims[ClaimTokenType] = string(t.Type)
	claims[ClaimClientID] = t.ClientID
	claims[ClaimUserID] = t.UserID

	// Optional reserved claims come only from the typed fields
	delete(claims, ClaimExpiration)
	delete(claims, ClaimTokenID)
	delete(claims, ClaimVerification)
	delete(claims, ClaimScopes)

	if t.ExpiresAt != nil {
		claims[ClaimExpiration] = t.ExpiresAt.Unix()
	}
	if t.ID != nil {
		claims[ClaimTokenID] = *t.ID
	}
	if strings.TrimSpace(t.VerificationCode) != "" {
		claims[ClaimVerification] = t.VerificationCode
	}
	if len(t.Scopes) > 0 {
		claims[ClaimScopes] = strings.Join(t.Scopes, ",")
	}

	return claims
}

// Decode verifies the signature of s and returns its claims.
// It does not check expiration; see Token.Expired.
func (c *Codec) Decode(s string) (*Token, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: token is empty", ErrMalformedToken)
	}

	// Everything after the second dot is the signature, so any change to
	// the signed text surfaces as a signature failure
	segments := strings.SplitN(s, ".", 3)
	if len(segments) < 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformedToken, len(segments))
	}

	signature, err := segmentEncoding.DecodeString(segments[2])
	if err != nil {
		return nil, ErrInvalidSignature
	}
	if !hmac.Equal(signature, c.sign(segments[0]+"."+segments[1])) {
		return nil, ErrInvalidSignature
	}

	headerJSON, err := segmentEncoding.DecodeString(segments[0])
	if err != nil {
		return nil, fmt.Errorf("%w: header is not base64url", ErrMalformedToken)
	}
	var h header
	if err := json.Unmarshal(headerJSON, &h); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformedToken, err)
	}
	if h.Algorithm != headerAlgorithm {
		return nil, fmt.Errorf("%w: unsupported algorithm %q", ErrMalformedToken, h.Algorithm)
	}

	claimsJSON, err := segmentEncoding.DecodeString(segments[1])
	if err != nil {
		return nil, fmt.Errorf("%w: claims are not base64url", ErrMalformedToken)
	}
	claims, err := decodeClaims(claimsJSON)
	if err != nil {
		return nil, err
	}

	return hydrate(claims), nil
}

func (c *Codec) sign(signingInput string) []byte {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(signingInput))
	return mac.Sum(nil)
}

func decodeClaims(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	// Numbers stay json.Number so integer claims are read exactly
	dec.UseNumber()

	var claims map[string]any
	if err := dec.Decode(&claims); err != nil {
		return nil, fmt.Errorf("%w: claims: %v", ErrMalformedToken, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after claims", ErrMalformedToken)
	}
	if claims == nil {
		return nil, fmt.Errorf("%w: claims must be an object", ErrMalformedToken)
	}

	return claims, nil
}

// hydrate extracts typed fields. Missing claims and claims of an
// unexpected JSON type leave the field unset.
func hydrate(claims map[string]any) *Token {
	t := &Token{Claims: claims}

	if v, ok := timeClaim(claims[ClaimIssuedAt]); ok {
		t.IssuedAt = v
	}
	if v, ok := timeClaim(claims[ClaimExpiration]); ok {
		t.ExpiresAt = &v
	}
	if v, ok := intClaim(claims[ClaimTokenID]); ok {
		t.ID = &v
	}
	if v, ok := claims[ClaimTokenType].(string); ok {
		t.Type = Type(v)
	}
	if v, ok := claims[ClaimVerification].(string); ok {
		t.VerificationCode = v
	}
	if v, ok := claims[ClaimScopes].(string); ok {
		t.Scopes = splitScopes(v)
	}
	if v, ok := intClaim(claims[ClaimClientID]); ok {
		t.ClientID = v
	}
	if v, ok := intClaim(claims[ClaimUserID]); ok {
		t.UserID = v
	}
	if v, ok := claims[ClaimIssuer].(string); ok {
		t.Issuer = v
	}
	if v, ok := claims[ClaimAudience].(string); ok {
		t.Audience = v
	}

	return t
}

// timeClaim accepts integer unix seconds only
func timeClaim(v any) (time.Time, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return time.Time{}, false
	}
	secs, err := n.Int64()
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(secs, 0).UTC(), true
}

// intClaim accepts JSON integers and decimal strings
func intClaim(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}

func splitScopes(s string) []string {
	var scopes []string
	for _, scope := range strings.Split(s, ",") {
		if scope != "" {
			scopes = append(scopes, scope)
		}
	}
	return scopes
}
