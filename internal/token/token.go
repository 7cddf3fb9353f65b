// Package token implements the signed bearer token used by the API.
//
// A token is three base64url segments (no padding) joined with dots:
//
//	base64url(header-json) "." base64url(claims-json) "." base64url(HMAC-SHA256(header.claims, secret))
//
// The header is always {"typ":"JWT","alg":"HS256"}, so tokens can be checked
// by any HS256 JWT implementation that holds the same secret.
package token

import (
	"errors"
	"time"
)

var (
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrTokenExpired     = errors.New("token has expired")
	ErrInvalidSecret    = errors.New("invalid token secret")
)

// Type discriminates what a token may be used for
type Type string

const (
	TypeAccess  Type = "accessToken"
	TypeRefresh Type = "refreshToken"
)

// Claim keys written by the codec
const (
	ClaimIssuer       = "iss"
	ClaimAudience     = "aud"
	ClaimIssuedAt     = "nbf"
	ClaimExpiration   = "exp"
	ClaimTokenID      = "id"
	ClaimTokenType    = "tokenType"
	ClaimVerification = "verify"
	ClaimScopes       = "scopes"
	ClaimClientID     = "client"
	ClaimUserID       = "usr"
)

// Token is a decoded or to-be-encoded set of claims
type Token struct {
	// IssuedAt is stamped by the codec on encode and read back on decode
	IssuedAt time.Time
	// ExpiresAt is optional; nil means the token never expires
	ExpiresAt *time.Time
	// ID is optional; refresh tokens carry the id of their stored record
	ID               *int64
	Type             Type
	VerificationCode string
	Scopes           []string
	ClientID         int64
	UserID           int64

	// Issuer and Audience are filled on decode
	Issuer   string
	Audience string

	// Claims holds extra claims. On decode it holds every claim of the token.
	// Reserved keys are always overwritten by the typed fields on encode.
	Claims map[string]any
}

// Expired reports whether the token carries an expiration at or before now
func (t *Token) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && !t.ExpiresAt.After(now)
}

// HasScope reports whether scope was granted to the token
func (t *Token) HasScope(scope string) bool {
	for _, s := range t.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// ExpiresIn returns a pointer to now+d truncated to seconds, ready for ExpiresAt
func ExpiresIn(now time.Time, d time.Duration) *time.Time {
	exp := now.Add(d).UTC().Truncate(time.Second)
	return &exp
}

// TokenID returns a pointer to id, ready for Token.ID
func TokenID(id int64) *int64 {
	return &id
}
