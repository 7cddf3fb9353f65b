package apiauth

import "errors"

var (
	ErrMalformedAuthorization = errors.New("malformed authorization")
	ErrStaleRequest           = errors.New("request date outside allowed skew")
	ErrUnauthorizedClient     = errors.New("unauthorized client")
	ErrInvalidSignature       = errors.New("invalid request signature")
	ErrReplayedRequest        = errors.New("request nonce already used")
	ErrMissingAccessToken     = errors.New("missing access token")
	ErrWrongTokenType         = errors.New("token is not an access token")
	ErrClientMismatch         = errors.New("token issued to another client")
)
