package apiauth

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Signer signs outgoing requests on behalf of one client
type Signer struct {
	clientID int64
	key      []byte
	now      func() time.Time
	nonce    func() string
}

// NewSigner creates a signer for clientID using its signing key
func NewSigner(clientID int64, key []byte) *Signer {
	return &Signer{
		clientID: clientID,
		key:      bytes.Clone(key),
		now:      time.Now,
		nonce:    func() string { return uuid.NewString() },
	}
}

// SignRequest sets the date, nonce, authorization and optional access token
// headers on r. The body is read and replaced so r can still be sent.
func (s *Signer) SignRequest(r *http.Request, accessToken string) error {
	var body []byte
	if r.Body != nil {
		var err error
		body, err = io.ReadAll(r.Body)
		if err != nil {
			return fmt.Errorf("failed to read request body: %w", err)
		}
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))
		r.ContentLength = int64(len(body))
	}

	r.Header.Set(HeaderDate, s.now().UTC().Format(http.TimeFormat))
	r.Header.Set(HeaderNonce, s.nonce())
	if accessToken != "" {
		r.Header.Set(HeaderAccessToken, accessToken)
	} else {
		r.Header.Del(HeaderAccessToken)
	}

	signature := Sign(s.key, FromHTTP(r, body))
	r.Header.Set(HeaderAuthorization, FormatAuthorization(s.clientID, signature))

	return nil
}

// FormatAuthorization renders the Authorization header value
func FormatAuthorization(clientID int64, signature string) string {
	return Scheme + " " + strconv.FormatInt(clientID, 10) + ":" + signature
}
