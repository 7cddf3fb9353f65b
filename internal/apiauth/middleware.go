package apiauth

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/zazzlife/zazz-api/internal/httputil"
	"github.com/zazzlife/zazz-api/internal/logging"
	"github.com/zazzlife/zazz-api/internal/token"
)

type contextKey struct{}

// Middleware enforces a Policy on chi routes
type Middleware struct {
	authorizer   *Authorizer
	maxBodyBytes int64
}

// NewMiddleware creates the request verification middleware. Bodies larger
// than maxBodyBytes are rejected before verification.
func NewMiddleware(authorizer *Authorizer, maxBodyBytes int64) *Middleware {
	return &Middleware{authorizer: authorizer, maxBodyBytes: maxBodyBytes}
}

// Require returns a middleware that rejects requests failing policy.
// The handler only runs for authorized requests.
func (m *Middleware) Require(policy Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := logging.GetLoggerFromContext(r.Context())

			body, err := m.readBody(w, r)
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					httputil.RespondErrorWithCode(w, "request body too large", httputil.CodeRequestTooLarge, http.StatusRequestEntityTooLarge)
					return
				}
				logger.Warn("failed to read request body", "error", err)
				httputil.RespondErrorWithCode(w, "unauthorized", httputil.CodeUnauthorized, http.StatusUnauthorized)
				return
			}

			identity, err := m.authorizer.Authorize(r.Context(), FromHTTP(r, body), policy)
			if err != nil {
				logger.Warn("request rejected", "policy", policy.String(), "reason", err.Error())

				if errors.Is(err, token.ErrTokenExpired) {
					httputil.RespondErrorWithCode(w, "token has expired", httputil.CodeTokenExpired, http.StatusUnauthorized)
					return
				}
				httputil.RespondErrorWithCode(w, "unauthorized", httputil.CodeUnauthorized, http.StatusUnauthorized)
				return
			}

			fields := map[string]any{"client_id": identity.ClientID}
			if identity.UserID != 0 {
				fields["user_id"] = identity.UserID
			}
			logging.AddFields(r.Context(), fields)

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// readBody buffers the body so it can be hashed and still read by the handler
func (m *Middleware) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, m.maxBodyBytes))
	if err != nil {
		return nil, err
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	return body, nil
}

// WithIdentity stores identity in ctx
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, identity)
}

// IdentityFromContext returns the caller stored by Require
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(contextKey{}).(*Identity)
	return identity, ok && identity != nil
}

// UserID returns the acting user id, or zero when the request carries none
func UserID(ctx context.Context) int64 {
	if identity, ok := IdentityFromContext(ctx); ok {
		return identity.UserID
	}
	return 0
}
