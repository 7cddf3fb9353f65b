package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zazzlife/zazz-api/internal/apperr"
)

func TestRespondAppError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		handled  bool
		status   int
		code     string
		hideText bool
	}{
		{"not found", apperr.NotFound("post"), true, http.StatusNotFound, CodeNotFound, false},
		{"forbidden", apperr.Forbidden("edit post 3"), true, http.StatusForbidden, CodeForbidden, true},
		{"invalid", apperr.Invalid("photo id is required"), true, http.StatusBadRequest, CodeInvalidArgument, false},
		{"exists", fmt.Errorf("vote: %w", apperr.ErrAlreadyExists), true, http.StatusConflict, CodeAlreadyExists, false},
		{"conflict", apperr.ErrConflict, true, http.StatusConflict, CodeConflict, false},
		{"other", errors.New("db is down"), false, 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handled := RespondAppError(rec, tt.err)

			assert.Equal(t, tt.handled, handled)
			if !tt.handled {
				assert.Equal(t, 0, rec.Body.Len())
				return
			}

			assert.Equal(t, tt.status, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			if tt.hideText {
				assert.Equal(t, "forbidden", body.Error)
			} else {
				assert.Equal(t, tt.err.Error(), body.Error)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Message string `json:"message"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"message":"hi"}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "hi", dst.Message)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"unknown":1}`))
	assert.Error(t, DecodeJSON(req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.Error(t, DecodeJSON(req, &dst))
}

func TestRespondServiceErrorHidesInternalErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondServiceError(rec, req, errors.New("pq: connection refused"), "failed to load post")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "failed to load post", body.Error)
	assert.Equal(t, CodeInternalError, body.Code)

	rec = httptest.NewRecorder()
	RespondServiceError(rec, req, apperr.NotFound("post"), "failed to load post")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQueryInt64(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?before=42&limit=-1&take=x", nil)

	v, err := QueryInt64(req, "before")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	v, err = QueryInt64(req, "missing")
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = QueryInt64(req, "limit")
	assert.EqualError(t, err, "invalid limit")

	_, err = QueryInt64(req, "take")
	assert.Error(t, err)
}
