package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithFieldsAddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, false)

	logger.WithFields(map[string]any{"client_id": 7}).Info("signed request")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "signed request", entry["msg"])
	assert.EqualValues(t, 7, entry["client_id"])
}

func TestRequestLoggerPicksUpAddedFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, false)

	handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		AddFields(r.Context(), map[string]any{"user_id": 42})
		w.WriteHeader(http.StatusForbidden)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/posts/1", nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)

	var completed map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &completed))
	assert.Equal(t, "request completed", completed["msg"])
	assert.Equal(t, "WARN", completed["level"])
	assert.EqualValues(t, http.StatusForbidden, completed["status"])
	assert.EqualValues(t, 42, completed["user_id"])
}

func TestGetLoggerFromContextFallsBack(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.NotNil(t, GetLoggerFromContext(req.Context()))
}
