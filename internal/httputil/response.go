package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/logging"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// RespondJSON sends a JSON response with the given status code.
// Logs encoding errors to avoid silent failures.
func RespondJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}

// RespondNoContent sends an empty 204 response
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondError sends a JSON error response with the given message and status code.
func RespondError(w http.ResponseWriter, message string, statusCode int) {
	RespondJSON(w, ErrorResponse{Error: message}, statusCode)
}

// RespondErrorWithCode sends a JSON error response with a machine-readable error code.
func RespondErrorWithCode(w http.ResponseWriter, message string, code string, statusCode int) {
	RespondJSON(w, ErrorResponse{Error: message, Code: code}, statusCode)
}

// RespondAppError maps the shared service error categories to HTTP
// responses. It reports whether err was one of them; callers treat a false
// result as an internal error.
func RespondAppError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		RespondErrorWithCode(w, err.Error(), CodeNotFound, http.StatusNotFound)
	case errors.Is(err, apperr.ErrForbidden):
		// Ownership failures never describe what was checked
		RespondErrorWithCode(w, "forbidden", CodeForbidden, http.StatusForbidden)
	case errors.Is(err, apperr.ErrInvalidArgument):
		RespondErrorWithCode(w, err.Error(), CodeInvalidArgument, http.StatusBadRequest)
	case errors.Is(err, apperr.ErrAlreadyExists):
		RespondErrorWithCode(w, err.Error(), CodeAlreadyExists, http.StatusConflict)
	case errors.Is(err, apperr.ErrConflict):
		RespondErrorWithCode(w, err.Error(), CodeConflict, http.StatusConflict)
	default:
		return false
	}
	return true
}

// RespondServiceError writes the mapped response for an app error, or logs
// err and writes a 500 carrying failure as the message.
func RespondServiceError(w http.ResponseWriter, r *http.Request, err error, failure string) {
	if RespondAppError(w, err) {
		return
	}
	logging.GetLoggerFromContext(r.Context()).Error(failure, "error", err.Error())
	RespondErrorWithCode(w, failure, CodeInternalError, http.StatusInternalServerError)
}

// DecodeJSON decodes the request body into dst, rejecting unknown fields
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty request body")
		}
		return err
	}
	return nil
}

// IDParam parses a positive int64 URL parameter
func IDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// QueryInt64 parses an optional non-negative integer query parameter. A
// missing parameter yields 0.
func QueryInt64(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return v, nil
}
