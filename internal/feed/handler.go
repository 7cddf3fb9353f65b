package feed

import (
	"context"
	"net/http"

	"github.com/zazzlife/zazz-api/internal/apiauth"
	"github.com/zazzlife/zazz-api/internal/httputil"
)

// Lister loads a home feed page
type Lister interface {
	ForUser(ctx context.Context, userID, before int64, limit int) ([]Entry, error)
}

type Handler struct {
	feeds Lister
}

func NewHandler(feeds Lister) *Handler {
	return &Handler{feeds: feeds}
}

// Home returns the current user's feed
// @Summary      Home feed
// @Description  Activity of the current user and the users they follow, newest first
// @Tags         feed
// @Produce      json
// @Security     ZazzHMAC
// @Param        before query int false "Only entries with a lower id"
// @Param        limit  query int false "Page size (default 20, max 100)"
// @Success      200 {array}  Entry
// @Failure      400 {object} httputil.ErrorResponse "Invalid parameter"
// @Router       /api/v1/feed [get]
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	before, err := httputil.QueryInt64(r, "before")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}
	limit, err := httputil.QueryInt64(r, "limit")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	entries, err := h.feeds.ForUser(r.Context(), apiauth.UserID(r.Context()), before, int(limit))
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to load feed")
		return
	}

	httputil.RespondJSON(w, entries, http.StatusOK)
}
