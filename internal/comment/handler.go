package comment

import (
	"net/http"

	"github.com/zazzlife/zazz-api/internal/apiauth"
	"github.com/zazzlife/zazz-api/internal/httputil"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type CreateRequest struct {
	PhotoID *int64 `json:"photo_id,omitempty"`
	PostID  *int64 `json:"post_id,omitempty"`
	EventID *int64 `json:"event_id,omitempty"`
	Message string `json:"message"`
}

type EditRequest struct {
	Message string `json:"message"`
}

// Create adds a comment to a photo, post or event
// @Summary      Create comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     ZazzHMAC
// @Param        request body CreateRequest true "Comment with exactly one target"
// @Success      201 {object} Comment
// @Failure      400 {object} httputil.ErrorResponse "Invalid input"
// @Failure      404 {object} httputil.ErrorResponse "Target not found"
// @Router       /api/v1/comments [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	c, err := h.service.Create(r.Context(), apiauth.UserID(r.Context()), NewComment{
		PhotoID: req.PhotoID,
		PostID:  req.PostID,
		EventID: req.EventID,
		Message: req.Message,
	})
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to create comment")
		return
	}

	httputil.RespondJSON(w, c, http.StatusCreated)
}

// ListForPhoto returns the comments on a photo
// @Summary      Photo comments
// @Tags         comments
// @Produce      json
// @Security     ZazzHMAC
// @Param        id    path  int true  "Photo ID"
// @Param        after query int false "Only comments with a higher id"
// @Param        limit query int false "Page size (default 20, max 100)"
// @Success      200 {array} Comment
// @Router       /api/v1/photos/{id}/comments [get]
func (h *Handler) ListForPhoto(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, TargetPhoto)
}

// ListForPost returns the comments on a post
// @Summary      Post comments
// @Tags         comments
// @Produce      json
// @Security     ZazzHMAC
// @Param        id    path  int true  "Post ID"
// @Param        after query int false "Only comments with a higher id"
// @Param        limit query int false "Page size (default 20, max 100)"
// @Success      200 {array} Comment
// @Router       /api/v1/posts/{id}/comments [get]
func (h *Handler) ListForPost(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, TargetPost)
}

// ListForEvent returns the comments on an event
// @Summary      Event comments
// @Tags         comments
// @Produce      json
// @Security     ZazzHMAC
// @Param        id    path  int true  "Event ID"
// @Param        after query int false "Only comments with a higher id"
// @Param        limit query int false "Page size (default 20, max 100)"
// @Success      200 {array} Comment
// @Router       /api/v1/events/{id}/comments [get]
func (h *Handler) ListForEvent(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, TargetEvent)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, target Target) {
	id, err := httputil.IDParam(r, "id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}
	after, err := httputil.QueryInt64(r, "after")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}
	limit, err := httputil.QueryInt64(r, "limit")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	comments, err := h.service.List(r.Context(), target, id, after, int(limit))
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to list comments")
		return
	}

	httputil.RespondJSON(w, comments, http.StatusOK)
}

// Edit changes the message of a comment
// @Summary      Edit comment
// @Tags         comments
// @Accept       json
// @Security     ZazzHMAC
// @Param        id      path int         true "Comment ID"
// @Param        request body EditRequest true "New message"
// @Success      204
// @Failure      403 {object} httputil.ErrorResponse "Not the author"
// @Router       /api/v1/comments/{id} [put]
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r, "id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	var req EditRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	if err := h.service.Edit(r.Context(), id, apiauth.UserID(r.Context()), req.Message); err != nil {
		httputil.RespondServiceError(w, r, err, "failed to edit comment")
		return
	}

	httputil.RespondNoContent(w)
}

// Remove deletes a comment
// @Summary      Remove comment
// @Tags         comments
// @Security     ZazzHMAC
// @Param        id path int true "Comment ID"
// @Success      204
// @Failure      403 {object} httputil.ErrorResponse "Not the author"
// @Router       /api/v1/comments/{id} [delete]
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r, "id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	if err := h.service.Remove(r.Context(), id, apiauth.UserID(r.Context())); err != nil {
		httputil.RespondServiceError(w, r, err, "failed to remove comment")
		return
	}

	httputil.RespondNoContent(w)
}
