package post

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

// CreateRequest is the body of a new post. ToUserID targets another
// user's wall.
type CreateRequest struct {
	ToUserID *int64 `json:"to_user_id,omitempty"`
	Message  string `json:"message"`
}

type EditRequest struct {
	Message string `json:"message"`
}

// Create publishes a post
// @Summary      Create post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     ZazzHMAC
// @Param        request body CreateRequest true "Post"
// @Success      201 {object} Post
// @Failure      400 {object} httputil.ErrorResponse "Invalid input"
// @Router       /api/v1/posts [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	p, err := h.service.Create(r.Context(), apiauth.UserID(r.Context()), req.ToUserID, req.Message)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to create post")
		return
	}

	httputil.RespondJSON(w, p, http.StatusCreated)
}

// Get returns a post
// @Summary      Get post
// @Tags         posts
// @Produce      json
// @Security     ZazzHMAC
// @Param        id path int true "Post ID"
// @Success      200 {object} Post
// @Failure      404 {object} httputil.ErrorResponse "Post not found"
// @Router       /api/v1/posts/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r, "id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to load post")
		return
	}

	httputil.RespondJSON(w, p, http.StatusOK)
}

// Edit changes the message of a post
// @Summary      Edit post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     ZazzHMAC
// @Param        id      path int         true "Post ID"
// @Param        request body EditRequest true "New message"
// @Success      200 {object} Post
// @Failure      403 {object} httputil.ErrorResponse "Not the author"
// @Failure      404 {object} httputil.ErrorResponse "Post not found"
// @Router       /api/v1/posts/{id} [put]
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

	p, err := h.service.Edit(r.Context(), id, apiauth.UserID(r.Context()), req.Message)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to edit post")
		return
	}

	httputil.RespondJSON(w, p, http.StatusOK)
}

// Remove deletes a post
// @Summary      Remove post
// @Tags         posts
// @Security     ZazzHMAC
// @Param        id path int true "Post ID"
// @Success      204
// @Failure      403 {object} httputil.ErrorResponse "Not the author"
// @Router       /api/v1/posts/{id} [delete]
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r, "id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	if err := h.service.Remove(r.Context(), id, apiauth.UserID(r.Context())); err != nil {
		httputil.RespondServiceError(w, r, err, "failed to remove post")
		return
	}

	httputil.RespondNoContent(w)
}
