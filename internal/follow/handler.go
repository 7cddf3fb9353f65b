package follow

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

// Follow makes the caller follow a user
// @Summary      Follow user
// @Tags         follows
// @Security     ZazzHMAC
// @Param        id path int true "User ID"
// @Success      204
// @Failure      400 {object} httputil.ErrorResponse "Cannot follow yourself"
// @Failure      404 {object} httputil.ErrorResponse "User not found"
// @Router       /api/v1/users/{id}/follow [post]
func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r, "id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	if err := h.service.Follow(r.Context(), apiauth.UserID(r.Context()), id); err != nil {
		httputil.RespondServiceError(w, r, err, "failed to follow user")
		return
	}

	httputil.RespondNoContent(w)
}

// Unfollow stops the caller following a user
// @Summary      Unfollow user
// @Tags         follows
// @Security     ZazzHMAC
// @Param        id path int true "User ID"
// @Success      204
// @Router       /api/v1/users/{id}/follow [delete]
func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r, "id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	if err := h.service.Unfollow(r.Context(), apiauth.UserID(r.Context()), id); err != nil {
		httputil.RespondServiceError(w, r, err, "failed to unfollow user")
		return
	}

	httputil.RespondNoContent(w)
}

// Followers lists who follows a user
// @Summary      Followers
// @Tags         follows
// @Produce      json
// @Security     ZazzHMAC
// @Param        id    path  int true  "User ID"
// @Param        limit query int false "Page size (default 20, max 100)"
// @Success      200 {array} Follow
// @Router       /api/v1/users/{id}/followers [get]
func (h *Handler) Followers(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r, "id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}
	limit, err := httputil.QueryInt64(r, "limit")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	followers, err := h.service.Followers(r.Context(), id, int(limit))
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to list followers")
		return
	}

	httputil.RespondJSON(w, followers, http.StatusOK)
}
