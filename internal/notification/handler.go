package notification

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

// UnreadCountResponse carries the number of unread notifications
type UnreadCountResponse struct {
	Count int `json:"count"`
}

// List returns the current user's notifications
// @Summary      List notifications
// @Tags         notifications
// @Produce      json
// @Security     ZazzHMAC
// @Param        before query int false "Only notifications with a lower id"
// @Param        limit  query int false "Page size (default 20, max 100)"
// @Success      200 {array}  Notification
// @Failure      400 {object} httputil.ErrorResponse "Invalid parameter"
// @Router       /api/v1/notifications [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
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

	items, err := h.service.List(r.Context(), apiauth.UserID(r.Context()), before, int(limit))
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to list notifications")
		return
	}

	httputil.RespondJSON(w, items, http.StatusOK)
}

// UnreadCount returns how many notifications are unread
// @Summary      Unread notification count
// @Tags         notifications
// @Produce      json
// @Security     ZazzHMAC
// @Success      200 {object} UnreadCountResponse
// @Router       /api/v1/notifications/unread-count [get]
func (h *Handler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.UnreadCount(r.Context(), apiauth.UserID(r.Context()))
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to count notifications")
		return
	}

	httputil.RespondJSON(w, UnreadCountResponse{Count: count}, http.StatusOK)
}

// MarkAllRead marks every notification of the current user as read
// @Summary      Mark notifications read
// @Tags         notifications
// @Security     ZazzHMAC
// @Success      204
// @Router       /api/v1/notifications/read [post]
func (h *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.service.MarkAllRead(r.Context(), apiauth.UserID(r.Context())); err != nil {
		httputil.RespondServiceError(w, r, err, "failed to mark notifications as read")
		return
	}

	httputil.RespondNoContent(w)
}

// Remove deletes one of the current user's notifications
// @Summary      Remove notification
// @Tags         notifications
// @Security     ZazzHMAC
// @Param        id path int true "Notification ID"
// @Success      204
// @Failure      403 {object} httputil.ErrorResponse "Not the recipient"
// @Failure      404 {object} httputil.ErrorResponse "Notification not found"
// @Router       /api/v1/notifications/{id} [delete]
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r, "id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	if err := h.service.Remove(r.Context(), id, apiauth.UserID(r.Context())); err != nil {
		httputil.RespondServiceError(w, r, err, "failed to remove notification")
		return
	}

	httputil.RespondNoContent(w)
}
