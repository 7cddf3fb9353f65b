package album

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

type NameRequest struct {
	Name string `json:"name"`
}

// Create adds an empty album
// @Summary      Create album
// @Tags         albums
// @Accept       json
// @Produce      json
// @Security     ZazzHMAC
// @Param        request body NameRequest true "Album"
// @Success      201 {object} Album
// @Failure      400 {object} httputil.ErrorResponse "Invalid input"
// @Router       /api/v1/albums [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req NameRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	a, err := h.service.Create(r.Context(), apiauth.UserID(r.Context()), req.Name)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to create album")
		return
	}

	httputil.RespondJSON(w, a, http.StatusCreated)
}

// ListByUser pages through a user's albums
// @Summary      List albums of a user
// @Tags         albums
// @Produce      json
// @Security     ZazzHMAC
// @Param        user_id query int false "Owner of the albums (default: current user)"
// @Param        last_id query int false "Last album id of the previous page"
// @Param        limit   query int false "Page size (default 20, max 100)"
// @Success      200 {array}  Album
// @Failure      400 {object} httputil.ErrorResponse "Invalid parameter"
// @Router       /api/v1/albums [get]
func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := httputil.QueryInt64(r, "user_id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}
	if userID == 0 {
		userID = apiauth.UserID(r.Context())
	}
	lastID, err := httputil.QueryInt64(r, "last_id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}
	limit, err := httputil.QueryInt64(r, "limit")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	albums, err := h.service.ListByUser(r.Context(), userID, lastID, int(limit))
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to list albums")
		return
	}

	httputil.RespondJSON(w, albums, http.StatusOK)
}

// Get returns an album with its photo ids
// @Summary      Get album
// @Tags         albums
// @Produce      json
// @Security     ZazzHMAC
// @Param        id path int true "Album ID"
// @Success      200 {object} Album
// @Failure      404 {object} httputil.ErrorResponse "Album not found"
// @Router       /api/v1/albums/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r, "id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	a, err := h.service.Get(r.Context(), id)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to load album")
		return
	}

	httputil.RespondJSON(w, a, http.StatusOK)
}

// Rename changes an album's name
// @Summary      Rename album
// @Tags         albums
// @Accept       json
// @Produce      json
// @Security     ZazzHMAC
// @Param        id      path int         true "Album ID"
// @Param        request body NameRequest true "New name"
// @Success      200 {object} Album
// @Failure      403 {object} httputil.ErrorResponse "Not the owner"
// @Failure      404 {object} httputil.ErrorResponse "Album not found"
// @Router       /api/v1/albums/{id} [put]
func (h *Handler) Rename(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r, "id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	var req NameRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	a, err := h.service.Rename(r.Context(), id, apiauth.UserID(r.Context()), req.Name)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to rename album")
		return
	}

	httputil.RespondJSON(w, a, http.StatusOK)
}

// Delete removes an album and its photos
// @Summary      Delete album
// @Tags         albums
// @Security     ZazzHMAC
// @Param        id path int true "Album ID"
// @Success      204
// @Failure      403 {object} httputil.ErrorResponse "Not the owner"
// @Router       /api/v1/albums/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r, "id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id, apiauth.UserID(r.Context())); err != nil {
		httputil.RespondServiceError(w, r, err, "failed to delete album")
		return
	}

	httputil.RespondNoContent(w)
}
