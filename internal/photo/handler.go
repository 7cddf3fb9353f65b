package photo

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
	Description string `json:"description"`
	AlbumID     *int64 `json:"album_id,omitempty"`
}

// Create records a photo
// @Summary      Create photo
// @Tags         photos
// @Accept       json
// @Produce      json
// @Security     ZazzHMAC
// @Param        request body CreateRequest true "Photo"
// @Success      201 {object} Photo
// @Failure      400 {object} httputil.ErrorResponse "Invalid input"
// @Failure      403 {object} httputil.ErrorResponse "Album of another user"
// @Failure      404 {object} httputil.ErrorResponse "Album not found"
// @Router       /api/v1/photos [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	p, err := h.service.Create(r.Context(), apiauth.UserID(r.Context()), req.Description, req.AlbumID)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to create photo")
		return
	}

	httputil.RespondJSON(w, p, http.StatusCreated)
}

// Get returns a photo
// @Summary      Get photo
// @Tags         photos
// @Produce      json
// @Security     ZazzHMAC
// @Param        id path int true "Photo ID"
// @Success      200 {object} Photo
// @Failure      404 {object} httputil.ErrorResponse "Photo not found"
// @Router       /api/v1/photos/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r, "id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to load photo")
		return
	}

	httputil.RespondJSON(w, p, http.StatusOK)
}

// Remove deletes a photo
// @Summary      Remove photo
// @Tags         photos
// @Security     ZazzHMAC
// @Param        id path int true "Photo ID"
// @Success      204
// @Failure      403 {object} httputil.ErrorResponse "Not the uploader"
// @Router       /api/v1/photos/{id} [delete]
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r, "id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	if err := h.service.Remove(r.Context(), id, apiauth.UserID(r.Context())); err != nil {
		httputil.RespondServiceError(w, r, err, "failed to remove photo")
		return
	}

	httputil.RespondNoContent(w)
}
