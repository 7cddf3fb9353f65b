package vote

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

// Summary describes the votes on a photo from the caller's point of view
type Summary struct {
	PhotoID int64 `json:"photo_id"`
	Count   int   `json:"count"`
	Voted   bool  `json:"voted"`
}

// Get returns the vote count of a photo and whether the caller voted
// @Summary      Photo votes
// @Tags         votes
// @Produce      json
// @Security     ZazzHMAC
// @Param        id path int true "Photo ID"
// @Success      200 {object} Summary
// @Router       /api/v1/photos/{id}/votes [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	photoID, err := httputil.IDParam(r, "id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	count, err := h.service.Count(r.Context(), photoID)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to count votes")
		return
	}
	voted, err := h.service.Exists(r.Context(), photoID, apiauth.UserID(r.Context()))
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to check vote")
		return
	}

	httputil.RespondJSON(w, Summary{PhotoID: photoID, Count: count, Voted: voted}, http.StatusOK)
}

// Add votes on a photo
// @Summary      Vote on photo
// @Tags         votes
// @Security     ZazzHMAC
// @Param        id path int true "Photo ID"
// @Success      204
// @Failure      404 {object} httputil.ErrorResponse "Photo not found"
// @Failure      409 {object} httputil.ErrorResponse "Already voted"
// @Router       /api/v1/photos/{id}/votes [post]
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	photoID, err := httputil.IDParam(r, "id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	if err := h.service.Add(r.Context(), photoID, apiauth.UserID(r.Context())); err != nil {
		httputil.RespondServiceError(w, r, err, "failed to add vote")
		return
	}

	httputil.RespondNoContent(w)
}

// Remove withdraws the caller's vote on a photo
// @Summary      Remove vote
// @Tags         votes
// @Security     ZazzHMAC
// @Param        id path int true "Photo ID"
// @Success      204
// @Router       /api/v1/photos/{id}/votes [delete]
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	photoID, err := httputil.IDParam(r, "id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	if err := h.service.Remove(r.Context(), photoID, apiauth.UserID(r.Context())); err != nil {
		httputil.RespondServiceError(w, r, err, "failed to remove vote")
		return
	}

	httputil.RespondNoContent(w)
}
