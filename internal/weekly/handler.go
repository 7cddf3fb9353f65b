package weekly

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

// Create adds a weekly to the current club
// @Summary      Create weekly
// @Tags         weeklies
// @Accept       json
// @Produce      json
// @Security     ZazzHMAC
// @Param        request body Details true "Weekly"
// @Success      201 {object} Weekly
// @Failure      400 {object} httputil.ErrorResponse "Invalid input or limit reached"
// @Failure      403 {object} httputil.ErrorResponse "Not a club"
// @Router       /api/v1/weeklies [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req Details
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	wk, err := h.service.Create(r.Context(), apiauth.UserID(r.Context()), req)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to create weekly")
		return
	}

	httputil.RespondJSON(w, wk, http.StatusCreated)
}

// ListByUser returns the weeklies of a club
// @Summary      List weeklies of a club
// @Tags         weeklies
// @Produce      json
// @Security     ZazzHMAC
// @Param        user_id query int false "Club (default: current user)"
// @Success      200 {array}  Weekly
// @Failure      400 {object} httputil.ErrorResponse "Invalid parameter"
// @Router       /api/v1/weeklies [get]
func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	clubID, err := httputil.QueryInt64(r, "user_id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}
	if clubID == 0 {
		clubID = apiauth.UserID(r.Context())
	}

	weeklies, err := h.service.ListByUser(r.Context(), clubID)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to list weeklies")
		return
	}

	httputil.RespondJSON(w, weeklies, http.StatusOK)
}

// Get returns a weekly
// @Summary      Get weekly
// @Tags         weeklies
// @Produce      json
// @Security     ZazzHMAC
// @Param        id path int true "Weekly ID"
// @Success      200 {object} Weekly
// @Failure      404 {object} httputil.ErrorResponse "Weekly not found"
// @Router       /api/v1/weeklies/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r, "id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	wk, err := h.service.Get(r.Context(), id)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to load weekly")
		return
	}

	httputil.RespondJSON(w, wk, http.StatusOK)
}

// Edit replaces the details of a weekly
// @Summary      Edit weekly
// @Tags         weeklies
// @Accept       json
// @Produce      json
// @Security     ZazzHMAC
// @Param        id      path int     true "Weekly ID"
// @Param        request body Details true "Weekly"
// @Success      200 {object} Weekly
// @Failure      403 {object} httputil.ErrorResponse "Not the owner"
// @Failure      404 {object} httputil.ErrorResponse "Weekly not found"
// @Router       /api/v1/weeklies/{id} [put]
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r, "id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	var req Details
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	wk, err := h.service.Edit(r.Context(), id, apiauth.UserID(r.Context()), req)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to edit weekly")
		return
	}

	httputil.RespondJSON(w, wk, http.StatusOK)
}

// Delete removes a weekly
// @Summary      Delete weekly
// @Tags         weeklies
// @Security     ZazzHMAC
// @Param        id path int true "Weekly ID"
// @Success      204
// @Failure      403 {object} httputil.ErrorResponse "Not the owner"
// @Router       /api/v1/weeklies/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r, "id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id, apiauth.UserID(r.Context())); err != nil {
		httputil.RespondServiceError(w, r, err, "failed to delete weekly")
		return
	}

	httputil.RespondNoContent(w)
}
