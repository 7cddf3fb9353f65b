package event

import (
	"net/http"

	"github.com/zazzlife/zazz-api/internal/apiauth"
	"github.com/zazzlife/zazz-api/internal/database"
	"github.com/zazzlife/zazz-api/internal/httputil"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create publishes an event. Known #tags in the description are attached.
// @Summary      Create event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     ZazzHMAC
// @Param        request body Details true "Event details"
// @Success      201 {object} Event
// @Failure      400 {object} httputil.ErrorResponse "Invalid input"
// @Router       /api/v1/events [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req Details
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	e, err := h.service.Create(r.Context(), apiauth.UserID(r.Context()), req)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to create event")
		return
	}

	httputil.RespondJSON(w, e, http.StatusCreated)
}

// Get returns an event with its tags
// @Summary      Get event
// @Tags         events
// @Produce      json
// @Security     ZazzHMAC
// @Param        id path int true "Event ID"
// @Success      200 {object} Event
// @Failure      404 {object} httputil.ErrorResponse "Event not found"
// @Router       /api/v1/events/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r, "id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	e, err := h.service.Get(r.Context(), id)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to load event")
		return
	}

	httputil.RespondJSON(w, e, http.StatusOK)
}

// ListByUser pages through a user's events
// @Summary      List events of a user
// @Tags         events
// @Produce      json
// @Security     ZazzHMAC
// @Param        user_id query int false "Owner of the events (default: current user)"
// @Param        take    query int false "Page size (default 20, max 100)"
// @Param        last_id query int false "Last event id of the previous page"
// @Success      200 {array}  Event
// @Failure      400 {object} httputil.ErrorResponse "Invalid parameter"
// @Router       /api/v1/events [get]
func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := httputil.QueryInt64(r, "user_id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}
	if userID == 0 {
		userID = apiauth.UserID(r.Context())
	}
	take, err := httputil.QueryInt64(r, "take")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}
	if take == 0 {
		take = database.DefaultPageSize
	}
	lastID, err := httputil.QueryInt64(r, "last_id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	events, err := h.service.ListByUser(r.Context(), userID, int(take), lastID)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to list events")
		return
	}

	httputil.RespondJSON(w, events, http.StatusOK)
}

// Update replaces the details of an event
// @Summary      Update event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     ZazzHMAC
// @Param        id      path int     true "Event ID"
// @Param        request body Details true "Event details"
// @Success      200 {object} Event
// @Failure      403 {object} httputil.ErrorResponse "Not the owner"
// @Failure      404 {object} httputil.ErrorResponse "Event not found"
// @Router       /api/v1/events/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
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

	e, err := h.service.Update(r.Context(), id, apiauth.UserID(r.Context()), req)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to update event")
		return
	}

	httputil.RespondJSON(w, e, http.StatusOK)
}

// Delete removes an event
// @Summary      Delete event
// @Tags         events
// @Security     ZazzHMAC
// @Param        id path int true "Event ID"
// @Success      204
// @Failure      403 {object} httputil.ErrorResponse "Not the owner"
// @Failure      404 {object} httputil.ErrorResponse "Event not found"
// @Router       /api/v1/events/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.IDParam(r, "id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id, apiauth.UserID(r.Context())); err != nil {
		httputil.RespondServiceError(w, r, err, "failed to delete event")
		return
	}

	httputil.RespondNoContent(w)
}
