package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zazzlife/zazz-api/internal/apiauth"
	"github.com/zazzlife/zazz-api/internal/httputil"
	"github.com/zazzlife/zazz-api/internal/logging"
)

// Handler serves user profile endpoints
type Handler struct {
	users     Finder
	directory *Directory
}

func NewHandler(users Finder, directory *Directory) *Handler {
	return &Handler{users: users, directory: directory}
}

// Me returns the account of the authenticated user
// @Summary      Current user
// @Description  Return the account of the user the access token was issued to
// @Tags         users
// @Produce      json
// @Security     ZazzHMAC
// @Success      200 {object} User
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Failure      404 {object} httputil.ErrorResponse "User not found"
// @Router       /api/v1/users/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	u, err := h.users.GetByID(r.Context(), apiauth.UserID(r.Context()))
	if err != nil {
		if httputil.RespondAppError(w, err) {
			return
		}
		logger.Error("failed to load current user", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to load user", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, u, http.StatusOK)
}

// GetByUsername returns the public profile of a user
// @Summary      User profile
// @Tags         users
// @Produce      json
// @Security     ZazzHMAC
// @Param        username path string true "Username"
// @Success      200 {object} Profile
// @Failure      404 {object} httputil.ErrorResponse "User not found"
// @Router       /api/v1/users/{username} [get]
func (h *Handler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, err := h.directory.IDByUsername(r.Context(), chi.URLParam(r, "username"))
	if err == nil {
		var u *User
		if u, err = h.users.GetByID(r.Context(), id); err == nil {
			httputil.RespondJSON(w, u.Profile(), http.StatusOK)
			return
		}
	}

	if httputil.RespondAppError(w, err) {
		return
	}
	logger.Error("failed to load user profile", "error", err.Error())
	httputil.RespondErrorWithCode(w, "failed to load user", httputil.CodeInternalError, http.StatusInternalServerError)
}
