package reward

import (
	"context"
	"net/http"

	"github.com/zazzlife/zazz-api/internal/apiauth"
	"github.com/zazzlife/zazz-api/internal/httputil"
)

// Handler serves the club reward endpoints. Club accounts manage scenarios
// and rewards; members redeem.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type ScenarioRequest struct {
	Scenario Scenario `json:"scenario"`
	Amount   int64    `json:"amount"`
}

type AmountRequest struct {
	Amount int64 `json:"amount"`
}

type AwardRequest struct {
	UserID   int64    `json:"user_id"`
	Scenario Scenario `json:"scenario"`
}

type AwardResponse struct {
	Awarded int64 `json:"awarded"`
}

type PointsResponse struct {
	ClubID int64 `json:"club_id"`
	Points int64 `json:"points"`
}

// ListScenarios returns a club's point scenarios
// @Summary      Club reward scenarios
// @Tags         rewards
// @Produce      json
// @Security     ZazzHMAC
// @Param        id path int true "Club ID"
// @Success      200 {array} ScenarioRule
// @Router       /api/v1/clubs/{id}/scenarios [get]
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	clubID, ok := pathID(w, r)
	if !ok {
		return
	}

	rules, err := h.service.Scenarios(r.Context(), clubID)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to list scenarios")
		return
	}

	httputil.RespondJSON(w, rules, http.StatusOK)
}

// AddScenario sets the points the calling club grants for a scenario
// @Summary      Add reward scenario
// @Tags         rewards
// @Accept       json
// @Produce      json
// @Security     ZazzHMAC
// @Param        request body ScenarioRequest true "Scenario"
// @Success      201 {object} ScenarioRule
// @Failure      403 {object} httputil.ErrorResponse "Not a club"
// @Failure      409 {object} httputil.ErrorResponse "Scenario already set"
// @Router       /api/v1/rewards/scenarios [post]
func (h *Handler) AddScenario(w http.ResponseWriter, r *http.Request) {
	var req ScenarioRequest
	if !decode(w, r, &req) {
		return
	}

	rule, err := h.service.AddScenario(r.Context(), apiauth.UserID(r.Context()), req.Scenario, req.Amount)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to add scenario")
		return
	}

	httputil.RespondJSON(w, rule, http.StatusCreated)
}

// ChangeScenarioAmount updates the points of a scenario
// @Summary      Change scenario amount
// @Tags         rewards
// @Accept       json
// @Security     ZazzHMAC
// @Param        id      path int           true "Scenario ID"
// @Param        request body AmountRequest true "Amount"
// @Success      204
// @Failure      403 {object} httputil.ErrorResponse "Not the owning club"
// @Failure      404 {object} httputil.ErrorResponse "Scenario not found"
// @Router       /api/v1/rewards/scenarios/{id} [put]
func (h *Handler) ChangeScenarioAmount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req AmountRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.service.ChangeScenarioAmount(r.Context(), id, apiauth.UserID(r.Context()), req.Amount); err != nil {
		httputil.RespondServiceError(w, r, err, "failed to change scenario")
		return
	}

	httputil.RespondNoContent(w)
}

// RemoveScenario deletes a scenario
// @Summary      Remove scenario
// @Tags         rewards
// @Security     ZazzHMAC
// @Param        id path int true "Scenario ID"
// @Success      204
// @Failure      403 {object} httputil.ErrorResponse "Not the owning club"
// @Router       /api/v1/rewards/scenarios/{id} [delete]
func (h *Handler) RemoveScenario(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.RemoveScenario(r.Context(), id, apiauth.UserID(r.Context())); err != nil {
		httputil.RespondServiceError(w, r, err, "failed to remove scenario")
		return
	}

	httputil.RespondNoContent(w)
}

// ListRewards returns the enabled rewards of a club
// @Summary      Club rewards
// @Tags         rewards
// @Produce      json
// @Security     ZazzHMAC
// @Param        id path int true "Club ID"
// @Success      200 {array} Reward
// @Router       /api/v1/clubs/{id}/rewards [get]
func (h *Handler) ListRewards(w http.ResponseWriter, r *http.Request) {
	clubID, ok := pathID(w, r)
	if !ok {
		return
	}

	rewards, err := h.service.Rewards(r.Context(), clubID)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to list rewards")
		return
	}

	httputil.RespondJSON(w, rewards, http.StatusOK)
}

// AddReward offers a new reward from the calling club
// @Summary      Add reward
// @Tags         rewards
// @Accept       json
// @Produce      json
// @Security     ZazzHMAC
// @Param        request body RewardInput true "Reward"
// @Success      201 {object} Reward
// @Failure      400 {object} httputil.ErrorResponse "Invalid input"
// @Failure      403 {object} httputil.ErrorResponse "Not a club"
// @Router       /api/v1/rewards [post]
func (h *Handler) AddReward(w http.ResponseWriter, r *http.Request) {
	var req RewardInput
	if !decode(w, r, &req) {
		return
	}

	rw, err := h.service.AddReward(r.Context(), apiauth.UserID(r.Context()), req)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to add reward")
		return
	}

	httputil.RespondJSON(w, rw, http.StatusCreated)
}

// UpdateReward edits a reward
// @Summary      Update reward
// @Tags         rewards
// @Accept       json
// @Produce      json
// @Security     ZazzHMAC
// @Param        id      path int         true "Reward ID"
// @Param        request body RewardInput true "Reward"
// @Success      200 {object} Reward
// @Failure      403 {object} httputil.ErrorResponse "Not the owning club"
// @Failure      404 {object} httputil.ErrorResponse "Reward not found"
// @Router       /api/v1/rewards/{id} [put]
func (h *Handler) UpdateReward(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req RewardInput
	if !decode(w, r, &req) {
		return
	}

	rw, err := h.service.UpdateReward(r.Context(), id, apiauth.UserID(r.Context()), req)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to update reward")
		return
	}

	httputil.RespondJSON(w, rw, http.StatusOK)
}

// RemoveReward withdraws a reward
// @Summary      Remove reward
// @Tags         rewards
// @Security     ZazzHMAC
// @Param        id path int true "Reward ID"
// @Success      204
// @Failure      403 {object} httputil.ErrorResponse "Not the owning club"
// @Router       /api/v1/rewards/{id} [delete]
func (h *Handler) RemoveReward(w http.ResponseWriter, r *http.Request) {
	h.rewardAction(w, r, h.service.RemoveReward, "failed to remove reward")
}

// EnableReward makes a reward redeemable again
// @Summary      Enable reward
// @Tags         rewards
// @Security     ZazzHMAC
// @Param        id path int true "Reward ID"
// @Success      204
// @Router       /api/v1/rewards/{id}/enable [post]
func (h *Handler) EnableReward(w http.ResponseWriter, r *http.Request) {
	h.rewardAction(w, r, h.service.EnableReward, "failed to enable reward")
}

// DisableReward stops a reward being redeemed
// @Summary      Disable reward
// @Tags         rewards
// @Security     ZazzHMAC
// @Param        id path int true "Reward ID"
// @Success      204
// @Router       /api/v1/rewards/{id}/disable [post]
func (h *Handler) DisableReward(w http.ResponseWriter, r *http.Request) {
	h.rewardAction(w, r, h.service.DisableReward, "failed to disable reward")
}

// Redeem spends the caller's points on a reward
// @Summary      Redeem reward
// @Tags         rewards
// @Produce      json
// @Security     ZazzHMAC
// @Param        id path int true "Reward ID"
// @Success      201 {object} UserReward
// @Failure      404 {object} httputil.ErrorResponse "Reward not found"
// @Failure      409 {object} httputil.ErrorResponse "Disabled or not enough points"
// @Router       /api/v1/rewards/{id}/redeem [post]
func (h *Handler) Redeem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ur, err := h.service.Redeem(r.Context(), apiauth.UserID(r.Context()), id)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to redeem reward")
		return
	}

	httputil.RespondJSON(w, ur, http.StatusCreated)
}

// Award grants a member the calling club's points for a scenario
// @Summary      Award scenario points
// @Tags         rewards
// @Accept       json
// @Produce      json
// @Security     ZazzHMAC
// @Param        request body AwardRequest true "Member and scenario"
// @Success      200 {object} AwardResponse
// @Failure      404 {object} httputil.ErrorResponse "Scenario not set by this club"
// @Router       /api/v1/points/award [post]
func (h *Handler) Award(w http.ResponseWriter, r *http.Request) {
	var req AwardRequest
	if !decode(w, r, &req) {
		return
	}

	awarded, err := h.service.AwardScenarioPoints(r.Context(), req.UserID, apiauth.UserID(r.Context()), req.Scenario)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to award points")
		return
	}

	httputil.RespondJSON(w, AwardResponse{Awarded: awarded}, http.StatusOK)
}

// Points returns the caller's balance at a club
// @Summary      Point balance
// @Tags         rewards
// @Produce      json
// @Security     ZazzHMAC
// @Param        id path int true "Club ID"
// @Success      200 {object} PointsResponse
// @Router       /api/v1/clubs/{id}/points [get]
func (h *Handler) Points(w http.ResponseWriter, r *http.Request) {
	clubID, ok := pathID(w, r)
	if !ok {
		return
	}

	points, err := h.service.Points(r.Context(), apiauth.UserID(r.Context()), clubID)
	if err != nil {
		httputil.RespondServiceError(w, r, err, "failed to load points")
		return
	}

	httputil.RespondJSON(w, PointsResponse{ClubID: clubID, Points: points}, http.StatusOK)
}

// RemoveUserReward deletes a redeemed reward issued by the calling club
// @Summary      Remove redeemed reward
// @Tags         rewards
// @Security     ZazzHMAC
// @Param        id path int true "User reward ID"
// @Success      204
// @Failure      403 {object} httputil.ErrorResponse "Not the issuing club"
// @Router       /api/v1/user-rewards/{id} [delete]
func (h *Handler) RemoveUserReward(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.RemoveUserReward(r.Context(), id, apiauth.UserID(r.Context())); err != nil {
		httputil.RespondServiceError(w, r, err, "failed to remove user reward")
		return
	}

	httputil.RespondNoContent(w)
}

func (h *Handler) rewardAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, rewardID, currentUserID int64) error, failure string) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := action(r.Context(), id, apiauth.UserID(r.Context())); err != nil {
		httputil.RespondServiceError(w, r, err, failure)
		return
	}

	httputil.RespondNoContent(w)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := httputil.IDParam(r, "id")
	if err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidParameter, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httputil.DecodeJSON(r, dst); err != nil {
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return false
	}
	return true
}
