package reward

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zazzlife/zazz-api/internal/apiauth"
	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/user"
)

const (
	clubID   int64 = 1
	otherID  int64 = 2
	memberID int64 = 3
)

type balanceKey struct{ userID, clubID int64 }

type memoryStore struct {
	nextID      int64
	scenarios   map[int64]*ScenarioRule
	rewards     map[int64]*Reward
	balances    map[balanceKey]int64
	history     []HistoryEntry
	userRewards map[int64]*UserReward
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		scenarios:   map[int64]*ScenarioRule{},
		rewards:     map[int64]*Reward{},
		balances:    map[balanceKey]int64{},
		userRewards: map[int64]*UserReward{},
	}
}

func (m *memoryStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memoryStore) InsertScenario(_ context.Context, rule *ScenarioRule) error {
	for _, existing := range m.scenarios {
		if existing.ClubID == rule.ClubID && existing.Scenario == rule.Scenario {
			return ErrDuplicateScenario
		}
	}
	rule.ID = m.id()
	stored := *rule
	m.scenarios[rule.ID] = &stored
	return nil
}

func (m *memoryStore) GetScenario(_ context.Context, id int64) (*ScenarioRule, error) {
	rule, ok := m.scenarios[id]
	if !ok {
		return nil, ErrScenarioNotFound
	}
	out := *rule
	return &out, nil
}

func (m *memoryStore) FindScenario(_ context.Context, clubID int64, scenario Scenario) (*ScenarioRule, error) {
	for _, rule := range m.scenarios {
		if rule.ClubID == clubID && rule.Scenario == scenario {
			out := *rule
			return &out, nil
		}
	}
	return nil, ErrScenarioNotFound
}

func (m *memoryStore) ListScenarios(_ context.Context, clubID int64) ([]ScenarioRule, error) {
	var out []ScenarioRule
	for _, rule := range m.scenarios {
		if rule.ClubID == clubID {
			out = append(out, *rule)
		}
	}
	return out, nil
}

func (m *memoryStore) UpdateScenarioAmount(_ context.Context, id, amount int64) error {
	m.scenarios[id].Amount = amount
	return nil
}

func (m *memoryStore) DeleteScenario(_ context.Context, id int64) error {
	delete(m.scenarios, id)
	return nil
}

func (m *memoryStore) InsertReward(_ context.Context, rw *Reward) error {
	rw.ID = m.id()
	stored := *rw
	m.rewards[rw.ID] = &stored
	return nil
}

func (m *memoryStore) GetReward(_ context.Context, id int64) (*Reward, error) {
	rw, ok := m.rewards[id]
	if !ok {
		return nil, ErrRewardNotFound
	}
	out := *rw
	return &out, nil
}

func (m *memoryStore) ListRewards(_ context.Context, clubID int64) ([]Reward, error) {
	var out []Reward
	for _, rw := range m.rewards {
		if rw.ClubID == clubID && rw.IsEnabled {
			out = append(out, *rw)
		}
	}
	return out, nil
}

func (m *memoryStore) UpdateReward(_ context.Context, rw *Reward) error {
	stored := m.rewards[rw.ID]
	stored.Name = rw.Name
	stored.Description = rw.Description
	stored.Cost = rw.Cost
	return nil
}

func (m *memoryStore) SetRewardEnabled(_ context.Context, id int64, enabled bool) error {
	m.rewards[id].IsEnabled = enabled
	return nil
}

func (m *memoryStore) AddPoints(_ context.Context, userID, clubID, amount int64) error {
	m.balances[balanceKey{userID, clubID}] += amount
	return nil
}

func (m *memoryStore) SpendPoints(_ context.Context, userID, clubID, amount int64) (bool, error) {
	key := balanceKey{userID, clubID}
	if m.balances[key] < amount {
		return false, nil
	}
	m.balances[key] -= amount
	return true, nil
}

func (m *memoryStore) Points(_ context.Context, userID, clubID int64) (int64, error) {
	return m.balances[balanceKey{userID, clubID}], nil
}

func (m *memoryStore) InsertHistory(_ context.Context, h *HistoryEntry) error {
	h.ID = m.id()
	m.history = append(m.history, *h)
	return nil
}

func (m *memoryStore) InsertUserReward(_ context.Context, ur *UserReward) error {
	ur.ID = m.id()
	stored := *ur
	m.userRewards[ur.ID] = &stored
	return nil
}

func (m *memoryStore) GetUserReward(_ context.Context, id int64) (*UserReward, error) {
	ur, ok := m.userRewards[id]
	if !ok {
		return nil, ErrUserRewardNotFound
	}
	out := *ur
	return &out, nil
}

func (m *memoryStore) DeleteUserReward(_ context.Context, id int64) error {
	delete(m.userRewards, id)
	return nil
}

type accountTypes map[int64]user.AccountType

func (a accountTypes) GetAccountType(_ context.Context, id int64) (user.AccountType, error) {
	t, ok := a[id]
	if !ok {
		return "", apperr.NotFound("user")
	}
	return t, nil
}

type inlineTx struct{}

func (inlineTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService() (*Service, *memoryStore) {
	store := newMemoryStore()
	accounts := accountTypes{
		clubID:   user.AccountClub,
		otherID:  user.AccountClub,
		memberID: user.AccountUser,
	}
	return NewService(store, accounts, inlineTx{}), store
}

func TestAddScenario(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	rule, err := svc.AddScenario(ctx, clubID, ScenarioCheckIn, 10)
	require.NoError(t, err)
	assert.NotZero(t, rule.ID)

	_, err = svc.AddScenario(ctx, clubID, ScenarioCheckIn, 20)
	assert.ErrorIs(t, err, apperr.ErrAlreadyExists)

	_, err = svc.AddScenario(ctx, memberID, ScenarioCheckIn, 10)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.AddScenario(ctx, clubID, Scenario("dance"), 10)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = svc.AddScenario(ctx, clubID, ScenarioQRCodeScan, 0)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestChangeAndRemoveScenarioByOwner(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	rule, err := svc.AddScenario(ctx, clubID, ScenarioQRCodeScan, 5)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ChangeScenarioAmount(ctx, rule.ID, otherID, 50), apperr.ErrForbidden)
	assert.ErrorIs(t, svc.ChangeScenarioAmount(ctx, 999, clubID, 50), apperr.ErrNotFound)
	require.NoError(t, svc.ChangeScenarioAmount(ctx, rule.ID, clubID, 50))
	assert.Equal(t, int64(50), store.scenarios[rule.ID].Amount)

	assert.ErrorIs(t, svc.RemoveScenario(ctx, rule.ID, otherID), apperr.ErrForbidden)
	require.NoError(t, svc.RemoveScenario(ctx, rule.ID, clubID))
	assert.Empty(t, store.scenarios)
	assert.NoError(t, svc.RemoveScenario(ctx, rule.ID, clubID))
}

func TestAddRewardValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name    string
		clubID  int64
		input   RewardInput
		wantErr error
	}{
		{"missing club", 0, RewardInput{Name: "Free drink", Cost: 10}, apperr.ErrInvalidArgument},
		{"blank name", clubID, RewardInput{Name: "  ", Cost: 10}, apperr.ErrInvalidArgument},
		{"long name", clubID, RewardInput{Name: strings.Repeat("x", maxRewardNameLength+1), Cost: 10}, apperr.ErrInvalidArgument},
		{"zero cost", clubID, RewardInput{Name: "Free drink"}, apperr.ErrInvalidArgument},
		{"member account", memberID, RewardInput{Name: "Free drink", Cost: 10}, apperr.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddReward(ctx, tt.clubID, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	rw, err := svc.AddReward(ctx, clubID, RewardInput{Name: " Free drink ", Description: "House only", Cost: 10})
	require.NoError(t, err)
	assert.Equal(t, "Free drink", rw.Name)
	assert.True(t, rw.IsEnabled)
}

func TestUpdateAndRemoveReward(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	rw, err := svc.AddReward(ctx, clubID, RewardInput{Name: "Free drink", Cost: 10})
	require.NoError(t, err)

	_, err = svc.UpdateReward(ctx, rw.ID, otherID, RewardInput{Name: "VIP", Cost: 100})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	updated, err := svc.UpdateReward(ctx, rw.ID, clubID, RewardInput{Name: "VIP", Cost: 100})
	require.NoError(t, err)
	assert.Equal(t, "VIP", updated.Name)
	assert.Equal(t, int64(100), store.rewards[rw.ID].Cost)

	require.NoError(t, svc.RemoveReward(ctx, rw.ID, clubID))
	require.Contains(t, store.rewards, rw.ID, "removal keeps the row")
	assert.False(t, store.rewards[rw.ID].IsEnabled)

	listed, err := svc.Rewards(ctx, clubID)
	require.NoError(t, err)
	assert.Empty(t, listed)

	require.NoError(t, svc.EnableReward(ctx, rw.ID, clubID))
	assert.True(t, store.rewards[rw.ID].IsEnabled)
	assert.ErrorIs(t, svc.DisableReward(ctx, rw.ID, otherID), apperr.ErrForbidden)

	assert.NoError(t, svc.RemoveReward(ctx, 999, clubID))
	assert.ErrorIs(t, svc.EnableReward(ctx, 999, clubID), apperr.ErrNotFound)
}

func TestAwardPointsRecordsHistory(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.AwardPoints(ctx, memberID, clubID, 15, ScenarioCheckIn))
	require.NoError(t, svc.AwardPoints(ctx, memberID, clubID, 5, ScenarioQRCodeScan))

	points, err := svc.Points(ctx, memberID, clubID)
	require.NoError(t, err)
	assert.Equal(t, int64(20), points)

	require.Len(t, store.history, 2)
	assert.Equal(t, int64(15), store.history[0].ChangedAmount)
	assert.Equal(t, ScenarioCheckIn, *store.history[0].Scenario)
	assert.Nil(t, store.history[0].RewardID)

	assert.ErrorIs(t, svc.AwardPoints(ctx, memberID, clubID, 0, ScenarioCheckIn), apperr.ErrInvalidArgument)
	assert.ErrorIs(t, svc.AwardPoints(ctx, 0, clubID, 5, ScenarioCheckIn), apperr.ErrInvalidArgument)
}

func TestAwardScenarioPoints(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AwardScenarioPoints(ctx, memberID, clubID, ScenarioQRCodeScan)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.AddScenario(ctx, clubID, ScenarioQRCodeScan, 7)
	require.NoError(t, err)

	awarded, err := svc.AwardScenarioPoints(ctx, memberID, clubID, ScenarioQRCodeScan)
	require.NoError(t, err)
	assert.Equal(t, int64(7), awarded)

	points, err := svc.Points(ctx, memberID, clubID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), points)

	other, err := svc.Points(ctx, memberID, otherID)
	require.NoError(t, err)
	assert.Zero(t, other)
}

func TestRedeem(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	rw, err := svc.AddReward(ctx, clubID, RewardInput{Name: "Free drink", Cost: 10})
	require.NoError(t, err)
	require.NoError(t, svc.AwardPoints(ctx, memberID, clubID, 25, ScenarioCheckIn))

	ur, err := svc.Redeem(ctx, memberID, rw.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), ur.PointsSpent)
	assert.Equal(t, int64(15), store.balances[balanceKey{memberID, clubID}])

	last := store.history[len(store.history)-1]
	assert.Equal(t, int64(-10), last.ChangedAmount)
	require.NotNil(t, last.RewardID)
	assert.Equal(t, rw.ID, *last.RewardID)

	_, err = svc.Redeem(ctx, memberID, rw.ID)
	require.NoError(t, err)
	_, err = svc.Redeem(ctx, memberID, rw.ID)
	assert.ErrorIs(t, err, ErrInsufficientPoints)
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.Equal(t, int64(5), store.balances[balanceKey{memberID, clubID}])

	require.NoError(t, svc.DisableReward(ctx, rw.ID, clubID))
	_, err = svc.Redeem(ctx, memberID, rw.ID)
	assert.ErrorIs(t, err, ErrRewardDisabled)

	_, err = svc.Redeem(ctx, memberID, 999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRemoveUserRewardByIssuingClub(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	rw, err := svc.AddReward(ctx, clubID, RewardInput{Name: "Free drink", Cost: 10})
	require.NoError(t, err)
	require.NoError(t, svc.AwardPoints(ctx, memberID, clubID, 10, ScenarioCheckIn))
	ur, err := svc.Redeem(ctx, memberID, rw.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.RemoveUserReward(ctx, ur.ID, memberID), apperr.ErrForbidden)
	assert.ErrorIs(t, svc.RemoveUserReward(ctx, ur.ID, otherID), apperr.ErrForbidden)
	require.NoError(t, svc.RemoveUserReward(ctx, ur.ID, clubID))
	assert.Empty(t, store.userRewards)
	assert.NoError(t, svc.RemoveUserReward(ctx, ur.ID, clubID))
}

func TestRedeemHandler(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	rw, err := svc.AddReward(ctx, clubID, RewardInput{Name: "Free drink", Cost: 10})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Post("/rewards/{id}/redeem", NewHandler(svc).Redeem)

	do := func(target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, target, nil)
		req = req.WithContext(apiauth.WithIdentity(req.Context(), &apiauth.Identity{ClientID: 1, UserID: memberID}))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusBadRequest, do("/rewards/abc/redeem").Code)
	assert.Equal(t, http.StatusNotFound, do("/rewards/999/redeem").Code)
	target := fmt.Sprintf("/rewards/%d/redeem", rw.ID)
	assert.Equal(t, http.StatusConflict, do(target).Code)

	require.NoError(t, svc.AwardPoints(ctx, memberID, clubID, 10, ScenarioCheckIn))
	rec := do(target)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"points_spent":10`)
}
