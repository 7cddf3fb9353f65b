package reward

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/database"
)

var (
	ErrScenarioNotFound   = apperr.NotFound("reward scenario")
	ErrRewardNotFound     = apperr.NotFound("reward")
	ErrUserRewardNotFound = apperr.NotFound("user reward")
	ErrDuplicateScenario  = fmt.Errorf("reward scenario %w", apperr.ErrAlreadyExists)
)

// Repository handles reward scenarios, rewards and point balances
type Repository struct {
	db bun.IDB
}

func NewRepository(db bun.IDB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) InsertScenario(ctx context.Context, rule *ScenarioRule) error {
	row := &database.ClubPointRewardScenario{
		ClubID:   rule.ClubID,
		Scenario: string(rule.Scenario),
		Amount:   rule.Amount,
	}

	_, err := database.Conn(ctx, r.db).NewInsert().
		Model(row).
		Returning("id").
		Exec(ctx)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicateScenario
		}
		return fmt.Errorf("failed to insert reward scenario: %w", err)
	}

	rule.ID = row.ID
	return nil
}

func (r *Repository) GetScenario(ctx context.Context, id int64) (*ScenarioRule, error) {
	return r.scenarioWhere(ctx, "id = ?", id)
}

// FindScenario returns the rule a club set for a scenario
func (r *Repository) FindScenario(ctx context.Context, clubID int64, scenario Scenario) (*ScenarioRule, error) {
	return r.scenarioWhere(ctx, "club_id = ? AND scenario = ?", clubID, string(scenario))
}

func (r *Repository) scenarioWhere(ctx context.Context, where string, args ...any) (*ScenarioRule, error) {
	row := new(database.ClubPointRewardScenario)
	err := database.Conn(ctx, r.db).NewSelect().
		Model(row).
		Where(where, args...).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScenarioNotFound
		}
		return nil, fmt.Errorf("failed to get reward scenario: %w", err)
	}
	return mapDBScenario(row), nil
}

func (r *Repository) ListScenarios(ctx context.Context, clubID int64) ([]ScenarioRule, error) {
	var rows []database.ClubPointRewardScenario
	err := database.Conn(ctx, r.db).NewSelect().
		Model(&rows).
		Where("club_id = ?", clubID).
		OrderExpr("scenario ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reward scenarios: %w", err)
	}

	out := make([]ScenarioRule, len(rows))
	for i := range rows {
		out[i] = *mapDBScenario(&rows[i])
	}
	return out, nil
}

func (r *Repository) UpdateScenarioAmount(ctx context.Context, id, amount int64) error {
	_, err := database.Conn(ctx, r.db).NewUpdate().
		Model((*database.ClubPointRewardScenario)(nil)).
		Set("amount = ?", amount).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update reward scenario: %w", err)
	}
	return nil
}

func (r *Repository) DeleteScenario(ctx context.Context, id int64) error {
	_, err := database.Conn(ctx, r.db).NewDelete().
		Model((*database.ClubPointRewardScenario)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete reward scenario: %w", err)
	}
	return nil
}

func (r *Repository) InsertReward(ctx context.Context, rw *Reward) error {
	row := &database.ClubReward{
		ClubID:      rw.ClubID,
		Name:        rw.Name,
		Description: rw.Description,
		Cost:        rw.Cost,
		IsEnabled:   rw.IsEnabled,
	}

	_, err := database.Conn(ctx, r.db).NewInsert().
		Model(row).
		Returning("id, created_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert reward: %w", err)
	}

	rw.ID = row.ID
	rw.CreatedAt = row.CreatedAt
	return nil
}

func (r *Repository) GetReward(ctx context.Context, id int64) (*Reward, error) {
	row := new(database.ClubReward)
	err := database.Conn(ctx, r.db).NewSelect().
		Model(row).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRewardNotFound
		}
		return nil, fmt.Errorf("failed to get reward: %w", err)
	}
	return mapDBReward(row), nil
}

// ListRewards returns a club's enabled rewards, cheapest first
func (r *Repository) ListRewards(ctx context.Context, clubID int64) ([]Reward, error) {
	var rows []database.ClubReward
	err := database.Conn(ctx, r.db).NewSelect().
		Model(&rows).
		Where("club_id = ?", clubID).
		Where("is_enabled = ?", true).
		OrderExpr("cost ASC, id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}

	out := make([]Reward, len(rows))
	for i := range rows {
		out[i] = *mapDBReward(&rows[i])
	}
	return out, nil
}

// UpdateReward overwrites name, description and cost
func (r *Repository) UpdateReward(ctx context.Context, rw *Reward) error {
	_, err := database.Conn(ctx, r.db).NewUpdate().
		Model((*database.ClubReward)(nil)).
		Set("name = ?", rw.Name).
		Set("description = ?", rw.Description).
		Set("cost = ?", rw.Cost).
		Where("id = ?", rw.ID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update reward: %w", err)
	}
	return nil
}

func (r *Repository) SetRewardEnabled(ctx context.Context, id int64, enabled bool) error {
	_, err := database.Conn(ctx, r.db).NewUpdate().
		Model((*database.ClubReward)(nil)).
		Set("is_enabled = ?", enabled).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update reward state: %w", err)
	}
	return nil
}

// AddPoints credits a user's balance at a club, creating it on first use
func (r *Repository) AddPoints(ctx context.Context, userID, clubID, amount int64) error {
	_, err := database.Conn(ctx, r.db).NewInsert().
		Model(&database.UserPoint{UserID: userID, ClubID: clubID, Points: amount}).
		On("CONFLICT (user_id, club_id) DO UPDATE").
		Set("points = up.points + EXCLUDED.points").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to add points: %w", err)
	}
	return nil
}

// SpendPoints debits a balance only when it covers amount, and reports
// whether it did
func (r *Repository) SpendPoints(ctx context.Context, userID, clubID, amount int64) (bool, error) {
	result, err := database.Conn(ctx, r.db).NewUpdate().
		Model((*database.UserPoint)(nil)).
		Set("points = points - ?", amount).
		Where("user_id = ?", userID).
		Where("club_id = ?", clubID).
		Where("points >= ?", amount).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to spend points: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n == 1, nil
}

// Points returns a user's balance at a club
func (r *Repository) Points(ctx context.Context, userID, clubID int64) (int64, error) {
	var points int64
	err := database.Conn(ctx, r.db).NewSelect().
		Model((*database.UserPoint)(nil)).
		Column("points").
		Where("user_id = ?", userID).
		Where("club_id = ?", clubID).
		Scan(ctx, &points)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get points: %w", err)
	}
	return points, nil
}

func (r *Repository) InsertHistory(ctx context.Context, h *HistoryEntry) error {
	row := &database.UserPointHistory{
		UserID:        h.UserID,
		ClubID:        h.ClubID,
		ChangedAmount: h.ChangedAmount,
		RewardID:      h.RewardID,
	}
	if h.Scenario != nil {
		s := string(*h.Scenario)
		row.Scenario = &s
	}

	_, err := database.Conn(ctx, r.db).NewInsert().
		Model(row).
		Returning("id, created_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert point history: %w", err)
	}

	h.ID = row.ID
	h.CreatedAt = row.CreatedAt
	return nil
}

func (r *Repository) InsertUserReward(ctx context.Context, ur *UserReward) error {
	row := &database.UserReward{
		UserID:      ur.UserID,
		RewardID:    ur.RewardID,
		PointsSpent: ur.PointsSpent,
	}

	_, err := database.Conn(ctx, r.db).NewInsert().
		Model(row).
		Returning("id, redeemed_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert user reward: %w", err)
	}

	ur.ID = row.ID
	ur.RedeemedAt = row.RedeemedAt
	return nil
}

func (r *Repository) GetUserReward(ctx context.Context, id int64) (*UserReward, error) {
	row := new(database.UserReward)
	err := database.Conn(ctx, r.db).NewSelect().
		Model(row).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserRewardNotFound
		}
		return nil, fmt.Errorf("failed to get user reward: %w", err)
	}

	return &UserReward{
		ID:          row.ID,
		UserID:      row.UserID,
		RewardID:    row.RewardID,
		PointsSpent: row.PointsSpent,
		RedeemedAt:  row.RedeemedAt,
	}, nil
}

func (r *Repository) DeleteUserReward(ctx context.Context, id int64) error {
	_, err := database.Conn(ctx, r.db).NewDelete().
		Model((*database.UserReward)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete user reward: %w", err)
	}
	return nil
}

func mapDBScenario(row *database.ClubPointRewardScenario) *ScenarioRule {
	return &ScenarioRule{
		ID:       row.ID,
		ClubID:   row.ClubID,
		Scenario: Scenario(row.Scenario),
		Amount:   row.Amount,
	}
}

func mapDBReward(row *database.ClubReward) *Reward {
	return &Reward{
		ID:          row.ID,
		ClubID:      row.ClubID,
		Name:        row.Name,
		Description: row.Description,
		Cost:        row.Cost,
		IsEnabled:   row.IsEnabled,
		CreatedAt:   row.CreatedAt,
	}
}
