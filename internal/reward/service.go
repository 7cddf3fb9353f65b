package reward

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/user"
)

const maxRewardNameLength = 100

var (
	ErrRewardDisabled     = fmt.Errorf("%w: reward is disabled", apperr.ErrConflict)
	ErrInsufficientPoints = fmt.Errorf("%w: not enough points", apperr.ErrConflict)
)

type Store interface {
	InsertScenario(ctx context.Context, rule *ScenarioRule) error
	GetScenario(ctx context.Context, id int64) (*ScenarioRule, error)
	FindScenario(ctx context.Context, clubID int64, scenario Scenario) (*ScenarioRule, error)
	ListScenarios(ctx context.Context, clubID int64) ([]ScenarioRule, error)
	UpdateScenarioAmount(ctx context.Context, id, amount int64) error
	DeleteScenario(ctx context.Context, id int64) error

	InsertReward(ctx context.Context, rw *Reward) error
	GetReward(ctx context.Context, id int64) (*Reward, error)
	ListRewards(ctx context.Context, clubID int64) ([]Reward, error)
	UpdateReward(ctx context.Context, rw *Reward) error
	SetRewardEnabled(ctx context.Context, id int64, enabled bool) error

	AddPoints(ctx context.Context, userID, clubID, amount int64) error
	SpendPoints(ctx context.Context, userID, clubID, amount int64) (bool, error)
	Points(ctx context.Context, userID, clubID int64) (int64, error)
	InsertHistory(ctx context.Context, h *HistoryEntry) error

	InsertUserReward(ctx context.Context, ur *UserReward) error
	GetUserReward(ctx context.Context, id int64) (*UserReward, error)
	DeleteUserReward(ctx context.Context, id int64) error
}

type AccountTypes interface {
	GetAccountType(ctx context.Context, id int64) (user.AccountType, error)
}

type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages club point scenarios, rewards and member balances
type Service struct {
	store    Store
	accounts AccountTypes
	tx       TxRunner
}

func NewService(store Store, accounts AccountTypes, tx TxRunner) *Service {
	return &Service{store: store, accounts: accounts, tx: tx}
}

// AddScenario sets how many points clubID grants for a scenario
func (s *Service) AddScenario(ctx context.Context, clubID int64, scenario Scenario, amount int64) (*ScenarioRule, error) {
	if !scenario.Valid() {
		return nil, apperr.Invalid("unknown scenario %q", scenario)
	}
	if amount <= 0 {
		return nil, apperr.Invalid("amount must be positive")
	}
	if err := s.requireClub(ctx, clubID, "add reward scenario"); err != nil {
		return nil, err
	}

	rule := &ScenarioRule{ClubID: clubID, Scenario: scenario, Amount: amount}
	if err := s.store.InsertScenario(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *Service) Scenarios(ctx context.Context, clubID int64) ([]ScenarioRule, error) {
	return s.store.ListScenarios(ctx, clubID)
}

func (s *Service) ChangeScenarioAmount(ctx context.Context, scenarioID, currentUserID, amount int64) error {
	if amount <= 0 {
		return apperr.Invalid("amount must be positive")
	}

	rule, err := s.store.GetScenario(ctx, scenarioID)
	if err != nil {
		return err
	}
	if rule.ClubID != currentUserID {
		return apperr.Forbidden(fmt.Sprintf("change reward scenario %d", scenarioID))
	}

	return s.store.UpdateScenarioAmount(ctx, scenarioID, amount)
}

// RemoveScenario deletes a scenario rule. A missing rule is a no-op.
func (s *Service) RemoveScenario(ctx context.Context, scenarioID, currentUserID int64) error {
	rule, err := s.store.GetScenario(ctx, scenarioID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil
		}
		return err
	}
	if rule.ClubID != currentUserID {
		return apperr.Forbidden(fmt.Sprintf("remove reward scenario %d", scenarioID))
	}

	return s.store.DeleteScenario(ctx, scenarioID)
}

// AddReward creates an enabled reward offered by clubID
func (s *Service) AddReward(ctx context.Context, clubID int64, input RewardInput) (*Reward, error) {
	if clubID == 0 {
		return nil, apperr.Invalid("club id is required")
	}
	input, err := validateReward(input)
	if err != nil {
		return nil, err
	}
	if err := s.requireClub(ctx, clubID, "add reward"); err != nil {
		return nil, err
	}

	rw := &Reward{
		ClubID:      clubID,
		Name:        input.Name,
		Description: input.Description,
		Cost:        input.Cost,
		IsEnabled:   true,
	}
	if err := s.store.InsertReward(ctx, rw); err != nil {
		return nil, err
	}
	return rw, nil
}

// Rewards lists the enabled rewards of a club
func (s *Service) Rewards(ctx context.Context, clubID int64) ([]Reward, error) {
	return s.store.ListRewards(ctx, clubID)
}

// UpdateReward copies name, description and cost onto a reward
func (s *Service) UpdateReward(ctx context.Context, rewardID, currentUserID int64, input RewardInput) (*Reward, error) {
	input, err := validateReward(input)
	if err != nil {
		return nil, err
	}

	rw, err := s.ownedReward(ctx, rewardID, currentUserID, "update")
	if err != nil {
		return nil, err
	}

	rw.Name = input.Name
	rw.Description = input.Description
	rw.Cost = input.Cost
	if err := s.store.UpdateReward(ctx, rw); err != nil {
		return nil, err
	}
	return rw, nil
}

// RemoveReward disables a reward instead of deleting it. A missing reward is
// a no-op.
func (s *Service) RemoveReward(ctx context.Context, rewardID, currentUserID int64) error {
	err := s.setEnabled(ctx, rewardID, currentUserID, false, "remove")
	if errors.Is(err, ErrRewardNotFound) {
		return nil
	}
	return err
}

func (s *Service) EnableReward(ctx context.Context, rewardID, currentUserID int64) error {
	return s.setEnabled(ctx, rewardID, currentUserID, true, "enable")
}

func (s *Service) DisableReward(ctx context.Context, rewardID, currentUserID int64) error {
	return s.setEnabled(ctx, rewardID, currentUserID, false, "disable")
}

// AwardPoints credits a member's balance at a club and records why
func (s *Service) AwardPoints(ctx context.Context, userID, clubID, amount int64, scenario Scenario) error {
	if userID == 0 || clubID == 0 {
		return apperr.Invalid("user id and club id are required")
	}
	if amount <= 0 {
		return apperr.Invalid("amount must be positive")
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.store.InsertHistory(ctx, &HistoryEntry{
			UserID:        userID,
			ClubID:        clubID,
			ChangedAmount: amount,
			Scenario:      &scenario,
		}); err != nil {
			return err
		}
		return s.store.AddPoints(ctx, userID, clubID, amount)
	})
}

// AwardScenarioPoints credits the amount clubID set for scenario
func (s *Service) AwardScenarioPoints(ctx context.Context, userID, clubID int64, scenario Scenario) (int64, error) {
	if !scenario.Valid() {
		return 0, apperr.Invalid("unknown scenario %q", scenario)
	}

	rule, err := s.store.FindScenario(ctx, clubID, scenario)
	if err != nil {
		return 0, err
	}
	if err := s.AwardPoints(ctx, userID, clubID, rule.Amount, scenario); err != nil {
		return 0, err
	}
	return rule.Amount, nil
}

// Points returns a member's balance at a club
func (s *Service) Points(ctx context.Context, userID, clubID int64) (int64, error) {
	return s.store.Points(ctx, userID, clubID)
}

// Redeem spends a member's points on an enabled reward
func (s *Service) Redeem(ctx context.Context, userID, rewardID int64) (*UserReward, error) {
	rw, err := s.store.GetReward(ctx, rewardID)
	if err != nil {
		return nil, err
	}
	if !rw.IsEnabled {
		return nil, ErrRewardDisabled
	}

	ur := &UserReward{UserID: userID, RewardID: rw.ID, PointsSpent: rw.Cost}
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		spent, err := s.store.SpendPoints(ctx, userID, rw.ClubID, rw.Cost)
		if err != nil {
			return err
		}
		if !spent {
			return ErrInsufficientPoints
		}
		if err := s.store.InsertUserReward(ctx, ur); err != nil {
			return err
		}
		return s.store.InsertHistory(ctx, &HistoryEntry{
			UserID:        userID,
			ClubID:        rw.ClubID,
			ChangedAmount: -rw.Cost,
			RewardID:      &rw.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	return ur, nil
}

// RemoveUserReward deletes a redeemed reward. Only the club that issued the
// reward may do so. A missing record is a no-op.
func (s *Service) RemoveUserReward(ctx context.Context, userRewardID, currentUserID int64) error {
	ur, err := s.store.GetUserReward(ctx, userRewardID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil
		}
		return err
	}

	rw, err := s.store.GetReward(ctx, ur.RewardID)
	if err != nil {
		return err
	}
	if rw.ClubID != currentUserID {
		return apperr.Forbidden(fmt.Sprintf("remove user reward %d", userRewardID))
	}

	return s.store.DeleteUserReward(ctx, userRewardID)
}

func (s *Service) setEnabled(ctx context.Context, rewardID, currentUserID int64, enabled bool, action string) error {
	if _, err := s.ownedReward(ctx, rewardID, currentUserID, action); err != nil {
		return err
	}
	return s.store.SetRewardEnabled(ctx, rewardID, enabled)
}

func (s *Service) ownedReward(ctx context.Context, rewardID, currentUserID int64, action string) (*Reward, error) {
	rw, err := s.store.GetReward(ctx, rewardID)
	if err != nil {
		return nil, err
	}
	if rw.ClubID != currentUserID {
		return nil, apperr.Forbidden(fmt.Sprintf("%s reward %d", action, rewardID))
	}
	return rw, nil
}

func (s *Service) requireClub(ctx context.Context, userID int64, action string) error {
	accountType, err := s.accounts.GetAccountType(ctx, userID)
	if err != nil {
		return err
	}
	if accountType != user.AccountClub {
		return apperr.Forbidden(action)
	}
	return nil
}

func validateReward(input RewardInput) (RewardInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)

	switch {
	case input.Name == "":
		return input, apperr.Invalid("name is required")
	case len(input.Name) > maxRewardNameLength:
		return input, apperr.Invalid("name must be at most %d bytes", maxRewardNameLength)
	case input.Cost <= 0:
		return input, apperr.Invalid("cost must be positive")
	}
	return input, nil
}
