package reward

import "time"

// Scenario names an action a club rewards with points
type Scenario string

const (
	ScenarioQRCodeScan Scenario = "qr_code_scan"
	ScenarioCheckIn    Scenario = "check_in"
)

func (s Scenario) Valid() bool {
	return s == ScenarioQRCodeScan || s == ScenarioCheckIn
}

// ScenarioRule is the number of points a club grants for a scenario
type ScenarioRule struct {
	ID       int64    `json:"id"`
	ClubID   int64    `json:"club_id"`
	Scenario Scenario `json:"scenario"`
	Amount   int64    `json:"amount"`
}

type Reward struct {
	ID          int64     `json:"id"`
	ClubID      int64     `json:"club_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Cost        int64     `json:"cost"`
	IsEnabled   bool      `json:"is_enabled"`
	CreatedAt   time.Time `json:"created_at"`
}

// RewardInput holds the editable fields of a reward
type RewardInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int64  `json:"cost"`
}

// UserReward is a reward a user redeemed
type UserReward struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	RewardID    int64     `json:"reward_id"`
	PointsSpent int64     `json:"points_spent"`
	RedeemedAt  time.Time `json:"redeemed_at"`
}

// HistoryEntry records one change to a user's points at a club
type HistoryEntry struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	ClubID        int64     `json:"club_id"`
	ChangedAmount int64     `json:"changed_amount"`
	Scenario      *Scenario `json:"scenario,omitempty"`
	RewardID      *int64    `json:"reward_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
