package database

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID                      int64      `bun:"id,pk,autoincrement"`
	Username                string     `bun:"username,notnull,unique"`
	Email                   string     `bun:"email,notnull,unique"`
	PasswordHash            string     `bun:"password_hash,notnull"`
	AccountType             string     `bun:"account_type,notnull"`
	ClubName                *string    `bun:"club_name"`
	EmailVerified           bool       `bun:"email_verified,notnull"`
	EmailVerificationToken  *string    `bun:"email_verification_token"`
	EmailVerificationSentAt *time.Time `bun:"email_verification_sent_at"`
	LastActivity            time.Time  `bun:"last_activity,notnull,default:current_timestamp"`
	CreatedAt               time.Time  `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt               time.Time  `bun:"updated_at,notnull,default:current_timestamp"`
}

type OAuthClient struct {
	bun.BaseModel `bun:"table:oauth_clients,alias:oc"`

	ID         int64     `bun:"id,pk,autoincrement"`
	Name       string    `bun:"name,notnull"`
	SigningKey []byte    `bun:"signing_key,notnull,type:bytea"`
	Active     bool      `bun:"active,notnull"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

type Post struct {
	bun.BaseModel `bun:"table:posts,alias:p"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    int64     `bun:"user_id,notnull"`
	ToUserID  *int64    `bun:"to_user_id"`
	Message   string    `bun:"message,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

type Event struct {
	bun.BaseModel `bun:"table:events,alias:e"`

	ID          int64     `bun:"id,pk,autoincrement"`
	UserID      int64     `bun:"user_id,notnull"`
	Name        string    `bun:"name,notnull"`
	Description string    `bun:"description,notnull"`
	Location    string    `bun:"location,notnull"`
	Street      string    `bun:"street,notnull"`
	City        string    `bun:"city,notnull"`
	Latitude    *float64  `bun:"latitude"`
	Longitude   *float64  `bun:"longitude"`
	Price       *float64  `bun:"price"`
	PhotoID     *int64    `bun:"photo_id"`
	IsDateOnly  bool      `bun:"is_date_only,notnull"`
	StartsAt    time.Time `bun:"starts_at,notnull"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

type Tag struct {
	bun.BaseModel `bun:"table:tags,alias:t"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name,notnull,unique"`
}

type EventTag struct {
	bun.BaseModel `bun:"table:event_tags,alias:et"`

	EventID int64 `bun:"event_id,pk"`
	TagID   int64 `bun:"tag_id,pk"`
}

type Photo struct {
	bun.BaseModel `bun:"table:photos,alias:ph"`

	ID          int64     `bun:"id,pk,autoincrement"`
	UserID      int64     `bun:"user_id,notnull"`
	AlbumID     *int64    `bun:"album_id"`
	Description string    `bun:"description,notnull"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

type Album struct {
	bun.BaseModel `bun:"table:albums,alias:al"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    int64     `bun:"user_id,notnull"`
	Name      string    `bun:"name,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

type Weekly struct {
	bun.BaseModel `bun:"table:weeklies,alias:wk"`

	ID          int64     `bun:"id,pk,autoincrement"`
	UserID      int64     `bun:"user_id,notnull"`
	Name        string    `bun:"name,notnull"`
	Description string    `bun:"description,notnull"`
	DayOfWeek   int16     `bun:"day_of_week,notnull"`
	PhotoID     *int64    `bun:"photo_id"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

type Feed struct {
	bun.BaseModel `bun:"table:feeds,alias:f"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    int64     `bun:"user_id,notnull"`
	FeedType  string    `bun:"feed_type,notnull"`
	PostID    *int64    `bun:"post_id"`
	EventID   *int64    `bun:"event_id"`
	PhotoID   *int64    `bun:"photo_id"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

type Comment struct {
	bun.BaseModel `bun:"table:comments,alias:c"`

	ID        int64     `bun:"id,pk,autoincrement"`
	UserID    int64     `bun:"user_id,notnull"`
	PhotoID   *int64    `bun:"photo_id"`
	PostID    *int64    `bun:"post_id"`
	EventID   *int64    `bun:"event_id"`
	Message   string    `bun:"message,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

type Notification struct {
	bun.BaseModel `bun:"table:notifications,alias:n"`

	ID         int64     `bun:"id,pk,autoincrement"`
	UserID     int64     `bun:"user_id,notnull"`
	FromUserID int64     `bun:"from_user_id,notnull"`
	Type       string    `bun:"type,notnull"`
	PhotoID    *int64    `bun:"photo_id"`
	PostID     *int64    `bun:"post_id"`
	EventID    *int64    `bun:"event_id"`
	CommentID  *int64    `bun:"comment_id"`
	IsRead     bool      `bun:"is_read,notnull"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

type PhotoVote struct {
	bun.BaseModel `bun:"table:photo_votes,alias:pv"`

	PhotoID   int64     `bun:"photo_id,pk"`
	UserID    int64     `bun:"user_id,pk"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

type UserReceivedVotes struct {
	bun.BaseModel `bun:"table:user_received_votes,alias:urv"`

	UserID int64 `bun:"user_id,pk"`
	Count  int64 `bun:"count,notnull"`
}

type Follow struct {
	bun.BaseModel `bun:"table:follows,alias:fo"`

	FromUserID int64     `bun:"from_user_id,pk"`
	ToUserID   int64     `bun:"to_user_id,pk"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

type ClubPointRewardScenario struct {
	bun.BaseModel `bun:"table:club_point_reward_scenarios,alias:cprs"`

	ID       int64  `bun:"id,pk,autoincrement"`
	ClubID   int64  `bun:"club_id,notnull"`
	Scenario string `bun:"scenario,notnull"`
	Amount   int64  `bun:"amount,notnull"`
}

type ClubReward struct {
	bun.BaseModel `bun:"table:club_rewards,alias:cr"`

	ID          int64     `bun:"id,pk,autoincrement"`
	ClubID      int64     `bun:"club_id,notnull"`
	Name        string    `bun:"name,notnull"`
	Description string    `bun:"description,notnull"`
	Cost        int64     `bun:"cost,notnull"`
	IsEnabled   bool      `bun:"is_enabled,notnull"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

type UserPoint struct {
	bun.BaseModel `bun:"table:user_points,alias:up"`

	UserID int64 `bun:"user_id,pk"`
	ClubID int64 `bun:"club_id,pk"`
	Points int64 `bun:"points,notnull"`
}

type UserPointHistory struct {
	bun.BaseModel `bun:"table:user_point_history,alias:uph"`

	ID            int64     `bun:"id,pk,autoincrement"`
	UserID        int64     `bun:"user_id,notnull"`
	ClubID        int64     `bun:"club_id,notnull"`
	ChangedAmount int64     `bun:"changed_amount,notnull"`
	Scenario      *string   `bun:"scenario"`
	RewardID      *int64    `bun:"reward_id"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

type UserReward struct {
	bun.BaseModel `bun:"table:user_rewards,alias:ur"`

	ID          int64     `bun:"id,pk,autoincrement"`
	UserID      int64     `bun:"user_id,notnull"`
	RewardID    int64     `bun:"reward_id,notnull"`
	PointsSpent int64     `bun:"points_spent,notnull"`
	RedeemedAt  time.Time `bun:"redeemed_at,notnull,default:current_timestamp"`
}
