package user

import (
	"time"
)

// AccountType distinguishes regular members from club accounts
type AccountType string

const (
	AccountUser AccountType = "user"
	AccountClub AccountType = "club"
)

// Valid reports whether t is a known account type
func (t AccountType) Valid() bool {
	return t == AccountUser || t == AccountClub
}

type User struct {
	ID                      int64       `json:"id"`
	Username                string      `json:"username"`
	Email                   string      `json:"email"`
	PasswordHash            string      `json:"-"` // Never expose password hash in JSON
	AccountType             AccountType `json:"account_type"`
	ClubName                *string     `json:"club_name,omitempty"`
	EmailVerified           bool        `json:"email_verified"`
	EmailVerificationToken  *string     `json:"-"`
	EmailVerificationSentAt *time.Time  `json:"-"`
	LastActivity            time.Time   `json:"last_activity"`
	CreatedAt               time.Time   `json:"created_at"`
	UpdatedAt               time.Time   `json:"updated_at"`
}

// IsClub reports whether the user manages a club
func (u *User) IsClub() bool {
	return u.AccountType == AccountClub
}

// Profile is the public view of a user
type Profile struct {
	ID          int64       `json:"id"`
	Username    string      `json:"username"`
	AccountType AccountType `json:"account_type"`
	ClubName    *string     `json:"club_name,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (u *User) Profile() Profile {
	return Profile{
		ID:          u.ID,
		Username:    u.Username,
		AccountType: u.AccountType,
		ClubName:    u.ClubName,
		CreatedAt:   u.CreatedAt,
	}
}

// NewUser holds the fields required to create an account
type NewUser struct {
	Username          string
	Email             string
	PasswordHash      string
	AccountType       AccountType
	ClubName          *string
	VerificationToken string
}
