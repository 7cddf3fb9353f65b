package auth

import (
	"time"

	"github.com/zazzlife/zazz-api/internal/user"
)

// AuthTokens is the token pair returned by login and refresh
type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope,omitempty"`
}

// RefreshRecord is the server side state of a refresh token. The token
// itself carries ID and the verification code whose hash is VerifyHash.
type RefreshRecord struct {
	ID         int64
	UserID     int64
	ClientID   int64
	VerifyHash string
	Scopes     []string
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// RegisterInput holds the fields of a new account
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	AccountType user.AccountType
	ClubName    string
}
