package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// resetPurpose is the implicit assertion of every reset token
var resetPurpose = []byte("zazz:password-reset")

// ResetClaims represents the claims stored in a password reset token
type ResetClaims struct {
	TokenID   string
	UserID    int64
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// PasetoService creates and validates password reset tokens.
// Uses v4.local (symmetric encryption with XChaCha20-Poly1305)
type PasetoService struct {
	symmetricKey paseto.V4SymmetricKey
	now          func() time.Time
}

func NewPasetoService(symmetricKey []byte) (*PasetoService, error) {
	if len(symmetricKey) != 32 {
		return nil, fmt.Errorf("symmetric key must be exactly 32 bytes, got %d", len(symmetricKey))
	}

	key, err := paseto.V4SymmetricKeyFromBytes(symmetricKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create symmetric key: %w", err)
	}

	return &PasetoService{
		symmetricKey: key,
		now:          time.Now,
	}, nil
}

// CreateToken issues a reset token for userID valid for duration
func (s *PasetoService) CreateToken(userID int64, duration time.Duration) (string, *ResetClaims, error) {
	now := s.now().Truncate(time.Second)
	claims := &ResetClaims{
		TokenID:   uuid.NewString(),
		UserID:    userID,
		IssuedAt:  now,
		ExpiresAt: now.Add(duration),
	}

	t := paseto.NewToken()
	t.SetIssuedAt(claims.IssuedAt)
	t.SetExpiration(claims.ExpiresAt)
	t.SetJti(claims.TokenID)
	t.SetString("user_id", strconv.FormatInt(userID, 10))

	return t.V4Encrypt(s.symmetricKey, resetPurpose), claims, nil
}

// VerifyToken decrypts a reset token and checks its expiration
func (s *PasetoService) VerifyToken(tokenStr string) (*ResetClaims, error) {
	// Expiry is checked below against the service clock
	parser := paseto.NewParserWithoutExpiryCheck()

	t, err := parser.ParseV4Local(s.symmetricKey, tokenStr, resetPurpose)
	if err != nil {
		return nil, ErrInvalidToken
	}

	tokenID, err := t.GetJti()
	if err != nil || tokenID == "" {
		return nil, ErrInvalidToken
	}

	rawUserID, err := t.GetString("user_id")
	if err != nil {
		return nil, ErrInvalidToken
	}
	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil || userID <= 0 {
		return nil, ErrInvalidToken
	}

	issuedAt, err := t.GetIssuedAt()
	if err != nil {
		return nil, ErrInvalidToken
	}

	expiresAt, err := t.GetExpiration()
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !s.now().Before(expiresAt) {
		return nil, ErrExpiredToken
	}

	return &ResetClaims{
		TokenID:   tokenID,
		UserID:    userID,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}
