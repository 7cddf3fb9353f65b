package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/zazzlife/zazz-api/internal/logging"
	"github.com/zazzlife/zazz-api/internal/token"
	"github.com/zazzlife/zazz-api/internal/user"
)

var (
	ErrInvalidCredentials       = errors.New("invalid username or password")
	ErrEmailNotVerified         = errors.New("email not verified, please check your inbox")
	ErrInvalidVerificationToken = errors.New("invalid verification token")
	ErrVerificationExpired      = errors.New("verification token has expired")
	ErrEmailAlreadyVerified     = errors.New("email already verified")
	ErrInvalidRefreshToken      = errors.New("invalid or expired refresh token")
	ErrInvalidResetToken        = errors.New("invalid or expired reset token")
	ErrInvalidScope             = errors.New("invalid scope")

	ErrUsernameLength     = errors.New("username must be between 2 and 20 characters")
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordLength     = errors.New("password must be between 8 and 40 characters")
	ErrInvalidAccountType = errors.New("account type must be user or club")
	ErrClubNameRequired   = errors.New("club name is required for club accounts")
)

var validationErrors = []error{
	ErrUsernameLength,
	ErrInvalidEmailFormat,
	ErrPasswordLength,
	ErrInvalidAccountType,
	ErrClubNameRequired,
}

// IsValidationError reports whether err was caused by bad registration input
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

const (
	verificationTokenTTL = 24 * time.Hour

	usernameMinLen = 2
	usernameMaxLen = 20
	passwordMinLen = 8
	passwordMaxLen = 40
	emailMaxLen    = 254
)

// DefaultScopes are granted when a login asks for none
var DefaultScopes = []string{"full"}

// UserStore is the user persistence used by the service
type UserStore interface {
	Create(ctx context.Context, nu user.NewUser) (*user.User, error)
	GetByUsername(ctx context.Context, username string) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByID(ctx context.Context, id int64) (*user.User, error)
	GetByVerificationToken(ctx context.Context, token string) (*user.User, error)
	CheckIfTokenAlreadyUsed(ctx context.Context, token string) (bool, error)
	MarkEmailAsVerified(ctx context.Context, userID int64) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	UpdateVerificationToken(ctx context.Context, userID int64, token string) error
	TouchLastActivity(ctx context.Context, userID int64) error
}

// RefreshStore keeps refresh token records
type RefreshStore interface {
	NextID(ctx context.Context) (int64, error)
	Store(ctx context.Context, rec *RefreshRecord) error
	Get(ctx context.Context, id int64) (*RefreshRecord, error)
	Revoke(ctx context.Context, rec *RefreshRecord) error
	RevokeAllUserTokens(ctx context.Context, userID int64) error
}

// ResetGuard makes password reset tokens single use
type ResetGuard interface {
	Consume(ctx context.Context, tokenID string, ttl time.Duration) (bool, error)
}

// ResetTokens issues and checks password reset tokens
type ResetTokens interface {
	CreateToken(userID int64, duration time.Duration) (string, *ResetClaims, error)
	VerifyToken(tokenStr string) (*ResetClaims, error)
}

// TokenCodec encodes and decodes bearer tokens
type TokenCodec interface {
	Encode(t token.Token) (string, error)
	Decode(s string) (*token.Token, error)
}

// EmailService defines the interface for email operations
type EmailService interface {
	SendVerificationEmail(ctx context.Context, toEmail, username, token string) error
	SendPasswordResetEmail(ctx context.Context, toEmail, username, token string) error
}

// Service handles authentication business logic
type Service struct {
	users                UserStore
	refreshTokens        RefreshStore
	resetGuard           ResetGuard
	resetTokens          ResetTokens
	codec                TokenCodec
	emailService         EmailService
	logger               *logging.Logger
	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration
	allowedScopes        []string
	now                  func() time.Time
}

// Deps groups the collaborators of Service
type Deps struct {
	Users         UserStore
	RefreshTokens RefreshStore
	ResetGuard    ResetGuard
	ResetTokens   ResetTokens
	Codec         TokenCodec
	Email         EmailService
	Logger        *logging.Logger
}

func NewService(deps Deps, accessTokenDuration, refreshTokenDuration time.Duration) *Service {
	return &Service{
		users:                deps.Users,
		refreshTokens:        deps.RefreshTokens,
		resetGuard:           deps.ResetGuard,
		resetTokens:          deps.ResetTokens,
		codec:                deps.Codec,
		emailService:         deps.Email,
		logger:               deps.Logger,
		accessTokenDuration:  accessTokenDuration,
		refreshTokenDuration: refreshTokenDuration,
		allowedScopes:        DefaultScopes,
		now:                  time.Now,
	}
}

func validateRegistration(in RegisterInput) error {
	if n := utf8.RuneCountInString(in.Username); n < usernameMinLen || n > usernameMaxLen {
		return ErrUsernameLength
	}
	if len(in.Email) > emailMaxLen {
		return ErrInvalidEmailFormat
	}
	if addr, err := mail.ParseAddress(in.Email); err != nil || addr.Address != in.Email {
		return ErrInvalidEmailFormat
	}
	if err := validatePassword(in.Password); err != nil {
		return err
	}
	if !in.AccountType.Valid() {
		return ErrInvalidAccountType
	}
	if in.AccountType == user.AccountClub && strings.TrimSpace(in.ClubName) == "" {
		return ErrClubNameRequired
	}
	return nil
}

func validatePassword(password string) error {
	if n := utf8.RuneCountInString(password); n < passwordMinLen || n > passwordMaxLen {
		return ErrPasswordLength
	}
	return nil
}

// Register creates a new user account and sends verification email
func (s *Service) Register(ctx context.Context, in RegisterInput) (*user.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.AccountType == "" {
		in.AccountType = user.AccountUser
	}

	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	verificationToken, err := generateRandomToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}

	nu := user.NewUser{
		Username:          in.Username,
		Email:             in.Email,
		PasswordHash:      passwordHash,
		AccountType:       in.AccountType,
		VerificationToken: verificationToken,
	}
	if in.AccountType == user.AccountClub {
		clubName := strings.TrimSpace(in.ClubName)
		nu.ClubName = &clubName
	}

	newUser, err := s.users.Create(ctx, nu)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) || errors.Is(err, user.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.sendVerification(newUser.Email, newUser.Username, verificationToken)

	return newUser, nil
}

// Login authenticates a user for clientID and returns tokens
func (s *Service) Login(ctx context.Context, clientID int64, username, password string, scopes []string) (*AuthTokens, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	granted, err := s.grantScopes(scopes)
	if err != nil {
		return nil, err
	}

	existingUser, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !verifyPassword(existingUser.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	if !existingUser.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	tokens, err := s.generateTokens(ctx, existingUser.ID, clientID, granted)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err := s.users.TouchLastActivity(ctx, existingUser.ID); err != nil {
		s.logger.Warn("failed to update last activity", "user_id", existingUser.ID, "error", err)
	}

	return tokens, nil
}

// grantScopes checks requested scopes against the allowed set
func (s *Service) grantScopes(requested []string) ([]string, error) {
	if len(requested) == 0 {
		return s.allowedScopes, nil
	}

	granted := make([]string, 0, len(requested))
	seen := make(map[string]bool, len(requested))
	for _, scope := range requested {
		scope = strings.TrimSpace(scope)
		if scope == "" || seen[scope] {
			continue
		}
		if !containsString(s.allowedScopes, scope) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidScope, scope)
		}
		seen[scope] = true
		granted = append(granted, scope)
	}

	if len(granted) == 0 {
		return s.allowedScopes, nil
	}
	return granted, nil
}

func containsString(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// RefreshAccessToken rotates a refresh token issued to clientID
func (s *Service) RefreshAccessToken(ctx context.Context, clientID int64, refreshToken string) (*AuthTokens, error) {
	rec, err := s.lookupRefreshToken(ctx, clientID, refreshToken)
	if err != nil {
		return nil, err
	}

	// Revoke old refresh token before issuing new ones to prevent reuse
	if err := s.refreshTokens.Revoke(ctx, rec); err != nil {
		if errors.Is(err, ErrRefreshTokenNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to revoke old refresh token: %w", err)
	}

	if _, err := s.users.GetByID(ctx, rec.UserID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	tokens, err := s.generateTokens(ctx, rec.UserID, clientID, rec.Scopes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return tokens, nil
}

// RevokeRefreshToken revokes a refresh token of userID issued to clientID
func (s *Service) RevokeRefreshToken(ctx context.Context, clientID, userID int64, refreshToken string) error {
	rec, err := s.lookupRefreshToken(ctx, clientID, refreshToken)
	if err != nil {
		return err
	}
	if rec.UserID != userID {
		return ErrInvalidRefreshToken
	}

	if err := s.refreshTokens.Revoke(ctx, rec); err != nil {
		if errors.Is(err, ErrRefreshTokenNotFound) {
			return ErrInvalidRefreshToken
		}
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// lookupRefreshToken decodes a refresh token and returns its live record.
// Every mismatch is reported as ErrInvalidRefreshToken.
func (s *Service) lookupRefreshToken(ctx context.Context, clientID int64, refreshToken string) (*RefreshRecord, error) {
	t, err := s.codec.Decode(strings.TrimSpace(refreshToken))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRefreshToken, err)
	}

	switch {
	case t.Type != token.TypeRefresh:
		return nil, fmt.Errorf("%w: wrong token type %q", ErrInvalidRefreshToken, t.Type)
	case t.ID == nil || t.VerificationCode == "":
		return nil, fmt.Errorf("%w: missing id or verification code", ErrInvalidRefreshToken)
	case t.ClientID != clientID:
		return nil, fmt.Errorf("%w: issued to another client", ErrInvalidRefreshToken)
	case t.Expired(s.now()):
		return nil, fmt.Errorf("%w: expired", ErrInvalidRefreshToken)
	}

	rec, err := s.refreshTokens.Get(ctx, *t.ID)
	if err != nil {
		if errors.Is(err, ErrRefreshTokenNotFound) {
			return nil, fmt.Errorf("%w: revoked or unknown", ErrInvalidRefreshToken)
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}

	if rec.UserID != t.UserID || rec.ClientID != clientID ||
		subtle.ConstantTimeCompare([]byte(rec.VerifyHash), []byte(hashToken(t.VerificationCode))) != 1 {
		return nil, fmt.Errorf("%w: record mismatch", ErrInvalidRefreshToken)
	}

	return rec, nil
}

// VerifyEmail verifies a user's email using the verification token
func (s *Service) VerifyEmail(ctx context.Context, verificationToken string) error {
	existingUser, err := s.users.GetByVerificationToken(ctx, verificationToken)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			alreadyVerified, checkErr := s.users.CheckIfTokenAlreadyUsed(ctx, verificationToken)
			if checkErr == nil && alreadyVerified {
				return ErrEmailAlreadyVerified
			}
			return ErrInvalidVerificationToken
		}
		return fmt.Errorf("failed to find user by token: %w", err)
	}

	if existingUser.EmailVerificationSentAt == nil {
		return ErrVerificationExpired
	}
	if s.now().After(existingUser.EmailVerificationSentAt.Add(verificationTokenTTL)) {
		return ErrVerificationExpired
	}

	if err := s.users.MarkEmailAsVerified(ctx, existingUser.ID); err != nil {
		return fmt.Errorf("failed to verify email: %w", err)
	}

	return nil
}

// generateTokens creates an access token and a stored refresh token
func (s *Service) generateTokens(ctx context.Context, userID, clientID int64, scopes []string) (*AuthTokens, error) {
	now := s.now()

	accessToken, err := s.codec.Encode(token.Token{
		Type:      token.TypeAccess,
		ClientID:  clientID,
		UserID:    userID,
		Scopes:    scopes,
		ExpiresAt: token.ExpiresIn(now, s.accessTokenDuration),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}

	id, err := s.refreshTokens.NextID(ctx)
	if err != nil {
		return nil, err
	}

	verificationCode, err := generateRandomToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiresAt := token.ExpiresIn(now, s.refreshTokenDuration)
	rec := &RefreshRecord{
		ID:         id,
		UserID:     userID,
		ClientID:   clientID,
		VerifyHash: hashToken(verificationCode),
		Scopes:     scopes,
		ExpiresAt:  *expiresAt,
		CreatedAt:  now,
	}
	if err := s.refreshTokens.Store(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	refreshToken, err := s.codec.Encode(token.Token{
		Type:             token.TypeRefresh,
		ID:               token.TokenID(id),
		VerificationCode: verificationCode,
		ClientID:         clientID,
		UserID:           userID,
		ExpiresAt:        expiresAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.accessTokenDuration.Seconds()),
		Scope:        strings.Join(scopes, " "),
	}, nil
}

// RequestPasswordReset initiates the password reset process
// Always returns nil to prevent email enumeration attacks
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	existingUser, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if !errors.Is(err, user.ErrNotFound) {
			s.logger.Warn("failed to get user for password reset", "error", err)
		}
		return nil
	}

	resetToken, _, err := s.resetTokens.CreateToken(existingUser.ID, passwordResetTokenTTL)
	if err != nil {
		s.logger.Warn("failed to create password reset token", "error", err)
		return nil
	}

	go func() {
		emailCtx := context.Background()
		if err := s.emailService.SendPasswordResetEmail(emailCtx, existingUser.Email, existingUser.Username, resetToken); err != nil {
			s.logger.Warn("failed to send password reset email", "email", existingUser.Email, "error", err)
		}
	}()

	return nil
}

// ResetPassword sets a new password with a reset token. A token works once;
// every refresh token of the user is revoked afterwards.
func (s *Service) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	claims, err := s.resetTokens.VerifyToken(resetToken)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResetToken, err)
	}

	fresh, err := s.resetGuard.Consume(ctx, claims.TokenID, claims.ExpiresAt.Sub(s.now()))
	if err != nil {
		return fmt.Errorf("failed to consume password reset token: %w", err)
	}
	if !fresh {
		return fmt.Errorf("%w: already used", ErrInvalidResetToken)
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, claims.UserID, passwordHash); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.refreshTokens.RevokeAllUserTokens(ctx, claims.UserID); err != nil {
		s.logger.Warn("failed to revoke all user tokens after password reset", "error", err)
	}

	return nil
}

// ResendVerificationEmail sends a new verification email to the user
// Always returns nil to prevent email enumeration attacks
func (s *Service) ResendVerificationEmail(ctx context.Context, email string) error {
	existingUser, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if !errors.Is(err, user.ErrNotFound) {
			s.logger.Warn("failed to get user for resend verification", "error", err)
		}
		return nil
	}

	if existingUser.EmailVerified {
		return nil
	}

	verificationToken, err := generateRandomToken()
	if err != nil {
		s.logger.Warn("failed to generate verification token", "error", err)
		return nil
	}

	if err := s.users.UpdateVerificationToken(ctx, existingUser.ID, verificationToken); err != nil {
		s.logger.Warn("failed to update verification token", "error", err)
		return nil
	}

	s.sendVerification(existingUser.Email, existingUser.Username, verificationToken)

	return nil
}

// sendVerification mails a verification link without blocking the request
func (s *Service) sendVerification(email, username, verificationToken string) {
	go func() {
		// The request context is cancelled once the response is written
		emailCtx := context.Background()
		if err := s.emailService.SendVerificationEmail(emailCtx, email, username, verificationToken); err != nil {
			s.logger.Warn("failed to send verification email", "email", email, "error", err)
		}
	}()
}
