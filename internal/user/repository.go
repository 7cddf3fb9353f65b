package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/database"
)

var (
	ErrNotFound          = apperr.NotFound("user")
	ErrDuplicateEmail    = fmt.Errorf("email %w", apperr.ErrAlreadyExists)
	ErrDuplicateUsername = fmt.Errorf("username %w", apperr.ErrAlreadyExists)
)

// Repository handles user data persistence
type Repository struct {
	db bun.IDB
}

func NewRepository(db bun.IDB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user into the database
func (r *Repository) Create(ctx context.Context, nu NewUser) (*User, error) {
	now := time.Now()
	dbUser := &database.User{
		Username:                nu.Username,
		Email:                   nu.Email,
		PasswordHash:            nu.PasswordHash,
		AccountType:             string(nu.AccountType),
		ClubName:                nu.ClubName,
		EmailVerificationToken:  &nu.VerificationToken,
		EmailVerificationSentAt: &now,
		EmailVerified:           false,
	}

	_, err := database.Conn(ctx, r.db).NewInsert().
		Model(dbUser).
		Returning("*").
		Exec(ctx)

	if err != nil {
		if database.IsUniqueViolation(err) {
			switch database.ConstraintName(err) {
			case "users_email_key":
				return nil, ErrDuplicateEmail
			default:
				return nil, ErrDuplicateUsername
			}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// GetByEmail retrieves a user by email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.getOne(ctx, "email = ?", email)
}

// GetByUsername retrieves a user by username, ignoring case
func (r *Repository) GetByUsername(ctx context.Context, username string) (*User, error) {
	return r.getOne(ctx, "LOWER(username) = LOWER(?)", username)
}

// GetByID retrieves a user by ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*User, error) {
	return r.getOne(ctx, "id = ?", id)
}

// GetByVerificationToken retrieves an unverified user by verification token
func (r *Repository) GetByVerificationToken(ctx context.Context, token string) (*User, error) {
	return r.getOne(ctx, "email_verification_token = ? AND email_verified = FALSE", token)
}

func (r *Repository) getOne(ctx context.Context, where string, args ...any) (*User, error) {
	dbUser := new(database.User)
	err := database.Conn(ctx, r.db).NewSelect().
		Model(dbUser).
		Where(where, args...).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return mapDBUserToModel(dbUser), nil
}

// GetAccountType returns the account type of a user
func (r *Repository) GetAccountType(ctx context.Context, id int64) (AccountType, error) {
	var accountType string
	err := database.Conn(ctx, r.db).NewSelect().
		Model((*database.User)(nil)).
		Column("account_type").
		Where("id = ?", id).
		Scan(ctx, &accountType)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get account type: %w", err)
	}

	return AccountType(accountType), nil
}

// CheckIfTokenAlreadyUsed checks if a verification token was already used (email verified)
func (r *Repository) CheckIfTokenAlreadyUsed(ctx context.Context, token string) (bool, error) {
	count, err := database.Conn(ctx, r.db).NewSelect().
		Model((*database.User)(nil)).
		Where("email_verification_token = ?", token).
		Where("email_verified = ?", true).
		Count(ctx)

	if err != nil {
		return false, fmt.Errorf("failed to check if token was used: %w", err)
	}

	return count > 0, nil
}

// MarkEmailAsVerified marks a user's email as verified. The token is kept so
// a second click can be told apart from an unknown token.
func (r *Repository) MarkEmailAsVerified(ctx context.Context, userID int64) error {
	return r.update(ctx, userID, "failed to mark email as verified", func(q *bun.UpdateQuery) *bun.UpdateQuery {
		return q.Set("email_verified = ?", true).
			Set("email_verification_sent_at = ?", nil)
	})
}

// UpdatePassword updates a user's password hash
func (r *Repository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	return r.update(ctx, userID, "failed to update password", func(q *bun.UpdateQuery) *bun.UpdateQuery {
		return q.Set("password_hash = ?", passwordHash)
	})
}

// UpdateVerificationToken regenerates verification token for resend
func (r *Repository) UpdateVerificationToken(ctx context.Context, userID int64, token string) error {
	now := time.Now()
	return r.update(ctx, userID, "failed to update verification token", func(q *bun.UpdateQuery) *bun.UpdateQuery {
		return q.Set("email_verification_token = ?", token).
			Set("email_verification_sent_at = ?", now).
			Where("email_verified = ?", false)
	})
}

// TouchLastActivity records that the user was seen now
func (r *Repository) TouchLastActivity(ctx context.Context, userID int64) error {
	return r.update(ctx, userID, "failed to update last activity", func(q *bun.UpdateQuery) *bun.UpdateQuery {
		return q.Set("last_activity = NOW()")
	})
}

func (r *Repository) update(ctx context.Context, userID int64, failure string, apply func(*bun.UpdateQuery) *bun.UpdateQuery) error {
	q := database.Conn(ctx, r.db).NewUpdate().
		Model((*database.User)(nil)).
		Set("updated_at = NOW()").
		Where("id = ?", userID)

	result, err := apply(q).Exec(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", failure, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// mapDBUserToModel converts database model to domain model
func mapDBUserToModel(dbu *database.User) *User {
	return &User{
		ID:                      dbu.ID,
		Username:                dbu.Username,
		Email:                   dbu.Email,
		PasswordHash:            dbu.PasswordHash,
		AccountType:             AccountType(dbu.AccountType),
		ClubName:                dbu.ClubName,
		EmailVerified:           dbu.EmailVerified,
		EmailVerificationToken:  dbu.EmailVerificationToken,
		EmailVerificationSentAt: dbu.EmailVerificationSentAt,
		LastActivity:            dbu.LastActivity,
		CreatedAt:               dbu.CreatedAt,
		UpdatedAt:               dbu.UpdatedAt,
	}
}
