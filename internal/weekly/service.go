package weekly

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/user"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 1000
)

var ErrLimitReached = fmt.Errorf("%w: a club can have at most %d weeklies", apperr.ErrInvalidArgument, MaxPerClub)

type Store interface {
	Create(ctx context.Context, w *Weekly) error
	GetByID(ctx context.Context, id int64) (*Weekly, error)
	Update(ctx context.Context, w *Weekly) error
	Delete(ctx context.Context, id int64) error
	CountByUser(ctx context.Context, userID int64) (int, error)
	ListByUser(ctx context.Context, userID int64) ([]Weekly, error)
}

type AccountTypes interface {
	GetAccountType(ctx context.Context, id int64) (user.AccountType, error)
}

type PhotoOwners interface {
	OwnerID(ctx context.Context, photoID int64) (int64, error)
}

type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	weeklies Store
	accounts AccountTypes
	photos   PhotoOwners
	tx       TxRunner
}

func NewService(weeklies Store, accounts AccountTypes, photos PhotoOwners, tx TxRunner) *Service {
	return &Service{weeklies: weeklies, accounts: accounts, photos: photos, tx: tx}
}

// Create adds a weekly to a club. Only club accounts may have weeklies.
func (s *Service) Create(ctx context.Context, clubID int64, details Details) (*Weekly, error) {
	if clubID == 0 {
		return nil, apperr.Invalid("club id is required")
	}
	details, err := normalize(details)
	if err != nil {
		return nil, err
	}

	accountType, err := s.accounts.GetAccountType(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if accountType != user.AccountClub {
		return nil, apperr.Forbidden("create weekly")
	}
	if err := s.checkPhoto(ctx, details.PhotoID, clubID); err != nil {
		return nil, err
	}

	w := &Weekly{UserID: clubID, Details: details}
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		count, err := s.weeklies.CountByUser(ctx, clubID)
		if err != nil {
			return err
		}
		if count >= MaxPerClub {
			return ErrLimitReached
		}
		return s.weeklies.Create(ctx, w)
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Weekly, error) {
	if id == 0 {
		return nil, apperr.Invalid("weekly id is required")
	}
	return s.weeklies.GetByID(ctx, id)
}

// Edit replaces the details of a weekly owned by currentUserID
func (s *Service) Edit(ctx context.Context, id, currentUserID int64, details Details) (*Weekly, error) {
	if id == 0 {
		return nil, apperr.Invalid("weekly id is required")
	}
	details, err := normalize(details)
	if err != nil {
		return nil, err
	}

	w, err := s.weeklies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w.UserID != currentUserID {
		return nil, apperr.Forbidden(fmt.Sprintf("edit weekly %d", id))
	}
	if err := s.checkPhoto(ctx, details.PhotoID, currentUserID); err != nil {
		return nil, err
	}

	w.Details = details
	if err := s.weeklies.Update(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Delete removes a weekly. A missing weekly is a no-op.
func (s *Service) Delete(ctx context.Context, id, currentUserID int64) error {
	if id == 0 {
		return apperr.Invalid("weekly id is required")
	}

	w, err := s.weeklies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil
		}
		return err
	}
	if w.UserID != currentUserID {
		return apperr.Forbidden(fmt.Sprintf("delete weekly %d", id))
	}
	return s.weeklies.Delete(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, clubID int64) ([]Weekly, error) {
	if clubID <= 0 {
		return nil, apperr.Invalid("club id is required")
	}
	return s.weeklies.ListByUser(ctx, clubID)
}

func (s *Service) checkPhoto(ctx context.Context, photoID *int64, clubID int64) error {
	if photoID == nil {
		return nil
	}
	ownerID, err := s.photos.OwnerID(ctx, *photoID)
	if err != nil {
		return err
	}
	if ownerID != clubID {
		return apperr.Forbidden(fmt.Sprintf("use photo %d", *photoID))
	}
	return nil
}

func normalize(d Details) (Details, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)

	switch {
	case d.Name == "":
		return d, apperr.Invalid("name is required")
	case len(d.Name) > maxNameLength:
		return d, apperr.Invalid("name must be at most %d bytes", maxNameLength)
	case len(d.Description) > maxDescriptionLength:
		return d, apperr.Invalid("description must be at most %d bytes", maxDescriptionLength)
	case d.DayOfWeek < time.Sunday || d.DayOfWeek > time.Saturday:
		return d, apperr.Invalid("day of week must be between 0 and 6")
	}
	return d, nil
}
