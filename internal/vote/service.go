package vote

import (
	"context"
	"errors"

	"github.com/zazzlife/zazz-api/internal/apperr"
)

type Store interface {
	Insert(ctx context.Context, photoID, userID int64) error
	Delete(ctx context.Context, photoID, userID int64) (bool, error)
	Exists(ctx context.Context, photoID, userID int64) (bool, error)
	Count(ctx context.Context, photoID int64) (int, error)
	AdjustReceived(ctx context.Context, userID, delta int64) error
}

// PhotoOwners resolves the uploader of a photo
type PhotoOwners interface {
	OwnerID(ctx context.Context, photoID int64) (int64, error)
}

type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	votes  Store
	photos PhotoOwners
	tx     TxRunner
}

func NewService(votes Store, photos PhotoOwners, tx TxRunner) *Service {
	return &Service{votes: votes, photos: photos, tx: tx}
}

// Add records currentUserID's vote on a photo and credits the uploader
func (s *Service) Add(ctx context.Context, photoID, currentUserID int64) error {
	if err := checkIDs(photoID, currentUserID); err != nil {
		return err
	}

	ownerID, err := s.photos.OwnerID(ctx, photoID)
	if err != nil {
		return err
	}

	voted, err := s.votes.Exists(ctx, photoID, currentUserID)
	if err != nil {
		return err
	}
	if voted {
		return ErrAlreadyVoted
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.votes.Insert(ctx, photoID, currentUserID); err != nil {
			return err
		}
		return s.votes.AdjustReceived(ctx, ownerID, 1)
	})
}

// Remove withdraws a vote. A missing photo or vote is a no-op.
func (s *Service) Remove(ctx context.Context, photoID, currentUserID int64) error {
	if err := checkIDs(photoID, currentUserID); err != nil {
		return err
	}

	ownerID, err := s.photos.OwnerID(ctx, photoID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil
		}
		return err
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		removed, err := s.votes.Delete(ctx, photoID, currentUserID)
		if err != nil || !removed {
			return err
		}
		return s.votes.AdjustReceived(ctx, ownerID, -1)
	})
}

func (s *Service) Count(ctx context.Context, photoID int64) (int, error) {
	if photoID == 0 {
		return 0, apperr.Invalid("photo id is required")
	}
	return s.votes.Count(ctx, photoID)
}

// Exists reports whether userID has voted on the photo
func (s *Service) Exists(ctx context.Context, photoID, userID int64) (bool, error) {
	if err := checkIDs(photoID, userID); err != nil {
		return false, err
	}
	return s.votes.Exists(ctx, photoID, userID)
}

func checkIDs(photoID, userID int64) error {
	if photoID == 0 {
		return apperr.Invalid("photo id is required")
	}
	if userID == 0 {
		return apperr.Invalid("user id is required")
	}
	return nil
}
