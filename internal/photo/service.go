package photo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/feed"
)

const maxDescriptionLength = 1000

type Store interface {
	Create(ctx context.Context, p *Photo) error
	GetByID(ctx context.Context, id int64) (*Photo, error)
	Delete(ctx context.Context, id int64) error
}

// AlbumOwners resolves who owns an album
type AlbumOwners interface {
	OwnerID(ctx context.Context, albumID int64) (int64, error)
}

type FeedWriter interface {
	Create(ctx context.Context, e *feed.Entry) error
	RemoveByPhoto(ctx context.Context, photoID int64) error
}

// TargetCleaner removes records that point at a photo
type TargetCleaner interface {
	RemoveByPhoto(ctx context.Context, photoID int64) error
}

type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	photos        Store
	albums        AlbumOwners
	feeds         FeedWriter
	comments      TargetCleaner
	notifications TargetCleaner
	tx            TxRunner
}

func NewService(photos Store, albums AlbumOwners, feeds FeedWriter, comments, notifications TargetCleaner, tx TxRunner) *Service {
	return &Service{
		photos:        photos,
		albums:        albums,
		feeds:         feeds,
		comments:      comments,
		notifications: notifications,
		tx:            tx,
	}
}

// Create records a photo and announces it in the uploader's feed. A photo
// can only be placed in an album of its uploader.
func (s *Service) Create(ctx context.Context, userID int64, description string, albumID *int64) (*Photo, error) {
	description = strings.TrimSpace(description)
	if len(description) > maxDescriptionLength {
		return nil, apperr.Invalid("description must be at most %d bytes", maxDescriptionLength)
	}
	if albumID != nil {
		ownerID, err := s.albums.OwnerID(ctx, *albumID)
		if err != nil {
			return nil, err
		}
		if ownerID != userID {
			return nil, apperr.Forbidden(fmt.Sprintf("add photo to album %d", *albumID))
		}
	}

	p := &Photo{UserID: userID, AlbumID: albumID, Description: description}
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.photos.Create(ctx, p); err != nil {
			return err
		}
		return s.feeds.Create(ctx, feed.ForPhoto(userID, p.ID, p.CreatedAt))
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Photo, error) {
	return s.photos.GetByID(ctx, id)
}

// Remove deletes a photo with its feed entries, comments and
// notifications. A missing photo is a no-op.
func (s *Service) Remove(ctx context.Context, id, currentUserID int64) error {
	p, err := s.photos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil
		}
		return err
	}
	if p.UserID != currentUserID {
		return apperr.Forbidden(fmt.Sprintf("remove photo %d", id))
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.feeds.RemoveByPhoto(ctx, id); err != nil {
			return err
		}
		if err := s.notifications.RemoveByPhoto(ctx, id); err != nil {
			return err
		}
		if err := s.comments.RemoveByPhoto(ctx, id); err != nil {
			return err
		}
		return s.photos.Delete(ctx, id)
	})
}
