package album

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/database"
)

const maxNameLength = 50

type Store interface {
	Create(ctx context.Context, a *Album) error
	GetByID(ctx context.Context, id int64) (*Album, error)
	OwnerID(ctx context.Context, id int64) (int64, error)
	Rename(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
	PhotoIDs(ctx context.Context, albumID int64) ([]int64, error)
	ListByUser(ctx context.Context, userID, lastID int64, limit int) ([]Album, error)
}

// PhotoRemover deletes a photo together with everything pointing at it
type PhotoRemover interface {
	Remove(ctx context.Context, id, currentUserID int64) error
}

type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	albums Store
	photos PhotoRemover
	tx     TxRunner
}

func NewService(albums Store, photos PhotoRemover, tx TxRunner) *Service {
	return &Service{albums: albums, photos: photos, tx: tx}
}

func (s *Service) Create(ctx context.Context, userID int64, name string) (*Album, error) {
	if userID == 0 {
		return nil, apperr.Invalid("user id is required")
	}
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	a := &Album{UserID: userID, Name: name}
	if err := s.albums.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Get loads an album with the ids of its photos
func (s *Service) Get(ctx context.Context, id int64) (*Album, error) {
	if id == 0 {
		return nil, apperr.Invalid("album id is required")
	}

	a, err := s.albums.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.PhotoIDs, err = s.albums.PhotoIDs(ctx, id); err != nil {
		return nil, err
	}
	return a, nil
}

// Rename changes the name of an album owned by currentUserID
func (s *Service) Rename(ctx context.Context, id, currentUserID int64, name string) (*Album, error) {
	if id == 0 {
		return nil, apperr.Invalid("album id is required")
	}
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	a, err := s.albums.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.UserID != currentUserID {
		return nil, apperr.Forbidden(fmt.Sprintf("rename album %d", id))
	}

	if err := s.albums.Rename(ctx, id, name); err != nil {
		return nil, err
	}
	a.Name = name
	return a, nil
}

// Delete removes an album and every photo in it. A missing album is a
// no-op.
func (s *Service) Delete(ctx context.Context, id, currentUserID int64) error {
	if id == 0 {
		return apperr.Invalid("album id is required")
	}

	ownerID, err := s.albums.OwnerID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil
		}
		return err
	}
	if ownerID != currentUserID {
		return apperr.Forbidden(fmt.Sprintf("delete album %d", id))
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		photoIDs, err := s.albums.PhotoIDs(ctx, id)
		if err != nil {
			return err
		}
		for _, photoID := range photoIDs {
			if err := s.photos.Remove(ctx, photoID, currentUserID); err != nil {
				return fmt.Errorf("failed to remove photo %d: %w", photoID, err)
			}
		}
		return s.albums.Delete(ctx, id)
	})
}

// ListByUser pages through a user's albums, oldest first. lastAlbumID is
// the last id of the previous page, or 0 for the first page.
func (s *Service) ListByUser(ctx context.Context, userID, lastAlbumID int64, limit int) ([]Album, error) {
	if userID <= 0 {
		return nil, apperr.Invalid("user id is required")
	}
	if lastAlbumID < 0 {
		return nil, apperr.Invalid("last album id must not be negative")
	}
	return s.albums.ListByUser(ctx, userID, lastAlbumID, database.PageSize(limit))
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return name, apperr.Invalid("name is required")
	case len(name) > maxNameLength:
		return name, apperr.Invalid("name must be at most %d bytes", maxNameLength)
	}
	return name, nil
}
