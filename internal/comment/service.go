package comment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/database"
)

const maxMessageLength = 2000

type Store interface {
	Create(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id int64) (*Comment, error)
	List(ctx context.Context, target Target, targetID, after int64, limit int) ([]Comment, error)
	UpdateMessage(ctx context.Context, id int64, message string) error
	Delete(ctx context.Context, id int64) error
	DeleteByTarget(ctx context.Context, target Target, targetID int64) error
}

// OwnerLookup resolves who owns a commentable entity
type OwnerLookup interface {
	OwnerID(ctx context.Context, id int64) (int64, error)
}

type Notifier interface {
	CreatePhotoCommentNotification(ctx context.Context, commentID, commenterID, photoID, recipientID int64) error
	CreatePostCommentNotification(ctx context.Context, commentID, commenterID, postID, recipientID int64) error
	CreateEventCommentNotification(ctx context.Context, commentID, commenterID, eventID, recipientID int64) error
	RemoveByComment(ctx context.Context, commentID int64) error
}

type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Owners groups the owner lookups of each commentable entity
type Owners struct {
	Photos OwnerLookup
	Posts  OwnerLookup
	Events OwnerLookup
}

type Service struct {
	comments      Store
	owners        Owners
	notifications Notifier
	tx            TxRunner
}

func NewService(comments Store, owners Owners, notifications Notifier, tx TxRunner) *Service {
	return &Service{comments: comments, owners: owners, notifications: notifications, tx: tx}
}

// NewComment is a comment as submitted. Exactly one of the target ids must
// be set.
type NewComment struct {
	PhotoID *int64
	PostID  *int64
	EventID *int64
	Message string
}

// Create stores a comment and notifies the owner of the target unless the
// owner wrote it
func (s *Service) Create(ctx context.Context, userID int64, nc NewComment) (*Comment, error) {
	message, err := validateMessage(nc.Message)
	if err != nil {
		return nil, err
	}

	c := &Comment{
		UserID:  userID,
		PhotoID: nc.PhotoID,
		PostID:  nc.PostID,
		EventID: nc.EventID,
		Message: message,
	}
	target, targetID, ok := c.target()
	if !ok {
		return nil, apperr.Invalid("a comment needs exactly one of photo_id, post_id or event_id")
	}

	ownerID, err := s.lookup(target).OwnerID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.comments.Create(ctx, c); err != nil {
			return err
		}
		if ownerID == userID {
			return nil
		}
		switch target {
		case TargetPhoto:
			return s.notifications.CreatePhotoCommentNotification(ctx, c.ID, userID, targetID, ownerID)
		case TargetPost:
			return s.notifications.CreatePostCommentNotification(ctx, c.ID, userID, targetID, ownerID)
		default:
			return s.notifications.CreateEventCommentNotification(ctx, c.ID, userID, targetID, ownerID)
		}
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns a page of the comments on a target, oldest first
func (s *Service) List(ctx context.Context, target Target, targetID, after int64, limit int) ([]Comment, error) {
	return s.comments.List(ctx, target, targetID, after, database.PageSize(limit))
}

// Edit replaces the message of a comment. Editing a missing comment is a
// no-op.
func (s *Service) Edit(ctx context.Context, id, currentUserID int64, message string) error {
	message, err := validateMessage(message)
	if err != nil {
		return err
	}

	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil
		}
		return err
	}
	if c.UserID != currentUserID {
		return apperr.Forbidden(fmt.Sprintf("edit comment %d", id))
	}

	return s.comments.UpdateMessage(ctx, id, message)
}

// Remove deletes a comment and its notifications. Removing a missing comment
// is a no-op.
func (s *Service) Remove(ctx context.Context, id, currentUserID int64) error {
	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil
		}
		return err
	}
	if c.UserID != currentUserID {
		return apperr.Forbidden(fmt.Sprintf("remove comment %d", id))
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.notifications.RemoveByComment(ctx, id); err != nil {
			return err
		}
		return s.comments.Delete(ctx, id)
	})
}

func (s *Service) RemoveByPhoto(ctx context.Context, photoID int64) error {
	return s.comments.DeleteByTarget(ctx, TargetPhoto, photoID)
}

func (s *Service) RemoveByPost(ctx context.Context, postID int64) error {
	return s.comments.DeleteByTarget(ctx, TargetPost, postID)
}

func (s *Service) RemoveByEvent(ctx context.Context, eventID int64) error {
	return s.comments.DeleteByTarget(ctx, TargetEvent, eventID)
}

func (s *Service) lookup(target Target) OwnerLookup {
	switch target {
	case TargetPhoto:
		return s.owners.Photos
	case TargetPost:
		return s.owners.Posts
	default:
		return s.owners.Events
	}
}

func validateMessage(message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", apperr.Invalid("message is required")
	}
	if len(message) > maxMessageLength {
		return "", apperr.Invalid("message must be at most %d bytes", maxMessageLength)
	}
	return message, nil
}
