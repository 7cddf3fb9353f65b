package post

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/feed"
)

const maxMessageLength = 4000

type Store interface {
	Create(ctx context.Context, p *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	UpdateMessage(ctx context.Context, id int64, message string) error
	Delete(ctx context.Context, id int64) error
}

type FeedWriter interface {
	Create(ctx context.Context, e *feed.Entry) error
	RemoveByPost(ctx context.Context, postID int64) error
}

type CommentRemover interface {
	RemoveByPost(ctx context.Context, postID int64) error
}

type Notifier interface {
	CreateWallPostNotification(ctx context.Context, fromUserID, toUserID, postID int64) error
	RemoveByPost(ctx context.Context, postID int64) error
}

type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	posts         Store
	feeds         FeedWriter
	comments      CommentRemover
	notifications Notifier
	tx            TxRunner
}

func NewService(posts Store, feeds FeedWriter, comments CommentRemover, notifications Notifier, tx TxRunner) *Service {
	return &Service{
		posts:         posts,
		feeds:         feeds,
		comments:      comments,
		notifications: notifications,
		tx:            tx,
	}
}

// Create stores the post together with its feed entry. A post on someone
// else's wall notifies the wall owner.
func (s *Service) Create(ctx context.Context, userID int64, toUserID *int64, message string) (*Post, error) {
	message, err := validateMessage(message)
	if err != nil {
		return nil, err
	}
	if toUserID != nil && *toUserID == userID {
		toUserID = nil
	}

	p := &Post{UserID: userID, ToUserID: toUserID, Message: message}
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.posts.Create(ctx, p); err != nil {
			return err
		}
		if err := s.feeds.Create(ctx, feed.ForPost(userID, p.ID, p.CreatedAt)); err != nil {
			return err
		}
		if p.IsWallPost() {
			return s.notifications.CreateWallPostNotification(ctx, userID, *p.ToUserID, p.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Post, error) {
	return s.posts.GetByID(ctx, id)
}

// Edit replaces the message of a post owned by currentUserID
func (s *Service) Edit(ctx context.Context, id, currentUserID int64, message string) (*Post, error) {
	message, err := validateMessage(message)
	if err != nil {
		return nil, err
	}

	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.UserID != currentUserID {
		return nil, apperr.Forbidden(fmt.Sprintf("edit post %d", id))
	}

	if err := s.posts.UpdateMessage(ctx, id, message); err != nil {
		return nil, err
	}
	p.Message = message
	return p, nil
}

// Remove deletes a post with its feed entries, comments and notifications.
// Removing a post that does not exist succeeds.
func (s *Service) Remove(ctx context.Context, id, currentUserID int64) error {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil
		}
		return err
	}
	if p.UserID != currentUserID {
		return apperr.Forbidden(fmt.Sprintf("remove post %d", id))
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.feeds.RemoveByPost(ctx, id); err != nil {
			return err
		}
		if err := s.notifications.RemoveByPost(ctx, id); err != nil {
			return err
		}
		if err := s.comments.RemoveByPost(ctx, id); err != nil {
			return err
		}
		return s.posts.Delete(ctx, id)
	})
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
