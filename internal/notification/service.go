package notification

import (
	"context"
	"fmt"

	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/database"
)

// Store is the persistence the service needs
type Store interface {
	Insert(ctx context.Context, notifications []*Notification) error
	List(ctx context.Context, userID, before int64, limit int) ([]Notification, error)
	RecipientID(ctx context.Context, id int64) (int64, error)
	Delete(ctx context.Context, id int64) error
	DeleteByTarget(ctx context.Context, target Target, id int64) error
	DeleteFollow(ctx context.Context, fromUserID, toUserID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
	UnreadCount(ctx context.Context, userID int64) (int, error)
}

// FollowerLister resolves who follows a user
type FollowerLister interface {
	FollowerIDs(ctx context.Context, userID int64) ([]int64, error)
}

// Service creates and manages user notifications. Creation joins the
// transaction carried by ctx, if any.
type Service struct {
	store     Store
	followers FollowerLister
}

func NewService(store Store, followers FollowerLister) *Service {
	return &Service{store: store, followers: followers}
}

// List returns a page of the user's notifications, newest first
func (s *Service) List(ctx context.Context, userID, before int64, limit int) ([]Notification, error) {
	if before < 0 {
		return nil, apperr.Invalid("before must not be negative")
	}
	return s.store.List(ctx, userID, before, database.PageSize(limit))
}

func (s *Service) CreateFollowNotification(ctx context.Context, fromUserID, toUserID int64) error {
	return s.create(ctx, &Notification{UserID: toUserID, FromUserID: fromUserID, Type: TypeFollow})
}

func (s *Service) CreateWallPostNotification(ctx context.Context, fromUserID, toUserID, postID int64) error {
	return s.create(ctx, &Notification{UserID: toUserID, FromUserID: fromUserID, Type: TypeWallPost, PostID: &postID})
}

func (s *Service) CreatePhotoCommentNotification(ctx context.Context, commentID, commenterID, photoID, recipientID int64) error {
	return s.create(ctx, &Notification{
		UserID:     recipientID,
		FromUserID: commenterID,
		Type:       TypePhotoComment,
		PhotoID:    &photoID,
		CommentID:  &commentID,
	})
}

func (s *Service) CreatePostCommentNotification(ctx context.Context, commentID, commenterID, postID, recipientID int64) error {
	return s.create(ctx, &Notification{
		UserID:     recipientID,
		FromUserID: commenterID,
		Type:       TypePostComment,
		PostID:     &postID,
		CommentID:  &commentID,
	})
}

func (s *Service) CreateEventCommentNotification(ctx context.Context, commentID, commenterID, eventID, recipientID int64) error {
	return s.create(ctx, &Notification{
		UserID:     recipientID,
		FromUserID: commenterID,
		Type:       TypeEventComment,
		EventID:    &eventID,
		CommentID:  &commentID,
	})
}

// CreateNewEventNotification notifies every follower of the creator
func (s *Service) CreateNewEventNotification(ctx context.Context, creatorID, eventID int64) error {
	followers, err := s.followers.FollowerIDs(ctx, creatorID)
	if err != nil {
		return fmt.Errorf("failed to load followers: %w", err)
	}

	batch := make([]*Notification, 0, len(followers))
	for _, followerID := range followers {
		batch = append(batch, &Notification{
			UserID:     followerID,
			FromUserID: creatorID,
			Type:       TypeNewEvent,
			EventID:    &eventID,
		})
	}
	return s.store.Insert(ctx, batch)
}

func (s *Service) RemoveFollowNotification(ctx context.Context, fromUserID, toUserID int64) error {
	return s.store.DeleteFollow(ctx, fromUserID, toUserID)
}

// Remove deletes a notification. Only its recipient may do so.
func (s *Service) Remove(ctx context.Context, id, currentUserID int64) error {
	recipientID, err := s.store.RecipientID(ctx, id)
	if err != nil {
		return err
	}
	if recipientID != currentUserID {
		return apperr.Forbidden(fmt.Sprintf("remove notification %d", id))
	}
	return s.store.Delete(ctx, id)
}

func (s *Service) RemoveByPost(ctx context.Context, postID int64) error {
	return s.store.DeleteByTarget(ctx, TargetPost, postID)
}

func (s *Service) RemoveByEvent(ctx context.Context, eventID int64) error {
	return s.store.DeleteByTarget(ctx, TargetEvent, eventID)
}

func (s *Service) RemoveByPhoto(ctx context.Context, photoID int64) error {
	return s.store.DeleteByTarget(ctx, TargetPhoto, photoID)
}

func (s *Service) RemoveByComment(ctx context.Context, commentID int64) error {
	return s.store.DeleteByTarget(ctx, TargetComment, commentID)
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) error {
	return s.store.MarkAllRead(ctx, userID)
}

func (s *Service) UnreadCount(ctx context.Context, userID int64) (int, error) {
	return s.store.UnreadCount(ctx, userID)
}

func (s *Service) create(ctx context.Context, n *Notification) error {
	return s.store.Insert(ctx, []*Notification{n})
}
