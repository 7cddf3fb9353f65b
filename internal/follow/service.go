package follow

import (
	"context"

	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/database"
	"github.com/zazzlife/zazz-api/internal/user"
)

type Store interface {
	Insert(ctx context.Context, fromUserID, toUserID int64) (bool, error)
	Delete(ctx context.Context, fromUserID, toUserID int64) (bool, error)
	Followers(ctx context.Context, userID int64, limit int) ([]Follow, error)
}

// Users confirms the followed account exists
type Users interface {
	GetAccountType(ctx context.Context, id int64) (user.AccountType, error)
}

type Notifier interface {
	CreateFollowNotification(ctx context.Context, fromUserID, toUserID int64) error
	RemoveFollowNotification(ctx context.Context, fromUserID, toUserID int64) error
}

type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	follows       Store
	users         Users
	notifications Notifier
	tx            TxRunner
}

func NewService(follows Store, users Users, notifications Notifier, tx TxRunner) *Service {
	return &Service{follows: follows, users: users, notifications: notifications, tx: tx}
}

// Follow makes fromUserID follow toUserID. Following twice is a no-op and
// only the first follow notifies.
func (s *Service) Follow(ctx context.Context, fromUserID, toUserID int64) error {
	if fromUserID == toUserID {
		return apperr.Invalid("users cannot follow themselves")
	}
	if _, err := s.users.GetAccountType(ctx, toUserID); err != nil {
		return err
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err := s.follows.Insert(ctx, fromUserID, toUserID)
		if err != nil || !created {
			return err
		}
		return s.notifications.CreateFollowNotification(ctx, fromUserID, toUserID)
	})
}

// Unfollow removes the follow and its notification
func (s *Service) Unfollow(ctx context.Context, fromUserID, toUserID int64) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		removed, err := s.follows.Delete(ctx, fromUserID, toUserID)
		if err != nil || !removed {
			return err
		}
		return s.notifications.RemoveFollowNotification(ctx, fromUserID, toUserID)
	})
}

func (s *Service) Followers(ctx context.Context, userID int64, limit int) ([]Follow, error) {
	return s.follows.Followers(ctx, userID, database.PageSize(limit))
}
