package event

import (
	"context"
	"fmt"
	"strings"

	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/database"
	"github.com/zazzlife/zazz-api/internal/feed"
	"github.com/zazzlife/zazz-api/internal/user"
)

const maxNameLength = 150

type Store interface {
	Create(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	OwnerID(ctx context.Context, id int64) (int64, error)
	Update(ctx context.Context, e *Event) error
	Delete(ctx context.Context, id int64) error
	SetTags(ctx context.Context, eventID int64, tagIDs []int64) error
	ListByUser(ctx context.Context, userID, lastID int64, limit int) ([]Event, error)
}

type TagStore interface {
	FindByNames(ctx context.Context, names []string) ([]Tag, error)
}

type AccountTypes interface {
	GetAccountType(ctx context.Context, id int64) (user.AccountType, error)
}

type FeedWriter interface {
	Create(ctx context.Context, e *feed.Entry) error
	RemoveByEvent(ctx context.Context, eventID int64) error
}

type CommentRemover interface {
	RemoveByEvent(ctx context.Context, eventID int64) error
}

type Notifier interface {
	CreateNewEventNotification(ctx context.Context, creatorID, eventID int64) error
	RemoveByEvent(ctx context.Context, eventID int64) error
}

type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Deps groups the collaborators of the event service
type Deps struct {
	Events        Store
	Tags          TagStore
	Accounts      AccountTypes
	Feeds         FeedWriter
	Comments      CommentRemover
	Notifications Notifier
	Tx            TxRunner
}

type Service struct {
	events        Store
	tags          TagStore
	accounts      AccountTypes
	feeds         FeedWriter
	comments      CommentRemover
	notifications Notifier
	tx            TxRunner
}

func NewService(deps Deps) *Service {
	return &Service{
		events:        deps.Events,
		tags:          deps.Tags,
		accounts:      deps.Accounts,
		feeds:         deps.Feeds,
		comments:      deps.Comments,
		notifications: deps.Notifications,
		tx:            deps.Tx,
	}
}

// Create stores an event with the known tags found in its description and
// announces it in the creator's feed. Followers of a club are notified.
func (s *Service) Create(ctx context.Context, userID int64, details Details) (*Event, error) {
	if userID == 0 {
		return nil, apperr.Invalid("user id is required")
	}
	details, err := normalize(details)
	if err != nil {
		return nil, err
	}

	accountType, err := s.accounts.GetAccountType(ctx, userID)
	if err != nil {
		return nil, err
	}

	e := &Event{UserID: userID, Details: details}
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.events.Create(ctx, e); err != nil {
			return err
		}
		if err := s.attachTags(ctx, e); err != nil {
			return err
		}
		if err := s.feeds.Create(ctx, feed.ForEvent(userID, e.ID, e.CreatedAt)); err != nil {
			return err
		}
		if accountType == user.AccountClub {
			return s.notifications.CreateNewEventNotification(ctx, userID, e.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Event, error) {
	if id == 0 {
		return nil, apperr.Invalid("event id is required")
	}
	return s.events.GetByID(ctx, id)
}

// Update replaces the details and tags of an event owned by currentUserID
func (s *Service) Update(ctx context.Context, id, currentUserID int64, details Details) (*Event, error) {
	if id == 0 {
		return nil, apperr.Invalid("event id is required")
	}
	details, err := normalize(details)
	if err != nil {
		return nil, err
	}

	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.UserID != currentUserID {
		return nil, apperr.Forbidden(fmt.Sprintf("update event %d", id))
	}

	e.Details = details
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.events.Update(ctx, e); err != nil {
			return err
		}
		return s.attachTags(ctx, e)
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Delete removes an event with its feed entries, comments and
// notifications
func (s *Service) Delete(ctx context.Context, id, currentUserID int64) error {
	if id == 0 {
		return apperr.Invalid("event id is required")
	}

	ownerID, err := s.events.OwnerID(ctx, id)
	if err != nil {
		return err
	}
	if ownerID != currentUserID {
		return apperr.Forbidden(fmt.Sprintf("delete event %d", id))
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.feeds.RemoveByEvent(ctx, id); err != nil {
			return err
		}
		if err := s.notifications.RemoveByEvent(ctx, id); err != nil {
			return err
		}
		if err := s.comments.RemoveByEvent(ctx, id); err != nil {
			return err
		}
		return s.events.Delete(ctx, id)
	})
}

// ListByUser pages through a user's events, newest first. lastEventID is
// the last id of the previous page, or 0 for the first page.
func (s *Service) ListByUser(ctx context.Context, userID int64, take int, lastEventID int64) ([]Event, error) {
	if userID == 0 {
		return nil, apperr.Invalid("user id is required")
	}
	if take <= 0 {
		return nil, apperr.Invalid("take must be positive")
	}
	if lastEventID < 0 {
		return nil, apperr.Invalid("last event id must not be negative")
	}
	return s.events.ListByUser(ctx, userID, lastEventID, database.PageSize(take))
}

func (s *Service) attachTags(ctx context.Context, e *Event) error {
	tags, err := s.tags.FindByNames(ctx, ExtractTags(e.Description))
	if err != nil {
		return err
	}

	ids := make([]int64, len(tags))
	for i, t := range tags {
		ids[i] = t.ID
	}
	if err := s.events.SetTags(ctx, e.ID, ids); err != nil {
		return err
	}

	if tags == nil {
		tags = []Tag{}
	}
	e.Tags = tags
	return nil
}

func normalize(d Details) (Details, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	d.Location = strings.TrimSpace(d.Location)
	d.Street = strings.TrimSpace(d.Street)
	d.City = strings.TrimSpace(d.City)

	switch {
	case d.Name == "":
		return d, apperr.Invalid("name is required")
	case len(d.Name) > maxNameLength:
		return d, apperr.Invalid("name must be at most %d bytes", maxNameLength)
	case d.StartsAt.IsZero():
		return d, apperr.Invalid("starts_at is required")
	case d.Price != nil && *d.Price < 0:
		return d, apperr.Invalid("price must not be negative")
	}
	return d, nil
}
