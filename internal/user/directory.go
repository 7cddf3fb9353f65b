package user

import (
	"context"
	"strings"

	"github.com/zazzlife/zazz-api/internal/cache"
)

// Finder loads users for the directory
type Finder interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
}

// Directory resolves usernames and display names with an in-memory cache
// in front of the user table
type Directory struct {
	users        Finder
	ids          *cache.Ring[string, int64]
	displayNames *cache.Ring[int64, string]
}

func NewDirectory(users Finder, ids *cache.Ring[string, int64], displayNames *cache.Ring[int64, string]) *Directory {
	return &Directory{users: users, ids: ids, displayNames: displayNames}
}

// IDByUsername returns the id of the user with the given username
func (d *Directory) IDByUsername(ctx context.Context, username string) (int64, error) {
	key := strings.ToLower(username)
	if id, ok := d.ids.Get(key); ok {
		return id, nil
	}

	u, err := d.users.GetByUsername(ctx, username)
	if err != nil {
		return 0, err
	}

	d.ids.Add(key, u.ID)
	d.displayNames.Add(u.ID, DisplayName(u))
	return u.ID, nil
}

// DisplayName returns the name shown for a user: the club name for clubs,
// the username otherwise
func (d *Directory) DisplayName(ctx context.Context, id int64) (string, error) {
	if name, ok := d.displayNames.Get(id); ok {
		return name, nil
	}

	u, err := d.users.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	name := DisplayName(u)
	d.displayNames.Add(id, name)
	return name, nil
}

// Forget drops cached data of a user
func (d *Directory) Forget(u *User) {
	d.ids.Remove(strings.ToLower(u.Username))
	d.displayNames.Remove(u.ID)
}

// DisplayName returns the club name for club accounts and the username otherwise
func DisplayName(u *User) string {
	if u.IsClub() && u.ClubName != nil && *u.ClubName != "" {
		return *u.ClubName
	}
	return u.Username
}
