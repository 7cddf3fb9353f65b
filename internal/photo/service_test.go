package photo

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zazzlife/zazz-api/internal/apperr"
	"github.com/zazzlife/zazz-api/internal/feed"
)

type memoryPhotos struct {
	nextID int64
	photos map[int64]*Photo
}

func (m *memoryPhotos) Create(_ context.Context, p *Photo) error {
	m.nextID++
	p.ID = m.nextID
	stored := *p
	m.photos[p.ID] = &stored
	return nil
}

func (m *memoryPhotos) GetByID(_ context.Context, id int64) (*Photo, error) {
	p, ok := m.photos[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *p
	return &out, nil
}

func (m *memoryPhotos) Delete(_ context.Context, id int64) error {
	delete(m.photos, id)
	return nil
}

type fakeFeeds struct {
	entries []*feed.Entry
	removed []int64
}

func (f *fakeFeeds) Create(_ context.Context, e *feed.Entry) error {
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeFeeds) RemoveByPhoto(_ context.Context, id int64) error {
	f.removed = append(f.removed, id)
	return nil
}

type recordingCleaner struct{ removed []int64 }

func (c *recordingCleaner) RemoveByPhoto(_ context.Context, id int64) error {
	c.removed = append(c.removed, id)
	return nil
}

type albumOwners map[int64]int64

func (a albumOwners) OwnerID(_ context.Context, albumID int64) (int64, error) {
	ownerID, ok := a[albumID]
	if !ok {
		return 0, apperr.NotFound("album")
	}
	return ownerID, nil
}

type inlineTx struct{}

func (inlineTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestCreateAndRemovePhoto(t *testing.T) {
	photos := &memoryPhotos{photos: map[int64]*Photo{}}
	feeds := &fakeFeeds{}
	comments, notifications := &recordingCleaner{}, &recordingCleaner{}
	svc := NewService(photos, albumOwners{}, feeds, comments, notifications, inlineTx{})
	ctx := context.Background()

	p, err := svc.Create(ctx, 3, " sunset ", nil)
	require.NoError(t, err)
	assert.Equal(t, "sunset", p.Description)
	require.Len(t, feeds.entries, 1)
	assert.Equal(t, feed.TypePhoto, feeds.entries[0].Type)
	assert.Equal(t, p.ID, *feeds.entries[0].PhotoID)

	_, err = svc.Create(ctx, 3, strings.Repeat("x", maxDescriptionLength+1), nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	require.NoError(t, svc.Remove(ctx, 99, 3))
	assert.ErrorIs(t, svc.Remove(ctx, p.ID, 4), apperr.ErrForbidden)

	require.NoError(t, svc.Remove(ctx, p.ID, 3))
	assert.Empty(t, photos.photos)
	assert.Equal(t, []int64{p.ID}, feeds.removed)
	assert.Equal(t, []int64{p.ID}, comments.removed)
	assert.Equal(t, []int64{p.ID}, notifications.removed)

	_, err = svc.Get(ctx, p.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreatePhotoInAlbum(t *testing.T) {
	photos := &memoryPhotos{photos: map[int64]*Photo{}}
	feeds := &fakeFeeds{}
	svc := NewService(photos, albumOwners{10: 3, 11: 4}, feeds, &recordingCleaner{}, &recordingCleaner{}, inlineTx{})
	ctx := context.Background()

	album := int64(10)
	p, err := svc.Create(ctx, 3, "party", &album)
	require.NoError(t, err)
	require.NotNil(t, p.AlbumID)
	assert.Equal(t, int64(10), *photos.photos[p.ID].AlbumID)

	other := int64(11)
	_, err = svc.Create(ctx, 3, "party", &other)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	missing := int64(12)
	_, err = svc.Create(ctx, 3, "party", &missing)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.Len(t, photos.photos, 1)
	assert.Len(t, feeds.entries, 1)
}
