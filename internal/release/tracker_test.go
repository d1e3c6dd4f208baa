package release

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/reelmates/reelmates-BE/internal/catalog"
	"github.com/reelmates/reelmates-BE/internal/db"
	"github.com/reelmates/reelmates-BE/internal/notification"
	"github.com/reelmates/reelmates-BE/internal/util"
	"github.com/stretchr/testify/require"
)

type noopSender struct{}

func (noopSender) Send(ctx context.Context, token string, n *db.Notification) error { return nil }

// fakeCatalog records the queried date and serves a canned delta.
type fakeCatalog struct {
	movies    []catalog.Movie
	err       error
	lastQuery string
}

func (c *fakeCatalog) DiscoverByReleaseDate(ctx context.Context, date string) ([]catalog.Movie, error) {
	c.lastQuery = date
	return c.movies, c.err
}

func newTestTracker(t *testing.T, store db.Store, catalogClient CatalogClient) *Tracker {
	t.Helper()

	dispatcher := notification.NewDispatcher(store,
		notification.NewHistoryStore(store),
		notification.NewGateway(store, noopSender{}),
	)

	tracker, err := NewTracker(store, catalogClient, dispatcher, util.ScheduleClock{
		Hour:     12,
		Location: time.UTC,
	})
	require.NoError(t, err)

	return tracker
}

func listHistory(t *testing.T, store db.Store, userID string) []*db.Notification {
	t.Helper()
	stored, err := store.ListNotifications(context.Background(), userID, 100)
	require.NoError(t, err)
	return stored
}

func TestMatchedReleaseNotifiesUser(t *testing.T) {
	store := db.NewMemoryStore()
	store.PutUser(&db.User{ID: "u1", LikedMovies: []int64{42, 99}})
	store.PutUser(&db.User{ID: "u2", LikedMovies: []int64{99}})

	tracker := newTestTracker(t, store, &fakeCatalog{
		movies: []catalog.Movie{{ID: 42, Title: "X"}},
	})

	err := tracker.notifyUpcomingReleases(context.Background())
	require.NoError(t, err)

	stored := listHistory(t, store, "u1")
	require.Len(t, stored, 1)
	require.Equal(t, notification.TypeMovieRelease, stored[0].Type)
	require.Equal(t, "The movie 'X' you liked is releasing tomorrow!", stored[0].Message)
	require.Equal(t, "42", stored[0].Data["movieId"])

	require.Empty(t, listHistory(t, store, "u2"))
}

func TestMultipleMatchesNotifyPerMovie(t *testing.T) {
	store := db.NewMemoryStore()
	store.PutUser(&db.User{ID: "u1", LikedMovies: []int64{42, 7}})

	tracker := newTestTracker(t, store, &fakeCatalog{
		movies: []catalog.Movie{{ID: 42, Title: "X"}, {ID: 7, Title: "Y"}, {ID: 500, Title: "Z"}},
	})

	err := tracker.notifyUpcomingReleases(context.Background())
	require.NoError(t, err)
	require.Len(t, listHistory(t, store, "u1"), 2)
}

func TestEmptyDeltaIsNoOp(t *testing.T) {
	store := db.NewMemoryStore()
	store.PutUser(&db.User{ID: "u1", LikedMovies: []int64{42}})

	tracker := newTestTracker(t, store, &fakeCatalog{})

	err := tracker.notifyUpcomingReleases(context.Background())
	require.NoError(t, err)
	require.Empty(t, listHistory(t, store, "u1"))
}

func TestCatalogFailureAbortsRun(t *testing.T) {
	store := db.NewMemoryStore()
	store.PutUser(&db.User{ID: "u1", LikedMovies: []int64{42}})

	tracker := newTestTracker(t, store, &fakeCatalog{err: errors.New("rate limited")})

	err := tracker.notifyUpcomingReleases(context.Background())
	require.Error(t, err)
	require.Empty(t, listHistory(t, store, "u1"))
}

func TestQueriesTomorrowInJobTimezone(t *testing.T) {
	store := db.NewMemoryStore()
	fake := &fakeCatalog{}
	tracker := newTestTracker(t, store, fake)

	// 23:30 UTC on Aug 30 is already Aug 31 in UTC+3, so "tomorrow" there
	// is Sep 1.
	tracker.clock.Location = time.FixedZone("UTC+3", 3*60*60)
	tracker.now = func() time.Time {
		return time.Date(2026, time.August, 30, 23, 30, 0, 0, time.UTC)
	}

	err := tracker.notifyUpcomingReleases(context.Background())
	require.NoError(t, err)
	require.Equal(t, "2026-09-01", fake.lastQuery)
}
