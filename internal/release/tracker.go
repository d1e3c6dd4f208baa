package release

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/reelmates/reelmates-BE/internal/catalog"
	"github.com/reelmates/reelmates-BE/internal/db"
	"github.com/reelmates/reelmates-BE/internal/notification"
	"github.com/reelmates/reelmates-BE/internal/util"
	"github.com/rs/zerolog/log"
)

// CatalogClient is the external movie catalog queried once per run.
type CatalogClient interface {
	DiscoverByReleaseDate(ctx context.Context, date string) ([]catalog.Movie, error)
}

// Tracker runs the daily job that matches tomorrow's releases against each
// user's liked movies and notifies the matches.
type Tracker struct {
	store      db.Store
	catalog    CatalogClient
	dispatcher *notification.Dispatcher
	scheduler  gocron.Scheduler
	clock      util.ScheduleClock
	now        func() time.Time
}

func NewTracker(store db.Store, catalogClient CatalogClient, dispatcher *notification.Dispatcher, clock util.ScheduleClock) (*Tracker, error) {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(clock.Location))
	if err != nil {
		return nil, err
	}

	return &Tracker{
		store:      store,
		catalog:    catalogClient,
		dispatcher: dispatcher,
		scheduler:  scheduler,
		clock:      clock,
		now:        time.Now,
	}, nil
}

// Start schedules the daily release check and starts the scheduler.
func (t *Tracker) Start() error {
	_, err := t.scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(
			gocron.NewAtTime(uint(t.clock.Hour), uint(t.clock.Minute), 0),
		)),
		gocron.NewTask(
			func() {
				log.Info().
					Str("job", "release_notifications").
					Time("start_time", t.now()).
					Msg("starting release notification job")

				if err := t.notifyUpcomingReleases(context.Background()); err != nil {
					log.Err(err).Msg("release notification job aborted")
				}
			},
		),
	)
	if err != nil {
		return err
	}

	t.scheduler.Start()
	return nil
}

// Stop shuts the scheduler down.
func (t *Tracker) Stop() error {
	return t.scheduler.Shutdown()
}

// notifyUpcomingReleases performs one scheduled run: fetch the catalog delta
// for tomorrow (in the job's time zone), intersect it against each user's
// liked movies, and dispatch one notification per match. A catalog failure
// aborts the whole run; a failure for one user only skips that user.
func (t *Tracker) notifyUpcomingReleases(ctx context.Context) error {
	tomorrow := t.now().In(t.clock.Location).AddDate(0, 0, 1).Format("2006-01-02")

	movies, err := t.catalog.DiscoverByReleaseDate(ctx, tomorrow)
	if err != nil {
		return fmt.Errorf("failed to fetch releases for %s: %w", tomorrow, err)
	}
	if len(movies) == 0 {
		log.Info().Str("date", tomorrow).Msg("no movies releasing tomorrow")
		return nil
	}

	titles := make(map[int64]string, len(movies))
	for _, movie := range movies {
		titles[movie.ID] = movie.Title
	}

	users, err := t.store.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	for _, user := range users {
		for _, movieID := range user.LikedMovies {
			title, ok := titles[movieID]
			if !ok {
				continue
			}

			if err := t.dispatcher.NotifyMovieRelease(ctx, user.ID, movieID, title); err != nil {
				log.Err(err).Str("user_id", user.ID).Int64("movie_id", movieID).
					Msg("failed to notify movie release")
			}
		}
	}

	return nil
}
