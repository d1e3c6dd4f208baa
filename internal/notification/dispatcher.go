package notification

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/reelmates/reelmates-BE/internal/db"
	"github.com/rs/zerolog/log"
)

// Dispatcher drives one trigger firing end to end: it computes the
// recipients, composes a notification per recipient, appends it to that
// recipient's history and then attempts push delivery. Per-recipient
// failures are logged at the recipient boundary and never abort sibling
// recipients or the firing itself, so the upstream trigger always completes
// successfully and redelivery storms are avoided.
type Dispatcher struct {
	store   db.Store
	history *HistoryStore
	gateway *Gateway
}

func NewDispatcher(store db.Store, history *HistoryStore, gateway *Gateway) *Dispatcher {
	return &Dispatcher{
		store:   store,
		history: history,
		gateway: gateway,
	}
}

// HandleUserUpdated processes one document-change firing on a user. A single
// update can represent a follower-list change, a pending-invite change, or
// neither; both paths run against the same before/after snapshots. Returns
// the number of notifications dispatched.
func (d *Dispatcher) HandleUserUpdated(ctx context.Context, userID string, before, after UserSnapshot) int {
	return d.notifyNewFollowers(ctx, userID, before, after) +
		d.notifyNewInvitation(ctx, userID, before, after)
}

func (d *Dispatcher) notifyNewFollowers(ctx context.Context, userID string, before, after UserSnapshot) int {
	newFollowerIDs := added(before.Followers, after.Followers)
	if len(newFollowerIDs) == 0 {
		return 0
	}

	notified := 0
	for _, followerID := range newFollowerIDs {
		if err := d.notifyFollow(ctx, userID, followerID); err != nil {
			log.Err(err).Str("user_id", userID).Str("follower_id", followerID).
				Msg("failed to process follow notification")
			continue
		}
		notified++
	}

	return notified
}

func (d *Dispatcher) notifyFollow(ctx context.Context, userID, followerID string) error {
	follower, err := d.store.GetUser(ctx, followerID)
	if err != nil {
		return fmt.Errorf("failed to resolve follower %s: %w", followerID, err)
	}

	notification := composeNewFollower(followerID, follower.Username)
	if err = d.history.Append(ctx, userID, notification); err != nil {
		return err
	}
	d.gateway.Deliver(ctx, userID, notification)

	return nil
}

// HandleReviewCreated fans a freshly posted review out to every follower of
// its author. Recipients are processed concurrently and the call returns
// only once every per-recipient unit has finished.
func (d *Dispatcher) HandleReviewCreated(ctx context.Context, review db.Review) int {
	author, err := d.store.GetUser(ctx, review.AuthorID)
	if err != nil {
		log.Err(err).Str("author_id", review.AuthorID).Msg("failed to resolve review author")
		return 0
	}

	if len(author.Followers) == 0 {
		return 0
	}

	var (
		wg       sync.WaitGroup
		notified atomic.Int64
	)

	for _, followerID := range author.Followers {
		wg.Add(1)
		go func(followerID string) {
			defer wg.Done()

			notification := composeNewReview(author.ID, author.Username)
			if err := d.history.Append(ctx, followerID, notification); err != nil {
				log.Err(err).Str("follower_id", followerID).Msg("failed to store review notification")
				return
			}
			d.gateway.Deliver(ctx, followerID, notification)
			notified.Add(1)
		}(followerID)
	}
	wg.Wait()

	return int(notified.Load())
}

func (d *Dispatcher) notifyNewInvitation(ctx context.Context, userID string, before, after UserSnapshot) int {
	ownerID, watchlistID, ok := firstAddedInvite(before.PendingInvites, after.PendingInvites)
	if !ok {
		return 0
	}

	owner, err := d.store.GetUser(ctx, ownerID)
	if err != nil {
		log.Err(err).Str("owner_id", ownerID).Msg("failed to resolve watchlist owner")
		return 0
	}

	watchlist, err := d.store.GetWatchlist(ctx, ownerID, watchlistID)
	if err != nil {
		log.Err(err).Str("owner_id", ownerID).Str("watchlist_id", watchlistID).
			Msg("failed to resolve invited watchlist")
		return 0
	}

	notification := composeNewInvitation(ownerID, owner.Username, watchlistID, watchlist.Name)
	if err = d.history.Append(ctx, userID, notification); err != nil {
		log.Err(err).Str("user_id", userID).Msg("failed to store invitation notification")
		return 0
	}
	d.gateway.Deliver(ctx, userID, notification)

	return 1
}

// NotifyMovieRelease notifies one user about one matched catalog item. The
// release tracker calls this once per (user, movie) pair.
func (d *Dispatcher) NotifyMovieRelease(ctx context.Context, userID string, movieID int64, movieTitle string) error {
	notification := composeMovieRelease(movieID, movieTitle)
	if err := d.history.Append(ctx, userID, notification); err != nil {
		return err
	}
	d.gateway.Deliver(ctx, userID, notification)

	return nil
}
