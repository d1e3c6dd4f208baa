package notification

import (
	"fmt"
	"strconv"

	"github.com/reelmates/reelmates-BE/internal/db"
)

/*
 Composers map a typed domain event into the notification record stored in
 the recipient's history and pushed to their device. Composition never
 fails: a name that could not be resolved upstream interpolates as empty
 rather than blocking persistence.
*/

func composeNewFollower(followerID, followerName string) *db.Notification {
	return &db.Notification{
		Title:   "New follower!",
		Message: fmt.Sprintf("%s is now following you!", followerName),
		Type:    TypeNewFollower,
		Data: map[string]string{
			"screen":     ScreenNotifications,
			"followerId": followerID,
		},
	}
}

func composeNewReview(authorID, authorName string) *db.Notification {
	return &db.Notification{
		Title:   "New review posted!",
		Message: fmt.Sprintf("%s just posted a new review!", authorName),
		Type:    TypeNewReview,
		Data: map[string]string{
			"screen":           ScreenNotifications,
			"reviewAuthorId":   authorID,
			"reviewAuthorName": authorName,
		},
	}
}

func composeNewInvitation(ownerID, ownerName, watchlistID, watchlistName string) *db.Notification {
	return &db.Notification{
		Title:   "New invitation!",
		Message: fmt.Sprintf("%s wants to add you as collaborator in their watchlist '%s'!", ownerName, watchlistName),
		Type:    TypeNewInvitation,
		Data: map[string]string{
			"screen":         ScreenNotifications,
			"watchlistOwner": ownerID,
			"watchlistId":    watchlistID,
		},
	}
}

func composeMovieRelease(movieID int64, movieTitle string) *db.Notification {
	return &db.Notification{
		Title:   "Movie Release Alert",
		Message: fmt.Sprintf("The movie '%s' you liked is releasing tomorrow!", movieTitle),
		Type:    TypeMovieRelease,
		Data: map[string]string{
			"screen":     ScreenMovieDetails,
			"movieId":    strconv.FormatInt(movieID, 10),
			"movieTitle": movieTitle,
		},
	}
}
