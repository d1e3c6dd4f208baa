package db

import (
	"time"
)

// User is the user document as stored in Firestore. Set-valued fields
// (Followers, LikedMovies, PendingInvites) are mutated by the mobile client;
// this service only reads them.
type User struct {
	ID             string              `firestore:"-" json:"id"`
	Username       string              `firestore:"username" json:"username"`
	Name           string              `firestore:"name" json:"name"`
	ProfilePicture string              `firestore:"profilePicture" json:"profilePicture"`
	FCMToken       string              `firestore:"fcmToken" json:"-"`
	Followers      []string            `firestore:"followers" json:"-"`
	LikedMovies    []int64             `firestore:"likedMovies" json:"-"`
	PendingInvites map[string][]string `firestore:"pendingInvites" json:"-"`
}

// Watchlist lives in the my_watchlists subcollection of its owner.
type Watchlist struct {
	ID        string    `firestore:"-" json:"id"`
	Name      string    `firestore:"name" json:"name"`
	IsPrivate bool      `firestore:"isPrivate" json:"-"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// Review is the document created when a user posts a review.
type Review struct {
	ID       string `firestore:"-" json:"id"`
	AuthorID string `firestore:"userId" json:"userId"`
	MovieID  int64  `firestore:"movieId" json:"movieId"`
}

// Notification is one entry of a recipient's bounded history. Timestamp is
// assigned server-side on write, so entries order by insertion.
type Notification struct {
	ID        string            `firestore:"notificationId" json:"notificationId"`
	Title     string            `firestore:"title" json:"title"`
	Message   string            `firestore:"message" json:"message"`
	Type      string            `firestore:"type" json:"type"`
	Data      map[string]string `firestore:"data" json:"data"`
	Timestamp time.Time         `firestore:"timestamp,serverTimestamp" json:"timestamp"`
}
