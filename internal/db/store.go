package db

import (
	"context"
	"errors"
)

var ErrRecordNotFound = errors.New("record not found")

// Store is the durable document store boundary. Firestore backs it in
// production; MemoryStore backs it in tests and credential-less local runs.
type Store interface {
	GetUser(ctx context.Context, userID string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	GetWatchlist(ctx context.Context, ownerID, watchlistID string) (*Watchlist, error)

	// SetNotification persists one notification under the recipient's
	// history collection. The caller assigns the id; the store assigns the
	// timestamp at write time.
	SetNotification(ctx context.Context, userID string, notification *Notification) error

	// ListNotifications returns the recipient's notifications ordered by
	// timestamp ascending, at most limit of them.
	ListNotifications(ctx context.Context, userID string, limit int) ([]*Notification, error)

	DeleteNotification(ctx context.Context, userID, notificationID string) error
}
