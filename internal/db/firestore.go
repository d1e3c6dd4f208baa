package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection         = "users"
	notificationsCollection = "notifications"
	watchlistsCollection    = "my_watchlists"
)

// FirestoreStore implements Store over a Firestore database with the
// users/{id}, users/{id}/notifications/{nid} and users/{id}/my_watchlists/{wid}
// document layout used by the mobile client.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) GetUser(ctx context.Context, userID string) (*User, error) {
	snap, err := s.client.Collection(usersCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}

	user := new(User)
	if err = snap.DataTo(user); err != nil {
		return nil, fmt.Errorf("failed to decode user %s: %w", userID, err)
	}
	user.ID = snap.Ref.ID

	return user, nil
}

func (s *FirestoreStore) ListUsers(ctx context.Context) ([]*User, error) {
	var users []*User

	iter := s.client.Collection(usersCollection).Documents(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}

		user := new(User)
		if err = snap.DataTo(user); err != nil {
			return nil, fmt.Errorf("failed to decode user %s: %w", snap.Ref.ID, err)
		}
		user.ID = snap.Ref.ID
		users = append(users, user)
	}

	return users, nil
}

func (s *FirestoreStore) GetWatchlist(ctx context.Context, ownerID, watchlistID string) (*Watchlist, error) {
	snap, err := s.client.Collection(usersCollection).Doc(ownerID).
		Collection(watchlistsCollection).Doc(watchlistID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get watchlist %s of user %s: %w", watchlistID, ownerID, err)
	}

	watchlist := new(Watchlist)
	if err = snap.DataTo(watchlist); err != nil {
		return nil, fmt.Errorf("failed to decode watchlist %s: %w", watchlistID, err)
	}
	watchlist.ID = snap.Ref.ID

	return watchlist, nil
}

func (s *FirestoreStore) SetNotification(ctx context.Context, userID string, notification *Notification) error {
	_, err := s.client.Collection(usersCollection).Doc(userID).
		Collection(notificationsCollection).Doc(notification.ID).Set(ctx, notification)
	if err != nil {
		return fmt.Errorf("failed to store notification for user %s: %w", userID, err)
	}

	return nil
}

func (s *FirestoreStore) ListNotifications(ctx context.Context, userID string, limit int) ([]*Notification, error) {
	var notifications []*Notification

	iter := s.client.Collection(usersCollection).Doc(userID).
		Collection(notificationsCollection).
		OrderBy("timestamp", firestore.Asc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list notifications of user %s: %w", userID, err)
		}

		notification := new(Notification)
		if err = snap.DataTo(notification); err != nil {
			return nil, fmt.Errorf("failed to decode notification %s: %w", snap.Ref.ID, err)
		}
		notifications = append(notifications, notification)
	}

	return notifications, nil
}

func (s *FirestoreStore) DeleteNotification(ctx context.Context, userID, notificationID string) error {
	_, err := s.client.Collection(usersCollection).Doc(userID).
		Collection(notificationsCollection).Doc(notificationID).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete notification %s of user %s: %w", notificationID, userID, err)
	}

	return nil
}
