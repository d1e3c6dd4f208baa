package db

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory Store used by tests and by local runs without
// Firebase credentials. Write timestamps are strictly increasing so that
// insertion order and timestamp order agree, mirroring Firestore's
// server-assigned timestamps.
type MemoryStore struct {
	mu            sync.Mutex
	users         map[string]*User
	watchlists    map[string]map[string]*Watchlist // ownerID -> watchlistID
	notifications map[string][]*Notification       // userID, timestamp ascending
	clock         time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         make(map[string]*User),
		watchlists:    make(map[string]map[string]*Watchlist),
		notifications: make(map[string][]*Notification),
		clock:         time.Now(),
	}
}

func (s *MemoryStore) PutUser(user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
}

func (s *MemoryStore) PutWatchlist(ownerID string, watchlist *Watchlist) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watchlists[ownerID] == nil {
		s.watchlists[ownerID] = make(map[string]*Watchlist)
	}
	s.watchlists[ownerID][watchlist.ID] = watchlist
}

func (s *MemoryStore) GetUser(ctx context.Context, userID string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, ErrRecordNotFound
	}

	clone := *user
	return &clone, nil
}

func (s *MemoryStore) ListUsers(ctx context.Context) ([]*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]*User, 0, len(s.users))
	for _, user := range s.users {
		clone := *user
		users = append(users, &clone)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users, nil
}

func (s *MemoryStore) GetWatchlist(ctx context.Context, ownerID, watchlistID string) (*Watchlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	watchlist, ok := s.watchlists[ownerID][watchlistID]
	if !ok {
		return nil, ErrRecordNotFound
	}

	clone := *watchlist
	return &clone, nil
}

func (s *MemoryStore) SetNotification(ctx context.Context, userID string, notification *Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clock = s.clock.Add(time.Millisecond)

	clone := *notification
	clone.Timestamp = s.clock
	s.notifications[userID] = append(s.notifications[userID], &clone)

	return nil
}

func (s *MemoryStore) ListNotifications(ctx context.Context, userID string, limit int) ([]*Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.notifications[userID]
	if limit > len(stored) {
		limit = len(stored)
	}

	notifications := make([]*Notification, 0, limit)
	for _, n := range stored[:limit] {
		clone := *n
		notifications = append(notifications, &clone)
	}

	return notifications, nil
}

func (s *MemoryStore) DeleteNotification(ctx context.Context, userID, notificationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.notifications[userID]
	for i, n := range stored {
		if n.ID == notificationID {
			s.notifications[userID] = append(stored[:i:i], stored[i+1:]...)
			return nil
		}
	}

	return nil
}
